// Package server holds the runtime context shared by the MCP tool handlers:
// per-account Calendar clients, the scheduling engine, instrumentation
// hooks, and the auxiliary HTTP servers for health checks and Prometheus
// metrics.
//
// ServerContext is created once at startup and passed to every tool
// registration. Calendar clients are created lazily per account the first
// time a tool needs one, so the server can start before any OAuth token
// exists. Shutdown cancels the shared context and flips the readiness
// probes to not-ready.
package server
