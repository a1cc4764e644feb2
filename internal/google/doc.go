// Package google handles OAuth2 authentication against Google for the
// calendar client: the authorization-code exchange, per-account token
// caching on disk, and token sources for API clients.
package google
