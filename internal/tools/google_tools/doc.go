// Package google_tools provides MCP tools for Google OAuth authentication.
//
// It exposes two tools: google_get_auth_url returns the URL a user must
// visit to authorize Google Calendar access, and google_save_auth_code
// exchanges the resulting authorization code for a token and stores it for
// the named account. Tokens are refreshed automatically after that.
package google_tools
