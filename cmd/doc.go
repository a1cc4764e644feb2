// Package cmd implements the command-line interface for calbook.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide booking tools for AI assistants
//   - auth: Authorize Google Calendar access for an account
//   - upcoming: List upcoming events from the configured calendar
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
