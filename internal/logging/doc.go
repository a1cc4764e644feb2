// Package logging provides structured logging utilities for the calbook
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "book_appointment")
//	logger.Info("booking created",
//	    logging.Status(logging.StatusSuccess))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("attendee added",
//	    logging.UserHash(email))
//
// Attendee and host emails are hashed to prevent PII leakage while still
// allowing correlation; OAuth tokens are never logged directly.
package logging
