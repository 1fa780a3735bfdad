// Package logging provides structured logging for the parola CLI.
//
// # Overview
//
// The logging package implements a small leveled logger with key-value
// fields and two output formats (text and JSON). The CLI uses it for
// diagnostics on stderr; generated passwords are never logged.
//
// # Usage
//
// Create a logger from configuration strings:
//
//	logger := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "text",
//	    Output: "stderr",
//	})
//
//	logger.Info("composite assembled", "policies", 4, "length", 16)
//
// Attach persistent fields:
//
//	cmdLogger := logger.WithFields("command", "generate")
//
// # Levels and formats
//
// Levels are debug, info, warn and error; unknown level strings fall
// back to info. Formats are text and json; unknown format strings fall
// back to text.
package logging
