// Package logging provides structured logging for the phrasegen project.
//
// Logging is silent by default so the CLI output stays clean. Setting the
// PHRASEGEN_LOG_LEVEL environment variable to debug, info, warn, or error
// enables console-encoded zap output on stderr. Generated passphrases are
// never written to the log at any level.
package logging
