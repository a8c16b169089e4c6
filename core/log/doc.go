// Package log provides structured logging capabilities for the mDoc toolkit.
//
// Package: log
// Title: mDoc Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual fields, multiple output formats, log levels, and
//              tight integration with the mDoc error handling system. It also
//              provides performance timers for measuring parse operations.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, and colored console formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with persistent custom fields
// - Integration with the mDoc error system for automatic error logging
// - Performance timers for measuring operation durations
//
// Usage:
//
//	import mdoclog "github.com/msto63/mDoc/core/log"
//
//	// Create a logger with context
//	logger := mdoclog.New().
//	  WithLevel(mdoclog.LevelInfo).
//	  WithFormat(mdoclog.FormatJSON).
//	  WithField("component", "parser")
//
//	// Log messages with different levels
//	logger.Info("document parsed", mdoclog.Field("blocks", 3))
//	logger.Error("parse failed", mdoclog.Err(err))
package log
