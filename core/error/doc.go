// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured error handling for mDoc
//              with codes, severities, details, and stack traces.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

// Package error provides structured error handling for mDoc.
//
// Overview
//
// The package wraps Go's plain error values with a Code (stable machine-readable
// classification), a Severity (for log level selection), free-form details, an
// operation name, and a captured stack trace. It stays fully compatible with
// the standard library: Error implements error, supports errors.Is/As through
// Unwrap, and serializes itself for structured logging via MarshalJSON.
//
// Usage
//
//	err := error.New("separator must be a single character").
//	    WithCode(error.CodeInvalidAttribute).
//	    WithDetail("attribute", "sep")
//
//	if error.HasCode(err, error.CodeInvalidAttribute) {
//	    // handle the specific failure mode
//	}
//
// Codes in the "syntax" category describe problems in user-supplied documents;
// the CLI maps them to their own exit code and logs them at a low severity.
package error
