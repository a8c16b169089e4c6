// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for mDoc,
//              offering Unicode-safe string manipulation and commonly needed
//              utilities that extend Go's standard library.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core string utilities

// Package stringx provides extended string operations for mDoc.
//
// Overview
//
// The stringx package extends Go's standard strings package with the small
// set of utilities the document parser and CLI need repeatedly. All functions
// are Unicode-aware and safe for arbitrary input.
//
// Key capabilities include:
//   - Blank/empty checking for validation (IsBlank, IsEmpty)
//   - Unicode-safe truncation for display output (Ellipsis)
//   - Single-rune extraction for attribute validation (SingleRune)
//   - Line splitting that normalizes CRLF input (SplitLines)
//
// Usage Examples
//
// Basic string operations:
//
//	// Safe empty/blank checking
//	if stringx.IsBlank("  \t\n  ") {
//	    fmt.Println("String contains only whitespace")
//	}
//
//	// Unicode-aware truncation
//	short := stringx.Ellipsis("a very long heading text", 12)
//	// Result: "a very lo..."
//
//	// Attribute validation
//	if sep, ok := stringx.SingleRune(attr); ok {
//	    // sep is the one configured separator rune
//	}
//
// Thread Safety
//
// All exported functions are pure and thread-safe.
//
// See Also
//
//   - strings: Go standard library string functions
//   - unicode: Unicode character classification
package stringx
