// File: doc.go
// Title: Document Format Package Documentation
// Description: Package documentation for the docfmt engine facade.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

// Package docfmt is the high-level entry point for the tag-delimited
// document format. It wraps the tokenizer and parser behind an Engine that
// validates input size and logs through core/log.
//
// Quick start:
//
//	root, err := docfmt.Parse(text)
//	if err != nil {
//	    return err
//	}
//	out, err := docfmt.EncodeJSON(root, true)
//
// For repeated parsing or non-default behavior, build an Engine once:
//
//	engine := docfmt.NewEngine(docfmt.Options{
//	    MaxInputLength: 4 << 20,
//	    StrictNesting:  true,
//	})
//	root, err := engine.Parse(text)
//
// The resulting tree is made of the node types in docfmt/ast; traversal
// helpers and the JSON projection live there.
package docfmt
