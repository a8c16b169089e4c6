// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the document tokenizer and parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

// Package parser implements tokenization and recursive descent parsing for
// the tag-delimited document format.
//
// The format mixes free paragraph text with four structure tags:
//
//	<head>Title</head>          one heading per block
//	<block>...</block>          nested section
//	<dict sep=":">...</dict>    key/value lines, split on the first separator
//	<list kind=".">...</list>   ordered or bulleted items with auto-nesting
//
// Parsing happens in two phases. The Tokenizer scans the input into a flat
// token stream with 1-based line and column positions; a literal '<' that
// does not start a tag is ordinary prose. The Parser then builds an ast.Block
// tree from the stream.
//
// Basic usage:
//
//	p := parser.New(parser.Options{})
//	root, err := p.Parse(input)
//	if err != nil {
//	    var pe *parser.ParseError
//	    if errors.As(err, &pe) {
//	        fmt.Printf("%s at %d:%d\n", pe.Code, pe.Line, pe.Column)
//	    }
//	}
//
// Ordered list items like "2.1. Sub-item" nest automatically under their
// numeric prefix; bullet glyphs nest by order of first appearance. A depth
// jump of more than one level logs a warning, or fails the parse when
// Options.StrictNesting is set.
//
// All parse failures are reported as *ParseError carrying an error code from
// core/error plus the position of the offending token. The first error aborts
// the parse; no partial tree is returned.
package parser
