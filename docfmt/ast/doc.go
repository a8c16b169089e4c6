// Package ast defines the node model for parsed tag-delimited documents.
//
// Package: ast
// Title: Document AST Node Model
// Description: This package defines the closed set of node variants that make
//              up a parsed document tree: Text for prose paragraphs, Block as
//              the general nesting container, Dictionary for key-value
//              structures, and ListBlock/ListItem for nested lists. Every
//              node carries its source position, validates its own
//              invariants, and projects itself to plain JSON data. A visitor
//              interface supports tree traversal.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST node model
//
// The root of every parsed document is a Block with no tag wrapper. Trees
// are constructed once per parse call and are not modified afterwards;
// ownership is strictly hierarchical with no back-references.
//
// The JSON projection is deterministic: dictionary items keep their source
// order, text nodes are emitted as bare strings, and every container carries
// a "kind" discriminator.
package ast
