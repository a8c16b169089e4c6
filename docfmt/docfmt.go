// File: docfmt.go
// Title: Document Format Main Interface and Engine
// Description: Provides the high-level API for parsing tag-delimited
//              documents. Integrates tokenizer, parser, and AST components
//              behind a single Engine with input validation and logging.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial document engine implementation

package docfmt

import (
	"bytes"
	"encoding/json"

	mdocerror "github.com/msto63/mDoc/core/error"
	mdoclog "github.com/msto63/mDoc/core/log"
	"github.com/msto63/mDoc/docfmt/ast"
	"github.com/msto63/mDoc/docfmt/parser"
)

// DefaultMaxInputLength limits document input size to 1 MiB
const DefaultMaxInputLength = 1 << 20

// Engine represents the main document engine that coordinates tokenization
// and parsing
type Engine struct {
	parser  *parser.Parser
	logger  *mdoclog.Logger
	options Options
}

// Options configures the document engine behavior
type Options struct {
	// Logger for document operations (optional, defaults to default logger)
	Logger *mdoclog.Logger

	// MaxInputLength limits document input size in bytes (default: 1 MiB)
	MaxInputLength int

	// StrictNesting turns list depth jumps into errors instead of warnings
	StrictNesting bool
}

// NewEngine creates a new document engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:         mdoclog.GetDefault(),
		MaxInputLength: DefaultMaxInputLength,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		options.StrictNesting = provided.StrictNesting
	}

	logger := options.Logger.WithField("component", "docfmt-engine")

	p := parser.New(parser.Options{
		Logger:        logger,
		StrictNesting: options.StrictNesting,
	})

	return &Engine{
		parser:  p,
		logger:  logger,
		options: options,
	}
}

// Parse parses document text into its node tree
func (e *Engine) Parse(input string) (*ast.Block, error) {
	timer := e.logger.StartTimer("document_parse")

	if err := e.validateInput(input); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	root, err := e.parser.Parse(input)
	if err != nil {
		timer.StopWithError(err)
		e.logger.Warn("document parsing failed", mdoclog.Fields{
			"length": len(input),
			"error":  err.Error(),
		})
		return nil, err
	}

	timer.Stop()
	return root, nil
}

// Validate checks if document text is syntactically valid
func (e *Engine) Validate(input string) error {
	_, err := e.Parse(input)
	return err
}

// validateInput validates the document input string
func (e *Engine) validateInput(input string) error {
	if len(input) > e.options.MaxInputLength {
		return mdocerror.New("document input exceeds maximum length").
			WithCode(mdocerror.CodeInputTooLarge).
			WithOperation("parse").
			WithDetail("length", len(input)).
			WithDetail("limit", e.options.MaxInputLength)
	}
	return nil
}

// Parse parses document text using a default engine
func Parse(input string) (*ast.Block, error) {
	return NewEngine().Parse(input)
}

// EncodeJSON renders a node tree as its JSON projection. With pretty set,
// the output is indented with two spaces; either way it ends in a newline.
func EncodeJSON(node ast.Node, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(node); err != nil {
		return nil, mdocerror.Wrap(err, "failed to encode document as JSON").
			WithCode(mdocerror.CodeInvalidFormat)
	}
	return buf.Bytes(), nil
}
