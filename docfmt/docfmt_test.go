// File: docfmt_test.go
// Title: Document Engine Tests
// Description: Tests for the high-level document engine including input
//              limits, strict nesting passthrough, and JSON encoding.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine tests

package docfmt

import (
	"io"
	"strings"
	"testing"

	mdocerror "github.com/msto63/mDoc/core/error"
	mdoclog "github.com/msto63/mDoc/core/log"
	"github.com/msto63/mDoc/docfmt/ast"
	"github.com/msto63/mDoc/docfmt/parser"
)

func quietEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdoclog.NewWithConfig(mdoclog.Config{
			Level:  mdoclog.LevelFatal,
			Output: io.Discard,
		})
	}
	return NewEngine(opts)
}

func TestEngine_Parse(t *testing.T) {
	engine := quietEngine(Options{})

	root, err := engine.Parse("<head>Bericht</head>\nInhalt")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if root.Head != "Bericht" {
		t.Errorf("head = %q, want Bericht", root.Head)
	}
	if len(root.Body) != 1 {
		t.Errorf("body length = %d, want 1", len(root.Body))
	}
}

func TestEngine_InputTooLarge(t *testing.T) {
	engine := quietEngine(Options{MaxInputLength: 16})

	_, err := engine.Parse(strings.Repeat("x", 17))
	if err == nil {
		t.Fatal("Parse() should fail on oversized input")
	}
	if !mdocerror.HasCode(err, mdocerror.CodeInputTooLarge) {
		t.Errorf("error code = %v, want %v", mdocerror.GetCode(err), mdocerror.CodeInputTooLarge)
	}
}

func TestEngine_InputAtLimit(t *testing.T) {
	engine := quietEngine(Options{MaxInputLength: 16})

	if _, err := engine.Parse(strings.Repeat("x", 16)); err != nil {
		t.Errorf("Parse() at the limit should succeed, got %v", err)
	}
}

func TestEngine_StrictNesting(t *testing.T) {
	input := "<list>\n1. Erstens\n1.1.1. Zu tief\n</list>"

	if _, err := quietEngine(Options{}).Parse(input); err != nil {
		t.Errorf("lenient engine should accept depth jump, got %v", err)
	}

	_, err := quietEngine(Options{StrictNesting: true}).Parse(input)
	pe, ok := err.(*parser.ParseError)
	if !ok {
		t.Fatalf("strict engine error = %T, want *parser.ParseError", err)
	}
	if pe.Code != mdocerror.CodeListItemOutOfOrder {
		t.Errorf("error code = %v, want %v", pe.Code, mdocerror.CodeListItemOutOfOrder)
	}
}

func TestEngine_Validate(t *testing.T) {
	engine := quietEngine(Options{})

	if err := engine.Validate("<head>OK</head>"); err != nil {
		t.Errorf("Validate() on valid input = %v", err)
	}
	if err := engine.Validate("<head>kaputt"); err == nil {
		t.Error("Validate() should reject unclosed tag")
	}
}

func TestParse_PackageLevel(t *testing.T) {
	root, err := Parse("Nur Text")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(root.Body) != 1 {
		t.Errorf("body length = %d, want 1", len(root.Body))
	}
}

func TestEncodeJSON(t *testing.T) {
	root, err := Parse("<head>Titel</head>\nAbsatz")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	compact, err := EncodeJSON(root, false)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	if !strings.HasSuffix(string(compact), "\n") {
		t.Error("compact output should end in a newline")
	}
	if strings.Contains(string(compact), "\n ") {
		t.Error("compact output should not be indented")
	}

	pretty, err := EncodeJSON(root, true)
	if err != nil {
		t.Fatalf("EncodeJSON() pretty error = %v", err)
	}
	if !strings.Contains(string(pretty), "  \"kind\": \"block\"") {
		t.Errorf("pretty output missing indented kind field:\n%s", pretty)
	}
	if !strings.Contains(string(pretty), "\"head\": \"Titel\"") {
		t.Errorf("pretty output missing head:\n%s", pretty)
	}
}

func TestEncodeJSON_TextNode(t *testing.T) {
	out, err := EncodeJSON(&ast.Text{Content: "bare"}, false)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	if strings.TrimSpace(string(out)) != `"bare"` {
		t.Errorf("text projection = %s, want bare JSON string", out)
	}
}
