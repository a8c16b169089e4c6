// File: tokenizer_test.go
// Title: Tokenizer Tests
// Description: Tests for the document tokenizer including tag recognition,
//              attribute parsing, newline normalization, and position
//              tracking.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial tokenizer tests

package parser

import (
	"testing"

	mdocerror "github.com/msto63/mDoc/core/error"
)

func TestTokenizer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Simple text",
			input: "Hello World",
			expected: []Token{
				{Type: TokenText, Value: "Hello World", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 11, Line: 1, Column: 12},
			},
		},
		{
			name:  "Head tag with content",
			input: "<head>Title</head>",
			expected: []Token{
				{Type: TokenTagOpen, Value: "<head>", TagName: "head", Attributes: map[string]string{}, Position: 0, Line: 1, Column: 1},
				{Type: TokenText, Value: "Title", Position: 6, Line: 1, Column: 7},
				{Type: TokenTagClose, Value: "</head>", TagName: "head", Position: 11, Line: 1, Column: 12},
				{Type: TokenEOF, Value: "", Position: 18, Line: 1, Column: 19},
			},
		},
		{
			name:  "Newline normalization",
			input: "Line 1\nLine 2\r\nLine 3",
			expected: []Token{
				{Type: TokenText, Value: "Line 1", Position: 0, Line: 1, Column: 1},
				{Type: TokenNewline, Value: "\n", Position: 6, Line: 1, Column: 7},
				{Type: TokenText, Value: "Line 2", Position: 7, Line: 2, Column: 1},
				{Type: TokenNewline, Value: "\n", Position: 13, Line: 2, Column: 7},
				{Type: TokenText, Value: "Line 3", Position: 15, Line: 3, Column: 1},
				{Type: TokenEOF, Value: "", Position: 21, Line: 3, Column: 7},
			},
		},
		{
			name:  "Prose less-than sign",
			input: "a < b",
			expected: []Token{
				{Type: TokenText, Value: "a < b", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 5, Line: 1, Column: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)

			for i, expected := range tt.expected {
				tok := tokenizer.NextToken()

				if tok.Type != expected.Type {
					t.Errorf("token %d: type = %v, want %v", i, tok.Type, expected.Type)
				}
				if tok.Value != expected.Value {
					t.Errorf("token %d: value = %q, want %q", i, tok.Value, expected.Value)
				}
				if tok.TagName != expected.TagName {
					t.Errorf("token %d: tag name = %q, want %q", i, tok.TagName, expected.TagName)
				}
				if tok.Position != expected.Position {
					t.Errorf("token %d: position = %d, want %d", i, tok.Position, expected.Position)
				}
				if tok.Line != expected.Line {
					t.Errorf("token %d: line = %d, want %d", i, tok.Line, expected.Line)
				}
				if tok.Column != expected.Column {
					t.Errorf("token %d: column = %d, want %d", i, tok.Column, expected.Column)
				}
			}
		})
	}
}

func TestTokenizer_Attributes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tagName  string
		expected map[string]string
	}{
		{
			name:     "Single quoted attribute",
			input:    `<dict sep=":">`,
			tagName:  "dict",
			expected: map[string]string{"sep": ":"},
		},
		{
			name:     "Multiple attributes",
			input:    `<list kind="." style="ordered">`,
			tagName:  "list",
			expected: map[string]string{"kind": ".", "style": "ordered"},
		},
		{
			name:     "Bare attribute value",
			input:    `<dict sep=->`,
			tagName:  "dict",
			expected: map[string]string{"sep": "-"},
		},
		{
			name:     "No attributes",
			input:    `<block>`,
			tagName:  "block",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(tt.input).NextToken()

			if tok.Type != TokenTagOpen {
				t.Fatalf("token type = %v, want TAG_OPEN", tok.Type)
			}
			if tok.TagName != tt.tagName {
				t.Errorf("tag name = %q, want %q", tok.TagName, tt.tagName)
			}
			if len(tok.Attributes) != len(tt.expected) {
				t.Errorf("attributes = %v, want %v", tok.Attributes, tt.expected)
			}
			for name, want := range tt.expected {
				if got := tok.Attributes[name]; got != want {
					t.Errorf("attribute %s = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestTokenizer_MixedContent(t *testing.T) {
	input := "<head>Title</head>\nSome text\n<block>\nInner content\n</block>"

	tokens, err := TokenizeInput(input)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	var opens, closes int
	for _, tok := range tokens {
		switch tok.Type {
		case TokenTagOpen:
			opens++
		case TokenTagClose:
			closes++
		}
	}

	if opens != 2 {
		t.Errorf("open tags = %d, want 2", opens)
	}
	if closes != 2 {
		t.Errorf("close tags = %d, want 2", closes)
	}
}

func TestTokenizer_UnterminatedTag(t *testing.T) {
	_, err := TokenizeInput("text <block")
	if err == nil {
		t.Fatal("Tokenize() should fail on unterminated tag")
	}

	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Code != mdocerror.CodeLexical {
		t.Errorf("code = %v, want %v", pe.Code, mdocerror.CodeLexical)
	}
	if pe.Line != 1 || pe.Column != 6 {
		t.Errorf("position = %d:%d, want 1:6", pe.Line, pe.Column)
	}
}

func TestTokenizer_UnicodeColumns(t *testing.T) {
	// The bullet glyph is three bytes but one column
	tokens, err := TokenizeInput("• Eins\n• Zwei")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	if tokens[0].Value != "• Eins" {
		t.Errorf("first token value = %q", tokens[0].Value)
	}
	if tokens[2].Line != 2 || tokens[2].Column != 1 {
		t.Errorf("second line token at %d:%d, want 2:1", tokens[2].Line, tokens[2].Column)
	}
}

func TestTokenizer_TagSpanningLines(t *testing.T) {
	tokens, err := TokenizeInput("<dict\nsep=\";\">x;y</dict>")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	if tokens[0].Type != TokenTagOpen || tokens[0].TagName != "dict" {
		t.Fatalf("first token = %v, want dict open tag", tokens[0])
	}
	if tokens[0].Attributes["sep"] != ";" {
		t.Errorf("sep attribute = %q, want ;", tokens[0].Attributes["sep"])
	}
}

func TestTokenizer_LoneCarriageReturn(t *testing.T) {
	tokens, err := TokenizeInput("a\rb")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	if len(tokens) != 4 {
		t.Fatalf("token count = %d, want 4", len(tokens))
	}
	if tokens[1].Type != TokenNewline || tokens[1].Value != "\n" {
		t.Errorf("token 1 = %v, want normalized newline", tokens[1])
	}
	if tokens[2].Line != 2 {
		t.Errorf("token after lone \\r on line %d, want 2", tokens[2].Line)
	}
}
