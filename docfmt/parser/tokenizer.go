// File: tokenizer.go
// Title: Document Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of document parsing.
//              Converts tag-delimited document text into streams of tag,
//              text, and newline tokens for the parser. Provides detailed
//              position information for error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial tokenizer implementation

package parser

import (
	"fmt"
	"strings"

	mdocerror "github.com/msto63/mDoc/core/error"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Content tokens
	TokenText    // free-form prose up to the next tag or newline
	TokenNewline // a single line break (\n, \r\n, or \r)

	// Tag tokens
	TokenTagOpen  // <name attr="value" ...>
	TokenTagClose // </name>
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenText:
		return "TEXT"
	case TokenNewline:
		return "NEWLINE"
	case TokenTagOpen:
		return "TAG_OPEN"
	case TokenTagClose:
		return "TAG_CLOSE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type       TokenType         // Token type
	Value      string            // Raw token text ("\n" for newlines)
	TagName    string            // Tag name for TagOpen/TagClose tokens
	Attributes map[string]string // Attribute pairs for TagOpen tokens
	Position   int               // Byte position in input
	Line       int               // Line number (1-based)
	Column     int               // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "NEWLINE"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	case TokenTagOpen, TokenTagClose:
		return fmt.Sprintf("%s(%s)", t.Type, t.TagName)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// Tokenizer performs lexical analysis of document text
type Tokenizer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based, counted in runes)
}

// NewTokenizer creates a new tokenizer for the given input
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{
		input:  input,
		line:   1,
		column: 0,
	}
	t.readChar() // Initialize first character
	return t
}

// NextToken returns the next token from the input
func (t *Tokenizer) NextToken() Token {
	// Save current position for the token
	pos := t.position
	line := t.line
	column := t.column

	switch {
	case t.ch == 0:
		return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}

	case t.ch == '\r':
		// \r\n and a lone \r both collapse to one newline token
		if t.peekChar() == '\n' {
			t.readChar()
		}
		t.readChar()
		return Token{Type: TokenNewline, Value: "\n", Position: pos, Line: line, Column: column}

	case t.ch == '\n':
		t.readChar()
		return Token{Type: TokenNewline, Value: "\n", Position: pos, Line: line, Column: column}

	case t.ch == '<' && t.startsTag():
		return t.readTag(pos, line, column)

	default:
		return t.readText(pos, line, column)
	}
}

// Tokenize returns all tokens from the input as a slice. An unterminated tag
// surfaces as a lexical error carrying the position of its opening '<'.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := t.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, &ParseError{
				Code:    mdocerror.CodeLexical,
				Message: fmt.Sprintf("unterminated tag %q", tok.Value),
				Line:    tok.Line,
				Column:  tok.Column,
				Token:   tok,
			}
		}
	}

	return tokens, nil
}

// startsTag reports whether the current '<' opens tag syntax: an optional
// '/' followed by a word character. Any other '<' is plausibly prose.
func (t *Tokenizer) startsTag() bool {
	next := t.peekChar()
	if next == '/' {
		return isWordChar(t.peekCharAt(2))
	}
	return isWordChar(next)
}

// readTag reads a complete tag from '<' to '>'. An EOF before '>' yields an
// illegal token at the position of the '<'.
func (t *Tokenizer) readTag(pos, line, column int) Token {
	start := t.position

	t.readChar() // consume '<'

	closing := false
	if t.ch == '/' {
		closing = true
		t.readChar()
	}

	// Tag name
	nameStart := t.position
	for isWordChar(t.ch) {
		t.readChar()
	}
	name := t.input[nameStart:t.position]

	// Scan to the closing '>'; the attribute section may span lines
	attrStart := t.position
	for t.ch != '>' {
		if t.ch == 0 {
			return Token{
				Type:     TokenIllegal,
				Value:    t.input[start:t.position],
				TagName:  name,
				Position: pos,
				Line:     line,
				Column:   column,
			}
		}
		t.readChar()
	}
	attrText := t.input[attrStart:t.position]

	raw := t.input[start : t.position+1]
	t.readChar() // consume '>'

	if closing {
		return Token{
			Type:     TokenTagClose,
			Value:    raw,
			TagName:  name,
			Position: pos,
			Line:     line,
			Column:   column,
		}
	}

	return Token{
		Type:       TokenTagOpen,
		Value:      raw,
		TagName:    name,
		Attributes: parseAttributes(attrText),
		Position:   pos,
		Line:       line,
		Column:     column,
	}
}

// readText accumulates prose up to the next newline or tag boundary
func (t *Tokenizer) readText(pos, line, column int) Token {
	start := t.position

	for t.ch != 0 && t.ch != '\n' && t.ch != '\r' {
		if t.ch == '<' && t.startsTag() {
			break
		}
		t.readChar()
	}

	return Token{
		Type:     TokenText,
		Value:    t.input[start:t.position],
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// readChar advances past the current character and loads the next one
func (t *Tokenizer) readChar() {
	if t.ch == '\n' || (t.ch == '\r' && t.peekChar() != '\n') {
		t.line++
		t.column = 0
	}

	if t.readPos >= len(t.input) {
		t.ch = 0 // NUL represents EOF
	} else {
		t.ch = t.input[t.readPos]
	}

	t.position = t.readPos
	t.readPos++

	// Columns count runes: UTF-8 continuation bytes do not advance
	if t.ch&0xC0 != 0x80 {
		t.column++
	}
}

// peekChar returns the next character without advancing position
func (t *Tokenizer) peekChar() byte {
	return t.peekCharAt(1)
}

// peekCharAt returns the character n positions ahead without advancing
func (t *Tokenizer) peekCharAt(n int) byte {
	idx := t.position + n
	if idx >= len(t.input) {
		return 0
	}
	return t.input[idx]
}

// isWordChar reports whether ch is a tag-name character
func isWordChar(ch byte) bool {
	return ch == '_' ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9')
}

// parseAttributes extracts name=value pairs from the attribute section of an
// open tag. Values may be quoted (quotes stripped) or bare; segments that do
// not form a pair are ignored.
func parseAttributes(attrText string) map[string]string {
	attrs := make(map[string]string)

	i := 0
	for i < len(attrText) {
		// Skip whitespace between pairs
		for i < len(attrText) && isSpaceChar(attrText[i]) {
			i++
		}

		// Attribute name
		nameStart := i
		for i < len(attrText) && isWordChar(attrText[i]) {
			i++
		}
		name := attrText[nameStart:i]

		if name == "" || i >= len(attrText) || attrText[i] != '=' {
			// Not a pair; skip to the next whitespace boundary
			for i < len(attrText) && !isSpaceChar(attrText[i]) {
				i++
			}
			continue
		}
		i++ // consume '='

		var value string
		if i < len(attrText) && attrText[i] == '"' {
			i++ // consume opening quote
			valueStart := i
			end := strings.IndexByte(attrText[i:], '"')
			if end == -1 {
				// Unclosed quote: take the rest verbatim
				value = attrText[valueStart:]
				i = len(attrText)
			} else {
				value = attrText[valueStart : valueStart+end]
				i = valueStart + end + 1
			}
		} else {
			valueStart := i
			for i < len(attrText) && !isSpaceChar(attrText[i]) {
				i++
			}
			value = attrText[valueStart:i]
		}

		attrs[name] = value
	}

	return attrs
}

// isSpaceChar reports whether ch is ASCII whitespace
func isSpaceChar(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// TokenizeInput is a convenience function that tokenizes a complete input
func TokenizeInput(input string) ([]Token, error) {
	return NewTokenizer(input).Tokenize()
}
