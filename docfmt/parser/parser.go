// File: parser.go
// Title: Document Recursive Descent Parser
// Description: Implements the parsing phase of document processing. Converts
//              token streams into document trees using recursive descent.
//              Handles blocks, heads, dictionaries, and auto-nesting lists
//              with position-aware error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"regexp"
	"strings"

	mdocerror "github.com/msto63/mDoc/core/error"
	mdoclog "github.com/msto63/mDoc/core/log"
	"github.com/msto63/mDoc/docfmt/ast"
	mdocstringx "github.com/msto63/mDoc/utils/stringx"
)

// Recognized tag names
const (
	tagHead  = "head"
	tagBlock = "block"
	tagDict  = "dict"
	tagList  = "list"
)

// DefaultDictSeparator is used when a dict tag carries no sep attribute
const DefaultDictSeparator = ':'

// DefaultListKind is used when a list tag carries no kind attribute
const DefaultListKind = '.'

// orderedItemPattern matches ordered item lines like "2.1. Sub-item"
var orderedItemPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.\s+(.*)$`)

// bulletDepth maps well-known bullet glyphs; unknown glyphs in item position
// are treated as continuation text
var bulletGlyphs = map[rune]bool{
	'•': true,
	'o': true,
	'-': true,
	'*': true,
}

// Parser implements recursive descent parsing for the document format
type Parser struct {
	tokens  []Token
	pos     int
	current Token
	logger  *mdoclog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *mdoclog.Logger

	// StrictNesting turns depth jumps of more than one level inside lists
	// into errors instead of warnings
	StrictNesting bool
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Code    mdocerror.Code
	Message string
	Line    int
	Column  int
	Token   Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", pe.Line, pe.Column, pe.Message)
}

// New creates a new document parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdoclog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "docfmt-parser"),
		options: opts,
	}
}

// Parse parses document text and returns the root block. The first error
// aborts parsing; no partial tree is returned.
func (p *Parser) Parse(input string) (*ast.Block, error) {
	tokens, err := TokenizeInput(input)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.pos = 0
	p.current = tokens[0]

	p.logger.Debug("starting document parse", mdoclog.Fields{
		"length": len(input),
		"tokens": len(tokens),
	})

	root := &ast.Block{Pos: ast.Position{Line: 1, Column: 1}}
	if err := p.parseBlockBody(root, "", Token{}); err != nil {
		return nil, err
	}

	p.logger.Debug("document parse finished", mdoclog.Fields{
		"nodes": ast.CountNodes(root),
	})

	return root, nil
}

// parseBlockBody parses content into block until EOF (untilTag empty) or the
// matching close tag. openTok is the tag that opened this scope and anchors
// unclosed-tag errors.
func (p *Parser) parseBlockBody(block *ast.Block, untilTag string, openTok Token) error {
	var textBuf []string
	var textTok Token
	headSeen := false

	for {
		switch p.current.Type {
		case TokenEOF:
			if untilTag != "" {
				return p.errorAt(mdocerror.CodeUnclosedTag, openTok,
					fmt.Sprintf("tag <%s> is never closed", untilTag))
			}
			p.flushText(block, textBuf, textTok)
			return nil

		case TokenTagClose:
			if p.current.TagName == untilTag {
				p.flushText(block, textBuf, textTok)
				p.advance() // consume the close tag
				return nil
			}
			if untilTag == "" {
				return p.errorAt(mdocerror.CodeUnexpectedCloseTag, p.current,
					fmt.Sprintf("unexpected closing tag </%s>", p.current.TagName))
			}
			// A foreign close tag means the open tag was never closed
			return p.errorAt(mdocerror.CodeUnclosedTag, openTok,
				fmt.Sprintf("tag <%s> is never closed (found </%s>)", untilTag, p.current.TagName))

		case TokenTagOpen:
			switch p.current.TagName {
			case tagHead:
				if headSeen || block.HasHead() {
					return p.errorAt(mdocerror.CodeDuplicateHead, p.current,
						"block already has a head")
				}
				// A head is only recognized at the start of its scope,
				// before any text or structure
				if len(block.Body) > 0 || strings.TrimSpace(strings.Join(textBuf, "")) != "" {
					return p.errorAt(mdocerror.CodeInvalidInput, p.current,
						"unexpected <head> tag after content")
				}
				textBuf = nil
				head, err := p.parseHead()
				if err != nil {
					return err
				}
				block.Head = head
				headSeen = true

			case tagBlock:
				p.flushText(block, textBuf, textTok)
				textBuf = nil
				child, err := p.parseBlock()
				if err != nil {
					return err
				}
				block.Append(child)

			case tagDict:
				p.flushText(block, textBuf, textTok)
				textBuf = nil
				dict, err := p.parseDict()
				if err != nil {
					return err
				}
				block.Append(dict)

			case tagList:
				p.flushText(block, textBuf, textTok)
				textBuf = nil
				list, err := p.parseList()
				if err != nil {
					return err
				}
				block.Append(list)

			default:
				return p.errorAt(mdocerror.CodeUnknownTag, p.current,
					fmt.Sprintf("unknown tag <%s>", p.current.TagName))
			}

		case TokenText:
			if len(textBuf) == 0 {
				textTok = p.current
			}
			textBuf = append(textBuf, p.current.Value)
			p.advance()

		case TokenNewline:
			if len(textBuf) == 0 {
				textTok = p.current
			}
			textBuf = append(textBuf, "\n")
			p.advance()

		default:
			p.advance()
		}
	}
}

// parseHead parses <head>...</head> and returns the trimmed heading text.
// Only text tokens contribute; line breaks inside the head are dropped.
func (p *Parser) parseHead() (string, error) {
	openTok := p.current
	p.advance() // consume <head>

	var parts []string
	for !p.isClosing(tagHead) {
		switch p.current.Type {
		case TokenText:
			parts = append(parts, p.current.Value)
		case TokenEOF:
			return "", p.errorAt(mdocerror.CodeUnclosedTag, openTok,
				"tag <head> is never closed")
		}
		p.advance()
	}
	p.advance() // consume </head>

	return strings.TrimSpace(strings.Join(parts, "")), nil
}

// parseBlock parses <block>...</block> into a child block
func (p *Parser) parseBlock() (*ast.Block, error) {
	openTok := p.current
	p.advance() // consume <block>

	// Skip line breaks between the open tag and the first content
	for p.current.Type == TokenNewline {
		p.advance()
	}

	block := &ast.Block{Pos: tokenPosition(openTok)}
	if err := p.parseBlockBody(block, tagBlock, openTok); err != nil {
		return nil, err
	}
	return block, nil
}

// dictLine is one accumulated line of dictionary content
type dictLine struct {
	text string
	line int
}

// parseDict parses <dict sep=C>...</dict> into a dictionary node
func (p *Parser) parseDict() (*ast.Dictionary, error) {
	openTok := p.current

	sep := DefaultDictSeparator
	if raw, ok := openTok.Attributes["sep"]; ok {
		r, single := mdocstringx.SingleRune(raw)
		if !single || isWhitespaceRune(r) {
			return nil, p.errorAt(mdocerror.CodeInvalidAttribute, openTok,
				fmt.Sprintf("dict separator must be a single non-whitespace character, got %q", raw))
		}
		sep = r
	}
	p.advance() // consume <dict>

	// Accumulate content lines; tags inside a dict carry no meaning and are
	// dropped like the surrounding token noise
	var lines []dictLine
	var current []string
	currentLine := p.current.Line

	for !p.isClosing(tagDict) {
		switch p.current.Type {
		case TokenText:
			if len(current) == 0 {
				currentLine = p.current.Line
			}
			current = append(current, p.current.Value)
		case TokenNewline:
			if len(current) > 0 {
				lines = append(lines, dictLine{text: strings.TrimSpace(strings.Join(current, "")), line: currentLine})
				current = nil
			}
		case TokenEOF:
			return nil, p.errorAt(mdocerror.CodeUnclosedTag, openTok,
				"tag <dict> is never closed")
		}
		p.advance()
	}
	if len(current) > 0 {
		lines = append(lines, dictLine{text: strings.TrimSpace(strings.Join(current, "")), line: currentLine})
	}
	p.advance() // consume </dict>

	dict := &ast.Dictionary{Separator: sep, Pos: tokenPosition(openTok)}
	for _, dl := range lines {
		if dl.text == "" {
			continue
		}

		idx := strings.IndexRune(dl.text, sep)
		if idx < 0 {
			return nil, &ParseError{
				Code:    mdocerror.CodeDictMissingSeparator,
				Message: fmt.Sprintf("dictionary line %q contains no separator %q", dl.text, sep),
				Line:    dl.line,
				Column:  1,
			}
		}

		key := strings.TrimSpace(dl.text[:idx])
		value := strings.TrimSpace(dl.text[idx+len(string(sep)):])
		if !dict.Add(key, value) {
			return nil, &ParseError{
				Code:    mdocerror.CodeDictDuplicateKey,
				Message: fmt.Sprintf("duplicate dictionary key %q", key),
				Line:    dl.line,
				Column:  1,
			}
		}
	}

	return dict, nil
}

// listLine is one reconstructed line of list content
type listLine struct {
	text string
	line int
}

// parseList parses <list kind=K>...</list> into a list node
func (p *Parser) parseList() (*ast.ListBlock, error) {
	openTok := p.current

	kind := DefaultListKind
	if raw, ok := openTok.Attributes["kind"]; ok {
		r, single := mdocstringx.SingleRune(raw)
		if !single || isWhitespaceRune(r) {
			return nil, p.errorAt(mdocerror.CodeInvalidAttribute, openTok,
				fmt.Sprintf("list kind must be a single non-whitespace character, got %q", raw))
		}
		kind = r
	}

	ordering := ast.Ordered
	if kind != '.' {
		if !bulletGlyphs[kind] {
			return nil, p.errorAt(mdocerror.CodeInvalidAttribute, openTok,
				fmt.Sprintf("unsupported list kind %q", string(kind)))
		}
		ordering = ast.Unordered
	}
	p.advance() // consume <list>

	// Reconstruct the raw content line by line; tags inside the list are
	// kept verbatim so nested <dict>/<block> content can be re-parsed
	var lines []listLine
	var current []string
	currentLine := p.current.Line

	for !p.isClosing(tagList) {
		switch p.current.Type {
		case TokenText, TokenTagOpen, TokenTagClose:
			if len(current) == 0 {
				currentLine = p.current.Line
			}
			current = append(current, p.current.Value)
		case TokenNewline:
			lines = append(lines, listLine{text: strings.Join(current, ""), line: currentLine})
			current = nil
			currentLine = p.current.Line + 1
		case TokenEOF:
			return nil, p.errorAt(mdocerror.CodeUnclosedTag, openTok,
				"tag <list> is never closed")
		}
		p.advance()
	}
	if len(current) > 0 {
		lines = append(lines, listLine{text: strings.Join(current, ""), line: currentLine})
	}
	p.advance() // consume </list>

	list := &ast.ListBlock{
		Ordering: ordering,
		Marker:   kind,
		Pos:      tokenPosition(openTok),
	}

	if ordering == ast.Ordered {
		items, err := p.processOrderedLines(lines)
		if err != nil {
			return nil, err
		}
		list.Items = items
	} else {
		items, err := p.processUnorderedLines(lines)
		if err != nil {
			return nil, err
		}
		list.Items = items
	}

	return list, nil
}

// stackEntry tracks an open list item during auto-nesting
type stackEntry struct {
	depth int
	item  *ast.ListItem
}

// processOrderedLines builds the item forest for an ordered list
func (p *Parser) processOrderedLines(lines []listLine) ([]*ast.ListItem, error) {
	var rootItems []*ast.ListItem
	var stack []*stackEntry

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i].text)
		if line == "" {
			i++
			continue
		}

		if match := orderedItemPattern.FindStringSubmatch(line); match != nil {
			label, text := match[1], match[2]
			depth := strings.Count(label, ".")

			item := &ast.ListItem{
				Label: label,
				Content: &ast.Block{
					Number: label,
					Head:   text,
					Pos:    ast.Position{Line: lines[i].line, Column: 1},
				},
				Pos: ast.Position{Line: lines[i].line, Column: 1},
			}

			var err error
			stack, rootItems, err = p.pushItem(stack, rootItems, item, depth, lines[i].line)
			if err != nil {
				return nil, err
			}
			i++
			continue
		}

		// Nested structured content between items
		if strings.Contains(line, "<"+tagDict) || strings.Contains(line, "<"+tagBlock) {
			next, err := p.attachSubContent(lines, i, stack)
			if err != nil {
				return nil, err
			}
			i = next
			continue
		}

		// Continuation text for the open item
		p.appendContinuation(stack, line, lines[i].line)
		i++
	}

	return rootItems, nil
}

// processUnorderedLines builds the item forest for an unordered list. Bullet
// glyphs get their depth in order of first appearance, so '•' items can hold
// 'o' sub-items the way the source documents write them.
func (p *Parser) processUnorderedLines(lines []listLine) ([]*ast.ListItem, error) {
	var rootItems []*ast.ListItem
	var stack []*stackEntry
	glyphDepth := make(map[rune]int)

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i].text)
		if line == "" {
			i++
			continue
		}

		if glyph, text, ok := splitBulletLine(line); ok {
			depth, seen := glyphDepth[glyph]
			if !seen {
				depth = len(glyphDepth)
				glyphDepth[glyph] = depth
			}

			item := &ast.ListItem{
				Label: string(glyph),
				Content: &ast.Block{
					Head: text,
					Pos:  ast.Position{Line: lines[i].line, Column: 1},
				},
				Pos: ast.Position{Line: lines[i].line, Column: 1},
			}

			var err error
			stack, rootItems, err = p.pushItem(stack, rootItems, item, depth, lines[i].line)
			if err != nil {
				return nil, err
			}
			i++
			continue
		}

		if strings.Contains(line, "<"+tagDict) || strings.Contains(line, "<"+tagBlock) {
			next, err := p.attachSubContent(lines, i, stack)
			if err != nil {
				return nil, err
			}
			i = next
			continue
		}

		p.appendContinuation(stack, line, lines[i].line)
		i++
	}

	return rootItems, nil
}

// pushItem runs the shared auto-nesting step: pop entries at or below depth,
// attach the item to the new stack top (or the root), and push it. A depth
// jump of more than one level is a warning, or an error under StrictNesting.
func (p *Parser) pushItem(stack []*stackEntry, rootItems []*ast.ListItem, item *ast.ListItem, depth, line int) ([]*stackEntry, []*ast.ListItem, error) {
	for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
		stack = stack[:len(stack)-1]
	}

	parentDepth := -1
	if len(stack) > 0 {
		parentDepth = stack[len(stack)-1].depth
	}
	if depth > parentDepth+1 {
		if p.options.StrictNesting {
			return nil, nil, &ParseError{
				Code:    mdocerror.CodeListItemOutOfOrder,
				Message: fmt.Sprintf("list item %q skips from depth %d to %d", item.Label, parentDepth+1, depth),
				Line:    line,
				Column:  1,
			}
		}
		p.logger.Warn("list item skips nesting levels", mdoclog.Fields{
			"label": item.Label,
			"depth": depth,
			"line":  line,
		})
	}

	if len(stack) == 0 {
		rootItems = append(rootItems, item)
	} else {
		parent := stack[len(stack)-1].item
		parent.Children = append(parent.Children, item)
	}

	stack = append(stack, &stackEntry{depth: depth, item: item})
	return stack, rootItems, nil
}

// attachSubContent re-parses structured content (<dict>, <block>) embedded
// between list items and attaches the result to the open item. It returns
// the index of the first unconsumed line.
func (p *Parser) attachSubContent(lines []listLine, start int, stack []*stackEntry) (int, error) {
	// Collect lines until every opened structure tag is matched by its close
	end := start
	collected := []string{lines[start].text}
	for !strings.Contains(collected[len(collected)-1], "</"+tagDict+">") &&
		!strings.Contains(collected[len(collected)-1], "</"+tagBlock+">") {
		end++
		if end >= len(lines) {
			break
		}
		collected = append(collected, lines[end].text)
	}
	if end < len(lines) {
		end++
	}

	if len(stack) == 0 {
		p.logger.Warn("structured content outside any list item is ignored", mdoclog.Fields{
			"line": lines[start].line,
		})
		return end, nil
	}

	sub := New(p.options)
	parsed, err := sub.Parse(strings.Join(collected, "\n"))
	if err != nil {
		// Re-anchor the sub-parse position to the enclosing document
		if pe, ok := err.(*ParseError); ok {
			pe.Line += lines[start].line - 1
		}
		return 0, err
	}

	open := stack[len(stack)-1].item
	open.Content.Body = append(open.Content.Body, parsed.Body...)
	return end, nil
}

// appendContinuation appends a plain continuation line to the open item
func (p *Parser) appendContinuation(stack []*stackEntry, line string, lineNo int) {
	if len(stack) == 0 {
		p.logger.Warn("list line before any item is ignored", mdoclog.Fields{
			"line": lineNo,
		})
		return
	}

	open := stack[len(stack)-1].item
	open.Content.Body = append(open.Content.Body, &ast.Text{
		Content: line,
		Pos:     ast.Position{Line: lineNo, Column: 1},
	})
}

// flushText converts accumulated text into paragraph nodes, split on blank
// lines, trimmed, with empty paragraphs dropped
func (p *Parser) flushText(block *ast.Block, textBuf []string, firstTok Token) {
	if len(textBuf) == 0 {
		return
	}

	text := strings.TrimSpace(strings.Join(textBuf, ""))
	if text == "" {
		return
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		block.Append(&ast.Text{Content: para, Pos: tokenPosition(firstTok)})
	}
}

// isClosing checks if the current token closes the given tag
func (p *Parser) isClosing(tagName string) bool {
	return p.current.Type == TokenTagClose && p.current.TagName == tagName
}

// advance moves to the next token
func (p *Parser) advance() {
	if p.pos+1 < len(p.tokens) {
		p.pos++
		p.current = p.tokens[p.pos]
	} else {
		p.current = Token{Type: TokenEOF, Line: p.current.Line, Column: p.current.Column}
	}
}

// errorAt builds a ParseError anchored at the given token
func (p *Parser) errorAt(code mdocerror.Code, tok Token, message string) error {
	return &ParseError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
		Token:   tok,
	}
}

// tokenPosition converts token coordinates into an AST position
func tokenPosition(tok Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}

// splitBulletLine splits "• item text" into glyph and text. The glyph must
// be a known bullet followed by whitespace.
func splitBulletLine(line string) (rune, string, bool) {
	runes := []rune(line)
	if len(runes) < 2 {
		return 0, "", false
	}
	glyph := runes[0]
	if !bulletGlyphs[glyph] {
		return 0, "", false
	}
	if runes[1] != ' ' && runes[1] != '\t' {
		return 0, "", false
	}
	return glyph, strings.TrimSpace(string(runes[1:])), true
}

// isWhitespaceRune reports whether r is whitespace
func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
