// File: nodes.go
// Title: Document AST Node Definitions
// Description: Defines all AST node types for representing parsed documents
//              including blocks, dictionaries, lists, and text runs. Provides
//              string representations, validation, and JSON projection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST node definitions

package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	mdocstringx "github.com/msto63/mDoc/utils/stringx"
)

// Kind discriminates the closed set of node variants. It is emitted as the
// "kind" field of the JSON projection.
type Kind string

const (
	KindText     Kind = "text"
	KindBlock    Kind = "block"
	KindDict     Kind = "dict"
	KindList     Kind = "list"
	KindListItem Kind = "list_item"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error

	// nodeKind marks the closed variant set; adding a new node type
	// forces every consumer to handle it
	nodeKind() Kind
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// KindOf returns the kind discriminator of a node
func KindOf(n Node) Kind {
	return n.nodeKind()
}

// Ordering distinguishes ordered from unordered lists
type Ordering int

const (
	Ordered Ordering = iota
	Unordered
)

// String returns the string representation of the ordering
func (o Ordering) String() string {
	switch o {
	case Ordered:
		return "ordered"
	case Unordered:
		return "unordered"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the ordering as its string form
func (o Ordering) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Text represents a run of free-form prose
type Text struct {
	Content string   // Paragraph text, trimmed
	Pos     Position // Source position
}

// Block represents a nesting container. The root of any parsed document is
// itself a Block with no tag wrapper.
type Block struct {
	Number string   // Section number (e.g. "5.1") when the block originates as a list item; empty otherwise
	Head   string   // Optional heading; empty when absent
	Body   []Node   // Ordered child nodes
	Pos    Position // Source position
}

// Dictionary represents a key-value structure. Keys preserves source order;
// Items holds the values.
type Dictionary struct {
	Separator rune              // Separator character between key and value
	Keys      []string          // Keys in source order
	Items     map[string]string // Key -> value
	Pos       Position          // Source position
}

// ListBlock represents an ordered or unordered list
type ListBlock struct {
	Ordering Ordering    // Ordered or Unordered
	Marker   rune        // Numeric delimiter ('.') or bullet glyph
	Items    []*ListItem // Top-level items in source order
	Pos      Position    // Source position
}

// ListItem represents a single list item. Nesting forms a forest: children
// are strictly deeper than the item itself.
type ListItem struct {
	Label    string      // "2.1" for ordered items, the bullet glyph for unordered
	Content  *Block      // Item text and continuation content
	Children []*ListItem // Nested items
	Pos      Position    // Source position
}

// Implementation of Node interface for Text

func (t *Text) String() string {
	return t.Content
}

func (t *Text) Accept(visitor Visitor) interface{} {
	return visitor.VisitText(t)
}

func (t *Text) Position() Position {
	return t.Pos
}

func (t *Text) Validate() error {
	if mdocstringx.IsBlank(t.Content) {
		return fmt.Errorf("text node must not be blank")
	}
	return nil
}

func (t *Text) nodeKind() Kind { return KindText }

// MarshalJSON projects a text node as a bare JSON string
func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Content)
}

// Implementation of Node interface for Block

func (b *Block) String() string {
	var parts []string
	if b.Number != "" {
		parts = append(parts, fmt.Sprintf("number=%s", b.Number))
	}
	if b.Head != "" {
		parts = append(parts, fmt.Sprintf("head=%q", b.Head))
	}
	parts = append(parts, fmt.Sprintf("body=%d", len(b.Body)))
	return fmt.Sprintf("Block(%s)", strings.Join(parts, ", "))
}

func (b *Block) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlock(b)
}

func (b *Block) Position() Position {
	return b.Pos
}

func (b *Block) Validate() error {
	for i, child := range b.Body {
		if child == nil {
			return fmt.Errorf("block body element %d is nil", i)
		}
		if err := child.Validate(); err != nil {
			return fmt.Errorf("block body element %d: %w", i, err)
		}
	}
	return nil
}

func (b *Block) nodeKind() Kind { return KindBlock }

// Append adds a node to the block body
func (b *Block) Append(n Node) {
	b.Body = append(b.Body, n)
}

// HasHead returns true if the block carries a heading
func (b *Block) HasHead() bool {
	return b.Head != ""
}

// MarshalJSON projects the block with its kind discriminator. Absent number
// and head are emitted as null.
func (b *Block) MarshalJSON() ([]byte, error) {
	type projection struct {
		Kind   Kind    `json:"kind"`
		Number *string `json:"number"`
		Head   *string `json:"head"`
		Body   []Node  `json:"body"`
	}
	p := projection{Kind: KindBlock, Body: b.Body}
	if p.Body == nil {
		p.Body = []Node{}
	}
	if b.Number != "" {
		p.Number = &b.Number
	}
	if b.Head != "" {
		p.Head = &b.Head
	}
	return json.Marshal(p)
}

// Implementation of Node interface for Dictionary

func (d *Dictionary) String() string {
	return fmt.Sprintf("Dictionary(sep=%q, items=%d)", d.Separator, len(d.Keys))
}

func (d *Dictionary) Accept(visitor Visitor) interface{} {
	return visitor.VisitDictionary(d)
}

func (d *Dictionary) Position() Position {
	return d.Pos
}

func (d *Dictionary) Validate() error {
	if unicode.IsSpace(d.Separator) || d.Separator == 0 {
		return fmt.Errorf("dictionary separator must be a single non-whitespace character")
	}
	if len(d.Keys) != len(d.Items) {
		return fmt.Errorf("dictionary key order out of sync: %d keys, %d items", len(d.Keys), len(d.Items))
	}
	for _, key := range d.Keys {
		if _, ok := d.Items[key]; !ok {
			return fmt.Errorf("dictionary key %q has no value", key)
		}
	}
	return nil
}

func (d *Dictionary) nodeKind() Kind { return KindDict }

// Add inserts a key-value pair, preserving insertion order. It returns false
// if the key already exists; existing entries are never overwritten.
func (d *Dictionary) Add(key, value string) bool {
	if d.Items == nil {
		d.Items = make(map[string]string)
	}
	if _, exists := d.Items[key]; exists {
		return false
	}
	d.Keys = append(d.Keys, key)
	d.Items[key] = value
	return true
}

// Get returns the value for a key and whether it exists
func (d *Dictionary) Get(key string) (string, bool) {
	value, ok := d.Items[key]
	return value, ok
}

// Len returns the number of entries
func (d *Dictionary) Len() int {
	return len(d.Keys)
}

// MarshalJSON projects the dictionary with its items in source order
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"kind":"dict","sep":`)

	sep, err := json.Marshal(string(d.Separator))
	if err != nil {
		return nil, err
	}
	buf.Write(sep)

	// Items are hand-encoded so the key order stays deterministic
	buf.WriteString(`,"items":{`)
	for i, key := range d.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d.Items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// Implementation of Node interface for ListBlock

func (l *ListBlock) String() string {
	return fmt.Sprintf("ListBlock(%s, marker=%q, items=%d)", l.Ordering, l.Marker, len(l.Items))
}

func (l *ListBlock) Accept(visitor Visitor) interface{} {
	return visitor.VisitListBlock(l)
}

func (l *ListBlock) Position() Position {
	return l.Pos
}

func (l *ListBlock) Validate() error {
	if unicode.IsSpace(l.Marker) || l.Marker == 0 {
		return fmt.Errorf("list marker must be a single non-whitespace character")
	}
	for i, item := range l.Items {
		if item == nil {
			return fmt.Errorf("list item %d is nil", i)
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("list item %d: %w", i, err)
		}
	}
	return nil
}

func (l *ListBlock) nodeKind() Kind { return KindList }

// MarshalJSON projects the list with its kind discriminator
func (l *ListBlock) MarshalJSON() ([]byte, error) {
	type projection struct {
		Kind     Kind        `json:"kind"`
		Ordering Ordering    `json:"ordering"`
		Marker   string      `json:"marker"`
		Items    []*ListItem `json:"items"`
	}
	p := projection{
		Kind:     KindList,
		Ordering: l.Ordering,
		Marker:   string(l.Marker),
		Items:    l.Items,
	}
	if p.Items == nil {
		p.Items = []*ListItem{}
	}
	return json.Marshal(p)
}

// Implementation of Node interface for ListItem

func (li *ListItem) String() string {
	return fmt.Sprintf("ListItem(label=%q, children=%d)", li.Label, len(li.Children))
}

func (li *ListItem) Accept(visitor Visitor) interface{} {
	return visitor.VisitListItem(li)
}

func (li *ListItem) Position() Position {
	return li.Pos
}

func (li *ListItem) Validate() error {
	if mdocstringx.IsBlank(li.Label) {
		return fmt.Errorf("list item label must not be blank")
	}
	if li.Content == nil {
		return fmt.Errorf("list item %q has no content", li.Label)
	}
	if err := li.Content.Validate(); err != nil {
		return fmt.Errorf("list item %q content: %w", li.Label, err)
	}
	for i, child := range li.Children {
		if child == nil {
			return fmt.Errorf("list item %q child %d is nil", li.Label, i)
		}
		if err := child.Validate(); err != nil {
			return fmt.Errorf("list item %q child %d: %w", li.Label, i, err)
		}
	}
	return nil
}

func (li *ListItem) nodeKind() Kind { return KindListItem }

// MarshalJSON projects the item with its label, content, and children
func (li *ListItem) MarshalJSON() ([]byte, error) {
	type projection struct {
		Label    string      `json:"label"`
		Content  *Block      `json:"content"`
		Children []*ListItem `json:"children"`
	}
	p := projection{
		Label:    li.Label,
		Content:  li.Content,
		Children: li.Children,
	}
	if p.Children == nil {
		p.Children = []*ListItem{}
	}
	return json.Marshal(p)
}
