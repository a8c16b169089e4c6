// File: nodes_test.go
// Title: AST Node Tests
// Description: Tests for node construction, validation, and the JSON
//              projection including ordering determinism.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST node tests

package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTextMarshalJSON(t *testing.T) {
	text := &Text{Content: "Hello, world"}

	data, err := json.Marshal(text)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if string(data) != `"Hello, world"` {
		t.Errorf("text projection = %s, want bare string", data)
	}
}

func TestBlockMarshalJSON(t *testing.T) {
	block := &Block{
		Head: "Introduction",
		Body: []Node{
			&Text{Content: "First paragraph."},
		},
	}

	data, err := json.Marshal(block)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("projection is not valid JSON: %v", err)
	}

	if parsed["kind"] != "block" {
		t.Errorf("kind = %v, want block", parsed["kind"])
	}
	if parsed["head"] != "Introduction" {
		t.Errorf("head = %v, want Introduction", parsed["head"])
	}
	if parsed["number"] != nil {
		t.Errorf("number = %v, want null", parsed["number"])
	}

	body, ok := parsed["body"].([]interface{})
	if !ok || len(body) != 1 {
		t.Fatalf("body = %v, want one element", parsed["body"])
	}
	if body[0] != "First paragraph." {
		t.Errorf("body[0] = %v, want bare string", body[0])
	}
}

func TestBlockMarshalJSONEmptyBody(t *testing.T) {
	block := &Block{}

	data, err := json.Marshal(block)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if !strings.Contains(string(data), `"body":[]`) {
		t.Errorf("empty body should project as [], got %s", data)
	}
	if !strings.Contains(string(data), `"head":null`) {
		t.Errorf("absent head should project as null, got %s", data)
	}
}

func TestDictionaryAdd(t *testing.T) {
	dict := &Dictionary{Separator: ':'}

	if !dict.Add("name", "Alice") {
		t.Error("first Add() should succeed")
	}
	if !dict.Add("role", "admin") {
		t.Error("second Add() should succeed")
	}
	if dict.Add("name", "Bob") {
		t.Error("duplicate Add() should fail")
	}

	if value, _ := dict.Get("name"); value != "Alice" {
		t.Errorf("duplicate Add() must not overwrite: got %v", value)
	}
	if dict.Len() != 2 {
		t.Errorf("Len() = %d, want 2", dict.Len())
	}
}

func TestDictionaryMarshalJSONOrder(t *testing.T) {
	dict := &Dictionary{Separator: ':'}
	dict.Add("zulu", "1")
	dict.Add("alpha", "2")
	dict.Add("mike", "3")

	data, err := json.Marshal(dict)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Items must appear in source order, not sorted
	output := string(data)
	zulu := strings.Index(output, `"zulu"`)
	alpha := strings.Index(output, `"alpha"`)
	mike := strings.Index(output, `"mike"`)
	if zulu == -1 || alpha == -1 || mike == -1 {
		t.Fatalf("missing keys in projection: %s", output)
	}
	if !(zulu < alpha && alpha < mike) {
		t.Errorf("keys not in source order: %s", output)
	}

	if !strings.Contains(output, `"kind":"dict"`) {
		t.Errorf("dict projection should carry kind discriminator: %s", output)
	}
	if !strings.Contains(output, `"sep":":"`) {
		t.Errorf("dict projection should carry separator: %s", output)
	}
}

func TestListBlockMarshalJSON(t *testing.T) {
	list := &ListBlock{
		Ordering: Ordered,
		Marker:   '.',
		Items: []*ListItem{
			{
				Label:   "1",
				Content: &Block{Number: "1", Head: "First item"},
			},
		},
	}

	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("projection is not valid JSON: %v", err)
	}

	if parsed["kind"] != "list" {
		t.Errorf("kind = %v, want list", parsed["kind"])
	}
	if parsed["ordering"] != "ordered" {
		t.Errorf("ordering = %v, want ordered", parsed["ordering"])
	}
	if parsed["marker"] != "." {
		t.Errorf("marker = %v, want .", parsed["marker"])
	}

	items, ok := parsed["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, want one element", parsed["items"])
	}

	item := items[0].(map[string]interface{})
	if item["label"] != "1" {
		t.Errorf("item label = %v, want 1", item["label"])
	}
	if _, ok := item["children"].([]interface{}); !ok {
		t.Error("item children should project as an array")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{
			name:    "valid text",
			node:    &Text{Content: "hello"},
			wantErr: false,
		},
		{
			name:    "blank text",
			node:    &Text{Content: "   "},
			wantErr: true,
		},
		{
			name: "valid block",
			node: &Block{Body: []Node{&Text{Content: "x"}}},
		},
		{
			name:    "block with nil child",
			node:    &Block{Body: []Node{nil}},
			wantErr: true,
		},
		{
			name: "valid dictionary",
			node: func() Node {
				d := &Dictionary{Separator: ':'}
				d.Add("k", "v")
				return d
			}(),
		},
		{
			name:    "dictionary with whitespace separator",
			node:    &Dictionary{Separator: ' '},
			wantErr: true,
		},
		{
			name: "valid list",
			node: &ListBlock{
				Ordering: Unordered,
				Marker:   '*',
				Items: []*ListItem{
					{Label: "•", Content: &Block{}},
				},
			},
		},
		{
			name: "list item without content",
			node: &ListBlock{
				Ordering: Ordered,
				Marker:   '.',
				Items:    []*ListItem{{Label: "1"}},
			},
			wantErr: true,
		},
		{
			name: "list item with blank label",
			node: &ListBlock{
				Ordering: Ordered,
				Marker:   '.',
				Items:    []*ListItem{{Label: "", Content: &Block{}}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		node Node
		want Kind
	}{
		{&Text{Content: "x"}, KindText},
		{&Block{}, KindBlock},
		{&Dictionary{Separator: ':'}, KindDict},
		{&ListBlock{Marker: '.'}, KindList},
		{&ListItem{Label: "1", Content: &Block{}}, KindListItem},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := KindOf(tt.node); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}
