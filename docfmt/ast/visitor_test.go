// File: visitor_test.go
// Title: AST Visitor Tests
// Description: Tests for tree traversal with the base visitor and the node
//              counting visitor.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial visitor tests

package ast

import (
	"testing"
)

func sampleTree() *Block {
	dict := &Dictionary{Separator: ':'}
	dict.Add("name", "Alice")

	return &Block{
		Head: "Document",
		Body: []Node{
			&Text{Content: "Intro paragraph."},
			dict,
			&ListBlock{
				Ordering: Ordered,
				Marker:   '.',
				Items: []*ListItem{
					{
						Label:   "1",
						Content: &Block{Number: "1", Head: "First"},
						Children: []*ListItem{
							{
								Label:   "1.1",
								Content: &Block{Number: "1.1", Head: "Nested"},
							},
						},
					},
				},
			},
		},
	}
}

func TestCountVisitor(t *testing.T) {
	cv := NewCountVisitor()
	Walk(sampleTree(), cv)

	if cv.Blocks != 3 {
		t.Errorf("Blocks = %d, want 3 (root + 2 item contents)", cv.Blocks)
	}
	if cv.Texts != 1 {
		t.Errorf("Texts = %d, want 1", cv.Texts)
	}
	if cv.Dictionaries != 1 {
		t.Errorf("Dictionaries = %d, want 1", cv.Dictionaries)
	}
	if cv.Lists != 1 {
		t.Errorf("Lists = %d, want 1", cv.Lists)
	}
	if cv.ListItems != 2 {
		t.Errorf("ListItems = %d, want 2", cv.ListItems)
	}
	if cv.Total() != 8 {
		t.Errorf("Total() = %d, want 8", cv.Total())
	}
}

func TestCountNodes(t *testing.T) {
	if got := CountNodes(sampleTree()); got != 8 {
		t.Errorf("CountNodes() = %d, want 8", got)
	}
	if got := CountNodes(&Block{}); got != 1 {
		t.Errorf("CountNodes(empty block) = %d, want 1", got)
	}
}

func TestWalkNil(t *testing.T) {
	// Must not panic
	Walk(nil, NewCountVisitor())
}

type headCollector struct {
	BaseVisitor
	heads []string
}

func (hc *headCollector) VisitBlock(block *Block) interface{} {
	if block.HasHead() {
		hc.heads = append(hc.heads, block.Head)
	}
	return hc.BaseVisitor.VisitBlock(block)
}

func TestBaseVisitorEmbedding(t *testing.T) {
	hc := &headCollector{}
	Walk(sampleTree(), hc)

	// BaseVisitor.VisitBlock does not descend into list items; only the
	// root head is collected through the default traversal
	if len(hc.heads) == 0 || hc.heads[0] != "Document" {
		t.Fatalf("heads = %v, want Document first", hc.heads)
	}
}
