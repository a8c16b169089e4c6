// File: visitor.go
// Title: Document AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              document AST nodes. Provides the base visitor interface and
//              common visitor implementations for analysis.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial visitor pattern implementation

package ast

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitText(text *Text) interface{}
	VisitBlock(block *Block) interface{}
	VisitDictionary(dict *Dictionary) interface{}
	VisitListBlock(list *ListBlock) interface{}
	VisitListItem(item *ListItem) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitText(text *Text) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBlock(block *Block) interface{} {
	for _, child := range block.Body {
		child.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitDictionary(dict *Dictionary) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitListBlock(list *ListBlock) interface{} {
	for _, item := range list.Items {
		item.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitListItem(item *ListItem) interface{} {
	if item.Content != nil {
		item.Content.Accept(bv)
	}
	for _, child := range item.Children {
		child.Accept(bv)
	}
	return nil
}

// Walk traverses the tree rooted at n with the given visitor
func Walk(n Node, visitor Visitor) {
	if n == nil {
		return
	}
	n.Accept(visitor)
}

// CountVisitor counts nodes per kind while traversing
type CountVisitor struct {
	Texts        int
	Blocks       int
	Dictionaries int
	Lists        int
	ListItems    int
}

// NewCountVisitor creates a new counting visitor
func NewCountVisitor() *CountVisitor {
	return &CountVisitor{}
}

// Total returns the total number of visited nodes
func (cv *CountVisitor) Total() int {
	return cv.Texts + cv.Blocks + cv.Dictionaries + cv.Lists + cv.ListItems
}

func (cv *CountVisitor) VisitText(text *Text) interface{} {
	cv.Texts++
	return nil
}

func (cv *CountVisitor) VisitBlock(block *Block) interface{} {
	cv.Blocks++
	for _, child := range block.Body {
		child.Accept(cv)
	}
	return nil
}

func (cv *CountVisitor) VisitDictionary(dict *Dictionary) interface{} {
	cv.Dictionaries++
	return nil
}

func (cv *CountVisitor) VisitListBlock(list *ListBlock) interface{} {
	cv.Lists++
	for _, item := range list.Items {
		item.Accept(cv)
	}
	return nil
}

func (cv *CountVisitor) VisitListItem(item *ListItem) interface{} {
	cv.ListItems++
	if item.Content != nil {
		item.Content.Accept(cv)
	}
	for _, child := range item.Children {
		child.Accept(cv)
	}
	return nil
}

// CountNodes returns the total number of nodes in the tree rooted at n
func CountNodes(n Node) int {
	cv := NewCountVisitor()
	Walk(n, cv)
	return cv.Total()
}
