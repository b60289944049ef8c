/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aql

import "fmt"

// Operator is a filter comparison operator. Only equality is implemented;
// the type exists so further operators can be added without changing the
// filter shape.
type Operator string

const (
	// OperatorEqual compares two operands for equality.
	OperatorEqual Operator = "=="
)

// Node is one side of a filter comparison. The implementation set is
// closed: FieldRef and BindRef.
type Node interface {
	render() string
}

// FieldRef references a document attribute by name.
type FieldRef struct {
	Name string
}

func (f FieldRef) render() string {
	return fmt.Sprintf("%s.`%s`", documentVar, f.Name)
}

// BindRef references a bind variable by its assigned key. Values referenced
// this way are always passed out-of-band at execution time, never rendered
// into the query text.
type BindRef struct {
	Key string
}

func (b BindRef) render() string {
	return "@" + b.Key
}

// Filter is a binary comparison between two nodes.
type Filter struct {
	Left     Node
	Operator Operator
	Right    Node
}

// Field creates a FieldRef node.
func Field(name string) FieldRef {
	return FieldRef{Name: name}
}

// Bind creates a BindRef node for an assigned bind key.
func Bind(key string) BindRef {
	return BindRef{Key: key}
}

// Equal creates an equality filter between two nodes.
func Equal(left, right Node) *Filter {
	return &Filter{Left: left, Operator: OperatorEqual, Right: right}
}
