/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package value

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindObject
)

// Value is one node of the typed output tree handed to the graph-query
// response protocol. Integers are 32-bit by contract; see Convert for the
// narrowing rules.
type Value struct {
	kind Kind

	b    bool
	i    int32
	f    float64
	s    string
	list []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean scalar.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int returns a 32-bit integer scalar.
func Int(v int32) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a floating-point scalar.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// String returns a string scalar.
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// List returns an ordered sequence value.
func List(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, list: items}
}

// Object returns a structured mapping value. Key order is not significant.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, obj: fields}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// BoolValue returns the boolean payload. Valid only for KindBool.
func (v Value) BoolValue() bool {
	return v.b
}

// IntValue returns the integer payload. Valid only for KindInt.
func (v Value) IntValue() int32 {
	return v.i
}

// FloatValue returns the float payload. Valid only for KindFloat.
func (v Value) FloatValue() float64 {
	return v.f
}

// StringValue returns the string payload. Valid only for KindString.
func (v Value) StringValue() string {
	return v.s
}

// ListValue returns the list payload. Valid only for KindList.
func (v Value) ListValue() []Value {
	return v.list
}

// Field returns the named child of an object value and whether it exists.
func (v Value) Field(name string) (Value, bool) {
	child, ok := v.obj[name]
	return child, ok
}

// Fields returns the object payload. Valid only for KindObject.
func (v Value) Fields() map[string]Value {
	return v.obj
}

// Len returns the child count for list and object values, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// MarshalJSON renders the value tree as JSON. Object keys are emitted in
// sorted order so the output is deterministic.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindList:
		return json.Marshal(v.list)
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			child, err := json.Marshal(v.obj[k])
			if err != nil {
				return nil, err
			}
			buf.Write(child)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}
