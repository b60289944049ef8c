/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aql

import (
	"fmt"
	"strings"
)

// documentVar is the loop variable the serialized query iterates with.
const documentVar = "d"

// collectionBindKey is the bind key carrying the collection name. The
// serialized text references it with the double-@ collection syntax.
const collectionBindKey = "@collection"

// BindVars maps bind-variable keys to the values substituted at execution
// time. A BindVars instance is built fresh for every call and never shared.
type BindVars map[string]interface{}

// Query assembles one parameterized read query against a single collection.
// A Query is private to one call: the schema layer hands a fresh instance
// into each dispatch, the operation fills in filter and limit, and the
// instance is discarded after serialization. It is never cached or reused.
type Query struct {
	filter *Filter
	limit  *int
}

// NewQuery creates an empty query template.
func NewQuery() *Query {
	return &Query{}
}

// SetFilter sets the top-level filter. Current scope sets at most one
// filter per call; combinators are a future extension.
func (q *Query) SetFilter(f *Filter) {
	q.filter = f
}

// Filter returns the current top-level filter, if any.
func (q *Query) Filter() *Filter {
	return q.filter
}

// SetLimit sets the limit clause.
func (q *Query) SetLimit(n int) {
	q.limit = &n
}

// Limit returns the current limit and whether one is set.
func (q *Query) Limit() (int, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

// CollectionKey returns the bind key under which the collection name must
// be bound.
func (q *Query) CollectionKey() string {
	return collectionBindKey
}

// ArgumentKey returns the bind key assigned to a logical argument name.
// The assignment is deterministic and stable for the life of the call, so
// filter construction and bind-table population agree on the key.
func (q *Query) ArgumentKey(name string) string {
	return "arg_" + name
}

// Serialize renders the query text. The text references the collection and
// every argument through bind-variable placeholders only; serializing the
// same logical inputs twice yields identical text.
func (q *Query) Serialize() string {
	var b strings.Builder

	fmt.Fprintf(&b, "FOR %s IN @%s", documentVar, collectionBindKey)
	if q.filter != nil {
		fmt.Fprintf(&b, " FILTER %s %s %s",
			q.filter.Left.render(), q.filter.Operator, q.filter.Right.render())
	}
	if q.limit != nil {
		fmt.Fprintf(&b, " LIMIT %d", *q.limit)
	}
	fmt.Fprintf(&b, " RETURN %s", documentVar)

	return b.String()
}
