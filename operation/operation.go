/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package operation

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"

	"github.com/suparena/alchemy/aql"
	"github.com/suparena/alchemy/datastore"
	"github.com/suparena/alchemy/metadata"
	"github.com/suparena/alchemy/value"
)

// inflect is shared by all name derivations; the client is read-only after
// construction.
var inflect = pluralize.NewClient()

// ArgumentType is the wire-visible type of one operation argument.
type ArgumentType string

const (
	// ArgumentID is an opaque identifier string.
	ArgumentID ArgumentType = "ID"
	// ArgumentInt is a 32-bit integer.
	ArgumentInt ArgumentType = "Int"
)

// ArgumentSpec describes one argument of an operation's contract. The
// schema-building collaborator consumes these to construct the externally
// visible query surface.
type ArgumentSpec struct {
	Name     string
	Type     ArgumentType
	Required bool
}

// FieldKind describes the shape of an operation's result field.
type FieldKind int

const (
	// FieldSingleNullable yields a single, nullable entity value.
	FieldSingleNullable FieldKind = iota
	// FieldList yields an ordered list of entity values, never null.
	FieldList
)

// FieldSpec describes the result field of an operation's contract.
type FieldSpec struct {
	Kind   FieldKind
	Entity *metadata.EntityDescriptor
}

// Arguments carries the raw caller-supplied arguments of one call.
type Arguments map[string]interface{}

// String returns the named argument as a string, if present.
func (a Arguments) String(name string) (string, bool) {
	s, ok := a[name].(string)
	return s, ok
}

// Int returns the named argument as an int, if present. JSON decoding
// yields float64 or json.Number for numeric arguments, so both are
// accepted alongside native integer types.
func (a Arguments) Int(name string) (int, bool) {
	switch v := a[name].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
		return 0, false
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// Runtime is the process-wide context of every operation call: the store
// handle and the logger, constructed once during startup and passed by
// reference into each call.
type Runtime struct {
	Store  datastore.DataStore
	Logger *slog.Logger
}

// NewRuntime creates a Runtime around a store handle.
func NewRuntime(store datastore.DataStore, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime{Store: store, Logger: logger}
}

// Operation is one read-operation variant over a registered entity. The
// implementation set is closed: Get and GetAll.
//
// Execute receives the shared OperationData, the caller's raw arguments,
// and a base query template supplied by the schema layer; it only fills in
// filter and limit before serializing.
type Operation interface {
	Name(data *metadata.OperationData) string
	Arguments() []ArgumentSpec
	Field(data *metadata.OperationData) FieldSpec
	Execute(ctx context.Context, rt *Runtime, data *metadata.OperationData,
		args Arguments, query *aql.Query) (value.Value, error)
}

// RelationshipEdgeName derives the externally visible edge name of a
// relationship: the pluralized snake-case source entity name joined to the
// relationship name, e.g. {Name:"likes", From:"User"} -> "users_likes".
// The name must be unique across a given entity's relationships; collisions
// are not currently detected.
func RelationshipEdgeName(rel metadata.RelationshipDescriptor) string {
	return inflect.Plural(strcase.ToSnake(rel.From.Name)) + "_" + rel.Name
}

func pascalSingular(name string) string {
	return inflect.Singular(strcase.ToCamel(name))
}

func pascalPlural(name string) string {
	return inflect.Plural(strcase.ToCamel(name))
}
