/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package operation

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/alchemy/aql"
	"github.com/suparena/alchemy/errors"
	"github.com/suparena/alchemy/metadata"
	"github.com/suparena/alchemy/value"
)

// variants is the closed set registered for every entity.
var variants = []Operation{Get{}, GetAll{}}

// Entry binds one operation variant to the shared data of its entity.
type Entry struct {
	Operation Operation
	Data      *metadata.OperationData
}

// Registry maps derived operation keys to entries and dispatches calls by
// key. Populate it during startup; it is read-only afterwards, so calls
// take no lock.
type Registry struct {
	runtime *Runtime
	entries map[string]Entry
}

// NewRegistry creates an empty registry bound to a runtime.
func NewRegistry(rt *Runtime) *Registry {
	return &Registry{
		runtime: rt,
		entries: make(map[string]Entry),
	}
}

// RegisterEntity creates one shared OperationData for the entity and
// registers the Get and GetAll variants under their derived keys. The keys
// are returned in variant order. Re-registering an entity silently
// overwrites the prior entries for the same keys; the last registration
// wins.
func (r *Registry) RegisterEntity(entity metadata.EntityDescriptor,
	relationships []metadata.RelationshipDescriptor) []string {

	data := &metadata.OperationData{
		Entity:        &entity,
		Relationships: relationships,
	}

	keys := make([]string, 0, len(variants))
	for _, op := range variants {
		key := op.Name(data)
		r.entries[key] = Entry{Operation: op, Data: data}
		keys = append(keys, key)
	}
	return keys
}

// Call dispatches one invocation by key. The query is the base template
// supplied by the schema layer; the matched variant fills in filter and
// limit. Unknown keys return an UnknownOperationError for the caller to
// map to its unknown-field condition.
func (r *Registry) Call(ctx context.Context, key string, args Arguments,
	query *aql.Query) (value.Value, error) {

	entry, ok := r.entries[key]
	if !ok {
		return value.Null(), errors.NewUnknownOperationError(key)
	}

	callID := uuid.NewString()
	start := time.Now()

	result, err := entry.Operation.Execute(ctx, r.runtime, entry.Data, args, query)

	if err != nil {
		r.runtime.Logger.Debug("operation call failed",
			"call_id", callID,
			"operation", key,
			"entity", entry.Data.Entity.Name,
			"duration", time.Since(start),
			"error", err)
	} else {
		r.runtime.Logger.Debug("operation call succeeded",
			"call_id", callID,
			"operation", key,
			"entity", entry.Data.Entity.Name,
			"duration", time.Since(start))
	}

	return result, err
}

// Entry returns the entry registered under a key, if any.
func (r *Registry) Entry(key string) (Entry, bool) {
	entry, ok := r.entries[key]
	return entry, ok
}

// Entries returns a copy of the registered entries for read-only
// enumeration by the schema-building collaborator.
func (r *Registry) Entries() map[string]Entry {
	out := make(map[string]Entry, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}

// Keys returns the registered operation keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
