/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package alchemy

import (
	"context"
	"log/slog"

	"github.com/suparena/alchemy/aql"
	"github.com/suparena/alchemy/datastore"
	"github.com/suparena/alchemy/metadata"
	"github.com/suparena/alchemy/operation"
	"github.com/suparena/alchemy/value"
)

// Engine is the schema-layer-facing facade over the operation registry. It
// is constructed once during startup with the store handle and passed by
// reference wherever calls are dispatched; no global state is involved.
type Engine struct {
	logger   *slog.Logger
	runtime  *operation.Runtime
	registry *operation.Registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used by the engine and every
// operation call.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine around a store handle.
func New(store datastore.DataStore, opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	e.runtime = operation.NewRuntime(store, e.logger)
	e.registry = operation.NewRegistry(e.runtime)
	return e
}

// RegisterEntity registers the Get and GetAll operations for one entity and
// returns the derived operation keys.
func (e *Engine) RegisterEntity(entity metadata.EntityDescriptor,
	relationships []metadata.RelationshipDescriptor) []string {

	keys := e.registry.RegisterEntity(entity, relationships)
	e.logger.Info("registered entity",
		"entity", entity.Name,
		"collection", entity.CollectionName,
		"operations", keys)
	return keys
}

// RegisterSchema registers every entity of a loaded metadata schema, each
// with the relationships that originate from it.
func (e *Engine) RegisterSchema(schema *metadata.Schema) {
	for _, entity := range schema.Entities {
		e.RegisterEntity(entity, schema.RelationshipsFor(entity.Name))
	}
}

// Call dispatches one operation invocation by key. Every invocation gets a
// fresh base query template; queries are never cached or shared across
// calls.
func (e *Engine) Call(ctx context.Context, key string, args operation.Arguments) (value.Value, error) {
	return e.registry.Call(ctx, key, args, aql.NewQuery())
}

// Registry exposes the operation registry for read-only enumeration by the
// schema-building collaborator.
func (e *Engine) Registry() *operation.Registry {
	return e.registry
}
