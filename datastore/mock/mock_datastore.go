/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the DataStore interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/alchemy/aql"
	"github.com/suparena/alchemy/datastore"
)

// Call records one Execute invocation for later assertions.
type Call struct {
	Query    string
	BindVars aql.BindVars
}

// DataStore is a mock implementation of datastore.DataStore for testing
type DataStore struct {
	mu          sync.Mutex
	results     []datastore.Document
	executeErr  error
	executeFunc func(ctx context.Context, query string, bindVars aql.BindVars) ([]datastore.Document, error)
	calls       []Call
}

// New creates a new mock DataStore
func New() *DataStore {
	return &DataStore{}
}

// WithResults sets the documents every Execute call returns
func (m *DataStore) WithResults(docs ...datastore.Document) *DataStore {
	m.results = docs
	return m
}

// WithError makes Execute return an error
func (m *DataStore) WithError(err error) *DataStore {
	m.executeErr = err
	return m
}

// WithExecuteFunc sets a custom execute function for testing
func (m *DataStore) WithExecuteFunc(
	f func(ctx context.Context, query string, bindVars aql.BindVars) ([]datastore.Document, error),
) *DataStore {
	m.executeFunc = f
	return m
}

// Execute records the call and returns the configured results or error.
func (m *DataStore) Execute(ctx context.Context, query string, bindVars aql.BindVars) ([]datastore.Document, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Query: query, BindVars: bindVars})
	m.mu.Unlock()

	if m.executeFunc != nil {
		return m.executeFunc(ctx, query, bindVars)
	}
	if m.executeErr != nil {
		return nil, m.executeErr
	}
	return m.results, nil
}

// Calls returns a copy of the recorded Execute invocations.
func (m *DataStore) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// LastCall returns the most recent Execute invocation and whether one exists.
func (m *DataStore) LastCall() (Call, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.calls) == 0 {
		return Call{}, false
	}
	return m.calls[len(m.calls)-1], true
}
