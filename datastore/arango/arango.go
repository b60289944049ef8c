/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package arango implements the DataStore interface on top of ArangoDB.
package arango

import (
	"context"
	"fmt"
	"log/slog"

	driver "github.com/arangodb/go-driver"
	arangohttp "github.com/arangodb/go-driver/http"

	"github.com/suparena/alchemy/aql"
	"github.com/suparena/alchemy/datastore"
)

// Config holds the connection settings for one ArangoDB database.
type Config struct {
	// Endpoints are the coordinator URLs, e.g. "http://localhost:8529".
	Endpoints []string
	// Database is the database name.
	Database string
	// Username and Password are used for basic authentication.
	Username string
	Password string
}

// Store implements datastore.DataStore against one ArangoDB database. The
// store is constructed once during startup and shared by every call; it
// holds no per-call state.
type Store struct {
	db     driver.Database
	logger *slog.Logger
}

// New connects to ArangoDB and opens the configured database.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := arangohttp.NewConnection(arangohttp.ConnectionConfig{
		Endpoints: cfg.Endpoints,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.BasicAuthentication(cfg.Username, cfg.Password),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	db, err := client.Database(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Database, err)
	}

	logger.Info("connected to arangodb",
		"database", cfg.Database,
		"endpoints", cfg.Endpoints)

	return &Store{db: db, logger: logger}, nil
}

// Execute runs one serialized AQL query with its bind table and drains the
// cursor into a document slice, preserving store order.
func (s *Store) Execute(ctx context.Context, query string, bindVars aql.BindVars) ([]datastore.Document, error) {
	cursor, err := s.db.Query(ctx, query, bindVars)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer cursor.Close()

	var docs []datastore.Document
	for {
		var doc datastore.Document
		_, err := cursor.ReadDocument(ctx, &doc)
		if driver.IsNoMoreDocuments(err) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cursor read error: %w", err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// EnsureCollections creates any of the named collections that do not exist
// yet. Existing collections are left untouched.
func (s *Store) EnsureCollections(ctx context.Context, names []string) error {
	for _, name := range names {
		exists, err := s.db.CollectionExists(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check collection %q: %w", name, err)
		}
		if exists {
			continue
		}
		if _, err := s.db.CreateCollection(ctx, name, nil); err != nil {
			return fmt.Errorf("failed to create collection %q: %w", name, err)
		}
		s.logger.Info("created collection", "collection", name)
	}
	return nil
}

var _ datastore.DataStore = (*Store)(nil)
