//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package arango

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"

	"github.com/suparena/alchemy/aql"
)

func getStore(t *testing.T) *Store {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	cfg := Config{
		Endpoints: []string{os.Getenv("ARANGO_ENDPOINTS")},
		Database:  os.Getenv("ARANGO_DATABASE"),
		Username:  os.Getenv("ARANGO_USERNAME"),
		Password:  os.Getenv("ARANGO_PASSWORD"),
	}
	if cfg.Endpoints[0] == "" || cfg.Database == "" {
		t.Skip("ARANGO_ENDPOINTS and ARANGO_DATABASE are required for integration tests")
	}

	store, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestEnsureCollections(t *testing.T) {
	store := getStore(t)

	err := store.EnsureCollections(context.Background(), []string{"alchemy_integration"})
	if err != nil {
		t.Fatal(err)
	}

	// Idempotent on the second pass
	err = store.EnsureCollections(context.Background(), []string{"alchemy_integration"})
	if err != nil {
		t.Fatal(err)
	}
}

func TestExecuteRoundTrip(t *testing.T) {
	store := getStore(t)
	ctx := context.Background()

	if err := store.EnsureCollections(ctx, []string{"alchemy_integration"}); err != nil {
		t.Fatal(err)
	}

	docs, err := store.Execute(ctx,
		"FOR d IN @@collection LIMIT 5 RETURN d",
		aql.BindVars{"@collection": "alchemy_integration"})
	if err != nil {
		t.Fatal(err)
	}

	t.Logf("Fetched %d documents", len(docs))
}
