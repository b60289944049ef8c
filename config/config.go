/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads process configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/suparena/alchemy/errors"
)

// Config holds everything the alchemyd process needs at startup.
type Config struct {
	// Endpoints are the ArangoDB coordinator URLs (ARANGO_ENDPOINTS,
	// comma-separated).
	Endpoints []string
	// Database is the ArangoDB database name (ARANGO_DATABASE).
	Database string
	// Username and Password authenticate against the store
	// (ARANGO_USERNAME, ARANGO_PASSWORD).
	Username string
	Password string
	// BindAddress is the HTTP listen address (BIND_ADDRESS).
	BindAddress string
	// MetadataPath is the entity metadata YAML file (METADATA_PATH).
	MetadataPath string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present; real environment variables win over file entries.
func Load() (*Config, error) {
	// Missing .env is fine; environment variables may carry everything.
	_ = godotenv.Load()

	cfg := &Config{
		Endpoints:    splitList(getenv("ARANGO_ENDPOINTS", "http://localhost:8529")),
		Database:     getenv("ARANGO_DATABASE", "alchemy"),
		Username:     os.Getenv("ARANGO_USERNAME"),
		Password:     os.Getenv("ARANGO_PASSWORD"),
		BindAddress:  getenv("BIND_ADDRESS", ":8080"),
		MetadataPath: getenv("METADATA_PATH", "entities.yaml"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return errors.NewValidationError("ARANGO_ENDPOINTS", "at least one endpoint is required")
	}
	for _, e := range c.Endpoints {
		if e == "" {
			return errors.NewValidationError("ARANGO_ENDPOINTS", "endpoint must not be empty")
		}
	}
	if c.Database == "" {
		return errors.NewValidationError("ARANGO_DATABASE", "database name is required")
	}
	if c.BindAddress == "" {
		return errors.NewValidationError("BIND_ADDRESS", "listen address is required")
	}
	if c.MetadataPath == "" {
		return errors.NewValidationError("METADATA_PATH", "metadata file path is required")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
