/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/alchemy/errors"
)

// Schema is the parsed form of a metadata document. Entities appear in
// declaration order; relationships have their endpoints resolved against
// the declared entities.
type Schema struct {
	Entities      []EntityDescriptor
	Relationships []RelationshipDescriptor
}

// yamlSchema mirrors the on-disk YAML layout.
type yamlSchema struct {
	Entities []struct {
		Name       string `yaml:"name"`
		Collection string `yaml:"collection"`
	} `yaml:"entities"`
	Relationships []struct {
		Name        string `yaml:"name"`
		From        string `yaml:"from"`
		To          string `yaml:"to"`
		Cardinality string `yaml:"cardinality"`
	} `yaml:"relationships"`
}

// Load parses a YAML metadata document and resolves relationship endpoints.
func Load(data []byte) (*Schema, error) {
	var raw yamlSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	schema := &Schema{}
	byName := make(map[string]EntityDescriptor, len(raw.Entities))

	for _, e := range raw.Entities {
		if e.Name == "" {
			return nil, errors.NewValidationError("name", "entity name must not be empty")
		}
		if e.Collection == "" {
			return nil, errors.NewValidationError("collection",
				fmt.Sprintf("entity %q has no collection", e.Name))
		}
		if _, exists := byName[e.Name]; exists {
			return nil, errors.NewValidationError("name",
				fmt.Sprintf("entity %q declared twice", e.Name))
		}
		desc := EntityDescriptor{Name: e.Name, CollectionName: e.Collection}
		byName[e.Name] = desc
		schema.Entities = append(schema.Entities, desc)
	}

	for _, r := range raw.Relationships {
		if r.Name == "" {
			return nil, errors.NewValidationError("name", "relationship name must not be empty")
		}
		from, ok := byName[r.From]
		if !ok {
			return nil, errors.NewValidationError("from",
				fmt.Sprintf("relationship %q references unknown entity %q", r.Name, r.From))
		}
		to, ok := byName[r.To]
		if !ok {
			return nil, errors.NewValidationError("to",
				fmt.Sprintf("relationship %q references unknown entity %q", r.Name, r.To))
		}
		card := Cardinality(r.Cardinality)
		switch card {
		case "":
			card = CardinalityMany
		case CardinalityOne, CardinalityMany:
		default:
			return nil, errors.NewValidationError("cardinality",
				fmt.Sprintf("relationship %q has unknown cardinality %q", r.Name, r.Cardinality))
		}
		schema.Relationships = append(schema.Relationships, RelationshipDescriptor{
			Name:        r.Name,
			From:        from,
			To:          to,
			Cardinality: card,
		})
	}

	return schema, nil
}

// LoadFile reads and parses a YAML metadata file.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	return Load(data)
}

// Collections returns the distinct collection names of the schema's
// entities, in declaration order.
func (s *Schema) Collections() []string {
	seen := make(map[string]bool, len(s.Entities))
	var out []string
	for _, e := range s.Entities {
		if seen[e.CollectionName] {
			continue
		}
		seen[e.CollectionName] = true
		out = append(out, e.CollectionName)
	}
	return out
}

// RelationshipsFor returns the relationships whose source is the named
// entity, in declaration order.
func (s *Schema) RelationshipsFor(entity string) []RelationshipDescriptor {
	var out []RelationshipDescriptor
	for _, r := range s.Relationships {
		if r.From.Name == entity {
			out = append(out, r)
		}
	}
	return out
}
