/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package operation

import (
	"testing"

	"github.com/suparena/alchemy/metadata"
)

func pandeyData() *metadata.OperationData {
	return &metadata.OperationData{
		Entity: &metadata.EntityDescriptor{
			Name:           "Pandey",
			CollectionName: "pandeys",
		},
	}
}

func TestGetOperationName(t *testing.T) {
	cases := []struct {
		entity   string
		expected string
	}{
		{"Pandey", "getPandey"},
		{"pandey", "getPandey"},
		{"user", "getUser"},
		{"rating_system", "getRatingSystem"},
		// Singularization applies even when metadata declares a plural name
		{"users", "getUser"},
	}

	for _, c := range cases {
		data := &metadata.OperationData{
			Entity: &metadata.EntityDescriptor{Name: c.entity},
		}
		if got := (Get{}).Name(data); got != c.expected {
			t.Errorf("Get name for %q: expected %q, got %q", c.entity, c.expected, got)
		}
	}
}

func TestGetAllOperationName(t *testing.T) {
	cases := []struct {
		entity   string
		expected string
	}{
		{"Pandey", "getAllPandeys"},
		{"pandey", "getAllPandeys"},
		{"user", "getAllUsers"},
		{"rating_system", "getAllRatingSystems"},
	}

	for _, c := range cases {
		data := &metadata.OperationData{
			Entity: &metadata.EntityDescriptor{Name: c.entity},
		}
		if got := (GetAll{}).Name(data); got != c.expected {
			t.Errorf("GetAll name for %q: expected %q, got %q", c.entity, c.expected, got)
		}
	}
}

func TestNameDerivationIsDeterministic(t *testing.T) {
	data := pandeyData()
	if (Get{}).Name(data) != (Get{}).Name(data) {
		t.Error("Expected identical Get name across derivations")
	}
	if (GetAll{}).Name(data) != (GetAll{}).Name(data) {
		t.Error("Expected identical GetAll name across derivations")
	}
}

func TestRelationshipEdgeName(t *testing.T) {
	rel := metadata.RelationshipDescriptor{
		Name: "likes",
		From: metadata.EntityDescriptor{Name: "User"},
		To:   metadata.EntityDescriptor{Name: "Pandey"},
	}

	if got := RelationshipEdgeName(rel); got != "users_likes" {
		t.Errorf("Expected users_likes, got %q", got)
	}
}

func TestRelationshipEdgeNameSnakeCasesSource(t *testing.T) {
	rel := metadata.RelationshipDescriptor{
		Name: "owns",
		From: metadata.EntityDescriptor{Name: "RatingSystem"},
	}

	if got := RelationshipEdgeName(rel); got != "rating_systems_owns" {
		t.Errorf("Expected rating_systems_owns, got %q", got)
	}
}

func TestGetArgumentContract(t *testing.T) {
	args := (Get{}).Arguments()
	if len(args) != 1 {
		t.Fatalf("Expected 1 argument, got %d", len(args))
	}
	if args[0].Name != "id" || args[0].Type != ArgumentID || !args[0].Required {
		t.Errorf("Expected required id argument of type ID, got %+v", args[0])
	}
}

func TestGetAllArgumentContract(t *testing.T) {
	args := (GetAll{}).Arguments()
	if len(args) != 1 {
		t.Fatalf("Expected 1 argument, got %d", len(args))
	}
	if args[0].Name != "limit" || args[0].Type != ArgumentInt || args[0].Required {
		t.Errorf("Expected optional limit argument of type Int, got %+v", args[0])
	}
}

func TestFieldContracts(t *testing.T) {
	data := pandeyData()

	get := (Get{}).Field(data)
	if get.Kind != FieldSingleNullable {
		t.Error("Expected Get to yield a single nullable entity")
	}
	if get.Entity.Name != "Pandey" {
		t.Errorf("Expected field entity Pandey, got %q", get.Entity.Name)
	}

	all := (GetAll{}).Field(data)
	if all.Kind != FieldList {
		t.Error("Expected GetAll to yield a list")
	}
}

func TestArgumentsInt(t *testing.T) {
	args := Arguments{"a": 5, "b": float64(7), "c": float64(1.5), "d": "x"}

	if v, ok := args.Int("a"); !ok || v != 5 {
		t.Error("Expected int argument to decode")
	}
	if v, ok := args.Int("b"); !ok || v != 7 {
		t.Error("Expected integral float argument to decode")
	}
	if _, ok := args.Int("c"); ok {
		t.Error("Expected non-integral float argument to be rejected")
	}
	if _, ok := args.Int("d"); ok {
		t.Error("Expected string argument to be rejected as int")
	}
	if _, ok := args.Int("missing"); ok {
		t.Error("Expected missing argument to be absent")
	}
}
