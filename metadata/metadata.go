/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metadata

// EntityDescriptor identifies one externally queryable entity and its
// physical storage target. Descriptors are immutable after load.
type EntityDescriptor struct {
	// Name is the logical entity name (e.g. "Pandey"). Operation and edge
	// names are derived from it, so it must be stable.
	Name string

	// CollectionName is the document collection backing this entity.
	CollectionName string
}

// Cardinality describes the multiplicity of a relationship edge.
type Cardinality string

const (
	CardinalityOne  Cardinality = "one"
	CardinalityMany Cardinality = "many"
)

// RelationshipDescriptor describes a named, directed edge between two
// entities. Descriptors are immutable after load.
type RelationshipDescriptor struct {
	Name        string
	From        EntityDescriptor
	To          EntityDescriptor
	Cardinality Cardinality
}

// OperationData is the shared, read-only input of every operation variant
// registered for one entity. One instance is created per registered entity
// and shared by pointer between the variants; it outlives all calls that
// reference it and is released only when the registry itself is torn down.
type OperationData struct {
	Entity        *EntityDescriptor
	Relationships []RelationshipDescriptor
}
