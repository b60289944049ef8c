/*
Package alchemy turns declarative entity metadata into a set of read
operations over a document database.

Given an entity descriptor, the engine derives the externally visible
operation names (get<Entity>, getAll<Entities>), builds a parameterized AQL
query per call, executes it against the backing store, and converts the
returned documents into a typed value tree for the graph-query response
protocol.

Basic Usage:

	store, _ := arango.New(ctx, arango.Config{...}, logger)
	engine := alchemy.New(store, alchemy.WithLogger(logger))

	engine.RegisterEntity(metadata.EntityDescriptor{
	    Name:           "Pandey",
	    CollectionName: "pandeys",
	}, nil)

	result, err := engine.Call(ctx, "getPandey", operation.Arguments{"id": "123"})

The engine only reads. Writes, query languages beyond equality filtering
and limit, caching, and authorization are out of scope; transport and
schema construction live with the consuming collaborator, which enumerates
the registry's argument and field contracts to build its query surface.
*/
package alchemy
