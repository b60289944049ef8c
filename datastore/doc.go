/*
Package datastore defines the store-client contract for the Alchemy engine.

The main interface is DataStore, which executes one serialized query with
its bind table and returns the matching documents in store order:

	type DataStore interface {
	    Execute(ctx context.Context, query string, bindVars aql.BindVars) ([]Document, error)
	}

Implementations:
  - arango: ArangoDB implementation executing AQL over HTTP
  - mock: in-memory implementation for testing, with canned results and
    recorded calls

A Document is a plain map[string]interface{}; the value package converts it
into the typed tree consumed by the response protocol.
*/
package datastore
