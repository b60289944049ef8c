/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package operation

import (
	"context"

	"github.com/suparena/alchemy/aql"
	"github.com/suparena/alchemy/metadata"
	"github.com/suparena/alchemy/value"
)

// GetAll fetches every entity in the collection, optionally limited. An
// empty result set is success with an empty list. A failed store execution
// is logged and masked as an empty list rather than propagated.
type GetAll struct{}

// Name derives the operation key: "getAll" + Pascal-cased plural entity name.
func (GetAll) Name(data *metadata.OperationData) string {
	return "getAll" + pascalPlural(data.Entity.Name)
}

// Arguments declares the single optional limit argument.
func (GetAll) Arguments() []ArgumentSpec {
	return []ArgumentSpec{
		{Name: "limit", Type: ArgumentInt, Required: false},
	}
}

// Field declares an ordered, never-null list of entity values.
func (GetAll) Field(data *metadata.OperationData) FieldSpec {
	return FieldSpec{Kind: FieldList, Entity: data.Entity}
}

// Execute runs the unfiltered collection query. Only the collection name is
// bound; a limit clause is emitted only when the caller supplied one.
func (GetAll) Execute(ctx context.Context, rt *Runtime, data *metadata.OperationData,
	args Arguments, query *aql.Query) (value.Value, error) {

	if limit, ok := args.Int("limit"); ok {
		query.SetLimit(limit)
	}

	bindVars := aql.BindVars{
		query.CollectionKey(): data.Entity.CollectionName,
	}

	docs, err := rt.Store.Execute(ctx, query.Serialize(), bindVars)
	if err != nil {
		rt.Logger.Error("getAll execution failed",
			"entity", data.Entity.Name,
			"collection", data.Entity.CollectionName,
			"error", err)
		return value.List(nil), nil
	}

	items := make([]value.Value, len(docs))
	for i, doc := range docs {
		items[i] = value.Convert(doc)
	}
	return value.List(items), nil
}
