/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package operation

import (
	"context"

	"github.com/suparena/alchemy/aql"
	"github.com/suparena/alchemy/errors"
	"github.com/suparena/alchemy/metadata"
	"github.com/suparena/alchemy/value"
)

// Get fetches a single entity by storage key. An empty result and a failed
// store execution both surface as NotFound; only the log distinguishes them.
type Get struct{}

// Name derives the operation key: "get" + Pascal-cased singular entity name.
func (Get) Name(data *metadata.OperationData) string {
	return "get" + pascalSingular(data.Entity.Name)
}

// Arguments declares the single required identifier argument.
func (Get) Arguments() []ArgumentSpec {
	return []ArgumentSpec{
		{Name: "id", Type: ArgumentID, Required: true},
	}
}

// Field declares a single, nullable entity result.
func (Get) Field(data *metadata.OperationData) FieldSpec {
	return FieldSpec{Kind: FieldSingleNullable, Entity: data.Entity}
}

// Execute filters the collection on _key equality against the bound id,
// limited to one document. The id value travels through the bind table,
// never through the query text.
func (Get) Execute(ctx context.Context, rt *Runtime, data *metadata.OperationData,
	args Arguments, query *aql.Query) (value.Value, error) {

	id, ok := args.String("id")
	if !ok {
		return value.Null(), errors.NewValidationError("id", "required argument missing")
	}

	query.SetFilter(aql.Equal(aql.Field("_key"), aql.Bind(query.ArgumentKey("id"))))
	query.SetLimit(1)

	bindVars := aql.BindVars{
		query.CollectionKey():   data.Entity.CollectionName,
		query.ArgumentKey("id"): id,
	}

	docs, err := rt.Store.Execute(ctx, query.Serialize(), bindVars)
	if err != nil {
		rt.Logger.Error("get execution failed",
			"entity", data.Entity.Name,
			"collection", data.Entity.CollectionName,
			"error", err)
		return value.Null(), errors.NewNotFoundError(data.Entity.Name)
	}
	if len(docs) == 0 {
		return value.Null(), errors.NewNotFoundError(data.Entity.Name)
	}

	return value.Convert(docs[0]), nil
}
