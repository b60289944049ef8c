/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/alchemy/aql"
)

// Document is one semi-structured record returned by the store, compatible
// with the value converter's input.
type Document = map[string]interface{}

// DataStore executes serialized queries against the backing document
// database and returns the matching documents in store order.
//
// The contract is intentionally narrow: values travel out-of-band through
// bindVars, never inside the query text. Retries, timeouts, and connection
// pooling are the implementation's concern, not the caller's; the operation
// layer does neither.
type DataStore interface {
	Execute(ctx context.Context, query string, bindVars aql.BindVars) ([]Document, error)
}
