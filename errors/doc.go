/*
Package errors provides semantic error types for the Alchemy engine.

The package defines the error scenarios of the operation layer with specific
types that can be checked using the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrNotFound         = errors.New("entity not found")
	    ErrUnknownOperation = errors.New("no such operation")
	    ErrInvalidInput     = errors.New("invalid input")
	)

Usage:

	_, err := engine.Call(ctx, "getPandey", args)
	if errors.IsNotFound(err) {
	    // zero rows matched, or the store execution itself failed;
	    // the two cases are intentionally indistinguishable here
	}

NotFoundError carries only the entity name. The operation layer logs the
underlying cause before folding both legitimate absence and store failures
into it.
*/
package errors
