package store

import "errors"

var (
	// ErrTokensNotFound is returned by LoadTokens when no complete
	// credential pair is stored.
	ErrTokensNotFound = errors.New("stored tokens not found")

	// ErrIncompleteTokenPair is returned by SaveTokens when either token of
	// the pair is empty. Persisting half a pair would violate the
	// both-or-nothing storage invariant.
	ErrIncompleteTokenPair = errors.New("incomplete token pair")
)
