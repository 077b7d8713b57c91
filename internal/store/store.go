package store

import "context"

// Store is the document-store contract the analytics core writes through.
// The discipline is always merge, never blind document overwrite: Merge
// initializes absent fields and updates present ones without replacing the
// rest of the document, and IncrementValue leaves ordering to the store's
// commutative server-side increment.
type Store interface {
	// Merge performs a set-with-merge at the given document path. Nested
	// maps merge field by field; sentinel values (IncrementValue,
	// ServerTimestamp) are translated by the implementation.
	Merge(ctx context.Context, path string, data map[string]any) error
}

// IncrementValue is a signed atomic increment applied server-side without a
// read step. Increment(0) initializes a missing numeric field to zero and
// leaves an existing value untouched, which is how first-writer
// initialization avoids racing a concurrent incrementer.
type IncrementValue struct {
	N int64
}

func Increment(n int64) IncrementValue {
	return IncrementValue{N: n}
}

type serverTimestamp struct{}

// ServerTimestamp resolves to the store's commit time.
var ServerTimestamp serverTimestamp
