package repository

import "context"

// Crud is the uniform persistence contract every entity type exposes.
// FindByKey, Update and Delete return *NotFoundError when k does not exist;
// an empty FindAll result is a valid empty slice, never an error.
type Crud[E any, K any] interface {
	FindAll(ctx context.Context) ([]E, error)
	FindByKey(ctx context.Context, k K) (*E, error)

	// Create persists the candidate and returns the stored row including
	// its assigned key. Implementations for surrogate-keyed entities
	// discard any caller-supplied key and generate a fresh one.
	Create(ctx context.Context, e *E) (*E, error)

	// Update replaces every mutable field of the row identified by k.
	// The key itself is immutable and never touched.
	Update(ctx context.Context, k K, e *E) (*E, error)

	Delete(ctx context.Context, k K) error
}
