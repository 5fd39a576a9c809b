// Package repository defines the storage contracts of the dimensional model
// and the error taxonomy every implementation must honor. All errors are
// returned as values; implementations never panic on a per-call failure.
package repository

import "fmt"

// NotFoundError reports that a key does not exist in its table. It carries
// the entity name and the missing key so callers can distinguish which
// lookup failed.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with key: %v", e.Entity, e.Key)
}

// ReferentialError reports that a foreign key on a fact write does not
// resolve against its target table. Field names the offending reference in
// entity field order; the first unresolved reference is reported, never a
// merged report.
type ReferentialError struct {
	Field string
	Key   any
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("reference %s does not resolve: %v", e.Field, e.Key)
}

// ValidationError reports a scalar constraint violation on a candidate row.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// ConflictError reports a storage-level uniqueness violation, e.g. a second
// stock with an already registered asset type.
type ConflictError struct {
	Entity string
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflicts with an existing row: %s", e.Entity, e.Detail)
}
