package storage

import (
	"errors"
	"fmt"

	"github.com/typedb/typedb-sub018/pkg/concept"
)

var (
	// ErrNotFound if a concept does not exist.
	ErrNotFound = errors.New("not found")

	// ErrLabelTaken if a label is already used by a schema concept of another kind.
	ErrLabelTaken = errors.New("label already taken")

	// ErrInvalidSchema if a schema mutation would leave the schema inconsistent.
	ErrInvalidSchema = errors.New("invalid schema operation")

	// ErrAbstractType if an abstract type is instantiated.
	ErrAbstractType = errors.New("abstract type cannot have instances")

	// ErrInvalidValue if a value does not fit an attribute type.
	ErrInvalidValue = concept.ErrInvalidValue

	// ErrMetaConcept if a built-in meta concept is mutated.
	ErrMetaConcept = errors.New("meta concepts cannot be modified")

	// ErrTransactionClosed if a transaction is used after Commit or Rollback.
	ErrTransactionClosed = errors.New("transaction closed")

	// ErrCollision if a row violates a uniqueness constraint of the datastore.
	ErrCollision = errors.New("item already exists")
)

// ConceptNotFoundError reports a missing concept id.
func ConceptNotFoundError(id concept.ID) error {
	return fmt.Errorf("concept '%s': %w", id, ErrNotFound)
}

// LabelNotFoundError reports a missing schema concept label.
func LabelNotFoundError(label string) error {
	return fmt.Errorf("schema concept '%s': %w", label, ErrNotFound)
}

// LabelTakenError reports a label used by a concept of another kind.
func LabelTakenError(label string, existing concept.Kind) error {
	return fmt.Errorf("'%s' is already a %s: %w", label, existing, ErrLabelTaken)
}

// InvalidSchemaError wraps ErrInvalidSchema with a reason.
func InvalidSchemaError(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidSchema)...)
}

// MetaConceptError reports a mutation of the meta concept labelled label.
func MetaConceptError(label string) error {
	return fmt.Errorf("'%s': %w", label, ErrMetaConcept)
}
