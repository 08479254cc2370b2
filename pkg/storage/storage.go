// Package storage contains the transaction interfaces the write engine drives and
// the datastores implementing them.
//
//go:generate mockgen -source storage.go -destination ../../internal/mocks/mock_storage.go -package mocks Datastore,ConceptTx
package storage

import (
	"context"

	"github.com/typedb/typedb-sub018/pkg/concept"
)

// EdgeKind is the kind of a schema edge between two schema concepts.
type EdgeKind string

const (
	// EdgeRelates links a relation type to a role it relates.
	EdgeRelates EdgeKind = "relates"
	// EdgePlays links a type to a role its instances may play.
	EdgePlays EdgeKind = "plays"
	// EdgeHas links a type to an attribute type its instances may own.
	EdgeHas EdgeKind = "has"
	// EdgeKey is EdgeHas where the attribute is a key.
	EdgeKey EdgeKind = "key"
)

// RolePlayer is a (role, player) pair of a relation instance.
type RolePlayer struct {
	Role   concept.ID
	Player concept.ID
}

// ConceptReader reads concepts within a transaction.
type ConceptReader interface {
	// GetConcept returns the concept with the given id, or ErrNotFound.
	GetConcept(ctx context.Context, id concept.ID) (*concept.Concept, error)

	// GetSchemaConcept returns the schema concept with the given label, or ErrNotFound.
	GetSchemaConcept(ctx context.Context, label string) (*concept.Concept, error)

	// SchemaConcepts returns every schema concept ordered by label.
	SchemaConcepts(ctx context.Context) ([]*concept.Concept, error)

	// Sup returns the direct supertype of a schema concept, or nil if it has none.
	Sup(ctx context.Context, id concept.ID) (*concept.Concept, error)

	// TypeOf returns the type of an instance.
	TypeOf(ctx context.Context, id concept.ID) (*concept.Concept, error)

	// AttributeValue returns the normalized value of an attribute.
	AttributeValue(ctx context.Context, id concept.ID) (any, error)

	// DataType returns the data type of an attribute type, or "" for other concepts.
	DataType(ctx context.Context, id concept.ID) (concept.DataType, error)

	// Rule returns the when and then patterns of a rule.
	Rule(ctx context.Context, id concept.ID) (when string, then string, err error)

	// Regex returns the regex of an attribute type, or "" if it has none.
	Regex(ctx context.Context, id concept.ID) (string, error)

	// IsAbstract reports whether a type is abstract.
	IsAbstract(ctx context.Context, id concept.ID) (bool, error)

	// SchemaEdges returns the targets of the edges of the given kind leaving from.
	SchemaEdges(ctx context.Context, kind EdgeKind, from concept.ID) ([]concept.ID, error)

	// RolePlayers returns the role players of a relation.
	RolePlayers(ctx context.Context, relation concept.ID) ([]RolePlayer, error)

	// Attributes returns the attributes owned by a thing.
	Attributes(ctx context.Context, owner concept.ID) ([]concept.ID, error)
}

// ConceptWriter mutates concepts within a transaction. Put operations return the
// existing schema concept when one with the same label and kind exists.
type ConceptWriter interface {
	PutEntityType(ctx context.Context, label string) (*concept.Concept, error)
	PutRelationType(ctx context.Context, label string) (*concept.Concept, error)
	PutRole(ctx context.Context, label string) (*concept.Concept, error)
	PutAttributeType(ctx context.Context, label string, dataType concept.DataType) (*concept.Concept, error)
	PutRule(ctx context.Context, label, when, then string) (*concept.Concept, error)

	// SetSuper makes sup the direct supertype of id. Both must be schema concepts of
	// compatible kinds and the assignment must not introduce a cycle.
	SetSuper(ctx context.Context, id, sup concept.ID) error

	// SetLabel renames a schema concept and returns the updated handle.
	SetLabel(ctx context.Context, id concept.ID, label string) (*concept.Concept, error)

	SetAbstract(ctx context.Context, id concept.ID, abstract bool) error

	// SetRegex sets the regex of a string attribute type. An empty regex clears it.
	SetRegex(ctx context.Context, id concept.ID, regex string) error

	PutSchemaEdge(ctx context.Context, kind EdgeKind, from, to concept.ID) error

	// DeleteSchemaEdge removes an edge. Removing a missing edge is not an error.
	DeleteSchemaEdge(ctx context.Context, kind EdgeKind, from, to concept.ID) error

	AddEntity(ctx context.Context, typ concept.ID) (*concept.Concept, error)
	AddRelation(ctx context.Context, typ concept.ID) (*concept.Concept, error)

	// PutAttribute returns the attribute of typ holding value, creating it if needed.
	PutAttribute(ctx context.Context, typ concept.ID, value any) (*concept.Concept, error)

	// Assign makes player play role in relation.
	Assign(ctx context.Context, relation, role, player concept.ID) error

	// AttachAttribute makes owner own attribute and returns the implicit relation
	// linking them. Attaching an attribute twice returns the same relation.
	AttachAttribute(ctx context.Context, owner, attribute concept.ID) (*concept.Concept, error)

	// Delete removes a concept. Schema concepts can only be deleted when they have
	// no subtypes and no instances.
	Delete(ctx context.Context, id concept.ID) error
}

// ConceptTx is a read-write transaction. Exactly one of Commit or Rollback must be
// called. Rollback after Commit is a no-op.
type ConceptTx interface {
	ConceptReader
	ConceptWriter

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Datastore is a store of concepts.
type Datastore interface {
	// Begin opens a read-write transaction.
	Begin(ctx context.Context) (ConceptTx, error)

	// IsReady reports whether the datastore is ready to accept traffic.
	IsReady(ctx context.Context) (ReadinessStatus, error)

	// Close closes the datastore and cleans up any residual resources.
	Close()
}

// ReadinessStatus represents the readiness status of the datastore.
type ReadinessStatus struct {
	// Message is a human-friendly status message for the current datastore status.
	Message string

	IsReady bool
}
