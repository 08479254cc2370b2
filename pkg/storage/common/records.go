// Package common implements the concept transaction semantics shared by every
// datastore on top of a row level Records backend.
package common

import (
	"context"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

// Record is the stored form of one concept.
type Record struct {
	ID       concept.ID
	Kind     concept.Kind
	Label    string
	Sup      concept.ID
	Abstract bool
	// DataType is set on attribute types and copied onto their attributes.
	DataType concept.DataType
	Regex    string
	When     string
	Then     string
	// Type is the type of an instance.
	Type concept.ID
	// Value is the attribute value encoded with DataType.
	Value string
}

func (r *Record) Concept() *concept.Concept {
	return &concept.Concept{ID: r.ID, Kind: r.Kind, Label: r.Label}
}

func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// Edge is a schema edge. As a filter, zero fields match anything.
type Edge struct {
	Kind storage.EdgeKind
	From concept.ID
	To   concept.ID
}

func (f Edge) Matches(e Edge) bool {
	return (f.Kind == "" || f.Kind == e.Kind) &&
		(f.From == "" || f.From == e.From) &&
		(f.To == "" || f.To == e.To)
}

// Casting is one role player of a relation. As a filter, zero fields match anything.
type Casting struct {
	Relation concept.ID
	Role     concept.ID
	Player   concept.ID
}

func (f Casting) Matches(c Casting) bool {
	return (f.Relation == "" || f.Relation == c.Relation) &&
		(f.Role == "" || f.Role == c.Role) &&
		(f.Player == "" || f.Player == c.Player)
}

// Ownership links an owner to an attribute through an implicit relation. As a
// filter, zero fields match anything.
type Ownership struct {
	Owner     concept.ID
	Attribute concept.ID
	Relation  concept.ID
}

func (f Ownership) Matches(o Ownership) bool {
	return (f.Owner == "" || f.Owner == o.Owner) &&
		(f.Attribute == "" || f.Attribute == o.Attribute) &&
		(f.Relation == "" || f.Relation == o.Relation)
}

// Records is the row level view of a datastore transaction. It enforces no
// schema rules. Lookups of missing rows return storage.ErrNotFound. Edges,
// castings and ownerships are returned in insertion order.
type Records interface {
	Get(ctx context.Context, id concept.ID) (*Record, error)
	GetByLabel(ctx context.Context, label string) (*Record, error)
	// Schema returns every schema concept ordered by label.
	Schema(ctx context.Context) ([]*Record, error)
	// Children returns the direct subtypes of sup ordered by label.
	Children(ctx context.Context, sup concept.ID) ([]*Record, error)
	// Instances returns up to limit direct instances of typ, all of them when limit is 0.
	Instances(ctx context.Context, typ concept.ID, limit int) ([]*Record, error)
	AttributeByValue(ctx context.Context, typ concept.ID, value string) (*Record, error)
	Insert(ctx context.Context, r *Record) error
	Update(ctx context.Context, r *Record) error
	Remove(ctx context.Context, id concept.ID) error

	Edges(ctx context.Context, filter Edge) ([]Edge, error)
	InsertEdge(ctx context.Context, e Edge) error
	DeleteEdges(ctx context.Context, filter Edge) error

	Castings(ctx context.Context, filter Casting) ([]Casting, error)
	InsertCasting(ctx context.Context, c Casting) error
	DeleteCastings(ctx context.Context, filter Casting) error

	Ownerships(ctx context.Context, filter Ownership) ([]Ownership, error)
	InsertOwnership(ctx context.Context, o Ownership) error
	DeleteOwnerships(ctx context.Context, filter Ownership) error
}

// Backend is a Records view bound to one underlying transaction.
type Backend interface {
	Records

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// MetaRecords returns the records of the built-in meta concepts, supertypes first.
func MetaRecords() []*Record {
	metas := concept.MetaConcepts()
	out := make([]*Record, 0, len(metas))
	for _, m := range metas {
		r := &Record{
			ID:    m.ID,
			Kind:  m.Kind,
			Label: m.Label,
			// only user defined subtypes of thing can have instances
			Abstract: m.Kind.IsType(),
		}
		if m.Sup != "" {
			sup, _ := concept.MetaByLabel(m.Sup)
			r.Sup = sup.ID
		}
		out = append(out, r)
	}
	return out
}

// metaSup returns the meta concept new schema concepts of kind k start under.
func metaSup(k concept.Kind) concept.ID {
	var label string
	switch k {
	case concept.KindEntityType:
		label = concept.MetaEntity
	case concept.KindRelationType:
		label = concept.MetaRelation
	case concept.KindAttributeType:
		label = concept.MetaAttribute
	case concept.KindRole:
		label = concept.MetaRole
	case concept.KindRule:
		label = concept.MetaRule
	default:
		return ""
	}
	m, _ := concept.MetaByLabel(label)
	return m.ID
}
