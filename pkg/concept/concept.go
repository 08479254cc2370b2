// Package concept contains the handles and value types shared by the executor and the datastores.
package concept

import (
	"fmt"
)

// ID identifies a concept within a datastore.
type ID string

// Kind is the structural kind of a concept.
type Kind int

const (
	KindUnknown Kind = iota
	// KindMetaType is the kind of the root "thing" type.
	KindMetaType
	KindEntityType
	KindRelationType
	KindAttributeType
	KindRole
	KindRule
	KindEntity
	KindRelation
	KindAttribute
)

var kindNames = map[Kind]string{
	KindUnknown:       "unknown",
	KindMetaType:      "meta-type",
	KindEntityType:    "entity-type",
	KindRelationType:  "relation-type",
	KindAttributeType: "attribute-type",
	KindRole:          "role",
	KindRule:          "rule",
	KindEntity:        "entity",
	KindRelation:      "relation",
	KindAttribute:     "attribute",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s && k != KindUnknown {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown concept kind '%s'", s)
}

// IsSchema reports whether concepts of this kind are schema concepts (carry a label).
func (k Kind) IsSchema() bool {
	switch k {
	case KindMetaType, KindEntityType, KindRelationType, KindAttributeType, KindRole, KindRule:
		return true
	default:
		return false
	}
}

// IsType reports whether concepts of this kind can have instances.
func (k Kind) IsType() bool {
	switch k {
	case KindMetaType, KindEntityType, KindRelationType, KindAttributeType:
		return true
	default:
		return false
	}
}

// IsThing reports whether concepts of this kind are instances.
func (k Kind) IsThing() bool {
	switch k {
	case KindEntity, KindRelation, KindAttribute:
		return true
	default:
		return false
	}
}

// InstanceKind returns the kind of the instances of a type of kind k.
func (k Kind) InstanceKind() Kind {
	switch k {
	case KindEntityType:
		return KindEntity
	case KindRelationType:
		return KindRelation
	case KindAttributeType:
		return KindAttribute
	default:
		return KindUnknown
	}
}

// Concept is a handle on a node of the graph. It is a snapshot: renaming a schema
// concept yields a new handle.
type Concept struct {
	ID    ID     `json:"id"`
	Kind  Kind   `json:"kind"`
	Label string `json:"label,omitempty"`
}

// IsSchemaConcept reports whether c is a schema concept.
func (c *Concept) IsSchemaConcept() bool {
	return c.Kind.IsSchema()
}

// IsType reports whether c is a type.
func (c *Concept) IsType() bool {
	return c.Kind.IsType()
}

// IsThing reports whether c is an instance.
func (c *Concept) IsThing() bool {
	return c.Kind.IsThing()
}

// IsMeta reports whether c is one of the built-in meta concepts.
func (c *Concept) IsMeta() bool {
	_, ok := metaByID[c.ID]
	return ok
}

func (c *Concept) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.Label != "" {
		return fmt.Sprintf("%s(%s '%s')", c.Kind, c.ID, c.Label)
	}
	return fmt.Sprintf("%s(%s)", c.Kind, c.ID)
}

// Labels of the built-in meta concepts.
const (
	MetaThing     = "thing"
	MetaEntity    = "entity"
	MetaRelation  = "relation"
	MetaAttribute = "attribute"
	MetaRole      = "role"
	MetaRule      = "rule"
)

// Meta is a built-in meta concept and its supertype label.
type Meta struct {
	Concept
	Sup string
}

var metaConcepts = []Meta{
	{Concept: Concept{ID: "V-thing", Kind: KindMetaType, Label: MetaThing}},
	{Concept: Concept{ID: "V-entity", Kind: KindEntityType, Label: MetaEntity}, Sup: MetaThing},
	{Concept: Concept{ID: "V-relation", Kind: KindRelationType, Label: MetaRelation}, Sup: MetaThing},
	{Concept: Concept{ID: "V-attribute", Kind: KindAttributeType, Label: MetaAttribute}, Sup: MetaThing},
	{Concept: Concept{ID: "V-role", Kind: KindRole, Label: MetaRole}},
	{Concept: Concept{ID: "V-rule", Kind: KindRule, Label: MetaRule}},
}

var (
	metaByID    = make(map[ID]Meta, len(metaConcepts))
	metaByLabel = make(map[string]Meta, len(metaConcepts))
)

func init() {
	for _, m := range metaConcepts {
		metaByID[m.ID] = m
		metaByLabel[m.Label] = m
	}
}

// MetaConcepts returns the built-in meta concepts, supertypes first.
func MetaConcepts() []Meta {
	out := make([]Meta, len(metaConcepts))
	copy(out, metaConcepts)
	return out
}

// MetaByLabel returns the meta concept with the given label.
func MetaByLabel(label string) (Meta, bool) {
	m, ok := metaByLabel[label]
	return m, ok
}

// IsMetaID reports whether id belongs to a meta concept.
func IsMetaID(id ID) bool {
	_, ok := metaByID[id]
	return ok
}

// IsMetaLabel reports whether label belongs to a meta concept.
func IsMetaLabel(label string) bool {
	_, ok := metaByLabel[label]
	return ok
}

// Implicit attribute ownership is modelled as a relation type per attribute type.
const implicitPrefix = "@has-"

// ImplicitLabels returns the labels of the relation type and its two roles that
// link owners to attributes of the attribute type labelled attributeType.
func ImplicitLabels(attributeType string) (relation, ownerRole, valueRole string) {
	relation = implicitPrefix + attributeType
	return relation, relation + "-owner", relation + "-value"
}

// IsImplicitLabel reports whether label names an implicit ownership concept.
func IsImplicitLabel(label string) bool {
	return len(label) > len(implicitPrefix) && label[:len(implicitPrefix)] == implicitPrefix
}
