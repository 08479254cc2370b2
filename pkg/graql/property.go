package graql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/typedb/typedb-sub018/pkg/concept"
)

// Property is an atomic fact attached to the subject variable of a statement.
// The set of implementations is closed.
type Property interface {
	// UniquelyIdentifiesConcept reports whether two variables carrying an equal
	// property must denote the same concept.
	UniquelyIdentifiesConcept() bool
	// Vars returns the variables referenced by the property, excluding the subject.
	Vars() []Variable
	// String is the canonical rendering of the property, also used as its equality key.
	String() string

	isProperty()
}

// IsaProperty states that the subject is an instance of Type.
type IsaProperty struct {
	Type Variable
}

// SubProperty states that Type is the direct supertype of the subject.
type SubProperty struct {
	Type Variable
}

// LabelProperty names a schema concept.
type LabelProperty struct {
	Label string
}

// IDProperty identifies an existing concept.
type IDProperty struct {
	ID concept.ID
}

// ValueProperty constrains the value of an attribute.
type ValueProperty struct {
	Comparator string
	Value      any
}

// DataTypeProperty sets the data type of an attribute type.
type DataTypeProperty struct {
	DataType concept.DataType
}

// RelatesProperty states that the subject relation type relates Role. When
// SuperRole is set, Role is declared as a subtype of it.
type RelatesProperty struct {
	Role      Variable
	SuperRole *Variable
}

// PlaysProperty states that the subject type plays Role.
type PlaysProperty struct {
	Role Variable
}

// RegexProperty constrains the values of a string attribute type.
type RegexProperty struct {
	Regex string
}

// AbstractProperty marks the subject type as abstract.
type AbstractProperty struct{}

// HasAttributeProperty attaches Attribute, an instance of the attribute type
// labelled Type, to the subject through the implicit relation Relation.
type HasAttributeProperty struct {
	Type      string
	Attribute Variable
	Relation  Variable
}

// HasAttributeTypeProperty allows instances of the subject to own attributes of
// Type. Key makes the attribute a key.
type HasAttributeTypeProperty struct {
	Type Variable
	Key  bool
}

// RolePlayer is one (role, player) pair of a RelationProperty.
type RolePlayer struct {
	Role   Variable
	Player Variable
}

// RelationProperty lists the role players of the subject relation.
type RelationProperty struct {
	RolePlayers []RolePlayer
}

// WhenProperty is the body of a rule.
type WhenProperty struct {
	Pattern string
}

// ThenProperty is the head of a rule.
type ThenProperty struct {
	Pattern string
}

func (IsaProperty) isProperty()              {}
func (SubProperty) isProperty()              {}
func (LabelProperty) isProperty()            {}
func (IDProperty) isProperty()               {}
func (ValueProperty) isProperty()            {}
func (DataTypeProperty) isProperty()         {}
func (RelatesProperty) isProperty()          {}
func (PlaysProperty) isProperty()            {}
func (RegexProperty) isProperty()            {}
func (AbstractProperty) isProperty()         {}
func (HasAttributeProperty) isProperty()     {}
func (HasAttributeTypeProperty) isProperty() {}
func (RelationProperty) isProperty()         {}
func (WhenProperty) isProperty()             {}
func (ThenProperty) isProperty()             {}

func (IsaProperty) UniquelyIdentifiesConcept() bool              { return false }
func (SubProperty) UniquelyIdentifiesConcept() bool              { return false }
func (LabelProperty) UniquelyIdentifiesConcept() bool            { return true }
func (IDProperty) UniquelyIdentifiesConcept() bool               { return true }
func (ValueProperty) UniquelyIdentifiesConcept() bool            { return false }
func (DataTypeProperty) UniquelyIdentifiesConcept() bool         { return false }
func (RelatesProperty) UniquelyIdentifiesConcept() bool          { return false }
func (PlaysProperty) UniquelyIdentifiesConcept() bool            { return false }
func (RegexProperty) UniquelyIdentifiesConcept() bool            { return false }
func (AbstractProperty) UniquelyIdentifiesConcept() bool         { return false }
func (HasAttributeProperty) UniquelyIdentifiesConcept() bool     { return false }
func (HasAttributeTypeProperty) UniquelyIdentifiesConcept() bool { return false }
func (RelationProperty) UniquelyIdentifiesConcept() bool         { return false }
func (WhenProperty) UniquelyIdentifiesConcept() bool             { return false }
func (ThenProperty) UniquelyIdentifiesConcept() bool             { return false }

func (p IsaProperty) Vars() []Variable    { return []Variable{p.Type} }
func (p SubProperty) Vars() []Variable    { return []Variable{p.Type} }
func (LabelProperty) Vars() []Variable    { return nil }
func (IDProperty) Vars() []Variable       { return nil }
func (ValueProperty) Vars() []Variable    { return nil }
func (DataTypeProperty) Vars() []Variable { return nil }
func (p PlaysProperty) Vars() []Variable  { return []Variable{p.Role} }
func (RegexProperty) Vars() []Variable    { return nil }
func (AbstractProperty) Vars() []Variable { return nil }
func (WhenProperty) Vars() []Variable     { return nil }
func (ThenProperty) Vars() []Variable     { return nil }

func (p RelatesProperty) Vars() []Variable {
	if p.SuperRole != nil {
		return []Variable{p.Role, *p.SuperRole}
	}
	return []Variable{p.Role}
}

func (p HasAttributeProperty) Vars() []Variable {
	return []Variable{p.Attribute, p.Relation}
}

func (p HasAttributeTypeProperty) Vars() []Variable {
	return []Variable{p.Type}
}

func (p RelationProperty) Vars() []Variable {
	vars := make([]Variable, 0, 2*len(p.RolePlayers))
	for _, rp := range p.RolePlayers {
		vars = append(vars, rp.Role, rp.Player)
	}
	return vars
}

func (p IsaProperty) String() string      { return "isa " + p.Type.String() }
func (p SubProperty) String() string      { return "sub " + p.Type.String() }
func (p LabelProperty) String() string    { return "label " + p.Label }
func (p IDProperty) String() string       { return "id " + string(p.ID) }
func (p DataTypeProperty) String() string { return "datatype " + string(p.DataType) }
func (p PlaysProperty) String() string    { return "plays " + p.Role.String() }
func (p RegexProperty) String() string    { return "regex " + strconv.Quote(p.Regex) }
func (AbstractProperty) String() string   { return "is-abstract" }
func (p WhenProperty) String() string     { return "when { " + p.Pattern + " }" }
func (p ThenProperty) String() string     { return "then { " + p.Pattern + " }" }

func (p ValueProperty) String() string {
	comparator := p.Comparator
	if comparator == "" {
		comparator = "=="
	}
	if s, ok := p.Value.(string); ok {
		return comparator + " " + strconv.Quote(s)
	}
	return fmt.Sprintf("%s %v", comparator, p.Value)
}

func (p RelatesProperty) String() string {
	if p.SuperRole != nil {
		return "relates " + p.Role.String() + " as " + p.SuperRole.String()
	}
	return "relates " + p.Role.String()
}

func (p HasAttributeProperty) String() string {
	return "has " + p.Type + " " + p.Attribute.String() + " via " + p.Relation.String()
}

func (p HasAttributeTypeProperty) String() string {
	if p.Key {
		return "key " + p.Type.String()
	}
	return "has " + p.Type.String()
}

func (p RelationProperty) String() string {
	parts := make([]string, 0, len(p.RolePlayers))
	for _, rp := range p.RolePlayers {
		parts = append(parts, rp.Role.String()+": "+rp.Player.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// IsAssignment reports whether the value property assigns rather than compares.
func (p ValueProperty) IsAssignment() bool {
	return p.Comparator == "" || p.Comparator == "=="
}
