package graql

import (
	"strings"

	"github.com/typedb/typedb-sub018/pkg/concept"
)

// Statement is a subject variable with the properties attached to it. Statements
// referenced by a property (for example the type of an isa) are kept as inner
// statements so that their own properties take part in the same query.
type Statement struct {
	Var        Variable
	Properties []Property

	inner []*Statement
}

// VarProperty pairs a subject variable with one of its properties.
type VarProperty struct {
	Var      Variable
	Property Property
}

// V returns an empty statement about the user defined variable name.
func V(name string) *Statement {
	return &Statement{Var: Var(name)}
}

// On returns an empty statement about v.
func On(v Variable) *Statement {
	return &Statement{Var: v}
}

// Anon returns an empty statement about a fresh anonymous variable.
func Anon() *Statement {
	return &Statement{Var: AnonymousVar()}
}

// Type returns a statement about an anonymous variable labelled label.
func Type(label string) *Statement {
	return Anon().Label(label)
}

// Add appends p to the statement.
func (s *Statement) Add(p Property, inner ...*Statement) *Statement {
	s.Properties = append(s.Properties, p)
	return s.addInner(inner...)
}

func (s *Statement) Isa(typ *Statement) *Statement {
	return s.Add(IsaProperty{Type: typ.Var}, typ)
}

func (s *Statement) Sub(sup *Statement) *Statement {
	return s.Add(SubProperty{Type: sup.Var}, sup)
}

func (s *Statement) Label(label string) *Statement {
	return s.Add(LabelProperty{Label: label})
}

func (s *Statement) ID(id concept.ID) *Statement {
	return s.Add(IDProperty{ID: id})
}

// Val assigns value to the subject attribute.
func (s *Statement) Val(value any) *Statement {
	return s.Add(ValueProperty{Comparator: "==", Value: value})
}

// Compare constrains the subject attribute with a comparator other than assignment.
func (s *Statement) Compare(comparator string, value any) *Statement {
	return s.Add(ValueProperty{Comparator: comparator, Value: value})
}

func (s *Statement) DataType(dt concept.DataType) *Statement {
	return s.Add(DataTypeProperty{DataType: dt})
}

func (s *Statement) Relates(role *Statement) *Statement {
	return s.Add(RelatesProperty{Role: role.Var}, role)
}

// RelatesAs declares role as a subtype of super and relates it.
func (s *Statement) RelatesAs(role, super *Statement) *Statement {
	sv := super.Var
	return s.Add(RelatesProperty{Role: role.Var, SuperRole: &sv}, role, super)
}

func (s *Statement) Plays(role *Statement) *Statement {
	return s.Add(PlaysProperty{Role: role.Var}, role)
}

func (s *Statement) Regex(regex string) *Statement {
	return s.Add(RegexProperty{Regex: regex})
}

func (s *Statement) Abstract() *Statement {
	return s.Add(AbstractProperty{})
}

// Owns allows instances of the subject type to own attributes of attributeType.
func (s *Statement) Owns(attributeType *Statement) *Statement {
	return s.Add(HasAttributeTypeProperty{Type: attributeType.Var}, attributeType)
}

// Key makes attributeType a key of the subject type.
func (s *Statement) Key(attributeType *Statement) *Statement {
	return s.Add(HasAttributeTypeProperty{Type: attributeType.Var, Key: true}, attributeType)
}

// Has attaches the attribute bound to attribute, of type attributeType, to the subject.
func (s *Statement) Has(attributeType string, attribute *Statement) *Statement {
	return s.HasVia(attributeType, attribute, Anon())
}

// HasVia is Has with an explicit statement for the implicit ownership relation.
func (s *Statement) HasVia(attributeType string, attribute, relation *Statement) *Statement {
	return s.Add(HasAttributeProperty{
		Type:      attributeType,
		Attribute: attribute.Var,
		Relation:  relation.Var,
	}, attribute, relation)
}

// HasValue attaches a new or existing attribute of attributeType holding value.
func (s *Statement) HasValue(attributeType string, value any) *Statement {
	return s.Has(attributeType, Anon().Isa(Type(attributeType)).Val(value))
}

// Rel adds a role player to the relation property of the subject.
func (s *Statement) Rel(role, player *Statement) *Statement {
	rp := RolePlayer{Role: role.Var, Player: player.Var}
	for i, p := range s.Properties {
		if rel, ok := p.(RelationProperty); ok {
			players := make([]RolePlayer, len(rel.RolePlayers), len(rel.RolePlayers)+1)
			copy(players, rel.RolePlayers)
			s.Properties[i] = RelationProperty{RolePlayers: append(players, rp)}
			return s.addInner(role, player)
		}
	}
	return s.Add(RelationProperty{RolePlayers: []RolePlayer{rp}}, role, player)
}

func (s *Statement) When(pattern string) *Statement {
	return s.Add(WhenProperty{Pattern: pattern})
}

func (s *Statement) Then(pattern string) *Statement {
	return s.Add(ThenProperty{Pattern: pattern})
}

func (s *Statement) addInner(inner ...*Statement) *Statement {
	for _, in := range inner {
		if in != nil && in != s {
			s.inner = append(s.inner, in)
		}
	}
	return s
}

// Statements returns s followed by every statement reachable through its inner
// statements, each listed once.
func (s *Statement) Statements() []*Statement {
	var out []*Statement
	seen := make(map[*Statement]struct{})

	var walk func(*Statement)
	walk = func(st *Statement) {
		if _, ok := seen[st]; ok {
			return
		}
		seen[st] = struct{}{}
		out = append(out, st)
		for _, in := range st.inner {
			walk(in)
		}
	}
	walk(s)

	return out
}

// String renders the statement with its own properties only.
func (s *Statement) String() string {
	parts := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		parts = append(parts, p.String())
	}
	if len(parts) == 0 {
		return s.Var.String() + ";"
	}
	return s.Var.String() + " " + strings.Join(parts, ", ") + ";"
}

// VarProperties flattens statements, inner statements included, into
// (variable, property) pairs in declaration order.
func VarProperties(statements []*Statement) []VarProperty {
	var out []VarProperty
	seen := make(map[*Statement]struct{})
	for _, root := range statements {
		for _, st := range root.Statements() {
			if _, ok := seen[st]; ok {
				continue
			}
			seen[st] = struct{}{}
			for _, p := range st.Properties {
				out = append(out, VarProperty{Var: st.Var, Property: p})
			}
		}
	}
	return out
}
