package graql

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/typedb/typedb-sub018/pkg/concept"
)

// ConceptMap is an immutable mapping from variables to concepts.
type ConceptMap struct {
	m map[Variable]*concept.Concept
}

// NewConceptMap copies m into a ConceptMap.
func NewConceptMap(m map[Variable]*concept.Concept) ConceptMap {
	cp := make(map[Variable]*concept.Concept, len(m))
	for v, c := range m {
		cp[v] = c
	}
	return ConceptMap{m: cp}
}

// Get returns the concept bound to v.
func (c ConceptMap) Get(v Variable) (*concept.Concept, bool) {
	got, ok := c.m[v]
	return got, ok
}

// Len returns the number of bound variables.
func (c ConceptMap) Len() int {
	return len(c.m)
}

// Vars returns the bound variables in order.
func (c ConceptMap) Vars() []Variable {
	vars := make([]Variable, 0, len(c.m))
	for v := range c.m {
		vars = append(vars, v)
	}
	slices.SortFunc(vars, CompareVars)
	return vars
}

// Map returns a copy of the underlying mapping.
func (c ConceptMap) Map() map[Variable]*concept.Concept {
	cp := make(map[Variable]*concept.Concept, len(c.m))
	for v, con := range c.m {
		cp[v] = con
	}
	return cp
}

func (c ConceptMap) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, v := range c.Vars() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
		sb.WriteString("=")
		sb.WriteString(c.m[v].String())
	}
	sb.WriteString("}")
	return sb.String()
}

// MarshalJSON renders the map as an object keyed by variable name.
func (c ConceptMap) MarshalJSON() ([]byte, error) {
	out := make(map[string]*concept.Concept, len(c.m))
	for v, con := range c.m {
		out[v.Name()] = con
	}
	return json.Marshal(out)
}
