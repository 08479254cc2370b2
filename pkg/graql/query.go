package graql

import (
	"strings"
)

// DefineQuery adds schema concepts.
type DefineQuery struct {
	Statements []*Statement
}

// InsertQuery adds instances, once per row of Match when Match is set.
type InsertQuery struct {
	Match      Matcher
	Statements []*Statement
}

// UndefineQuery removes schema facts.
type UndefineQuery struct {
	Statements []*Statement
}

// DeleteQuery deletes the concepts bound to Vars in every row of Match.
type DeleteQuery struct {
	Match Matcher
	Vars  []Variable
}

func Define(statements ...*Statement) *DefineQuery {
	return &DefineQuery{Statements: statements}
}

func Insert(statements ...*Statement) *InsertQuery {
	return &InsertQuery{Statements: statements}
}

// MatchInsert returns an insert query run once per answer of match.
func MatchInsert(match Matcher, statements ...*Statement) *InsertQuery {
	return &InsertQuery{Match: match, Statements: statements}
}

func Undefine(statements ...*Statement) *UndefineQuery {
	return &UndefineQuery{Statements: statements}
}

func Delete(match Matcher, vars ...Variable) *DeleteQuery {
	return &DeleteQuery{Match: match, Vars: vars}
}

func (q *DefineQuery) String() string {
	return "define " + joinStatements(q.Statements)
}

func (q *InsertQuery) String() string {
	return "insert " + joinStatements(q.Statements)
}

func (q *UndefineQuery) String() string {
	return "undefine " + joinStatements(q.Statements)
}

func (q *DeleteQuery) String() string {
	names := make([]string, 0, len(q.Vars))
	for _, v := range q.Vars {
		names = append(names, v.String())
	}
	return "delete " + strings.Join(names, ", ") + ";"
}

func joinStatements(statements []*Statement) string {
	parts := make([]string, 0, len(statements))
	for _, root := range statements {
		for _, st := range root.Statements() {
			if len(st.Properties) > 0 {
				parts = append(parts, st.String())
			}
		}
	}
	return strings.Join(parts, " ")
}
