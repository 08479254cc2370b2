package graql

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/typedb/typedb-sub018/internal/mocks"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func TestVariables(t *testing.T) {
	x := Var("$x")
	require.Equal(t, Var("x"), x)
	require.Equal(t, "x", x.Name())
	require.Equal(t, "$x", x.String())
	require.True(t, x.IsUserDefined())

	a, b := AnonymousVar(), AnonymousVar()
	require.NotEqual(t, a, b)
	require.False(t, a.IsUserDefined())
	require.True(t, Variable{}.IsZero())

	require.Negative(t, CompareVars(Var("a"), Var("b")))
	require.Zero(t, CompareVars(Var("a"), Var("a")))
	require.Positive(t, CompareVars(Variable{name: "a", anonymous: true}, Var("a")))
}

func TestPropertyStrings(t *testing.T) {
	r, s, p, v := Var("r"), Var("s"), Var("p"), Var("v")

	tests := map[string]struct {
		property Property
		expected string
		unique   bool
		vars     []Variable
	}{
		"isa":        {property: IsaProperty{Type: p}, expected: "isa $p", vars: []Variable{p}},
		"sub":        {property: SubProperty{Type: p}, expected: "sub $p", vars: []Variable{p}},
		"label":      {property: LabelProperty{Label: "person"}, expected: "label person", unique: true},
		"id":         {property: IDProperty{ID: "V1"}, expected: "id V1", unique: true},
		"value":      {property: ValueProperty{Comparator: "==", Value: "bob"}, expected: `== "bob"`},
		"value_num":  {property: ValueProperty{Comparator: ">", Value: 3}, expected: "> 3"},
		"datatype":   {property: DataTypeProperty{DataType: concept.DataTypeLong}, expected: "datatype long"},
		"relates":    {property: RelatesProperty{Role: r}, expected: "relates $r", vars: []Variable{r}},
		"relates_as": {property: RelatesProperty{Role: r, SuperRole: &s}, expected: "relates $r as $s", vars: []Variable{r, s}},
		"plays":      {property: PlaysProperty{Role: r}, expected: "plays $r", vars: []Variable{r}},
		"regex":      {property: RegexProperty{Regex: "[a-z]+"}, expected: `regex "[a-z]+"`},
		"abstract":   {property: AbstractProperty{}, expected: "is-abstract"},
		"has":        {property: HasAttributeProperty{Type: "name", Attribute: v, Relation: r}, expected: "has name $v via $r", vars: []Variable{v, r}},
		"owns":       {property: HasAttributeTypeProperty{Type: p}, expected: "has $p", vars: []Variable{p}},
		"key":        {property: HasAttributeTypeProperty{Type: p, Key: true}, expected: "key $p", vars: []Variable{p}},
		"relation":   {property: RelationProperty{RolePlayers: []RolePlayer{{Role: r, Player: p}}}, expected: "($r: $p)", vars: []Variable{r, p}},
		"when":       {property: WhenProperty{Pattern: "$x isa a;"}, expected: "when { $x isa a; }"},
		"then":       {property: ThenProperty{Pattern: "$x isa b;"}, expected: "then { $x isa b; }"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.expected, test.property.String())
			require.Equal(t, test.unique, test.property.UniquelyIdentifiesConcept())
			require.Equal(t, test.vars, test.property.Vars())
		})
	}
}

func TestStatementBuilder(t *testing.T) {
	t.Run("inner_statements_are_flattened_once", func(t *testing.T) {
		person := Type("person")
		x := V("x").Isa(person)
		y := V("y").Isa(person)

		pairs := VarProperties([]*Statement{x, y})
		require.Len(t, pairs, 3)
		require.Equal(t, Var("x"), pairs[0].Var)
		require.Equal(t, person.Var, pairs[1].Var)
		require.Equal(t, LabelProperty{Label: "person"}, pairs[1].Property)
		require.Equal(t, Var("y"), pairs[2].Var)
	})

	t.Run("role_players_accumulate_in_one_property", func(t *testing.T) {
		rel := V("r").Rel(V("husband"), V("a")).Rel(V("wife"), V("b"))
		require.Len(t, rel.Properties, 1)
		require.Equal(t, "$r ($husband: $a, $wife: $b);", rel.String())
	})

	t.Run("has_value_creates_an_attribute_statement", func(t *testing.T) {
		x := V("x").HasValue("name", "alice")
		statements := x.Statements()
		require.Len(t, statements, 4)

		attr := statements[1]
		require.False(t, attr.Var.IsUserDefined())
		require.Len(t, attr.Properties, 2)
		require.IsType(t, IsaProperty{}, attr.Properties[0])
		require.Equal(t, ValueProperty{Comparator: "==", Value: "alice"}, attr.Properties[1])
	})

	t.Run("query_strings", func(t *testing.T) {
		q := Define(V("x").Label("person").Sub(Type("entity")))
		require.Contains(t, q.String(), "$x label person, sub $")
		require.Contains(t, q.String(), "label entity;")

		require.Equal(t, "delete $x, $y;", Delete(nil, Var("x"), Var("y")).String())
	})
}

func TestConceptMap(t *testing.T) {
	person := &concept.Concept{ID: "V1", Kind: concept.KindEntityType, Label: "person"}
	source := map[Variable]*concept.Concept{Var("x"): person}
	m := NewConceptMap(source)
	source[Var("y")] = person

	require.Equal(t, 1, m.Len())
	got, ok := m.Get(Var("x"))
	require.True(t, ok)
	require.Equal(t, person, got)
	require.Equal(t, []Variable{Var("x")}, m.Vars())
	require.Equal(t, "{$x=entity-type(V1 'person')}", m.String())

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"x":{"id":"V1","kind":"entity-type","label":"person"}}`, string(raw))
}

func TestIDMatcher(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	tx := mocks.NewMockConceptTx(ctrl)

	alice := &concept.Concept{ID: "V1", Kind: concept.KindEntity}
	tx.EXPECT().GetConcept(gomock.Any(), concept.ID("V1")).Return(alice, nil)

	var rows []ConceptMap
	for row, err := range (IDMatcher{Var("x"): "V1"}).Match(ctx, tx) {
		require.NoError(t, err)
		rows = append(rows, row)
	}
	require.Len(t, rows, 1)
	got, _ := rows[0].Get(Var("x"))
	require.Equal(t, alice, got)

	tx.EXPECT().GetConcept(gomock.Any(), concept.ID("V9")).Return(nil, storage.ErrNotFound)
	for _, err := range (IDMatcher{Var("x"): "V9"}).Match(ctx, tx) {
		require.ErrorIs(t, err, storage.ErrNotFound)
	}
}

func TestStaticMatcher(t *testing.T) {
	rows := StaticMatcher{NewConceptMap(nil), NewConceptMap(nil)}

	count := 0
	for _, err := range rows.Match(context.Background(), nil) {
		require.NoError(t, err)
		count++
		break
	}
	require.Equal(t, 1, count)
}
