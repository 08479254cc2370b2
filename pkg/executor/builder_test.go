package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/typedb/typedb-sub018/internal/mocks"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func metaConcept(label string) *concept.Concept {
	m, _ := concept.MetaByLabel(label)
	c := m.Concept
	return &c
}

var (
	personType = &concept.Concept{ID: "V10", Kind: concept.KindEntityType, Label: "person"}
	nameType   = &concept.Concept{ID: "V11", Kind: concept.KindAttributeType, Label: "name"}
)

func TestBuilderConflictingValues(t *testing.T) {
	b := NewConceptBuilder(nil, graql.Var("x"), nil, false)

	require.NoError(t, b.Label("person"))
	require.NoError(t, b.Label("person"))

	err := b.Label("animal")
	var conflict *ConflictingPropertyError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, ParamLabel, conflict.Param)
	require.Equal(t, "person", conflict.Existing)
	require.Equal(t, "animal", conflict.Value)
	require.ErrorIs(t, err, ErrConflictingProperty)

	require.NoError(t, b.Value(int64(3)))
	require.NoError(t, b.Value(3.0))
	require.ErrorIs(t, b.Value(int64(4)), ErrConflictingProperty)
}

func TestBuilderBuildsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := mocks.NewMockConceptTx(ctrl)
	tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(personType, nil)

	b := NewConceptBuilder(tx, graql.Var("x"), nil, false)
	require.NoError(t, b.Label("person"))

	got, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, personType, got)

	_, err = b.Build(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestBuilderCreate(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		setup    func(b *ConceptBuilder)
		expect   func(tx *mocks.MockConceptTx)
		expected *concept.Concept
		err      error
	}{
		"entity_type": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("person"))
				require.NoError(t, b.Sub(metaConcept(concept.MetaEntity)))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(nil, storage.LabelNotFoundError("person"))
				tx.EXPECT().PutEntityType(gomock.Any(), "person").Return(personType, nil)
				tx.EXPECT().SetSuper(gomock.Any(), personType.ID, concept.ID("V-entity")).Return(nil)
			},
			expected: personType,
		},
		"attribute_type_inherits_datatype": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("nickname"))
				require.NoError(t, b.Sub(nameType))
			},
			expect: func(tx *mocks.MockConceptTx) {
				nickname := &concept.Concept{ID: "V12", Kind: concept.KindAttributeType, Label: "nickname"}
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "nickname").Return(nil, storage.ErrNotFound)
				tx.EXPECT().DataType(gomock.Any(), nameType.ID).Return(concept.DataTypeString, nil)
				tx.EXPECT().PutAttributeType(gomock.Any(), "nickname", concept.DataTypeString).Return(nickname, nil)
				tx.EXPECT().SetSuper(gomock.Any(), nickname.ID, nameType.ID).Return(nil)
			},
			expected: &concept.Concept{ID: "V12", Kind: concept.KindAttributeType, Label: "nickname"},
		},
		"attribute_type_without_datatype": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("age"))
				require.NoError(t, b.Sub(metaConcept(concept.MetaAttribute)))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "age").Return(nil, storage.ErrNotFound)
				tx.EXPECT().DataType(gomock.Any(), concept.ID("V-attribute")).Return(concept.DataType(""), nil)
			},
			err: ErrMissingProperty,
		},
		"schema_concept_without_label": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Sub(metaConcept(concept.MetaEntity)))
			},
			expect: func(*mocks.MockConceptTx) {},
			err:    ErrMissingProperty,
		},
		"unused_param_on_creation": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("person"))
				require.NoError(t, b.Sub(metaConcept(concept.MetaEntity)))
				require.NoError(t, b.Value("bob"))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(nil, storage.ErrNotFound)
				tx.EXPECT().PutEntityType(gomock.Any(), "person").Return(personType, nil)
				tx.EXPECT().SetSuper(gomock.Any(), personType.ID, concept.ID("V-entity")).Return(nil)
			},
			err: ErrUnexpectedProperty,
		},
		"entity": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Isa(personType))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().AddEntity(gomock.Any(), personType.ID).Return(&concept.Concept{ID: "V20", Kind: concept.KindEntity}, nil)
			},
			expected: &concept.Concept{ID: "V20", Kind: concept.KindEntity},
		},
		"attribute_without_value": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Isa(nameType))
			},
			expect: func(*mocks.MockConceptTx) {},
			err:    ErrMissingProperty,
		},
		"attribute": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Isa(nameType))
				require.NoError(t, b.Value("Alice"))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().PutAttribute(gomock.Any(), nameType.ID, "Alice").Return(&concept.Concept{ID: "V21", Kind: concept.KindAttribute}, nil)
			},
			expected: &concept.Concept{ID: "V21", Kind: concept.KindAttribute},
		},
		"meta_thing_instance": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Isa(metaConcept(concept.MetaThing)))
			},
			expect: func(*mocks.MockConceptTx) {},
			err:    ErrMetaConceptInstantiation,
		},
		"nothing_to_build": {
			setup:  func(*ConceptBuilder) {},
			expect: func(*mocks.MockConceptTx) {},
			err:    ErrUndefinedVariable,
		},
		"role": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("employee"))
				b.IsRole()
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "employee").Return(nil, storage.ErrNotFound)
				tx.EXPECT().PutRole(gomock.Any(), "employee").Return(&concept.Concept{ID: "V30", Kind: concept.KindRole, Label: "employee"}, nil)
			},
			expected: &concept.Concept{ID: "V30", Kind: concept.KindRole, Label: "employee"},
		},
		"rule_without_then": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("r"))
				require.NoError(t, b.When("$x isa person;"))
				b.IsRule()
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "r").Return(nil, storage.ErrNotFound)
			},
			err: ErrMissingProperty,
		},
		"sub_of_incompatible_kind": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("x"))
				require.NoError(t, b.Sub(metaConcept(concept.MetaThing)))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "x").Return(nil, storage.ErrNotFound)
			},
			err: ErrInvalidSchemaMutation,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := mocks.NewMockConceptTx(ctrl)
			test.expect(tx)

			b := NewConceptBuilder(tx, graql.Var("x"), nil, false)
			test.setup(b)

			got, err := b.Build(ctx)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, got)
		})
	}
}

func TestBuilderLookup(t *testing.T) {
	ctx := context.Background()
	bob := &concept.Concept{ID: "V40", Kind: concept.KindEntity}

	tests := map[string]struct {
		mutateSchema bool
		setup        func(b *ConceptBuilder)
		expect       func(tx *mocks.MockConceptTx)
		expected     *concept.Concept
		err          error
	}{
		"by_id_with_matching_type": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.ID(bob.ID))
				require.NoError(t, b.Isa(personType))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetConcept(gomock.Any(), bob.ID).Return(bob, nil)
				tx.EXPECT().TypeOf(gomock.Any(), bob.ID).Return(personType, nil)
			},
			expected: bob,
		},
		"by_id_with_other_type": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.ID(bob.ID))
				require.NoError(t, b.Isa(nameType))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetConcept(gomock.Any(), bob.ID).Return(bob, nil)
				tx.EXPECT().TypeOf(gomock.Any(), bob.ID).Return(personType, nil)
			},
			err: ErrPropertyOnExistingConcept,
		},
		"by_label_ignores_role_marker": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("person"))
				b.IsRole()
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(personType, nil)
			},
			expected: personType,
		},
		"by_label_with_other_super": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("person"))
				require.NoError(t, b.Sub(metaConcept(concept.MetaRelation)))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(personType, nil)
				tx.EXPECT().Sup(gomock.Any(), personType.ID).Return(metaConcept(concept.MetaEntity), nil)
			},
			err: ErrPropertyOnExistingConcept,
		},
		"by_label_datatype_mismatch": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("name"))
				require.NoError(t, b.DataType(concept.DataTypeLong))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "name").Return(nameType, nil)
				tx.EXPECT().DataType(gomock.Any(), nameType.ID).Return(concept.DataTypeString, nil)
			},
			err: ErrPropertyOnExistingConcept,
		},
		"when_on_non_rule": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("person"))
				require.NoError(t, b.When("$x isa person;"))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(personType, nil)
			},
			err: ErrPropertyOnExistingConcept,
		},
		"define_renames_by_id": {
			mutateSchema: true,
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.ID(personType.ID))
				require.NoError(t, b.Label("human"))
			},
			expect: func(tx *mocks.MockConceptTx) {
				human := &concept.Concept{ID: personType.ID, Kind: concept.KindEntityType, Label: "human"}
				tx.EXPECT().GetConcept(gomock.Any(), personType.ID).Return(personType, nil)
				tx.EXPECT().SetLabel(gomock.Any(), personType.ID, "human").Return(human, nil)
			},
			expected: &concept.Concept{ID: personType.ID, Kind: concept.KindEntityType, Label: "human"},
		},
		"insert_does_not_rename": {
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.ID(personType.ID))
				require.NoError(t, b.Label("human"))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetConcept(gomock.Any(), personType.ID).Return(personType, nil)
			},
			err: ErrPropertyOnExistingConcept,
		},
		"define_reparents_by_label": {
			mutateSchema: true,
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("person"))
				require.NoError(t, b.Sub(metaConcept(concept.MetaEntity)))
			},
			expect: func(tx *mocks.MockConceptTx) {
				gomock.InOrder(
					tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(personType, nil),
					tx.EXPECT().SetSuper(gomock.Any(), personType.ID, concept.ID("V-entity")).Return(nil),
					tx.EXPECT().Sup(gomock.Any(), personType.ID).Return(metaConcept(concept.MetaEntity), nil),
				)
			},
			expected: personType,
		},
		"define_reparent_rejected_by_store": {
			mutateSchema: true,
			setup: func(b *ConceptBuilder) {
				require.NoError(t, b.Label("person"))
				require.NoError(t, b.Sub(personType))
			},
			expect: func(tx *mocks.MockConceptTx) {
				tx.EXPECT().GetSchemaConcept(gomock.Any(), "person").Return(personType, nil)
				tx.EXPECT().SetSuper(gomock.Any(), personType.ID, personType.ID).Return(storage.InvalidSchemaError("cycle"))
			},
			err: storage.ErrInvalidSchema,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := mocks.NewMockConceptTx(ctrl)
			test.expect(tx)

			b := NewConceptBuilder(tx, graql.Var("x"), nil, test.mutateSchema)
			test.setup(b)

			got, err := b.Build(ctx)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, got)
		})
	}
}

func TestParamString(t *testing.T) {
	require.Equal(t, "datatype", ParamDataType.String())
	require.Equal(t, "role marker", ParamIsRole.String())
	require.Equal(t, "param(2048)", Param(1<<11).String())
}
