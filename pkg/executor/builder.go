package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

// Param is a builder parameter. Params are bit flags so that a set of them fits in one word.
type Param uint16

const (
	ParamType Param = 1 << iota
	ParamSuperConcept
	ParamLabel
	ParamID
	ParamValue
	ParamDataType
	ParamWhen
	ParamThen
	ParamIsRole
	ParamIsRule
)

// params lists every Param in reporting order.
var params = []Param{
	ParamType, ParamSuperConcept, ParamLabel, ParamID, ParamValue,
	ParamDataType, ParamWhen, ParamThen, ParamIsRole, ParamIsRule,
}

func (p Param) String() string {
	switch p {
	case ParamType:
		return "type"
	case ParamSuperConcept:
		return "super"
	case ParamLabel:
		return "label"
	case ParamID:
		return "id"
	case ParamValue:
		return "value"
	case ParamDataType:
		return "datatype"
	case ParamWhen:
		return "when"
	case ParamThen:
		return "then"
	case ParamIsRole:
		return "role marker"
	case ParamIsRule:
		return "rule marker"
	default:
		return fmt.Sprintf("param(%d)", uint16(p))
	}
}

// ConceptBuilder accumulates the parameters of one concept and materialises it
// exactly once with Build.
type ConceptBuilder struct {
	tx        storage.ConceptTx
	variable  graql.Variable
	statement func() string

	// mutateSchema lets Build rename and re-parent a concept found by id or label.
	mutateSchema bool

	typ      *concept.Concept
	super    *concept.Concept
	label    string
	id       concept.ID
	value    any
	dataType concept.DataType
	when     string
	then     string

	provided Param
	used     Param
	built    bool
}

// NewConceptBuilder returns an empty builder for v. statement renders the query
// fragment the builder stems from and is only called to report errors.
func NewConceptBuilder(tx storage.ConceptTx, v graql.Variable, statement func() string, mutateSchema bool) *ConceptBuilder {
	if statement == nil {
		statement = v.String
	}
	return &ConceptBuilder{tx: tx, variable: v, statement: statement, mutateSchema: mutateSchema}
}

func sameConcept(a, b *concept.Concept) bool {
	return a.ID == b.ID
}

func equal[T comparable](a, b T) bool {
	return a == b
}

func set[T any](b *ConceptBuilder, p Param, slot *T, value T, eq func(a, b T) bool) error {
	if b.provided&p != 0 {
		if !eq(*slot, value) {
			return &ConflictingPropertyError{Statement: b.statement(), Param: p, Existing: *slot, Value: value}
		}
		return nil
	}
	*slot = value
	b.provided |= p
	return nil
}

// Isa sets the type of the instance to build.
func (b *ConceptBuilder) Isa(typ *concept.Concept) error {
	return set(b, ParamType, &b.typ, typ, sameConcept)
}

// Sub sets the supertype of the schema concept to build.
func (b *ConceptBuilder) Sub(super *concept.Concept) error {
	return set(b, ParamSuperConcept, &b.super, super, sameConcept)
}

func (b *ConceptBuilder) Label(label string) error {
	return set(b, ParamLabel, &b.label, label, equal[string])
}

func (b *ConceptBuilder) ID(id concept.ID) error {
	return set(b, ParamID, &b.id, id, equal[concept.ID])
}

func (b *ConceptBuilder) Value(value any) error {
	return set(b, ParamValue, &b.value, value, concept.ValuesEqual)
}

func (b *ConceptBuilder) DataType(dt concept.DataType) error {
	return set(b, ParamDataType, &b.dataType, dt, equal[concept.DataType])
}

func (b *ConceptBuilder) When(pattern string) error {
	return set(b, ParamWhen, &b.when, pattern, equal[string])
}

func (b *ConceptBuilder) Then(pattern string) error {
	return set(b, ParamThen, &b.then, pattern, equal[string])
}

// IsRole marks the concept to build as a role.
func (b *ConceptBuilder) IsRole() {
	b.provided |= ParamIsRole
}

// IsRule marks the concept to build as a rule.
func (b *ConceptBuilder) IsRule() {
	b.provided |= ParamIsRule
}

// Has reports whether p was supplied.
func (b *ConceptBuilder) Has(p Param) bool {
	return b.provided&p != 0
}

func (b *ConceptBuilder) use(p Param) bool {
	if b.provided&p == 0 {
		return false
	}
	b.used |= p
	return true
}

func (b *ConceptBuilder) require(p Param) error {
	if !b.use(p) {
		return &MissingPropertyError{Statement: b.statement(), Param: p}
	}
	return nil
}

func (b *ConceptBuilder) valueOf(p Param) any {
	switch p {
	case ParamType:
		return b.typ
	case ParamSuperConcept:
		return b.super
	case ParamLabel:
		return b.label
	case ParamID:
		return b.id
	case ParamValue:
		return b.value
	case ParamDataType:
		return b.dataType
	case ParamWhen:
		return b.when
	case ParamThen:
		return b.then
	default:
		return true
	}
}

// Build finds or creates the concept described by the builder.
//
// A concept found by id or label is validated against every supplied parameter.
// Parameters that play no part in building a new concept are rejected, but only
// on the creation path.
func (b *ConceptBuilder) Build(ctx context.Context) (*concept.Concept, error) {
	if b.built {
		return nil, fmt.Errorf("%w: builder for '%s' built twice", ErrUnreachable, b.statement())
	}
	b.built = true

	found, err := b.lookup(ctx)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}

	b.used = 0
	created, err := b.create(ctx)
	if err != nil {
		return nil, err
	}

	if unused := b.provided &^ b.used; unused != 0 {
		for _, p := range params {
			if unused&p != 0 {
				return nil, &UnexpectedPropertyError{Statement: b.statement(), Param: p, Value: b.valueOf(p), Concept: created}
			}
		}
	}

	return created, nil
}

func (b *ConceptBuilder) lookup(ctx context.Context) (*concept.Concept, error) {
	var (
		found *concept.Concept
		err   error
	)

	switch {
	case b.use(ParamID):
		found, err = b.tx.GetConcept(ctx, b.id)
		if err == nil && b.mutateSchema && b.Has(ParamLabel) && found.IsSchemaConcept() && found.Label != b.label {
			found, err = b.tx.SetLabel(ctx, found.ID, b.label)
		}
	case b.use(ParamLabel):
		found, err = b.tx.GetSchemaConcept(ctx, b.label)
	default:
		return nil, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if b.mutateSchema && b.use(ParamSuperConcept) {
		if err := b.setSuper(ctx, found, b.super); err != nil {
			return nil, err
		}
	}

	if err := b.validate(ctx, found); err != nil {
		return nil, err
	}

	return found, nil
}

func (b *ConceptBuilder) conflict(p Param, c *concept.Concept, actual any) error {
	return &PropertyConflictOnExistingConceptError{
		Statement: b.statement(),
		Param:     p,
		Concept:   c,
		Expected:  b.valueOf(p),
		Actual:    actual,
	}
}

func (b *ConceptBuilder) validate(ctx context.Context, c *concept.Concept) error {
	if b.use(ParamType) {
		if !c.IsThing() {
			return b.conflict(ParamType, c, nil)
		}
		typ, err := b.tx.TypeOf(ctx, c.ID)
		if err != nil {
			return err
		}
		if typ.ID != b.typ.ID {
			return b.conflict(ParamType, c, typ)
		}
	}

	if b.use(ParamSuperConcept) {
		if !c.IsSchemaConcept() {
			return b.conflict(ParamSuperConcept, c, nil)
		}
		sup, err := b.tx.Sup(ctx, c.ID)
		if err != nil {
			return err
		}
		if sup == nil || sup.ID != b.super.ID {
			return b.conflict(ParamSuperConcept, c, sup)
		}
	}

	if b.use(ParamLabel) && c.Label != b.label {
		return b.conflict(ParamLabel, c, c.Label)
	}

	if b.use(ParamID) && c.ID != b.id {
		return b.conflict(ParamID, c, c.ID)
	}

	if b.use(ParamValue) {
		if c.Kind != concept.KindAttribute {
			return b.conflict(ParamValue, c, nil)
		}
		value, err := b.tx.AttributeValue(ctx, c.ID)
		if err != nil {
			return err
		}
		if !concept.ValuesEqual(value, b.value) {
			return b.conflict(ParamValue, c, value)
		}
	}

	if b.use(ParamDataType) {
		dt, err := b.tx.DataType(ctx, c.ID)
		if err != nil {
			return err
		}
		if dt != b.dataType {
			return b.conflict(ParamDataType, c, dt)
		}
	}

	if b.Has(ParamWhen) || b.Has(ParamThen) {
		if c.Kind != concept.KindRule {
			if b.use(ParamWhen) {
				return b.conflict(ParamWhen, c, nil)
			}
			b.use(ParamThen)
			return b.conflict(ParamThen, c, nil)
		}
		when, then, err := b.tx.Rule(ctx, c.ID)
		if err != nil {
			return err
		}
		if b.use(ParamWhen) && when != b.when {
			return b.conflict(ParamWhen, c, when)
		}
		if b.use(ParamThen) && then != b.then {
			return b.conflict(ParamThen, c, then)
		}
	}

	return nil
}

func (b *ConceptBuilder) create(ctx context.Context) (*concept.Concept, error) {
	switch {
	case b.use(ParamIsRole):
		if err := b.require(ParamLabel); err != nil {
			return nil, err
		}
		role, err := b.tx.PutRole(ctx, b.label)
		if err != nil {
			return nil, err
		}
		if b.use(ParamSuperConcept) {
			if err := b.setSuper(ctx, role, b.super); err != nil {
				return nil, err
			}
		}
		return role, nil

	case b.use(ParamIsRule):
		for _, p := range []Param{ParamLabel, ParamWhen, ParamThen} {
			if err := b.require(p); err != nil {
				return nil, err
			}
		}
		rule, err := b.tx.PutRule(ctx, b.label, b.when, b.then)
		if err != nil {
			return nil, err
		}
		if b.use(ParamSuperConcept) {
			if err := b.setSuper(ctx, rule, b.super); err != nil {
				return nil, err
			}
		}
		return rule, nil

	case b.use(ParamSuperConcept):
		return b.putSchemaConcept(ctx)

	case b.use(ParamType):
		return b.putInstance(ctx)

	default:
		return nil, &UndefinedVariableError{Var: b.variable, Statement: b.statement()}
	}
}

func (b *ConceptBuilder) putSchemaConcept(ctx context.Context) (*concept.Concept, error) {
	if err := b.require(ParamLabel); err != nil {
		return nil, err
	}

	var (
		created *concept.Concept
		err     error
	)

	switch b.super.Kind {
	case concept.KindEntityType:
		created, err = b.tx.PutEntityType(ctx, b.label)
	case concept.KindRelationType:
		created, err = b.tx.PutRelationType(ctx, b.label)
	case concept.KindRole:
		created, err = b.tx.PutRole(ctx, b.label)
	case concept.KindAttributeType:
		dt := b.dataType
		if !b.use(ParamDataType) {
			dt, err = b.tx.DataType(ctx, b.super.ID)
			if err != nil {
				return nil, err
			}
			if dt == "" {
				return nil, &MissingPropertyError{Statement: b.statement(), Param: ParamDataType}
			}
		}
		created, err = b.tx.PutAttributeType(ctx, b.label, dt)
	case concept.KindRule:
		if err := b.require(ParamWhen); err != nil {
			return nil, err
		}
		if err := b.require(ParamThen); err != nil {
			return nil, err
		}
		created, err = b.tx.PutRule(ctx, b.label, b.when, b.then)
	default:
		return nil, &InvalidSchemaMutationError{Statement: b.statement(), Super: b.super}
	}
	if err != nil {
		return nil, err
	}

	if err := b.setSuper(ctx, created, b.super); err != nil {
		return nil, err
	}
	return created, nil
}

func (b *ConceptBuilder) putInstance(ctx context.Context) (*concept.Concept, error) {
	switch b.typ.Kind {
	case concept.KindEntityType:
		return b.tx.AddEntity(ctx, b.typ.ID)
	case concept.KindRelationType:
		return b.tx.AddRelation(ctx, b.typ.ID)
	case concept.KindAttributeType:
		if err := b.require(ParamValue); err != nil {
			return nil, err
		}
		return b.tx.PutAttribute(ctx, b.typ.ID, b.value)
	case concept.KindMetaType:
		return nil, &MetaConceptInstantiationError{Statement: b.statement(), Type: b.typ}
	default:
		return nil, fmt.Errorf("%w: cannot instantiate %s", ErrUnreachable, b.typ)
	}
}

// setSuper makes super the supertype of c when both have the same schema kind.
func (b *ConceptBuilder) setSuper(ctx context.Context, c, super *concept.Concept) error {
	return setSuper(ctx, b.tx, b.statement(), c, super)
}

func setSuper(ctx context.Context, tx storage.ConceptTx, statement string, c, super *concept.Concept) error {
	switch c.Kind {
	case concept.KindEntityType, concept.KindRelationType, concept.KindRole, concept.KindAttributeType, concept.KindRule:
		if super.Kind != c.Kind {
			return &InvalidSchemaMutationError{Statement: statement, Concept: c, Super: super}
		}
	default:
		return &InvalidSchemaMutationError{Statement: statement, Concept: c, Super: super}
	}

	if err := tx.SetSuper(ctx, c.ID, super.ID); err != nil {
		if errors.Is(err, storage.ErrInvalidSchema) || errors.Is(err, storage.ErrMetaConcept) {
			return &InvalidSchemaMutationError{Statement: statement, Concept: c, Super: super, Cause: err}
		}
		return err
	}
	return nil
}
