package common

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/id"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

// Tx implements storage.ConceptTx over a Backend.
type Tx struct {
	backend Backend
	ids     id.Generator
	done    bool
}

var _ storage.ConceptTx = (*Tx)(nil)

func NewTx(backend Backend, ids id.Generator) *Tx {
	return &Tx{backend: backend, ids: ids}
}

func (t *Tx) check(ctx context.Context) error {
	if t.done {
		return storage.ErrTransactionClosed
	}
	return ctx.Err()
}

func (t *Tx) get(ctx context.Context, id concept.ID) (*Record, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}
	return t.backend.Get(ctx, id)
}

func (t *Tx) getKind(ctx context.Context, id concept.ID, what string, kinds ...concept.Kind) (*Record, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, k := range kinds {
		if r.Kind == k {
			return r, nil
		}
	}
	return nil, storage.InvalidSchemaError("%s is not %s", r.Concept(), what)
}

// supChain returns r followed by its supertypes, nearest first.
func (t *Tx) supChain(ctx context.Context, r *Record) ([]*Record, error) {
	chain := []*Record{r}
	seen := map[concept.ID]struct{}{r.ID: {}}
	for r.Sup != "" {
		sup, err := t.backend.Get(ctx, r.Sup)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[sup.ID]; ok {
			return nil, storage.InvalidSchemaError("cyclic hierarchy at %s", sup.Concept())
		}
		seen[sup.ID] = struct{}{}
		chain = append(chain, sup)
		r = sup
	}
	return chain, nil
}

func (t *Tx) GetConcept(ctx context.Context, id concept.ID) (*concept.Concept, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.Concept(), nil
}

func (t *Tx) GetSchemaConcept(ctx context.Context, label string) (*concept.Concept, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}
	r, err := t.backend.GetByLabel(ctx, label)
	if err != nil {
		return nil, err
	}
	return r.Concept(), nil
}

func (t *Tx) SchemaConcepts(ctx context.Context) ([]*concept.Concept, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}
	records, err := t.backend.Schema(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*concept.Concept, 0, len(records))
	for _, r := range records {
		out = append(out, r.Concept())
	}
	return out, nil
}

func (t *Tx) Sup(ctx context.Context, id concept.ID) (*concept.Concept, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Kind.IsSchema() {
		return nil, storage.InvalidSchemaError("%s is not a schema concept", r.Concept())
	}
	if r.Sup == "" {
		return nil, nil
	}
	return t.GetConcept(ctx, r.Sup)
}

func (t *Tx) TypeOf(ctx context.Context, id concept.ID) (*concept.Concept, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Kind.IsThing() {
		return nil, storage.InvalidSchemaError("%s is not a thing", r.Concept())
	}
	return t.GetConcept(ctx, r.Type)
}

func (t *Tx) AttributeValue(ctx context.Context, id concept.ID) (any, error) {
	r, err := t.getKind(ctx, id, "an attribute", concept.KindAttribute)
	if err != nil {
		return nil, err
	}
	return r.DataType.Decode(r.Value)
}

func (t *Tx) DataType(ctx context.Context, id concept.ID) (concept.DataType, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return "", err
	}
	if r.Kind != concept.KindAttributeType {
		return "", nil
	}
	return r.DataType, nil
}

func (t *Tx) Rule(ctx context.Context, id concept.ID) (string, string, error) {
	r, err := t.getKind(ctx, id, "a rule", concept.KindRule)
	if err != nil {
		return "", "", err
	}
	return r.When, r.Then, nil
}

func (t *Tx) Regex(ctx context.Context, id concept.ID) (string, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return "", err
	}
	if r.Kind != concept.KindAttributeType {
		return "", nil
	}
	return r.Regex, nil
}

func (t *Tx) IsAbstract(ctx context.Context, id concept.ID) (bool, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return false, err
	}
	return r.Abstract, nil
}

func (t *Tx) SchemaEdges(ctx context.Context, kind storage.EdgeKind, from concept.ID) ([]concept.ID, error) {
	if _, err := t.get(ctx, from); err != nil {
		return nil, err
	}
	edges, err := t.backend.Edges(ctx, Edge{Kind: kind, From: from})
	if err != nil {
		return nil, err
	}
	out := make([]concept.ID, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.To)
	}
	return out, nil
}

func (t *Tx) RolePlayers(ctx context.Context, relation concept.ID) ([]storage.RolePlayer, error) {
	if _, err := t.getKind(ctx, relation, "a relation", concept.KindRelation); err != nil {
		return nil, err
	}
	castings, err := t.backend.Castings(ctx, Casting{Relation: relation})
	if err != nil {
		return nil, err
	}
	out := make([]storage.RolePlayer, 0, len(castings))
	for _, c := range castings {
		out = append(out, storage.RolePlayer{Role: c.Role, Player: c.Player})
	}
	return out, nil
}

func (t *Tx) Attributes(ctx context.Context, owner concept.ID) ([]concept.ID, error) {
	r, err := t.get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !r.Kind.IsThing() {
		return nil, storage.InvalidSchemaError("%s is not a thing", r.Concept())
	}
	ownerships, err := t.backend.Ownerships(ctx, Ownership{Owner: owner})
	if err != nil {
		return nil, err
	}
	out := make([]concept.ID, 0, len(ownerships))
	for _, o := range ownerships {
		out = append(out, o.Attribute)
	}
	return out, nil
}

// putSchema returns the schema concept labelled label, creating it with init
// applied when missing.
func (t *Tx) putSchema(ctx context.Context, label string, kind concept.Kind, existing func(*Record) error, init func(*Record)) (*concept.Concept, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}
	if label == "" {
		return nil, storage.InvalidSchemaError("empty label for a new %s", kind)
	}

	r, err := t.backend.GetByLabel(ctx, label)
	switch {
	case err == nil:
		if r.Kind != kind {
			return nil, storage.LabelTakenError(label, r.Kind)
		}
		if existing != nil {
			if err := existing(r); err != nil {
				return nil, err
			}
		}
		return r.Concept(), nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	r = &Record{ID: t.ids.Next(), Kind: kind, Label: label, Sup: metaSup(kind)}
	if init != nil {
		init(r)
	}
	if err := t.backend.Insert(ctx, r); err != nil {
		return nil, err
	}
	return r.Concept(), nil
}

func (t *Tx) PutEntityType(ctx context.Context, label string) (*concept.Concept, error) {
	return t.putSchema(ctx, label, concept.KindEntityType, nil, nil)
}

func (t *Tx) PutRelationType(ctx context.Context, label string) (*concept.Concept, error) {
	return t.putSchema(ctx, label, concept.KindRelationType, nil, nil)
}

func (t *Tx) PutRole(ctx context.Context, label string) (*concept.Concept, error) {
	return t.putSchema(ctx, label, concept.KindRole, nil, nil)
}

func (t *Tx) PutAttributeType(ctx context.Context, label string, dataType concept.DataType) (*concept.Concept, error) {
	if _, err := concept.ParseDataType(string(dataType)); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrInvalidValue, err)
	}
	return t.putSchema(ctx, label, concept.KindAttributeType,
		func(r *Record) error {
			if r.DataType != dataType {
				return storage.InvalidSchemaError("%s has data type %s, not %s", r.Concept(), r.DataType, dataType)
			}
			return nil
		},
		func(r *Record) { r.DataType = dataType },
	)
}

func (t *Tx) PutRule(ctx context.Context, label, when, then string) (*concept.Concept, error) {
	if when == "" || then == "" {
		return nil, storage.InvalidSchemaError("rule '%s' needs a when and a then pattern", label)
	}
	return t.putSchema(ctx, label, concept.KindRule,
		func(r *Record) error {
			if r.When != when || r.Then != then {
				return storage.InvalidSchemaError("%s is already defined with other patterns", r.Concept())
			}
			return nil
		},
		func(r *Record) { r.When, r.Then = when, then },
	)
}

func (t *Tx) SetSuper(ctx context.Context, id, sup concept.ID) error {
	r, err := t.get(ctx, id)
	if err != nil {
		return err
	}
	s, err := t.backend.Get(ctx, sup)
	if err != nil {
		return err
	}
	if concept.IsMetaID(id) {
		return storage.MetaConceptError(r.Label)
	}
	if !r.Kind.IsSchema() || r.Kind != s.Kind {
		return storage.InvalidSchemaError("%s cannot be a subtype of %s", r.Concept(), s.Concept())
	}
	if r.Sup == sup {
		return nil
	}

	chain, err := t.supChain(ctx, s)
	if err != nil {
		return err
	}
	for _, c := range chain {
		if c.ID == id {
			return storage.InvalidSchemaError("%s cannot be a subtype of its own subtype %s", r.Concept(), s.Concept())
		}
	}
	if r.Kind == concept.KindAttributeType && s.DataType != "" && s.DataType != r.DataType {
		return storage.InvalidSchemaError("%s with data type %s cannot be a subtype of %s with data type %s", r.Concept(), r.DataType, s.Concept(), s.DataType)
	}

	r.Sup = sup
	return t.backend.Update(ctx, r)
}

func (t *Tx) SetLabel(ctx context.Context, id concept.ID, label string) (*concept.Concept, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if concept.IsMetaID(id) {
		return nil, storage.MetaConceptError(r.Label)
	}
	if !r.Kind.IsSchema() {
		return nil, storage.InvalidSchemaError("%s is not a schema concept", r.Concept())
	}
	if label == "" {
		return nil, storage.InvalidSchemaError("empty label for %s", r.Concept())
	}
	if r.Label == label {
		return r.Concept(), nil
	}
	if err := t.relabel(ctx, r, label); err != nil {
		return nil, err
	}

	if r.Kind == concept.KindAttributeType {
		// keep the implicit ownership types in step
		oldLabels := implicitLabels(r.Label)
		newLabels := implicitLabels(label)
		for i, old := range oldLabels {
			implicit, err := t.backend.GetByLabel(ctx, old)
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if err := t.relabel(ctx, implicit, newLabels[i]); err != nil {
				return nil, err
			}
		}
	}

	r.Label = label
	return r.Concept(), nil
}

func (t *Tx) relabel(ctx context.Context, r *Record, label string) error {
	taken, err := t.backend.GetByLabel(ctx, label)
	if err == nil {
		return storage.LabelTakenError(label, taken.Kind)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	updated := r.Clone()
	updated.Label = label
	return t.backend.Update(ctx, updated)
}

func implicitLabels(attributeType string) []string {
	relation, owner, value := concept.ImplicitLabels(attributeType)
	return []string{relation, owner, value}
}

func (t *Tx) mutableType(ctx context.Context, id concept.ID, what string, kinds ...concept.Kind) (*Record, error) {
	r, err := t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if concept.IsMetaID(id) {
		return nil, storage.MetaConceptError(r.Label)
	}
	for _, k := range kinds {
		if r.Kind == k {
			return r, nil
		}
	}
	return nil, storage.InvalidSchemaError("%s is not %s", r.Concept(), what)
}

func (t *Tx) SetAbstract(ctx context.Context, id concept.ID, abstract bool) error {
	r, err := t.mutableType(ctx, id, "a type", concept.KindEntityType, concept.KindRelationType, concept.KindAttributeType)
	if err != nil {
		return err
	}
	if r.Abstract == abstract {
		return nil
	}
	if abstract {
		instances, err := t.backend.Instances(ctx, id, 1)
		if err != nil {
			return err
		}
		if len(instances) > 0 {
			return storage.InvalidSchemaError("%s has instances and cannot be abstract", r.Concept())
		}
	}
	r.Abstract = abstract
	return t.backend.Update(ctx, r)
}

func (t *Tx) SetRegex(ctx context.Context, id concept.ID, regex string) error {
	r, err := t.mutableType(ctx, id, "an attribute type", concept.KindAttributeType)
	if err != nil {
		return err
	}
	if r.Regex == regex {
		return nil
	}
	if regex != "" {
		if r.DataType != concept.DataTypeString {
			return storage.InvalidSchemaError("regex on %s with data type %s", r.Concept(), r.DataType)
		}
		re, err := regexp.Compile(regex)
		if err != nil {
			return storage.InvalidSchemaError("regex '%s' of %s: %v", regex, r.Concept(), err)
		}
		instances, err := t.backend.Instances(ctx, id, 0)
		if err != nil {
			return err
		}
		for _, a := range instances {
			if !re.MatchString(a.Value) {
				return storage.InvalidSchemaError("value '%s' of %s does not match regex '%s'", a.Value, r.Concept(), regex)
			}
		}
	}
	r.Regex = regex
	return t.backend.Update(ctx, r)
}

func validateEdge(kind storage.EdgeKind, from, to *Record) error {
	if concept.IsMetaID(from.ID) {
		return storage.MetaConceptError(from.Label)
	}
	if concept.IsMetaID(to.ID) {
		return storage.MetaConceptError(to.Label)
	}

	var fromOK, toOK bool
	switch kind {
	case storage.EdgeRelates:
		fromOK = from.Kind == concept.KindRelationType
		toOK = to.Kind == concept.KindRole
	case storage.EdgePlays:
		fromOK = from.Kind.IsType() && from.Kind != concept.KindMetaType
		toOK = to.Kind == concept.KindRole
	case storage.EdgeHas, storage.EdgeKey:
		fromOK = from.Kind.IsType() && from.Kind != concept.KindMetaType
		toOK = to.Kind == concept.KindAttributeType
	default:
		return storage.InvalidSchemaError("unknown edge kind '%s'", kind)
	}
	if !fromOK || !toOK {
		return storage.InvalidSchemaError("%s cannot %s %s", from.Concept(), kind, to.Concept())
	}
	return nil
}

func (t *Tx) edgeEnds(ctx context.Context, from, to concept.ID) (*Record, *Record, error) {
	f, err := t.get(ctx, from)
	if err != nil {
		return nil, nil, err
	}
	e, err := t.backend.Get(ctx, to)
	if err != nil {
		return nil, nil, err
	}
	return f, e, nil
}

func (t *Tx) PutSchemaEdge(ctx context.Context, kind storage.EdgeKind, from, to concept.ID) error {
	f, e, err := t.edgeEnds(ctx, from, to)
	if err != nil {
		return err
	}
	if err := validateEdge(kind, f, e); err != nil {
		return err
	}

	edge := Edge{Kind: kind, From: from, To: to}
	existing, err := t.backend.Edges(ctx, edge)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	// an attribute type is owned either as a key or not
	switch kind {
	case storage.EdgeHas:
		err = t.backend.DeleteEdges(ctx, Edge{Kind: storage.EdgeKey, From: from, To: to})
	case storage.EdgeKey:
		err = t.backend.DeleteEdges(ctx, Edge{Kind: storage.EdgeHas, From: from, To: to})
	}
	if err != nil {
		return err
	}

	return t.backend.InsertEdge(ctx, edge)
}

func (t *Tx) DeleteSchemaEdge(ctx context.Context, kind storage.EdgeKind, from, to concept.ID) error {
	if _, _, err := t.edgeEnds(ctx, from, to); err != nil {
		return err
	}
	return t.backend.DeleteEdges(ctx, Edge{Kind: kind, From: from, To: to})
}

func (t *Tx) addThing(ctx context.Context, typ concept.ID, typeKind concept.Kind) (*concept.Concept, *Record, error) {
	tr, err := t.get(ctx, typ)
	if err != nil {
		return nil, nil, err
	}
	if tr.Kind != typeKind {
		return nil, nil, storage.InvalidSchemaError("cannot instantiate %s as a %s", tr.Concept(), typeKind.InstanceKind())
	}
	if tr.Abstract {
		return nil, nil, fmt.Errorf("%s: %w", tr.Concept(), storage.ErrAbstractType)
	}

	r := &Record{ID: t.ids.Next(), Kind: typeKind.InstanceKind(), Type: typ}
	if err := t.backend.Insert(ctx, r); err != nil {
		return nil, nil, err
	}
	return r.Concept(), tr, nil
}

func (t *Tx) AddEntity(ctx context.Context, typ concept.ID) (*concept.Concept, error) {
	c, _, err := t.addThing(ctx, typ, concept.KindEntityType)
	return c, err
}

func (t *Tx) AddRelation(ctx context.Context, typ concept.ID) (*concept.Concept, error) {
	c, _, err := t.addThing(ctx, typ, concept.KindRelationType)
	return c, err
}

func (t *Tx) PutAttribute(ctx context.Context, typ concept.ID, value any) (*concept.Concept, error) {
	tr, err := t.get(ctx, typ)
	if err != nil {
		return nil, err
	}
	if tr.Kind != concept.KindAttributeType {
		return nil, storage.InvalidSchemaError("cannot instantiate %s as an attribute", tr.Concept())
	}
	if tr.Abstract {
		return nil, fmt.Errorf("%s: %w", tr.Concept(), storage.ErrAbstractType)
	}

	normalized, err := tr.DataType.Normalize(value)
	if err != nil {
		return nil, err
	}
	encoded, err := tr.DataType.Encode(normalized)
	if err != nil {
		return nil, err
	}

	chain, err := t.supChain(ctx, tr)
	if err != nil {
		return nil, err
	}
	for _, c := range chain {
		if c.Regex == "" {
			continue
		}
		re, err := regexp.Compile(c.Regex)
		if err != nil {
			return nil, storage.InvalidSchemaError("regex '%s' of %s: %v", c.Regex, c.Concept(), err)
		}
		if !re.MatchString(encoded) {
			return nil, fmt.Errorf("%w: '%s' does not match regex '%s' of %s", storage.ErrInvalidValue, encoded, c.Regex, c.Concept())
		}
	}

	existing, err := t.backend.AttributeByValue(ctx, typ, encoded)
	if err == nil {
		return existing.Concept(), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	r := &Record{ID: t.ids.Next(), Kind: concept.KindAttribute, Type: typ, DataType: tr.DataType, Value: encoded}
	if err := t.backend.Insert(ctx, r); err != nil {
		return nil, err
	}
	return r.Concept(), nil
}

// hasEdge reports whether some type of from's hierarchy has an edge of one of
// kinds to to, returning the kind found.
func (t *Tx) hasEdge(ctx context.Context, from *Record, to concept.ID, kinds ...storage.EdgeKind) (storage.EdgeKind, bool, error) {
	chain, err := t.supChain(ctx, from)
	if err != nil {
		return "", false, err
	}
	for _, c := range chain {
		for _, k := range kinds {
			edges, err := t.backend.Edges(ctx, Edge{Kind: k, From: c.ID, To: to})
			if err != nil {
				return "", false, err
			}
			if len(edges) > 0 {
				return k, true, nil
			}
		}
	}
	return "", false, nil
}

func (t *Tx) Assign(ctx context.Context, relation, role, player concept.ID) error {
	rel, err := t.getKind(ctx, relation, "a relation", concept.KindRelation)
	if err != nil {
		return err
	}
	rr, err := t.getKind(ctx, role, "a role", concept.KindRole)
	if err != nil {
		return err
	}
	p, err := t.get(ctx, player)
	if err != nil {
		return err
	}
	if !p.Kind.IsThing() {
		return storage.InvalidSchemaError("%s is not a thing", p.Concept())
	}

	relType, err := t.backend.Get(ctx, rel.Type)
	if err != nil {
		return err
	}
	if _, ok, err := t.hasEdge(ctx, relType, role, storage.EdgeRelates); err != nil {
		return err
	} else if !ok {
		return storage.InvalidSchemaError("%s does not relate %s", relType.Concept(), rr.Concept())
	}

	playerType, err := t.backend.Get(ctx, p.Type)
	if err != nil {
		return err
	}
	if _, ok, err := t.hasEdge(ctx, playerType, role, storage.EdgePlays); err != nil {
		return err
	} else if !ok {
		return storage.InvalidSchemaError("%s does not play %s", playerType.Concept(), rr.Concept())
	}

	casting := Casting{Relation: relation, Role: role, Player: player}
	existing, err := t.backend.Castings(ctx, casting)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return t.backend.InsertCasting(ctx, casting)
}

func (t *Tx) AttachAttribute(ctx context.Context, owner, attribute concept.ID) (*concept.Concept, error) {
	o, err := t.get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !o.Kind.IsThing() {
		return nil, storage.InvalidSchemaError("%s is not a thing", o.Concept())
	}
	a, err := t.getKind(ctx, attribute, "an attribute", concept.KindAttribute)
	if err != nil {
		return nil, err
	}

	existing, err := t.backend.Ownerships(ctx, Ownership{Owner: owner, Attribute: attribute})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return t.GetConcept(ctx, existing[0].Relation)
	}

	ownerType, err := t.backend.Get(ctx, o.Type)
	if err != nil {
		return nil, err
	}
	attributeType, err := t.backend.Get(ctx, a.Type)
	if err != nil {
		return nil, err
	}
	attributeTypes, err := t.supChain(ctx, attributeType)
	if err != nil {
		return nil, err
	}

	var (
		kind storage.EdgeKind
		ok   bool
	)
	for _, at := range attributeTypes {
		if kind, ok, err = t.hasEdge(ctx, ownerType, at.ID, storage.EdgeHas, storage.EdgeKey); err != nil {
			return nil, err
		}
		if ok {
			break
		}
	}
	if !ok {
		return nil, storage.InvalidSchemaError("%s cannot own %s", ownerType.Concept(), attributeType.Concept())
	}

	if kind == storage.EdgeKey {
		owned, err := t.backend.Ownerships(ctx, Ownership{Owner: owner})
		if err != nil {
			return nil, err
		}
		for _, other := range owned {
			or, err := t.backend.Get(ctx, other.Attribute)
			if err != nil {
				return nil, err
			}
			if or.Type == a.Type {
				return nil, storage.InvalidSchemaError("%s already has a key of %s", o.Concept(), attributeType.Concept())
			}
		}
	}

	relationLabel, ownerLabel, valueLabel := concept.ImplicitLabels(attributeType.Label)
	relationType, err := t.PutRelationType(ctx, relationLabel)
	if err != nil {
		return nil, err
	}
	ownerRole, err := t.PutRole(ctx, ownerLabel)
	if err != nil {
		return nil, err
	}
	valueRole, err := t.PutRole(ctx, valueLabel)
	if err != nil {
		return nil, err
	}
	for _, role := range []concept.ID{ownerRole.ID, valueRole.ID} {
		if err := t.PutSchemaEdge(ctx, storage.EdgeRelates, relationType.ID, role); err != nil {
			return nil, err
		}
	}

	relation := &Record{ID: t.ids.Next(), Kind: concept.KindRelation, Type: relationType.ID}
	if err := t.backend.Insert(ctx, relation); err != nil {
		return nil, err
	}
	for _, c := range []Casting{
		{Relation: relation.ID, Role: ownerRole.ID, Player: owner},
		{Relation: relation.ID, Role: valueRole.ID, Player: attribute},
	} {
		if err := t.backend.InsertCasting(ctx, c); err != nil {
			return nil, err
		}
	}
	if err := t.backend.InsertOwnership(ctx, Ownership{Owner: owner, Attribute: attribute, Relation: relation.ID}); err != nil {
		return nil, err
	}

	return relation.Concept(), nil
}

func (t *Tx) Delete(ctx context.Context, id concept.ID) error {
	r, err := t.get(ctx, id)
	if err != nil {
		return err
	}
	if concept.IsMetaID(id) {
		return storage.MetaConceptError(r.Label)
	}
	if r.Kind.IsSchema() {
		return t.deleteSchemaConcept(ctx, r)
	}
	return t.deleteThing(ctx, r)
}

func (t *Tx) deleteSchemaConcept(ctx context.Context, r *Record) error {
	children, err := t.backend.Children(ctx, r.ID)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return storage.InvalidSchemaError("%s has subtypes", r.Concept())
	}

	instances, err := t.backend.Instances(ctx, r.ID, 1)
	if err != nil {
		return err
	}
	if len(instances) > 0 {
		return storage.InvalidSchemaError("%s has instances", r.Concept())
	}

	if r.Kind == concept.KindRole {
		castings, err := t.backend.Castings(ctx, Casting{Role: r.ID})
		if err != nil {
			return err
		}
		if len(castings) > 0 {
			return storage.InvalidSchemaError("%s is played in relations", r.Concept())
		}
	}

	if err := t.backend.DeleteEdges(ctx, Edge{From: r.ID}); err != nil {
		return err
	}
	if err := t.backend.DeleteEdges(ctx, Edge{To: r.ID}); err != nil {
		return err
	}
	return t.backend.Remove(ctx, r.ID)
}

func (t *Tx) deleteThing(ctx context.Context, r *Record) error {
	filters := []Ownership{{Owner: r.ID}}
	if r.Kind == concept.KindAttribute {
		filters = append(filters, Ownership{Attribute: r.ID})
	}
	for _, f := range filters {
		ownerships, err := t.backend.Ownerships(ctx, f)
		if err != nil {
			return err
		}
		for _, o := range ownerships {
			if err := t.removeRelation(ctx, o.Relation); err != nil {
				return err
			}
		}
		if err := t.backend.DeleteOwnerships(ctx, f); err != nil {
			return err
		}
	}

	if r.Kind == concept.KindRelation {
		if err := t.backend.DeleteOwnerships(ctx, Ownership{Relation: r.ID}); err != nil {
			return err
		}
		if err := t.backend.DeleteCastings(ctx, Casting{Relation: r.ID}); err != nil {
			return err
		}
	}

	if err := t.backend.DeleteCastings(ctx, Casting{Player: r.ID}); err != nil {
		return err
	}
	return t.backend.Remove(ctx, r.ID)
}

func (t *Tx) removeRelation(ctx context.Context, relation concept.ID) error {
	if err := t.backend.DeleteCastings(ctx, Casting{Relation: relation}); err != nil {
		return err
	}
	err := t.backend.Remove(ctx, relation)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return storage.ErrTransactionClosed
	}
	t.done = true
	return t.backend.Commit(ctx)
}

func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	return t.backend.Rollback(ctx)
}
