package storagewrappers

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/typedb/typedb-sub018/internal/build"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

var tracer = otel.Tracer("graphkb/pkg/storage/storagewrappers")

var datastoreQueryCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: build.ProjectName,
	Name:      "datastore_query_count",
	Help:      "The total number of calls made to the datastore, by method.",
}, []string{"method"})

var (
	_ storage.Datastore = (*InstrumentedDatastore)(nil)
	_ storage.ConceptTx = (*InstrumentedTx)(nil)
)

// InstrumentedDatastore wraps a datastore so that every transaction it
// begins counts and traces its calls.
type InstrumentedDatastore struct {
	storage.Datastore
}

// NewInstrumentedDatastore returns an instrumented view of wrapped.
func NewInstrumentedDatastore(wrapped storage.Datastore) *InstrumentedDatastore {
	return &InstrumentedDatastore{Datastore: wrapped}
}

// Begin see [storage.Datastore].Begin.
func (d *InstrumentedDatastore) Begin(ctx context.Context) (storage.ConceptTx, error) {
	ctx, span := tracer.Start(ctx, "datastore.Begin")
	defer span.End()

	tx, err := d.Datastore.Begin(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}
	return NewInstrumentedTx(tx), nil
}

// InstrumentedTx counts the datastore calls of one transaction. It is safe
// for concurrent use but should not outlive the transaction it wraps.
type InstrumentedTx struct {
	storage.ConceptTx
	queries atomic.Uint32
}

// NewInstrumentedTx wraps tx.
func NewInstrumentedTx(tx storage.ConceptTx) *InstrumentedTx {
	return &InstrumentedTx{ConceptTx: tx}
}

type Metrics struct {
	DatastoreQueryCount uint32
}

// GetMetrics returns the calls made through t so far, Commit and Rollback excluded.
func (t *InstrumentedTx) GetMetrics() Metrics {
	return Metrics{
		DatastoreQueryCount: t.queries.Load(),
	}
}

func (t *InstrumentedTx) start(ctx context.Context, method string) (context.Context, trace.Span) {
	t.queries.Add(1)
	datastoreQueryCount.WithLabelValues(method).Inc()
	return tracer.Start(ctx, "datastore."+method, trace.WithAttributes(attribute.String("method", method)))
}

// recordError marks span failed unless err is nil or a not found lookup.
func recordError(span trace.Span, err error) error {
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Commit see [storage.ConceptTx].Commit.
func (t *InstrumentedTx) Commit(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "datastore.Commit")
	defer span.End()

	span.SetAttributes(attribute.Int64("datastore_query_count", int64(t.queries.Load())))
	return recordError(span, t.ConceptTx.Commit(ctx))
}

// GetConcept see [storage.ConceptTx].GetConcept.
func (t *InstrumentedTx) GetConcept(ctx context.Context, id concept.ID) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "GetConcept")
	defer span.End()

	res, err := t.ConceptTx.GetConcept(ctx, id)
	return res, recordError(span, err)
}

// GetSchemaConcept see [storage.ConceptTx].GetSchemaConcept.
func (t *InstrumentedTx) GetSchemaConcept(ctx context.Context, label string) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "GetSchemaConcept")
	defer span.End()

	res, err := t.ConceptTx.GetSchemaConcept(ctx, label)
	return res, recordError(span, err)
}

// SchemaConcepts see [storage.ConceptTx].SchemaConcepts.
func (t *InstrumentedTx) SchemaConcepts(ctx context.Context) ([]*concept.Concept, error) {
	ctx, span := t.start(ctx, "SchemaConcepts")
	defer span.End()

	res, err := t.ConceptTx.SchemaConcepts(ctx)
	return res, recordError(span, err)
}

// Sup see [storage.ConceptTx].Sup.
func (t *InstrumentedTx) Sup(ctx context.Context, id concept.ID) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "Sup")
	defer span.End()

	res, err := t.ConceptTx.Sup(ctx, id)
	return res, recordError(span, err)
}

// TypeOf see [storage.ConceptTx].TypeOf.
func (t *InstrumentedTx) TypeOf(ctx context.Context, id concept.ID) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "TypeOf")
	defer span.End()

	res, err := t.ConceptTx.TypeOf(ctx, id)
	return res, recordError(span, err)
}

// AttributeValue see [storage.ConceptTx].AttributeValue.
func (t *InstrumentedTx) AttributeValue(ctx context.Context, id concept.ID) (any, error) {
	ctx, span := t.start(ctx, "AttributeValue")
	defer span.End()

	res, err := t.ConceptTx.AttributeValue(ctx, id)
	return res, recordError(span, err)
}

// DataType see [storage.ConceptTx].DataType.
func (t *InstrumentedTx) DataType(ctx context.Context, id concept.ID) (concept.DataType, error) {
	ctx, span := t.start(ctx, "DataType")
	defer span.End()

	res, err := t.ConceptTx.DataType(ctx, id)
	return res, recordError(span, err)
}

// Rule see [storage.ConceptTx].Rule.
func (t *InstrumentedTx) Rule(ctx context.Context, id concept.ID) (string, string, error) {
	ctx, span := t.start(ctx, "Rule")
	defer span.End()

	when, then, err := t.ConceptTx.Rule(ctx, id)
	return when, then, recordError(span, err)
}

// Regex see [storage.ConceptTx].Regex.
func (t *InstrumentedTx) Regex(ctx context.Context, id concept.ID) (string, error) {
	ctx, span := t.start(ctx, "Regex")
	defer span.End()

	res, err := t.ConceptTx.Regex(ctx, id)
	return res, recordError(span, err)
}

// IsAbstract see [storage.ConceptTx].IsAbstract.
func (t *InstrumentedTx) IsAbstract(ctx context.Context, id concept.ID) (bool, error) {
	ctx, span := t.start(ctx, "IsAbstract")
	defer span.End()

	res, err := t.ConceptTx.IsAbstract(ctx, id)
	return res, recordError(span, err)
}

// SchemaEdges see [storage.ConceptTx].SchemaEdges.
func (t *InstrumentedTx) SchemaEdges(ctx context.Context, kind storage.EdgeKind, from concept.ID) ([]concept.ID, error) {
	ctx, span := t.start(ctx, "SchemaEdges")
	defer span.End()

	res, err := t.ConceptTx.SchemaEdges(ctx, kind, from)
	return res, recordError(span, err)
}

// RolePlayers see [storage.ConceptTx].RolePlayers.
func (t *InstrumentedTx) RolePlayers(ctx context.Context, relation concept.ID) ([]storage.RolePlayer, error) {
	ctx, span := t.start(ctx, "RolePlayers")
	defer span.End()

	res, err := t.ConceptTx.RolePlayers(ctx, relation)
	return res, recordError(span, err)
}

// Attributes see [storage.ConceptTx].Attributes.
func (t *InstrumentedTx) Attributes(ctx context.Context, owner concept.ID) ([]concept.ID, error) {
	ctx, span := t.start(ctx, "Attributes")
	defer span.End()

	res, err := t.ConceptTx.Attributes(ctx, owner)
	return res, recordError(span, err)
}

// PutEntityType see [storage.ConceptTx].PutEntityType.
func (t *InstrumentedTx) PutEntityType(ctx context.Context, label string) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "PutEntityType")
	defer span.End()

	res, err := t.ConceptTx.PutEntityType(ctx, label)
	return res, recordError(span, err)
}

// PutRelationType see [storage.ConceptTx].PutRelationType.
func (t *InstrumentedTx) PutRelationType(ctx context.Context, label string) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "PutRelationType")
	defer span.End()

	res, err := t.ConceptTx.PutRelationType(ctx, label)
	return res, recordError(span, err)
}

// PutRole see [storage.ConceptTx].PutRole.
func (t *InstrumentedTx) PutRole(ctx context.Context, label string) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "PutRole")
	defer span.End()

	res, err := t.ConceptTx.PutRole(ctx, label)
	return res, recordError(span, err)
}

// PutAttributeType see [storage.ConceptTx].PutAttributeType.
func (t *InstrumentedTx) PutAttributeType(ctx context.Context, label string, dataType concept.DataType) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "PutAttributeType")
	defer span.End()

	res, err := t.ConceptTx.PutAttributeType(ctx, label, dataType)
	return res, recordError(span, err)
}

// PutRule see [storage.ConceptTx].PutRule.
func (t *InstrumentedTx) PutRule(ctx context.Context, label, when, then string) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "PutRule")
	defer span.End()

	res, err := t.ConceptTx.PutRule(ctx, label, when, then)
	return res, recordError(span, err)
}

// SetSuper see [storage.ConceptTx].SetSuper.
func (t *InstrumentedTx) SetSuper(ctx context.Context, id, sup concept.ID) error {
	ctx, span := t.start(ctx, "SetSuper")
	defer span.End()

	return recordError(span, t.ConceptTx.SetSuper(ctx, id, sup))
}

// SetLabel see [storage.ConceptTx].SetLabel.
func (t *InstrumentedTx) SetLabel(ctx context.Context, id concept.ID, label string) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "SetLabel")
	defer span.End()

	res, err := t.ConceptTx.SetLabel(ctx, id, label)
	return res, recordError(span, err)
}

// SetAbstract see [storage.ConceptTx].SetAbstract.
func (t *InstrumentedTx) SetAbstract(ctx context.Context, id concept.ID, abstract bool) error {
	ctx, span := t.start(ctx, "SetAbstract")
	defer span.End()

	return recordError(span, t.ConceptTx.SetAbstract(ctx, id, abstract))
}

// SetRegex see [storage.ConceptTx].SetRegex.
func (t *InstrumentedTx) SetRegex(ctx context.Context, id concept.ID, regex string) error {
	ctx, span := t.start(ctx, "SetRegex")
	defer span.End()

	return recordError(span, t.ConceptTx.SetRegex(ctx, id, regex))
}

// PutSchemaEdge see [storage.ConceptTx].PutSchemaEdge.
func (t *InstrumentedTx) PutSchemaEdge(ctx context.Context, kind storage.EdgeKind, from, to concept.ID) error {
	ctx, span := t.start(ctx, "PutSchemaEdge")
	defer span.End()

	return recordError(span, t.ConceptTx.PutSchemaEdge(ctx, kind, from, to))
}

// DeleteSchemaEdge see [storage.ConceptTx].DeleteSchemaEdge.
func (t *InstrumentedTx) DeleteSchemaEdge(ctx context.Context, kind storage.EdgeKind, from, to concept.ID) error {
	ctx, span := t.start(ctx, "DeleteSchemaEdge")
	defer span.End()

	return recordError(span, t.ConceptTx.DeleteSchemaEdge(ctx, kind, from, to))
}

// AddEntity see [storage.ConceptTx].AddEntity.
func (t *InstrumentedTx) AddEntity(ctx context.Context, typ concept.ID) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "AddEntity")
	defer span.End()

	res, err := t.ConceptTx.AddEntity(ctx, typ)
	return res, recordError(span, err)
}

// AddRelation see [storage.ConceptTx].AddRelation.
func (t *InstrumentedTx) AddRelation(ctx context.Context, typ concept.ID) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "AddRelation")
	defer span.End()

	res, err := t.ConceptTx.AddRelation(ctx, typ)
	return res, recordError(span, err)
}

// PutAttribute see [storage.ConceptTx].PutAttribute.
func (t *InstrumentedTx) PutAttribute(ctx context.Context, typ concept.ID, value any) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "PutAttribute")
	defer span.End()

	res, err := t.ConceptTx.PutAttribute(ctx, typ, value)
	return res, recordError(span, err)
}

// Assign see [storage.ConceptTx].Assign.
func (t *InstrumentedTx) Assign(ctx context.Context, relation, role, player concept.ID) error {
	ctx, span := t.start(ctx, "Assign")
	defer span.End()

	return recordError(span, t.ConceptTx.Assign(ctx, relation, role, player))
}

// AttachAttribute see [storage.ConceptTx].AttachAttribute.
func (t *InstrumentedTx) AttachAttribute(ctx context.Context, owner, attribute concept.ID) (*concept.Concept, error) {
	ctx, span := t.start(ctx, "AttachAttribute")
	defer span.End()

	res, err := t.ConceptTx.AttachAttribute(ctx, owner, attribute)
	return res, recordError(span, err)
}

// Delete see [storage.ConceptTx].Delete.
func (t *InstrumentedTx) Delete(ctx context.Context, id concept.ID) error {
	ctx, span := t.start(ctx, "Delete")
	defer span.End()

	return recordError(span, t.ConceptTx.Delete(ctx, id))
}
