package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"go.opentelemetry.io/otel"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/id"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/common"
)

var tracer = otel.Tracer("graphkb/pkg/storage/memory")

// ErrClosed is returned by Begin once the datastore is closed.
var ErrClosed = errors.New("memory datastore closed")

// StorageOption defines a function type used for configuring a [MemoryBackend] instance.
type StorageOption func(ds *MemoryBackend)

// WithIDGenerator sets the generator of concept ids.
func WithIDGenerator(g id.Generator) StorageOption {
	return func(ds *MemoryBackend) { ds.ids = g }
}

// MemoryBackend provides an ephemeral memory-backed implementation of [storage.Datastore].
// Write transactions are serialised: Begin blocks until the previous transaction
// commits or rolls back. Each transaction works on a private copy of the graph
// that replaces the committed one on Commit.
type MemoryBackend struct {
	ids id.Generator

	// sem holds one token while a transaction is open.
	sem chan struct{}

	committed *state // GUARDED_BY(sem).
	closed    bool   // GUARDED_BY(sem).
}

var _ storage.Datastore = (*MemoryBackend)(nil)

// New creates a new [MemoryBackend] holding only the meta concepts.
func New(opts ...StorageOption) *MemoryBackend {
	ds := &MemoryBackend{
		ids:       id.NewULIDGenerator(),
		sem:       make(chan struct{}, 1),
		committed: newState(),
	}

	for _, opt := range opts {
		opt(ds)
	}

	for _, r := range common.MetaRecords() {
		ds.committed.put(r)
	}

	return ds
}

// Begin see [storage.Datastore].Begin.
func (s *MemoryBackend) Begin(ctx context.Context) (storage.ConceptTx, error) {
	ctx, span := tracer.Start(ctx, "memory.Begin")
	defer span.End()

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if s.closed {
		<-s.sem
		return nil, ErrClosed
	}

	return common.NewTx(&backend{ds: s, state: s.committed.clone()}, s.ids), nil
}

// IsReady see [storage.Datastore].IsReady.
func (s *MemoryBackend) IsReady(context.Context) (storage.ReadinessStatus, error) {
	return storage.ReadinessStatus{IsReady: true}, nil
}

// Close waits for the open transaction, if any, and rejects further ones.
func (s *MemoryBackend) Close() {
	s.sem <- struct{}{}
	s.closed = true
	<-s.sem
}

type valueKey struct {
	typ   concept.ID
	value string
}

type state struct {
	records map[concept.ID]*common.Record
	// labels maps labels to schema concept ids, ordered by label.
	labels     *redblacktree.Tree
	values     map[valueKey]concept.ID
	edges      []common.Edge
	castings   []common.Casting
	ownerships []common.Ownership
}

func newState() *state {
	return &state{
		records: make(map[concept.ID]*common.Record),
		labels:  redblacktree.NewWith(utils.StringComparator),
		values:  make(map[valueKey]concept.ID),
	}
}

// clone copies the indexes. Records are shared until replaced, never mutated in place.
func (st *state) clone() *state {
	labels := redblacktree.NewWith(utils.StringComparator)
	it := st.labels.Iterator()
	for it.Next() {
		labels.Put(it.Key(), it.Value())
	}
	return &state{
		records:    maps.Clone(st.records),
		labels:     labels,
		values:     maps.Clone(st.values),
		edges:      slices.Clone(st.edges),
		castings:   slices.Clone(st.castings),
		ownerships: slices.Clone(st.ownerships),
	}
}

func (st *state) put(r *common.Record) {
	st.records[r.ID] = r
	if r.Label != "" {
		st.labels.Put(r.Label, r.ID)
	}
	if r.Kind == concept.KindAttribute {
		st.values[valueKey{r.Type, r.Value}] = r.ID
	}
}

func (st *state) remove(r *common.Record) {
	delete(st.records, r.ID)
	if r.Label != "" {
		st.labels.Remove(r.Label)
	}
	if r.Kind == concept.KindAttribute {
		delete(st.values, valueKey{r.Type, r.Value})
	}
}

// backend is the [common.Backend] of one transaction.
type backend struct {
	ds    *MemoryBackend
	state *state
	done  bool
}

var _ common.Backend = (*backend)(nil)

func (b *backend) Get(_ context.Context, id concept.ID) (*common.Record, error) {
	r, ok := b.state.records[id]
	if !ok {
		return nil, storage.ConceptNotFoundError(id)
	}
	return r.Clone(), nil
}

func (b *backend) GetByLabel(ctx context.Context, label string) (*common.Record, error) {
	v, ok := b.state.labels.Get(label)
	if !ok {
		return nil, storage.LabelNotFoundError(label)
	}
	return b.Get(ctx, v.(concept.ID))
}

func (b *backend) Schema(context.Context) ([]*common.Record, error) {
	out := make([]*common.Record, 0, b.state.labels.Size())
	it := b.state.labels.Iterator()
	for it.Next() {
		out = append(out, b.state.records[it.Value().(concept.ID)].Clone())
	}
	return out, nil
}

func (b *backend) Children(_ context.Context, sup concept.ID) ([]*common.Record, error) {
	var out []*common.Record
	for _, r := range b.state.records {
		if r.Sup == sup && r.Kind.IsSchema() {
			out = append(out, r.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *common.Record) int { return strings.Compare(a.Label, b.Label) })
	return out, nil
}

func (b *backend) Instances(_ context.Context, typ concept.ID, limit int) ([]*common.Record, error) {
	var out []*common.Record
	for _, r := range b.state.records {
		if r.Type == typ && r.Kind.IsThing() {
			out = append(out, r.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *common.Record) int { return strings.Compare(string(a.ID), string(b.ID)) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (b *backend) AttributeByValue(ctx context.Context, typ concept.ID, value string) (*common.Record, error) {
	id, ok := b.state.values[valueKey{typ, value}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return b.Get(ctx, id)
}

func (b *backend) Insert(_ context.Context, r *common.Record) error {
	if _, ok := b.state.records[r.ID]; ok {
		return storage.InvalidSchemaError("concept '%s' already exists", r.ID)
	}
	if r.Label != "" {
		if _, ok := b.state.labels.Get(r.Label); ok {
			return storage.LabelTakenError(r.Label, r.Kind)
		}
	}
	b.state.put(r.Clone())
	return nil
}

func (b *backend) Update(_ context.Context, r *common.Record) error {
	old, ok := b.state.records[r.ID]
	if !ok {
		return storage.ConceptNotFoundError(r.ID)
	}
	b.state.remove(old)
	b.state.put(r.Clone())
	return nil
}

func (b *backend) Remove(_ context.Context, id concept.ID) error {
	r, ok := b.state.records[id]
	if !ok {
		return storage.ConceptNotFoundError(id)
	}
	b.state.remove(r)
	return nil
}

func filter[T any](rows []T, match func(T) bool) []T {
	var out []T
	for _, row := range rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (b *backend) Edges(_ context.Context, f common.Edge) ([]common.Edge, error) {
	return filter(b.state.edges, f.Matches), nil
}

func (b *backend) InsertEdge(_ context.Context, e common.Edge) error {
	b.state.edges = append(b.state.edges, e)
	return nil
}

func (b *backend) DeleteEdges(_ context.Context, f common.Edge) error {
	b.state.edges = slices.DeleteFunc(b.state.edges, f.Matches)
	return nil
}

func (b *backend) Castings(_ context.Context, f common.Casting) ([]common.Casting, error) {
	return filter(b.state.castings, f.Matches), nil
}

func (b *backend) InsertCasting(_ context.Context, c common.Casting) error {
	b.state.castings = append(b.state.castings, c)
	return nil
}

func (b *backend) DeleteCastings(_ context.Context, f common.Casting) error {
	b.state.castings = slices.DeleteFunc(b.state.castings, f.Matches)
	return nil
}

func (b *backend) Ownerships(_ context.Context, f common.Ownership) ([]common.Ownership, error) {
	return filter(b.state.ownerships, f.Matches), nil
}

func (b *backend) InsertOwnership(_ context.Context, o common.Ownership) error {
	b.state.ownerships = append(b.state.ownerships, o)
	return nil
}

func (b *backend) DeleteOwnerships(_ context.Context, f common.Ownership) error {
	b.state.ownerships = slices.DeleteFunc(b.state.ownerships, f.Matches)
	return nil
}

func (b *backend) Commit(ctx context.Context) error {
	_, span := tracer.Start(ctx, "memory.Commit")
	defer span.End()

	if b.done {
		return storage.ErrTransactionClosed
	}
	b.done = true
	b.ds.committed = b.state
	<-b.ds.sem
	return nil
}

func (b *backend) Rollback(context.Context) error {
	if b.done {
		return nil
	}
	b.done = true
	<-b.ds.sem
	return nil
}
