package sqlcommon

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/storage/common"
)

const (
	conceptsTable    = "concepts"
	edgesTable       = "schema_edges"
	castingsTable    = "castings"
	ownershipsTable  = "ownerships"
	sequenceOrdering = "seq"
)

var conceptColumns = []string{
	"id",
	"kind",
	"label",
	"sup_id",
	"is_abstract",
	"datatype",
	"regex",
	"when_pattern",
	"then_pattern",
	"type_id",
	"attr_value",
}

// backend is the [common.Backend] of one SQL transaction.
type backend struct {
	txn            *sql.Tx
	stbl           sq.StatementBuilderType
	handleSQLError errorHandlerFn
	done           bool
}

var _ common.Backend = (*backend)(nil)

// nullable stores empty strings as NULL so that unique indexes ignore them.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanRecord(row sq.RowScanner) (*common.Record, error) {
	var r common.Record
	var rid, kind string
	var label, sup, dataType, regex, when, then, typ, value sql.NullString
	err := row.Scan(&rid, &kind, &label, &sup, &r.Abstract, &dataType, &regex, &when, &then, &typ, &value)
	if err != nil {
		return nil, err
	}

	r.Kind, err = concept.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	r.ID = concept.ID(rid)
	r.Label = label.String
	r.Sup = concept.ID(sup.String)
	r.DataType = concept.DataType(dataType.String)
	r.Regex = regex.String
	r.When = when.String
	r.Then = then.String
	r.Type = concept.ID(typ.String)
	r.Value = value.String
	return &r, nil
}

func (b *backend) selectConcepts() sq.SelectBuilder {
	return b.stbl.Select(conceptColumns...).From(conceptsTable)
}

func (b *backend) queryRecords(ctx context.Context, sb sq.SelectBuilder) ([]*common.Record, error) {
	rows, err := sb.QueryContext(ctx)
	if err != nil {
		return nil, b.handleSQLError(err)
	}
	defer rows.Close()

	var out []*common.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, b.handleSQLError(err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, b.handleSQLError(err)
	}
	return out, nil
}

func (b *backend) queryRecord(ctx context.Context, where sq.Eq, notFound error) (*common.Record, error) {
	r, err := scanRecord(b.selectConcepts().Where(where).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound
	}
	if err != nil {
		return nil, b.handleSQLError(err)
	}
	return r, nil
}

func (b *backend) Get(ctx context.Context, id concept.ID) (*common.Record, error) {
	return b.queryRecord(ctx, sq.Eq{"id": string(id)}, storage.ConceptNotFoundError(id))
}

func (b *backend) GetByLabel(ctx context.Context, label string) (*common.Record, error) {
	return b.queryRecord(ctx, sq.Eq{"label": label}, storage.LabelNotFoundError(label))
}

// byLabel sorts in Go since database collations disagree on label order.
func byLabel(a, b *common.Record) int {
	return strings.Compare(a.Label, b.Label)
}

func (b *backend) Schema(ctx context.Context) ([]*common.Record, error) {
	out, err := b.queryRecords(ctx, b.selectConcepts().Where(sq.NotEq{"label": nil}))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, byLabel)
	return out, nil
}

func (b *backend) Children(ctx context.Context, sup concept.ID) ([]*common.Record, error) {
	out, err := b.queryRecords(ctx, b.selectConcepts().Where(sq.And{
		sq.Eq{"sup_id": string(sup)},
		sq.NotEq{"label": nil},
	}))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, byLabel)
	return out, nil
}

func (b *backend) Instances(ctx context.Context, typ concept.ID, limit int) ([]*common.Record, error) {
	sb := b.selectConcepts().Where(sq.Eq{"type_id": string(typ)}).OrderBy("id")
	if limit > 0 {
		sb = sb.Limit(uint64(limit))
	}
	out, err := b.queryRecords(ctx, sb)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b *common.Record) int { return strings.Compare(string(a.ID), string(b.ID)) })
	return out, nil
}

func (b *backend) AttributeByValue(ctx context.Context, typ concept.ID, value string) (*common.Record, error) {
	return b.queryRecord(ctx, sq.Eq{"type_id": string(typ), "attr_value": value}, storage.ErrNotFound)
}

func recordValues(r *common.Record) []any {
	return []any{
		string(r.ID),
		r.Kind.String(),
		nullable(r.Label),
		nullable(string(r.Sup)),
		r.Abstract,
		nullable(string(r.DataType)),
		nullable(r.Regex),
		nullable(r.When),
		nullable(r.Then),
		nullable(string(r.Type)),
		attributeValue(r),
	}
}

func attributeValue(r *common.Record) any {
	if r.Kind != concept.KindAttribute {
		return nil
	}
	return r.Value
}

func (b *backend) Insert(ctx context.Context, r *common.Record) error {
	_, err := b.stbl.
		Insert(conceptsTable).
		Columns(conceptColumns...).
		Values(recordValues(r)...).
		ExecContext(ctx)
	if err != nil {
		return b.handleSQLError(err, r.Concept())
	}
	return nil
}

func (b *backend) Update(ctx context.Context, r *common.Record) error {
	values := recordValues(r)
	clauses := make(map[string]any, len(conceptColumns)-1)
	for i, column := range conceptColumns[1:] {
		clauses[column] = values[i+1]
	}

	res, err := b.stbl.
		Update(conceptsTable).
		SetMap(clauses).
		Where(sq.Eq{"id": string(r.ID)}).
		ExecContext(ctx)
	if err != nil {
		return b.handleSQLError(err, r.Concept())
	}
	return affected(res, storage.ConceptNotFoundError(r.ID))
}

func (b *backend) Remove(ctx context.Context, id concept.ID) error {
	res, err := b.stbl.
		Delete(conceptsTable).
		Where(sq.Eq{"id": string(id)}).
		ExecContext(ctx)
	if err != nil {
		return b.handleSQLError(err)
	}
	return affected(res, storage.ConceptNotFoundError(id))
}

// affected returns notFound when res touched no row. Drivers that cannot
// count rows are trusted.
func affected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return notFound
	}
	return nil
}

// where turns the non-empty fields of a filter into an equality clause.
func where(fields map[string]string) sq.Eq {
	eq := sq.Eq{}
	for column, value := range fields {
		if value != "" {
			eq[column] = value
		}
	}
	return eq
}

func edgeFilter(f common.Edge) sq.Eq {
	return where(map[string]string{"kind": string(f.Kind), "from_id": string(f.From), "to_id": string(f.To)})
}

func castingFilter(f common.Casting) sq.Eq {
	return where(map[string]string{"relation_id": string(f.Relation), "role_id": string(f.Role), "player_id": string(f.Player)})
}

func ownershipFilter(f common.Ownership) sq.Eq {
	return where(map[string]string{"owner_id": string(f.Owner), "attribute_id": string(f.Attribute), "relation_id": string(f.Relation)})
}

// queryTriples reads three string columns of table in insertion order.
func (b *backend) queryTriples(ctx context.Context, table string, columns [3]string, filter sq.Eq) ([][3]string, error) {
	rows, err := b.stbl.
		Select(columns[:]...).
		From(table).
		Where(filter).
		OrderBy(sequenceOrdering).
		QueryContext(ctx)
	if err != nil {
		return nil, b.handleSQLError(err)
	}
	defer rows.Close()

	var out [][3]string
	for rows.Next() {
		var t [3]string
		if err := rows.Scan(&t[0], &t[1], &t[2]); err != nil {
			return nil, b.handleSQLError(err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, b.handleSQLError(err)
	}
	return out, nil
}

func (b *backend) insertTriple(ctx context.Context, table string, columns [3]string, values [3]string) error {
	_, err := b.stbl.
		Insert(table).
		Columns(columns[:]...).
		Values(values[0], values[1], values[2]).
		ExecContext(ctx)
	if err != nil {
		return b.handleSQLError(err)
	}
	return nil
}

func (b *backend) deleteRows(ctx context.Context, table string, filter sq.Eq) error {
	_, err := b.stbl.Delete(table).Where(filter).ExecContext(ctx)
	if err != nil {
		return b.handleSQLError(err)
	}
	return nil
}

var (
	edgeColumns      = [3]string{"kind", "from_id", "to_id"}
	castingColumns   = [3]string{"relation_id", "role_id", "player_id"}
	ownershipColumns = [3]string{"owner_id", "attribute_id", "relation_id"}
)

func (b *backend) Edges(ctx context.Context, f common.Edge) ([]common.Edge, error) {
	rows, err := b.queryTriples(ctx, edgesTable, edgeColumns, edgeFilter(f))
	if err != nil {
		return nil, err
	}
	out := make([]common.Edge, 0, len(rows))
	for _, t := range rows {
		out = append(out, common.Edge{Kind: storage.EdgeKind(t[0]), From: concept.ID(t[1]), To: concept.ID(t[2])})
	}
	return out, nil
}

func (b *backend) InsertEdge(ctx context.Context, e common.Edge) error {
	return b.insertTriple(ctx, edgesTable, edgeColumns, [3]string{string(e.Kind), string(e.From), string(e.To)})
}

func (b *backend) DeleteEdges(ctx context.Context, f common.Edge) error {
	return b.deleteRows(ctx, edgesTable, edgeFilter(f))
}

func (b *backend) Castings(ctx context.Context, f common.Casting) ([]common.Casting, error) {
	rows, err := b.queryTriples(ctx, castingsTable, castingColumns, castingFilter(f))
	if err != nil {
		return nil, err
	}
	out := make([]common.Casting, 0, len(rows))
	for _, t := range rows {
		out = append(out, common.Casting{Relation: concept.ID(t[0]), Role: concept.ID(t[1]), Player: concept.ID(t[2])})
	}
	return out, nil
}

func (b *backend) InsertCasting(ctx context.Context, c common.Casting) error {
	return b.insertTriple(ctx, castingsTable, castingColumns, [3]string{string(c.Relation), string(c.Role), string(c.Player)})
}

func (b *backend) DeleteCastings(ctx context.Context, f common.Casting) error {
	return b.deleteRows(ctx, castingsTable, castingFilter(f))
}

func (b *backend) Ownerships(ctx context.Context, f common.Ownership) ([]common.Ownership, error) {
	rows, err := b.queryTriples(ctx, ownershipsTable, ownershipColumns, ownershipFilter(f))
	if err != nil {
		return nil, err
	}
	out := make([]common.Ownership, 0, len(rows))
	for _, t := range rows {
		out = append(out, common.Ownership{Owner: concept.ID(t[0]), Attribute: concept.ID(t[1]), Relation: concept.ID(t[2])})
	}
	return out, nil
}

func (b *backend) InsertOwnership(ctx context.Context, o common.Ownership) error {
	return b.insertTriple(ctx, ownershipsTable, ownershipColumns, [3]string{string(o.Owner), string(o.Attribute), string(o.Relation)})
}

func (b *backend) DeleteOwnerships(ctx context.Context, f common.Ownership) error {
	return b.deleteRows(ctx, ownershipsTable, ownershipFilter(f))
}

func (b *backend) Commit(ctx context.Context) error {
	_, span := tracer.Start(ctx, "sqlcommon.Commit")
	defer span.End()

	if b.done {
		return storage.ErrTransactionClosed
	}
	b.done = true
	if err := b.txn.Commit(); err != nil {
		return b.handleSQLError(err)
	}
	return nil
}

func (b *backend) Rollback(context.Context) error {
	if b.done {
		return nil
	}
	b.done = true
	if err := b.txn.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return b.handleSQLError(err)
	}
	return nil
}
