package executor

import (
	"context"
	"errors"

	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

// ignoreRemoved drops the not found errors of concepts deleted by another
// statement of the same query: they have nothing left to undefine.
func ignoreRemoved(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func undefineExecutors(v graql.Variable, property graql.Property) ([]*PropertyExecutor, error) {
	switch p := property.(type) {
	case graql.LabelProperty:
		return single(labelExecutor(v, p))

	case graql.IDProperty:
		return single(idExecutor(v, p))

	case graql.SubProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			c, err := w.getAs(ctx, v, "a schema concept", isSchemaConcept)
			if err != nil {
				return err
			}
			expected, err := w.getAs(ctx, p.Type, "a schema concept", isSchemaConcept)
			if err != nil {
				return err
			}
			actual, err := w.tx.Sup(ctx, c.ID)
			if err != nil {
				return ignoreRemoved(err)
			}
			if actual == nil || actual.ID != expected.ID {
				return nil
			}
			return ignoreRemoved(w.tx.Delete(ctx, c.ID))
		}).Requires(v, p.Type))

	case graql.RegexProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			attributeType, err := w.getAs(ctx, v, "an attribute type", isAttributeType)
			if err != nil {
				return err
			}
			current, err := w.tx.Regex(ctx, attributeType.ID)
			if err != nil {
				return ignoreRemoved(err)
			}
			if current != p.Regex {
				return nil
			}
			return ignoreRemoved(w.tx.SetRegex(ctx, attributeType.ID, ""))
		}).Requires(v))

	case graql.AbstractProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			typ, err := w.getAs(ctx, v, "a type", isUserType)
			if err != nil {
				return err
			}
			return ignoreRemoved(w.tx.SetAbstract(ctx, typ.ID, false))
		}).Requires(v))

	case graql.RelatesProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			relationType, err := w.getAs(ctx, v, "a relation type", isRelationType)
			if err != nil {
				return err
			}
			role, err := w.getAs(ctx, p.Role, "a role", isRole)
			if err != nil {
				return err
			}
			return ignoreRemoved(w.tx.DeleteSchemaEdge(ctx, storage.EdgeRelates, relationType.ID, role.ID))
		}).Requires(v, p.Role))

	case graql.PlaysProperty:
		return single(schemaEdgeExecutor(v, p.Role, storage.EdgePlays, "a role", isRole, true))

	case graql.HasAttributeTypeProperty:
		return single(schemaEdgeExecutor(v, p.Type, ownershipEdge(p), "an attribute type", isAttributeType, true))

	case graql.WhenProperty:
		return single(NewPropertyExecutor(func(_ context.Context, w *WriteExecutor) error {
			b, err := w.Builder(v)
			if err != nil {
				return err
			}
			return b.When(p.Pattern)
		}).Produces(v))

	case graql.ThenProperty:
		return single(NewPropertyExecutor(func(_ context.Context, w *WriteExecutor) error {
			b, err := w.Builder(v)
			if err != nil {
				return err
			}
			return b.Then(p.Pattern)
		}).Produces(v))

	default:
		return unsupported(ModeUndefine, v, p)
	}
}
