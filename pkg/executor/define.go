package executor

import (
	"context"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func defineExecutors(v graql.Variable, property graql.Property) ([]*PropertyExecutor, error) {
	switch p := property.(type) {
	case graql.LabelProperty:
		return single(labelExecutor(v, p))

	case graql.IDProperty:
		return single(idExecutor(v, p))

	case graql.SubProperty:
		return single(subExecutor(v, p.Type))

	case graql.DataTypeProperty:
		return single(NewPropertyExecutor(func(_ context.Context, w *WriteExecutor) error {
			b, err := w.Builder(v)
			if err != nil {
				return err
			}
			return b.DataType(p.DataType)
		}).Produces(v))

	case graql.RegexProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			attributeType, err := w.getAs(ctx, v, "an attribute type", isAttributeType)
			if err != nil {
				return err
			}
			return w.tx.SetRegex(ctx, attributeType.ID, p.Regex)
		}).Requires(v))

	case graql.AbstractProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			typ, err := w.getAs(ctx, v, "a type", isUserType)
			if err != nil {
				return err
			}
			return w.tx.SetAbstract(ctx, typ.ID, true)
		}).Requires(v))

	case graql.RelatesProperty:
		executors := []*PropertyExecutor{
			NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
				relationType, err := w.getAs(ctx, v, "a relation type", isRelationType)
				if err != nil {
					return err
				}
				role, err := w.getAs(ctx, p.Role, "a role", isRole)
				if err != nil {
					return err
				}
				return w.tx.PutSchemaEdge(ctx, storage.EdgeRelates, relationType.ID, role.ID)
			}).Requires(v, p.Role).Build(),

			NewPropertyExecutor(func(_ context.Context, w *WriteExecutor) error {
				b, err := w.Builder(p.Role)
				if err != nil {
					return err
				}
				b.IsRole()
				return nil
			}).Produces(p.Role).Build(),
		}
		if p.SuperRole != nil {
			executors = append(executors, subExecutor(p.Role, *p.SuperRole).Build())
		}
		return executors, nil

	case graql.PlaysProperty:
		return single(schemaEdgeExecutor(v, p.Role, storage.EdgePlays, "a role", isRole, false))

	case graql.HasAttributeTypeProperty:
		return single(schemaEdgeExecutor(v, p.Type, ownershipEdge(p), "an attribute type", isAttributeType, false))

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
		return unsupported(ModeDefine, v, p)
	}
}

// subExecutor makes super the supertype of v, through the builder of v when it
// is still being built.
func subExecutor(v, super graql.Variable) *PropertyExecutorBuilder {
	return NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
		sup, err := w.getAs(ctx, super, "a schema concept", isSchemaConcept)
		if err != nil {
			return err
		}
		if b, ok := w.TryBuilder(v); ok {
			return b.Sub(sup)
		}
		c, err := w.Get(ctx, v)
		if err != nil {
			return err
		}
		return setSuper(ctx, w.tx, w.describe(v), c, sup)
	}).Requires(super).Produces(v)
}

func ownershipEdge(p graql.HasAttributeTypeProperty) storage.EdgeKind {
	if p.Key {
		return storage.EdgeKey
	}
	return storage.EdgeHas
}

// schemaEdgeExecutor puts, or deletes when remove is set, the edge of kind
// from the type bound to v to the concept bound to target.
func schemaEdgeExecutor(v, target graql.Variable, kind storage.EdgeKind, expected string, accept func(*concept.Concept) bool, remove bool) *PropertyExecutorBuilder {
	return NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
		from, err := w.getAs(ctx, v, "a type", isUserType)
		if err != nil {
			return err
		}
		to, err := w.getAs(ctx, target, expected, accept)
		if err != nil {
			return err
		}
		if remove {
			return ignoreRemoved(w.tx.DeleteSchemaEdge(ctx, kind, from.ID, to.ID))
		}
		return w.tx.PutSchemaEdge(ctx, kind, from.ID, to.ID)
	}).Requires(v, target)
}
