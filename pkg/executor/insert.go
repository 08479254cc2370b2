package executor

import (
	"context"

	"github.com/typedb/typedb-sub018/pkg/graql"
)

func insertExecutors(v graql.Variable, property graql.Property) ([]*PropertyExecutor, error) {
	switch p := property.(type) {
	case graql.LabelProperty:
		return single(labelExecutor(v, p))

	case graql.IDProperty:
		return single(idExecutor(v, p))

	case graql.IsaProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			typ, err := w.getAs(ctx, p.Type, "a type", isType)
			if err != nil {
				return err
			}
			b, err := w.Builder(v)
			if err != nil {
				return err
			}
			return b.Isa(typ)
		}).Requires(p.Type).Produces(v))

	case graql.ValueProperty:
		if !p.IsAssignment() {
			return unsupported(ModeInsert, v, p)
		}
		return single(NewPropertyExecutor(func(_ context.Context, w *WriteExecutor) error {
			b, err := w.Builder(v)
			if err != nil {
				return err
			}
			return b.Value(p.Value)
		}).Produces(v))

	case graql.HasAttributeProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			owner, err := w.getAs(ctx, v, "a thing", isThing)
			if err != nil {
				return err
			}
			attribute, err := w.getAs(ctx, p.Attribute, "an attribute", isAttribute)
			if err != nil {
				return err
			}
			relation, err := w.tx.AttachAttribute(ctx, owner.ID, attribute.ID)
			if err != nil {
				return err
			}
			b, err := w.Builder(p.Relation)
			if err != nil {
				return err
			}
			return b.ID(relation.ID)
		}).Requires(v, p.Attribute).Produces(p.Relation))

	case graql.RelationProperty:
		return single(NewPropertyExecutor(func(ctx context.Context, w *WriteExecutor) error {
			relation, err := w.getAs(ctx, v, "a relation", isRelation)
			if err != nil {
				return err
			}
			for _, rp := range p.RolePlayers {
				role, err := w.getAs(ctx, rp.Role, "a role", isRole)
				if err != nil {
					return err
				}
				player, err := w.getAs(ctx, rp.Player, "a thing", isThing)
				if err != nil {
					return err
				}
				if err := w.tx.Assign(ctx, relation.ID, role.ID, player.ID); err != nil {
					return err
				}
			}
			return nil
		}).Requires(p.Vars()...).Requires(v))

	case graql.SubProperty, graql.DataTypeProperty, graql.RegexProperty, graql.AbstractProperty,
		graql.RelatesProperty, graql.PlaysProperty, graql.HasAttributeTypeProperty,
		graql.WhenProperty, graql.ThenProperty:
		return unsupported(ModeInsert, v, p)

	default:
		return unsupported(ModeInsert, v, p)
	}
}

func labelExecutor(v graql.Variable, p graql.LabelProperty) *PropertyExecutorBuilder {
	return NewPropertyExecutor(func(_ context.Context, w *WriteExecutor) error {
		b, err := w.Builder(v)
		if err != nil {
			return err
		}
		return b.Label(p.Label)
	}).Produces(v)
}

func idExecutor(v graql.Variable, p graql.IDProperty) *PropertyExecutorBuilder {
	return NewPropertyExecutor(func(_ context.Context, w *WriteExecutor) error {
		b, err := w.Builder(v)
		if err != nil {
			return err
		}
		return b.ID(p.ID)
	}).Produces(v)
}
