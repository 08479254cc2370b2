package logger

import (
	"context"
	"slices"

	"go.uber.org/zap"
)

type ctxKey struct{}

// ContextWithFields returns a copy of ctx carrying fields, in addition to any it
// already carries, for the *WithContext logging methods.
func ContextWithFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, append(slices.Clip(fieldsFromContext(ctx)), fields...))
}

func fieldsFromContext(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxKey{}).([]zap.Field)
	return fields
}
