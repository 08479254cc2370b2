package executor

import (
	"context"
	"slices"

	"github.com/typedb/typedb-sub018/pkg/graql"
)

// Method is the unit of work of a PropertyExecutor. It may only call
// WriteExecutor.Get for the executor's required variables and
// WriteExecutor.Builder or TryBuilder for its produced variables.
type Method func(ctx context.Context, w *WriteExecutor) error

// PropertyExecutor pairs a Method with the variables it requires to be resolved
// and the variables it produces. It is immutable.
type PropertyExecutor struct {
	required []graql.Variable
	produced []graql.Variable
	method   Method
}

// RequiredVars returns the variables the method reads, sorted.
func (e *PropertyExecutor) RequiredVars() []graql.Variable {
	return slices.Clone(e.required)
}

// ProducedVars returns the variables the method builds, sorted.
func (e *PropertyExecutor) ProducedVars() []graql.Variable {
	return slices.Clone(e.produced)
}

// Execute runs the method against w.
func (e *PropertyExecutor) Execute(ctx context.Context, w *WriteExecutor) error {
	return e.method(ctx, w)
}

// PropertyExecutorBuilder assembles a PropertyExecutor.
type PropertyExecutorBuilder struct {
	required []graql.Variable
	produced []graql.Variable
	method   Method
}

// NewPropertyExecutor starts building an executor running method.
func NewPropertyExecutor(method Method) *PropertyExecutorBuilder {
	return &PropertyExecutorBuilder{method: method}
}

// Requires adds variables that must be resolved before the method runs.
func (b *PropertyExecutorBuilder) Requires(vars ...graql.Variable) *PropertyExecutorBuilder {
	b.required = append(b.required, vars...)
	return b
}

// Produces adds variables the method resolves or constrains.
func (b *PropertyExecutorBuilder) Produces(vars ...graql.Variable) *PropertyExecutorBuilder {
	b.produced = append(b.produced, vars...)
	return b
}

// Build returns the immutable executor.
func (b *PropertyExecutorBuilder) Build() *PropertyExecutor {
	return &PropertyExecutor{
		required: sortedVars(b.required),
		produced: sortedVars(b.produced),
		method:   b.method,
	}
}

func sortedVars(vars []graql.Variable) []graql.Variable {
	out := slices.Clone(vars)
	slices.SortFunc(out, graql.CompareVars)
	return slices.Compact(out)
}

// VarAndProperty is a node of the dependency graph: one executor of one property
// of a subject variable.
type VarAndProperty struct {
	Var      graql.Variable
	Property graql.Property
	Executor *PropertyExecutor
}

// UniquelyIdentifiesConcept reports whether the property induces variable equivalence.
func (vp *VarAndProperty) UniquelyIdentifiesConcept() bool {
	return vp.Property.UniquelyIdentifiesConcept()
}

func (vp *VarAndProperty) String() string {
	return vp.Var.String() + " " + vp.Property.String()
}
