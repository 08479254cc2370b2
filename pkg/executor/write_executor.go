// Package executor turns the properties of write queries into an ordered
// sequence of graph mutations.
package executor

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/internal/build"
	"github.com/typedb/typedb-sub018/internal/partition"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
	"github.com/typedb/typedb-sub018/pkg/telemetry"
)

var (
	tracer = otel.Tracer("graphkb/pkg/executor")

	propertiesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: build.ProjectName,
		Name:      "write_executor_properties_total",
		Help:      "The total number of property executors run by write queries.",
	}, []string{"mode"})

	executionDurationHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:                       build.ProjectName,
		Name:                            "write_executor_duration_ms",
		Help:                            "The duration (in ms) of a write executor run.",
		Buckets:                         []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		NativeHistogramBucketFactor:     1.1,
		NativeHistogramMaxBucketNumber:  100,
		NativeHistogramMinResetDuration: time.Hour,
	}, []string{"mode", "outcome"})
)

// WriteExecutorOption configures a WriteExecutor.
type WriteExecutorOption func(*WriteExecutor)

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) WriteExecutorOption {
	return func(w *WriteExecutor) {
		w.logger = l
	}
}

// WithPriorAnswer seeds the executor with concepts bound by a preceding match.
func WithPriorAnswer(answer graql.ConceptMap) WriteExecutorOption {
	return func(w *WriteExecutor) {
		w.prior = answer
	}
}

// WriteExecutor orders the executors of one batch of properties and runs them.
// It is single use and not safe for concurrent use.
type WriteExecutor struct {
	tx     storage.ConceptTx
	mode   Mode
	logger logger.Logger
	prior  graql.ConceptMap

	concepts       map[graql.Variable]*concept.Concept
	builders       map[graql.Variable]*ConceptBuilder
	equivalentVars *partition.Partition[graql.Variable]

	properties   []*VarAndProperty
	dependencies [][]int
}

// NewWriteExecutor builds the dependency graph of properties. Nothing is executed
// until Execute is called.
func NewWriteExecutor(tx storage.ConceptTx, mode Mode, properties []*VarAndProperty, opts ...WriteExecutorOption) *WriteExecutor {
	w := &WriteExecutor{
		tx:             tx,
		mode:           mode,
		logger:         logger.NewNoopLogger(),
		concepts:       make(map[graql.Variable]*concept.Concept),
		builders:       make(map[graql.Variable]*ConceptBuilder),
		equivalentVars: partition.New[graql.Variable](),
		properties:     properties,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.dependencies = buildDependencies(properties, w.equivalentVars)

	for _, v := range w.prior.Vars() {
		c, _ := w.prior.Get(v)
		w.concepts[w.equivalentVars.ComponentOf(v)] = c
	}

	return w
}

// Execute runs every executor in dependency order, builds the concepts left in
// builders and returns the concepts bound to user defined variables.
func (w *WriteExecutor) Execute(ctx context.Context) (graql.ConceptMap, error) {
	ctx, span := tracer.Start(ctx, "WriteExecutor.Execute", trace.WithAttributes(
		attribute.String("mode", w.mode.String()),
		attribute.Int("properties", len(w.properties)),
	))
	defer span.End()

	start := time.Now()
	answer, err := w.execute(ctx)

	outcome := "success"
	if err != nil {
		outcome = "error"
		telemetry.TraceError(span, err)
	}
	propertiesCounter.WithLabelValues(w.mode.String()).Add(float64(len(w.properties)))
	executionDurationHistogram.WithLabelValues(w.mode.String(), outcome).Observe(float64(time.Since(start).Milliseconds()))

	return answer, err
}

func (w *WriteExecutor) execute(ctx context.Context) (graql.ConceptMap, error) {
	order, err := w.sortProperties()
	if err != nil {
		return graql.ConceptMap{}, err
	}

	for _, i := range order {
		vp := w.properties[i]
		w.logger.DebugWithContext(ctx, "executing property",
			zap.String("mode", w.mode.String()),
			zap.Int("index", i),
			zap.String("property", vp.String()),
		)
		if err := vp.Executor.Execute(ctx, w); err != nil {
			return graql.ConceptMap{}, err
		}
	}

	leftover := make([]graql.Variable, 0, len(w.builders))
	for v := range w.builders {
		leftover = append(leftover, v)
	}
	slices.SortFunc(leftover, graql.CompareVars)

	for _, v := range leftover {
		w.logger.DebugWithContext(ctx, "building leftover concept", zap.String("var", v.String()))
		c, err := w.builders[v].Build(ctx)
		if err != nil {
			return graql.ConceptMap{}, err
		}
		delete(w.builders, v)
		w.concepts[v] = c
	}

	all := make(map[graql.Variable]*concept.Concept, len(w.concepts))
	for v, c := range w.concepts {
		all[v] = c
	}
	for _, v := range w.equivalentVars.Nodes() {
		if c, ok := w.concepts[w.equivalentVars.ComponentOf(v)]; ok {
			all[v] = c
		}
	}

	answer := make(map[graql.Variable]*concept.Concept, len(all))
	for v, c := range all {
		if v.IsUserDefined() {
			answer[v] = c
		}
	}

	return graql.NewConceptMap(answer), nil
}

// sortProperties orders the nodes with Kahn's algorithm. Ready nodes are taken in
// index order.
func (w *WriteExecutor) sortProperties() ([]int, error) {
	n := len(w.properties)
	inDegree := make([]int, n)
	dependents := make([][]int, n)
	for i, deps := range w.dependencies {
		inDegree[i] = len(deps)
		for _, d := range deps {
			dependents[d] = append(dependents[d], i)
		}
	}

	queue := make([]int, 0, n)
	for i := range n {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, d := range dependents[i] {
			inDegree[d]--
			if inDegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(order) < n {
		for i := range n {
			if inDegree[i] > 0 {
				v := w.properties[i].Var
				w.logger.Debug("unresolved properties", zap.Int("remaining", n-len(order)), zap.String("var", v.String()))
				return nil, &CyclicDependencyError{Var: v, Statement: w.describe(v), Cycle: w.cycleVars(inDegree)}
			}
		}
	}

	return order, nil
}

// Get returns the concept bound to v, building it now if it only has a builder.
func (w *WriteExecutor) Get(ctx context.Context, v graql.Variable) (*concept.Concept, error) {
	v = w.equivalentVars.ComponentOf(v)
	if c, ok := w.concepts[v]; ok {
		return c, nil
	}

	b, ok := w.builders[v]
	if !ok {
		return nil, &UndefinedVariableError{Var: v, Statement: w.describe(v)}
	}

	c, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}
	delete(w.builders, v)
	w.concepts[v] = c
	return c, nil
}

// Builder returns the builder of v, creating it if needed. It fails if v is
// already bound to a concept.
func (w *WriteExecutor) Builder(v graql.Variable) (*ConceptBuilder, error) {
	b, ok := w.TryBuilder(v)
	if !ok {
		rep := w.equivalentVars.ComponentOf(v)
		return nil, &ConceptAlreadyExistsError{Var: v, Statement: w.describe(v), Concept: w.concepts[rep]}
	}
	return b, nil
}

// TryBuilder is Builder returning false instead of failing when v is already bound.
func (w *WriteExecutor) TryBuilder(v graql.Variable) (*ConceptBuilder, bool) {
	v = w.equivalentVars.ComponentOf(v)
	if _, ok := w.concepts[v]; ok {
		return nil, false
	}

	b, ok := w.builders[v]
	if !ok {
		b = NewConceptBuilder(w.tx, v, func() string { return w.describe(v) }, w.mode == ModeDefine)
		w.builders[v] = b
	}
	return b, true
}

// Tx returns the transaction the executor writes to.
func (w *WriteExecutor) Tx() storage.ConceptTx {
	return w.tx
}

// Mode returns the mode the executor runs in.
func (w *WriteExecutor) Mode() Mode {
	return w.mode
}

// describe renders every property attached to v or to a variable equivalent to it.
func (w *WriteExecutor) describe(v graql.Variable) string {
	rep := w.equivalentVars.ComponentOf(v)

	var parts []string
	seen := make(map[string]struct{})
	for _, vp := range w.properties {
		if w.equivalentVars.ComponentOf(vp.Var) != rep {
			continue
		}
		s := vp.Property.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		parts = append(parts, s)
	}

	if len(parts) == 0 {
		return v.String()
	}
	return v.String() + " " + strings.Join(parts, ", ") + ";"
}

// Order returns the indices of the properties in the order Execute would run them.
func (w *WriteExecutor) Order() ([]int, error) {
	return w.sortProperties()
}

// Dependencies returns the indices of the properties node i depends on.
func (w *WriteExecutor) Dependencies(i int) []int {
	return slices.Clone(w.dependencies[i])
}

// Properties returns the nodes of the dependency graph.
func (w *WriteExecutor) Properties() []*VarAndProperty {
	return slices.Clone(w.properties)
}

// Equivalent reports whether a and b were merged into one component.
func (w *WriteExecutor) Equivalent(a, b graql.Variable) bool {
	return w.equivalentVars.SameComponent(a, b)
}

func (w *WriteExecutor) String() string {
	var sb strings.Builder
	for i, vp := range w.properties {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(vp.String())
		if deps := w.dependencies[i]; len(deps) > 0 {
			sb.WriteString(fmt.Sprintf(" <- %v", deps))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
