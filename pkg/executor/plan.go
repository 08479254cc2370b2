package executor

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/typedb/typedb-sub018/pkg/graql"
)

type planNode struct {
	graph.Node
	attrs []encoding.Attribute
}

var _ encoding.Attributer = (*planNode)(nil)

func (n *planNode) Attributes() []encoding.Attribute {
	return n.attrs
}

type planGraph struct {
	*simple.DirectedGraph
}

var _ dot.Attributers = (*planGraph)(nil)

func (g *planGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return g, nil, nil
}

func (g *planGraph) Attributes() []encoding.Attribute {
	// dependencies point from producer to consumer
	return []encoding.Attribute{{Key: "rankdir", Value: "LR"}}
}

// dependencyGraph returns the graph of the nodes selected by keep, with an edge
// from each node to every node depending on it. Self dependencies are reported
// separately since the graph cannot hold them.
func (w *WriteExecutor) dependencyGraph(keep func(i int) bool) (*planGraph, []int) {
	g := &planGraph{simple.NewDirectedGraph()}
	var selfLoops []int

	for i, vp := range w.properties {
		if !keep(i) {
			continue
		}
		attrs := []encoding.Attribute{{Key: "label", Value: vp.String()}}
		if slices.Contains(w.dependencies[i], i) {
			selfLoops = append(selfLoops, i)
			attrs = append(attrs, encoding.Attribute{Key: "color", Value: "red"})
		}
		g.AddNode(&planNode{Node: simple.Node(int64(i)), attrs: attrs})
	}

	for i, deps := range w.dependencies {
		if !keep(i) {
			continue
		}
		for _, d := range deps {
			if d == i || !keep(d) {
				continue
			}
			g.SetEdge(g.NewEdge(g.Node(int64(d)), g.Node(int64(i))))
		}
	}

	return g, selfLoops
}

// DOT renders the dependency graph in Graphviz format. The output is stable and
// intended for debugging.
func (w *WriteExecutor) DOT() string {
	g, _ := w.dependencyGraph(func(int) bool { return true })
	out, err := dot.Marshal(g, "dependencies", "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}

// cycleVars returns the sorted variables of one cycle among the nodes left with a
// positive in-degree once sorting stalled.
func (w *WriteExecutor) cycleVars(inDegree []int) []graql.Variable {
	g, selfLoops := w.dependencyGraph(func(i int) bool { return inDegree[i] > 0 })

	var cycle []int
	if len(selfLoops) > 0 {
		cycle = selfLoops[:1]
	} else {
		// the component holding the lowest index, for stable reports
		for _, component := range topo.TarjanSCC(g) {
			if len(component) < 2 {
				continue
			}
			ids := make([]int, 0, len(component))
			for _, n := range component {
				ids = append(ids, int(n.ID()))
			}
			slices.Sort(ids)
			if cycle == nil || ids[0] < cycle[0] {
				cycle = ids
			}
		}
	}

	vars := make([]graql.Variable, 0, len(cycle))
	for _, i := range cycle {
		vars = append(vars, w.properties[i].Var)
	}
	slices.SortFunc(vars, graql.CompareVars)
	return slices.Compact(vars)
}
