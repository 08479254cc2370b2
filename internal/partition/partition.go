// Package partition provides a disjoint-set (union-find) structure over comparable values.
package partition

// Partition groups values into disjoint components. Values are interned into an arena
// and identified by their index, so merging never mutates the values themselves.
//
// A zero value Partition is ready to use. Partition is not safe for concurrent use.
type Partition[T comparable] struct {
	index  map[T]int
	nodes  []T
	parent []int
	rank   []uint8
}

// New returns a Partition in which each of the given values is its own component.
func New[T comparable](values ...T) *Partition[T] {
	p := &Partition[T]{}
	for _, v := range values {
		p.Add(v)
	}
	return p
}

// Add registers v as a singleton component. It is a no-op if v is already known.
func (p *Partition[T]) Add(v T) {
	p.add(v)
}

func (p *Partition[T]) add(v T) int {
	if p.index == nil {
		p.index = make(map[T]int)
	}
	if i, ok := p.index[v]; ok {
		return i
	}

	i := len(p.nodes)
	p.index[v] = i
	p.nodes = append(p.nodes, v)
	p.parent = append(p.parent, i)
	p.rank = append(p.rank, 0)
	return i
}

// Merge joins the components of a and b, adding either value if it is unknown.
// It returns the representative of the merged component.
func (p *Partition[T]) Merge(a, b T) T {
	ra := p.find(p.add(a))
	rb := p.find(p.add(b))
	if ra == rb {
		return p.nodes[ra]
	}

	// union by rank, ties keep the first argument as the representative
	switch {
	case p.rank[ra] < p.rank[rb]:
		ra, rb = rb, ra
	case p.rank[ra] == p.rank[rb]:
		p.rank[ra]++
	}
	p.parent[rb] = ra
	return p.nodes[ra]
}

// ComponentOf returns the representative of the component containing v.
// Unknown values are their own representative.
func (p *Partition[T]) ComponentOf(v T) T {
	i, ok := p.index[v]
	if !ok {
		return v
	}
	return p.nodes[p.find(i)]
}

// SameComponent reports whether a and b belong to the same component.
func (p *Partition[T]) SameComponent(a, b T) bool {
	return p.ComponentOf(a) == p.ComponentOf(b)
}

// Nodes returns every known value in the order it was first added.
func (p *Partition[T]) Nodes() []T {
	out := make([]T, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Components returns the members of every component, keyed by representative.
// Members are listed in insertion order.
func (p *Partition[T]) Components() map[T][]T {
	out := make(map[T][]T)
	for i, v := range p.nodes {
		root := p.nodes[p.find(i)]
		out[root] = append(out[root], v)
	}
	return out
}

// Len returns the number of known values.
func (p *Partition[T]) Len() int {
	return len(p.nodes)
}

// find returns the root index of i, compressing the path on the way.
func (p *Partition[T]) find(i int) int {
	root := i
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for p.parent[i] != root {
		next := p.parent[i]
		p.parent[i] = root
		i = next
	}
	return root
}
