package executor

import (
	"slices"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/typedb/typedb-sub018/internal/partition"
	"github.com/typedb/typedb-sub018/pkg/graql"
)

// buildDependencies returns, for each node of properties, the indices of the
// nodes it depends on. A node depends on another when it requires a variable the
// other produces. Variables carrying an equal uniquely identifying property are
// merged in equivalentVars, and every member of a merged component shares the
// producers of the whole component.
func buildDependencies(properties []*VarAndProperty, equivalentVars *partition.Partition[graql.Variable]) [][]int {
	for _, vp := range properties {
		equivalentVars.Add(vp.Var)
	}

	// varToProducerExec, each set in node order
	producers := make(map[graql.Variable]*linkedhashset.Set)
	for i, vp := range properties {
		for _, v := range vp.Executor.produced {
			set, ok := producers[v]
			if !ok {
				set = linkedhashset.New()
				producers[v] = set
			}
			set.Add(i)
		}
	}

	mergeEquivalentVars(properties, equivalentVars)

	for _, members := range equivalentVars.Components() {
		if len(members) < 2 {
			continue
		}
		shared := linkedhashset.New()
		for _, m := range members {
			if set, ok := producers[m]; ok {
				shared.Add(set.Values()...)
			}
		}
		for _, m := range members {
			producers[m] = shared
		}
	}

	// compose execToRequiredVar with varToProducerExec
	dependencies := make([][]int, len(properties))
	for i, vp := range properties {
		var deps []int
		for _, v := range vp.Executor.required {
			set, ok := producers[v]
			if !ok {
				continue
			}
			for _, j := range set.Values() {
				deps = append(deps, j.(int))
			}
		}
		slices.Sort(deps)
		dependencies[i] = slices.Compact(deps)
	}

	return dependencies
}

// mergeEquivalentVars unions the subject variables of nodes whose properties
// uniquely identify a concept and render identically.
func mergeEquivalentVars(properties []*VarAndProperty, equivalentVars *partition.Partition[graql.Variable]) {
	first := make(map[string]graql.Variable)
	for _, vp := range properties {
		if !vp.UniquelyIdentifiesConcept() {
			continue
		}
		key := vp.Property.String()
		if v, ok := first[key]; ok {
			equivalentVars.Merge(v, vp.Var)
			continue
		}
		first[key] = vp.Var
	}
}
