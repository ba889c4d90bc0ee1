package concept

import (
	"slices"
	"sort"
)

// Graph holds the concept prerequisite DAG with precomputed indices.
// Prerequisite cycles are a data-quality concern, not an engine error:
// the topological order covers the acyclic portion and cyclic members
// are appended in lexical order so every query stays total.
type Graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	dependents map[string][]string
	topoOrder  []Concept
	topoIndex  map[string]int
}

// NewGraph constructs a graph from a slice of concepts.
// It builds all indices including topological order (Kahn's algorithm).
func NewGraph(concepts []Concept) *Graph {
	g := &Graph{
		concepts:   slices.Clone(concepts),
		byID:       make(map[string]*Concept, len(concepts)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(concepts)),
	}

	for i := range g.concepts {
		g.byID[g.concepts[i].ID] = &g.concepts[i]
	}

	// Reverse edges. Prerequisites outside the graph are ignored.
	for i := range g.concepts {
		for _, preID := range g.concepts[i].Prerequisites {
			if _, ok := g.byID[preID]; ok {
				g.dependents[preID] = append(g.dependents[preID], g.concepts[i].ID)
			}
		}
	}

	// Kahn's algorithm with sorted queues for deterministic ordering.
	inDegree := make(map[string]int, len(g.concepts))
	for i := range g.concepts {
		n := 0
		for _, preID := range g.concepts[i].Prerequisites {
			if _, ok := g.byID[preID]; ok {
				n++
			}
		}
		inDegree[g.concepts[i].ID] = n
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	seen := make(map[string]bool, len(g.concepts))
	var topo []Concept
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		seen[id] = true
		topo = append(topo, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	// Members of cycles never reach in-degree zero; append them so the
	// order remains a total permutation of the input.
	var cyclic []string
	for i := range g.concepts {
		if !seen[g.concepts[i].ID] {
			cyclic = append(cyclic, g.concepts[i].ID)
		}
	}
	sort.Strings(cyclic)
	for _, id := range cyclic {
		topo = append(topo, *g.byID[id])
	}

	g.topoOrder = topo
	for i, c := range g.topoOrder {
		g.topoIndex[c.ID] = i
	}

	return g
}

// Get returns a concept by ID.
func (g *Graph) Get(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// All returns all concepts in topological order.
func (g *Graph) All() []Concept {
	return slices.Clone(g.topoOrder)
}

// Len returns the number of concepts in the graph.
func (g *Graph) Len() int {
	return len(g.concepts)
}

// Prerequisites returns the direct prerequisite concepts of id, in the
// order the author declared them. Unknown prerequisites are skipped.
func (g *Graph) Prerequisites(id string) []Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Concept, 0, len(c.Prerequisites))
	for _, preID := range c.Prerequisites {
		if p, ok := g.byID[preID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns concepts that directly depend on id, in
// topological order.
func (g *Graph) Dependents(id string) []Concept {
	depIDs := g.dependents[id]
	result := make([]Concept, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return g.topoIndex[result[i].ID] < g.topoIndex[result[j].ID]
	})
	return result
}

// IsUnlocked returns true if every prerequisite of id is in the known set.
func (g *Graph) IsUnlocked(id string, known map[string]bool) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, preID := range c.Prerequisites {
		if !known[preID] {
			return false
		}
	}
	return true
}

// Available returns concepts that are unlocked but not yet known,
// in topological order.
func (g *Graph) Available(known map[string]bool) []Concept {
	var result []Concept
	for _, c := range g.topoOrder {
		if !known[c.ID] && g.IsUnlocked(c.ID, known) {
			result = append(result, c)
		}
	}
	return result
}
