package concept

import (
	"testing"
)

func testConcepts() []Concept {
	return []Concept{
		{ID: "vectors", Name: "Vectors", Prerequisites: []string{"algebra"}},
		{ID: "algebra", Name: "Algebra Basics"},
		{ID: "matrices", Name: "Matrices", Prerequisites: []string{"vectors", "algebra"}},
		{ID: "calculus", Name: "Calculus", Prerequisites: []string{"algebra"}},
	}
}

func TestGet_Exists(t *testing.T) {
	g := NewGraph(testConcepts())
	c, ok := g.Get("vectors")
	if !ok {
		t.Fatal("expected vectors to exist")
	}
	if c.Name != "Vectors" {
		t.Errorf("got name %q, want %q", c.Name, "Vectors")
	}
}

func TestGet_NotFound(t *testing.T) {
	g := NewGraph(testConcepts())
	if _, ok := g.Get("nonexistent"); ok {
		t.Fatal("expected missing concept to report not-ok")
	}
}

func TestTopoOrder_PrerequisitesFirst(t *testing.T) {
	g := NewGraph(testConcepts())
	pos := make(map[string]int)
	for i, c := range g.All() {
		pos[c.ID] = i
	}
	for _, c := range testConcepts() {
		for _, pre := range c.Prerequisites {
			if pos[pre] > pos[c.ID] {
				t.Errorf("prerequisite %q appears after %q in topo order", pre, c.ID)
			}
		}
	}
}

func TestTopoOrder_CycleTolerated(t *testing.T) {
	g := NewGraph([]Concept{
		{ID: "a", Prerequisites: []string{"b"}},
		{ID: "b", Prerequisites: []string{"a"}},
		{ID: "c"},
	})
	all := g.All()
	if len(all) != 3 {
		t.Fatalf("got %d concepts in order, want 3", len(all))
	}
	// Cyclic members come after the acyclic portion, lexically ordered.
	if all[0].ID != "c" || all[1].ID != "a" || all[2].ID != "b" {
		t.Errorf("got order %v, want [c a b]", []string{all[0].ID, all[1].ID, all[2].ID})
	}
}

func TestIsUnlocked(t *testing.T) {
	g := NewGraph(testConcepts())
	tests := []struct {
		id    string
		known map[string]bool
		want  bool
	}{
		{"algebra", nil, true},
		{"vectors", nil, false},
		{"vectors", map[string]bool{"algebra": true}, true},
		{"matrices", map[string]bool{"algebra": true}, false},
		{"matrices", map[string]bool{"algebra": true, "vectors": true}, true},
		{"nonexistent", map[string]bool{"algebra": true}, false},
	}
	for _, tt := range tests {
		if got := g.IsUnlocked(tt.id, tt.known); got != tt.want {
			t.Errorf("IsUnlocked(%q, %v): got %v, want %v", tt.id, tt.known, got, tt.want)
		}
	}
}

func TestAvailable(t *testing.T) {
	g := NewGraph(testConcepts())

	avail := g.Available(nil)
	if len(avail) != 1 || avail[0].ID != "algebra" {
		t.Fatalf("with nothing known, got %v, want [algebra]", avail)
	}

	avail = g.Available(map[string]bool{"algebra": true})
	ids := make([]string, len(avail))
	for i, c := range avail {
		ids[i] = c.ID
	}
	if len(ids) != 2 || ids[0] != "calculus" && ids[0] != "vectors" {
		t.Fatalf("got available %v, want calculus and vectors", ids)
	}
}

func TestDependents(t *testing.T) {
	g := NewGraph(testConcepts())
	deps := g.Dependents("algebra")
	if len(deps) != 3 {
		t.Fatalf("got %d dependents of algebra, want 3", len(deps))
	}
	// Topological order: matrices depends on vectors, so vectors first.
	pos := make(map[string]int)
	for i, c := range deps {
		pos[c.ID] = i
	}
	if pos["vectors"] > pos["matrices"] {
		t.Errorf("got dependents %v, want vectors before matrices", pos)
	}
}

func TestPrerequisites(t *testing.T) {
	g := NewGraph(testConcepts())
	pres := g.Prerequisites("matrices")
	if len(pres) != 2 || pres[0].ID != "vectors" || pres[1].ID != "algebra" {
		t.Fatalf("got prerequisites %v, want declared order [vectors algebra]", pres)
	}
	if got := g.Prerequisites("nonexistent"); got != nil {
		t.Errorf("got %v for unknown id, want nil", got)
	}
}
