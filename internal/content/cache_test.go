package content

import (
	"context"
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/concept"
	"github.com/avalder/pathwise/internal/errs"
)

// countingSource counts calls through to a StaticSource.
type countingSource struct {
	inner        Source
	listCalls    int
	conceptCalls int
}

func (c *countingSource) ListForSubject(ctx context.Context, subjectID string) ([]Item, error) {
	c.listCalls++
	return c.inner.ListForSubject(ctx, subjectID)
}

func (c *countingSource) GetConcept(ctx context.Context, conceptID string) (concept.Concept, error) {
	c.conceptCalls++
	return c.inner.GetConcept(ctx, conceptID)
}

func (c *countingSource) ConceptGraph(ctx context.Context) (*concept.Graph, error) {
	return c.inner.ConceptGraph(ctx)
}

func newTestSource() *countingSource {
	graph := concept.NewGraph([]concept.Concept{
		{ID: "algebra", Name: "Algebra Basics"},
	})
	static := NewStatic(map[string][]Item{
		"linear-algebra": {
			{ContentID: "vid-1", Title: "Intro", EstimatedMinutes: 10},
			{ContentID: "vid-2", Title: "Vectors", EstimatedMinutes: 12, RequiredConcepts: []string{"algebra"}},
		},
	}, graph)
	return &countingSource{inner: static}
}

func TestCachedSource_ListReadThrough(t *testing.T) {
	src := newTestSource()
	cached := NewCached(src, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		items, err := cached.ListForSubject(ctx, "linear-algebra")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("got %d items, want 2", len(items))
		}
	}
	if src.listCalls != 1 {
		t.Errorf("got %d upstream list calls, want 1", src.listCalls)
	}
}

func TestCachedSource_ConceptCachedForever(t *testing.T) {
	src := newTestSource()
	cached := NewCached(src, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := cached.GetConcept(ctx, "algebra"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if src.conceptCalls != 1 {
		t.Errorf("got %d upstream concept calls, want 1", src.conceptCalls)
	}
}

func TestCachedSource_ErrorsNotCached(t *testing.T) {
	src := newTestSource()
	cached := NewCached(src, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := cached.ListForSubject(ctx, "unknown")
		if !errs.Is(err, errs.CodeNotFound) {
			t.Fatalf("got %v, want NOT_FOUND", err)
		}
	}
	if src.listCalls != 2 {
		t.Errorf("got %d upstream list calls, want 2 (errors must not be cached)", src.listCalls)
	}
}

func TestCachedSource_Invalidate(t *testing.T) {
	src := newTestSource()
	cached := NewCached(src, time.Minute)
	ctx := context.Background()

	if _, err := cached.ListForSubject(ctx, "linear-algebra"); err != nil {
		t.Fatal(err)
	}
	cached.Invalidate("linear-algebra")
	if _, err := cached.ListForSubject(ctx, "linear-algebra"); err != nil {
		t.Fatal(err)
	}
	if src.listCalls != 2 {
		t.Errorf("got %d upstream list calls, want 2 after invalidation", src.listCalls)
	}
}
