// Package content is the boundary to the content-source collaborator:
// the catalog of already-generated videos and quizzes the engine
// schedules but never creates.
package content

import (
	"context"
	"sort"

	"github.com/avalder/pathwise/internal/concept"
	"github.com/avalder/pathwise/internal/errs"
)

// Item describes one piece of content available for a subject.
type Item struct {
	ContentID        string   `json:"content_id"`
	Title            string   `json:"title"`
	BaseDifficulty   *int     `json:"base_difficulty,omitempty"` // nil when the author set none
	EstimatedMinutes int      `json:"estimated_minutes"`
	RequiredConcepts []string `json:"required_concepts"`
}

// Source provides content lookups. Implementations must be safe for
// concurrent use.
type Source interface {
	// ListForSubject returns the content pool for a subject in the
	// author-defined curriculum order.
	ListForSubject(ctx context.Context, subjectID string) ([]Item, error)

	// GetConcept resolves a concept by ID.
	GetConcept(ctx context.Context, conceptID string) (concept.Concept, error)

	// ConceptGraph returns the full prerequisite graph. Concepts are
	// immutable at runtime, so callers may hold the result.
	ConceptGraph(ctx context.Context) (*concept.Graph, error)
}

// StaticSource is an in-memory Source backed by a fixed catalog.
// Used by tests and the CLI seed data.
type StaticSource struct {
	subjects map[string][]Item
	graph    *concept.Graph
}

// NewStatic builds a StaticSource from a subject->items catalog and a
// concept graph.
func NewStatic(subjects map[string][]Item, graph *concept.Graph) *StaticSource {
	return &StaticSource{subjects: subjects, graph: graph}
}

func (s *StaticSource) ListForSubject(_ context.Context, subjectID string) ([]Item, error) {
	items, ok := s.subjects[subjectID]
	if !ok {
		return nil, errs.NotFound("subject %q has no content", subjectID)
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *StaticSource) GetConcept(_ context.Context, conceptID string) (concept.Concept, error) {
	c, ok := s.graph.Get(conceptID)
	if !ok {
		return concept.Concept{}, errs.NotFound("concept %q not found", conceptID)
	}
	return c, nil
}

func (s *StaticSource) ConceptGraph(_ context.Context) (*concept.Graph, error) {
	return s.graph, nil
}

// Subjects returns the known subject IDs, sorted.
func (s *StaticSource) Subjects() []string {
	ids := make([]string, 0, len(s.subjects))
	for id := range s.subjects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
