package path

import (
	"context"
	"time"

	"github.com/avalder/pathwise/internal/content"
	"github.com/avalder/pathwise/internal/difficulty"
	"github.com/avalder/pathwise/internal/srs"
)

// Recommendation is one ranked content suggestion. Recommendations and
// due-review nodes are computed on demand and never persisted; the
// stored path only ever reflects the core curriculum sequence.
type Recommendation struct {
	Item               content.Item `json:"item"`
	AdjustedDifficulty float64      `json:"adjusted_difficulty"`
}

// UnlockMasteryLevel is the mastery level at which a concept counts as
// known for prerequisite gating.
const UnlockMasteryLevel = 60

// Recommendations ranks a candidate pool ascending by personalized
// difficulty (ties keep pool order). A nil pool ranks the subject's
// whole content pool, gated to items the learner can study now: content
// is held back until each required concept is known or unlocked by the
// prerequisite graph.
func (m *Manager) Recommendations(ctx context.Context, userID, subjectID string, pool []content.Item) ([]Recommendation, error) {
	if pool == nil {
		items, err := m.source.ListForSubject(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		pool, err = m.availableItems(ctx, userID, items)
		if err != nil {
			return nil, err
		}
	}

	levels, err := m.levelsFor(ctx, userID, pool)
	if err != nil {
		return nil, err
	}

	candidates := make([]difficulty.Candidate, len(pool))
	for i, item := range pool {
		base := float64(DefaultBaseDifficulty)
		if item.BaseDifficulty != nil {
			base = float64(*item.BaseDifficulty)
		}
		candidates[i] = difficulty.Candidate{
			ContentID:        item.ContentID,
			BaseDifficulty:   base,
			RequiredConcepts: item.RequiredConcepts,
		}
	}

	ranked := difficulty.Rank(candidates, levels)
	byID := make(map[string]content.Item, len(pool))
	for _, item := range pool {
		byID[item.ContentID] = item
	}

	recs := make([]Recommendation, len(ranked))
	for i, r := range ranked {
		recs[i] = Recommendation{Item: byID[r.ContentID], AdjustedDifficulty: r.AdjustedDifficulty}
	}
	return recs, nil
}

// DueReviewNodes synthesizes ephemeral review nodes for the subject's
// content covering concepts that are due, ranked by personalized
// difficulty. The returned nodes are views; they are never stored.
func (m *Manager) DueReviewNodes(ctx context.Context, userID, subjectID string, now time.Time) ([]Node, error) {
	due, err := m.sched.DueReviews(ctx, userID, now, srs.DueOpts{})
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, nil
	}

	dueAt := make(map[string]time.Time, len(due))
	for _, d := range due {
		dueAt[d.ConceptID] = d.NextReviewAt
	}

	pool, err := m.source.ListForSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	var covering []content.Item
	for _, item := range pool {
		for _, c := range item.RequiredConcepts {
			if _, ok := dueAt[c]; ok {
				covering = append(covering, item)
				break
			}
		}
	}
	covering, err = m.availableItems(ctx, userID, covering)
	if err != nil {
		return nil, err
	}
	if len(covering) == 0 {
		return nil, nil
	}

	recs, err := m.Recommendations(ctx, userID, subjectID, covering)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, len(recs))
	for i, rec := range recs {
		item := rec.Item
		node := Node{
			ContentID:        item.ContentID,
			Title:            item.Title,
			Type:             NodeReview,
			RequiredConcepts: item.RequiredConcepts,
			EstimatedMinutes: item.EstimatedMinutes,
			BaseDifficulty:   DefaultBaseDifficulty,
		}
		if item.BaseDifficulty != nil {
			node.BaseDifficulty = *item.BaseDifficulty
		}
		// Most overdue required concept decides the node's marker.
		for _, c := range item.RequiredConcepts {
			if at, ok := dueAt[c]; ok {
				if node.NextReviewAt == nil || at.Before(*node.NextReviewAt) {
					t := at
					node.NextReviewAt = &t
				}
			}
		}
		nodes[i] = node
	}
	return nodes, nil
}

// levelsFor resolves mastery levels for every concept referenced by the
// pool, missing records counting as level 0.
func (m *Manager) levelsFor(ctx context.Context, userID string, pool []content.Item) (map[string]int, error) {
	var ids []string
	for _, item := range pool {
		ids = append(ids, item.RequiredConcepts...)
	}
	return m.ledger.Levels(ctx, userID, ids)
}

// availableItems keeps the items whose required concepts the learner can
// study now: known at UnlockMasteryLevel or better, or unlocked in the
// prerequisite graph. Items requiring locked concepts are held back.
func (m *Manager) availableItems(ctx context.Context, userID string, pool []content.Item) ([]content.Item, error) {
	if len(pool) == 0 {
		return pool, nil
	}

	graph, err := m.source.ConceptGraph(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, c := range graph.All() {
		ids = append(ids, c.ID)
	}
	levels, err := m.ledger.Levels(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(levels))
	for id, level := range levels {
		if level >= UnlockMasteryLevel {
			known[id] = true
		}
	}
	studyable := make(map[string]bool, len(known))
	for id := range known {
		studyable[id] = true
	}
	for _, c := range graph.Available(known) {
		studyable[c.ID] = true
	}

	out := make([]content.Item, 0, len(pool))
	for _, item := range pool {
		ok := true
		for _, cid := range item.RequiredConcepts {
			if !studyable[cid] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}
