package path

import (
	"context"
	"time"

	"github.com/avalder/pathwise/internal/content"
	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/mastery"
	"github.com/avalder/pathwise/internal/srs"
)

// Repo is the persistence surface the manager needs. Implemented by
// store.PathRepo.
type Repo interface {
	// Get returns the path for (userID, subjectID), or CodeNotFound.
	Get(ctx context.Context, userID, subjectID string) (*LearningPath, error)

	// Create inserts a new path. Returns CodeAlreadyExists if one exists
	// for the pair. On success p.Version holds the stored version token.
	Create(ctx context.Context, p *LearningPath) error

	// Update writes p guarded by its Version. Returns CodeConflict if
	// the stored version moved, with nothing written.
	Update(ctx context.Context, p *LearningPath) error
}

// Scheduler is the slice of the review scheduler the manager uses:
// forwarding score-derived outcomes and discovering due reviews.
// Satisfied by *srs.Scheduler.
type Scheduler interface {
	RecordScoredOutcome(ctx context.Context, userID, conceptID string, score int, now time.Time) (*mastery.Record, error)
	DueReviews(ctx context.Context, userID string, now time.Time, opts srs.DueOpts) ([]srs.DueConcept, error)
}

// Manager owns learning-path lifecycle and the on-demand review and
// recommendation views derived from it.
type Manager struct {
	repo   Repo
	source content.Source
	sched  Scheduler
	ledger *mastery.Ledger

	// Strict makes re-completing a node an error instead of an
	// idempotent no-op.
	Strict bool
}

// NewManager creates a Manager.
func NewManager(repo Repo, source content.Source, sched Scheduler, ledger *mastery.Ledger) *Manager {
	return &Manager{repo: repo, source: source, sched: sched, ledger: ledger}
}

// Get returns the path for (userID, subjectID), or CodeNotFound.
func (m *Manager) Get(ctx context.Context, userID, subjectID string) (*LearningPath, error) {
	return m.repo.Get(ctx, userID, subjectID)
}

// GeneratePath returns the existing path for (userID, subjectID) or
// builds one from the subject's content pool. An existing path is
// returned unchanged; regeneration is an explicit external action, not
// something the engine does on its own.
func (m *Manager) GeneratePath(ctx context.Context, userID, subjectID string, now time.Time) (*LearningPath, error) {
	existing, err := m.repo.Get(ctx, userID, subjectID)
	if err == nil {
		return existing, nil
	}
	if !errs.Is(err, errs.CodeNotFound) {
		return nil, err
	}

	items, err := m.source.ListForSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	p := &LearningPath{
		UserID:      userID,
		SubjectID:   subjectID,
		Nodes:       make([]Node, 0, len(items)),
		LastUpdated: now,
	}
	for _, item := range items {
		base := DefaultBaseDifficulty
		if item.BaseDifficulty != nil {
			base = *item.BaseDifficulty
		}
		p.Nodes = append(p.Nodes, Node{
			ContentID:        item.ContentID,
			Title:            item.Title,
			Type:             NodeCore,
			RequiredConcepts: item.RequiredConcepts,
			EstimatedMinutes: item.EstimatedMinutes,
			BaseDifficulty:   base,
		})
	}

	if err := m.repo.Create(ctx, p); err != nil {
		if errs.Is(err, errs.CodeAlreadyExists) {
			// Lost the create race; the winner's path is the path.
			return m.repo.Get(ctx, userID, subjectID)
		}
		return nil, err
	}
	return p, nil
}

// CompleteNode marks a node completed, optionally recording its score,
// and advances the current-node pointer. The pointer is monotonic:
// completing an earlier node out of order never regresses it. Completing
// a review node with a score forwards a score-derived outcome to the
// review scheduler for the node's first required concept.
func (m *Manager) CompleteNode(ctx context.Context, userID, subjectID string, nodeIndex int, score *int, now time.Time) (*LearningPath, error) {
	if score != nil && (*score < 0 || *score > 100) {
		return nil, errs.Invalid("score %d outside 0-100", *score)
	}

	p, err := m.repo.Get(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	if nodeIndex < 0 || nodeIndex >= len(p.Nodes) {
		return nil, errs.Invalid("node index %d out of range [0,%d)", nodeIndex, len(p.Nodes))
	}

	node := &p.Nodes[nodeIndex]
	if node.Completed && m.Strict {
		return nil, errs.AlreadyExists("node %d already completed", nodeIndex)
	}

	node.Completed = true
	if score != nil {
		node.Score = score
	}
	if p.CurrentNodeIndex < nodeIndex+1 {
		p.CurrentNodeIndex = nodeIndex + 1
	}

	forward := node.Type == NodeReview && score != nil && len(node.RequiredConcepts) > 0
	if forward {
		// The node's own next-review marker mirrors what the scheduler
		// will compute from the same score and now.
		next := now.Add(srs.ScoredInterval(*score))
		node.NextReviewAt = &next
	}

	p.recompute()
	p.LastUpdated = now

	if err := m.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	// The path and the mastery record are independent units of
	// atomicity. The ledger write happens after the path write; a
	// failure here leaves the path completed and the caller decides
	// whether to re-drive the outcome.
	if forward {
		if _, err := m.sched.RecordScoredOutcome(ctx, userID, node.RequiredConcepts[0], *score, now); err != nil {
			return nil, err
		}
	}

	return p, nil
}
