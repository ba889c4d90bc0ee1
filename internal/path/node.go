// Package path owns the ordered learning-path sequence per
// (user, subject): building it from available content, advancing the
// current-node pointer on completion, and recomputing aggregates.
package path

import "time"

// NodeType classifies a path node's role in the curriculum.
type NodeType string

const (
	NodeCore      NodeType = "core"
	NodePractice  NodeType = "practice"
	NodeReview    NodeType = "review"
	NodeChallenge NodeType = "challenge"
)

// DefaultBaseDifficulty is the neutral midpoint used when the content
// source supplies no difficulty for an item.
const DefaultBaseDifficulty = 50

// Node is one step in a learning path. Nodes are never reordered after
// creation; the index is the ordering key.
type Node struct {
	ContentID        string     `json:"content_id"`
	Title            string     `json:"title,omitempty"`
	Type             NodeType   `json:"type"`
	RequiredConcepts []string   `json:"required_concepts,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	BaseDifficulty   int        `json:"base_difficulty"`
	Completed        bool       `json:"completed"`
	Score            *int       `json:"score,omitempty"`
	NextReviewAt     *time.Time `json:"next_review_at,omitempty"` // review nodes only
}

// State is a path's lifecycle position. There is no way back to
// StateBuilding once nodes exist.
type State string

const (
	StateBuilding State = "building"
	StateActive   State = "active"
	StateComplete State = "complete"
)

// LearningPath is the persisted curriculum sequence for one
// (user, subject) pair. Structure is immutable once created; only node
// completion state and the pointer change.
type LearningPath struct {
	UserID           string    `json:"user_id"`
	SubjectID        string    `json:"subject_id"`
	Nodes            []Node    `json:"nodes"`
	CurrentNodeIndex int       `json:"current_node_index"`
	CompletionRate   float64   `json:"completion_rate"`
	AverageScore     float64   `json:"average_score"`
	LastUpdated      time.Time `json:"last_updated"`

	// Version is the optimistic-concurrency token managed by the store.
	Version int64 `json:"-"`
}

// State derives the lifecycle state from the node list and pointer.
func (p *LearningPath) State() State {
	switch {
	case len(p.Nodes) == 0:
		return StateBuilding
	case p.CurrentNodeIndex >= len(p.Nodes):
		return StateComplete
	default:
		return StateActive
	}
}

// recompute refreshes the derived aggregates from node state.
func (p *LearningPath) recompute() {
	if len(p.Nodes) == 0 {
		p.CompletionRate = 0
		p.AverageScore = 0
		return
	}

	completed := 0
	scoreSum := 0
	scored := 0
	for i := range p.Nodes {
		if p.Nodes[i].Completed {
			completed++
		}
		if p.Nodes[i].Score != nil {
			scoreSum += *p.Nodes[i].Score
			scored++
		}
	}

	p.CompletionRate = float64(completed) / float64(len(p.Nodes))
	if scored == 0 {
		p.AverageScore = 0
	} else {
		p.AverageScore = float64(scoreSum) / float64(scored)
	}
}

// CompletedCount returns how many nodes are completed.
func (p *LearningPath) CompletedCount() int {
	n := 0
	for i := range p.Nodes {
		if p.Nodes[i].Completed {
			n++
		}
	}
	return n
}

// EstimatedMinutesRemaining sums the duration of uncompleted nodes.
func (p *LearningPath) EstimatedMinutesRemaining() int {
	total := 0
	for i := range p.Nodes {
		if !p.Nodes[i].Completed {
			total += p.Nodes[i].EstimatedMinutes
		}
	}
	return total
}
