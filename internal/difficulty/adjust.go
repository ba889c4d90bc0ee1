// Package difficulty personalizes content difficulty using the
// learner's mastery of the content's prerequisite concepts.
package difficulty

import "sort"

// MasteryWeight scales how much average prerequisite mastery reduces a
// content item's base difficulty.
const MasteryWeight = 0.3

// Adjusted computes the personalized difficulty for a content item.
// Missing concepts count as mastery 0; an item with no required
// concepts keeps its base difficulty. The result is clamped to [0,100].
func Adjusted(baseDifficulty float64, requiredConcepts []string, levels map[string]int) float64 {
	avg := 0.0
	if len(requiredConcepts) > 0 {
		sum := 0
		for _, id := range requiredConcepts {
			sum += levels[id]
		}
		avg = float64(sum) / float64(len(requiredConcepts))
	}

	result := baseDifficulty - avg*MasteryWeight
	if result < 0 {
		return 0
	}
	if result > 100 {
		return 100
	}
	return result
}

// Candidate pairs an opaque item with the inputs Rank needs.
type Candidate struct {
	ContentID        string
	BaseDifficulty   float64
	RequiredConcepts []string
}

// Ranked is a candidate with its computed personalized difficulty.
type Ranked struct {
	Candidate
	AdjustedDifficulty float64
}

// Rank orders candidates ascending by personalized difficulty, ties
// broken by the stable input order.
func Rank(candidates []Candidate, levels map[string]int) []Ranked {
	ranked := make([]Ranked, len(candidates))
	for i, c := range candidates {
		ranked[i] = Ranked{
			Candidate:          c,
			AdjustedDifficulty: Adjusted(c.BaseDifficulty, c.RequiredConcepts, levels),
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdjustedDifficulty < ranked[j].AdjustedDifficulty
	})
	return ranked
}
