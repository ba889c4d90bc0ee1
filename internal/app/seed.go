package app

import (
	"github.com/avalder/pathwise/internal/concept"
	"github.com/avalder/pathwise/internal/content"
)

// seedSource returns the built-in demo catalog used when no catalog
// file is configured. Two small subjects, enough to exercise every
// path and review flow end to end.
func seedSource() *content.StaticSource {
	graph := concept.NewGraph([]concept.Concept{
		{ID: "timeline-basics", Name: "Timeline Basics", Description: "Importing footage and navigating the editing timeline."},
		{ID: "cuts-trims", Name: "Cuts & Trims", Description: "Rough cuts, trimming, and ripple edits.", Prerequisites: []string{"timeline-basics"}},
		{ID: "transitions", Name: "Transitions", Description: "Cross-dissolves, wipes, and when to cut instead.", Prerequisites: []string{"cuts-trims"}},
		{ID: "color-grading", Name: "Color Grading", Description: "Correction first, then the grade; reading scopes.", Prerequisites: []string{"cuts-trims"}},

		{ID: "variables", Name: "Variables & Types", Description: "Declaring variables and basic types."},
		{ID: "control-flow", Name: "Control Flow", Description: "Conditionals and loops.", Prerequisites: []string{"variables"}},
		{ID: "functions", Name: "Functions", Description: "Defining and calling functions.", Prerequisites: []string{"control-flow"}},
	})

	easy, medium, hard := 20, 50, 75

	subjects := map[string][]content.Item{
		"video-editing": {
			{ContentID: "vid-timeline-tour", Title: "A Tour of the Timeline", BaseDifficulty: &easy, EstimatedMinutes: 8, RequiredConcepts: []string{"timeline-basics"}},
			{ContentID: "vid-rough-cut", Title: "Your First Rough Cut", BaseDifficulty: &medium, EstimatedMinutes: 12, RequiredConcepts: []string{"cuts-trims"}},
			{ContentID: "quiz-cuts", Title: "Cutting Techniques Check", BaseDifficulty: &medium, EstimatedMinutes: 5, RequiredConcepts: []string{"cuts-trims"}},
			{ContentID: "vid-transitions", Title: "Transitions That Work", BaseDifficulty: &hard, EstimatedMinutes: 15, RequiredConcepts: []string{"transitions"}},
			{ContentID: "quiz-transitions", Title: "Transitions Quiz", BaseDifficulty: &hard, EstimatedMinutes: 6, RequiredConcepts: []string{"transitions"}},
			{ContentID: "vid-color-grade", Title: "Intro to Color Grading", EstimatedMinutes: 10, RequiredConcepts: []string{"color-grading"}},
		},
		"programming": {
			{ContentID: "vid-variables", Title: "Variables and Types", BaseDifficulty: &easy, EstimatedMinutes: 9, RequiredConcepts: []string{"variables"}},
			{ContentID: "vid-control-flow", Title: "If, For, and Switch", BaseDifficulty: &medium, EstimatedMinutes: 11, RequiredConcepts: []string{"control-flow"}},
			{ContentID: "quiz-control-flow", Title: "Control Flow Quiz", BaseDifficulty: &medium, EstimatedMinutes: 4, RequiredConcepts: []string{"control-flow"}},
			{ContentID: "vid-functions", Title: "Writing Functions", BaseDifficulty: &hard, EstimatedMinutes: 14, RequiredConcepts: []string{"functions"}},
		},
	}

	return content.NewStatic(subjects, graph)
}
