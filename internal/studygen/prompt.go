package studygen

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are a tutor writing short multiple-choice quizzes for a video learning app. Questions must test understanding of one specific concept, not trivia around it.`

func buildQuizUserMessage(input QuizInput, numQuestions int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept: %s\n", input.Concept.Name))
	if input.Concept.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", input.Concept.Description))
	}
	if len(input.Concept.Prerequisites) > 0 {
		b.WriteString(fmt.Sprintf("Prerequisites the learner has seen: %s\n", strings.Join(input.Concept.Prerequisites, ", ")))
	}
	b.WriteString(fmt.Sprintf("Learner's mastery level: %d/100\n", input.MasteryLevel))

	b.WriteString(fmt.Sprintf(`
Instructions:
Write %d multiple-choice questions:
1. Each question has exactly four options and one correct answer.
2. Match the difficulty to the mastery level: below 40 ask about definitions and recognition, 40-70 about application, above 70 about edge cases and combinations.
3. Wrong options must be plausible mistakes, not jokes.
4. Give a 1-2 sentence explanation for each correct answer.
5. Use plain ASCII text. No LaTeX, no Unicode symbols.`, numQuestions))

	return b.String()
}

const summarySystemPrompt = `You are a tutor writing a short refresher shown right before a learner reviews a concept they studied earlier.`

func buildSummaryUserMessage(input SummaryInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept: %s\n", input.Concept.Name))
	if input.Concept.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", input.Concept.Description))
	}
	b.WriteString(fmt.Sprintf("Learner's mastery level: %d/100\n", input.MasteryLevel))
	if input.LastRating != "" {
		b.WriteString(fmt.Sprintf("Last self-reported review rating: %s\n", input.LastRating))
	}

	b.WriteString(`
Instructions:
1. Summarize the concept in 3-5 sentences. Assume the learner has seen it before and needs their memory jogged, not a first lesson.
2. List 2-4 key points worth remembering, one sentence each.
3. If the last rating was "hard", lead with the part learners most often forget.`)

	return b.String()
}

const readingSystemPrompt = `You are a tutor suggesting what to study next after a learner finishes working on a concept.`

func buildReadingUserMessage(input SummaryInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept just studied: %s\n", input.Concept.Name))
	if input.Concept.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", input.Concept.Description))
	}
	b.WriteString(fmt.Sprintf("Learner's mastery level: %d/100\n", input.MasteryLevel))

	b.WriteString(`
Instructions:
Suggest 2-4 follow-up topics or angles to study:
1. Below mastery 50, suggest reinforcement of the same concept from a different angle.
2. At 50 or above, suggest adjacent or deepening topics.
3. For each item give a one-sentence reason tied to the learner's level.`)

	return b.String()
}
