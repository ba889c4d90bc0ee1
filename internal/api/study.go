package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/studygen"
)

type studyRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	ConceptID    string `json:"concept_id" binding:"required"`
	NumQuestions int    `json:"num_questions"`
}

// studyInput resolves the concept and the learner's mastery level for a
// study generation request.
func (s *Server) studyInput(c *gin.Context) (*studyRequest, *studygen.SummaryInput, bool) {
	if s.study == nil {
		writeError(c, errs.Unavailable(nil, "no LLM provider configured"))
		return nil, nil, false
	}

	var req studyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return nil, nil, false
	}

	ctx := c.Request.Context()
	con, err := s.source.GetConcept(ctx, req.ConceptID)
	if err != nil {
		writeError(c, err)
		return nil, nil, false
	}

	level, err := s.scheduler.Ledger().Level(ctx, req.UserID, req.ConceptID)
	if err != nil {
		writeError(c, err)
		return nil, nil, false
	}

	input := &studygen.SummaryInput{Concept: con, MasteryLevel: level}
	if rec, err := s.scheduler.Ledger().Get(ctx, req.UserID, req.ConceptID); err == nil {
		input.LastRating = rec.LastRating()
	}
	return &req, input, true
}

func (s *Server) generateQuiz(c *gin.Context) {
	req, input, ok := s.studyInput(c)
	if !ok {
		return
	}

	quiz, err := s.study.GenerateQuiz(c.Request.Context(), studygen.QuizInput{
		Concept:      input.Concept,
		MasteryLevel: input.MasteryLevel,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (s *Server) generateSummary(c *gin.Context) {
	_, input, ok := s.studyInput(c)
	if !ok {
		return
	}

	sum, err := s.study.GenerateSummary(c.Request.Context(), *input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) generateReading(c *gin.Context) {
	_, input, ok := s.studyInput(c)
	if !ok {
		return
	}

	list, err := s.study.GenerateFurtherReading(c.Request.Context(), *input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
