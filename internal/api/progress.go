package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type quizAttemptRequest struct {
	UserID    string  `json:"user_id" binding:"required"`
	SubjectID string  `json:"subject_id" binding:"required"`
	Answers   []int   `json:"answers"`
	Score     float64 `json:"score"`
}

func (s *Server) recordQuizAttempt(c *gin.Context) {
	var req quizAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	sp, err := s.aggreg.RecordQuizAttempt(c.Request.Context(), req.UserID, req.SubjectID, c.Param("quiz"), req.Answers, req.Score, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (s *Server) subjectProgress(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	sum, err := s.aggreg.Summarize(c.Request.Context(), userID, c.Param("subject"), time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

type studyTimeRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Minutes int    `json:"minutes" binding:"required"`
}

func (s *Server) addStudyTime(c *gin.Context) {
	var req studyTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	sp, err := s.aggreg.AddStudyTime(c.Request.Context(), req.UserID, c.Param("subject"), req.Minutes, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}
