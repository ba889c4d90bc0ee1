package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avalder/pathwise/internal/srs"
)

type recordReviewRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ConceptID string `json:"concept_id" binding:"required"`
	Rating    string `json:"rating" binding:"required"`
}

func (s *Server) recordReview(c *gin.Context) {
	var req recordReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	rating, err := srs.ParseRating(req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}

	rec, err := s.scheduler.RecordReviewOutcome(c.Request.Context(), req.UserID, req.ConceptID, rating, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) dueReviews(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	var opts srs.DueOpts
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			badRequest(c, "limit must be a non-negative integer")
			return
		}
		opts.Limit = n
	}
	if at := c.Query("after_time"); at != "" {
		ts, err := time.Parse(time.RFC3339, at)
		if err != nil {
			badRequest(c, "after_time must be RFC 3339")
			return
		}
		opts.After = &srs.DueCursor{NextReviewAt: ts, ConceptID: c.Query("after_concept")}
	}

	due, err := s.scheduler.DueReviews(c.Request.Context(), userID, time.Now().UTC(), opts)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"due": due})
}
