package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type generatePathRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (s *Server) generatePath(c *gin.Context) {
	var req generatePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, err := s.paths.GeneratePath(c.Request.Context(), req.UserID, c.Param("subject"), time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) getPath(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	p, err := s.paths.Get(c.Request.Context(), userID, c.Param("subject"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type completeNodeRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Score  *int   `json:"score"`
}

func (s *Server) completeNode(c *gin.Context) {
	var req completeNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "node index must be an integer")
		return
	}

	p, err := s.paths.CompleteNode(c.Request.Context(), req.UserID, c.Param("subject"), index, req.Score, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) recommendations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	recs, err := s.paths.Recommendations(c.Request.Context(), userID, c.Param("subject"), nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (s *Server) dueReviewNodes(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	nodes, err := s.paths.DueReviewNodes(c.Request.Context(), userID, c.Param("subject"), time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nodes": nodes})
}
