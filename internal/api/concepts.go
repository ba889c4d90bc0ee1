package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avalder/pathwise/internal/concept"
	"github.com/avalder/pathwise/internal/errs"
)

// conceptDetail is the concept plus its position in the prerequisite
// graph, for curriculum screens.
type conceptDetail struct {
	Concept       concept.Concept   `json:"concept"`
	Prerequisites []concept.Concept `json:"prerequisites"`
	Dependents    []concept.Concept `json:"dependents"`
}

func (s *Server) getConcept(c *gin.Context) {
	id := c.Param("concept")

	graph, err := s.source.ConceptGraph(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	con, ok := graph.Get(id)
	if !ok {
		writeError(c, errs.NotFound("concept %q not found", id))
		return
	}

	c.JSON(http.StatusOK, conceptDetail{
		Concept:       con,
		Prerequisites: graph.Prerequisites(id),
		Dependents:    graph.Dependents(id),
	})
}

// cacheInvalidator is satisfied by content.CachedSource.
type cacheInvalidator interface {
	Invalidate(subjectID string)
}

// reloadSubject drops the cached content pool for a subject so the next
// read picks up upstream catalog changes.
func (s *Server) reloadSubject(c *gin.Context) {
	if inv, ok := s.source.(cacheInvalidator); ok {
		inv.Invalidate(c.Param("subject"))
	}
	c.Status(http.StatusNoContent)
}
