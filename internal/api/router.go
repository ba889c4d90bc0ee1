// Package api exposes the engine over HTTP: review outcomes, due
// listings, path generation and completion, quiz attempts, and study
// material generation.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/avalder/pathwise/internal/content"
	"github.com/avalder/pathwise/internal/logger"
	"github.com/avalder/pathwise/internal/path"
	"github.com/avalder/pathwise/internal/progress"
	"github.com/avalder/pathwise/internal/srs"
	"github.com/avalder/pathwise/internal/studygen"
)

// Server bundles the engine services behind a gin router.
type Server struct {
	Engine *gin.Engine

	log       *logger.Logger
	scheduler *srs.Scheduler
	paths     *path.Manager
	aggreg    *progress.Aggregator
	source    content.Source
	study     *studygen.Service // nil when no LLM provider is configured
}

// NewServer builds the router. study may be nil; the study routes then
// respond 503.
func NewServer(log *logger.Logger, scheduler *srs.Scheduler, paths *path.Manager, aggreg *progress.Aggregator, source content.Source, study *studygen.Service) *Server {
	s := &Server{
		log:       log,
		scheduler: scheduler,
		paths:     paths,
		aggreg:    aggreg,
		source:    source,
		study:     study,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	r.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/reviews", s.recordReview)
		api.GET("/reviews/due", s.dueReviews)

		api.POST("/paths/:subject", s.generatePath)
		api.GET("/paths/:subject", s.getPath)
		api.POST("/paths/:subject/nodes/:index/complete", s.completeNode)
		api.GET("/paths/:subject/recommendations", s.recommendations)
		api.GET("/paths/:subject/reviews", s.dueReviewNodes)

		api.POST("/quizzes/:quiz/attempts", s.recordQuizAttempt)

		api.GET("/concepts/:concept", s.getConcept)

		api.GET("/subjects/:subject/progress", s.subjectProgress)
		api.POST("/subjects/:subject/study-time", s.addStudyTime)
		api.POST("/subjects/:subject/reload", s.reloadSubject)

		api.POST("/study/quiz", s.generateQuiz)
		api.POST("/study/summary", s.generateSummary)
		api.POST("/study/reading", s.generateReading)
	}

	s.Engine = r
	return s
}

// Run starts the HTTP server on address.
func (s *Server) Run(address string) error {
	s.log.Info("http server listening", "address", address)
	return s.Engine.Run(address)
}
