package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/concept"
	"github.com/avalder/pathwise/internal/content"
	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/logger"
	"github.com/avalder/pathwise/internal/mastery"
	"github.com/avalder/pathwise/internal/path"
	"github.com/avalder/pathwise/internal/progress"
	"github.com/avalder/pathwise/internal/srs"
)

// In-memory repos wiring a full server for handler tests.

type memMasteryRepo struct {
	records map[string]*mastery.Record
}

func mkey(userID, conceptID string) string { return userID + "/" + conceptID }

func (m *memMasteryRepo) Get(_ context.Context, userID, conceptID string) (*mastery.Record, error) {
	rec, ok := m.records[mkey(userID, conceptID)]
	if !ok {
		return nil, errs.NotFound("mastery record %s/%s", userID, conceptID)
	}
	cp := *rec
	return &cp, nil
}

func (m *memMasteryRepo) Create(_ context.Context, rec *mastery.Record) error {
	k := mkey(rec.UserID, rec.ConceptID)
	if _, ok := m.records[k]; ok {
		return errs.AlreadyExists("mastery record %s", k)
	}
	rec.Version = 1
	cp := *rec
	m.records[k] = &cp
	return nil
}

func (m *memMasteryRepo) Update(_ context.Context, rec *mastery.Record) error {
	k := mkey(rec.UserID, rec.ConceptID)
	cur, ok := m.records[k]
	if !ok {
		return errs.NotFound("mastery record %s", k)
	}
	if cur.Version != rec.Version {
		return errs.Conflict("mastery record %s version moved", k)
	}
	rec.Version++
	cp := *rec
	m.records[k] = &cp
	return nil
}

func (m *memMasteryRepo) DueBefore(_ context.Context, userID string, now time.Time, opts srs.DueOpts) ([]srs.DueConcept, error) {
	var due []srs.DueConcept
	for _, rec := range m.records {
		if rec.UserID != userID || rec.NextReviewAt == nil || rec.NextReviewAt.After(now) {
			continue
		}
		due = append(due, srs.DueConcept{ConceptID: rec.ConceptID, NextReviewAt: *rec.NextReviewAt, Level: rec.Level})
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewAt.Equal(due[j].NextReviewAt) {
			return due[i].NextReviewAt.Before(due[j].NextReviewAt)
		}
		return due[i].ConceptID < due[j].ConceptID
	})
	if opts.Limit > 0 && len(due) > opts.Limit {
		due = due[:opts.Limit]
	}
	return due, nil
}

type memPathRepo struct {
	paths map[string]*path.LearningPath
}

func (m *memPathRepo) Get(_ context.Context, userID, subjectID string) (*path.LearningPath, error) {
	p, ok := m.paths[mkey(userID, subjectID)]
	if !ok {
		return nil, errs.NotFound("no path for %s/%s", userID, subjectID)
	}
	cp := *p
	cp.Nodes = append([]path.Node(nil), p.Nodes...)
	return &cp, nil
}

func (m *memPathRepo) Create(_ context.Context, p *path.LearningPath) error {
	k := mkey(p.UserID, p.SubjectID)
	if _, ok := m.paths[k]; ok {
		return errs.AlreadyExists("path %s", k)
	}
	p.Version = 1
	cp := *p
	cp.Nodes = append([]path.Node(nil), p.Nodes...)
	m.paths[k] = &cp
	return nil
}

func (m *memPathRepo) Update(_ context.Context, p *path.LearningPath) error {
	k := mkey(p.UserID, p.SubjectID)
	cur, ok := m.paths[k]
	if !ok {
		return errs.NotFound("path %s", k)
	}
	if cur.Version != p.Version {
		return errs.Conflict("path %s version moved", k)
	}
	p.Version++
	cp := *p
	cp.Nodes = append([]path.Node(nil), p.Nodes...)
	m.paths[k] = &cp
	return nil
}

type memProgressRepo struct {
	recs map[string]*progress.SubjectProgress
}

func (m *memProgressRepo) Get(_ context.Context, userID, subjectID string) (*progress.SubjectProgress, error) {
	sp, ok := m.recs[mkey(userID, subjectID)]
	if !ok {
		return nil, errs.NotFound("no progress %s/%s", userID, subjectID)
	}
	cp := *sp
	return &cp, nil
}

func (m *memProgressRepo) Create(_ context.Context, sp *progress.SubjectProgress) error {
	k := mkey(sp.UserID, sp.SubjectID)
	if _, ok := m.recs[k]; ok {
		return errs.AlreadyExists("progress %s", k)
	}
	sp.Version = 1
	cp := *sp
	m.recs[k] = &cp
	return nil
}

func (m *memProgressRepo) Update(_ context.Context, sp *progress.SubjectProgress) error {
	k := mkey(sp.UserID, sp.SubjectID)
	cur, ok := m.recs[k]
	if !ok {
		return errs.NotFound("progress %s", k)
	}
	if cur.Version != sp.Version {
		return errs.Conflict("progress %s version moved", k)
	}
	sp.Version++
	cp := *sp
	m.recs[k] = &cp
	return nil
}

type memAttempts struct {
	attempts []progress.QuizAttempt
}

func (m *memAttempts) Append(_ context.Context, a *progress.QuizAttempt) error {
	m.attempts = append(m.attempts, *a)
	return nil
}

func (m *memAttempts) ListByQuiz(_ context.Context, userID, quizID string) ([]progress.QuizAttempt, error) {
	var out []progress.QuizAttempt
	for _, a := range m.attempts {
		if a.UserID == userID && a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	graph := concept.NewGraph([]concept.Concept{
		{ID: "algebra", Name: "Algebra"},
		{ID: "vectors", Name: "Vectors", Prerequisites: []string{"algebra"}},
	})
	source := content.NewStatic(map[string][]content.Item{
		"math": {
			{ContentID: "vid-1", Title: "Intro", EstimatedMinutes: 10},
			{ContentID: "vid-2", Title: "Equations", RequiredConcepts: []string{"algebra"}, EstimatedMinutes: 15},
		},
	}, graph)

	masteryRepo := &memMasteryRepo{records: make(map[string]*mastery.Record)}
	scheduler := srs.NewScheduler(masteryRepo, nil)
	manager := path.NewManager(&memPathRepo{paths: make(map[string]*path.LearningPath)}, source, scheduler, scheduler.Ledger())
	aggreg := progress.NewAggregator(
		&memProgressRepo{recs: make(map[string]*progress.SubjectProgress)},
		&memAttempts{},
		manager,
		scheduler,
	)

	return NewServer(logger.Nop(), scheduler, manager, aggreg, source, nil)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	return w
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthcheck", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRecordReview(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/reviews", `{"user_id":"u1","concept_id":"algebra","rating":"easy"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}

	var rec mastery.Record
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Level != 10 || rec.RetentionStreak != 1 {
		t.Errorf("record = %+v, want level 10 streak 1", rec)
	}
}

func TestRecordReview_BadRating(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/reviews", `{"user_id":"u1","concept_id":"algebra","rating":"brutal"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body)
	}
}

func TestDueReviews_RequiresUser(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/reviews/due", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDueReviews_ListsReviewedConcepts(t *testing.T) {
	s := newTestServer(t)

	// A hard review schedules the next one 12h out; nothing due yet.
	do(t, s, http.MethodPost, "/api/reviews", `{"user_id":"u1","concept_id":"algebra","rating":"hard"}`)

	w := do(t, s, http.MethodGet, "/api/reviews/due?user_id=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	var out struct {
		Due []srs.DueConcept `json:"due"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Due) != 0 {
		t.Errorf("due = %v, want empty right after review", out.Due)
	}
}

func TestGenerateAndCompletePath(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/paths/math", `{"user_id":"u1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body = %s", w.Code, w.Body)
	}
	var p path.LearningPath
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(p.Nodes))
	}

	w = do(t, s, http.MethodPost, "/api/paths/math/nodes/0/complete", `{"user_id":"u1","score":85}`)
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d, body = %s", w.Code, w.Body)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !p.Nodes[0].Completed || p.CurrentNodeIndex != 1 {
		t.Errorf("path = %+v", p)
	}

	w = do(t, s, http.MethodPost, "/api/paths/math/nodes/9/complete", `{"user_id":"u1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("out-of-range status = %d, want 400", w.Code)
	}
}

func TestGetPath_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/paths/math?user_id=u1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUnknownSubject(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/paths/underwater-basketweaving", `{"user_id":"u1"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body = %s", w.Code, w.Body)
	}
}

func TestRecordQuizAttemptAndProgress(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/quizzes/quiz-1/attempts", `{"user_id":"u1","subject_id":"math","answers":[0,2],"score":80}`)
	if w.Code != http.StatusOK {
		t.Fatalf("attempt status = %d, body = %s", w.Code, w.Body)
	}
	var sp progress.SubjectProgress
	if err := json.Unmarshal(w.Body.Bytes(), &sp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sp.ProgressPercentage != 80 {
		t.Errorf("progress = %v, want 80", sp.ProgressPercentage)
	}

	w = do(t, s, http.MethodGet, "/api/subjects/math/progress?user_id=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("progress status = %d, body = %s", w.Code, w.Body)
	}
	var sum progress.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Progress.ProgressPercentage != 80 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRecommendations(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/paths/math/recommendations?user_id=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	var out struct {
		Recommendations []path.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Recommendations) != 2 {
		t.Errorf("recommendations = %d, want 2", len(out.Recommendations))
	}
}

func TestGetConcept(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/concepts/algebra", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	var out struct {
		Concept       concept.Concept   `json:"concept"`
		Prerequisites []concept.Concept `json:"prerequisites"`
		Dependents    []concept.Concept `json:"dependents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Concept.Name != "Algebra" {
		t.Errorf("concept = %+v", out.Concept)
	}
	if len(out.Prerequisites) != 0 {
		t.Errorf("prerequisites = %v, want none", out.Prerequisites)
	}
	if len(out.Dependents) != 1 || out.Dependents[0].ID != "vectors" {
		t.Errorf("dependents = %v, want [vectors]", out.Dependents)
	}

	w = do(t, s, http.MethodGet, "/api/concepts/flight-dynamics", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown concept status = %d, want 404", w.Code)
	}
}

// mutableSource lets a test swap the catalog under a cache.
type mutableSource struct {
	inner content.Source
}

func (m *mutableSource) ListForSubject(ctx context.Context, subjectID string) ([]content.Item, error) {
	return m.inner.ListForSubject(ctx, subjectID)
}

func (m *mutableSource) GetConcept(ctx context.Context, conceptID string) (concept.Concept, error) {
	return m.inner.GetConcept(ctx, conceptID)
}

func (m *mutableSource) ConceptGraph(ctx context.Context) (*concept.Graph, error) {
	return m.inner.ConceptGraph(ctx)
}

func TestReloadSubject_DropsCachedPool(t *testing.T) {
	graph := concept.NewGraph([]concept.Concept{{ID: "algebra", Name: "Algebra"}})
	mut := &mutableSource{inner: content.NewStatic(map[string][]content.Item{
		"math": {{ContentID: "vid-1", Title: "Intro", EstimatedMinutes: 10}},
	}, graph)}
	cached := content.NewCached(mut, time.Hour)

	masteryRepo := &memMasteryRepo{records: make(map[string]*mastery.Record)}
	scheduler := srs.NewScheduler(masteryRepo, nil)
	manager := path.NewManager(&memPathRepo{paths: make(map[string]*path.LearningPath)}, cached, scheduler, scheduler.Ledger())
	aggreg := progress.NewAggregator(
		&memProgressRepo{recs: make(map[string]*progress.SubjectProgress)},
		&memAttempts{},
		manager,
		scheduler,
	)
	s := NewServer(logger.Nop(), scheduler, manager, aggreg, cached, nil)

	// Prime the cache, then grow the catalog behind it.
	w := do(t, s, http.MethodGet, "/api/paths/math/recommendations?user_id=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	mut.inner = content.NewStatic(map[string][]content.Item{
		"math": {
			{ContentID: "vid-1", Title: "Intro", EstimatedMinutes: 10},
			{ContentID: "vid-2", Title: "Equations", EstimatedMinutes: 15},
		},
	}, graph)

	w = do(t, s, http.MethodGet, "/api/paths/math/recommendations?user_id=u1", "")
	var out struct {
		Recommendations []path.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Recommendations) != 1 {
		t.Fatalf("recommendations before reload = %d, want stale 1", len(out.Recommendations))
	}

	if w := do(t, s, http.MethodPost, "/api/subjects/math/reload", ""); w.Code != http.StatusNoContent {
		t.Fatalf("reload status = %d, want 204", w.Code)
	}

	w = do(t, s, http.MethodGet, "/api/paths/math/recommendations?user_id=u1", "")
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Recommendations) != 2 {
		t.Fatalf("recommendations after reload = %d, want 2", len(out.Recommendations))
	}
}

func TestStudyRoutes_NoProvider(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/study/quiz", `{"user_id":"u1","concept_id":"algebra"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503; body = %s", w.Code, w.Body)
	}
}
