package content

import (
	"context"
	"sync"
	"time"

	"github.com/avalder/pathwise/internal/concept"
)

// CachedSource is a read-through cache over a Source. Subject pools are
// cached with a TTL so repeated screen loads do not re-enumerate the
// whole catalog; concept lookups are cached forever since concepts are
// immutable at runtime.
type CachedSource struct {
	inner Source
	ttl   time.Duration

	mu       sync.RWMutex
	subjects map[string]cachedPool
	concepts sync.Map // conceptID -> concept.Concept
}

type cachedPool struct {
	items     []Item
	fetchedAt time.Time
}

// DefaultCacheTTL bounds how stale a cached subject pool may be.
const DefaultCacheTTL = 5 * time.Minute

// NewCached wraps src with a read-through cache. A ttl of 0 uses
// DefaultCacheTTL.
func NewCached(src Source, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{
		inner:    src,
		ttl:      ttl,
		subjects: make(map[string]cachedPool),
	}
}

func (c *CachedSource) ListForSubject(ctx context.Context, subjectID string) ([]Item, error) {
	c.mu.RLock()
	pool, ok := c.subjects[subjectID]
	c.mu.RUnlock()
	if ok && time.Since(pool.fetchedAt) < c.ttl {
		out := make([]Item, len(pool.items))
		copy(out, pool.items)
		return out, nil
	}

	items, err := c.inner.ListForSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.subjects[subjectID] = cachedPool{items: items, fetchedAt: time.Now()}
	c.mu.Unlock()

	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (c *CachedSource) GetConcept(ctx context.Context, conceptID string) (concept.Concept, error) {
	if cached, ok := c.concepts.Load(conceptID); ok {
		return cached.(concept.Concept), nil
	}
	con, err := c.inner.GetConcept(ctx, conceptID)
	if err != nil {
		return concept.Concept{}, err
	}
	c.concepts.Store(conceptID, con)
	return con, nil
}

// ConceptGraph passes through; the graph is immutable and the inner
// source already owns a single copy.
func (c *CachedSource) ConceptGraph(ctx context.Context) (*concept.Graph, error) {
	return c.inner.ConceptGraph(ctx)
}

// Invalidate drops the cached pool for a subject, forcing a re-fetch on
// the next read. Called when the catalog changes upstream.
func (c *CachedSource) Invalidate(subjectID string) {
	c.mu.Lock()
	delete(c.subjects, subjectID)
	c.mu.Unlock()
}
