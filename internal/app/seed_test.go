package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every seed item must reference only concepts the seed graph defines,
// or path generation would fail at runtime.
func TestSeedCatalogIsConsistent(t *testing.T) {
	src := seedSource()
	ctx := context.Background()

	subjects := src.Subjects()
	require.Equal(t, []string{"programming", "video-editing"}, subjects)

	for _, subject := range subjects {
		items, err := src.ListForSubject(ctx, subject)
		require.NoError(t, err, "subject %s", subject)
		require.NotEmpty(t, items, "subject %s", subject)

		seen := map[string]bool{}
		for _, item := range items {
			assert.False(t, seen[item.ContentID], "duplicate content id %s", item.ContentID)
			seen[item.ContentID] = true
			assert.Greater(t, item.EstimatedMinutes, 0, "item %s", item.ContentID)

			for _, conceptID := range item.RequiredConcepts {
				_, err := src.GetConcept(ctx, conceptID)
				assert.NoError(t, err, "item %s references %s", item.ContentID, conceptID)
			}
		}
	}
}
