package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestLoadFile(t *testing.T) {
	p := writeCatalog(t, `{
		"concepts": [
			{"id": "algebra", "name": "Algebra"},
			{"id": "calculus", "name": "Calculus", "prerequisites": ["algebra"]}
		],
		"subjects": {
			"math": [
				{"content_id": "vid-1", "title": "Intro", "estimated_minutes": 10, "required_concepts": ["algebra"]},
				{"content_id": "quiz-1", "title": "Check", "base_difficulty": 60, "estimated_minutes": 5, "required_concepts": ["calculus"]}
			]
		}
	}`)

	src, err := LoadFile(p)
	require.NoError(t, err)

	ctx := context.Background()

	items, err := src.ListForSubject(ctx, "math")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "vid-1", items[0].ContentID)
	assert.Nil(t, items[0].BaseDifficulty)
	require.NotNil(t, items[1].BaseDifficulty)
	assert.Equal(t, 60, *items[1].BaseDifficulty)

	con, err := src.GetConcept(ctx, "calculus")
	require.NoError(t, err)
	assert.Equal(t, []string{"algebra"}, con.Prerequisites)

	assert.Equal(t, []string{"math"}, src.Subjects())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFileBadJSON(t *testing.T) {
	p := writeCatalog(t, `{"concepts": [`)
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestLoadFileEmptySubjects(t *testing.T) {
	p := writeCatalog(t, `{"concepts": []}`)
	src, err := LoadFile(p)
	require.NoError(t, err)
	assert.Empty(t, src.Subjects())
}
