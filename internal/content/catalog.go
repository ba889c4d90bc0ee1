package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avalder/pathwise/internal/concept"
)

// catalogFile is the on-disk shape of a content catalog.
type catalogFile struct {
	Concepts []concept.Concept `json:"concepts"`
	Subjects map[string][]Item `json:"subjects"`
}

// LoadFile reads a JSON catalog from path and returns a StaticSource
// over it.
func LoadFile(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if cf.Subjects == nil {
		cf.Subjects = map[string][]Item{}
	}
	return NewStatic(cf.Subjects, concept.NewGraph(cf.Concepts)), nil
}
