package concept

// Concept is an atomic unit of knowledge with prerequisites. Concepts are
// authored upstream and immutable at runtime from the engine's perspective.
type Concept struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites"`
}
