package studygen

// DefaultNumQuestions is used when QuizInput.NumQuestions is zero.
const DefaultNumQuestions = 5

// Config holds study material generation settings.
type Config struct {
	QuizMaxTokens    int
	SummaryMaxTokens int
	ReadingMaxTokens int
	Temperature      float64
}

// DefaultConfig returns sensible defaults for study material generation.
func DefaultConfig() Config {
	return Config{
		QuizMaxTokens:    1024,
		SummaryMaxTokens: 512,
		ReadingMaxTokens: 512,
		Temperature:      0.5,
	}
}
