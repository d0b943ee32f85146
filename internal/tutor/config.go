package tutor

import "github.com/mantasj/gidas/internal/llm"

// Config holds assembler tuning.
type Config struct {
	// Sampling is the fixed generation configuration sent with every
	// chat completion.
	Sampling llm.Sampling

	// HistoryLimit is how many stored exchanges are replayed into the
	// conversation.
	HistoryLimit int

	// DefaultGrade is used when neither the request nor the subject row
	// yields a grade.
	DefaultGrade int
}

// DefaultConfig returns the production assembler configuration.
func DefaultConfig() Config {
	return Config{
		Sampling: llm.Sampling{
			Temperature:      0.7,
			MaxTokens:        1500,
			TopP:             0.9,
			FrequencyPenalty: 0.3,
			PresencePenalty:  0.3,
		},
		HistoryLimit: 5,
		DefaultGrade: 11,
	}
}
