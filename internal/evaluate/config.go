package evaluate

// Config holds the thresholds and LLM limits for answer evaluation.
type Config struct {
	// CorrectThreshold is the minimum short answer score counted as
	// fully correct.
	CorrectThreshold int

	// PartialThreshold is the minimum short answer score counted as
	// partially correct.
	PartialThreshold int

	// HeuristicScoreCap bounds the score the keyword-matching
	// fallback grader can award when the LLM is unavailable.
	HeuristicScoreCap int

	// MinFeedbackLength is the shortest LLM feedback accepted before
	// falling back to template feedback.
	MinFeedbackLength int

	// MaxTokens is the token budget for each LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		CorrectThreshold:  75,
		PartialThreshold:  30,
		HeuristicScoreCap: 70,
		MinFeedbackLength: 20,
		MaxTokens:         1024,
		Temperature:       0.7,
	}
}
