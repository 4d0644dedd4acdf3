package evaluate

// Resource is a suggested further-reading link attached to feedback.
type Resource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Result is the outcome of evaluating one answer. It echoes the
// question's identifying fields so clients can render it standalone.
type Result struct {
	IsCorrect bool `json:"is_correct"`

	// IsPartial marks near misses: a fill in the blank answer that
	// contains (or is contained in) the expected term, or a short
	// answer scoring in the partial band. Multiple choice has no
	// partial state, so its results omit the field.
	IsPartial *bool `json:"is_partial,omitempty"`

	// ScorePercentage is the 0-100 grade. Only short answer results
	// carry one.
	ScorePercentage *int `json:"score_percentage,omitempty"`

	// CorrectAnswer is the option ID, blank term, or sample answer
	// depending on the question type.
	CorrectAnswer string `json:"correct_answer"`

	KeyPoints   []string `json:"key_points,omitempty"`
	Explanation string   `json:"explanation"`

	// Feedback is the personalized prose shown to the learner.
	Feedback  string     `json:"enhanced_feedback"`
	Resources []Resource `json:"additional_resources"`

	QuestionID     string  `json:"question_id"`
	VideoID        string  `json:"video_id"`
	TimestampStart float64 `json:"timestamp_start"`
	TimestampEnd   float64 `json:"timestamp_end"`
}

// Partial reports whether the result is a near miss.
func (r *Result) Partial() bool {
	return r.IsPartial != nil && *r.IsPartial
}

// Score returns the grade, or 0 for result types that carry none.
func (r *Result) Score() int {
	if r.ScorePercentage == nil {
		return 0
	}
	return *r.ScorePercentage
}
