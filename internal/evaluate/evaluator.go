package evaluate

import (
	"context"
	"math/rand"
	"strings"

	"github.com/abhisek/vidquiz/internal/llm"
	"github.com/abhisek/vidquiz/internal/quizgen"
)

// Evaluator grades answers and produces feedback. LLM failures never
// surface to the caller; every path falls back to template feedback
// and heuristic scoring so a Result is always produced.
type Evaluator struct {
	provider llm.Provider
	config   Config
	rng      *rand.Rand
}

// New creates an Evaluator. The rand source drives template and
// resource selection; pass a seeded source in tests for determinism.
func New(provider llm.Provider, cfg Config, rng *rand.Rand) *Evaluator {
	return &Evaluator{provider: provider, config: cfg, rng: rng}
}

// Evaluate grades answer against item. contextText is the transcript
// excerpt around the question's timestamps, or empty when unavailable.
func (e *Evaluator) Evaluate(ctx context.Context, item quizgen.Item, answer, contextText string) *Result {
	switch q := item.(type) {
	case *quizgen.FillInBlank:
		return e.evaluateFillInBlank(ctx, q, answer, contextText)
	case *quizgen.ShortAnswer:
		return e.evaluateShortAnswer(ctx, q, answer, contextText)
	case *quizgen.MultipleChoice:
		return e.evaluateMultipleChoice(ctx, q, answer, contextText)
	}
	// Unknown concrete types grade as an exact match against nothing.
	meta := item.Meta()
	return e.baseResult(meta, "", false)
}

// evaluateMultipleChoice requires an exact, case sensitive option ID
// match.
func (e *Evaluator) evaluateMultipleChoice(ctx context.Context, q *quizgen.MultipleChoice, answer, contextText string) *Result {
	correct := answer == q.CorrectAnswer

	result := e.baseResult(&q.ItemMeta, q.CorrectAnswer, correct)

	userOption := optionText(q.Options, answer)
	correctOption := optionText(q.Options, q.CorrectAnswer)

	outcome := outcomeIncorrect
	if correct {
		outcome = outcomeCorrect
	}
	fb, resources, err := e.llmFeedback(ctx, feedbackInput{
		Kind:          "multiple-choice",
		QuestionText:  q.QuestionText,
		UserAnswer:    userOption,
		CorrectAnswer: correctOption,
		Outcome:       outcome,
		Explanation:   q.Explanation,
		Context:       contextText,
	})
	if err != nil || len(fb) < e.config.MinFeedbackLength {
		fb = e.templateFeedback(correct, q.Explanation, q.CorrectAnswer, correctOption)
		resources = e.fallbackResources()
	}

	result.Feedback = fb
	result.Resources = resources
	return result
}

// evaluateFillInBlank compares normalized text. An exact match is
// correct; a substring match either way is partial.
func (e *Evaluator) evaluateFillInBlank(ctx context.Context, q *quizgen.FillInBlank, answer, contextText string) *Result {
	user := strings.ToLower(strings.TrimSpace(answer))
	want := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))

	correct := user == want
	partial := !correct && want != "" &&
		(strings.Contains(want, user) || strings.Contains(user, want))

	result := e.baseResult(&q.ItemMeta, q.CorrectAnswer, correct)
	result.IsPartial = &partial

	outcome := outcomeIncorrect
	switch {
	case correct:
		outcome = outcomeCorrect
	case partial:
		outcome = outcomePartial
	}
	fb, resources, err := e.llmFeedback(ctx, feedbackInput{
		Kind:          "fill-in-the-blank",
		QuestionText:  q.QuestionText,
		UserAnswer:    answer,
		CorrectAnswer: q.CorrectAnswer,
		Outcome:       outcome,
		Explanation:   q.Explanation,
		Context:       contextText,
	})
	if err != nil || len(fb) < e.config.MinFeedbackLength {
		fb = e.blankTemplateFeedback(outcome, answer, q.CorrectAnswer, q.Explanation)
		resources = e.fallbackResources()
	}

	result.Feedback = fb
	result.Resources = resources
	return result
}

func (e *Evaluator) baseResult(meta *quizgen.ItemMeta, correctAnswer string, correct bool) *Result {
	return &Result{
		IsCorrect:      correct,
		CorrectAnswer:  correctAnswer,
		Explanation:    meta.Explanation,
		QuestionID:     meta.QuestionID,
		VideoID:        meta.VideoID,
		TimestampStart: meta.TimestampStart,
		TimestampEnd:   meta.TimestampEnd,
	}
}

func optionText(options []quizgen.Option, id string) string {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Text
		}
	}
	return "Unknown option"
}
