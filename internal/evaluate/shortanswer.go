package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/vidquiz/internal/llm"
	"github.com/abhisek/vidquiz/internal/quizgen"
)

// minGradableAnswerLength is the shortest trimmed answer worth sending
// to the grader. Anything shorter scores zero outright.
const minGradableAnswerLength = 5

const scoreSystemPrompt = `You are an educational assistant evaluating short answer responses. Respond with a single JSON object and nothing else.`

// scoreSchema validates the LLM grading response.
var scoreSchema = &llm.Schema{
	Name:        "short-answer-score",
	Description: "A graded short answer with feedback and further reading",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score_percentage": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "How completely the answer covers the key points",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Conversational feedback for the learner, 2 to 4 sentences",
			},
			"additional_resources": map[string]any{
				"type":        "array",
				"items":       resourceSchema,
				"description": "2 or 3 reputable links for further reading",
			},
		},
		"required":             []any{"score_percentage", "feedback", "additional_resources"},
		"additionalProperties": false,
	},
}

// scoreOutput is the raw LLM grading response.
type scoreOutput struct {
	ScorePercentage int        `json:"score_percentage"`
	Feedback        string     `json:"feedback"`
	Resources       []Resource `json:"additional_resources"`
}

func (e *Evaluator) evaluateShortAnswer(ctx context.Context, q *quizgen.ShortAnswer, answer, contextText string) *Result {
	result := e.baseResult(&q.ItemMeta, q.SampleAnswer, false)
	result.KeyPoints = q.KeyPoints

	trimmed := strings.TrimSpace(answer)
	if len(trimmed) < minGradableAnswerLength {
		zero, never := 0, false
		result.ScorePercentage = &zero
		result.IsPartial = &never
		result.Feedback = fmt.Sprintf(
			"Your answer is too brief to assess properly. A good response should include: %s. %s",
			strings.Join(q.KeyPoints, ", "), q.Explanation)
		result.Resources = e.fallbackResources()
		return result
	}

	score, fb, resources, err := e.llmScore(ctx, q, trimmed, contextText)
	if err != nil {
		score = e.heuristicScore(q.KeyPoints, trimmed)
		fb = fmt.Sprintf(
			"Based on keyword matching, your answer addresses approximately %d%% of the key points. A complete answer should include: %s. %s",
			score, strings.Join(q.KeyPoints, ", "), q.Explanation)
		resources = e.fallbackResources()
	}

	partial := score >= e.config.PartialThreshold && score < e.config.CorrectThreshold
	result.ScorePercentage = &score
	result.IsCorrect = score >= e.config.CorrectThreshold
	result.IsPartial = &partial
	result.Feedback = fb
	result.Resources = resources
	return result
}

func (e *Evaluator) llmScore(ctx context.Context, q *quizgen.ShortAnswer, answer, contextText string) (int, string, []Resource, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", q.QuestionText)
	fmt.Fprintf(&b, "Student's answer: %q\n\n", answer)
	fmt.Fprintf(&b, "Sample correct answer: %q\n\n", q.SampleAnswer)
	b.WriteString("Key points that should be included:\n")
	for _, point := range q.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", point)
	}
	fmt.Fprintf(&b, "\nOriginal explanation of what makes a good answer: %s\n\n", q.Explanation)
	fmt.Fprintf(&b, "Additional context from the video: %s\n\n", orNotAvailable(contextText))
	b.WriteString(`Evaluate the student's answer on a scale of 0-100%, where:
- 0-10%: Very minimal, irrelevant, or nonsensical answer
- 11-30%: Missing nearly all key points, major misconceptions
- 31-50%: Includes at least one key point but has significant gaps
- 51-70%: Includes some key points with minor misconceptions
- 71-90%: Includes most key points with minor issues
- 91-100%: Includes all key points and demonstrates thorough understanding

If the answer is very short (less than 10 words) and does not address any of the key points, give a score under 20%.

Also suggest 2-3 high-quality web resources where the student can learn more about this topic. Prefer reputable sources like educational websites, documentation, or well-known blogs.`)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      scoreSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:      scoreSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return 0, "", nil, err
	}

	var out scoreOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return 0, "", nil, fmt.Errorf("failed to parse grading response: %w", err)
	}
	return out.ScorePercentage, out.Feedback, out.Resources, nil
}

// heuristicScore grades by keyword matching when the LLM is
// unavailable. Each key point counts once if any of its words longer
// than 3 letters appears in the answer. The score scales matched
// points to 60 and is capped by config.
func (e *Evaluator) heuristicScore(keyPoints []string, answer string) int {
	if len(keyPoints) == 0 {
		return 0
	}

	lower := strings.ToLower(answer)
	matched := 0
	for _, point := range keyPoints {
		for _, word := range strings.Fields(strings.ToLower(point)) {
			if len(word) > 3 && strings.Contains(lower, word) {
				matched++
				break
			}
		}
	}

	if matched == 0 {
		return 0
	}
	score := matched * 60 / len(keyPoints)
	if score > e.config.HeuristicScoreCap {
		score = e.config.HeuristicScoreCap
	}
	return score
}
