package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/vidquiz/internal/llm"
)

type outcome string

const (
	outcomeCorrect   outcome = "correct"
	outcomePartial   outcome = "partial"
	outcomeIncorrect outcome = "incorrect"
)

// correctStarters open template feedback for correct answers.
var correctStarters = []string{
	"Excellent!",
	"That's correct!",
	"Perfect answer!",
	"Well done!",
	"You got it!",
	"Spot on!",
	"That's exactly right!",
	"Great job!",
	"You're absolutely right!",
	"Correct!",
	"That's the right answer!",
	"You've understood this well!",
	"That's perfect!",
	"You're showing good understanding here!",
}

// incorrectStarters open template feedback for incorrect answers.
var incorrectStarters = []string{
	"Not quite.",
	"That's not correct.",
	"Your answer isn't quite right.",
	"That's a common misconception.",
	"You're on the right track, but not quite there.",
	"Close, but not quite correct.",
	"That's not the right answer.",
	"This isn't the correct option.",
	"Good attempt, but that's not right.",
	"That's not accurate in this case.",
	"That's a reasonable guess, but it's not correct.",
	"That's not the answer we're looking for.",
	"That option isn't correct.",
	"Your understanding needs a small adjustment here.",
}

// resourcePool backs fallbackResources when the LLM cannot supply
// topic-specific links.
var resourcePool = []Resource{
	{
		Title:       "Khan Academy",
		URL:         "https://www.khanacademy.org/",
		Description: "Free educational resources across many subjects with video lessons and practice exercises.",
	},
	{
		Title:       "MIT OpenCourseWare",
		URL:         "https://ocw.mit.edu/",
		Description: "Free course materials from MIT covering a wide range of subjects.",
	},
	{
		Title:       "Coursera",
		URL:         "https://www.coursera.org/",
		Description: "Online courses from top universities and companies across many disciplines.",
	},
	{
		Title:       "edX",
		URL:         "https://www.edx.org/",
		Description: "Online courses from leading educational institutions on a variety of topics.",
	},
	{
		Title:       "MDN Web Docs",
		URL:         "https://developer.mozilla.org/",
		Description: "Comprehensive documentation for web technologies and programming.",
	},
	{
		Title:       "W3Schools",
		URL:         "https://www.w3schools.com/",
		Description: "Web development tutorials and reference materials with interactive examples.",
	},
	{
		Title:       "Digital Ocean Community Tutorials",
		URL:         "https://www.digitalocean.com/community/tutorials",
		Description: "Detailed technical tutorials on programming, software, and system administration.",
	},
}

const feedbackSystemPrompt = `You are an educational assistant providing natural, varied, and conversational feedback on quiz answers. Respond with a single JSON object and nothing else.`

var resourceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string"},
		"url":         map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
	},
	"required":             []any{"title", "url", "description"},
	"additionalProperties": false,
}

// feedbackSchema validates the LLM feedback response.
var feedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Personalized feedback on a quiz answer with further reading",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
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
		"required":             []any{"feedback", "additional_resources"},
		"additionalProperties": false,
	},
}

// feedbackInput carries everything the feedback prompt needs.
type feedbackInput struct {
	Kind          string
	QuestionText  string
	UserAnswer    string
	CorrectAnswer string
	Outcome       outcome
	Explanation   string
	Context       string
}

// feedbackOutput is the raw LLM feedback response.
type feedbackOutput struct {
	Feedback  string     `json:"feedback"`
	Resources []Resource `json:"additional_resources"`
}

func (e *Evaluator) llmFeedback(ctx context.Context, input feedbackInput) (string, []Resource, error) {
	ctx = llm.WithPurpose(ctx, "feedback-gen")

	var b strings.Builder
	fmt.Fprintf(&b, "You are giving feedback on a %s question.\n\n", input.Kind)
	fmt.Fprintf(&b, "Question: %s\n\n", input.QuestionText)
	fmt.Fprintf(&b, "The user answered: %q\n\n", input.UserAnswer)
	fmt.Fprintf(&b, "The correct answer is: %q\n\n", input.CorrectAnswer)
	fmt.Fprintf(&b, "Result: %s\n\n", input.Outcome)
	fmt.Fprintf(&b, "Original explanation: %s\n\n", input.Explanation)
	fmt.Fprintf(&b, "Additional context from the video: %s\n\n", orNotAvailable(input.Context))
	b.WriteString(`Provide personalized feedback that:
1. Uses a natural, conversational tone
2. Does NOT start with generic phrases like "That's not quite right" or "That's incorrect"
3. Explains why the correct answer is right and, if applicable, why the user's choice was wrong
4. Connects the explanation to relevant concepts from the video
5. Is encouraging and supportive
6. Is concise (2-4 sentences)

Also suggest 2-3 high-quality web resources where the user can learn more about this topic. Prefer reputable sources like educational websites, documentation, or well-known blogs. Do not restate the original explanation; provide additional insight.`)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      feedbackSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:      feedbackSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return "", nil, err
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", nil, fmt.Errorf("failed to parse feedback response: %w", err)
	}
	return out.Feedback, out.Resources, nil
}

// templateFeedback builds canned multiple choice feedback.
func (e *Evaluator) templateFeedback(correct bool, explanation, correctID, correctText string) string {
	if correct {
		return fmt.Sprintf("%s %s", e.pick(correctStarters), explanation)
	}
	return fmt.Sprintf("%s The correct answer is %s (%s). %s",
		e.pick(incorrectStarters), correctID, correctText, explanation)
}

// blankTemplateFeedback builds canned fill in the blank feedback.
func (e *Evaluator) blankTemplateFeedback(result outcome, userAnswer, correctAnswer, explanation string) string {
	switch result {
	case outcomeCorrect:
		return fmt.Sprintf("%s You correctly filled in the blank with '%s'.",
			e.pick(correctStarters), correctAnswer)
	case outcomePartial:
		return fmt.Sprintf("Your answer '%s' is close to the correct answer '%s'. %s",
			userAnswer, correctAnswer, explanation)
	}
	return fmt.Sprintf("%s The correct answer is '%s'. %s",
		e.pick(incorrectStarters), correctAnswer, explanation)
}

// fallbackResources samples three distinct links from the pool.
func (e *Evaluator) fallbackResources() []Resource {
	n := 3
	if len(resourcePool) < n {
		n = len(resourcePool)
	}

	picked := make([]Resource, 0, n)
	for _, idx := range e.rng.Perm(len(resourcePool))[:n] {
		picked = append(picked, resourcePool[idx])
	}
	return picked
}

func (e *Evaluator) pick(pool []string) string {
	return pool[e.rng.Intn(len(pool))]
}

func orNotAvailable(s string) string {
	if s == "" {
		return "Not available"
	}
	return s
}
