package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/vidquiz/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one raw question from the LLM response, holding the
// union of all per-type fields.
type questionOutput struct {
	Type          string   `json:"type"`
	QuestionText  string   `json:"question_text"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	SampleAnswer  string   `json:"sample_answer"`
	KeyPoints     []string `json:"key_points"`
	Explanation   string   `json:"explanation"`
}

// batchOutput is the raw LLM response envelope.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces questions for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Item, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input.Text, input.Count, input.Type)},
		},
		Schema:      SchemaFor(input.Type),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	items := make([]Item, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		items = append(items, q.toItem())
	}
	return items, nil
}

// toItem maps a raw question onto a concrete Item, inferring the type
// when the model omitted it.
func (q questionOutput) toItem() Item {
	t := ItemType(q.Type)
	if t != TypeMultipleChoice && t != TypeFillInBlank && t != TypeShortAnswer {
		switch {
		case len(q.Options) > 0:
			t = TypeMultipleChoice
		case strings.Contains(q.QuestionText, "___"):
			t = TypeFillInBlank
		default:
			t = TypeShortAnswer
		}
	}

	meta := ItemMeta{
		QuestionText: q.QuestionText,
		Explanation:  q.Explanation,
	}

	switch t {
	case TypeMultipleChoice:
		return &MultipleChoice{
			ItemMeta:      meta,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	case TypeFillInBlank:
		return &FillInBlank{
			ItemMeta:      meta,
			CorrectAnswer: q.CorrectAnswer,
		}
	default:
		return &ShortAnswer{
			ItemMeta:     meta,
			SampleAnswer: q.SampleAnswer,
			KeyPoints:    q.KeyPoints,
		}
	}
}
