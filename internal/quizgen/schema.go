package quizgen

import "github.com/abhisek/vidquiz/internal/llm"

// The model always answers with a {"questions": [...]} object. Each
// request type gets its own schema so the validator rejects responses
// missing the type-specific fields.

func questionsSchema(name, description string, item map[string]any) *llm.Schema {
	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": item,
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	}
}

var multipleChoiceItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type": "string",
			"enum": []any{"multiple_choice"},
		},
		"question_text": map[string]any{
			"type":        "string",
			"description": "The question prompt shown to the learner",
		},
		"options": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"text": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "text"},
				"additionalProperties": false,
			},
			"description": "Exactly 4 options labeled A through D",
		},
		"correct_answer": map[string]any{
			"type":        "string",
			"description": "The id of the correct option, e.g. \"A\"",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the correct option is right",
		},
	},
	"required":             []any{"type", "question_text", "options", "correct_answer", "explanation"},
	"additionalProperties": false,
}

var fillInBlankItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type": "string",
			"enum": []any{"fill_in_the_blank"},
		},
		"question_text": map[string]any{
			"type":        "string",
			"description": "A sentence containing a blank written as _____",
		},
		"correct_answer": map[string]any{
			"type":        "string",
			"description": "The word or short phrase that fills the blank",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why this answer is correct",
		},
	},
	"required":             []any{"type", "question_text", "correct_answer", "explanation"},
	"additionalProperties": false,
}

var shortAnswerItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type": "string",
			"enum": []any{"short_answer"},
		},
		"question_text": map[string]any{
			"type":        "string",
			"description": "A question requiring a brief explanation",
		},
		"sample_answer": map[string]any{
			"type":        "string",
			"description": "An example of a full-marks answer",
		},
		"key_points": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Facts a correct answer must mention",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "What makes a good answer to this question",
		},
	},
	"required":             []any{"type", "question_text", "sample_answer", "key_points", "explanation"},
	"additionalProperties": false,
}

var (
	// MultipleChoiceSchema validates a batch of multiple choice questions.
	MultipleChoiceSchema = questionsSchema(
		"multiple-choice-questions",
		"A batch of multiple choice questions about video content",
		multipleChoiceItemSchema,
	)

	// FillInBlankSchema validates a batch of fill in the blank questions.
	FillInBlankSchema = questionsSchema(
		"fill-in-the-blank-questions",
		"A batch of fill in the blank questions about video content",
		fillInBlankItemSchema,
	)

	// ShortAnswerSchema validates a batch of short answer questions.
	ShortAnswerSchema = questionsSchema(
		"short-answer-questions",
		"A batch of short answer questions about video content",
		shortAnswerItemSchema,
	)

	// MixedSchema validates a batch mixing all three question types.
	MixedSchema = questionsSchema(
		"mixed-questions",
		"A batch of questions of mixed types about video content",
		map[string]any{
			"anyOf": []any{
				multipleChoiceItemSchema,
				fillInBlankItemSchema,
				shortAnswerItemSchema,
			},
		},
	)
)

// SchemaFor returns the response schema for a generation request type.
func SchemaFor(t ItemType) *llm.Schema {
	switch t {
	case TypeFillInBlank:
		return FillInBlankSchema
	case TypeShortAnswer:
		return ShortAnswerSchema
	case TypeMixed:
		return MixedSchema
	default:
		return MultipleChoiceSchema
	}
}
