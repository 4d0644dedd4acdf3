package quizgen

import "context"

// GenerateInput holds the context for generating questions from one
// transcript excerpt.
type GenerateInput struct {
	// Text is the transcript excerpt to generate questions from.
	Text string

	// Count is the number of questions to request.
	Count int

	// Type is the question type to generate.
	Type ItemType
}

// Generator produces questions from transcript text using an LLM.
type Generator interface {
	// Generate produces questions for the given input. The returned
	// items carry question text and answers only; the caller fills in
	// IDs, video and timestamp metadata.
	Generate(ctx context.Context, input GenerateInput) ([]Item, error)
}
