package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/vidquiz/internal/llm"
)

const askSystemPrompt = `You are a helpful assistant answering questions about educational videos.`

// AskInput is a free-form viewer question about a video.
type AskInput struct {
	VideoTitle string
	Question   string
	Timestamp  float64

	// Context is the transcript excerpt around Timestamp.
	Context string
}

// Ask answers a viewer question from transcript context. The response
// is plain prose, not graded.
func (e *Evaluator) Ask(ctx context.Context, input AskInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "video-qa")

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following context from a video titled '%s' at timestamp %g seconds:\n\n",
		input.VideoTitle, input.Timestamp)
	b.WriteString(input.Context)
	fmt.Fprintf(&b, "\n\nPlease answer this question: %s\n\n", input.Question)
	b.WriteString("Provide a concise and helpful answer based only on the information in the context. If the context doesn't contain enough information to answer the question accurately, acknowledge this limitation in your response.")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      askSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to answer question: %w", err)
	}
	return string(resp.Content), nil
}
