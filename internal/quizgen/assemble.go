package quizgen

import (
	"context"
	"strconv"
)

// QuestionID builds the canonical question ID from a video ID, the
// source chunk's start time and a per-quiz counter. The counter makes
// IDs unique even when several questions come from the same chunk.
func QuestionID(videoID string, startTime float64, counter int) string {
	return videoID + "_" + strconv.FormatFloat(startTime, 'f', -1, 64) + "_" + strconv.Itoa(counter)
}

// AssembleInput describes one quiz assembly run over a video's chunks.
type AssembleInput struct {
	// Chunks is the video's full ordered chunk list.
	Chunks []SourceChunk

	// VideoID stamps every produced item.
	VideoID string

	// TargetCount is the number of questions wanted.
	TargetCount int

	// Type is the question type to generate.
	Type ItemType

	// Counter is the starting value for question ID numbering.
	Counter int
}

// SourceChunk is the slice of transcript a question is generated from.
type SourceChunk struct {
	Text      string
	StartTime float64
	EndTime   float64
}

// AssembleResult holds the produced items and the counter value to use
// for the next assembly run on the same video.
type AssembleResult struct {
	Items       []Item
	NextCounter int
}

// Assembler turns a video's chunks into a quiz of stamped items.
type Assembler struct {
	generator Generator
}

// NewAssembler creates an Assembler backed by the given generator.
func NewAssembler(g Generator) *Assembler {
	return &Assembler{generator: g}
}

// Assemble selects evenly spaced chunks, generates one question per
// chunk and stamps each item with IDs and timestamps. Chunks whose
// generation fails contribute fallback questions instead, so a quiz is
// produced whenever any chunks exist. Unused chunks back-fill the quiz
// when the primary pass comes up short. The result never exceeds
// TargetCount items.
func (a *Assembler) Assemble(ctx context.Context, input AssembleInput) AssembleResult {
	counter := input.Counter
	items := make([]Item, 0, input.TargetCount)

	selected := SelectChunks(len(input.Chunks), input.TargetCount)
	used := make(map[int]bool, len(selected))

	for _, idx := range selected {
		used[idx] = true
		items, counter = a.appendFromChunk(ctx, items, input, input.Chunks[idx], counter)
		if len(items) >= input.TargetCount {
			break
		}
	}

	for idx := 0; idx < len(input.Chunks) && len(items) < input.TargetCount; idx++ {
		if used[idx] {
			continue
		}
		items, counter = a.appendFromChunk(ctx, items, input, input.Chunks[idx], counter)
	}

	if len(items) > input.TargetCount {
		items = items[:input.TargetCount]
	}
	return AssembleResult{Items: items, NextCounter: counter}
}

func (a *Assembler) appendFromChunk(ctx context.Context, items []Item, input AssembleInput, chunk SourceChunk, counter int) ([]Item, int) {
	generated, err := a.generator.Generate(ctx, GenerateInput{
		Text:  chunk.Text,
		Count: 1,
		Type:  input.Type,
	})
	if err != nil || len(generated) == 0 {
		generated = FallbackItems(input.Type)
	}

	for _, item := range generated {
		meta := item.Meta()
		meta.QuestionID = QuestionID(input.VideoID, chunk.StartTime, counter)
		meta.VideoID = input.VideoID
		meta.TimestampStart = chunk.StartTime
		meta.TimestampEnd = chunk.EndTime
		counter++
		items = append(items, item)
	}
	return items, counter
}
