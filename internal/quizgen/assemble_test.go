package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/abhisek/vidquiz/internal/llm"
)

func testChunks(n int) []SourceChunk {
	chunks := make([]SourceChunk, n)
	for i := range chunks {
		chunks[i] = SourceChunk{
			Text:      fmt.Sprintf("chunk %d content", i),
			StartTime: float64(i * 10),
			EndTime:   float64(i*10 + 10),
		}
	}
	return chunks
}

func fibBatch(answer string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{
		"questions": [
			{
				"type": "fill_in_the_blank",
				"question_text": "The answer is _____.",
				"correct_answer": %q,
				"explanation": "It just is."
			}
		]
	}`, answer))}
}

func TestAssemble_StampsMetadata(t *testing.T) {
	mock := llm.NewMockProvider(fibBatch("alpha"), fibBatch("beta"))
	asm := NewAssembler(New(mock, DefaultConfig()))

	result := asm.Assemble(context.Background(), AssembleInput{
		Chunks:      testChunks(2),
		VideoID:     "vid1",
		TargetCount: 2,
		Type:        TypeFillInBlank,
		Counter:     0,
	})

	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.NextCounter != 2 {
		t.Errorf("expected next counter 2, got %d", result.NextCounter)
	}

	first := result.Items[0].Meta()
	if first.QuestionID != "vid1_0_0" {
		t.Errorf("unexpected first question ID: %q", first.QuestionID)
	}
	if first.VideoID != "vid1" {
		t.Errorf("unexpected video ID: %q", first.VideoID)
	}
	if first.TimestampStart != 0 || first.TimestampEnd != 10 {
		t.Errorf("unexpected timestamps: %g-%g", first.TimestampStart, first.TimestampEnd)
	}

	second := result.Items[1].Meta()
	if second.QuestionID != "vid1_10_1" {
		t.Errorf("unexpected second question ID: %q", second.QuestionID)
	}
}

func TestAssemble_UniqueIDs(t *testing.T) {
	// Every call fails, so every selected chunk yields a fallback item.
	mock := llm.NewMockProvider()
	asm := NewAssembler(New(mock, DefaultConfig()))

	result := asm.Assemble(context.Background(), AssembleInput{
		Chunks:      testChunks(12),
		VideoID:     "vid1",
		TargetCount: 5,
		Type:        TypeMultipleChoice,
		Counter:     0,
	})

	if len(result.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(result.Items))
	}

	seen := make(map[string]bool)
	for _, item := range result.Items {
		id := item.Meta().QuestionID
		if seen[id] {
			t.Errorf("duplicate question ID %q", id)
		}
		seen[id] = true

		if item.Type() != TypeMultipleChoice {
			t.Errorf("expected multiple_choice fallback, got %q", item.Type())
		}
	}
}

func TestAssemble_TruncatesToTarget(t *testing.T) {
	// Mixed fallback yields 3 items per chunk, which overshoots a
	// target of 4 after two chunks.
	mock := llm.NewMockProvider()
	asm := NewAssembler(New(mock, DefaultConfig()))

	result := asm.Assemble(context.Background(), AssembleInput{
		Chunks:      testChunks(10),
		VideoID:     "vid1",
		TargetCount: 4,
		Type:        TypeMixed,
		Counter:     0,
	})

	if len(result.Items) != 4 {
		t.Errorf("expected 4 items after truncation, got %d", len(result.Items))
	}
}

func TestAssemble_NoChunks(t *testing.T) {
	mock := llm.NewMockProvider()
	asm := NewAssembler(New(mock, DefaultConfig()))

	result := asm.Assemble(context.Background(), AssembleInput{
		Chunks:      nil,
		VideoID:     "vid1",
		TargetCount: 10,
		Type:        TypeMultipleChoice,
		Counter:     7,
	})

	if len(result.Items) != 0 {
		t.Errorf("expected no items for empty chunk list, got %d", len(result.Items))
	}
	if result.NextCounter != 7 {
		t.Errorf("counter should be unchanged, got %d", result.NextCounter)
	}
}

func TestAssemble_BackfillsFromUnusedChunks(t *testing.T) {
	// First selected chunk succeeds with zero questions forces the
	// generator to return fallbacks; with target > chunk count the
	// backfill loop must not revisit used chunks.
	mock := llm.NewMockProvider()
	asm := NewAssembler(New(mock, DefaultConfig()))

	result := asm.Assemble(context.Background(), AssembleInput{
		Chunks:      testChunks(3),
		VideoID:     "vid1",
		TargetCount: 10,
		Type:        TypeShortAnswer,
		Counter:     0,
	})

	// 3 chunks, 1 fallback each.
	if len(result.Items) != 3 {
		t.Errorf("expected 3 items, got %d", len(result.Items))
	}
}

func TestAssemble_CounterContinuesAcrossRuns(t *testing.T) {
	mock := llm.NewMockProvider()
	asm := NewAssembler(New(mock, DefaultConfig()))

	first := asm.Assemble(context.Background(), AssembleInput{
		Chunks:      testChunks(4),
		VideoID:     "vid1",
		TargetCount: 2,
		Type:        TypeFillInBlank,
		Counter:     0,
	})
	second := asm.Assemble(context.Background(), AssembleInput{
		Chunks:      testChunks(4),
		VideoID:     "vid1",
		TargetCount: 2,
		Type:        TypeFillInBlank,
		Counter:     first.NextCounter,
	})

	ids := make(map[string]bool)
	for _, item := range append(first.Items, second.Items...) {
		id := item.Meta().QuestionID
		if ids[id] {
			t.Errorf("duplicate question ID across runs: %q", id)
		}
		ids[id] = true
	}
}

func TestQuestionID_Format(t *testing.T) {
	if got := QuestionID("abc", 42.5, 3); got != "abc_42.5_3" {
		t.Errorf("QuestionID = %q, want abc_42.5_3", got)
	}
	if got := QuestionID("abc", 30, 0); got != "abc_30_0" {
		t.Errorf("QuestionID = %q, want abc_30_0", got)
	}
}
