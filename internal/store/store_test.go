package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/vidquiz/internal/domain"
	"github.com/abhisek/vidquiz/internal/quizgen"
	"github.com/abhisek/vidquiz/internal/transcript"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testVideo(id string) *domain.Video {
	return &domain.Video{
		VideoID:      id,
		Title:        "Networking Basics",
		FilePath:     "/uploads/net.mp4",
		SubtitlePath: "/uploads/net.srt",
		Duration:     320,
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Segments: []transcript.Segment{
			{Index: 1, Text: "Welcome.", StartTime: 0, EndTime: 3},
			{Index: 2, Text: "Let's begin.", StartTime: 3, EndTime: 6},
		},
		Chunks: []transcript.Chunk{
			{StartIndex: 1, EndIndex: 2, StartTime: 0, EndTime: 6, Text: "Welcome. Let's begin."},
		},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestVideoPutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Videos().Put(ctx, testVideo("v1")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Videos().Get(ctx, "v1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Networking Basics" {
		t.Errorf("unexpected title: %q", got.Title)
	}
	if len(got.Segments) != 2 || len(got.Chunks) != 1 {
		t.Errorf("transcript payloads did not round-trip: %d segments, %d chunks",
			len(got.Segments), len(got.Chunks))
	}
	if !got.CreatedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestVideoGet_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Videos().Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestVideoPut_Upsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	v := testVideo("v1")
	if err := s.Videos().Put(ctx, v); err != nil {
		t.Fatalf("put: %v", err)
	}

	v.Title = "Updated Title"
	if err := s.Videos().Put(ctx, v); err != nil {
		t.Fatalf("second put: %v", err)
	}

	videos, err := s.Videos().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("expected 1 video after upsert, got %d", len(videos))
	}
	if videos[0].Title != "Updated Title" {
		t.Errorf("upsert did not replace title: %q", videos[0].Title)
	}
}

func TestVideoDelete_CascadesToQuestions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Videos().Put(ctx, testVideo("v1")); err != nil {
		t.Fatal(err)
	}
	items := []quizgen.Item{
		&quizgen.FillInBlank{
			ItemMeta: quizgen.ItemMeta{
				QuestionID: "v1_0_0", VideoID: "v1",
				QuestionText: "A _____.",
			},
			CorrectAnswer: "word",
		},
	}
	if err := s.Questions().Replace(ctx, "v1", items); err != nil {
		t.Fatal(err)
	}

	if err := s.Videos().Delete(ctx, "v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	n, err := s.Questions().CountForVideo(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected cascade delete, %d questions remain", n)
	}

	if err := s.Videos().Delete(ctx, "v1"); !errors.Is(err, domain.ErrVideoNotFound) {
		t.Errorf("expected ErrVideoNotFound on double delete, got %v", err)
	}
}

func TestQuestionReplaceAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Videos().Put(ctx, testVideo("v1")); err != nil {
		t.Fatal(err)
	}

	first := []quizgen.Item{
		&quizgen.MultipleChoice{
			ItemMeta: quizgen.ItemMeta{QuestionID: "v1_0_0", VideoID: "v1", QuestionText: "Pick."},
			Options: []quizgen.Option{
				{ID: "A", Text: "one"}, {ID: "B", Text: "two"},
				{ID: "C", Text: "three"}, {ID: "D", Text: "four"},
			},
			CorrectAnswer: "C",
		},
		&quizgen.ShortAnswer{
			ItemMeta:     quizgen.ItemMeta{QuestionID: "v1_10_1", VideoID: "v1", QuestionText: "Why?"},
			SampleAnswer: "Because.",
			KeyPoints:    []string{"reason"},
		},
	}
	if err := s.Questions().Replace(ctx, "v1", first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.Questions().Get(ctx, "v1_0_0")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	mc, ok := got.(*quizgen.MultipleChoice)
	if !ok {
		t.Fatalf("expected *quizgen.MultipleChoice, got %T", got)
	}
	if mc.CorrectAnswer != "C" {
		t.Errorf("unexpected correct answer: %q", mc.CorrectAnswer)
	}

	// A second replace swaps the whole set.
	second := []quizgen.Item{
		&quizgen.FillInBlank{
			ItemMeta:      quizgen.ItemMeta{QuestionID: "v1_20_2", VideoID: "v1", QuestionText: "A _____."},
			CorrectAnswer: "gap",
		},
	}
	if err := s.Questions().Replace(ctx, "v1", second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	items, err := s.Questions().ForVideo(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 question after replace, got %d", len(items))
	}
	if items[0].Meta().QuestionID != "v1_20_2" {
		t.Errorf("old questions survived replace: %q", items[0].Meta().QuestionID)
	}

	if _, err := s.Questions().Get(ctx, "v1_0_0"); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}
