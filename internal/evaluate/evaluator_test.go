package evaluate

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/abhisek/vidquiz/internal/llm"
	"github.com/abhisek/vidquiz/internal/quizgen"
)

func testEvaluator(mock *llm.MockProvider) *Evaluator {
	return New(mock, DefaultConfig(), rand.New(rand.NewSource(1)))
}

func mcQuestion() *quizgen.MultipleChoice {
	return &quizgen.MultipleChoice{
		ItemMeta: quizgen.ItemMeta{
			QuestionID:     "vid_10_0",
			VideoID:        "vid",
			TimestampStart: 10,
			TimestampEnd:   20,
			QuestionText:   "What does TCP provide?",
			Explanation:    "TCP provides reliable, ordered delivery.",
		},
		Options: []quizgen.Option{
			{ID: "A", Text: "Reliable delivery"},
			{ID: "B", Text: "Encryption"},
			{ID: "C", Text: "Name resolution"},
			{ID: "D", Text: "Routing"},
		},
		CorrectAnswer: "B",
	}
}

func feedbackJSON(text string) llm.MockResponse {
	payload := map[string]any{
		"feedback":             text,
		"additional_resources": []map[string]string{},
	}
	data, _ := json.Marshal(payload)
	return llm.MockResponse{Content: data}
}

func TestEvaluate_MultipleChoice_Correct(t *testing.T) {
	mock := llm.NewMockProvider(feedbackJSON("Nice work, that covers the reliability guarantees discussed in the video."))
	ev := testEvaluator(mock)

	result := ev.Evaluate(context.Background(), mcQuestion(), "B", "")
	if !result.IsCorrect {
		t.Error("expected correct")
	}
	if result.ScorePercentage != nil || result.IsPartial != nil {
		t.Error("multiple choice results carry no score or partial state")
	}
	if result.QuestionID != "vid_10_0" || result.VideoID != "vid" {
		t.Errorf("result missing question identity: %+v", result)
	}
}

func TestEvaluate_MultipleChoice_CaseSensitive(t *testing.T) {
	mock := llm.NewMockProvider(feedbackJSON("The lowercase id does not name an option, so this one goes down as a miss."))
	ev := testEvaluator(mock)

	result := ev.Evaluate(context.Background(), mcQuestion(), "b", "")
	if result.IsCorrect {
		t.Error("lowercase option id must not match")
	}
}

func TestEvaluate_MultipleChoice_FallbackFeedback(t *testing.T) {
	mock := llm.NewMockProvider() // every call fails
	ev := testEvaluator(mock)

	result := ev.Evaluate(context.Background(), mcQuestion(), "A", "")
	if result.IsCorrect {
		t.Error("A is not the correct option")
	}
	if !strings.Contains(result.Feedback, "The correct answer is B (Encryption).") {
		t.Errorf("fallback feedback missing correct answer: %q", result.Feedback)
	}
	if len(result.Resources) != 3 {
		t.Errorf("expected 3 fallback resources, got %d", len(result.Resources))
	}

	var starterFound bool
	for _, s := range incorrectStarters {
		if strings.HasPrefix(result.Feedback, s) {
			starterFound = true
			break
		}
	}
	if !starterFound {
		t.Errorf("feedback does not open with a known starter: %q", result.Feedback)
	}
}

func TestEvaluate_MultipleChoice_ShortLLMFeedbackFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(feedbackJSON("ok"))
	ev := testEvaluator(mock)

	result := ev.Evaluate(context.Background(), mcQuestion(), "B", "")
	if strings.Contains(result.Feedback, "ok") && len(result.Feedback) < DefaultConfig().MinFeedbackLength {
		t.Errorf("short LLM feedback should be replaced: %q", result.Feedback)
	}
	if len(result.Resources) != 3 {
		t.Errorf("expected fallback resources, got %d", len(result.Resources))
	}
}

func fibQuestion() *quizgen.FillInBlank {
	return &quizgen.FillInBlank{
		ItemMeta: quizgen.ItemMeta{
			QuestionID:   "vid_30_1",
			VideoID:      "vid",
			QuestionText: "Packets are forwarded by a _____.",
			Explanation:  "Routers forward packets between networks.",
		},
		CorrectAnswer: "router",
	}
}

func TestEvaluate_FillInBlank_Normalized(t *testing.T) {
	mock := llm.NewMockProvider(feedbackJSON("Exactly, routers are the forwarding devices covered in this segment."))
	ev := testEvaluator(mock)

	result := ev.Evaluate(context.Background(), fibQuestion(), "  ROUTER  ", "")
	if !result.IsCorrect {
		t.Error("whitespace and case should not matter")
	}
	if result.Partial() {
		t.Error("exact match must not be partial")
	}
}

func TestEvaluate_FillInBlank_SubstringIsPartial(t *testing.T) {
	cases := []string{"route", "core router"} // each direction of containment
	for _, answer := range cases {
		mock := llm.NewMockProvider(feedbackJSON("Close: the expected term was router, and your answer overlaps with it."))
		ev := testEvaluator(mock)

		result := ev.Evaluate(context.Background(), fibQuestion(), answer, "")
		if result.IsCorrect {
			t.Errorf("%q should not be fully correct", answer)
		}
		if !result.Partial() {
			t.Errorf("%q should be partial", answer)
		}
	}
}

func TestEvaluate_FillInBlank_EmptyAnswerIsPartial(t *testing.T) {
	// An empty string is contained in every correct answer, so a blank
	// submission lands in the partial state, never correct.
	for _, answer := range []string{"", "   "} {
		mock := llm.NewMockProvider()
		ev := testEvaluator(mock)

		result := ev.Evaluate(context.Background(), fibQuestion(), answer, "")
		if result.IsCorrect {
			t.Errorf("blank answer %q must not be correct", answer)
		}
		if !result.Partial() {
			t.Errorf("blank answer %q should be partial", answer)
		}
	}
}

func TestEvaluate_FillInBlank_FallbackTemplates(t *testing.T) {
	mock := llm.NewMockProvider()
	ev := testEvaluator(mock)

	result := ev.Evaluate(context.Background(), fibQuestion(), "switch", "")
	if !strings.Contains(result.Feedback, "The correct answer is 'router'.") {
		t.Errorf("unexpected fallback feedback: %q", result.Feedback)
	}

	partial := ev.Evaluate(context.Background(), fibQuestion(), "route", "")
	if !strings.Contains(partial.Feedback, "is close to the correct answer 'router'") {
		t.Errorf("unexpected partial feedback: %q", partial.Feedback)
	}
}

func TestResult_FieldsPerQuestionType(t *testing.T) {
	ev := testEvaluator(llm.NewMockProvider())

	marshal := func(r *Result) map[string]any {
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal result: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal result: %v", err)
		}
		return decoded
	}

	mc := marshal(ev.Evaluate(context.Background(), mcQuestion(), "B", ""))
	for _, key := range []string{"is_partial", "score_percentage"} {
		if _, ok := mc[key]; ok {
			t.Errorf("multiple choice result should omit %q", key)
		}
	}

	fib := marshal(ev.Evaluate(context.Background(), fibQuestion(), "router", ""))
	if v, ok := fib["is_partial"]; !ok || v != false {
		t.Errorf("fill in the blank result should carry is_partial=false, got %v", fib["is_partial"])
	}
	if _, ok := fib["score_percentage"]; ok {
		t.Error("fill in the blank result should omit score_percentage")
	}

	sa := marshal(ev.Evaluate(context.Background(), saQuestion(), "Layers keep protocols independent of each other.", ""))
	if _, ok := sa["score_percentage"]; !ok {
		t.Error("short answer result should carry score_percentage")
	}
	if _, ok := sa["is_partial"]; !ok {
		t.Error("short answer result should carry is_partial")
	}
}
