package quizgen

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshal_TypeDiscriminator(t *testing.T) {
	item := &FillInBlank{
		ItemMeta: ItemMeta{
			QuestionID:   "v_0_0",
			VideoID:      "v",
			QuestionText: "Fill the _____.",
		},
		CorrectAnswer: "blank",
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"type":"fill_in_the_blank"`) {
		t.Errorf("marshaled item missing type discriminator: %s", data)
	}
}

func TestUnmarshalItem_RoundTrip(t *testing.T) {
	original := &MultipleChoice{
		ItemMeta: ItemMeta{
			QuestionID:     "v_10_2",
			VideoID:        "v",
			TimestampStart: 10,
			TimestampEnd:   20,
			QuestionText:   "Pick one.",
			Explanation:    "Because.",
		},
		Options: []Option{
			{ID: "A", Text: "first"},
			{ID: "B", Text: "second"},
			{ID: "C", Text: "third"},
			{ID: "D", Text: "fourth"},
		},
		CorrectAnswer: "B",
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	decoded, err := UnmarshalItem(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	mc, ok := decoded.(*MultipleChoice)
	if !ok {
		t.Fatalf("expected *MultipleChoice, got %T", decoded)
	}
	if mc.QuestionID != "v_10_2" || mc.CorrectAnswer != "B" || len(mc.Options) != 4 {
		t.Errorf("round trip lost data: %+v", mc)
	}
}

func TestUnmarshalItem_UnknownType(t *testing.T) {
	_, err := UnmarshalItem([]byte(`{"type": "essay", "question_text": "?"}`))
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestUnmarshalItems(t *testing.T) {
	data := []byte(`[
		{"type": "short_answer", "question_text": "Why?", "sample_answer": "Because.", "key_points": ["reason"]},
		{"type": "fill_in_the_blank", "question_text": "A _____.", "correct_answer": "word"}
	]`)

	items, err := UnmarshalItems(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Type() != TypeShortAnswer || items[1].Type() != TypeFillInBlank {
		t.Errorf("wrong types: %q, %q", items[0].Type(), items[1].Type())
	}
}

func TestValidType(t *testing.T) {
	for _, typ := range []ItemType{TypeMultipleChoice, TypeFillInBlank, TypeShortAnswer, TypeMixed} {
		if !ValidType(typ) {
			t.Errorf("ValidType(%q) = false", typ)
		}
	}
	if ValidType("essay") {
		t.Error("ValidType(essay) should be false")
	}
}
