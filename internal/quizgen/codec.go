package quizgen

import (
	"encoding/json"
	"fmt"
)

// Each concrete type marshals with an explicit "type" discriminator so
// stored and served questions are self-describing.

func (q *MultipleChoice) MarshalJSON() ([]byte, error) {
	type alias MultipleChoice
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{Type: TypeMultipleChoice, alias: (*alias)(q)})
}

func (q *FillInBlank) MarshalJSON() ([]byte, error) {
	type alias FillInBlank
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{Type: TypeFillInBlank, alias: (*alias)(q)})
}

func (q *ShortAnswer) MarshalJSON() ([]byte, error) {
	type alias ShortAnswer
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{Type: TypeShortAnswer, alias: (*alias)(q)})
}

// UnmarshalItem decodes a single question object, dispatching on its
// "type" field.
func UnmarshalItem(data []byte) (Item, error) {
	var head struct {
		Type ItemType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to decode question: %w", err)
	}

	switch head.Type {
	case TypeMultipleChoice:
		var q MultipleChoice
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("failed to decode multiple choice question: %w", err)
		}
		return &q, nil
	case TypeFillInBlank:
		var q FillInBlank
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("failed to decode fill in the blank question: %w", err)
		}
		return &q, nil
	case TypeShortAnswer:
		var q ShortAnswer
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("failed to decode short answer question: %w", err)
		}
		return &q, nil
	}
	return nil, fmt.Errorf("unknown question type %q", head.Type)
}

// UnmarshalItems decodes a JSON array of question objects.
func UnmarshalItems(data []byte) ([]Item, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to decode question list: %w", err)
	}

	items := make([]Item, 0, len(raws))
	for i, raw := range raws {
		item, err := UnmarshalItem(raw)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
