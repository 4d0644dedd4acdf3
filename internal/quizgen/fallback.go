package quizgen

import "fmt"

// FallbackItems returns canned questions of the requested type, used
// when LLM generation fails for a chunk. The caller fills in IDs and
// timestamp metadata, as with generated items.
func FallbackItems(qtype ItemType) []Item {
	var items []Item

	if qtype == TypeMultipleChoice || qtype == TypeMixed {
		items = append(items, &MultipleChoice{
			ItemMeta: ItemMeta{
				QuestionText: "What is the main concept discussed in this segment?",
				Explanation:  "The segment focuses primarily on introducing basic principles and terminology.",
			},
			Options: []Option{
				{ID: "A", Text: "Basic principles and terminology"},
				{ID: "B", Text: "Advanced implementation details"},
				{ID: "C", Text: "Historical context and development"},
				{ID: "D", Text: "Comparison with alternative approaches"},
			},
			CorrectAnswer: "A",
		})
	}

	if qtype == TypeFillInBlank || qtype == TypeMixed {
		items = append(items, &FillInBlank{
			ItemMeta: ItemMeta{
				QuestionText: "The main topic discussed in this segment is _____.",
				Explanation:  "This segment introduces an important concept central to understanding the topic.",
			},
			CorrectAnswer: "important concept",
		})
	}

	if qtype == TypeShortAnswer || qtype == TypeMixed {
		items = append(items, &ShortAnswer{
			ItemMeta: ItemMeta{
				QuestionText: "Explain the main concept introduced in this segment.",
				Explanation:  "A good answer should identify the main concept and explain its importance.",
			},
			SampleAnswer: "The main concept involves understanding the fundamental principles discussed in this segment.",
			KeyPoints:    []string{"fundamental principles", "main concept"},
		})
	}

	return items
}

// DummyItems returns count generic questions for a video with no
// transcript content, keyed off the video title. Each question is
// pinned to a synthetic 20 second span every 30 seconds. IDs are
// assigned from counter; the next counter value follows the last item.
func DummyItems(videoID, title string, count int, qtype ItemType, counter int) ([]Item, int) {
	items := make([]Item, 0, count)

	for i := 0; i < count; i++ {
		start := 30.0 * float64(i)
		end := start + 20.0

		meta := ItemMeta{
			QuestionID:     QuestionID(videoID, start, counter),
			VideoID:        videoID,
			TimestampStart: start,
			TimestampEnd:   end,
		}
		counter++

		var item Item
		switch {
		case qtype == TypeMultipleChoice || (qtype == TypeMixed && i%3 == 0):
			meta.QuestionText = fmt.Sprintf("What is the main focus of this section about %s?", title)
			meta.Explanation = fmt.Sprintf("This section focuses on the basic principles of %s.", title)
			item = &MultipleChoice{
				ItemMeta: meta,
				Options: []Option{
					{ID: "A", Text: fmt.Sprintf("Basic principles of %s", title)},
					{ID: "B", Text: fmt.Sprintf("Advanced implementation of %s", title)},
					{ID: "C", Text: fmt.Sprintf("Historical context of %s", title)},
					{ID: "D", Text: fmt.Sprintf("Applications of %s", title)},
				},
				CorrectAnswer: "A",
			}
		case qtype == TypeFillInBlank || (qtype == TypeMixed && i%3 == 1):
			meta.QuestionText = "The main concept discussed in this section is _____."
			meta.Explanation = fmt.Sprintf("This section introduces the concept of %s.", title)
			item = &FillInBlank{
				ItemMeta:      meta,
				CorrectAnswer: title,
			}
		default:
			meta.QuestionText = fmt.Sprintf("Explain the key concepts related to %s discussed in this section.", title)
			meta.Explanation = fmt.Sprintf("A good answer should identify the main concepts of %s discussed in this section.", title)
			item = &ShortAnswer{
				ItemMeta:     meta,
				SampleAnswer: fmt.Sprintf("This section covers the fundamental concepts of %s, including its basic principles and applications.", title),
				KeyPoints: []string{
					fmt.Sprintf("Basic principles of %s", title),
					fmt.Sprintf("Applications of %s", title),
				},
			}
		}

		items = append(items, item)
	}

	return items, counter
}
