package quizgen

// ItemType identifies the kind of question an Item represents.
type ItemType string

const (
	TypeMultipleChoice ItemType = "multiple_choice"
	TypeFillInBlank    ItemType = "fill_in_the_blank"
	TypeShortAnswer    ItemType = "short_answer"

	// TypeMixed is a generation request only. No Item ever carries it;
	// a mixed batch contains items of the three concrete types.
	TypeMixed ItemType = "mixed"
)

// ValidType reports whether t is an accepted generation request type.
func ValidType(t ItemType) bool {
	switch t {
	case TypeMultipleChoice, TypeFillInBlank, TypeShortAnswer, TypeMixed:
		return true
	}
	return false
}

// ItemMeta holds the fields shared by every question type.
type ItemMeta struct {
	// QuestionID is unique within a video, formed from the video ID,
	// the source chunk's start time, and a running counter.
	QuestionID string `json:"question_id"`

	// VideoID identifies the video this question was generated for.
	VideoID string `json:"video_id"`

	// TimestampStart and TimestampEnd bound the transcript span the
	// question covers, in seconds from the start of the video.
	TimestampStart float64 `json:"timestamp_start"`
	TimestampEnd   float64 `json:"timestamp_end"`

	// QuestionText is the prompt shown to the learner.
	QuestionText string `json:"question_text"`

	// Explanation is shown after the learner answers.
	Explanation string `json:"explanation"`
}

// Item is a generated question of one of the concrete types.
// Use a type switch over *MultipleChoice, *FillInBlank and
// *ShortAnswer to access type-specific fields.
type Item interface {
	// Meta returns the shared metadata. Never nil.
	Meta() *ItemMeta

	// Type returns the concrete question type.
	Type() ItemType
}

// Option is a single multiple choice option.
type Option struct {
	// ID is the option label, e.g. "A".
	ID string `json:"id"`

	// Text is the option body shown to the learner.
	Text string `json:"text"`
}

// MultipleChoice is a question with four options and one correct ID.
type MultipleChoice struct {
	ItemMeta

	Options []Option `json:"options"`

	// CorrectAnswer is the ID of the correct option. Matching is
	// exact and case sensitive: "b" does not match option "B".
	CorrectAnswer string `json:"correct_answer"`
}

func (q *MultipleChoice) Meta() *ItemMeta { return &q.ItemMeta }
func (q *MultipleChoice) Type() ItemType  { return TypeMultipleChoice }

// FillInBlank is a question whose text contains a blank to complete.
type FillInBlank struct {
	ItemMeta

	// CorrectAnswer is the word or short phrase that fills the blank.
	CorrectAnswer string `json:"correct_answer"`
}

func (q *FillInBlank) Meta() *ItemMeta { return &q.ItemMeta }
func (q *FillInBlank) Type() ItemType  { return TypeFillInBlank }

// ShortAnswer is a free-text question scored against key points.
type ShortAnswer struct {
	ItemMeta

	// SampleAnswer is an example of a full-marks response.
	SampleAnswer string `json:"sample_answer"`

	// KeyPoints are the facts a correct answer must cover.
	KeyPoints []string `json:"key_points"`
}

func (q *ShortAnswer) Meta() *ItemMeta { return &q.ItemMeta }
func (q *ShortAnswer) Type() ItemType  { return TypeShortAnswer }
