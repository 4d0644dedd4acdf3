package transcript

import "strings"

// DefaultWindowSize is the number of consecutive segments grouped into one
// topic chunk when no explicit window size is given.
const DefaultWindowSize = 5

// Segment is a single timestamped piece of transcript text, as produced by
// a subtitle file or a transcript API. Segments are ordered by Index.
type Segment struct {
	Index     int     `json:"index"`
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Chunk is a contiguous group of segments treated as one unit of content
// for question generation. StartTime and EndTime always come from the
// first and last member segment.
type Chunk struct {
	StartIndex int       `json:"start_index"`
	EndIndex   int       `json:"end_index"`
	StartTime  float64   `json:"start_time"`
	EndTime    float64   `json:"end_time"`
	Text       string    `json:"text"`
	Segments   []Segment `json:"segments"`
}

// Group partitions segments into contiguous, non-overlapping windows of
// windowSize segments each; the final window may be shorter. Each window
// becomes one Chunk whose Text is the space-joined text of its members.
// An empty input yields an empty result. windowSize values below 1 fall
// back to DefaultWindowSize.
func Group(segments []Segment, windowSize int) []Chunk {
	if windowSize < 1 {
		windowSize = DefaultWindowSize
	}

	var chunks []Chunk
	for i := 0; i < len(segments); i += windowSize {
		end := i + windowSize
		if end > len(segments) {
			end = len(segments)
		}
		window := segments[i:end]

		texts := make([]string, len(window))
		for j, seg := range window {
			texts[j] = seg.Text
		}

		chunks = append(chunks, Chunk{
			StartIndex: window[0].Index,
			EndIndex:   window[len(window)-1].Index,
			StartTime:  window[0].StartTime,
			EndTime:    window[len(window)-1].EndTime,
			Text:       strings.Join(texts, " "),
			Segments:   window,
		})
	}
	return chunks
}
