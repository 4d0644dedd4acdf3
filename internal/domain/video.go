package domain

import (
	"time"

	"github.com/abhisek/vidquiz/internal/transcript"
)

// Video is a registered video with its parsed transcript.
type Video struct {
	VideoID      string  `json:"video_id"`
	Title        string  `json:"title"`
	FilePath     string  `json:"file_path"`
	SubtitlePath string  `json:"subtitle_path,omitempty"`
	Duration     float64 `json:"duration,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Segments is the parsed transcript, empty for videos whose
	// captions could not be fetched.
	Segments []transcript.Segment `json:"subtitle_segments,omitempty"`

	// Chunks are the grouped transcript windows questions are
	// generated from.
	Chunks []transcript.Chunk `json:"topic_chunks,omitempty"`
}

// VideoSummary is the listing view of a video: identity plus counts
// instead of full transcript payloads.
type VideoSummary struct {
	VideoID       string    `json:"video_id"`
	Title         string    `json:"title"`
	FilePath      string    `json:"file_path"`
	SubtitlePath  string    `json:"subtitle_path,omitempty"`
	Duration      float64   `json:"duration,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	SegmentCount  int       `json:"subtitle_segments_count"`
	ChunkCount    int       `json:"topic_chunks_count"`
	QuestionCount int       `json:"questions_count"`
}

// Summary builds the listing view. questionCount is supplied by the
// caller since questions are stored separately.
func (v *Video) Summary(questionCount int) VideoSummary {
	return VideoSummary{
		VideoID:       v.VideoID,
		Title:         v.Title,
		FilePath:      v.FilePath,
		SubtitlePath:  v.SubtitlePath,
		Duration:      v.Duration,
		CreatedAt:     v.CreatedAt,
		SegmentCount:  len(v.Segments),
		ChunkCount:    len(v.Chunks),
		QuestionCount: questionCount,
	}
}
