// Package subtitle reads SRT and WebVTT files into transcript segments.
package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"

	"github.com/abhisek/vidquiz/internal/domain"
	"github.com/abhisek/vidquiz/internal/transcript"
)

// Supported reports whether path has a subtitle extension we can parse.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt":
		return true
	}
	return false
}

// Parse reads a subtitle file into ordered transcript segments.
// Segment indexes are 1-based and times are seconds from the start of
// the video.
func Parse(path string) ([]transcript.Segment, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: unsupported subtitle format %q",
			domain.ErrMalformedInput, filepath.Ext(path))
	}

	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(subs.Items))
	for i, item := range subs.Items {
		var lines []string
		for _, line := range item.Lines {
			if s := strings.TrimSpace(line.String()); s != "" {
				lines = append(lines, s)
			}
		}

		segments = append(segments, transcript.Segment{
			Index:     i + 1,
			Text:      strings.Join(lines, " "),
			StartTime: item.StartAt.Seconds(),
			EndTime:   item.EndAt.Seconds(),
		})
	}
	return segments, nil
}
