package transcript

import (
	"fmt"
	"math"
	"strings"
)

// ContextWindowSeconds is the half-width of the symmetric window scanned
// around a reference timestamp when assembling surrounding context.
const ContextWindowSeconds = 30

// ContextAround returns the space-joined text of all segments whose interval
// starts or ends within ContextWindowSeconds of the timestamp, or which
// contain the timestamp outright. When nothing overlaps, a literal
// placeholder is returned instead of an empty string so downstream prompts
// always have something to reference.
func ContextAround(segments []Segment, timestamp float64) string {
	var texts []string
	for _, seg := range segments {
		near := math.Abs(seg.StartTime-timestamp) < ContextWindowSeconds ||
			math.Abs(seg.EndTime-timestamp) < ContextWindowSeconds
		contains := seg.StartTime <= timestamp && seg.EndTime >= timestamp
		if near || contains {
			texts = append(texts, seg.Text)
		}
	}
	if len(texts) == 0 {
		return fmt.Sprintf("No specific context available for timestamp %g in this video.", timestamp)
	}
	return strings.Join(texts, " ")
}

// Overlapping returns the space-joined text of all segments whose interval
// overlaps [start, end]. Returns "" when nothing overlaps; callers that
// need a placeholder use ContextAround instead.
func Overlapping(segments []Segment, start, end float64) string {
	var texts []string
	for _, seg := range segments {
		if seg.StartTime <= end && seg.EndTime >= start {
			texts = append(texts, seg.Text)
		}
	}
	return strings.Join(texts, " ")
}
