package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vidquiz/internal/domain"
)

func TestIsVideoURL(t *testing.T) {
	cases := map[string]bool{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ": true,
		"https://youtu.be/dQw4w9WgXcQ":                true,
		"https://vimeo.com/12345":                     false,
		"/uploads/lecture.mp4":                        false,
		"": false,
	}
	for url, want := range cases {
		assert.Equal(t, want, IsVideoURL(url), "IsVideoURL(%q)", url)
	}
}

func TestExtractVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":       "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s": "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                      "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=share":             "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL123":          "",
		"https://example.com/watch?v=nope":                  "",
	}
	for url, want := range cases {
		assert.Equal(t, want, ExtractVideoID(url), "ExtractVideoID(%q)", url)
	}
}

const sampleTimedtext = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
	<text start="0.5" dur="3.2">Welcome to the lecture.</text>
	<text start="4.0" dur="2.0">Let&#39;s begin.</text>
</transcript>`

func TestTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.URL.Query().Get("v"))
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		w.Write([]byte(sampleTimedtext))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	segments, err := client.Transcript(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, 1, segments[0].Index)
	assert.Equal(t, 0.5, segments[0].StartTime)
	assert.InDelta(t, 3.7, segments[0].EndTime, 1e-9)
	assert.Equal(t, "Let's begin.", segments[1].Text, "entities should be unescaped")
}

func TestTranscript_NoCaptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript></transcript>`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Transcript(context.Background(), "abc123")
	require.ErrorIs(t, err, domain.ErrNoContent)
}

func TestTranscript_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Transcript(context.Background(), "abc123")
	require.Error(t, err)
}

func TestTranscript_EmptyID(t *testing.T) {
	client := NewClient()
	_, err := client.Transcript(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrMalformedInput)
}
