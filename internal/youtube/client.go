package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/abhisek/vidquiz/internal/domain"
	"github.com/abhisek/vidquiz/internal/transcript"
)

const defaultBaseURL = "https://www.youtube.com/api/timedtext"

// Client fetches caption tracks from YouTube's timedtext endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	lang       string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the timedtext endpoint, used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTimeout sets the HTTP timeout for transcript fetches.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLanguage sets the caption language code. Default is "en".
func WithLanguage(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

// NewClient creates a timedtext client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		lang:       "en",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// timedtext is the caption track XML document.
type timedtext struct {
	Texts []struct {
		Start    float64 `xml:"start,attr"`
		Duration float64 `xml:"dur,attr"`
		Body     string  `xml:",chardata"`
	} `xml:"text"`
}

// Transcript fetches the caption track for a video and converts it to
// transcript segments. Returns domain.ErrNoContent when the video has
// no captions in the configured language.
func (c *Client) Transcript(ctx context.Context, videoID string) ([]transcript.Segment, error) {
	if videoID == "" {
		return nil, fmt.Errorf("%w: empty video ID", domain.ErrMalformedInput)
	}

	u := fmt.Sprintf("%s?lang=%s&v=%s", c.baseURL, url.QueryEscape(c.lang), url.QueryEscape(videoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch transcript: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var doc timedtext
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	if len(doc.Texts) == 0 {
		return nil, fmt.Errorf("%w: no captions for video %s", domain.ErrNoContent, videoID)
	}

	segments := make([]transcript.Segment, 0, len(doc.Texts))
	for i, t := range doc.Texts {
		segments = append(segments, transcript.Segment{
			Index:     i + 1,
			Text:      html.UnescapeString(t.Body),
			StartTime: t.Start,
			EndTime:   t.Start + t.Duration,
		})
	}
	return segments, nil
}
