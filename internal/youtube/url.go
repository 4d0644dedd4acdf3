// Package youtube resolves YouTube URLs and fetches caption tracks.
package youtube

import "strings"

// IsVideoURL reports whether url points at a YouTube video.
func IsVideoURL(url string) bool {
	return strings.Contains(url, "youtube.com/watch") || strings.Contains(url, "youtu.be/")
}

// ExtractVideoID pulls the 11-character video ID out of a watch or
// short URL. Returns "" when no ID is present.
func ExtractVideoID(url string) string {
	if strings.Contains(url, "youtube.com/watch") {
		_, after, found := strings.Cut(url, "v=")
		if !found {
			return ""
		}
		id, _, _ := strings.Cut(after, "&")
		return id
	}

	if _, after, found := strings.Cut(url, "youtu.be/"); found {
		id, _, _ := strings.Cut(after, "?")
		return id
	}
	return ""
}
