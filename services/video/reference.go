// Package video resolves user-supplied video references.
package video

import (
	"fmt"
	"strings"

	"github.com/nijaru/yt-notes/errors"
)

const (
	idMarker = "v="

	DefaultThumbnailURL = "http://img.youtube.com/vi/%s/0.jpg"
)

// ExtractID returns the text between the first "v=" and the next "&" or the
// end of rawURL. The identifier itself is not validated, so an empty or
// malformed one is returned as is.
func ExtractID(rawURL string) (string, error) {
	const op = "video.ExtractID"

	_, rest, found := strings.Cut(rawURL, idMarker)
	if !found {
		return "", errors.InvalidReference(op, fmt.Errorf("no %q marker in %q", idMarker, rawURL))
	}

	id, _, _ := strings.Cut(rest, "&")
	return id, nil
}

// Thumbnails builds preview image URLs from a format template with a single %s.
type Thumbnails struct {
	template string
}

func NewThumbnails(template string) Thumbnails {
	if template == "" {
		template = DefaultThumbnailURL
	}
	return Thumbnails{template: template}
}

func (t Thumbnails) URL(id string) string {
	return fmt.Sprintf(t.template, id)
}

// Reference is a parsed video URL.
type Reference struct {
	URL          string `json:"url"`
	ID           string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Resolve extracts the identifier from rawURL and derives its thumbnail.
func (t Thumbnails) Resolve(rawURL string) (*Reference, error) {
	id, err := ExtractID(rawURL)
	if err != nil {
		return nil, err
	}
	return &Reference{
		URL:          rawURL,
		ID:           id,
		ThumbnailURL: t.URL(id),
	}, nil
}
