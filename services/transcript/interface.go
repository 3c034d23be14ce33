package transcript

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type Service interface {
	// Fetch returns the caption segments of a video in playback order.
	Fetch(ctx context.Context, videoID string) (*Transcript, error)
}

type Config struct {
	// WatchURL is the watch page prefix the video id is appended to.
	WatchURL string
	// Languages are the preferred caption language codes, best first.
	Languages []string
	Timeout   time.Duration
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// Segment is one caption cue.
type Segment struct {
	Text     string        `json:"text"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

type Transcript struct {
	VideoID  string    `json:"video_id"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Text joins segment texts with single spaces, in order.
func (t *Transcript) Text() string {
	if t == nil {
		return ""
	}
	texts := make([]string, len(t.Segments))
	for i, seg := range t.Segments {
		texts[i] = seg.Text
	}
	return strings.Join(texts, " ")
}
