package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nijaru/yt-notes/errors"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

type service struct {
	config Config
	client *http.Client
	logger *logrus.Logger
}

// NewService creates a transcript service that reads captions from the
// YouTube watch page.
func NewService(config Config) Service {
	if len(config.Languages) == 0 {
		config.Languages = []string{"en"}
	}
	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	return &service{
		config: config,
		client: client,
		logger: logrus.StandardLogger(),
	}
}

// Fetch never distinguishes failure causes to the caller: every error is a
// TranscriptUnavailable error wrapping the underlying cause.
func (s *service) Fetch(ctx context.Context, videoID string) (*Transcript, error) {
	const op = "TranscriptService.Fetch"
	logger := s.logger.WithContext(ctx).WithField("video_id", videoID)

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	transcript, err := s.fetch(ctx, videoID)
	if err != nil {
		logger.WithError(err).Warn("Transcript unavailable")
		return nil, errors.TranscriptUnavailable(op, err)
	}

	logger.WithFields(logrus.Fields{
		"language": transcript.Language,
		"segments": len(transcript.Segments),
		"duration": time.Since(start),
	}).Debug("Transcript fetched")

	return transcript, nil
}

func (s *service) fetch(ctx context.Context, videoID string) (*Transcript, error) {
	tracks, err := s.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, s.config.Languages)
	if !ok {
		return nil, pkgerrors.Errorf("no caption track for languages %v", s.config.Languages)
	}

	segments, err := s.timedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Transcript{
		VideoID:  videoID,
		Language: track.LanguageCode,
		Segments: segments,
	}, nil
}

func (s *service) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := s.get(ctx, s.config.WatchURL+videoID, maxWatchPageSize, func(req *http.Request) {
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "watch page")
	}

	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, pkgerrors.New("ytInitialPlayerResponse not found in watch page")
	}
	raw := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if raw == nil {
		return nil, pkgerrors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return nil, pkgerrors.Wrap(err, "decode ytInitialPlayerResponse")
	}

	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return nil, pkgerrors.Errorf("captions unavailable: %s", player.PlayabilityStatus.Reason)
		}
		return nil, pkgerrors.New("no captions in player response")
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, pkgerrors.New("no caption tracks")
	}
	return tracks, nil
}

func (s *service) timedText(ctx context.Context, baseURL string) ([]Segment, error) {
	body, err := s.get(ctx, baseURL, maxCaptionSize, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "fetch timedtext")
	}
	return parseTimedText(body)
}

func (s *service) get(ctx context.Context, url string, limit int64, decorate func(*http.Request)) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUA)
	if decorate != nil {
		decorate(req)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

func parseTimedText(body []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, pkgerrors.Wrap(err, "parse timedtext XML")
	}

	segments := make([]Segment, 0, len(tt.Lines))
	for _, cue := range tt.Lines {
		text := cleanText(cue.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    parseSeconds(cue.Start),
			Duration: parseSeconds(cue.Duration),
		})
	}
	return segments, nil
}

// cleanText undoes the second level of entity escaping YouTube applies and
// drops inline formatting tags.
func cleanText(s string) string {
	s = html.UnescapeString(s)
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

func parseSeconds(s string) time.Duration {
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
