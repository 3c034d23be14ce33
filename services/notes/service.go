// Package notes runs the extract, fetch and summarize stages for one request.
package notes

import (
	"context"
	"strings"
	"time"

	"github.com/nijaru/yt-notes/errors"
	"github.com/nijaru/yt-notes/models"
	"github.com/nijaru/yt-notes/services/summary"
	"github.com/nijaru/yt-notes/services/transcript"
	"github.com/nijaru/yt-notes/services/video"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, req models.NotesRequest) (*models.Notes, error)
	Preview(url string) (*video.Reference, error)
}

type service struct {
	thumbnails  video.Thumbnails
	transcripts transcript.Service
	summaries   summary.Service
	logger      *logrus.Logger
}

func NewService(
	thumbnails video.Thumbnails,
	transcripts transcript.Service,
	summaries summary.Service,
) Service {
	return &service{
		thumbnails:  thumbnails,
		transcripts: transcripts,
		summaries:   summaries,
		logger:      logrus.StandardLogger(),
	}
}

func (s *service) Preview(url string) (*video.Reference, error) {
	return s.thumbnails.Resolve(url)
}

func (s *service) Create(ctx context.Context, req models.NotesRequest) (*models.Notes, error) {
	const op = "NotesService.Create"
	logger := s.logger.WithContext(ctx).WithField("url", req.URL)

	ref, err := s.thumbnails.Resolve(req.URL)
	if err != nil {
		logger.WithError(err).Warn("Invalid video reference")
		return nil, err
	}
	logger = logger.WithField("video_id", ref.ID)

	tr, err := s.transcripts.Fetch(ctx, ref.ID)
	if err != nil {
		return nil, passThrough(op, err)
	}

	text := tr.Text()
	if strings.TrimSpace(text) == "" {
		logger.Warn("Transcript is empty")
		return nil, errors.TranscriptEmpty(op)
	}

	lang := summary.ParseLanguage(req.Language)
	res, err := s.summaries.Summarize(ctx, summary.Request{
		Transcript: text,
		Language:   lang,
		WordCount:  req.WordCount,
	})
	if err != nil {
		return nil, passThrough(op, err)
	}

	logger.WithFields(logrus.Fields{
		"language": res.Language.String(),
		"tier":     res.Tier.String(),
	}).Info("Notes created")

	return &models.Notes{
		VideoID:      ref.ID,
		URL:          ref.URL,
		ThumbnailURL: ref.ThumbnailURL,
		Language:     res.Language.String(),
		Tier:         res.Tier.String(),
		WordCount:    res.WordCount,
		Summary:      res.Text,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// passThrough keeps classified errors and turns anything else into the
// generic generation failure.
func passThrough(op string, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.Generation(op, err)
}
