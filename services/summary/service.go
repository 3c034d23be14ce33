package summary

import (
	"context"
	"time"

	"github.com/nijaru/yt-notes/errors"
	"github.com/sirupsen/logrus"
)

type service struct {
	generator Generator
	config    Config
	logger    *logrus.Logger
}

// NewService creates a new summary service
func NewService(generator Generator, config Config) Service {
	return &service{
		generator: generator,
		config:    config,
		logger:    logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (*Result, error) {
	const op = "SummaryService.Summarize"
	tier := TierFor(req.WordCount)
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"language":   req.Language.String(),
		"word_count": req.WordCount,
		"tier":       tier.String(),
	})

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	prompt := BuildPrompt(req.Transcript, req.Language, req.WordCount)

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.WithError(err).Error("Generation failed")
		return nil, errors.Generation(op, err)
	}

	logger.WithFields(logrus.Fields{
		"prompt_chars": len(prompt),
		"duration":     time.Since(start),
	}).Info("Summary generated")

	return &Result{
		Text:      text,
		Language:  req.Language,
		Tier:      tier,
		WordCount: req.WordCount,
	}, nil
}
