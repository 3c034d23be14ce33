package summary

import (
	"context"
	"time"
)

type Service interface {
	// Summarize makes exactly one generation call for req.
	Summarize(ctx context.Context, req Request) (*Result, error)
}

// Generator is a text-generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	// Timeout bounds a single generation call. Zero means no extra bound.
	Timeout time.Duration
}

type Request struct {
	Transcript string
	Language   Language
	WordCount  int
}

type Result struct {
	Text      string   `json:"text"`
	Language  Language `json:"language"`
	Tier      Tier     `json:"tier"`
	WordCount int      `json:"word_count"`
}
