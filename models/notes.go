package models

import (
	"time"
)

// NotesRequest is one "Get Detailed Notes" action.
type NotesRequest struct {
	URL       string `json:"url"`
	Language  string `json:"language"`
	WordCount int    `json:"word_count"`
}

// Notes is the outcome of a successful request.
type Notes struct {
	VideoID      string    `json:"video_id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Language     string    `json:"language"`
	Tier         string    `json:"tier"`
	WordCount    int       `json:"word_count"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}

// VideoResponse is the preview payload for a parsed URL.
type VideoResponse struct {
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
}
