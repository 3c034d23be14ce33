package validation

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nijaru/yt-notes/errors"
	"github.com/nijaru/yt-notes/models"
	"github.com/nijaru/yt-notes/services/summary"
)

type Validator struct {
	minWords int
	maxWords int
}

func NewValidator() *Validator {
	return &Validator{
		minWords: summary.MinWordCount,
		maxWords: summary.MaxWordCount,
	}
}

// RequestValidationOpts holds options for request validation
type RequestValidationOpts struct {
	MaxContentLength int64
	AllowedMethods   []string
	RequireJSON      bool
}

// ValidateRequest validates HTTP requests
func (v *Validator) ValidateRequest(r *http.Request, opts RequestValidationOpts) error {
	const op = "Validator.ValidateRequest"

	if len(opts.AllowedMethods) > 0 {
		methodAllowed := false
		for _, method := range opts.AllowedMethods {
			if r.Method == method {
				methodAllowed = true
				break
			}
		}
		if !methodAllowed {
			return errors.InvalidInput(op, nil, fmt.Sprintf("Method %s not allowed", r.Method))
		}
	}

	if opts.RequireJSON {
		if contentType := r.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
			return errors.InvalidInput(op, nil, "Content-Type must be application/json")
		}
	}

	if opts.MaxContentLength > 0 && r.ContentLength > opts.MaxContentLength {
		return errors.InvalidInput(op, nil, "Request body too large")
	}

	return nil
}

// ValidateNotesRequest checks the inputs the form controls would enforce.
// The URL is only checked for presence; its shape is the extractor's job.
// Unknown languages are allowed and fall back to English downstream.
func (v *Validator) ValidateNotesRequest(req *models.NotesRequest) error {
	const op = "Validator.ValidateNotesRequest"

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return errors.InvalidInput(op, nil, "URL is required")
	}

	if req.WordCount < v.minWords || req.WordCount > v.maxWords {
		return errors.InvalidInput(op, nil,
			fmt.Sprintf("word_count must be between %d and %d", v.minWords, v.maxWords))
	}

	return nil
}

// ClampWordCount forces n into the supported range, for slider input.
func (v *Validator) ClampWordCount(n int) int {
	switch {
	case n < v.minWords:
		return v.minWords
	case n > v.maxWords:
		return v.maxWords
	default:
		return n
	}
}
