package api

import (
	"net/http"

	"github.com/nijaru/yt-notes/models"
	"github.com/nijaru/yt-notes/services/notes"
	"github.com/nijaru/yt-notes/services/summary"
	"github.com/nijaru/yt-notes/validation"
	"github.com/sirupsen/logrus"
)

type NotesHandler struct {
	service   notes.Service
	validator *validation.Validator
	logger    *logrus.Logger
}

type createNotesRequest struct {
	URL       string `json:"url"`
	Language  string `json:"language,omitempty"`
	WordCount *int   `json:"word_count,omitempty"`
}

func NewNotesHandler(service notes.Service, validator *validation.Validator) *NotesHandler {
	return &NotesHandler{
		service:   service,
		validator: validator,
		logger:    logrus.StandardLogger(),
	}
}

// HandleCreateNotes handles POST /api/v1/notes
func (h *NotesHandler) HandleCreateNotes(w http.ResponseWriter, r *http.Request) {
	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 64 * 1024,
		AllowedMethods:   []string{http.MethodPost},
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var body createNotesRequest
	if err := readJSON(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	req := models.NotesRequest{
		URL:       body.URL,
		Language:  body.Language,
		WordCount: summary.DefaultWordCount,
	}
	if body.WordCount != nil {
		req.WordCount = *body.WordCount
	}

	if err := h.validator.ValidateNotesRequest(&req); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, result)
}
