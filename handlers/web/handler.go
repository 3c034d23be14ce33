// Package web serves the single-page form for requesting notes.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/nijaru/yt-notes/errors"
	"github.com/nijaru/yt-notes/models"
	"github.com/nijaru/yt-notes/services/notes"
	"github.com/nijaru/yt-notes/services/summary"
	"github.com/nijaru/yt-notes/validation"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const maxFormSize = 64 * 1024

type Handler struct {
	service   notes.Service
	validator *validation.Validator
	logger    *logrus.Logger
}

type languageOption struct {
	Name     string
	Selected bool
}

// page is everything index.html renders. At most one of Notes, Warning and
// Error is set.
type page struct {
	URL          string
	Languages    []languageOption
	WordCount    int
	MinWords     int
	MaxWords     int
	ThumbnailURL string
	Notes        string
	Warning      string
	Error        string
}

func NewHandler(service notes.Service, validator *validation.Validator) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logrus.StandardLogger(),
	}
}

func (h *Handler) newPage(url string, lang summary.Language, wordCount int) *page {
	p := &page{
		URL:       url,
		WordCount: wordCount,
		MinWords:  summary.MinWordCount,
		MaxWords:  summary.MaxWordCount,
	}
	for _, l := range summary.Languages() {
		p.Languages = append(p.Languages, languageOption{Name: l.String(), Selected: l == lang})
	}
	return p
}

// HandleIndex handles GET /. A url query parameter previews the thumbnail.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	url := strings.TrimSpace(q.Get("url"))
	p := h.newPage(url, summary.ParseLanguage(q.Get("language")), h.wordCount(q.Get("word_count")))

	if url != "" {
		ref, err := h.service.Preview(url)
		if err != nil {
			p.Error = errors.UserMessage(err)
		} else {
			p.ThumbnailURL = ref.ThumbnailURL
		}
	}

	h.render(w, r, http.StatusOK, p)
}

// HandleNotes handles POST /notes and re-renders the page with the result.
func (h *Handler) HandleNotes(w http.ResponseWriter, r *http.Request) {
	const op = "WebHandler.HandleNotes"

	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		p := h.newPage("", summary.DefaultLanguage, summary.DefaultWordCount)
		p.Error = errors.UserMessage(errors.InvalidInput(op, err, "Invalid form submission."))
		h.render(w, r, http.StatusBadRequest, p)
		return
	}

	req := models.NotesRequest{
		URL:       strings.TrimSpace(r.PostFormValue("url")),
		Language:  r.PostFormValue("language"),
		WordCount: h.wordCount(r.PostFormValue("word_count")),
	}
	p := h.newPage(req.URL, summary.ParseLanguage(req.Language), req.WordCount)

	if ref, err := h.service.Preview(req.URL); err == nil {
		p.ThumbnailURL = ref.ThumbnailURL
	}

	if err := h.validator.ValidateNotesRequest(&req); err != nil {
		p.Error = errors.UserMessage(err)
		h.render(w, r, errors.StatusCode(err), p)
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"op":    op,
			"kind":  errors.KindOf(err).String(),
			"error": err,
		}).Warn("Notes request failed")

		if errors.Is(err, errors.KindTranscriptEmpty) {
			p.Warning = errors.UserMessage(err)
		} else {
			p.Error = errors.UserMessage(err)
		}
		h.render(w, r, errors.StatusCode(err), p)
		return
	}

	p.Notes = result.Summary
	h.render(w, r, http.StatusOK, p)
}

// wordCount reads the slider value, defaulting when absent and clamping
// out-of-range input.
func (h *Handler) wordCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return summary.DefaultWordCount
	}
	return h.validator.ClampWordCount(n)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, code int, p *page) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("Failed to render page")
		http.Error(w, errors.MsgGeneric, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}
