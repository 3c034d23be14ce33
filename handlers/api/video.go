package api

import (
	"net/http"

	"github.com/nijaru/yt-notes/errors"
	"github.com/nijaru/yt-notes/models"
	"github.com/nijaru/yt-notes/services/notes"
)

type VideoHandler struct {
	service notes.Service
}

func NewVideoHandler(service notes.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// HandleGetVideo handles GET /api/v1/video?url=
func (h *VideoHandler) HandleGetVideo(w http.ResponseWriter, r *http.Request) {
	const op = "VideoHandler.HandleGetVideo"

	url := r.URL.Query().Get("url")
	if url == "" {
		respondError(w, r, errors.InvalidInput(op, nil, "URL parameter is required"))
		return
	}

	ref, err := h.service.Preview(url)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.VideoResponse{
		VideoID:      ref.ID,
		ThumbnailURL: ref.ThumbnailURL,
	})
}
