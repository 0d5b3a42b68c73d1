package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yuki-dev/imagewsbackend/models"
	"github.com/yuki-dev/imagewsbackend/repository"
)

type ImageHandler struct {
	ImageRepo repository.ImageRepositoryInterface
}

type ImagesResponse struct {
	Page   int            `json:"page"`
	Images []models.Image `json:"images"`
}

// ListImages returns one fixed-size page of the authorized workspace's
// images. A missing or non-integer page parameter means page 1; values below
// 1 are clamped, never rejected.
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := WorkspaceIDFromContext(r.Context())
	if !ok {
		WriteAPIError(w, http.StatusInternalServerError, "missing_workspace", "no workspace bound to request")
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	if page < 1 {
		page = 1
	}

	images, err := h.ImageRepo.ListByWorkspace(workspaceID, page)
	if err != nil {
		WriteAPIError(w, http.StatusInternalServerError, "store_error", "failed to list images")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImagesResponse{Page: page, Images: images})
}
