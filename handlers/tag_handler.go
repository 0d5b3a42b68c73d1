package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/yuki-dev/imagewsbackend/models"
	"github.com/yuki-dev/imagewsbackend/repository"
)

type TagHandler struct {
	TagRepo repository.TagRepositoryInterface
}

type TagsResponse struct {
	Tags []models.Tag `json:"tags"`
}

// ListTags returns all tags of the authorized workspace, unpaginated.
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := WorkspaceIDFromContext(r.Context())
	if !ok {
		WriteAPIError(w, http.StatusInternalServerError, "missing_workspace", "no workspace bound to request")
		return
	}

	tags, err := h.TagRepo.ListByWorkspace(workspaceID)
	if err != nil {
		WriteAPIError(w, http.StatusInternalServerError, "store_error", "failed to list tags")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TagsResponse{Tags: tags})
}
