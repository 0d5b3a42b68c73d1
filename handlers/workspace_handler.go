package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/yuki-dev/imagewsbackend/models"
	"github.com/yuki-dev/imagewsbackend/repository"
)

type WorkspaceHandler struct {
	Registry *models.WorkspaceRegistry
	CredRepo repository.CredentialRepositoryInterface
}

type LoginPayload struct {
	WorkspaceID string `json:"workspace_id"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ListWorkspaces returns the static workspace registry loaded at startup.
// It also backs PATCH /workspaces, which performs no mutation and answers
// with the same list.
func (h *WorkspaceHandler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Registry)
}

// Login issues a fresh access token bound to the workspace id in the request
// body. The id is not validated against the registry; any string is accepted.
func (h *WorkspaceHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	cred, err := h.CredRepo.Issue(payload.WorkspaceID)
	if err != nil {
		WriteAPIError(w, http.StatusInternalServerError, "store_error", "failed to issue access token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{AccessToken: cred.AccessToken})
}
