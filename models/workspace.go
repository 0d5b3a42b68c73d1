package models

// WorkspaceInfo describes one registered workspace: an opaque id, a display
// name and the directory tree holding its images and tag catalog. The list is
// loaded once at startup and never changes while the server runs.
type WorkspaceInfo struct {
	Path        string `json:"path"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
}

// WorkspaceRegistry is the static workspace configuration. Its JSON form is
// both the on-disk config file and the body of GET /api/v1/workspaces.
type WorkspaceRegistry struct {
	WorkspaceList []WorkspaceInfo `json:"workspace_list"`
}
