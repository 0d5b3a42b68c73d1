package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/yuki-dev/imagewsbackend/repository"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// WorkspaceIDContextKey is the key under which the authorized workspace id is
// stored in the request context.
const WorkspaceIDContextKey ContextKey = "workspace_id"

// authScheme is the literal prefix of the credential header. It borrows the
// Basic transport convention but none of its semantics: what follows is
// "<workspace_id>:<access_token>" as plaintext, with no base64 involved.
const authScheme = "Basic "

// AuthMiddleware gates every workspace-scoped route. It parses the credential
// pair out of the Authorization header, checks it against the credential
// store, and on success continues with the workspace id attached to the
// request context. Every rejection returns the same generic 401 so the
// response does not reveal whether the workspace id or the token was wrong.
func AuthMiddleware(credRepo repository.CredentialRepositoryInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w)
				return
			}

			if !strings.HasPrefix(authHeader, authScheme) {
				writeUnauthorized(w)
				return
			}

			// the remainder must split into exactly two fields
			parts := strings.Split(authHeader[len(authScheme):], ":")
			if len(parts) != 2 {
				writeUnauthorized(w)
				return
			}
			workspaceID, accessToken := parts[0], parts[1]

			ok, err := credRepo.Exists(workspaceID, accessToken)
			if err != nil {
				WriteAPIError(w, http.StatusInternalServerError, "store_error", "failed to validate credentials")
				return
			}
			if !ok {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), WorkspaceIDContextKey, workspaceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
}

// WorkspaceIDFromContext returns the workspace id AuthMiddleware resolved for
// this request.
func WorkspaceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(WorkspaceIDContextKey).(string)
	return id, ok
}
