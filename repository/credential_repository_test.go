package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueReturnsRandomToken(t *testing.T) {
	repo := NewGormCredentialRepository(newTestDB(t))

	cred, err := repo.Issue("w1")
	require.NoError(t, err)
	require.Equal(t, "w1", cred.WorkspaceID)

	// canonical uuid-v4 string form
	parsed, err := uuid.Parse(cred.AccessToken)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), parsed.Version())

	other, err := repo.Issue("w1")
	require.NoError(t, err)
	require.NotEqual(t, cred.AccessToken, other.AccessToken)
}

func TestExistsMatchesExactPairOnly(t *testing.T) {
	repo := NewGormCredentialRepository(newTestDB(t))

	credA, err := repo.Issue("workspace-a")
	require.NoError(t, err)
	_, err = repo.Issue("workspace-b")
	require.NoError(t, err)

	ok, err := repo.Exists("workspace-a", credA.AccessToken)
	require.NoError(t, err)
	require.True(t, ok)

	// a token issued for A must not authenticate as B, even though the token
	// string itself is valid
	ok, err = repo.Exists("workspace-b", credA.AccessToken)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.Exists("workspace-a", "not-a-token")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.Exists("unknown", credA.AccessToken)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIssueAcceptsUnregisteredWorkspaceID(t *testing.T) {
	repo := NewGormCredentialRepository(newTestDB(t))

	// login never validates the workspace id; any string gets a token
	cred, err := repo.Issue("never-configured")
	require.NoError(t, err)

	ok, err := repo.Exists("never-configured", cred.AccessToken)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMultipleTokensPerWorkspaceAllValid(t *testing.T) {
	repo := NewGormCredentialRepository(newTestDB(t))

	first, err := repo.Issue("w1")
	require.NoError(t, err)
	second, err := repo.Issue("w1")
	require.NoError(t, err)

	for _, token := range []string{first.AccessToken, second.AccessToken} {
		ok, err := repo.Exists("w1", token)
		require.NoError(t, err)
		require.True(t, ok)
	}
}
