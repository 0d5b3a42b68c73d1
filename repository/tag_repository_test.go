package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuki-dev/imagewsbackend/models"
)

func TestTagListByWorkspaceScopedAndOrdered(t *testing.T) {
	repo := NewGormTagRepository(newTestDB(t))

	require.NoError(t, repo.Create(&models.Tag{WorkspaceID: "w1", TagID: "t1", Name: "landscape", Favorite: true, TagGroupID: "g1"}))
	require.NoError(t, repo.Create(&models.Tag{WorkspaceID: "w2", TagID: "t9", Name: "other", TagGroupID: "g9"}))
	require.NoError(t, repo.Create(&models.Tag{WorkspaceID: "w1", TagID: "t2", Name: "portrait", TagGroupID: "g1"}))

	tags, err := repo.ListByWorkspace("w1")
	require.NoError(t, err)
	require.Len(t, tags, 2)
	require.Equal(t, "t1", tags[0].TagID)
	require.Equal(t, "t2", tags[1].TagID)
	for _, tag := range tags {
		require.Equal(t, "w1", tag.WorkspaceID)
	}
}

func TestTagListByWorkspaceEmpty(t *testing.T) {
	repo := NewGormTagRepository(newTestDB(t))

	tags, err := repo.ListByWorkspace("empty")
	require.NoError(t, err)
	require.NotNil(t, tags)
	require.Empty(t, tags)
}
