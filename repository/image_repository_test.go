package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuki-dev/imagewsbackend/models"
)

func seedImages(t *testing.T, repo ImageRepositoryInterface, workspaceID string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-img-%04d", workspaceID, i)
		err := repo.Create(&models.Image{
			WorkspaceID: workspaceID,
			ImageID:     id,
			FileName:    fmt.Sprintf("file%04d", i),
			Ext:         "jpg",
			Width:       1920,
			Height:      1080,
			CreatedAt:   "2024-07-30T21:56:33+09:00",
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestListByWorkspacePageBelowOneBehavesLikePageOne(t *testing.T) {
	repo := NewGormImageRepository(newTestDB(t))
	seedImages(t, repo, "w1", 5)

	pageOne, err := repo.ListByWorkspace("w1", 1)
	require.NoError(t, err)

	for _, page := range []int{0, -1, -100} {
		got, err := repo.ListByWorkspace("w1", page)
		require.NoError(t, err)
		require.Equal(t, pageOne, got, "page %d should behave like page 1", page)
	}
}

func TestListByWorkspacePartitionsInInsertionOrder(t *testing.T) {
	repo := NewGormImageRepository(newTestDB(t))
	want := seedImages(t, repo, "w1", 205)

	var got []string
	for page := 1; ; page++ {
		images, err := repo.ListByWorkspace("w1", page)
		require.NoError(t, err)
		require.LessOrEqual(t, len(images), PageSize)
		for _, img := range images {
			got = append(got, img.ImageID)
		}
		if len(images) < PageSize {
			break
		}
	}

	// consecutive blocks, no duplicates, no gaps, insertion order
	require.Equal(t, want, got)

	first, err := repo.ListByWorkspace("w1", 1)
	require.NoError(t, err)
	require.Len(t, first, PageSize)
	third, err := repo.ListByWorkspace("w1", 3)
	require.NoError(t, err)
	require.Len(t, third, 5)
	fourth, err := repo.ListByWorkspace("w1", 4)
	require.NoError(t, err)
	require.Empty(t, fourth)
}

func TestListByWorkspaceIsStable(t *testing.T) {
	repo := NewGormImageRepository(newTestDB(t))
	seedImages(t, repo, "w1", 150)

	first, err := repo.ListByWorkspace("w1", 2)
	require.NoError(t, err)
	second, err := repo.ListByWorkspace("w1", 2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestListByWorkspaceNeverLeaksOtherWorkspaces(t *testing.T) {
	repo := NewGormImageRepository(newTestDB(t))
	seedImages(t, repo, "small", 3)
	seedImages(t, repo, "big", 250)

	images, err := repo.ListByWorkspace("small", 1)
	require.NoError(t, err)
	require.Len(t, images, 3)
	for _, img := range images {
		require.Equal(t, "small", img.WorkspaceID)
	}
}

func TestListByWorkspaceTagsAlwaysEmptyArray(t *testing.T) {
	repo := NewGormImageRepository(newTestDB(t))
	seedImages(t, repo, "w1", 2)

	images, err := repo.ListByWorkspace("w1", 1)
	require.NoError(t, err)
	for _, img := range images {
		require.NotNil(t, img.Tags)
		require.Empty(t, img.Tags)
	}
}

func TestCreateDoesNotDeduplicate(t *testing.T) {
	repo := NewGormImageRepository(newTestDB(t))

	img := models.Image{WorkspaceID: "w1", ImageID: "dup", FileName: "f", Ext: "png"}
	first := img
	second := img
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	images, err := repo.ListByWorkspace("w1", 1)
	require.NoError(t, err)
	require.Len(t, images, 2)
}
