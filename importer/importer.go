// Package importer fills the store from the workspace directory trees. It
// runs exactly once, sequentially, before the HTTP listener opens, so no
// request can ever observe a partially imported store.
package importer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/yuki-dev/imagewsbackend/manifest"
	"github.com/yuki-dev/imagewsbackend/models"
	"github.com/yuki-dev/imagewsbackend/repository"
)

type Importer struct {
	ImageRepo repository.ImageRepositoryInterface
	TagRepo   repository.TagRepositoryInterface
}

func NewImporter(imageRepo repository.ImageRepositoryInterface, tagRepo repository.TagRepositoryInterface) *Importer {
	return &Importer{ImageRepo: imageRepo, TagRepo: tagRepo}
}

// Run imports every workspace in registry order. The first unreadable or
// malformed manifest aborts the whole import; the caller is expected to treat
// that as fatal rather than serve partial state. Inserts are plain inserts
// with no existence check, so running the import twice against the same store
// would duplicate every row.
func (imp *Importer) Run(workspaces []models.WorkspaceInfo) error {
	for _, ws := range workspaces {
		if err := imp.importWorkspace(ws); err != nil {
			return fmt.Errorf("workspace %s: %w", ws.WorkspaceID, err)
		}
	}
	return nil
}

func (imp *Importer) importWorkspace(ws models.WorkspaceInfo) error {
	imagesDir := filepath.Join(ws.Path, "images")
	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return fmt.Errorf("failed to enumerate %s: %w", imagesDir, err)
	}

	// each subdirectory of images/ holds one image and its imageinfo.json;
	// insertion order (and therefore page order) follows enumeration order
	imported := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		infoPath := filepath.Join(imagesDir, entry.Name(), manifest.ImageInfoFileName)
		info, err := manifest.LoadImageInfo(infoPath)
		if err != nil {
			return err
		}

		image := &models.Image{
			WorkspaceID: ws.WorkspaceID,
			ImageID:     info.ImageID,
			FileName:    info.FileName,
			Ext:         info.Ext,
			Width:       info.Width,
			Height:      info.Height,
			CreatedAt:   info.CreatedAt,
		}
		if err := imp.ImageRepo.Create(image); err != nil {
			return err
		}
		imported++
	}

	catalog, err := manifest.LoadTagCatalog(ws.Path)
	if err != nil {
		return err
	}
	for _, t := range catalog.Tags {
		tag := &models.Tag{
			WorkspaceID: ws.WorkspaceID,
			TagID:       t.TagID,
			Name:        t.Name,
			Favorite:    t.Favorite,
			TagGroupID:  t.TagGroupID,
		}
		if err := imp.TagRepo.Create(tag); err != nil {
			return err
		}
	}

	log.Printf("imported workspace %s (%s): %d images, %d tags", ws.WorkspaceID, ws.Name, imported, len(catalog.Tags))
	return nil
}
