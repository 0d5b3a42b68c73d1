// Package manifest reads the JSON metadata files that live inside a
// workspace's directory tree: one imageinfo.json per image and an optional
// tags.json catalog per workspace. Loaders are pure file-to-struct readers;
// nothing here touches the database.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ImageInfoFileName  = "imageinfo.json"
	TagCatalogFileName = "tags.json"
)

// ImageInfo mirrors a per-image imageinfo.json manifest.
type ImageInfo struct {
	ImageID   string   `json:"image_id"`
	FileName  string   `json:"file_name"`
	Ext       string   `json:"ext"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	CreatedAt string   `json:"created_at"`
	Tags      []string `json:"tags"`
}

// TagCatalog mirrors a workspace's tags.json.
type TagCatalog struct {
	Tags []TagInfo `json:"tags"`
}

type TagInfo struct {
	TagID      string `json:"tag_id"`
	Name       string `json:"name"`
	Favorite   bool   `json:"favorite"`
	TagGroupID string `json:"tag_group_id"`
}

// LoadImageInfo reads a single image manifest. Field values are taken as
// given; width and height are not range-checked.
func LoadImageInfo(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image manifest %s: %w", path, err)
	}
	defer f.Close()

	var info ImageInfo
	if err := json.NewDecoder(f).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to parse image manifest %s: %w", path, err)
	}
	return &info, nil
}

// LoadTagCatalog reads the workspace's tag catalog. A missing tags.json is
// not an error: the workspace simply has no tags. A catalog that exists but
// fails to parse is an error.
func LoadTagCatalog(workspaceRoot string) (*TagCatalog, error) {
	path := filepath.Join(workspaceRoot, TagCatalogFileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &TagCatalog{Tags: []TagInfo{}}, nil
		}
		return nil, fmt.Errorf("failed to open tag catalog %s: %w", path, err)
	}
	defer f.Close()

	var catalog TagCatalog
	if err := json.NewDecoder(f).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse tag catalog %s: %w", path, err)
	}
	return &catalog, nil
}
