package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yuki-dev/imagewsbackend/models"
)

// GormTagRepository handles database operations for Tag entities
type GormTagRepository struct {
	db *gorm.DB
}

func NewGormTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &GormTagRepository{db: db}
}

func (r *GormTagRepository) Create(tag *models.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("failed to insert tag %s: %w", tag.TagID, err)
	}
	return nil
}

// ListByWorkspace returns all of the workspace's tags, unpaginated, in
// insertion order.
func (r *GormTagRepository) ListByWorkspace(workspaceID string) ([]models.Tag, error) {
	tags := []models.Tag{}
	err := r.db.Where("workspace_id = ?", workspaceID).Order("id ASC").Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for workspace %s: %w", workspaceID, err)
	}
	return tags, nil
}
