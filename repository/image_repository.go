package repository

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/yuki-dev/imagewsbackend/models"
)

// PageSize is the fixed number of images returned per page. Callers detect
// exhaustion by receiving fewer than PageSize rows; there is no count or
// has-more signal.
const PageSize = 100

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// GormImageRepository handles database operations for Image entities
type GormImageRepository struct {
	db *gorm.DB
}

func NewGormImageRepository(db *gorm.DB) ImageRepositoryInterface {
	return &GormImageRepository{db: db}
}

// Create inserts an image row. No existence check: importing the same
// manifest twice duplicates the row.
func (r *GormImageRepository) Create(image *models.Image) error {
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to insert image %s: %w", image.ImageID, err)
	}
	return nil
}

// ListByWorkspace returns one page of the workspace's images in insertion
// order. Pages below 1 are clamped to 1, never rejected.
func (r *GormImageRepository) ListByWorkspace(workspaceID string, page int) ([]models.Image, error) {
	if page < 1 {
		page = 1
	}

	queryBuilder := psql.
		Select("id", "workspace_id", "image_id", "file_name", "ext", "width", "height", "created_at").
		From("images").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("id ASC").
		Limit(PageSize).
		Offset(uint64(PageSize * (page - 1)))

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for ListByWorkspace: %w", err)
	}

	images := []models.Image{}
	if err := r.db.Raw(sqlStr, args...).Scan(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images for workspace %s: %w", workspaceID, err)
	}

	// the query layer does not populate per-image tags; the field still has
	// to serialize as an empty array, not null
	for i := range images {
		images[i].Tags = []string{}
	}
	return images, nil
}
