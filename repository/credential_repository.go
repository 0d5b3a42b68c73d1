package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yuki-dev/imagewsbackend/models"
)

// GormCredentialRepository handles database operations for Credential entities
type GormCredentialRepository struct {
	db *gorm.DB
}

func NewGormCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &GormCredentialRepository{db: db}
}

// Issue stores and returns a credential binding a fresh uuid-v4 token to
// workspaceID. The id is not checked against the workspace registry: any
// string gets a token.
func (r *GormCredentialRepository) Issue(workspaceID string) (*models.Credential, error) {
	cred := &models.Credential{
		AccessToken: uuid.New().String(),
		WorkspaceID: workspaceID,
	}
	if err := r.db.Create(cred).Error; err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}
	return cred, nil
}

// Exists reports whether the exact (workspace id, access token) pair has been
// issued. Both fields must match; a valid token presented with another
// workspace's id does not authenticate.
func (r *GormCredentialRepository) Exists(workspaceID, accessToken string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Credential{}).
		Where("workspace_id = ? AND access_token = ?", workspaceID, accessToken).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up credential: %w", err)
	}
	return count > 0, nil
}
