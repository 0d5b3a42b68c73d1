package repository

import (
	"github.com/yuki-dev/imagewsbackend/models"
)

// CredentialRepositoryInterface defines the methods for credential issuing
// and lookup
type CredentialRepositoryInterface interface {
	Issue(workspaceID string) (*models.Credential, error)
	Exists(workspaceID, accessToken string) (bool, error)
}

// ImageRepositoryInterface defines the methods for image data operations
type ImageRepositoryInterface interface {
	Create(image *models.Image) error
	ListByWorkspace(workspaceID string, page int) ([]models.Image, error)
}

// TagRepositoryInterface defines the methods for tag data operations
type TagRepositoryInterface interface {
	Create(tag *models.Tag) error
	ListByWorkspace(workspaceID string) ([]models.Tag, error)
}
