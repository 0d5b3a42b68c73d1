package models

// Credential binds an opaque access token to a workspace id. Many tokens may
// point at the same workspace; neither column is unique and rows are never
// updated, expired or revoked.
type Credential struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	AccessToken string `gorm:"index;not null" json:"access_token"`
	WorkspaceID string `gorm:"index;not null" json:"workspace_id"`
}

// TableName explicitly sets the table name for GORM.
func (Credential) TableName() string {
	return "credentials"
}
