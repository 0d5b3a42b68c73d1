package models

// Tag is one entry of a workspace's tag catalog, imported at startup and
// immutable afterwards. It corresponds to the 'tags' table.
type Tag struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	WorkspaceID string `gorm:"index;not null" json:"-"`
	TagID       string `gorm:"not null" json:"tag_id"`
	Name        string `json:"name"`
	Favorite    bool   `json:"favorite"`
	TagGroupID  string `json:"tag_group_id"`
}

// TableName explicitly sets the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}
