package models

// Image is one imported image manifest row.
// It corresponds to the 'images' table. The autoincrement ID fixes insertion
// order, which is the ordering key for pagination.
type Image struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	WorkspaceID string `gorm:"index;not null" json:"-"`
	ImageID     string `gorm:"not null" json:"image_id"` // unique within a workspace by convention, not enforced
	FileName    string `json:"file_name"`
	Ext         string `json:"ext"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	CreatedAt   string `json:"created_at"` // manifest's ISO-8601 string, stored verbatim

	// Tags is not populated by the query layer; the manifest's per-image tag
	// ids are not stored relationally yet.
	Tags []string `gorm:"-" json:"tags"`
}

// TableName explicitly sets the table name for GORM.
func (Image) TableName() string {
	return "images"
}
