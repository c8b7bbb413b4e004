package item

import (
	"time"

	"gorm.io/datatypes"
)

type Item struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CollectionID uint           `gorm:"not null;index" json:"collection_id"`
	Name         string         `gorm:"size:200;not null" json:"name"`
	Metadata     datatypes.JSON `json:"metadata"`
	Notes        *string        `gorm:"type:text" json:"notes"`
	IsFeatured   bool           `gorm:"default:false;not null" json:"is_featured"`
	IsHighlight  bool           `gorm:"default:false;not null" json:"is_highlight"`
	IsDraft      bool           `gorm:"default:false;not null" json:"is_draft"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// WithPrimaryImage carries the lowest-position image id joined by the repository.
type WithPrimaryImage struct {
	Item
	PrimaryImageID *uint `gorm:"column:primary_image_id" json:"primary_image_id"`
}

// SearchResult is a public cross-collection search hit.
type SearchResult struct {
	Item
	PrimaryImageID *uint   `gorm:"column:primary_image_id" json:"primary_image_id"`
	CollectionName string  `gorm:"column:collection_name" json:"collection_name"`
	OwnerUsername  *string `gorm:"column:owner_username" json:"owner_username"`
}
