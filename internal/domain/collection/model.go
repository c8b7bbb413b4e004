package collection

import "time"

type Collection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	IsPublic    bool      `gorm:"default:false;not null" json:"is_public"`
	IsFeatured  bool      `gorm:"default:false;not null" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WithCounts carries the item and star aggregates joined in by the repository.
type WithCounts struct {
	Collection
	ItemCount     int64   `json:"item_count"`
	StarCount     int64   `json:"star_count"`
	OwnerUsername *string `gorm:"column:owner_username" json:"owner_username,omitempty"`
}
