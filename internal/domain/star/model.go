package star

import "time"

type CollectionStar struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index;uniqueIndex:uq_collection_stars_user_collection" json:"user_id"`
	CollectionID uint      `gorm:"not null;index;uniqueIndex:uq_collection_stars_user_collection" json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type ItemStar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:uq_item_stars_user_item" json:"user_id"`
	ItemID    uint      `gorm:"not null;index;uniqueIndex:uq_item_stars_user_item" json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

type StatusResponse struct {
	Starred   bool  `json:"starred"`
	StarCount int64 `json:"star_count"`
}

// StarredCollection is a starred-list row with aggregates.
type StarredCollection struct {
	CollectionID  uint    `json:"collection_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	OwnerUsername *string `gorm:"column:owner_username" json:"owner_username"`
	ItemCount     int64   `json:"item_count"`
	StarCount     int64   `json:"star_count"`
	StarredAt     string  `gorm:"column:starred_at" json:"starred_at"`
}

// StarredItem is a starred-list row with its collection context.
type StarredItem struct {
	ItemID         uint    `json:"item_id"`
	Name           string  `json:"name"`
	CollectionID   uint    `json:"collection_id"`
	CollectionName string  `gorm:"column:collection_name" json:"collection_name"`
	OwnerUsername  *string `gorm:"column:owner_username" json:"owner_username"`
	PrimaryImageID *uint   `gorm:"column:primary_image_id" json:"primary_image_id"`
	StarCount      int64   `json:"star_count"`
	StarredAt      string  `gorm:"column:starred_at" json:"starred_at"`
}
