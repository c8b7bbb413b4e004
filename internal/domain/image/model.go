package image

import "time"

// ItemImage references a set of JPEG variants stored in object storage under
// StorageKey ("<owner>/<collection>/<item>/<uuid>"), one object per variant.
type ItemImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ItemID     uint      `gorm:"not null;index" json:"item_id"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	StorageKey string    `gorm:"size:255;not null" json:"-"`
	Position   int       `gorm:"default:0;not null" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReorderImageInput struct {
	Position int `json:"position" binding:"min=0"`
}
