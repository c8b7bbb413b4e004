package activity

import "time"

type Log struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	ActionType   string    `gorm:"size:80;not null" json:"action_type"`
	ResourceType string    `gorm:"size:80;not null" json:"resource_type"`
	ResourceID   *uint     `json:"resource_id"`
	Summary      string    `gorm:"size:400;not null" json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Log) TableName() string {
	return "activity_logs"
}

// Entry is a log row plus the frontend path of the resource it points at,
// when that resource can still be resolved.
type Entry struct {
	Log
	TargetPath *string `json:"target_path"`
}
