package user

import "time"

const (
	TokenTypeVerify = "verify"
	TokenTypeReset  = "reset"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:320;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Username     *string   `gorm:"size:64;uniqueIndex" json:"username"`
	AvatarURL    *string   `gorm:"size:500" json:"avatar_url"`
	IsActive     bool      `gorm:"default:true;not null" json:"is_active"`
	IsVerified   bool      `gorm:"default:false;not null" json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmailToken is a single-use verification or password-reset token.
type EmailToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Token     string     `gorm:"size:128;not null;uniqueIndex" json:"-"`
	TokenType string     `gorm:"size:20;not null" json:"token_type"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
