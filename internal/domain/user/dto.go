package user

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyInput struct {
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateProfileInput struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

type ProfileResponse struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
	CreatedAt string  `json:"created_at"`
}

// PublicProfile is the anonymous view of a user plus catalogue aggregates.
type PublicProfile struct {
	Username        string  `json:"username"`
	AvatarURL       *string `json:"avatar_url"`
	JoinedAt        string  `json:"joined_at"`
	CollectionCount int64   `json:"collection_count"`
	ItemCount       int64   `json:"item_count"`
	EarnedStarCount int64   `json:"earned_star_count"`
}
