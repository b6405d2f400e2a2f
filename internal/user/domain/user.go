package domain

import (
	"time"

	mediadomain "vtt-backend/internal/media/domain"
)

type User struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email" gorm:"uniqueIndex;not null"`
	Password    string `json:"-"` // Never return password hash in JSON
	// One-way hash of the last issued refresh token. Rotating or clearing it
	// invalidates every outstanding refresh token for this user.
	RefreshTokenHash string `json:"-"`
	// Avatar
	AvatarID *string            `json:"avatarId,omitempty"`
	Avatar   *mediadomain.Media `json:"avatar,omitempty" gorm:"foreignKey:AvatarID"`
	// Display order of the user's campaigns, independent of creation time.
	// Entries not matching an accessible campaign are ignored by consumers.
	CampaignOrder []string  `json:"campaignOrder" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PasswordResetToken is a single-use token letting a user set a new password.
type PasswordResetToken struct {
	Value     string    `json:"value" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
