package domain

import "time"

// Media is an uploaded asset referenced by map backgrounds and character
// portraits. It has its own lifecycle and is only ever deleted explicitly.
type Media struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	URL          string    `json:"url" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Size         int64     `json:"size"`
	Format       string    `json:"format"`
	Extension    string    `json:"extension"`
	CreatedByID  string    `json:"createdById" gorm:"index;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
