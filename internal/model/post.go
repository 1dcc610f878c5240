package model

import "time"

// Post is the content resource managed by the API.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Published bool      `json:"published" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
