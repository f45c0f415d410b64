package domain

import "time"

// Announcement Model
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`          // Primary key
	Title     string    `gorm:"default:''" json:"title"`       // Optional title, defaults empty
	Content   string    `gorm:"not null" json:"content"`       // Announcement body
	AdminID   uint      `gorm:"not null" json:"adminId"`       // Owning admin (advisory reference)
	CreatedAt time.Time `json:"created_at"`                    // Timestamp of creation
}
