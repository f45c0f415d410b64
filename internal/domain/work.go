package domain

import "time"

// Work Model
type Work struct {
	ID          uint      `gorm:"primaryKey" json:"id"`    // Primary key
	Title       string    `gorm:"not null" json:"title"`   // Work title
	Description string    `gorm:"not null" json:"description"` // Work description
	FilePath    *string   `json:"file_path"`               // Generated upload filename, null when no file
	AdminID     uint      `gorm:"not null" json:"adminId"` // Owning admin (advisory reference)
	CreatedAt   time.Time `json:"created_at"`              // Timestamp of creation
}

// TableName keeps the historical singular table name
func (Work) TableName() string {
	return "work"
}
