package domain

import "time"

// Service Model
type Service struct {
	ID        uint      `gorm:"primaryKey" json:"id"`    // Primary key
	Service   string    `gorm:"not null" json:"service"` // Service name
	Level     string    `gorm:"not null" json:"level"`   // Service level
	AdminID   uint      `gorm:"not null" json:"adminId"` // Owning admin (advisory reference)
	CreatedAt time.Time `json:"created_at"`              // Timestamp of creation
}
