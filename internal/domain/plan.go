package domain

import "time"

// Plan Model
type Plan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`           // Primary key
	AdminID      uint      `gorm:"not null" json:"adminId"`        // Owning admin (advisory reference)
	Name         string    `gorm:"not null" json:"name"`           // Plan name
	Description  string    `gorm:"default:''" json:"description"`  // Optional description
	PriceUSD     float64   `gorm:"column:price_usd" json:"price_usd"` // Price in the base currency
	DurationDays int       `json:"duration_days"`                  // Plan duration in days
	Active       bool      `gorm:"default:true" json:"active"`     // Soft-deactivation flag
	CreatedAt    time.Time `json:"created_at"`                     // Timestamp of creation
}
