package domain

import "time"

// User Model
type User struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`              // Primary key
	Name                  string     `gorm:"not null" json:"name"`              // Display name
	Email                 string     `gorm:"uniqueIndex;not null" json:"email"` // Unique email address
	Password              string     `gorm:"not null" json:"-"`                 // Bcrypt hash, never serialized
	AccountType           string     `gorm:"default:user" json:"accountType"`   // Role: admin or user
	Verified              bool       `gorm:"default:false" json:"verified"`     // Email verification flag
	SubscriptionExpiresAt *time.Time `json:"subscriptionExpiresAt"`             // Nullable subscription expiry
}
