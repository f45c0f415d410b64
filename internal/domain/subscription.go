package domain

// Subscription Model
type Subscription struct {
	ID        uint  `gorm:"primaryKey" json:"id"` // Primary key
	UserID    uint  `gorm:"not null" json:"userId"` // Subscribing user (advisory reference)
	ServiceID *uint `json:"serviceId"`            // Foreign key to Service, nil for plan subscriptions
	PlanID    *uint `json:"planId"`               // Foreign key to Plan, nil for service subscriptions
}
