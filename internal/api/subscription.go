package api

import (
	"net/http"                       // HTTP status codes
	"service_portal/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// SubscribeRequest represents a subscription request targeting either a
// service or a plan
type SubscribeRequest struct {
	UserID    uint  `json:"userId" binding:"required"` // Subscribing user must be provided
	ServiceID *uint `json:"serviceId"`                 // Target service, optional
	PlanID    *uint `json:"planId"`                    // Target plan, optional
}

// SubscribeHandler records a subscription to a service or a plan. When both
// targets are present, serviceId takes precedence and planId is silently
// ignored. No payment processing occurs regardless of plan price.
func SubscribeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with field details
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
			return
		}
		// At least one target is required
		if req.ServiceID == nil && req.PlanID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either serviceId or planId is required"})
			return
		}
		sub := domain.Subscription{UserID: req.UserID} // New subscription row
		if req.ServiceID != nil {
			sub.ServiceID = req.ServiceID // Service subscription; planId ignored if also given
		} else {
			sub.PlanID = req.PlanID // Plan subscription
		}
		if err := db.Create(&sub).Error; err != nil {
			// If creation fails, log and return internal server error
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,  // Subscribing user
				"error":   err.Error(), // Store error detail
			}).Error("Failed to create subscription")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully", "subscriptionId": sub.ID})
	}
}
