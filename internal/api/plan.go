package api

import (
	"math"     // Price rounding
	"net/http" // HTTP status codes
	"service_portal/internal/currency" // Exchange-rate lookup
	"service_portal/internal/domain"   // Importing domain models
	"strings"                          // Currency normalization
	"time"                             // Row timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreatePlanRequest represents a plan creation request
type CreatePlanRequest struct {
	AdminID     uint    `json:"adminId" binding:"required"`  // Owning admin must be provided
	Name        string  `json:"name" binding:"required"`     // Plan name must be provided
	Description string  `json:"description"`                 // Optional, defaults to empty
	Price       float64 `json:"price" binding:"required,gt=0"`    // Price in the base currency, must be positive
	Duration    int     `json:"duration" binding:"required,gt=0"` // Duration in days, must be positive
}

// planRow is the projection for the plan listing (LEFT JOIN with users)
type planRow struct {
	ID           uint      `json:"id"`            // Plan ID
	Name         string    `json:"name"`          // Plan name
	Description  string    `json:"description"`   // Plan description
	PriceUSD     float64   `gorm:"column:price_usd" json:"price_usd"` // Stored base-currency price
	DurationDays int       `json:"duration_days"` // Duration in days
	AdminName    *string   `json:"admin_name"`    // Owner name, null if owner missing
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of creation
}

// planListItem is a plan row enriched with the converted local price
type planListItem struct {
	planRow              // Stored fields
	PriceLocal float64 `json:"price_local"` // Converted price, rounded to 2 decimals
}

// CreatePlanHandler creates a new plan owned by an admin.
// No verification that adminId refers to an actual admin account.
func CreatePlanHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePlanRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with field details
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
			return
		}
		// Insert the plan as active
		plan := domain.Plan{
			AdminID:      req.AdminID,     // Owning admin
			Name:         req.Name,        // Plan name
			Description:  req.Description, // Defaults to empty string
			PriceUSD:     req.Price,       // Base-currency price
			DurationDays: req.Duration,    // Duration in days
			Active:       true,            // New plans are active
		}
		if err := db.Create(&plan).Error; err != nil {
			// If creation fails, log and return internal server error
			logrus.WithFields(logrus.Fields{
				"admin_id": req.AdminID, // Owning admin
				"name":     req.Name,    // Plan name
				"error":    err.Error(), // Store error detail
			}).Error("Failed to create plan")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
			return
		}
		// Return the new identifier
		c.JSON(http.StatusOK, gin.H{"planId": plan.ID})
	}
}

// ListPlansHandler returns active plans newest first, with prices converted
// to the requested currency via the rate lookup
func ListPlansHandler(db *gorm.DB, rates *currency.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Default the currency to the base when absent
		cur := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
		if cur == "" {
			cur = rates.Base() // Base currency
		}
		rate := rates.Rate(cur) // Fail-open: 1 on any lookup failure
		var rows []planRow      // Projection rows
		// Only active plans, newest first, owner name joined (null if missing)
		if err := db.Table("plans").
			Select("plans.id, plans.name, plans.description, plans.price_usd, plans.duration_days, plans.created_at, users.name AS admin_name").
			Joins("LEFT JOIN users ON users.id = plans.admin_id").
			Where("plans.active = ?", true).
			Order("plans.created_at DESC, plans.id DESC").
			Scan(&rows).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
			return
		}
		// Attach the converted local price to every row
		items := make([]planListItem, len(rows))
		for i, row := range rows {
			items[i] = planListItem{
				planRow:    row,                                    // Stored fields
				PriceLocal: math.Round(row.PriceUSD*rate*100) / 100, // Rounded to 2 decimals
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"plans":    items,        // Converted plan list
			"rate":     rate,         // Effective conversion rate
			"base":     rates.Base(), // Base currency used for storage
			"currency": cur,          // Currency the prices were converted to
		})
	}
}
