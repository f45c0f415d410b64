package api

import (
	"net/http"                       // HTTP status codes
	"service_portal/internal/domain" // Importing domain models
	"time"                           // Row timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateServiceRequest represents a service creation request
type CreateServiceRequest struct {
	Service string `json:"service" binding:"required"` // Service name must be provided
	Level   string `json:"level" binding:"required"`   // Service level must be provided
	AdminID uint   `json:"adminId" binding:"required"` // Owning admin must be provided
}

// serviceRow is the rich projection for the service listing (admin name joined)
type serviceRow struct {
	ID        uint      `json:"id"`         // Service ID
	Service   string    `json:"service"`    // Service name
	Level     string    `json:"level"`      // Service level
	AdminName *string   `json:"admin_name"` // Owner name, null if owner missing
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation
}

// CreateServiceHandler creates a new service entry
func CreateServiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateServiceRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with field details
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
			return
		}
		// Insert the service row
		service := domain.Service{
			Service: req.Service, // Service name
			Level:   req.Level,   // Service level
			AdminID: req.AdminID, // Owning admin
		}
		if err := db.Create(&service).Error; err != nil {
			// If creation fails, log and return internal server error
			logrus.WithFields(logrus.Fields{
				"service": req.Service, // Service name
				"error":   err.Error(), // Store error detail
			}).Error("Failed to create service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Service created successfully", "serviceId": service.ID})
	}
}

// ListServicesHandler returns all services newest first with the owning
// admin's name joined (rich projection)
func ListServicesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []serviceRow // Projection rows
		if err := db.Table("services").
			Select("services.id, services.service, services.level, services.created_at, users.name AS admin_name").
			Joins("LEFT JOIN users ON users.id = services.admin_id").
			Order("services.created_at DESC, services.id DESC").
			Scan(&rows).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": rows}) // Return service list
	}
}

// LegacyListServicesHandler returns the older field-reduced projection
// without the admin join, kept for backward compatibility
func LegacyListServicesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var services []domain.Service // Raw service rows
		if err := db.Order("created_at DESC, id DESC").Find(&services).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": services}) // Return minimal service list
	}
}
