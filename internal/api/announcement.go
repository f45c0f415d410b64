package api

import (
	"net/http"                       // HTTP status codes
	"service_portal/internal/domain" // Importing domain models
	"time"                           // Row timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateAnnouncementRequest represents an announcement creation request
type CreateAnnouncementRequest struct {
	Title   string `json:"title"`                      // Optional, defaults to empty
	Content string `json:"content" binding:"required"` // Announcement body must be provided
	AdminID uint   `json:"adminId" binding:"required"` // Owning admin must be provided
}

// announcementRow is the rich projection for the announcement listing
type announcementRow struct {
	ID        uint      `json:"id"`         // Announcement ID
	Title     string    `json:"title"`      // Announcement title
	Content   string    `json:"content"`    // Announcement body
	AdminName *string   `json:"admin_name"` // Owner name, null if owner missing
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation
}

// CreateAnnouncementHandler creates a new announcement
func CreateAnnouncementHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAnnouncementRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with field details
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
			return
		}
		// Insert the announcement row
		announcement := domain.Announcement{
			Title:   req.Title,   // Defaults to empty string
			Content: req.Content, // Announcement body
			AdminID: req.AdminID, // Owning admin
		}
		if err := db.Create(&announcement).Error; err != nil {
			// If creation fails, log and return internal server error
			logrus.WithFields(logrus.Fields{
				"admin_id": req.AdminID, // Owning admin
				"error":    err.Error(), // Store error detail
			}).Error("Failed to create announcement")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Announcement created successfully", "announcementId": announcement.ID})
	}
}

// ListAnnouncementsHandler returns all announcements newest first with the
// owning admin's name joined (rich projection)
func ListAnnouncementsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []announcementRow // Projection rows
		if err := db.Table("announcements").
			Select("announcements.id, announcements.title, announcements.content, announcements.created_at, users.name AS admin_name").
			Joins("LEFT JOIN users ON users.id = announcements.admin_id").
			Order("announcements.created_at DESC, announcements.id DESC").
			Scan(&rows).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"announcements": rows}) // Return announcement list
	}
}

// LegacyListAnnouncementsHandler returns the older field-reduced projection
// without the admin join, kept for backward compatibility
func LegacyListAnnouncementsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var announcements []domain.Announcement // Raw announcement rows
		if err := db.Order("created_at DESC, id DESC").Find(&announcements).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"announcements": announcements}) // Return minimal announcement list
	}
}
