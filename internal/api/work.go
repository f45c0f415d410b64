package api

import (
	"errors"                         // Error matching
	"net/http"                       // HTTP status codes
	"path/filepath"                  // Upload destination path
	"service_portal/internal/domain" // Importing domain models
	"service_portal/internal/utils"  // Upload filename generation
	"strconv"                        // Form field conversion
	"time"                           // Row timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// workRow is the projection for the work listing (admin name joined)
type workRow struct {
	ID          uint      `json:"id"`          // Work ID
	Title       string    `json:"title"`       // Work title
	Description string    `json:"description"` // Work description
	FilePath    *string   `json:"file_path"`   // Stored upload filename, null when no file
	AdminName   *string   `json:"admin_name"`  // Owner name, null if owner missing
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of creation
}

// UploadWorkHandler creates a work entry from a multipart form with an
// optional single file attachment. Only the generated filename is stored,
// not the full path.
func UploadWorkHandler(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")             // Work title
		description := c.PostForm("description") // Work description
		adminIDStr := c.PostForm("adminId")      // Owning admin
		// All three metadata fields are required
		if title == "" || description == "" || adminIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, description and adminId are required"})
			return
		}
		adminID, err := strconv.ParseUint(adminIDStr, 10, 64) // Parse the admin reference
		if err != nil {
			// If adminId is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "adminId must be a number"})
			return
		}
		var filePath *string // Stored filename, nil when no file was attached
		file, err := c.FormFile("file")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			// A present but unreadable file part is a client error
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file upload"})
			return
		}
		if file != nil {
			// Store under <timestamp>-<whitespace-sanitized original name>
			name := utils.GenerateUploadName(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
				// If saving fails, log and return internal server error
				logrus.WithFields(logrus.Fields{
					"filename": name,        // Generated filename
					"error":    err.Error(), // Filesystem error detail
				}).Error("Failed to save uploaded file")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
				return
			}
			filePath = &name // Only the generated name is persisted
		}
		// Insert the work row
		work := domain.Work{
			Title:       title,         // Work title
			Description: description,   // Work description
			FilePath:    filePath,      // Generated filename or null
			AdminID:     uint(adminID), // Owning admin
		}
		if err := db.Create(&work).Error; err != nil {
			// If creation fails, log and return internal server error
			logrus.WithFields(logrus.Fields{
				"title": title,       // Work title
				"error": err.Error(), // Store error detail
			}).Error("Failed to create work entry")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work entry"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Work uploaded successfully", "workId": work.ID})
	}
}

// ListWorkHandler returns all work entries newest first with the owning
// admin's name joined
func ListWorkHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []workRow // Projection rows
		if err := db.Table("work").
			Select("work.id, work.title, work.description, work.file_path, work.created_at, users.name AS admin_name").
			Joins("LEFT JOIN users ON users.id = work.admin_id").
			Order("work.created_at DESC, work.id DESC").
			Scan(&rows).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch work entries"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"work": rows}) // Return work list
	}
}
