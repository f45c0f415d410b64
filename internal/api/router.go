package api

import (
	"net/http"      // HTTP status codes
	"path/filepath" // Static asset paths
	"service_portal/internal/config"   // Application configuration
	"service_portal/internal/currency" // Exchange-rate lookup

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires all routes onto a gin engine. Dependencies are constructed
// once at process start and passed into every handler.
func NewRouter(db *gorm.DB, rates *currency.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default() // Gin router instance with logger and recovery

	// Static front-end assets and uploaded files
	r.StaticFile("/", filepath.Join(cfg.PublicDir, "index.html"))                          // Landing page
	r.StaticFile("/admin-dashboard", filepath.Join(cfg.PublicDir, "admin-dashboard.html")) // Admin dashboard
	r.StaticFile("/user-dashboard", filepath.Join(cfg.PublicDir, "user-dashboard.html"))   // User dashboard
	r.Static("/uploads", cfg.UploadDir)                                                    // Uploaded work files, served verbatim

	// Liveness probe
	r.GET("/healthz", HealthHandler(db))

	// Auth routes
	r.POST("/register", RegisterHandler(db)) // Registration endpoint
	r.POST("/login", LoginHandler(db))       // Login endpoint

	// API routes
	apiGroup := r.Group("/api")
	apiGroup.POST("/plans", CreatePlanHandler(db))                     // Create plan endpoint
	apiGroup.GET("/plans", ListPlansHandler(db, rates))                // List plans with currency conversion
	apiGroup.POST("/services", CreateServiceHandler(db))               // Create service endpoint
	apiGroup.GET("/services", ListServicesHandler(db))                 // Rich service listing
	apiGroup.POST("/announcements", CreateAnnouncementHandler(db))     // Create announcement endpoint
	apiGroup.GET("/announcements", ListAnnouncementsHandler(db))       // Rich announcement listing
	apiGroup.POST("/work", UploadWorkHandler(db, cfg.UploadDir))       // Work upload endpoint
	apiGroup.GET("/work", ListWorkHandler(db))                         // Work listing

	// Legacy projections kept for backward compatibility
	r.GET("/services", LegacyListServicesHandler(db))           // Minimal service listing
	r.GET("/announcements", LegacyListAnnouncementsHandler(db)) // Minimal announcement listing

	// Subscription route
	r.POST("/subscribe", SubscribeHandler(db)) // Subscribe endpoint

	return r
}

// HealthHandler reports whether the store is reachable
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB() // Underlying database/sql handle
		if err != nil || sqlDB.Ping() != nil {
			// Store unreachable
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"}) // Store reachable
	}
}
