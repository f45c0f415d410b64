package api

import (
	"errors"                         // Error matching
	"net/http"                       // HTTP status codes
	"net/url"                        // Redirect URL query encoding
	"service_portal/internal/domain" // Importing domain models
	"strconv"                        // ID formatting

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`        // Display name must be provided
	Email       string `json:"email" binding:"required"`       // Email must be provided
	Password    string `json:"password" binding:"required"`    // Password must be provided
	AccountType string `json:"accountType" binding:"required"` // Account type must be provided
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UserResponse represents the public user fields returned on login
type UserResponse struct {
	ID          uint   `json:"id"`          // User ID
	Name        string `json:"name"`        // Display name
	Email       string `json:"email"`       // Email address
	AccountType string `json:"accountType"` // Role: admin or user
	Verified    bool   `json:"verified"`    // Email verification flag
}

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with field details
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
			return
		}
		// Hash the password with cost factor 10 before storing
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// Create the user row; email uniqueness is enforced by the store
		user := domain.User{
			Name:        req.Name,        // Display name
			Email:       req.Email,       // Unique email
			Password:    string(hash),    // Bcrypt hash
			AccountType: req.AccountType, // Requested role
		}
		if err := db.Create(&user).Error; err != nil {
			// Duplicate email is the one expected conflict on this surface
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
				return
			}
			// Anything else is unexpected; log detail server-side only
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Attempted email
				"error": err.Error(), // Store error detail
			}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		// Return success response; no session or token is issued
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates a user and returns their public fields plus a
// dashboard redirect target based on account type
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with field details
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
			return
		}
		var user domain.User // Fetch user from database by email
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Deliberately the same message as a wrong password
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			// Store failure is unexpected; keep detail server-side
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Attempted email
				"error": err.Error(), // Store error detail
			}).Error("Login lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Build the dashboard redirect, embedding name and id as query parameters
		c.JSON(http.StatusOK, gin.H{
			"user": UserResponse{
				ID:          user.ID,          // User ID
				Name:        user.Name,        // Display name
				Email:       user.Email,       // Email address
				AccountType: user.AccountType, // Role
				Verified:    user.Verified,    // Verification flag
			},
			"redirectUrl": dashboardURL(&user), // Client-side redirect target
		})
	}
}

// dashboardURL picks the dashboard route for the user's account type and
// embeds name and id as query parameters
func dashboardURL(user *domain.User) string {
	path := "/user-dashboard" // Default dashboard
	if user.AccountType == "admin" {
		path = "/admin-dashboard" // Admin dashboard
	}
	q := url.Values{}                                // Query parameters
	q.Set("name", user.Name)                         // Display name
	q.Set("id", strconv.FormatUint(uint64(user.ID), 10)) // User ID, not an opaque token
	return path + "?" + q.Encode()
}
