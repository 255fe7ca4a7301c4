package handlers

import (
	"net/http"
	"time"

	"retail-pos-api/config"
	"retail-pos-api/logger"
	"retail-pos-api/middleware"
	"retail-pos-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Username string          `json:"username" binding:"required,min=3"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !models.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role. Must be: admin, manager, chef, or staff"})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User with this email or username already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		logger.Error("create user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Login authenticates by username or email and returns a JWT.
// Updates LastLogin as a side effect of credential issuance.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Username == "" && req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a username or email"})
		return
	}

	var user models.User
	q := config.DB
	if req.Username != "" {
		q = q.Where("username = ?", req.Username)
	} else {
		q = q.Where("email = ?", req.Email)
	}
	if err := q.First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account is deactivated"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", now)

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Me returns the authenticated user's profile
func Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ValidateSession confirms the presented token still resolves to an active user
func ValidateSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "valid": true})
}

// Logout acknowledges logout. Tokens are stateless, so there is nothing to
// revoke server-side; clients discard the token.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// SetupSampleUsers seeds one user per role for demos. No-op when users exist.
func SetupSampleUsers(c *gin.Context) {
	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Users already exist"})
		return
	}

	samples := []struct {
		Name     string
		Username string
		Email    string
		Role     models.UserRole
	}{
		{"Admin User", "admin", "admin@example.com", models.RoleAdmin},
		{"Manager User", "manager", "manager@example.com", models.RoleManager},
		{"Chef User", "chef", "chef@example.com", models.RoleChef},
		{"Staff User", "staff", "staff@example.com", models.RoleStaff},
	}

	for _, s := range samples {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		user := models.User{
			Name:         s.Name,
			Username:     s.Username,
			Email:        s.Email,
			PasswordHash: string(hash),
			Role:         s.Role,
			IsActive:     true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			logger.Error("seed sample user failed", "username", s.Username, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Sample users created"})
}
