package handlers

import (
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/onboarding"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
	Phone    string          `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. The role intent travels as an explicit
// request field and is persisted in the same create, never via shared
// state. A chef signup also creates the incomplete chef profile and the
// zero-balance wallet in the same transaction.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Admin accounts are provisioned out of band
	if req.Role != models.RoleCustomer && req.Role != models.RoleChef {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer or chef"})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
	}
	if req.Role == models.RoleChef {
		user.OnboardingStatus = models.OnboardingPending
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if req.Role != models.RoleChef {
			return nil
		}
		profile := models.ChefProfile{
			OwnerUserID: user.ID,
			Name:        user.Name,
			Status:      models.ChefClosed,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Update("chef_profile_id", profile.ID).Error; err != nil {
			return err
		}
		wallet := models.Wallet{ChefUserID: user.ID}
		return tx.Create(&wallet).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"next": onboarding.ResolveUser(&user).Path(),
	})
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"next": onboarding.ResolveUser(&user).Path(),
	})
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	resp := gin.H{"user": user}
	if user.Role == models.RoleChef {
		var profile models.ChefProfile
		if err := config.DB.Where("owner_user_id = ?", user.ID).First(&profile).Error; err == nil {
			resp["chef_profile"] = profile
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetSessionRoute evaluates the onboarding policy for the caller. Clients
// call this on every navigation; the answer depends only on the persisted
// state tuple, so repeated calls for the same state always agree.
func GetSessionRoute(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	dest := onboarding.ResolveUser(&user)
	c.JSON(http.StatusOK, gin.H{
		"destination": dest,
		"path":        dest.Path(),
	})
}
