package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/diag"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/onboarding"
	"github.com/blockchainsamuel0/calabarEats/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Uploads is the blob store vetting photos go to. Set in main; tests
// install a fake.
var Uploads storage.Uploader

// ── Chef profile / onboarding ────────────────────────────────────────────────

// SetupChefProfile completes chef onboarding: business details plus
// exactly five vetting photos, each capped at 5MB. Validation rejects the
// whole submission before any upload starts. On success the profile is
// marked complete and the account moves into the vetting queue. Only an
// account whose allowed destination is profile setup may submit; anyone
// further along the workflow is refused, so an approved chef can never
// push themselves back into the vetting queue.
func SetupChefProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
		return
	}
	dest := onboarding.ResolveUser(&user)
	if dest != onboarding.DestinationProfileSetup {
		diag.EmitPermissionDenied(c.FullPath(), "submit", userID)
		c.JSON(http.StatusForbidden, gin.H{
			"error":    "Profile setup is not available for your account",
			"redirect": dest.Path(),
		})
		return
	}

	var profile models.ChefProfile
	if err := config.DB.Where("owner_user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No chef profile found for your account"})
		return
	}

	name := c.PostForm("name")
	address := c.PostForm("address")
	startTime := c.PostForm("start_time")
	endTime := c.PostForm("end_time")
	if name == "" || address == "" || startTime == "" || endTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, address, start_time and end_time are required"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}
	photos := form.File["photos"]
	if err := storage.ValidateVettingPhotos(photos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "photos"})
		return
	}

	if Uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo storage is not configured"})
		return
	}

	var photoURLs []string
	for i, photo := range photos {
		f, err := photo.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read photo " + photo.Filename})
			return
		}
		key := fmt.Sprintf("vetting_photos/%d/photo_%d", userID, i+1)
		url, err := Uploads.Upload(c.Request.Context(), key, f, photo.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload photo " + photo.Filename})
			return
		}
		photoURLs = append(photoURLs, url)
	}

	urlsJSON, _ := json.Marshal(photoURLs)
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		profileUpdate := map[string]interface{}{
			"name":                name,
			"address_text":        address,
			"working_hours_start": startTime,
			"working_hours_end":   endTime,
			"vetting_photo_urls":  urlsJSON,
			"profile_complete":    true,
		}
		if err := tx.Model(&profile).Updates(profileUpdate).Error; err != nil {
			return err
		}
		userUpdate := map[string]interface{}{
			"onboarding_status": models.OnboardingCompleted,
			"vetting_status":    models.VettingPending,
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(userUpdate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save your profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile submitted. Your account is now awaiting vetting.",
		"photos":  photoURLs,
	})
}

// GetMyChefProfile fetches the caller's chef profile with dishes
func GetMyChefProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var profile models.ChefProfile
	if err := config.DB.Preload("Dishes").Where("owner_user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No chef profile found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type UpdateChefStatusRequest struct {
	Status models.ChefStatus `json:"status" binding:"required,oneof=open closed"`
}

// UpdateChefStatus opens or closes the kitchen for new orders
func UpdateChefStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var profile models.ChefProfile
	if err := config.DB.Where("owner_user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No chef profile found for your account"})
		return
	}

	var req UpdateChefStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.DB.Model(&profile).Update("status", req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Kitchen is now " + string(req.Status)})
}

// ── Menu management ─────────────────────────────────────────────────────────

type CreateDishRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required,gt=0"`
	Category    string         `json:"category"`
	ImageID     string         `json:"image_id"`
	Ingredients []string       `json:"ingredients"`
	Addons      []models.Addon `json:"addons"`
}

// CreateDish adds a dish to the chef's menu. New dishes start with zero
// inventory and therefore unavailable until stock is set.
func CreateDish(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish := models.Dish{
		ChefID:      chefID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageID:     req.ImageID,
	}
	if len(req.Ingredients) > 0 {
		dish.Ingredients, _ = json.Marshal(req.Ingredients)
	}
	if len(req.Addons) > 0 {
		dish.Addons, _ = json.Marshal(req.Addons)
	}

	if err := config.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add dish"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish added", "dish": dish})
}

// loadOwnedDish fetches a dish and verifies the caller owns it
func loadOwnedDish(c *gin.Context) (*models.Dish, bool) {
	chefID := middleware.GetUserID(c)
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("dishId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return nil, false
	}
	if dish.ChefID != chefID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this dish"})
		return nil, false
	}
	return &dish, true
}

// UpdateDish edits a dish's details. Inventory has its own endpoint so
// availability stays derived from the count.
func UpdateDish(c *gin.Context) {
	dish, ok := loadOwnedDish(c)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "description": true, "price": true, "category": true, "image_id": true, "ingredients": true, "addons": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if !allowed[k] {
			continue
		}
		if k == "ingredients" || k == "addons" {
			raw, err := json.Marshal(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + k})
				return
			}
			update[k] = raw
			continue
		}
		update[k] = v
	}
	config.DB.Model(dish).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Dish updated", "dish": dish})
}

// DeleteDish removes a dish from the menu
func DeleteDish(c *gin.Context) {
	dish, ok := loadOwnedDish(c)
	if !ok {
		return
	}
	config.DB.Delete(dish)
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
}

type UpdateInventoryRequest struct {
	Count *int `json:"count" binding:"required,min=0"`
}

// UpdateDishInventory sets the stock count and rederives availability
func UpdateDishInventory(c *gin.Context) {
	dish, ok := loadOwnedDish(c)
	if !ok {
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{
		"inventory_count": *req.Count,
		"is_available":    *req.Count > 0,
	}
	if err := config.DB.Model(dish).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Inventory updated",
		"inventory_count": *req.Count,
		"is_available":    *req.Count > 0,
	})
}
