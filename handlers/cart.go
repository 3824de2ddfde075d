package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddCartItemRequest struct {
	DishID   uint     `json:"dish_id" binding:"required"`
	Quantity int      `json:"quantity" binding:"omitempty,min=1"`
	AddonIDs []string `json:"addon_ids"`
}

// AddCartItem adds a dish (plus an optional addon set) to the caller's
// cart. The same dish with the same addon set increments the existing
// line. Prices come from the store, never from the client.
func AddCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	var dish models.Dish
	if err := config.DB.First(&dish, req.DishID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if !dish.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'" + dish.Name + "' is not available right now"})
		return
	}

	// Resolve selected addons against the dish's catalog
	var selected []models.Addon
	unit := dish.Price
	for _, id := range req.AddonIDs {
		addon, ok := dish.AddonByID(id)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown addon: " + id})
			return
		}
		selected = append(selected, addon)
		unit += addon.Price
	}

	// A cart holds items from a single chef
	var other models.CartItem
	err := config.DB.Where("user_id = ? AND vendor_id <> ?", userID, dish.ChefID).First(&other).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart already holds items from another chef. Clear it to order from this chef."})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	addonKey := models.AddonKey(req.AddonIDs)
	var existing models.CartItem
	err = config.DB.Where("user_id = ? AND dish_id = ? AND addon_key = ?", userID, dish.ID, addonKey).First(&existing).Error
	if err == nil {
		if err := config.DB.Model(&existing).Update("quantity", existing.Quantity+req.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update cart item quantity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item quantity updated", "id": existing.ID})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch cart item"})
		return
	}

	var addonsJSON []byte
	if len(selected) > 0 {
		addonsJSON, _ = json.Marshal(selected)
	}
	item := models.CartItem{
		UserID:         userID,
		DishID:         dish.ID,
		AddonKey:       addonKey,
		VendorID:       dish.ChefID,
		DishName:       dish.Name,
		UnitPrice:      unit,
		Quantity:       req.Quantity,
		ImageID:        dish.ImageID,
		SelectedAddons: addonsJSON,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": dish.Name + " added to cart", "id": item.ID})
}

// GetCart returns the caller's cart with running totals
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var items []models.CartItem
	config.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&items)

	totalItems := 0
	var totalPrice float64
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += item.UnitPrice * float64(item.Quantity)
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_items": totalItems,
		"total_price": totalPrice,
	})
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem sets a line's quantity. A quantity of zero (or less)
// removes the line.
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var item models.CartItem
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Quantity <= 0 {
		config.DB.Delete(&item)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
		return
	}
	if err := config.DB.Model(&item).Update("quantity", *req.Quantity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated", "id": item.ID})
}

// RemoveCartItem deletes a line from the caller's cart
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var item models.CartItem
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}

// ClearCart empties the caller's cart
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	config.DB.Where("user_id = ?", userID).Delete(&models.CartItem{})
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
