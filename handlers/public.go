package handlers

import (
	"net/http"
	"strconv"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/statemachine"

	"github.com/gin-gonic/gin"
)

// ListMeals returns available dishes across all chefs (public)
func ListMeals(c *gin.Context) {
	var dishes []models.Dish
	query := config.DB.Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if p, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", p)
		}
	}

	query.Order("created_at desc").Find(&dishes)
	c.JSON(http.StatusOK, gin.H{
		"count": len(dishes),
		"meals": dishes,
	})
}

// GetMeal returns a single dish with its addon catalog (public)
func GetMeal(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": dish, "addons": dish.AddonList()})
}

// ListChefs returns vetted chefs with a completed profile (public)
func ListChefs(c *gin.Context) {
	var chefs []models.ChefProfile
	query := config.DB.Where("profile_complete = ?", true)
	if open := c.Query("open"); open == "true" {
		query = query.Where("status = ?", models.ChefOpen)
	}
	query.Find(&chefs)
	c.JSON(http.StatusOK, gin.H{"count": len(chefs), "chefs": chefs})
}

// GetChefMenu returns a chef's dishes (public). The :id is the chef's
// user ID, the same identifier orders and dishes carry.
func GetChefMenu(c *gin.Context) {
	chefUserID := c.Param("id")
	var chef models.ChefProfile
	if err := config.DB.Where("owner_user_id = ?", chefUserID).First(&chef).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
		return
	}

	var dishes []models.Dish
	query := config.DB.Where("chef_id = ?", chefUserID)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&dishes)

	c.JSON(http.StatusOK, gin.H{
		"chef":  chef.Name,
		"count": len(dishes),
		"menu":  dishes,
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		"description":     "CalabarEats Order Lifecycle State Machine",
	})
}
