package handlers

import (
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/notify"
	"github.com/blockchainsamuel0/calabarEats/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SetVettingStatusRequest struct {
	Status models.VettingStatus `json:"status" binding:"required,oneof=approved rejected"`
	Note   string               `json:"note"`
}

// AdminSetVettingStatus is the reviewer surface: approve or reject a chef
// that has completed onboarding.
func AdminSetVettingStatus(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Role != models.RoleChef {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is not a chef"})
		return
	}
	if user.OnboardingStatus != models.OnboardingCompleted {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Chef has not completed onboarding yet"})
		return
	}

	var req SetVettingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&user).Update("vetting_status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vetting status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Vetting status updated",
		"user_id":        user.ID,
		"vetting_status": req.Status,
	})
}

// AdminGetAllUsers returns all users — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if vetting := c.Query("vetting_status"); vetting != "" {
		query = query.Where("vetting_status = ?", vetting)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllChefs returns all chef profiles — admin only
func AdminGetAllChefs(c *gin.Context) {
	var chefs []models.ChefProfile
	config.DB.Preload("Owner").Preload("Dishes").Find(&chefs)
	c.JSON(http.StatusOK, gin.H{"count": len(chefs), "chefs": chefs})
}

// AdminGetAllOrders returns all orders with full detail — admin only
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Customer").Preload("StatusHistory")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if chefID := c.Query("chef_id"); chefID != "" {
		query = query.Where("chef_id = ?", chefID)
	}
	query.Order("created_at desc").Find(&orders)

	// Aggregate by status; revenue counts completed orders only
	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			totalRevenue += o.Subtotal
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminForceOrderStatus lets an admin move an order, bound to the same
// transition graph as everyone else so the lifecycle never runs backwards.
func AdminForceOrderStatus(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
		Reason string             `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, string(middleware.GetRole(c))); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	// Status change and its audit row commit together
	prevStatus := order.Status
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", req.Status).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prevStatus,
			ToStatus:   req.Status,
			ChangedBy:  adminID,
			Note:       "[ADMIN OVERRIDE] " + req.Reason,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	notify.Default.OrderStatusChanged(order.CustomerID, order.ID, req.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status force-updated by admin",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
	})
}
