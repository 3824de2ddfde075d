package handlers

import (
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/diag"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/notify"
	"github.com/blockchainsamuel0/calabarEats/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetChefOrders returns all orders for the chef's kitchen
func GetChefOrders(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Customer").
		Where("chef_id = ?", chefID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	// Dashboard summary: counts grouped by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus handles the chef's lifecycle transitions. Ownership is
// verified here, in the procedure itself, not left to any outer
// access-control layer. Every accepted transition is recorded and the
// customer is told.
func UpdateOrderStatus(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.ChefID != chefID {
		diag.EmitPermissionDenied(c.FullPath(), "update", chefID)
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your kitchen"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := string(middleware.GetRole(c))
	if err := statemachine.CanTransition(order.Status, req.Status, actor); err != nil {
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
			ChangedBy:  chefID,
			Note:       req.Note,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	notify.Default.OrderStatusChanged(order.CustomerID, order.ID, req.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}
