package handlers

import (
	"errors"
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/checkout"
	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/notify"
	"github.com/blockchainsamuel0/calabarEats/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required,min=10"`
	Phone           string `json:"phone" binding:"required,min=10"`
	PaymentMethod   string `json:"payment_method" binding:"omitempty,oneof=cash_on_delivery transfer"`
}

// PlaceOrder creates an order from the caller's cart (customer only).
// Stock checks, repricing, order creation and cart clearing happen inside
// one transaction in the checkout package.
func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := checkout.PlaceOrder(config.DB, customerID, checkout.Input{
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		var stockErr *checkout.InsufficientStockError
		var unavailErr *checkout.DishUnavailableError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		case errors.Is(err, checkout.ErrMixedVendorCart):
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart holds items from more than one chef. Order from one chef at a time."})
		case errors.As(err, &stockErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":     stockErr.Error(),
				"dish":      stockErr.DishName,
				"remaining": stockErr.Remaining,
			})
		case errors.As(err, &unavailErr):
			c.JSON(http.StatusConflict, gin.H{"error": unavailErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully",
		"order_id": order.ID,
		"subtotal": order.Subtotal,
		"order":    order,
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail with history
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("StatusHistory").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels an order (customer can cancel while pending)
func CancelOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, string(middleware.GetRole(c))); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	// Status change and its audit row commit together
	prevStatus := order.Status
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prevStatus,
			ToStatus:   models.StatusCancelled,
			ChangedBy:  customerID,
			Note:       "Order cancelled by customer",
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}

	notify.Default.OrderStatusChanged(order.CustomerID, order.ID, models.StatusCancelled)
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}
