package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"

	"github.com/gin-gonic/gin"
)

// GetWallet returns the chef's balances and payout details
func GetWallet(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	var wallet models.Wallet
	if err := config.DB.Where("chef_user_id = ?", chefID).First(&wallet).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No wallet found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

type UpdatePayoutDetailsRequest struct {
	AccountName       string `json:"account_name" binding:"required,min=2"`
	AccountNumber     string `json:"account_number" binding:"required,len=10,numeric"`
	BankName          string `json:"bank_name" binding:"required"`
	MobileMoneyNumber string `json:"mobile_money_number"`
}

// UpdatePayoutDetails saves where the chef gets paid out. Balances are
// never writable through the API.
func UpdatePayoutDetails(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	var wallet models.Wallet
	if err := config.DB.Where("chef_user_id = ?", chefID).First(&wallet).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No wallet found for your account"})
		return
	}

	var req UpdatePayoutDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details := models.PayoutDetails{
		AccountName:       req.AccountName,
		AccountNumber:     req.AccountNumber,
		BankName:          req.BankName,
		MobileMoneyNumber: req.MobileMoneyNumber,
	}
	raw, err := json.Marshal(details)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode payout details"})
		return
	}
	if err := config.DB.Model(&wallet).Update("payout_details", raw).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payout details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payout details updated", "payout_details": details})
}
