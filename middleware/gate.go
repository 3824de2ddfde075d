package middleware

import (
	"net/http"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/diag"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/onboarding"

	"github.com/gin-gonic/gin"
)

// ChefApproved gates dashboard routes behind the onboarding workflow. It
// re-reads the caller's persisted state on every request, so flag changes
// (profile completion, vetting decisions) take effect immediately. A chef
// elsewhere in the workflow gets a 403 carrying the route they belong on.
func ChefApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			c.Abort()
			return
		}

		dest := onboarding.ResolveUser(&user)
		if dest != onboarding.DestinationDashboard {
			diag.EmitPermissionDenied(c.FullPath(), "navigate", userID)
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "Dashboard is not available for your account yet",
				"redirect": dest.Path(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
