package routes

import (
	"github.com/blockchainsamuel0/calabarEats/handlers"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Browse meals & chefs (no auth needed)
		public.GET("/meals", handlers.ListMeals)
		public.GET("/meals/:id", handlers.GetMeal)
		public.GET("/chefs", handlers.ListChefs)
		public.GET("/chefs/:id/menu", handlers.GetChefMenu)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/session/route", handlers.GetSessionRoute)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/cart", handlers.GetCart)
		customer.POST("/cart/items", handlers.AddCartItem)
		customer.PUT("/cart/items/:id", handlers.UpdateCartItem)
		customer.DELETE("/cart/items/:id", handlers.RemoveCartItem)
		customer.DELETE("/cart", handlers.ClearCart)

		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.PUT("/orders/:id/cancel", handlers.CancelOrder)
	}

	// ── Chef routes ────────────────────────────────────────────────
	chef := r.Group("/api/chef")
	chef.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleChef))
	{
		// Onboarding surface — reachable before approval
		chef.POST("/profile", handlers.SetupChefProfile)
		chef.GET("/profile", handlers.GetMyChefProfile)
	}

	// Dashboard — gated behind the onboarding/vetting workflow
	dashboard := r.Group("/api/chef")
	dashboard.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleChef), middleware.ChefApproved())
	{
		dashboard.PUT("/status", handlers.UpdateChefStatus)

		// Menu management
		dashboard.POST("/dishes", handlers.CreateDish)
		dashboard.PUT("/dishes/:dishId", handlers.UpdateDish)
		dashboard.DELETE("/dishes/:dishId", handlers.DeleteDish)
		dashboard.PUT("/dishes/:dishId/inventory", handlers.UpdateDishInventory)

		// Order management
		dashboard.GET("/orders", handlers.GetChefOrders)
		dashboard.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Wallet
		dashboard.GET("/wallet", handlers.GetWallet)
		dashboard.PUT("/wallet/payout-details", handlers.UpdatePayoutDetails)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.PUT("/chefs/:id/vetting", handlers.AdminSetVettingStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/chefs", handlers.AdminGetAllChefs)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
	}
}
