package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SeedTiers(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	CreateOrder(c *ginext.Context)
	GetOrder(c *ginext.Context)
	PayOrder(c *ginext.Context)
	GetUserOrders(c *ginext.Context)
	GetWallet(c *ginext.Context)
	TopUpWallet(c *ginext.Context)
	GetTransactions(c *ginext.Context)
	GetSavings(c *ginext.Context)
	SetSavingsGoal(c *ginext.Context)
	AddSavings(c *ginext.Context)
	CreateProduct(c *ginext.Context)
	ListProducts(c *ginext.Context)
	GetProduct(c *ginext.Context)
	MerchStats(c *ginext.Context)
	CreateMerchOrder(c *ginext.Context)
	GetMerchOrder(c *ginext.Context)
	PayMerchOrder(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Ticket inventory
		api.POST("/events/:id/tiers", h.SeedTiers)
		api.GET("/events/:id/tiers", h.GetAvailability)

		// Ticket orders
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/pay", h.PayOrder)
		api.GET("/users/:id/orders", h.GetUserOrders)

		// Wallet
		api.GET("/users/:id/wallet", h.GetWallet)
		api.POST("/users/:id/wallet/topup", h.TopUpWallet)
		api.GET("/users/:id/wallet/transactions", h.GetTransactions)

		// Savings
		api.GET("/users/:id/savings", h.GetSavings)
		api.POST("/users/:id/savings/goal", h.SetSavingsGoal)
		api.POST("/users/:id/savings/add", h.AddSavings)

		// Merchandise
		api.POST("/products", h.CreateProduct)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/merch/stats", h.MerchStats)
		api.POST("/merch/orders", h.CreateMerchOrder)
		api.GET("/merch/orders/:id", h.GetMerchOrder)
		api.POST("/merch/orders/:id/pay", h.PayMerchOrder)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
