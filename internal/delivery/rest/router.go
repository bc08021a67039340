package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter barcha REST marshrutlari
func NewRouter(h *Handler, origins []string) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = maxUploadSize

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && strings.TrimSpace(origins[0]) == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Katalog
		api.GET("/products", h.listProducts)
		api.GET("/products/categories", h.listCategories)
		api.GET("/products/:id", h.getProduct)
		api.GET("/products/:id/related", h.relatedProducts)
		api.GET("/products/:id/reviews", h.productReviews)
		api.GET("/products/:id/questions", h.productQuestions)
		api.GET("/recommendations", h.recommendations)

		// Savat
		api.GET("/cart/:session", h.getCart)
		api.DELETE("/cart/:session", h.clearCart)
		api.POST("/cart/:session/items", h.addCartItem)
		api.PUT("/cart/:session/items/:productId", h.updateCartItem)
		api.DELETE("/cart/:session/items/:productId", h.removeCartItem)

		// Istaklar
		api.GET("/wishlist/:session", h.getWishlist)
		api.POST("/wishlist/:session/:productId", h.toggleWishlist)

		// Buyurtmalar
		api.POST("/checkout/:session", h.placeOrder)
		api.GET("/orders/:session", h.listOrders)
		api.GET("/order/:id", h.getOrder)

		// His-tuyg'u kuzatuvi
		api.POST("/emotion/analyze", h.analyzeEmotion)
		api.GET("/emotion/:session", h.emotionSnapshot)
		api.DELETE("/emotion/:session", h.resetEmotion)

		// Favqulodda xabarlar
		api.POST("/alerts/emergency", h.sendEmergency)
		api.POST("/alerts/email", h.requireAdmin, h.sendEmail)
		api.GET("/alerts", h.requireAdmin, h.alertHistory)

		// Admin
		api.POST("/admin/login", h.adminLogin)
		api.POST("/admin/logout", h.adminLogout)
		api.GET("/admin/catalog", h.catalogInfo)
		api.POST("/admin/catalog", h.uploadCatalog)
		api.GET("/admin/orders.xlsx", h.exportOrders)
		api.GET("/admin/actions", h.adminActions)
	}

	return r
}
