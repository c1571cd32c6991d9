package routes

import (
	"net/http"
	"time"

	"alcahub/handlers"
	"alcahub/middleware"
	"alcahub/models"
	"alcahub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)
		api.POST("/reset-password", hb.ResetPasswordHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/switch-mode", hb.SwitchModeHandler)
	}
}

// RegisterProfileRoutes registers the signed-in user's account endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/me")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.GetMeHandler)
		api.PATCH("", hb.UpdateProfileHandler)
		api.PUT("/settings", hb.UpdateSettingsHandler)
		api.POST("/payment-methods", hb.AddPaymentMethodHandler)
		api.DELETE("/payment-methods/:pmID", hb.DeletePaymentMethodHandler)
		api.DELETE("", hb.DeleteAccountHandler)

		api.GET("/favorites", hb.ListFavoritesHandler)
		api.PUT("/favorites/:id", hb.AddFavoriteHandler)
		api.DELETE("/favorites/:id", hb.RemoveFavoriteHandler)
	}
}

// RegisterProfessionalRoutes registers the catalogue and availability
// endpoints. Browsing is public; no token required.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("", hb.ListProfessionalsHandler)
		api.GET("/:id", hb.GetProfessionalByIDHandler)
		api.GET("/:id/calendar", hb.GetCalendarHandler)
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
	}
}

// RegisterBookingRoutes sets up the wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		// Only residents book; prestador accounts switch mode first.
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleResident))
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/next", hb.NextStep)
		bookingGroup.POST("/session/:sessionID/prev", hb.PrevStep)
		bookingGroup.POST("/session/:sessionID/complete", hb.CompleteBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterOrderRoutes registers the order list and lifecycle endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.GET("/status-styles", hb.OrderStatusStylesHandler)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListOrdersHandler)
		api.POST("", middleware.RequireRole(models.RoleResident), hb.CreateOrderHandler)
		api.PATCH("/:id/status", hb.UpdateOrderStatusHandler)
		api.POST("/:id/review", hb.SubmitReviewHandler)
	}
}

// RegisterPaymentRoutes registers the charge endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/intent", hb.CreateIntentHandler)
		api.POST("/confirm", hb.ConfirmPaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
