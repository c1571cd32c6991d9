package handlers

import (
	userRepoPkg "alcahub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc
	SwitchModeHandler     gin.HandlerFunc

	// Profile endpoints
	GetMeHandler               gin.HandlerFunc
	UpdateProfileHandler       gin.HandlerFunc
	UpdateSettingsHandler      gin.HandlerFunc
	AddPaymentMethodHandler    gin.HandlerFunc
	DeletePaymentMethodHandler gin.HandlerFunc
	DeleteAccountHandler       gin.HandlerFunc

	// Favorites endpoints
	ListFavoritesHandler  gin.HandlerFunc
	AddFavoriteHandler    gin.HandlerFunc
	RemoveFavoriteHandler gin.HandlerFunc

	// Professional endpoints
	ListProfessionalsHandler   gin.HandlerFunc
	GetProfessionalByIDHandler gin.HandlerFunc
	GetCalendarHandler         gin.HandlerFunc
	GetAvailabilityHandler     gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	NextStep        gin.HandlerFunc
	PrevStep        gin.HandlerFunc
	CompleteBooking gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Order endpoints
	ListOrdersHandler        gin.HandlerFunc
	CreateOrderHandler       gin.HandlerFunc
	UpdateOrderStatusHandler gin.HandlerFunc
	SubmitReviewHandler      gin.HandlerFunc
	OrderStatusStylesHandler gin.HandlerFunc

	// Payment endpoints
	CreateIntentHandler   gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc
}
