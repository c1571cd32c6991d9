package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcahub/config"
	"alcahub/cron"
	"alcahub/database"
	orderRepoPkg "alcahub/database/repository/order"
	professionalRepoPkg "alcahub/database/repository/professional"
	userRepoPkg "alcahub/database/repository/user"
	"alcahub/handlers"
	"alcahub/middleware"
	"alcahub/routes"
	"alcahub/services/booking"
	orderSvc "alcahub/services/order"
	"alcahub/services/payment"
	userSvc "alcahub/services/user"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	profRepo := professionalRepoPkg.NewMongoProfessionalRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	if err := professionalRepoPkg.Seed(profRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed professional fixtures: %v", err)
	}

	// task queue client for reminder scheduling.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	// services.
	orderService := &orderSvc.DefaultOrderService{
		Repo:     orderRepo,
		Cache:    utils.GetCacheClient(),
		Fixtures: orderSvc.Fixtures(),
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	bookingService := &booking.DefaultBookingSessionService{
		Sessions:         booking.NewSessionStore(utils.GetCacheClient(), sessionTTL),
		ProfessionalRepo: profRepo,
		Orders:           orderService,
		Tasks:            taskClient,
		SlotMinutes:      config.AppConfig.SlotDurationMinutes,
	}

	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}

	paymentService := payment.NewStripePaymentService(logger)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService, logger)
	profileHandler := handlers.NewProfileHandler(userService)
	favoritesHandler := handlers.NewFavoritesHandler(userService)
	professionalHandler := handlers.NewProfessionalHandler(profRepo, orderService, config.AppConfig.SlotDurationMinutes)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	orderHandler := handlers.NewOrderHandler(orderService, profRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentService, orderService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler:       authHandler.RegisterHandler,
		LoginHandler:          authHandler.LoginHandler,
		ForgotPasswordHandler: authHandler.ForgotPasswordHandler,
		ResetPasswordHandler:  authHandler.ResetPasswordHandler,
		SwitchModeHandler:     authHandler.SwitchModeHandler,

		GetMeHandler:               profileHandler.GetMeHandler,
		UpdateProfileHandler:       profileHandler.UpdateProfileHandler,
		UpdateSettingsHandler:      profileHandler.UpdateSettingsHandler,
		AddPaymentMethodHandler:    profileHandler.AddPaymentMethodHandler,
		DeletePaymentMethodHandler: profileHandler.DeletePaymentMethodHandler,
		DeleteAccountHandler:       profileHandler.DeleteAccountHandler,

		ListFavoritesHandler:  favoritesHandler.ListFavoritesHandler,
		AddFavoriteHandler:    favoritesHandler.AddFavoriteHandler,
		RemoveFavoriteHandler: favoritesHandler.RemoveFavoriteHandler,

		ListProfessionalsHandler:   professionalHandler.ListProfessionalsHandler,
		GetProfessionalByIDHandler: professionalHandler.GetProfessionalByIDHandler,
		GetCalendarHandler:         professionalHandler.GetCalendarHandler,
		GetAvailabilityHandler:     professionalHandler.GetAvailabilityHandler,

		InitiateSession: bookingHandler.InitiateSession,
		GetSession:      bookingHandler.GetSession,
		UpdateSession:   bookingHandler.UpdateSession,
		NextStep:        bookingHandler.NextStep,
		PrevStep:        bookingHandler.PrevStep,
		CompleteBooking: bookingHandler.CompleteBooking,
		CancelSession:   bookingHandler.CancelSession,

		ListOrdersHandler:        orderHandler.ListOrdersHandler,
		CreateOrderHandler:       orderHandler.CreateOrderHandler,
		UpdateOrderStatusHandler: orderHandler.UpdateOrderStatusHandler,
		SubmitReviewHandler:      orderHandler.SubmitReviewHandler,
		OrderStatusStylesHandler: orderHandler.OrderStatusStylesHandler,

		CreateIntentHandler:   paymentHandler.CreateIntentHandler,
		ConfirmPaymentHandler: paymentHandler.ConfirmPaymentHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers: reminder queue and stale-pending sweep.
	cron.InitReminderWorker(orderService)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetResetCacheClient(),
	}, database.MongoClient)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
	logger.Info("server stopped")
}
