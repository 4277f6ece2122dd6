// File: promaallem/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promaallem/config"
	"promaallem/database"
	bookingRepo "promaallem/database/repository/booking"
	profileRepo "promaallem/database/repository/profile"
	serviceRepo "promaallem/database/repository/service"
	userRepoPkg "promaallem/database/repository/user"
	"promaallem/handlers"
	"promaallem/middleware"
	"promaallem/routes"
	"promaallem/services/auth"
	"promaallem/services/booking"
	ai "promaallem/services/intelligence"
	"promaallem/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	profRepo := profileRepo.NewMongoProfileRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Users:    userRepo,
		Profiles: profRepo,
	}
	identityResolver := &auth.DefaultIdentityResolver{
		Repo: userRepo,
	}

	matchingService := &booking.DefaultMatchingService{
		ProfileRepo: profRepo,
	}
	intakeService := &booking.DefaultIntakeService{
		MatchingSvc: matchingService,
		BookingRepo: bookRepo,
	}

	// The model provider is resolved once from the key prefix; the result
	// is immutable and injected by value.
	providerCfg := config.ResolveAIProvider(config.AppConfig.AIAPIKey)
	logger.Sugar().Infof("AI provider resolved: %s (%s)", providerCfg.Provider, providerCfg.Model)
	aiService := ai.NewDefaultIntelligenceService(providerCfg, svcRepo)

	// handlers.
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(profRepo)
	servicesHandler := handlers.NewServicesHandler(svcRepo, utils.GetCacheClient())
	providerHandler := handlers.NewProviderHandler(profRepo)
	bookingHandler := handlers.NewBookingHandler(intakeService, identityResolver)
	aiHandler := handlers.NewIntelligenceHandler(aiService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		GetProfileHandler: userHandler.GetProfileHandler,
		AuthMiddleware:    middleware.JWTAuthMiddleware(identityResolver),

		ListServicesHandler:   servicesHandler.ListServicesHandler,
		NearbyMaallemsHandler: providerHandler.NearbyMaallemsHandler,

		SOSBookingHandler: bookingHandler.SOSBookingHandler,

		AnalyzeSOSHandler:   aiHandler.AnalyzeSOSHandler,
		DiagnoseChatHandler: aiHandler.DiagnoseChatHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
