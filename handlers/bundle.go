package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the HTTP handlers handed to route registration.
type HandlerBundle struct {
	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Authenticated user endpoints.
	GetProfileHandler gin.HandlerFunc
	AuthMiddleware    gin.HandlerFunc

	// Catalog and discovery endpoints.
	ListServicesHandler   gin.HandlerFunc
	NearbyMaallemsHandler gin.HandlerFunc

	// Booking endpoints.
	SOSBookingHandler gin.HandlerFunc

	// AI endpoints.
	AnalyzeSOSHandler   gin.HandlerFunc
	DiagnoseChatHandler gin.HandlerFunc
}
