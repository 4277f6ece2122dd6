package handlers

import (
	"net/http"
	"strings"

	"promaallem/models"
	"promaallem/services/auth"
	"promaallem/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the SOS intake endpoint.
type BookingHandler struct {
	Intake   booking.IntakeService
	Resolver auth.IdentityResolver
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(intake booking.IntakeService, resolver auth.IdentityResolver) *BookingHandler {
	return &BookingHandler{Intake: intake, Resolver: resolver}
}

// SOSBookingHandler handles POST /api/bookings/sos. Auth is optional: the
// bearer token is resolved up front and passed into the pipeline by value,
// an invalid token simply means a guest booking.
func (h *BookingHandler) SOSBookingHandler(c *gin.Context) {
	var input models.SOSBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	identity, err := h.Resolver.Resolve(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.Intake.CreateSOSBooking(c.Request.Context(), identity, input)
	if err != nil {
		respondError(c, err)
		return
	}

	getLogger(c).Info("SOS booking created",
		zap.String("bookingID", result.Booking.ID),
		zap.Bool("maallemFound", result.MaallemFound),
		zap.Bool("guest", result.Booking.ClientID == nil))

	c.JSON(http.StatusCreated, gin.H{
		"message":       "SOS Booking created",
		"booking":       result.Booking,
		"maallem_found": result.MaallemFound,
	})
}

// bearerToken extracts the credential from the Authorization header, empty
// when absent.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
