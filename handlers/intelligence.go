package handlers

import (
	"net/http"

	"promaallem/models"
	"promaallem/services/intelligence"

	"github.com/gin-gonic/gin"
)

// IntelligenceHandler exposes the AI triage and diagnosis endpoints.
type IntelligenceHandler struct {
	Service intelligence.IntelligenceService
}

// NewIntelligenceHandler creates an IntelligenceHandler.
func NewIntelligenceHandler(service intelligence.IntelligenceService) *IntelligenceHandler {
	return &IntelligenceHandler{Service: service}
}

// AnalyzeSOSHandler handles POST /api/ai/analyze-sos.
func (h *IntelligenceHandler) AnalyzeSOSHandler(c *gin.Context) {
	var input struct {
		Description string `json:"description"`
		Location    string `json:"location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.AnalyzeSOS(c.Request.Context(), input.Description, input.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":      result.Analysis,
		"service_match": result.ServiceMatch,
	})
}

// DiagnoseChatHandler handles POST /api/chat/diagnose.
func (h *IntelligenceHandler) DiagnoseChatHandler(c *gin.Context) {
	var input struct {
		Message          string               `json:"message"`
		PreviousMessages []models.ChatMessage `json:"previous_messages"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reply, err := h.Service.Diagnose(c.Request.Context(), input.PreviousMessages, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
