package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"promaallem/models"
	"promaallem/services/intelligence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIntelligence mimics the AI pipeline without a model call. It mirrors
// the real service's validation so the handler tests cover the short-circuit.
type fakeIntelligence struct {
	result       *models.AnalysisResult
	reply        string
	err          error
	analyzeCalls int
	lastPrior    []models.ChatMessage
}

func (f *fakeIntelligence) AnalyzeSOS(ctx context.Context, description, location string) (*models.AnalysisResult, error) {
	if description == "" {
		return nil, &intelligence.ValidationError{Message: "Description is required"}
	}
	f.analyzeCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeIntelligence) Diagnose(ctx context.Context, prior []models.ChatMessage, message string) (string, error) {
	if message == "" {
		return "", &intelligence.ValidationError{Message: "Message is required"}
	}
	f.lastPrior = prior
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newAIRouter(svc intelligence.IntelligenceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewIntelligenceHandler(svc)

	r := gin.New()
	r.POST("/api/ai/analyze-sos", handler.AnalyzeSOSHandler)
	r.POST("/api/chat/diagnose", handler.DiagnoseChatHandler)
	return r
}

func TestAnalyzeSOSHandler_ReturnsAnalysisAndMatch(t *testing.T) {
	svc := &fakeIntelligence{result: &models.AnalysisResult{
		Analysis:     models.Analysis{Category: "Plomberie", UrgencyLevel: 3},
		ServiceMatch: &models.ServiceMatch{ID: "svc-1", Name: "Plomberie", BasePrice: 150},
	}}
	r := newAIRouter(svc)

	w := postJSON(t, r, "/api/ai/analyze-sos", gin.H{
		"description": "fuite au niveau du robinet",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Analysis     models.Analysis      `json:"analysis"`
		ServiceMatch *models.ServiceMatch `json:"service_match"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Plomberie", resp.Analysis.Category)
	require.NotNil(t, resp.ServiceMatch)
	assert.Equal(t, "svc-1", resp.ServiceMatch.ID)
}

func TestAnalyzeSOSHandler_EmptyDescriptionIs400(t *testing.T) {
	svc := &fakeIntelligence{}
	r := newAIRouter(svc)

	w := postJSON(t, r, "/api/ai/analyze-sos", gin.H{"description": ""}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.analyzeCalls)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestAnalyzeSOSHandler_ThrottleIs429WithLocalizedDetails(t *testing.T) {
	svc := &fakeIntelligence{err: &intelligence.RateLimitError{Message: intelligence.RetryMessageFR}}
	r := newAIRouter(svc)

	w := postJSON(t, r, "/api/ai/analyze-sos", gin.H{"description": "fuite"}, nil)

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rate limit exceeded", resp["error"])
	assert.Equal(t, intelligence.RetryMessageFR, resp["details"])
}

func TestDiagnoseChatHandler_ReturnsReply(t *testing.T) {
	svc := &fakeIntelligence{reply: "Salam! Comment puis-je aider ?"}
	r := newAIRouter(svc)

	w := postJSON(t, r, "/api/chat/diagnose", gin.H{
		"message":           "bonjour",
		"previous_messages": []models.ChatMessage{},
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["reply"])
}

func TestDiagnoseChatHandler_ForwardsPriorTurns(t *testing.T) {
	svc := &fakeIntelligence{reply: "Coupez le courant."}
	r := newAIRouter(svc)

	prior := []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "ma prise fait des étincelles"},
		{Role: models.ChatRoleAssistant, Content: "Depuis quand ?"},
	}
	w := postJSON(t, r, "/api/chat/diagnose", gin.H{
		"message":           "depuis ce matin",
		"previous_messages": prior,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, prior, svc.lastPrior)
}

func TestDiagnoseChatHandler_EmptyMessageIs400(t *testing.T) {
	r := newAIRouter(&fakeIntelligence{})

	w := postJSON(t, r, "/api/chat/diagnose", gin.H{"message": ""}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
