package intelligence

import (
	"context"
	"fmt"

	"promaallem/config"
	serviceRepo "promaallem/database/repository/service"
	"promaallem/models"
	"promaallem/utils"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DefaultIntelligenceService implements IntelligenceService against an
// OpenAI-compatible provider. Provider is resolved once at startup and
// injected here by value.
type DefaultIntelligenceService struct {
	Chat     ChatCompleter
	Provider config.AIProviderConfig
	Services serviceRepo.ServiceRepository
}

// NewDefaultIntelligenceService wires the resolved provider to a real chat
// client.
func NewDefaultIntelligenceService(provider config.AIProviderConfig, services serviceRepo.ServiceRepository) *DefaultIntelligenceService {
	return &DefaultIntelligenceService{
		Chat:     NewChatClient(provider),
		Provider: provider,
		Services: services,
	}
}

// AnalyzeSOS runs the one-shot triage pipeline: prompt, model call,
// interpretation, optional catalog cross-reference. A malformed model reply
// never fails the request; only validation and the model call itself can.
func (s *DefaultIntelligenceService) AnalyzeSOS(ctx context.Context, description, location string) (*models.AnalysisResult, error) {
	spec, err := BuildAnalysisPrompt(description, location)
	if err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, spec)
	if err != nil {
		return nil, err
	}

	analysis, degraded := Interpret(raw)
	if degraded {
		utils.GetLogger().Warn("Model output degraded to raw response",
			zap.String("provider", s.Provider.Provider))
	}

	result := &models.AnalysisResult{Analysis: analysis}

	// Optional step: attach a catalog row for the predicted category.
	// A failed lookup degrades silently to no match.
	if analysis.Category != "" && analysis.Category != DegradedCategory {
		match, err := s.Services.MatchByName(analysis.Category)
		if err != nil {
			utils.GetLogger().Warn("Service match lookup failed", zap.Error(err))
		} else {
			result.ServiceMatch = match
		}
	}

	return result, nil
}

// Diagnose runs one turn of the troubleshooting conversation and returns
// the assistant reply as-is.
func (s *DefaultIntelligenceService) Diagnose(ctx context.Context, prior []models.ChatMessage, message string) (string, error) {
	spec, err := BuildDiagnosisPrompt(prior, message)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, spec)
}

func (s *DefaultIntelligenceService) complete(ctx context.Context, spec PromptSpec) (string, error) {
	resp, err := s.Chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.Provider.Model,
		Messages:    spec.Messages,
		Temperature: spec.Temperature,
		MaxTokens:   spec.MaxTokens,
	})
	if err != nil {
		return "", wrapModelError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
