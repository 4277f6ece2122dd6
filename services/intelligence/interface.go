package intelligence

import (
	"context"

	"promaallem/models"
)

// IntelligenceService owns the AI pipelines: one-shot triage of a free-text
// problem description, and the multi-turn diagnosis conversation.
type IntelligenceService interface {
	AnalyzeSOS(ctx context.Context, description, location string) (*models.AnalysisResult, error)
	Diagnose(ctx context.Context, prior []models.ChatMessage, message string) (string, error)
}
