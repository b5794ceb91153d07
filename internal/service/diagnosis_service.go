//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"

	"fixmygame/backend/internal/service/ai"
	"fixmygame/backend/pkg/breakdown"
)

// AnalyzeRequest carries a crash log and its optional context metadata.
type AnalyzeRequest struct {
	Log           string
	GameTitle     string
	GPUModel      string
	DriverVersion string
	APIMode       string
}

// Diagnosis is the completion text plus whatever structure could be
// extracted from it. Breakdown is nil when the reply carried no parseable
// probability section; that is expected model behaviour, not a failure.
type Diagnosis struct {
	Result    string
	Breakdown *breakdown.Breakdown
}

// DiagnosisService turns a crash log into a diagnosis via the completion
// provider.
type DiagnosisService interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (Diagnosis, error)
}

type diagnosisService struct {
	provider ai.Provider
	limiter  *ai.RateLimiter
}

// NewDiagnosisService creates a diagnosis service. A nil limiter falls back
// to the default outbound rate limit.
func NewDiagnosisService(provider ai.Provider, limiter *ai.RateLimiter) DiagnosisService {
	if limiter == nil {
		limiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	return &diagnosisService{provider: provider, limiter: limiter}
}

func (s *diagnosisService) Analyze(ctx context.Context, req AnalyzeRequest) (Diagnosis, error) {
	crashLog := strings.TrimSpace(req.Log)
	if crashLog == "" {
		return Diagnosis{}, ErrInvalid
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return Diagnosis{}, fmt.Errorf("wait for completion slot: %w", err)
	}

	prompt := ai.GetAnalyzePrompt(crashLog, ai.AnalyzeContext{
		GameTitle:     strings.TrimSpace(req.GameTitle),
		GPUModel:      strings.TrimSpace(req.GPUModel),
		DriverVersion: strings.TrimSpace(req.DriverVersion),
		APIMode:       strings.TrimSpace(req.APIMode),
	})

	result, err := s.provider.Complete(ctx, ai.SystemPrompt(), prompt)
	if err != nil {
		return Diagnosis{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return Diagnosis{
		Result:    result,
		Breakdown: breakdown.Parse(result),
	}, nil
}
