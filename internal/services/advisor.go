package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/pkg/helpers"
	"github.com/lahh29/finnexus/pkg/logger"
)

const advisorSystemPrompt = `You are a personal finance advisor. You are given a
JSON snapshot of the user's finances: income, expenses, category breakdowns,
credit cards, subscriptions and a computed health score. Give short, concrete,
actionable advice grounded in the numbers. Do not invent figures that are not
in the snapshot.`

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type advisorReportService interface {
	GetReport(ctx context.Context, uid string) (*dto.Report, error)
}

type advisorService struct {
	vertex  vertexClient
	reports advisorReportService
}

func NewAdvisorService(vertex vertexClient, reports advisorReportService) *advisorService {
	return &advisorService{vertex: vertex, reports: reports}
}

// Advise renders the user's report as JSON and asks Gemini for narrative
// advice in a single turn.
func (s *advisorService) Advise(ctx context.Context, uid string, req dto.AdvisorRequest) (*dto.AdvisorResponse, error) {
	log := logger.FromContext(ctx)

	report, err := s.reports.GetReport(ctx, uid)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report snapshot: %w", err)
	}

	var b strings.Builder
	b.WriteString("Financial snapshot:\n")
	b.Write(snapshot)
	if req.Question != "" {
		b.WriteString("\n\nUser question: ")
		b.WriteString(req.Question)
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:          advisorSystemPrompt,
		UserMessage:     b.String(),
		Temperature:     helpers.Ptr[float32](0.3),
		MaxOutputTokens: helpers.Ptr[int32](1024),
	})
	if err != nil {
		log.Error("advisor generation failed", "error", err)
		return nil, errs.NewExternalServiceError("vertex", "advice generation failed", true, err)
	}
	if resp.Text == "" {
		return nil, errs.NewExternalServiceError("vertex", "advice generation returned no text", false, nil)
	}

	return &dto.AdvisorResponse{Advice: resp.Text}, nil
}
