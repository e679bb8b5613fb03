package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
)

type fakeVertexClient struct {
	resp    dto.VertexGenerateResponse
	err     error
	lastReq dto.VertexGenerateRequest
}

func (f *fakeVertexClient) GenerateContent(_ context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

type fakeReportSource struct {
	report *dto.Report
	err    error
}

func (f *fakeReportSource) GetReport(_ context.Context, _ string) (*dto.Report, error) {
	return f.report, f.err
}

func TestAdviseRendersSnapshot(t *testing.T) {
	vertex := &fakeVertexClient{
		resp: dto.VertexGenerateResponse{Text: "Spend less on food."},
	}
	reports := &fakeReportSource{
		report: &dto.Report{
			Totals: dto.TransactionTotals{Income: 1000, Expense: 400, Balance: 600},
		},
	}
	svc := NewAdvisorService(vertex, reports)

	resp, err := svc.Advise(context.Background(), "uid1", dto.AdvisorRequest{Question: "Where can I cut back?"})
	if err != nil {
		t.Fatalf("Advise error: %v", err)
	}
	if resp.Advice != "Spend less on food." {
		t.Fatalf("advice mismatch: %q", resp.Advice)
	}
	if vertex.lastReq.System == "" {
		t.Fatal("expected a system prompt")
	}
	if !strings.Contains(vertex.lastReq.UserMessage, `"balance":600`) {
		t.Fatalf("snapshot not rendered into the prompt: %q", vertex.lastReq.UserMessage)
	}
	if !strings.Contains(vertex.lastReq.UserMessage, "Where can I cut back?") {
		t.Fatal("question not appended to the prompt")
	}
}

func TestAdviseMapsGenerationFailure(t *testing.T) {
	vertex := &fakeVertexClient{err: errors.New("quota exceeded")}
	reports := &fakeReportSource{report: &dto.Report{}}
	svc := NewAdvisorService(vertex, reports)

	_, err := svc.Advise(context.Background(), "uid1", dto.AdvisorRequest{})
	var ext *errs.ExternalServiceError
	if !errors.As(err, &ext) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if ext.Service != "vertex" || !ext.Transient {
		t.Fatalf("error attributes mismatch: %+v", ext)
	}
}

func TestAdviseEmptyResponse(t *testing.T) {
	vertex := &fakeVertexClient{}
	reports := &fakeReportSource{report: &dto.Report{}}
	svc := NewAdvisorService(vertex, reports)

	_, err := svc.Advise(context.Background(), "uid1", dto.AdvisorRequest{})
	var ext *errs.ExternalServiceError
	if !errors.As(err, &ext) {
		t.Fatalf("expected external service error for empty text, got %v", err)
	}
}
