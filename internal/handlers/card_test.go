package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/errs"
	"github.com/lahh29/finnexus/internal/models"
)

type stubCardService struct {
	views       []dto.CardView
	card        *models.CreditCard
	err         error
	lastUID     string
	lastCardID  string
	lastDebtReq dto.UpdateCardDebtRequest
}

func (s *stubCardService) ListCards(_ context.Context, uid string) ([]dto.CardView, error) {
	s.lastUID = uid
	return s.views, s.err
}

func (s *stubCardService) AddCard(_ context.Context, uid string, req dto.CreateCardRequest) (*models.CreditCard, error) {
	s.lastUID = uid
	return s.card, s.err
}

func (s *stubCardService) UpdateDebt(_ context.Context, uid, cardID string, req dto.UpdateCardDebtRequest) (*models.CreditCard, error) {
	s.lastUID = uid
	s.lastCardID = cardID
	s.lastDebtReq = req
	return s.card, s.err
}

func (s *stubCardService) DeleteCard(_ context.Context, uid, cardID string) error {
	s.lastUID = uid
	s.lastCardID = cardID
	return s.err
}

func TestListCards(t *testing.T) {
	svc := &stubCardService{
		views: []dto.CardView{{Utilization: 85, UtilizationLevel: dto.UtilizationHigh}},
	}
	resp := &stubResponseHandler{}
	h := NewCardHandlers(&Deps{ResponseHandler: resp, CardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.ListCards(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatal("WriteSuccess not called with status 200")
	}
	views, ok := resp.writeSuccessData.([]dto.CardView)
	if !ok || len(views) != 1 {
		t.Fatalf("unexpected payload: %+v", resp.writeSuccessData)
	}
}

func TestUpdateDebtHandler(t *testing.T) {
	svc := &stubCardService{card: &models.CreditCard{CardID: "c1", CurrentDebt: 300}}
	resp := &stubResponseHandler{}
	h := NewCardHandlers(&Deps{ResponseHandler: resp, CardSvc: svc})

	body := `{"currentDebt":300}`
	req := httptest.NewRequest(http.MethodPut, "/cards/c1/debt", strings.NewReader(body))
	req = withUID(req, "uid1")
	req = withChiParam(req, "cardId", "c1")
	rr := httptest.NewRecorder()
	h.UpdateDebt(rr, req)

	if svc.lastCardID != "c1" || svc.lastDebtReq.CurrentDebt != 300 {
		t.Fatalf("service received wrong update: %q %+v", svc.lastCardID, svc.lastDebtReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatal("WriteSuccess not called with status 200")
	}
}

func TestUpdateDebtNotFound(t *testing.T) {
	svc := &stubCardService{err: errs.NewNotFoundError("card not found")}
	resp := &stubResponseHandler{}
	h := NewCardHandlers(&Deps{ResponseHandler: resp, CardSvc: svc})

	req := httptest.NewRequest(http.MethodPut, "/cards/nope/debt", strings.NewReader(`{"currentDebt":1}`))
	req = withUID(req, "uid1")
	req = withChiParam(req, "cardId", "nope")
	rr := httptest.NewRecorder()
	h.UpdateDebt(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

func TestDeleteCardHandler(t *testing.T) {
	svc := &stubCardService{}
	resp := &stubResponseHandler{}
	h := NewCardHandlers(&Deps{ResponseHandler: resp, CardSvc: svc})

	req := httptest.NewRequest(http.MethodDelete, "/cards/c1", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "cardId", "c1")
	rr := httptest.NewRecorder()
	h.DeleteCard(rr, req)

	if svc.lastCardID != "c1" {
		t.Fatalf("wrong card deleted: %q", svc.lastCardID)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("WriteSuccess not called")
	}
}
