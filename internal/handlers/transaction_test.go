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

type stubTransactionService struct {
	txs          []*models.Transaction
	created      *models.Transaction
	err          error
	lastUID      string
	lastReq      dto.CreateTransactionRequest
	lastDeleteID string
}

func (s *stubTransactionService) ListTransactions(_ context.Context, uid string) ([]*models.Transaction, error) {
	s.lastUID = uid
	return s.txs, s.err
}

func (s *stubTransactionService) AddTransaction(_ context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	s.lastUID = uid
	s.lastReq = req
	return s.created, s.err
}

func (s *stubTransactionService) DeleteTransaction(_ context.Context, uid, id string) error {
	s.lastUID = uid
	s.lastDeleteID = id
	return s.err
}

func TestListTransactions(t *testing.T) {
	svc := &stubTransactionService{
		txs: []*models.Transaction{{TransactionID: "t1"}},
	}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if svc.lastUID != "uid1" {
		t.Fatalf("uid mismatch: %q", svc.lastUID)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatal("WriteSuccess not called with status 200")
	}
}

func TestAddTransactionHandler(t *testing.T) {
	svc := &stubTransactionService{
		created: &models.Transaction{TransactionID: "t1", Amount: 50},
	}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	body := `{"amount":50,"type":"expense","category":"food"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.AddTransaction(rr, req)

	if svc.lastReq.Amount != 50 || svc.lastReq.Category != "food" {
		t.Fatalf("request not decoded: %+v", svc.lastReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatal("WriteSuccess not called with status 201")
	}
}

func TestAddTransactionServiceError(t *testing.T) {
	svc := &stubTransactionService{err: errs.NewValidationError("amount must be greater than 0")}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	body := `{"amount":0,"type":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.AddTransaction(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
	if resp.handleError != svc.err {
		t.Fatalf("wrong error forwarded: %v", resp.handleError)
	}
}

func TestDeleteTransactionHandler(t *testing.T) {
	svc := &stubTransactionService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/t1", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "transactionId", "t1")
	rr := httptest.NewRecorder()
	h.DeleteTransaction(rr, req)

	if svc.lastDeleteID != "t1" {
		t.Fatalf("wrong id deleted: %q", svc.lastDeleteID)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("WriteSuccess not called")
	}
}
