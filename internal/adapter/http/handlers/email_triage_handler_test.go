package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yuanli_transport/internal/adapter/http/handlers/mocks"
	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEmailTriageHandler_ListEmails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEmailTriageUseCase(ctrl)
	h := NewEmailTriageHandler(uc)

	uc.EXPECT().ListEmails(gomock.Any(), "pending").Return([]entities.InboundEmail{
		{ID: "em-001", Subject: "Re: 美國訂單出貨問題 - 需報價", Status: entities.EmailStatusUnread, ReceivedAt: time.Now()},
	}, nil)

	r := gin.New()
	r.GET("/v1/emails", h.ListEmails)

	req := httptest.NewRequest(http.MethodGet, "/v1/emails?view=pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Total  int `json:"total"`
		Emails []struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		} `json:"emails"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Total != 1 || body.Emails[0].ID != "em-001" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Emails[0].Content != "" {
		t.Error("list view must not include the full email body")
	}
}

func TestEmailTriageHandler_OpenEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmailTriageUseCase(ctrl)
		h := NewEmailTriageHandler(uc)

		uc.EXPECT().OpenEmail(gomock.Any(), "em-999").Return(entities.InboundEmail{}, usecase.ErrEmailNotFound)

		r := gin.New()
		r.GET("/v1/emails/:id", h.OpenEmail)

		req := httptest.NewRequest(http.MethodGet, "/v1/emails/em-999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmailTriageUseCase(ctrl)
		h := NewEmailTriageHandler(uc)

		uc.EXPECT().OpenEmail(gomock.Any(), "em-001").Return(entities.InboundEmail{
			ID:      "em-001",
			Status:  entities.EmailStatusRead,
			Content: "貨物明細...",
		}, nil)

		r := gin.New()
		r.GET("/v1/emails/:id", h.OpenEmail)

		req := httptest.NewRequest(http.MethodGet, "/v1/emails/em-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status  string `json:"status"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Status != "read" || body.Content == "" {
			t.Errorf("unexpected body: %+v", body)
		}
	})
}

func TestEmailTriageHandler_AnalyzeEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("extraction failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmailTriageUseCase(ctrl)
		h := NewEmailTriageHandler(uc)

		uc.EXPECT().AnalyzeEmail(gomock.Any(), "em-001").
			Return(entities.ExtractionProposal{}, fmt.Errorf("%w: %v", usecase.ErrExtractionFailed, errors.New("model timeout")))

		r := gin.New()
		r.POST("/v1/emails/:id/analyze", h.AnalyzeEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/emails/em-001/analyze", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmailTriageUseCase(ctrl)
		h := NewEmailTriageHandler(uc)

		proposal := entities.ExtractionProposal{}
		proposal.Summary.Urgency = "高"
		proposal.Workflow.AssignTo = "陳經理"
		uc.EXPECT().AnalyzeEmail(gomock.Any(), "em-003").Return(proposal, nil)

		r := gin.New()
		r.POST("/v1/emails/:id/analyze", h.AnalyzeEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/emails/em-003/analyze", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			EmailID  string `json:"emailId"`
			Proposal struct {
				Summary struct {
					Urgency string `json:"urgency"`
				} `json:"summary"`
			} `json:"proposal"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.EmailID != "em-003" || body.Proposal.Summary.Urgency != "高" {
			t.Errorf("unexpected body: %+v", body)
		}
	})
}

func TestEmailTriageHandler_CreateQuoteFromEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmailTriageUseCase(ctrl)
		h := NewEmailTriageHandler(uc)

		r := gin.New()
		r.POST("/v1/emails/:id/quote", h.CreateQuoteFromEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/emails/em-001/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already processed maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmailTriageUseCase(ctrl)
		h := NewEmailTriageHandler(uc)

		uc.EXPECT().CreateQuoteFromProposal(gomock.Any(), "em-001", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrEmailAlreadyProcessed)

		r := gin.New()
		r.POST("/v1/emails/:id/quote", h.CreateQuoteFromEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/emails/em-001/quote",
			bytes.NewBufferString(`{"proposal":{"summary":{"urgency":"中"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns created quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmailTriageUseCase(ctrl)
		h := NewEmailTriageHandler(uc)

		uc.EXPECT().CreateQuoteFromProposal(gomock.Any(), "em-001", gomock.Any()).
			Return(entities.Quote{ID: "YL-20251211-042", Source: entities.QuoteSourceAIEmail, Status: entities.QuoteStatusPending}, nil)

		r := gin.New()
		r.POST("/v1/emails/:id/quote", h.CreateQuoteFromEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/emails/em-001/quote",
			bytes.NewBufferString(`{"proposal":{"customer":{"company":"螺絲製造公司"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID     string `json:"id"`
			Source string `json:"source"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.ID != "YL-20251211-042" || body.Source != "ai-email" {
			t.Errorf("unexpected body: %+v", body)
		}
	})
}
