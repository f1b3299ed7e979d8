package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"yuanli_transport/internal/domain/entities"
	mock_interfaces "yuanli_transport/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleEmail(status entities.EmailStatus) entities.InboundEmail {
	return entities.InboundEmail{
		ID:         "em-1",
		From:       "manager.lin@screwmaker.com.tw",
		SenderName: "林經理",
		Subject:    "Re: 美國訂單出貨問題 - 需報價",
		Content:    "源利您好, 需要你們幫忙報價運送到高雄港...",
		ReceivedAt: time.Now().UTC(),
		Status:     status,
	}
}

func sampleProposal() entities.ExtractionProposal {
	return entities.ExtractionProposal{
		Summary: entities.ProposalSummary{Urgency: "高"},
		Customer: entities.ProposalCustomer{
			Company:       "螺絲製造股份有限公司",
			ContactPerson: "林經理",
			Mobile:        "0923-456-789",
			Email:         "manager.lin@screwmaker.com.tw",
		},
		Shipping: entities.ProposalShipping{
			OriginCity:  "桃園市",
			DestCity:    "高雄市",
			DestPort:    "高雄港",
			CargoType:   "一般貨物",
			TotalWeight: "12噸",
			PickupDate:  "2025-12-15",
		},
		Requirements: entities.ProposalRequirements{
			VehicleType:  "大貨車",
			SpecialNeeds: []string{"報關", "棧板"},
		},
		Workflow: entities.ProposalWorkflow{
			Stage:             "待報價",
			AssignTo:          "陳經理",
			EstimatedPrice:    "NT$ 15,000",
			EstimatedVehicles: "2台",
		},
		AINotes: []string{"出口貨物,注意報關時程", "建議提前一天取貨"},
	}
}

func newTriage(t *testing.T) (*EmailTriageUseCase, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIEmailRepository, *mock_interfaces.MockIEmailExtractor) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	emails := mock_interfaces.NewMockIEmailRepository(ctrl)
	extractor := mock_interfaces.NewMockIEmailExtractor(ctrl)
	return NewEmailTriageUseCase(quotes, emails, extractor), quotes, emails, extractor
}

func TestEmailTriageUseCase_ListEmails(t *testing.T) {
	box := []entities.InboundEmail{
		{ID: "em-1", Status: entities.EmailStatusUnread},
		{ID: "em-2", Status: entities.EmailStatusProcessed},
		{ID: "em-3", Status: entities.EmailStatusRead},
	}

	cases := []struct {
		view string
		want []string
	}{
		{"pending", []string{"em-1", "em-3"}},
		{"processed", []string{"em-2"}},
		{"", []string{"em-1", "em-2", "em-3"}},
	}
	for _, tc := range cases {
		t.Run("view "+tc.view, func(t *testing.T) {
			uc, _, emails, _ := newTriage(t)
			emails.EXPECT().List(gomock.Any()).Return(box, nil)

			res, err := uc.ListEmails(context.Background(), tc.view)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res) != len(tc.want) {
				t.Fatalf("expected %d emails, got %d", len(tc.want), len(res))
			}
			for i, id := range tc.want {
				if res[i].ID != id {
					t.Fatalf("unexpected order: %+v", res)
				}
			}
		})
	}
}

func TestEmailTriageUseCase_OpenEmail(t *testing.T) {
	t.Run("unread becomes read", func(t *testing.T) {
		uc, _, emails, _ := newTriage(t)
		e := sampleEmail(entities.EmailStatusUnread)
		emails.EXPECT().GetByID(gomock.Any(), "em-1").Return(e, nil)
		read := e
		read.Status = entities.EmailStatusRead
		emails.EXPECT().SetStatus(gomock.Any(), "em-1", entities.EmailStatusRead).Return(read, nil)

		res, err := uc.OpenEmail(context.Background(), "em-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EmailStatusRead {
			t.Fatalf("expected read, got %s", res.Status)
		}
	})

	t.Run("processed stays processed", func(t *testing.T) {
		uc, _, emails, _ := newTriage(t)
		emails.EXPECT().GetByID(gomock.Any(), "em-1").Return(sampleEmail(entities.EmailStatusProcessed), nil)

		res, err := uc.OpenEmail(context.Background(), "em-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EmailStatusProcessed {
			t.Fatalf("expected processed, got %s", res.Status)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		uc, _, emails, _ := newTriage(t)
		emails.EXPECT().GetByID(gomock.Any(), "em-404").Return(entities.InboundEmail{}, nil)

		if _, err := uc.OpenEmail(context.Background(), "em-404"); !errors.Is(err, ErrEmailNotFound) {
			t.Fatalf("expected ErrEmailNotFound, got %v", err)
		}
	})
}

func TestEmailTriageUseCase_AnalyzeEmail(t *testing.T) {
	t.Run("fills sender and subject from the email", func(t *testing.T) {
		uc, _, emails, extractor := newTriage(t)
		e := sampleEmail(entities.EmailStatusRead)
		emails.EXPECT().GetByID(gomock.Any(), "em-1").Return(e, nil)
		extractor.EXPECT().Analyze(gomock.Any(), e.Content).Return(sampleProposal(), nil)

		p, err := uc.AnalyzeEmail(context.Background(), "em-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Summary.Subject != e.Subject || p.Summary.Sender != e.From {
			t.Fatalf("summary not backfilled: %+v", p.Summary)
		}
	})

	t.Run("extraction failure is wrapped and email untouched", func(t *testing.T) {
		uc, _, emails, extractor := newTriage(t)
		e := sampleEmail(entities.EmailStatusRead)
		emails.EXPECT().GetByID(gomock.Any(), "em-1").Return(e, nil)
		extractor.EXPECT().Analyze(gomock.Any(), e.Content).Return(entities.ExtractionProposal{}, errors.New("model unavailable"))

		// No SetStatus expectation: the email must stay as-is.
		_, err := uc.AnalyzeEmail(context.Background(), "em-1")
		if !errors.Is(err, ErrExtractionFailed) {
			t.Fatalf("expected ErrExtractionFailed, got %v", err)
		}
	})

	t.Run("unconfigured extractor fails without panicking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		emails := mock_interfaces.NewMockIEmailRepository(ctrl)

		// Routes wire a nil extractor when the API key is absent and mock
		// mode is off; analysis must fail cleanly, not dereference it.
		uc := NewEmailTriageUseCase(quotes, emails, nil)

		_, err := uc.AnalyzeEmail(context.Background(), "em-1")
		if !errors.Is(err, ErrExtractionFailed) {
			t.Fatalf("expected ErrExtractionFailed, got %v", err)
		}
	})
}

func TestEmailTriageUseCase_CreateQuoteFromProposal(t *testing.T) {
	t.Run("maps proposal onto ai-email quote and marks processed", func(t *testing.T) {
		uc, quotes, emails, _ := newTriage(t)
		e := sampleEmail(entities.EmailStatusRead)
		emails.EXPECT().GetByID(gomock.Any(), "em-1").Return(e, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Source != entities.QuoteSourceAIEmail || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected provenance: %+v", q)
				}
				if q.Customer.Phone != "0923-456-789" {
					t.Fatalf("mobile fallback not applied: %s", q.Customer.Phone)
				}
				if q.Shipping.Weight != "12噸" {
					t.Fatalf("total weight not mapped: %+v", q.Shipping)
				}
				if !q.Vehicle.IsRecommended || q.Vehicle.Type != "大貨車" {
					t.Fatalf("unexpected vehicle: %+v", q.Vehicle)
				}
				if q.Vehicle.Notes != "出口貨物,注意報關時程\n建議提前一天取貨" {
					t.Fatalf("ai notes not joined: %q", q.Vehicle.Notes)
				}
				if q.Business.Handler == nil || *q.Business.Handler != "陳經理" {
					t.Fatalf("handler not taken from workflow")
				}
				notes := *q.Business.InternalNotes
				for _, part := range []string{"AI 建議:", "工作階段: 待報價", "預估報價: NT$ 15,000", "建議車輛: 2台", "原始郵件: " + e.Subject} {
					if !strings.Contains(notes, part) {
						t.Fatalf("audit trail missing %q in %q", part, notes)
					}
				}
				return q, nil
			},
		)
		emails.EXPECT().SetStatus(gomock.Any(), "em-1", entities.EmailStatusProcessed).Return(entities.InboundEmail{}, nil)

		q, err := uc.CreateQuoteFromProposal(context.Background(), "em-1", sampleProposal())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("empty fields default to placeholder", func(t *testing.T) {
		uc, quotes, emails, _ := newTriage(t)
		emails.EXPECT().GetByID(gomock.Any(), "em-1").Return(sampleEmail(entities.EmailStatusRead), nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Customer.Company != "未提供" || q.Customer.Name != "未提供" || q.Customer.Phone != "未提供" {
					t.Fatalf("placeholders not applied: %+v", q.Customer)
				}
				if q.Vehicle.Type != "建議車型" {
					t.Fatalf("vehicle default not applied: %s", q.Vehicle.Type)
				}
				if q.Business.Handler != nil {
					t.Fatalf("handler should be nil when unassigned")
				}
				return q, nil
			},
		)
		emails.EXPECT().SetStatus(gomock.Any(), "em-1", entities.EmailStatusProcessed).Return(entities.InboundEmail{}, nil)

		if _, err := uc.CreateQuoteFromProposal(context.Background(), "em-1", entities.ExtractionProposal{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already processed", func(t *testing.T) {
		uc, _, emails, _ := newTriage(t)
		emails.EXPECT().GetByID(gomock.Any(), "em-1").Return(sampleEmail(entities.EmailStatusProcessed), nil)

		_, err := uc.CreateQuoteFromProposal(context.Background(), "em-1", sampleProposal())
		if !errors.Is(err, ErrEmailAlreadyProcessed) {
			t.Fatalf("expected ErrEmailAlreadyProcessed, got %v", err)
		}
	})
}
