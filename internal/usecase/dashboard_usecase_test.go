package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"yuanli_transport/internal/domain/entities"
	mock_interfaces "yuanli_transport/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestDashboardUseCase_Overview(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)
		uc := NewDashboardUseCase(repo)

		ov, err := uc.Overview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ov.Counts.All != 0 || ov.TotalRevenue != 0 || ov.ConversionRate != 0 {
			t.Fatalf("unexpected overview: %+v", ov)
		}
		if len(ov.RecentActivities) != 0 {
			t.Fatalf("expected no activities")
		}
	})

	t.Run("revenue and conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		now := time.Now().UTC()
		quotes := []entities.Quote{
			{ID: "YL-20250101-001", Status: entities.QuoteStatusPending, UpdatedAt: now, Business: entities.Business{Price: strPtr("1000")}},
			{ID: "YL-20250101-002", Status: entities.QuoteStatusCompleted, UpdatedAt: now.Add(-time.Hour)},
			{ID: "YL-20250101-003", Status: entities.QuoteStatusCompleted, UpdatedAt: now.Add(-2 * time.Hour), Business: entities.Business{Price: strPtr("2500")}},
			{ID: "YL-20250101-004", Status: entities.QuoteStatusCancelled, UpdatedAt: now.Add(-3 * time.Hour), Business: entities.Business{Price: strPtr("abc")}},
			// A negative price is a correction entry and counts as-is.
			{ID: "YL-20250101-005", Status: entities.QuoteStatusCancelled, UpdatedAt: now.Add(-4 * time.Hour), Business: entities.Business{Price: strPtr("-500")}},
		}
		repo.EXPECT().List(gomock.Any()).Return(quotes, nil)
		uc := NewDashboardUseCase(repo)

		ov, err := uc.Overview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ov.TotalRevenue != 3000 {
			t.Fatalf("expected revenue 3000, got %d", ov.TotalRevenue)
		}
		if ov.ConversionRate != 40 {
			t.Fatalf("expected conversion 40, got %d", ov.ConversionRate)
		}
		if ov.Counts.All != 5 || ov.Counts.Pending != 1 || ov.Counts.Completed != 2 {
			t.Fatalf("unexpected counts: %+v", ov.Counts)
		}
	})

	t.Run("recent activity capped at five with status labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		now := time.Now().UTC()
		var quotes []entities.Quote
		statuses := []entities.QuoteStatus{
			entities.QuoteStatusPending,
			entities.QuoteStatusCompleted,
			entities.QuoteStatusQuoted,
			entities.QuoteStatusProcessing,
			entities.QuoteStatusCancelled,
			entities.QuoteStatusPending,
			entities.QuoteStatusQuoted,
		}
		for i, s := range statuses {
			quotes = append(quotes, entities.Quote{
				ID:        fmt.Sprintf("YL-20250101-%03d", i+1),
				Status:    s,
				UpdatedAt: now.Add(-time.Duration(i) * time.Minute),
			})
		}
		quotes[0].ID = "newest"
		repo.EXPECT().List(gomock.Any()).Return(quotes, nil)
		uc := NewDashboardUseCase(repo)

		ov, err := uc.Overview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ov.RecentActivities) != 5 {
			t.Fatalf("expected 5 activities, got %d", len(ov.RecentActivities))
		}
		if ov.RecentActivities[0].QuoteID != "newest" || ov.RecentActivities[0].Type != "new_quote" {
			t.Fatalf("unexpected first activity: %+v", ov.RecentActivities[0])
		}
		if ov.RecentActivities[1].Type != "deal_closed" {
			t.Fatalf("expected deal_closed, got %s", ov.RecentActivities[1].Type)
		}
		if ov.RecentActivities[2].Type != "status_update" {
			t.Fatalf("expected status_update, got %s", ov.RecentActivities[2].Type)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
		uc := NewDashboardUseCase(repo)

		if _, err := uc.Overview(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDashboardUseCase_Kanban(t *testing.T) {
	handler := "陳經理"
	quotes := []entities.Quote{
		{ID: "YL-20250101-001", Status: entities.QuoteStatusPending},
		{ID: "YL-20250101-002", Status: entities.QuoteStatusProcessing, Business: entities.Business{Handler: &handler}},
		{ID: "YL-20250101-003", Status: entities.QuoteStatusQuoted},
		{ID: "YL-20250101-004", Status: entities.QuoteStatusCompleted},
		{ID: "YL-20250101-005", Status: entities.QuoteStatusCancelled},
		{ID: "YL-20250101-735", Status: entities.QuoteStatusPending},
	}

	t.Run("partition is exhaustive and disjoint for non-cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(quotes, nil)
		uc := NewDashboardUseCase(repo)

		board, err := uc.Kanban(context.Background(), "all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total := len(board.Pending) + len(board.Processing) + len(board.Quoted) + len(board.Completed)
		if total != 5 {
			t.Fatalf("expected 5 cards (cancelled excluded), got %d", total)
		}
		if len(board.Pending) != 2 || len(board.Processing) != 1 || len(board.Quoted) != 1 || len(board.Completed) != 1 {
			t.Fatalf("unexpected partition: %+v", board)
		}
	})

	t.Run("urgency flag from fixture id marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(quotes, nil)
		uc := NewDashboardUseCase(repo)

		board, err := uc.Kanban(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var urgent int
		for _, c := range board.Pending {
			if c.Urgent {
				urgent++
			}
		}
		if urgent != 1 {
			t.Fatalf("expected exactly one urgent pending card, got %d", urgent)
		}
	})

	t.Run("handler filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(quotes, nil)
		uc := NewDashboardUseCase(repo)

		board, err := uc.Kanban(context.Background(), handler)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total := len(board.Pending) + len(board.Processing) + len(board.Quoted) + len(board.Completed)
		if total != 1 || len(board.Processing) != 1 {
			t.Fatalf("expected only the assigned card, got %+v", board)
		}
	})
}
