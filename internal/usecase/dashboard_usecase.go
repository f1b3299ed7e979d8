package usecase

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"
)

// StatusCounts mirrors the dashboard stat cards.
type StatusCounts struct {
	All        int `json:"all"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Quoted     int `json:"quoted"`
	Completed  int `json:"completed"`
}

type Activity struct {
	QuoteID string    `json:"quoteId"`
	Company string    `json:"company"`
	Type    string    `json:"type"` // new_quote | deal_closed | status_update
	Time    time.Time `json:"time"`
}

type Overview struct {
	Counts           StatusCounts `json:"counts"`
	TotalRevenue     int          `json:"totalRevenue"`
	ConversionRate   int          `json:"conversionRate"`
	RecentActivities []Activity   `json:"recentActivities"`
}

type KanbanCard struct {
	Quote  entities.Quote `json:"quote"`
	Urgent bool           `json:"urgent"`
}

// KanbanBoard partitions non-cancelled records into the four status columns.
// A record appears in exactly one column.
type KanbanBoard struct {
	Pending    []KanbanCard `json:"pending"`
	Processing []KanbanCard `json:"processing"`
	Quoted     []KanbanCard `json:"quoted"`
	Completed  []KanbanCard `json:"completed"`
}

// IDashboardUseCase computes the read-only admin projections. Everything is
// recomputed from the full collection on every call; nothing here is
// persisted.

type IDashboardUseCase interface {
	Overview(ctx context.Context) (Overview, error)
	Kanban(ctx context.Context, handlerFilter string) (KanbanBoard, error)
}

type DashboardUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

func (u *DashboardUseCase) Overview(ctx context.Context) (Overview, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return Overview{}, err
	}

	var ov Overview
	ov.Counts.All = len(quotes)
	for _, q := range quotes {
		switch q.Status {
		case entities.QuoteStatusPending:
			ov.Counts.Pending++
		case entities.QuoteStatusProcessing:
			ov.Counts.Processing++
		case entities.QuoteStatusQuoted:
			ov.Counts.Quoted++
		case entities.QuoteStatusCompleted:
			ov.Counts.Completed++
		}
		ov.TotalRevenue += priceValue(q.Business.Price)
	}
	if len(quotes) > 0 {
		ov.ConversionRate = int(math.Round(float64(ov.Counts.Completed) / float64(len(quotes)) * 100))
	}
	ov.RecentActivities = recentActivities(quotes, 5)
	return ov, nil
}

// priceValue parses the manually entered price string; anything that is not
// a plain integer contributes zero.
func priceValue(price *string) int {
	if price == nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(*price))
	if err != nil {
		return 0
	}
	return v
}

func recentActivities(quotes []entities.Quote, limit int) []Activity {
	sorted := make([]entities.Quote, len(quotes))
	copy(sorted, quotes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	acts := make([]Activity, 0, len(sorted))
	for _, q := range sorted {
		typ := "status_update"
		switch q.Status {
		case entities.QuoteStatusPending:
			typ = "new_quote"
		case entities.QuoteStatusCompleted:
			typ = "deal_closed"
		}
		acts = append(acts, Activity{
			QuoteID: q.ID,
			Company: q.Customer.Company,
			Type:    typ,
			Time:    q.UpdatedAt,
		})
	}
	return acts
}

func (u *DashboardUseCase) Kanban(ctx context.Context, handlerFilter string) (KanbanBoard, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return KanbanBoard{}, err
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})

	board := KanbanBoard{
		Pending:    []KanbanCard{},
		Processing: []KanbanCard{},
		Quoted:     []KanbanCard{},
		Completed:  []KanbanCard{},
	}
	for _, q := range quotes {
		if handlerFilter != "" && handlerFilter != "all" {
			if q.Business.Handler == nil || *q.Business.Handler != handlerFilter {
				continue
			}
		}
		card := KanbanCard{Quote: q, Urgent: q.Urgent()}
		switch q.Status {
		case entities.QuoteStatusPending:
			board.Pending = append(board.Pending, card)
		case entities.QuoteStatusProcessing:
			board.Processing = append(board.Processing, card)
		case entities.QuoteStatusQuoted:
			board.Quoted = append(board.Quoted, card)
		case entities.QuoteStatusCompleted:
			board.Completed = append(board.Completed, card)
		}
	}
	return board, nil
}
