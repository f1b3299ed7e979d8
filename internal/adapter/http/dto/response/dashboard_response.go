package response

import (
	"time"

	"yuanli_transport/internal/usecase"
)

type StatusCountsResponse struct {
	All        int `json:"all"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Quoted     int `json:"quoted"`
	Completed  int `json:"completed"`
}

type ActivityResponse struct {
	QuoteID string    `json:"quoteId"`
	Company string    `json:"company"`
	Type    string    `json:"type"`
	Time    time.Time `json:"time"`
}

type OverviewResponse struct {
	Counts           StatusCountsResponse `json:"counts"`
	TotalRevenue     int                  `json:"totalRevenue"`
	ConversionRate   int                  `json:"conversionRate"`
	RecentActivities []ActivityResponse   `json:"recentActivities"`
}

func FromOverview(ov usecase.Overview) OverviewResponse {
	activities := make([]ActivityResponse, 0, len(ov.RecentActivities))
	for _, a := range ov.RecentActivities {
		activities = append(activities, ActivityResponse(a))
	}
	return OverviewResponse{
		Counts:           StatusCountsResponse(ov.Counts),
		TotalRevenue:     ov.TotalRevenue,
		ConversionRate:   ov.ConversionRate,
		RecentActivities: activities,
	}
}

type KanbanCardResponse struct {
	Quote  QuoteResponse `json:"quote"`
	Urgent bool          `json:"urgent"`
}

type KanbanBoardResponse struct {
	Pending    []KanbanCardResponse `json:"pending"`
	Processing []KanbanCardResponse `json:"processing"`
	Quoted     []KanbanCardResponse `json:"quoted"`
	Completed  []KanbanCardResponse `json:"completed"`
}

func FromKanban(b usecase.KanbanBoard) KanbanBoardResponse {
	conv := func(cards []usecase.KanbanCard) []KanbanCardResponse {
		out := make([]KanbanCardResponse, 0, len(cards))
		for _, c := range cards {
			out = append(out, KanbanCardResponse{Quote: FromQuote(c.Quote), Urgent: c.Urgent})
		}
		return out
	}
	return KanbanBoardResponse{
		Pending:    conv(b.Pending),
		Processing: conv(b.Processing),
		Quoted:     conv(b.Quoted),
		Completed:  conv(b.Completed),
	}
}
