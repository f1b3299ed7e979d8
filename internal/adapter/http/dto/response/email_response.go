package response

import (
	"time"

	"yuanli_transport/internal/domain/entities"
)

type EmailSummaryResponse struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	SenderName string    `json:"senderName"`
	Subject    string    `json:"subject"`
	Preview    string    `json:"preview"`
	ReceivedAt time.Time `json:"receivedAt"`
	Status     string    `json:"status"`
}

func FromEmailSummary(e entities.InboundEmail) EmailSummaryResponse {
	return EmailSummaryResponse{
		ID:         e.ID,
		From:       e.From,
		SenderName: e.SenderName,
		Subject:    e.Subject,
		Preview:    e.Preview,
		ReceivedAt: e.ReceivedAt,
		Status:     string(e.Status),
	}
}

type EmailListResponse struct {
	Emails []EmailSummaryResponse `json:"emails"`
	Total  int                    `json:"total"`
}

func FromEmails(emails []entities.InboundEmail) EmailListResponse {
	out := make([]EmailSummaryResponse, 0, len(emails))
	for _, e := range emails {
		out = append(out, FromEmailSummary(e))
	}
	return EmailListResponse{Emails: out, Total: len(out)}
}

type EmailDetailResponse struct {
	EmailSummaryResponse
	Content string `json:"content"`
}

func FromEmailDetail(e entities.InboundEmail) EmailDetailResponse {
	return EmailDetailResponse{
		EmailSummaryResponse: FromEmailSummary(e),
		Content:              e.Content,
	}
}

type AnalyzeResponse struct {
	EmailID  string                      `json:"emailId"`
	Proposal entities.ExtractionProposal `json:"proposal"`
}
