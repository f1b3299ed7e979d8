package response

import (
	"time"

	"yuanli_transport/internal/domain/entities"
)

type CustomerResponse struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type ShippingResponse struct {
	OriginCity    string `json:"originCity"`
	OriginAddress string `json:"originAddress"`
	DestCity      string `json:"destCity"`
	DestAddress   string `json:"destAddress"`
	CargoType     string `json:"cargoType"`
	Weight        string `json:"weight"`
	PickupDate    string `json:"pickupDate"`
	PickupTime    string `json:"pickupTime"`
	DeliveryDate  string `json:"deliveryDate"`
	DeliveryTime  string `json:"deliveryTime"`
}

type VehicleResponse struct {
	Type            string   `json:"type"`
	IsRecommended   bool     `json:"isRecommended"`
	SpecialRequests []string `json:"specialRequests"`
	Notes           string   `json:"notes"`
}

type BusinessResponse struct {
	Price         *string `json:"price"`
	Handler       *string `json:"handler"`
	InternalNotes *string `json:"internalNotes"`
}

type QuoteResponse struct {
	ID        string           `json:"id"`
	Source    string           `json:"source"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Customer  CustomerResponse `json:"customer"`
	Shipping  ShippingResponse `json:"shipping"`
	Vehicle   VehicleResponse  `json:"vehicle"`
	Business  BusinessResponse `json:"business"`
	Version   int64            `json:"version"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		Source:    string(q.Source),
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
		Customer:  CustomerResponse(q.Customer),
		Shipping:  ShippingResponse(q.Shipping),
		Vehicle:   VehicleResponse(q.Vehicle),
		Business:  BusinessResponse(q.Business),
		Version:   q.Version,
	}
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}

func FromQuotes(quotes []entities.Quote) QuoteListResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return QuoteListResponse{Quotes: out, Total: len(out)}
}

// ValidationErrorResponse carries the per-field failure messages from an
// inquiry submission.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

type DraftResponse struct {
	Saved bool                  `json:"saved"`
	Draft entities.InquiryDraft `json:"draft"`
}

func FromDraft(d entities.InquiryDraft) DraftResponse {
	return DraftResponse{Saved: !d.Empty(), Draft: d}
}
