package entities

import (
	"errors"
	"strings"
	"time"
)

// QuoteStatus represents the lifecycle of a shipment inquiry.
//
// Domain notes:
//   - pending is the initial status for both producers (website form, email triage).
//   - processing is entered when a handler takes the record, or explicitly.
//   - The list view may advance pending directly to quoted ("quick quote").
//   - completed and cancelled are terminal; there is no rollback edge.

type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "pending"
	QuoteStatusProcessing QuoteStatus = "processing"
	QuoteStatusQuoted     QuoteStatus = "quoted"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusCancelled  QuoteStatus = "cancelled"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusProcessing, QuoteStatusQuoted,
		QuoteStatusCompleted, QuoteStatusCancelled:
		return true
	}
	return false
}

func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusCompleted || s == QuoteStatusCancelled
}

// QuoteSource tags the provenance of a record.

type QuoteSource string

const (
	QuoteSourceWebsite QuoteSource = "website"
	QuoteSourceAIEmail QuoteSource = "ai-email"
)

type Customer struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Shipping struct {
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

type Vehicle struct {
	Type            string   `json:"type"`
	IsRecommended   bool     `json:"isRecommended"`
	SpecialRequests []string `json:"specialRequests"`
	Notes           string   `json:"notes"`
}

type Business struct {
	Price         *string `json:"price"`
	Handler       *string `json:"handler"`
	InternalNotes *string `json:"internalNotes"`
}

// Quote is the canonical shipment-inquiry record.
//
// Storage model (DynamoDB):
//   - PK: id (YL-YYYYMMDD-NNN, generated at creation)
//
// Version is an optimistic-concurrency counter: every persisted mutation
// increments it and a write with a stale version is rejected, so two admin
// sessions cannot silently overwrite each other.

type Quote struct {
	ID        string      `json:"id"`
	Source    QuoteSource `json:"source"`
	Status    QuoteStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Customer  Customer    `json:"customer"`
	Shipping  Shipping    `json:"shipping"`
	Vehicle   Vehicle     `json:"vehicle"`
	Business  Business    `json:"business"`
	Version   int64       `json:"version"`
}

var ErrVersionConflict = errors.New("quote version conflict")

// statusEdges lists the allowed transitions. pending -> quoted is the
// list-view quick-advance shortcut.
var statusEdges = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending:    {QuoteStatusProcessing, QuoteStatusQuoted, QuoteStatusCancelled},
	QuoteStatusProcessing: {QuoteStatusQuoted, QuoteStatusCancelled},
	QuoteStatusQuoted:     {QuoteStatusCompleted, QuoteStatusCancelled},
}

func CanTransition(from, to QuoteStatus) bool {
	for _, next := range statusEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatus returns the forward step used by the kanban "advance" action.
func NextStatus(from QuoteStatus) (QuoteStatus, bool) {
	switch from {
	case QuoteStatusPending:
		return QuoteStatusProcessing, true
	case QuoteStatusProcessing:
		return QuoteStatusQuoted, true
	case QuoteStatusQuoted:
		return QuoteStatusCompleted, true
	}
	return from, false
}

// AssignHandler sets the responsible staff member. Taking a pending record
// advances it to processing; on any other status only the handler changes.
func (q *Quote) AssignHandler(handler string, now time.Time) {
	q.Business.Handler = &handler
	if q.Status == QuoteStatusPending {
		q.Status = QuoteStatusProcessing
	}
	q.UpdatedAt = now
}

// Urgent is the display-only urgency heuristic used by the kanban board and
// dashboard. It is never persisted.
func (q Quote) Urgent() bool {
	return strings.Contains(q.Vehicle.Notes, "急") || strings.Contains(q.ID, "735")
}
