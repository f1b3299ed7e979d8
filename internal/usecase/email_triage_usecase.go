package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"
)

var (
	ErrEmailNotFound         = errors.New("email not found")
	ErrInvalidEmailID        = errors.New("invalid email id")
	ErrEmailAlreadyProcessed = errors.New("email already processed")
	ErrExtractionFailed      = errors.New("email analysis failed")
	ErrExtractorUnavailable  = errors.New("email extractor not configured")
)

const fieldNotProvided = "未提供"

// IEmailTriageUseCase drives the AI-assisted mailbox: listing inbound
// inquiry emails, running the extraction call, and converting an accepted
// proposal into a quote record.

type IEmailTriageUseCase interface {
	ListEmails(ctx context.Context, view string) ([]entities.InboundEmail, error)
	OpenEmail(ctx context.Context, id string) (entities.InboundEmail, error)
	AnalyzeEmail(ctx context.Context, id string) (entities.ExtractionProposal, error)
	CreateQuoteFromProposal(ctx context.Context, emailID string, p entities.ExtractionProposal) (entities.Quote, error)
}

type EmailTriageUseCase struct {
	quotes    interfaces.IQuoteRepository
	emails    interfaces.IEmailRepository
	extractor interfaces.IEmailExtractor
}

var _ IEmailTriageUseCase = (*EmailTriageUseCase)(nil)

func NewEmailTriageUseCase(quotes interfaces.IQuoteRepository, emails interfaces.IEmailRepository, extractor interfaces.IEmailExtractor) *EmailTriageUseCase {
	return &EmailTriageUseCase{quotes: quotes, emails: emails, extractor: extractor}
}

// ListEmails filters the mailbox by triage view: "pending" hides processed
// emails, "processed" shows only them, anything else returns the full box.
func (u *EmailTriageUseCase) ListEmails(ctx context.Context, view string) ([]entities.InboundEmail, error) {
	all, err := u.emails.List(ctx)
	if err != nil {
		return nil, err
	}

	switch view {
	case "pending":
		out := make([]entities.InboundEmail, 0, len(all))
		for _, e := range all {
			if e.Status != entities.EmailStatusProcessed {
				out = append(out, e)
			}
		}
		return out, nil
	case "processed":
		out := make([]entities.InboundEmail, 0, len(all))
		for _, e := range all {
			if e.Status == entities.EmailStatusProcessed {
				out = append(out, e)
			}
		}
		return out, nil
	default:
		return all, nil
	}
}

// OpenEmail returns the email and marks a fresh one as read.
func (u *EmailTriageUseCase) OpenEmail(ctx context.Context, id string) (entities.InboundEmail, error) {
	e, err := u.getEmail(ctx, id)
	if err != nil {
		return entities.InboundEmail{}, err
	}
	if e.Status != entities.EmailStatusUnread {
		return e, nil
	}
	return u.emails.SetStatus(ctx, e.ID, entities.EmailStatusRead)
}

// AnalyzeEmail runs the extraction call. On failure the email and any prior
// proposal held by the caller stay untouched so the operator can retry.
func (u *EmailTriageUseCase) AnalyzeEmail(ctx context.Context, id string) (entities.ExtractionProposal, error) {
	if u.extractor == nil {
		return entities.ExtractionProposal{}, fmt.Errorf("%w: %v", ErrExtractionFailed, ErrExtractorUnavailable)
	}

	e, err := u.getEmail(ctx, id)
	if err != nil {
		return entities.ExtractionProposal{}, err
	}

	proposal, err := u.extractor.Analyze(ctx, e.Content)
	if err != nil {
		return entities.ExtractionProposal{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if proposal.Summary.Subject == "" {
		proposal.Summary.Subject = e.Subject
	}
	if proposal.Summary.Sender == "" {
		proposal.Summary.Sender = e.From
	}
	return proposal, nil
}

// CreateQuoteFromProposal maps an accepted (possibly operator-edited)
// proposal onto a new pending quote tagged with ai-email provenance, then
// marks the source email processed. The workflow hints that have no field of
// their own are folded into the internal notes as an audit trail.
func (u *EmailTriageUseCase) CreateQuoteFromProposal(ctx context.Context, emailID string, p entities.ExtractionProposal) (entities.Quote, error) {
	e, err := u.getEmail(ctx, emailID)
	if err != nil {
		return entities.Quote{}, err
	}
	if e.Status == entities.EmailStatusProcessed {
		return entities.Quote{}, ErrEmailAlreadyProcessed
	}

	phone := p.Customer.Phone
	if phone == "" {
		phone = p.Customer.Mobile
	}
	vehicleType := p.Requirements.VehicleType
	if vehicleType == "" {
		vehicleType = "建議車型"
	}
	specialNeeds := p.Requirements.SpecialNeeds
	if specialNeeds == nil {
		specialNeeds = []string{}
	}

	internalNotes := fmt.Sprintf(
		"AI 建議:\n工作階段: %s\n預估報價: %s\n建議車輛: %s\n\n原始郵件: %s",
		p.Workflow.Stage, p.Workflow.EstimatedPrice, p.Workflow.EstimatedVehicles, e.Subject,
	)
	var handler *string
	if assignTo := strings.TrimSpace(p.Workflow.AssignTo); assignTo != "" {
		handler = &assignTo
	}

	now := time.Now().UTC()
	q := entities.Quote{
		Source:    entities.QuoteSourceAIEmail,
		Status:    entities.QuoteStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Customer: entities.Customer{
			Company: orDefault(p.Customer.Company, fieldNotProvided),
			Name:    orDefault(p.Customer.ContactPerson, fieldNotProvided),
			Phone:   orDefault(phone, fieldNotProvided),
			Email:   orDefault(p.Customer.Email, fieldNotProvided),
		},
		Shipping: entities.Shipping{
			OriginCity:    p.Shipping.OriginCity,
			OriginAddress: p.Shipping.OriginAddress,
			DestCity:      p.Shipping.DestCity,
			DestAddress:   p.Shipping.DestAddress,
			CargoType:     p.Shipping.CargoType,
			Weight:        p.Shipping.TotalWeight,
			PickupDate:    p.Shipping.PickupDate,
			PickupTime:    p.Shipping.PickupTime,
			DeliveryDate:  p.Shipping.DeliveryDate,
			DeliveryTime:  p.Shipping.DeliveryTime,
		},
		Vehicle: entities.Vehicle{
			Type:            vehicleType,
			IsRecommended:   true,
			SpecialRequests: specialNeeds,
			Notes:           strings.Join(p.AINotes, "\n"),
		},
		Business: entities.Business{
			Handler:       handler,
			InternalNotes: &internalNotes,
		},
		Version: 1,
	}

	created, err := createWithFreshID(ctx, u.quotes, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if _, err := u.emails.SetStatus(ctx, e.ID, entities.EmailStatusProcessed); err != nil {
		return entities.Quote{}, err
	}
	return created, nil
}

func (u *EmailTriageUseCase) getEmail(ctx context.Context, id string) (entities.InboundEmail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InboundEmail{}, ErrInvalidEmailID
	}

	e, err := u.emails.GetByID(ctx, id)
	if err != nil {
		return entities.InboundEmail{}, err
	}
	if e.ID == "" {
		return entities.InboundEmail{}, ErrEmailNotFound
	}
	return e, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
