package interfaces

import (
	"context"

	"yuanli_transport/internal/domain/entities"
)

// IEmailRepository holds the inbound inquiry mailbox. The mailbox is triage
// working state, not business data, so implementations may be volatile.

type IEmailRepository interface {
	List(ctx context.Context) ([]entities.InboundEmail, error)
	GetByID(ctx context.Context, id string) (entities.InboundEmail, error)
	SetStatus(ctx context.Context, id string, status entities.EmailStatus) (entities.InboundEmail, error)
}
