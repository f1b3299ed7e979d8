package interfaces

import (
	"context"

	"yuanli_transport/internal/domain/entities"
)

// IDraftRepository persists the single inquiry-form draft slot.

type IDraftRepository interface {
	Get(ctx context.Context) (entities.InquiryDraft, error)
	Put(ctx context.Context, d entities.InquiryDraft) error
	Clear(ctx context.Context) error
}
