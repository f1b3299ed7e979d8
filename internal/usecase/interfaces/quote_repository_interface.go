package interfaces

import (
	"context"

	"yuanli_transport/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote records.
//
// Conventions (shared by all repositories here):
//   - a zero-value entity with an empty ID means "not found"; errors are
//     reserved for infrastructure failures
//   - Create is conditional on the ID being free and returns a zero entity
//     when the ID is already taken, so the caller can regenerate
//   - Update writes the whole record conditioned on the stored version
//     matching q.Version, and returns entities.ErrVersionConflict when a
//     concurrent writer got there first

type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
