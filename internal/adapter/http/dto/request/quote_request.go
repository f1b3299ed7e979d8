package request

import (
	"strings"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase"
)

// UpdateStatusRequest moves a record to an explicit status. Version is the
// version the admin last read; the write is rejected when it is stale.
type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Version int64  `json:"version"`
}

func (r UpdateStatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}

type AssignHandlerRequest struct {
	Handler string `json:"handler" binding:"required"`
}

func (r AssignHandlerRequest) ResolveHandler() string {
	return strings.TrimSpace(r.Handler)
}

// UpdateBusinessRequest patches the staff-facing block. Absent fields stay
// untouched; present fields overwrite, including with the empty string.
type UpdateBusinessRequest struct {
	Price         *string `json:"price"`
	InternalNotes *string `json:"internalNotes"`
	Version       int64   `json:"version"`
}

func (r UpdateBusinessRequest) ToUpdate() usecase.BusinessUpdate {
	return usecase.BusinessUpdate{
		Price:         r.Price,
		InternalNotes: r.InternalNotes,
		Version:       r.Version,
	}
}
