package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"
)

// EmailMemoryRepository keeps the inbound inquiry mailbox in process memory.
// The mailbox is triage working state, not business data; the record that
// matters (the quote created from an email) lives in the quote table. The
// repository starts with the fixture mailbox and loses its state on restart.

type EmailMemoryRepository struct {
	mu     sync.RWMutex
	emails map[string]entities.InboundEmail
}

var _ interfaces.IEmailRepository = (*EmailMemoryRepository)(nil)

func NewEmailMemoryRepository() *EmailMemoryRepository {
	emails := make(map[string]entities.InboundEmail)
	for _, e := range FixtureEmails(time.Now().UTC()) {
		emails[e.ID] = e
	}
	return &EmailMemoryRepository{emails: emails}
}

func (r *EmailMemoryRepository) List(_ context.Context) ([]entities.InboundEmail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.InboundEmail, 0, len(r.emails))
	for _, e := range r.emails {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	return out, nil
}

func (r *EmailMemoryRepository) GetByID(_ context.Context, id string) (entities.InboundEmail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.emails[id], nil
}

func (r *EmailMemoryRepository) SetStatus(_ context.Context, id string, status entities.EmailStatus) (entities.InboundEmail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.emails[id]
	if !ok {
		return entities.InboundEmail{}, nil
	}
	e.Status = status
	r.emails[id] = e
	return e, nil
}
