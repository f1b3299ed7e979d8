package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"regexp"
	"sort"
	"strings"
	"time"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidStatus     = errors.New("invalid quote status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidHandler    = errors.New("invalid handler")
	ErrQuoteIDExhausted  = errors.New("could not allocate a unique quote id")
)

// ValidationError reports the full set of field-level failures for an
// inquiry submission. Validation is all-or-nothing: nothing is persisted
// until every field passes.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "inquiry validation failed: " + strings.Join(keys, ", ")
}

var (
	phonePattern = regexp.MustCompile(`^09\d{8}$|^0\d{1,2}-\d{6,8}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// InquiryCommand carries the raw public-form input for a new quote.
type InquiryCommand struct {
	Company         string
	Name            string
	Phone           string
	Email           string
	OriginCity      string
	OriginAddress   string
	DestCity        string
	DestAddress     string
	CargoType       string
	CargoDetails    string
	PickupDate      string
	PickupTime      string
	DeliveryDate    string
	DeliveryTime    string
	VehicleMode     string
	SpecificVehicle string
	SpecialNeeds    []string
	Notes           string
	Agreed          bool
}

// QuoteFilter is the AND-combined admin list filter.
type QuoteFilter struct {
	Search    string
	Status    string // all | pending | processing | quoted | completed | cancelled
	DateRange string // all | today | week
}

// BusinessUpdate patches the business block of a quote. Nil pointers leave
// the field untouched. Version, when non-zero, is the version the caller
// last read; a mismatch aborts the write.
type BusinessUpdate struct {
	Price         *string
	InternalNotes *string
	Version       int64
}

// IQuoteUseCase exposes the quote-record lifecycle: public intake, the admin
// list/detail mutations, and the inquiry draft slot.

type IQuoteUseCase interface {
	SubmitInquiry(ctx context.Context, cmd InquiryCommand) (entities.Quote, error)
	List(ctx context.Context, f QuoteFilter) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, version int64) (entities.Quote, error)
	QuickQuote(ctx context.Context, id string) (entities.Quote, error)
	Advance(ctx context.Context, id string) (entities.Quote, error)
	AssignHandler(ctx context.Context, id, handler string) (entities.Quote, error)
	UpdateBusiness(ctx context.Context, id string, upd BusinessUpdate) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	GetDraft(ctx context.Context) (entities.InquiryDraft, error)
	SaveDraft(ctx context.Context, d entities.InquiryDraft) (entities.InquiryDraft, error)
	ClearDraft(ctx context.Context) error
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	drafts interfaces.IDraftRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, drafts interfaces.IDraftRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, drafts: drafts}
}

const quoteIDAttempts = 3

func newQuoteID(now time.Time) string {
	return fmt.Sprintf("YL-%s-%03d", now.Format("20060102"), rand.IntN(1000))
}

// createWithFreshID retries the random date-based ID on collision instead of
// silently overwriting an existing record.
func createWithFreshID(ctx context.Context, repo interfaces.IQuoteRepository, q entities.Quote) (entities.Quote, error) {
	for range quoteIDAttempts {
		q.ID = newQuoteID(q.CreatedAt)
		created, err := repo.Create(ctx, q)
		if err != nil {
			return entities.Quote{}, err
		}
		if created.ID != "" {
			return created, nil
		}
	}
	return entities.Quote{}, ErrQuoteIDExhausted
}

func validateInquiry(cmd InquiryCommand) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(cmd.Name) == "" {
		fields["name"] = "請輸入聯絡人姓名"
	}
	switch {
	case strings.TrimSpace(cmd.Phone) == "":
		fields["phone"] = "請輸入聯絡電話"
	case !phonePattern.MatchString(cmd.Phone):
		fields["phone"] = "電話格式錯誤"
	}
	switch {
	case strings.TrimSpace(cmd.Email) == "":
		fields["email"] = "請輸入 Email"
	case !emailPattern.MatchString(cmd.Email):
		fields["email"] = "Email 格式錯誤"
	}
	if strings.TrimSpace(cmd.OriginCity) == "" {
		fields["originCity"] = "請選擇起運縣市"
	}
	if strings.TrimSpace(cmd.DestCity) == "" {
		fields["destCity"] = "請選擇目的地縣市"
	}
	if strings.TrimSpace(cmd.CargoType) == "" {
		fields["cargoType"] = "請選擇貨物類型"
	}
	if strings.TrimSpace(cmd.CargoDetails) == "" {
		fields["cargoDetails"] = "請輸入重量/數量"
	}
	if strings.TrimSpace(cmd.PickupDate) == "" {
		fields["pickupDate"] = "請選擇取貨日期"
	}
	if strings.TrimSpace(cmd.DeliveryDate) == "" {
		fields["deliveryDate"] = "請選擇送達日期"
	}
	if !cmd.Agreed {
		fields["agreed"] = "請同意隱私權政策"
	}
	if cmd.VehicleMode == "specific" && strings.TrimSpace(cmd.SpecificVehicle) == "" {
		fields["specificVehicle"] = "請選擇指定車型"
	}
	return fields
}

func (u *QuoteUseCase) SubmitInquiry(ctx context.Context, cmd InquiryCommand) (entities.Quote, error) {
	if fields := validateInquiry(cmd); len(fields) > 0 {
		return entities.Quote{}, &ValidationError{Fields: fields}
	}

	vehicleType := "讓業務推薦"
	if cmd.VehicleMode == "specific" {
		vehicleType = cmd.SpecificVehicle
	}
	specialNeeds := cmd.SpecialNeeds
	if specialNeeds == nil {
		specialNeeds = []string{}
	}

	now := time.Now().UTC()
	q := entities.Quote{
		Source:    entities.QuoteSourceWebsite,
		Status:    entities.QuoteStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Customer: entities.Customer{
			Company: cmd.Company,
			Name:    cmd.Name,
			Phone:   cmd.Phone,
			Email:   cmd.Email,
		},
		Shipping: entities.Shipping{
			OriginCity:    cmd.OriginCity,
			OriginAddress: cmd.OriginAddress,
			DestCity:      cmd.DestCity,
			DestAddress:   cmd.DestAddress,
			CargoType:     cmd.CargoType,
			Weight:        cmd.CargoDetails,
			PickupDate:    cmd.PickupDate,
			PickupTime:    cmd.PickupTime,
			DeliveryDate:  cmd.DeliveryDate,
			DeliveryTime:  cmd.DeliveryTime,
		},
		Vehicle: entities.Vehicle{
			Type:            vehicleType,
			IsRecommended:   cmd.VehicleMode == "recommend",
			SpecialRequests: specialNeeds,
			Notes:           cmd.Notes,
		},
		Business: entities.Business{},
		Version:  1,
	}

	created, err := createWithFreshID(ctx, u.repo, q)
	if err != nil {
		return entities.Quote{}, err
	}

	// The draft slot only survives until a successful submission. A failed
	// clear never fails the submission itself.
	if u.drafts != nil {
		if err := u.drafts.Clear(ctx); err != nil {
			log.Printf("[quote][intake] draft clear failed err=%v", err)
		}
	}
	return created, nil
}

func (u *QuoteUseCase) List(ctx context.Context, f QuoteFilter) ([]entities.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if matchesFilter(q, f, time.Now().UTC()) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func matchesFilter(q entities.Quote, f QuoteFilter, now time.Time) bool {
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		hit := strings.Contains(strings.ToLower(q.ID), s) ||
			strings.Contains(strings.ToLower(q.Customer.Company), s) ||
			strings.Contains(strings.ToLower(q.Customer.Name), s) ||
			strings.Contains(q.Customer.Phone, s)
		if !hit {
			return false
		}
	}
	if f.Status != "" && f.Status != "all" && string(q.Status) != f.Status {
		return false
	}
	switch f.DateRange {
	case "today":
		y, m, d := now.Date()
		qy, qm, qd := q.CreatedAt.UTC().Date()
		if y != qy || m != qm || d != qd {
			return false
		}
	case "week":
		if q.CreatedAt.Before(now.AddDate(0, 0, -7)) {
			return false
		}
	}
	return true
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, version int64) (entities.Quote, error) {
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidStatus
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if version > 0 && version != q.Version {
		return entities.Quote{}, entities.ErrVersionConflict
	}
	if status == q.Status {
		return q, nil
	}
	if !entities.CanTransition(q.Status, status) {
		return entities.Quote{}, ErrInvalidTransition
	}

	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	return u.persist(ctx, q)
}

// QuickQuote is the list-view shortcut that moves a pending record straight
// to quoted. No other field changes besides updatedAt.
func (u *QuoteUseCase) QuickQuote(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrInvalidTransition
	}

	q.Status = entities.QuoteStatusQuoted
	q.UpdatedAt = time.Now().UTC()
	return u.persist(ctx, q)
}

// Advance moves a record one step forward along the main path, the kanban
// card action.
func (u *QuoteUseCase) Advance(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	next, ok := entities.NextStatus(q.Status)
	if !ok {
		return entities.Quote{}, ErrInvalidTransition
	}
	q.Status = next
	q.UpdatedAt = time.Now().UTC()
	return u.persist(ctx, q)
}

func (u *QuoteUseCase) AssignHandler(ctx context.Context, id, handler string) (entities.Quote, error) {
	handler = strings.TrimSpace(handler)
	if handler == "" {
		return entities.Quote{}, ErrInvalidHandler
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	q.AssignHandler(handler, time.Now().UTC())
	return u.persist(ctx, q)
}

func (u *QuoteUseCase) UpdateBusiness(ctx context.Context, id string, upd BusinessUpdate) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if upd.Version > 0 && upd.Version != q.Version {
		return entities.Quote{}, entities.ErrVersionConflict
	}

	if upd.Price != nil {
		q.Business.Price = upd.Price
	}
	if upd.InternalNotes != nil {
		q.Business.InternalNotes = upd.InternalNotes
	}
	q.UpdatedAt = time.Now().UTC()
	return u.persist(ctx, q)
}

func (u *QuoteUseCase) persist(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrQuoteNotFound
	}
	return nil
}

func (u *QuoteUseCase) GetDraft(ctx context.Context) (entities.InquiryDraft, error) {
	return u.drafts.Get(ctx)
}

func (u *QuoteUseCase) SaveDraft(ctx context.Context, d entities.InquiryDraft) (entities.InquiryDraft, error) {
	d.SavedAt = time.Now().UTC()
	if err := u.drafts.Put(ctx, d); err != nil {
		return entities.InquiryDraft{}, err
	}
	return d, nil
}

func (u *QuoteUseCase) ClearDraft(ctx context.Context) error {
	return u.drafts.Clear(ctx)
}
