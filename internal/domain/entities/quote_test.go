package entities

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to QuoteStatus }{
		{QuoteStatusPending, QuoteStatusProcessing},
		{QuoteStatusPending, QuoteStatusQuoted},
		{QuoteStatusPending, QuoteStatusCancelled},
		{QuoteStatusProcessing, QuoteStatusQuoted},
		{QuoteStatusProcessing, QuoteStatusCancelled},
		{QuoteStatusQuoted, QuoteStatusCompleted},
		{QuoteStatusQuoted, QuoteStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to QuoteStatus }{
		{QuoteStatusPending, QuoteStatusCompleted},
		{QuoteStatusProcessing, QuoteStatusPending},
		{QuoteStatusQuoted, QuoteStatusProcessing},
		{QuoteStatusCompleted, QuoteStatusPending},
		{QuoteStatusCompleted, QuoteStatusCancelled},
		{QuoteStatusCancelled, QuoteStatusPending},
		{QuoteStatusCancelled, QuoteStatusQuoted},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestNextStatus(t *testing.T) {
	cases := []struct {
		from QuoteStatus
		want QuoteStatus
		ok   bool
	}{
		{QuoteStatusPending, QuoteStatusProcessing, true},
		{QuoteStatusProcessing, QuoteStatusQuoted, true},
		{QuoteStatusQuoted, QuoteStatusCompleted, true},
		{QuoteStatusCompleted, QuoteStatusCompleted, false},
		{QuoteStatusCancelled, QuoteStatusCancelled, false},
	}
	for _, tc := range cases {
		got, ok := NextStatus(tc.from)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NextStatus(%s) = %s, %v; want %s, %v", tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAssignHandler(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending moves to processing", func(t *testing.T) {
		q := Quote{ID: "YL-20251210-001", Status: QuoteStatusPending}
		q.AssignHandler("陳經理", now)
		if q.Status != QuoteStatusProcessing {
			t.Fatalf("expected processing, got %s", q.Status)
		}
		if q.Business.Handler == nil || *q.Business.Handler != "陳經理" {
			t.Fatalf("handler not set: %+v", q.Business)
		}
		if !q.UpdatedAt.Equal(now) {
			t.Fatalf("updatedAt not refreshed")
		}
	})

	t.Run("quoted keeps status", func(t *testing.T) {
		q := Quote{ID: "YL-20251210-002", Status: QuoteStatusQuoted}
		q.AssignHandler("林專員", now)
		if q.Status != QuoteStatusQuoted {
			t.Fatalf("status changed to %s", q.Status)
		}
		if q.Business.Handler == nil || *q.Business.Handler != "林專員" {
			t.Fatalf("handler not set: %+v", q.Business)
		}
	})
}

func TestUrgent(t *testing.T) {
	cases := []struct {
		name string
		q    Quote
		want bool
	}{
		{"urgency keyword in notes", Quote{ID: "YL-20251210-001", Vehicle: Vehicle{Notes: "急件,下週一前必須送達"}}, true},
		{"fixture id marker", Quote{ID: "YL-20251210-735"}, true},
		{"plain record", Quote{ID: "YL-20251210-002", Vehicle: Vehicle{Notes: "小心搬運"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.Urgent(); got != tc.want {
				t.Fatalf("Urgent() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []QuoteStatus{QuoteStatusPending, QuoteStatusProcessing, QuoteStatusQuoted, QuoteStatusCompleted, QuoteStatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if QuoteStatus("archived").Valid() {
		t.Error("unknown status accepted")
	}
	if !QuoteStatusCompleted.Terminal() || !QuoteStatusCancelled.Terminal() || QuoteStatusQuoted.Terminal() {
		t.Error("terminal classification wrong")
	}
}
