package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/shopspring/decimal"
)

func TestNewSubscription(t *testing.T) {
	now := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)
	plan := &Plan{ID: "p1", Price: decimal.RequireFromString("49.90"), BillingPeriod: PeriodQuarterly, Active: true}

	sub, err := NewSubscription("u1", plan, 7, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != SubscriptionTrialing || !sub.IsActive() {
		t.Fatalf("expected trialing, got %s", sub.Status)
	}
	if !sub.TrialEnd.Equal(now.AddDate(0, 0, 7)) {
		t.Fatalf("unexpected trial end %v", sub.TrialEnd)
	}
	if !sub.CurrentPeriodEnd.Equal(now.AddDate(0, 3, 0)) {
		t.Fatalf("unexpected period end %v", sub.CurrentPeriodEnd)
	}
	if !sub.PriceAtSubscription.Equal(plan.Price) {
		t.Fatalf("expected frozen price")
	}

	plan.Price = decimal.NewFromInt(99)
	if sub.PriceAtSubscription.Equal(plan.Price) {
		t.Fatalf("price must not follow plan changes")
	}
}

func TestNewSubscriptionInactivePlan(t *testing.T) {
	_, err := NewSubscription("u1", &Plan{ID: "p1"}, 7, time.Now())
	if _, ok := apperror.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	now := time.Now()
	sub, _ := NewSubscription("u1", &Plan{ID: "p1", Active: true}, 7, now)

	if err := sub.Cancel(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.IsActive() || sub.AutoRenew || sub.CanceledAt == nil {
		t.Fatalf("unexpected subscription after cancel %+v", sub)
	}
	if err := sub.Cancel(now); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict on second cancel, got %v", err)
	}
}

func TestBillingPeriodMonths(t *testing.T) {
	cases := map[BillingPeriod]int{PeriodMonthly: 1, PeriodQuarterly: 3, PeriodYearly: 12, "": 1}
	for p, want := range cases {
		if got := p.Months(); got != want {
			t.Fatalf("%q: expected %d, got %d", p, want, got)
		}
	}
}
