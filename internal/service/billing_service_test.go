package service_test

import (
	"testing"
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/billing"
	"github.com/hugohenrick/precificacao-api/internal/service"
)

const basicPlanID = "6f1c1e52-6a43-4f44-9a53-3f2b8c0e0a01"

func TestBillingPlans(t *testing.T) {
	e := newEnv(t)

	plans, err := e.billing.Plans(e.ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 3 || plans[0].Slug != "basico" || plans[2].Slug != "profissional-anual" {
		t.Fatalf("unexpected plans order")
	}

	plan, err := e.billing.PlanBySlug(e.ctx, "profissional")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "price", plan.Price, "79.90")

	_, err = e.billing.PlanBySlug(e.ctx, "inexistente")
	assertIs(t, err, apperror.ErrNotFound)
}

func TestBillingSubscribeAndCancel(t *testing.T) {
	e := newEnv(t)
	userID, _ := e.owner(t, "ana@exemplo.com", "Padaria")

	sub, err := e.billing.Subscribe(e.ctx, userID, basicPlanID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != billing.SubscriptionTrialing || !sub.AutoRenew {
		t.Fatalf("unexpected subscription %+v", sub)
	}
	assertDecimal(t, "frozen price", sub.PriceAtSubscription, "29.90")
	if sub.TrialEnd == nil || !sub.TrialEnd.Equal(sub.StartDate.AddDate(0, 0, 7)) {
		t.Fatalf("expected 7 day trial, got %v", sub.TrialEnd)
	}

	_, err = e.billing.Subscribe(e.ctx, userID, basicPlanID)
	assertIs(t, err, billing.ErrAlreadySubscribed)

	active, err := e.billing.Active(e.ctx, userID)
	if err != nil || active.ID != sub.ID {
		t.Fatalf("expected active subscription, got %v", err)
	}

	canceled, err := e.billing.Cancel(e.ctx, userID, sub.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canceled.Status != billing.SubscriptionCanceled || canceled.CanceledAt == nil || canceled.AutoRenew {
		t.Fatalf("unexpected canceled subscription %+v", canceled)
	}

	_, err = e.billing.Cancel(e.ctx, userID, sub.ID)
	assertIs(t, err, apperror.ErrConflict)
	_, err = e.billing.Active(e.ctx, userID)
	assertIs(t, err, apperror.ErrNotFound)

	// Outro usuário não enxerga a assinatura
	otherID, _ := e.owner(t, "bia@exemplo.com", "Confeitaria")
	_, err = e.billing.Cancel(e.ctx, otherID, sub.ID)
	assertIs(t, err, apperror.ErrNotFound)

	subs, err := e.billing.Subscriptions(e.ctx, userID)
	if err != nil || len(subs) != 1 {
		t.Fatalf("expected one subscription, got %d (%v)", len(subs), err)
	}
}

func TestBillingSubscribeUnknownPlan(t *testing.T) {
	e := newEnv(t)
	userID, _ := e.owner(t, "ana@exemplo.com", "Padaria")

	_, err := e.billing.Subscribe(e.ctx, userID, "inexistente")
	assertField(t, err, "plan_id")
	_, err = e.billing.Subscribe(e.ctx, userID, "")
	assertField(t, err, "plan_id")
}

func TestBillingPayments(t *testing.T) {
	e := newEnv(t)
	userID, _ := e.owner(t, "ana@exemplo.com", "Padaria")
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"p1", "p2", "p3"} {
		e.store.AddPayment(billing.Payment{
			ID:        id,
			UserID:    userID,
			Amount:    dec("29.90"),
			Currency:  "BRL",
			Status:    billing.PaymentSucceeded,
			Gateway:   "stripe",
			CreatedAt: base.AddDate(0, i, 0),
		})
	}
	e.store.AddPayment(billing.Payment{ID: "alheio", UserID: "outro", Amount: dec("1"), CreatedAt: base})

	payments, total, err := e.billing.Payments(e.ctx, userID, service.Page{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(payments) != 2 || payments[0].ID != "p3" {
		t.Fatalf("unexpected payments page: total=%d len=%d", total, len(payments))
	}

	if _, err := e.billing.Payment(e.ctx, userID, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = e.billing.Payment(e.ctx, userID, "alheio")
	assertIs(t, err, apperror.ErrNotFound)
}
