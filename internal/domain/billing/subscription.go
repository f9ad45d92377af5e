package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionStatus representa a situação da assinatura
type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionUnpaid   SubscriptionStatus = "unpaid"
)

// Subscription é a assinatura de um plano por um usuário
type Subscription struct {
	ID                  string
	UserID              string
	PlanID              string
	Status              SubscriptionStatus
	StartDate           time.Time
	CurrentPeriodStart  *time.Time
	CurrentPeriodEnd    *time.Time
	TrialEnd            *time.Time
	CanceledAt          *time.Time
	PriceAtSubscription decimal.Decimal
	AutoRenew           bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewSubscription inicia uma assinatura em período de teste com o preço
// do plano congelado
func NewSubscription(userID string, plan *Plan, trialDays int, now time.Time) (*Subscription, error) {
	if !plan.Active {
		return nil, ErrPlanInactive
	}

	periodStart := now
	periodEnd := plan.PeriodEnd(now)
	trialEnd := now.AddDate(0, 0, trialDays)
	return &Subscription{
		ID:                  uuid.New().String(),
		UserID:              userID,
		PlanID:              plan.ID,
		Status:              SubscriptionTrialing,
		StartDate:           now,
		CurrentPeriodStart:  &periodStart,
		CurrentPeriodEnd:    &periodEnd,
		TrialEnd:            &trialEnd,
		PriceAtSubscription: plan.Price,
		AutoRenew:           true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// IsActive verifica se a assinatura está em teste ou ativa
func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionTrialing || s.Status == SubscriptionActive
}

// Cancel cancela a assinatura e desliga a renovação automática
func (s *Subscription) Cancel(now time.Time) error {
	if s.Status == SubscriptionCanceled {
		return ErrAlreadyCanceled
	}
	s.Status = SubscriptionCanceled
	s.CanceledAt = &now
	s.AutoRenew = false
	s.UpdatedAt = now
	return nil
}
