package service

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/billing"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
)

// BillingService consulta planos e gerencia as assinaturas do usuário.
// Os recursos de precificação não dependem da assinatura.
type BillingService struct {
	tx            Transactor
	plans         billing.PlanRepository
	subscriptions billing.SubscriptionRepository
	payments      billing.PaymentRepository
	trialDays     int
	now           func() time.Time
	log           logger.Logger
}

// NewBillingService cria uma nova instância de BillingService
func NewBillingService(tx Transactor, plans billing.PlanRepository, subscriptions billing.SubscriptionRepository,
	payments billing.PaymentRepository, trialDays int, log logger.Logger) *BillingService {
	return &BillingService{
		tx:            tx,
		plans:         plans,
		subscriptions: subscriptions,
		payments:      payments,
		trialDays:     trialDays,
		now:           time.Now,
		log:           log,
	}
}

// Plans lista os planos ativos
func (s *BillingService) Plans(ctx context.Context) ([]*billing.Plan, error) {
	return s.plans.ListActive(ctx)
}

// PlanBySlug busca um plano pelo slug
func (s *BillingService) PlanBySlug(ctx context.Context, slug string) (*billing.Plan, error) {
	return s.plans.FindBySlug(ctx, slug)
}

// Subscribe inicia a assinatura do plano em período de teste. Um usuário
// com assinatura em teste ou ativa não pode assinar outro plano.
func (s *BillingService) Subscribe(ctx context.Context, userID, planID string) (*billing.Subscription, error) {
	if planID == "" {
		return nil, apperror.Invalid("plan_id", "plano é obrigatório")
	}

	var out *billing.Subscription
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.subscriptions.FindActive(ctx, userID); err == nil {
			return billing.ErrAlreadySubscribed
		} else if !errors.Is(err, apperror.ErrNotFound) {
			return err
		}

		plan, err := s.plans.FindByID(ctx, planID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return apperror.Invalid("plan_id", "plano não encontrado")
			}
			return err
		}
		sub, err := billing.NewSubscription(userID, plan, s.trialDays, s.now())
		if err != nil {
			return err
		}
		if err := s.subscriptions.Create(ctx, sub); err != nil {
			return err
		}
		out = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("assinatura criada", "user_id", userID, "plan_id", planID, "subscription_id", out.ID)
	return out, nil
}

// Cancel cancela uma assinatura do usuário
func (s *BillingService) Cancel(ctx context.Context, userID, id string) (*billing.Subscription, error) {
	var out *billing.Subscription
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		sub, err := s.subscriptions.FindByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := sub.Cancel(s.now()); err != nil {
			return err
		}
		if err := s.subscriptions.Update(ctx, sub); err != nil {
			return err
		}
		out = sub
		return nil
	})
	return out, err
}

// Active retorna a assinatura em teste ou ativa do usuário
func (s *BillingService) Active(ctx context.Context, userID string) (*billing.Subscription, error) {
	return s.subscriptions.FindActive(ctx, userID)
}

// Subscriptions lista as assinaturas do usuário
func (s *BillingService) Subscriptions(ctx context.Context, userID string) ([]*billing.Subscription, error) {
	return s.subscriptions.ListByUser(ctx, userID)
}

// Payments lista o histórico de pagamentos do usuário
func (s *BillingService) Payments(ctx context.Context, userID string, page Page) ([]*billing.Payment, int, error) {
	payments, err := s.payments.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.payments.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// Payment busca um pagamento do usuário
func (s *BillingService) Payment(ctx context.Context, userID, id string) (*billing.Payment, error) {
	return s.payments.FindByID(ctx, userID, id)
}
