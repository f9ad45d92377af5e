package billing

import (
	"context"
)

// PlanRepository define a consulta de planos
type PlanRepository interface {
	// ListActive lista os planos ativos por ordem de exibição e preço
	ListActive(ctx context.Context) ([]*Plan, error)

	FindByID(ctx context.Context, id string) (*Plan, error)

	FindBySlug(ctx context.Context, slug string) (*Plan, error)
}

// SubscriptionRepository define as operações sobre assinaturas de um usuário
type SubscriptionRepository interface {
	Create(ctx context.Context, s *Subscription) error

	// FindByID busca uma assinatura do usuário
	FindByID(ctx context.Context, userID, id string) (*Subscription, error)

	// FindActive busca a assinatura mais recente em teste ou ativa
	FindActive(ctx context.Context, userID string) (*Subscription, error)

	// ListByUser lista as assinaturas do usuário, mais recentes primeiro
	ListByUser(ctx context.Context, userID string) ([]*Subscription, error)

	Update(ctx context.Context, s *Subscription) error
}

// PaymentRepository define a consulta do histórico de pagamentos
type PaymentRepository interface {
	// ListByUser lista os pagamentos do usuário, mais recentes primeiro
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Payment, error)

	CountByUser(ctx context.Context, userID string) (int, error)

	FindByID(ctx context.Context, userID, id string) (*Payment, error)
}
