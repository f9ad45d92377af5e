// Package billing mantém planos, assinaturas e o histórico de pagamentos dos
// usuários. Os recursos de precificação não dependem do estado da assinatura.
package billing

import (
	"fmt"
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrPlanNotFound         = fmt.Errorf("plano %w", apperror.ErrNotFound)
	ErrPlanInactive         = apperror.Invalid("plano", "plano não está disponível para assinatura")
	ErrSubscriptionNotFound = fmt.Errorf("assinatura %w", apperror.ErrNotFound)
	ErrAlreadySubscribed    = fmt.Errorf("usuário já possui assinatura ativa: %w", apperror.ErrConflict)
	ErrAlreadyCanceled      = fmt.Errorf("assinatura já cancelada: %w", apperror.ErrConflict)
	ErrPaymentNotFound      = fmt.Errorf("pagamento %w", apperror.ErrNotFound)
)

// BillingPeriod é a periodicidade de cobrança do plano
type BillingPeriod string

const (
	PeriodMonthly   BillingPeriod = "monthly"
	PeriodQuarterly BillingPeriod = "quarterly"
	PeriodYearly    BillingPeriod = "yearly"
)

// Months retorna a duração do período em meses
func (p BillingPeriod) Months() int {
	switch p {
	case PeriodQuarterly:
		return 3
	case PeriodYearly:
		return 12
	default:
		return 1
	}
}

// Plan representa um plano de assinatura
type Plan struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	Price         decimal.Decimal
	BillingPeriod BillingPeriod
	MaxUsers      int
	MaxProjects   int
	Features      []string
	Active        bool
	Order         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PeriodEnd calcula o fim do período iniciado em start
func (p *Plan) PeriodEnd(start time.Time) time.Time {
	return start.AddDate(0, p.BillingPeriod.Months(), 0)
}
