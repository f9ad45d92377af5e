package dto

import (
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/billing"
)

// SubscribeRequest representa a assinatura de um plano
type SubscribeRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// PlanResponse representa um plano de assinatura
type PlanResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	BillingPeriod string   `json:"billing_period"`
	MaxUsers      int      `json:"max_users"`
	MaxProjects   int      `json:"max_projects"`
	Features      []string `json:"features"`
	IsActive      bool     `json:"is_active"`
	Order         int      `json:"order"`
}

// SubscriptionResponse representa uma assinatura do usuário
type SubscriptionResponse struct {
	ID                  string     `json:"id"`
	User                string     `json:"user"`
	Plan                string     `json:"plan"`
	Status              string     `json:"status"`
	StartDate           time.Time  `json:"start_date"`
	CurrentPeriodStart  *time.Time `json:"current_period_start"`
	CurrentPeriodEnd    *time.Time `json:"current_period_end"`
	TrialEnd            *time.Time `json:"trial_end"`
	CanceledAt          *time.Time `json:"canceled_at,omitempty"`
	PriceAtSubscription string     `json:"price_at_subscription"`
	AutoRenew           bool       `json:"auto_renew"`
	IsActive            bool       `json:"is_active"`
}

// PaymentResponse representa um pagamento do histórico
type PaymentResponse struct {
	ID            string     `json:"id"`
	User          string     `json:"user"`
	Subscription  string     `json:"subscription,omitempty"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	Gateway       string     `json:"gateway"`
	PaymentMethod string     `json:"payment_method"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PaymentListResponse representa a resposta de listagem de pagamentos
type PaymentListResponse struct {
	Pagamentos []PaymentResponse `json:"pagamentos"`
	PageInfo
}

// ToPlanResponse converte um plano para a resposta
func ToPlanResponse(p *billing.Plan) PlanResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PlanResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         money(p.Price),
		BillingPeriod: string(p.BillingPeriod),
		MaxUsers:      p.MaxUsers,
		MaxProjects:   p.MaxProjects,
		Features:      features,
		IsActive:      p.Active,
		Order:         p.Order,
	}
}

// ToPlanListResponse converte a lista de planos
func ToPlanListResponse(plans []*billing.Plan) []PlanResponse {
	out := make([]PlanResponse, len(plans))
	for i, p := range plans {
		out[i] = ToPlanResponse(p)
	}
	return out
}

// ToSubscriptionResponse converte uma assinatura para a resposta
func ToSubscriptionResponse(s *billing.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                  s.ID,
		User:                s.UserID,
		Plan:                s.PlanID,
		Status:              string(s.Status),
		StartDate:           s.StartDate,
		CurrentPeriodStart:  s.CurrentPeriodStart,
		CurrentPeriodEnd:    s.CurrentPeriodEnd,
		TrialEnd:            s.TrialEnd,
		CanceledAt:          s.CanceledAt,
		PriceAtSubscription: money(s.PriceAtSubscription),
		AutoRenew:           s.AutoRenew,
		IsActive:            s.IsActive(),
	}
}

// ToSubscriptionListResponse converte a lista de assinaturas
func ToSubscriptionListResponse(subs []*billing.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		out[i] = ToSubscriptionResponse(s)
	}
	return out
}

// ToPaymentResponse converte um pagamento para a resposta
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		User:          p.UserID,
		Subscription:  p.SubscriptionID,
		Amount:        money(p.Amount),
		Currency:      p.Currency,
		Status:        string(p.Status),
		Gateway:       p.Gateway,
		PaymentMethod: p.PaymentMethod,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentListResponse converte uma página de pagamentos
func ToPaymentListResponse(payments []*billing.Payment, totalCount int, p PaginationParams) PaymentListResponse {
	response := PaymentListResponse{
		Pagamentos: make([]PaymentResponse, len(payments)),
		PageInfo:   NewPageInfo(totalCount, p),
	}
	for i, pay := range payments {
		response.Pagamentos[i] = ToPaymentResponse(pay)
	}
	return response
}
