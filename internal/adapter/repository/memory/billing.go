package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// defaultPlans espelha os planos inseridos pela migração de cobrança
func defaultPlans() []billing.Plan {
	now := time.Now()
	plan := func(id, name, slug, description, price string, period billing.BillingPeriod, users, projects, order int, features ...string) billing.Plan {
		return billing.Plan{
			ID:            id,
			Name:          name,
			Slug:          slug,
			Description:   description,
			Price:         decimal.RequireFromString(price),
			BillingPeriod: period,
			MaxUsers:      users,
			MaxProjects:   projects,
			Features:      features,
			Active:        true,
			Order:         order,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}
	return []billing.Plan{
		plan("6f1c1e52-6a43-4f44-9a53-3f2b8c0e0a01", "Básico", "basico",
			"Para quem está começando a precificar", "29.90", billing.PeriodMonthly, 1, 50, 1,
			"Cadastro de produtos", "Composições", "Orçamentos"),
		plan("6f1c1e52-6a43-4f44-9a53-3f2b8c0e0a02", "Profissional", "profissional",
			"Equipes pequenas com vários orçamentos", "79.90", billing.PeriodMonthly, 5, 500, 2,
			"Tudo do Básico", "Exportação em planilha", "Suporte prioritário"),
		plan("6f1c1e52-6a43-4f44-9a53-3f2b8c0e0a03", "Profissional Anual", "profissional-anual",
			"Plano profissional com cobrança anual", "799.00", billing.PeriodYearly, 5, 500, 3,
			"Tudo do Profissional", "Dois meses de desconto"),
	}
}

type planRepo struct{ s *Store }

func (r *planRepo) ListActive(ctx context.Context) ([]*billing.Plan, error) {
	var out []*billing.Plan
	_ = r.s.read(func(st *state) error {
		for _, p := range st.plans {
			if p.Active {
				out = append(out, &p)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *billing.Plan) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), a.Price.Cmp(b.Price))
	})
	return out, nil
}

func (r *planRepo) FindByID(ctx context.Context, id string) (*billing.Plan, error) {
	return r.find(func(p billing.Plan) bool { return p.ID == id })
}

func (r *planRepo) FindBySlug(ctx context.Context, slug string) (*billing.Plan, error) {
	return r.find(func(p billing.Plan) bool { return p.Slug == slug })
}

func (r *planRepo) find(match func(p billing.Plan) bool) (*billing.Plan, error) {
	var found *billing.Plan
	_ = r.s.read(func(st *state) error {
		for _, p := range st.plans {
			if match(p) {
				found = &p
				return nil
			}
		}
		return nil
	})
	if found == nil {
		return nil, billing.ErrPlanNotFound
	}
	return found, nil
}

// AddPlan inclui ou substitui um plano
func (s *Store) AddPlan(p billing.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.plans[p.ID] = p
}

type subscriptionRepo struct{ s *Store }

func (r *subscriptionRepo) Create(ctx context.Context, sub *billing.Subscription) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.plans[sub.PlanID]; !ok {
			return billing.ErrPlanNotFound
		}
		st.subscriptions[sub.ID] = *sub
		return nil
	})
}

func (r *subscriptionRepo) FindByID(ctx context.Context, userID, id string) (*billing.Subscription, error) {
	var found *billing.Subscription
	_ = r.s.read(func(st *state) error {
		if sub, ok := st.subscriptions[id]; ok && sub.UserID == userID {
			found = &sub
		}
		return nil
	})
	if found == nil {
		return nil, billing.ErrSubscriptionNotFound
	}
	return found, nil
}

func (r *subscriptionRepo) FindActive(ctx context.Context, userID string) (*billing.Subscription, error) {
	subs, _ := r.ListByUser(ctx, userID)
	for _, sub := range subs {
		if sub.IsActive() {
			return sub, nil
		}
	}
	return nil, billing.ErrSubscriptionNotFound
}

func (r *subscriptionRepo) ListByUser(ctx context.Context, userID string) ([]*billing.Subscription, error) {
	var out []*billing.Subscription
	_ = r.s.read(func(st *state) error {
		for _, sub := range st.subscriptions {
			if sub.UserID == userID {
				out = append(out, &sub)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *billing.Subscription) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *subscriptionRepo) Update(ctx context.Context, sub *billing.Subscription) error {
	return r.s.write(ctx, func(st *state) error {
		current, ok := st.subscriptions[sub.ID]
		if !ok || current.UserID != sub.UserID {
			return billing.ErrSubscriptionNotFound
		}
		st.subscriptions[sub.ID] = *sub
		return nil
	})
}

type paymentRepo struct{ s *Store }

func (r *paymentRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*billing.Payment, error) {
	out := r.byUser(userID)
	slices.SortFunc(out, func(a, b *billing.Payment) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID, b.ID))
	})
	return paginate(out, limit, offset), nil
}

func (r *paymentRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	return len(r.byUser(userID)), nil
}

func (r *paymentRepo) FindByID(ctx context.Context, userID, id string) (*billing.Payment, error) {
	var found *billing.Payment
	_ = r.s.read(func(st *state) error {
		if p, ok := st.payments[id]; ok && p.UserID == userID {
			found = &p
		}
		return nil
	})
	if found == nil {
		return nil, billing.ErrPaymentNotFound
	}
	return found, nil
}

func (r *paymentRepo) byUser(userID string) []*billing.Payment {
	var out []*billing.Payment
	_ = r.s.read(func(st *state) error {
		for _, p := range st.payments {
			if p.UserID == userID {
				out = append(out, &p)
			}
		}
		return nil
	})
	return out
}

// AddPayment registra um pagamento, como faria a integração com o gateway
func (s *Store) AddPayment(p billing.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.payments[p.ID] = p
}
