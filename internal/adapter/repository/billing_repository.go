package repository

import (
	"context"

	"github.com/hugohenrick/precificacao-api/internal/domain/billing"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

const planColumns = `id, name, slug, description, price, billing_period, max_users, max_projects,
	features, is_active, display_order, created_at, updated_at`

const subscriptionColumns = `id, user_id, plan_id, status, start_date, current_period_start,
	current_period_end, trial_end, canceled_at, price_at_subscription, auto_renew, created_at, updated_at`

const paymentColumns = `id, user_id, subscription_id, amount, currency, status, gateway,
	gateway_payment_id, payment_method, paid_at, failed_at, failure_message, created_at`

// PlanRepository implementa a interface billing.PlanRepository
type PlanRepository struct {
	db *database.PostgresDB
}

// NewPlanRepository cria uma nova instância de PlanRepository
func NewPlanRepository(db *database.PostgresDB) billing.PlanRepository {
	return &PlanRepository{db: db}
}

// ListActive implementa billing.PlanRepository.ListActive
func (r *PlanRepository) ListActive(ctx context.Context) ([]*billing.Plan, error) {
	rows, err := r.db.Querier(ctx).Query(ctx,
		`SELECT `+planColumns+` FROM planos WHERE is_active ORDER BY display_order ASC, price ASC`)
	if err != nil {
		return nil, translateError(err, "listar planos", nil)
	}
	defer rows.Close()

	plans := []*billing.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, translateError(err, "ler plano", nil)
		}
		plans = append(plans, p)
	}
	return plans, translateError(rows.Err(), "listar planos", nil)
}

// FindByID implementa billing.PlanRepository.FindByID
func (r *PlanRepository) FindByID(ctx context.Context, id string) (*billing.Plan, error) {
	p, err := scanPlan(r.db.Querier(ctx).QueryRow(ctx, `SELECT `+planColumns+` FROM planos WHERE id = $1`, id))
	if err != nil {
		return nil, translateError(err, "buscar plano", billing.ErrPlanNotFound)
	}
	return p, nil
}

// FindBySlug implementa billing.PlanRepository.FindBySlug
func (r *PlanRepository) FindBySlug(ctx context.Context, slug string) (*billing.Plan, error) {
	p, err := scanPlan(r.db.Querier(ctx).QueryRow(ctx, `SELECT `+planColumns+` FROM planos WHERE slug = $1`, slug))
	if err != nil {
		return nil, translateError(err, "buscar plano", billing.ErrPlanNotFound)
	}
	return p, nil
}

func scanPlan(row pgx.Row) (*billing.Plan, error) {
	var p billing.Plan
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.BillingPeriod,
		&p.MaxUsers, &p.MaxProjects, &p.Features, &p.Active, &p.Order, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return &p, nil
}

// SubscriptionRepository implementa a interface billing.SubscriptionRepository
type SubscriptionRepository struct {
	db *database.PostgresDB
}

// NewSubscriptionRepository cria uma nova instância de SubscriptionRepository
func NewSubscriptionRepository(db *database.PostgresDB) billing.SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create implementa billing.SubscriptionRepository.Create
func (r *SubscriptionRepository) Create(ctx context.Context, s *billing.Subscription) error {
	_, err := r.db.Querier(ctx).Exec(ctx,
		`INSERT INTO assinaturas (`+subscriptionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		s.ID, s.UserID, s.PlanID, s.Status, s.StartDate, s.CurrentPeriodStart,
		s.CurrentPeriodEnd, s.TrialEnd, s.CanceledAt, s.PriceAtSubscription, s.AutoRenew,
		s.CreatedAt, s.UpdatedAt)
	return translateError(err, "criar assinatura", nil)
}

// FindByID implementa billing.SubscriptionRepository.FindByID
func (r *SubscriptionRepository) FindByID(ctx context.Context, userID, id string) (*billing.Subscription, error) {
	s, err := scanSubscription(r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+subscriptionColumns+` FROM assinaturas WHERE user_id = $1 AND id = $2`, userID, id))
	if err != nil {
		return nil, translateError(err, "buscar assinatura", billing.ErrSubscriptionNotFound)
	}
	return s, nil
}

// FindActive implementa billing.SubscriptionRepository.FindActive
func (r *SubscriptionRepository) FindActive(ctx context.Context, userID string) (*billing.Subscription, error) {
	s, err := scanSubscription(r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+subscriptionColumns+` FROM assinaturas
		WHERE user_id = $1 AND status IN ('trialing', 'active')
		ORDER BY created_at DESC
		LIMIT 1`, userID))
	if err != nil {
		return nil, translateError(err, "buscar assinatura ativa", billing.ErrSubscriptionNotFound)
	}
	return s, nil
}

// ListByUser implementa billing.SubscriptionRepository.ListByUser
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*billing.Subscription, error) {
	rows, err := r.db.Querier(ctx).Query(ctx,
		`SELECT `+subscriptionColumns+` FROM assinaturas WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, translateError(err, "listar assinaturas", nil)
	}
	defer rows.Close()

	subs := []*billing.Subscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, translateError(err, "ler assinatura", nil)
		}
		subs = append(subs, s)
	}
	return subs, translateError(rows.Err(), "listar assinaturas", nil)
}

// Update implementa billing.SubscriptionRepository.Update
func (r *SubscriptionRepository) Update(ctx context.Context, s *billing.Subscription) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE assinaturas SET
			status = $3, current_period_start = $4, current_period_end = $5, trial_end = $6,
			canceled_at = $7, auto_renew = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2`,
		s.UserID, s.ID, s.Status, s.CurrentPeriodStart, s.CurrentPeriodEnd, s.TrialEnd,
		s.CanceledAt, s.AutoRenew, s.UpdatedAt)
	if err != nil {
		return translateError(err, "atualizar assinatura", nil)
	}
	return expectAffected(tag, billing.ErrSubscriptionNotFound)
}

func scanSubscription(row pgx.Row) (*billing.Subscription, error) {
	var s billing.Subscription
	err := row.Scan(&s.ID, &s.UserID, &s.PlanID, &s.Status, &s.StartDate, &s.CurrentPeriodStart,
		&s.CurrentPeriodEnd, &s.TrialEnd, &s.CanceledAt, &s.PriceAtSubscription, &s.AutoRenew,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// PaymentRepository implementa a interface billing.PaymentRepository
type PaymentRepository struct {
	db *database.PostgresDB
}

// NewPaymentRepository cria uma nova instância de PaymentRepository
func NewPaymentRepository(db *database.PostgresDB) billing.PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListByUser implementa billing.PaymentRepository.ListByUser
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*billing.Payment, error) {
	rows, err := r.db.Querier(ctx).Query(ctx,
		`SELECT `+paymentColumns+` FROM pagamentos
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT NULLIF($2, 0) OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, translateError(err, "listar pagamentos", nil)
	}
	defer rows.Close()

	payments := []*billing.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, translateError(err, "ler pagamento", nil)
		}
		payments = append(payments, p)
	}
	return payments, translateError(rows.Err(), "listar pagamentos", nil)
}

// CountByUser implementa billing.PaymentRepository.CountByUser
func (r *PaymentRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM pagamentos WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, translateError(err, "contar pagamentos", nil)
	}
	return count, nil
}

// FindByID implementa billing.PaymentRepository.FindByID
func (r *PaymentRepository) FindByID(ctx context.Context, userID, id string) (*billing.Payment, error) {
	p, err := scanPayment(r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM pagamentos WHERE user_id = $1 AND id = $2`, userID, id))
	if err != nil {
		return nil, translateError(err, "buscar pagamento", billing.ErrPaymentNotFound)
	}
	return p, nil
}

func scanPayment(row pgx.Row) (*billing.Payment, error) {
	var p billing.Payment
	var subscriptionID *string
	err := row.Scan(&p.ID, &p.UserID, &subscriptionID, &p.Amount, &p.Currency, &p.Status, &p.Gateway,
		&p.GatewayPaymentID, &p.PaymentMethod, &p.PaidAt, &p.FailedAt, &p.FailureMessage, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if subscriptionID != nil {
		p.SubscriptionID = *subscriptionID
	}
	return &p, nil
}
