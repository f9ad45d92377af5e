// Package memory implementa os repositórios em memória. É usado com
// STORAGE=memory e nos testes, com as mesmas restrições de unicidade e de
// integridade referencial do esquema PostgreSQL e com rollback transacional.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/hugohenrick/precificacao-api/internal/domain/billing"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
)

type txKey struct{}

type state struct {
	users         map[string]user.User
	tenants       map[string]tenant.Tenant
	items         map[string]catalog.Item
	recipes       map[string]recipe.Recipe
	recipeLines   map[string][]recipe.Line // por composição
	quotes        map[string]quote.Quote
	materials     map[string][]quote.MaterialLine // por orçamento
	processes     map[string][]quote.ProcessLine
	fees          map[string][]quote.FeeLine
	plans         map[string]billing.Plan
	subscriptions map[string]billing.Subscription
	payments      map[string]billing.Payment
}

func newState() state {
	return state{
		users:         map[string]user.User{},
		tenants:       map[string]tenant.Tenant{},
		items:         map[string]catalog.Item{},
		recipes:       map[string]recipe.Recipe{},
		recipeLines:   map[string][]recipe.Line{},
		quotes:        map[string]quote.Quote{},
		materials:     map[string][]quote.MaterialLine{},
		processes:     map[string][]quote.ProcessLine{},
		fees:          map[string][]quote.FeeLine{},
		plans:         map[string]billing.Plan{},
		subscriptions: map[string]billing.Subscription{},
		payments:      map[string]billing.Payment{},
	}
}

func (s state) clone() state {
	return state{
		users:         maps.Clone(s.users),
		tenants:       maps.Clone(s.tenants),
		items:         maps.Clone(s.items),
		recipes:       maps.Clone(s.recipes),
		recipeLines:   cloneLines(s.recipeLines),
		quotes:        maps.Clone(s.quotes),
		materials:     cloneLines(s.materials),
		processes:     cloneLines(s.processes),
		fees:          cloneLines(s.fees),
		plans:         maps.Clone(s.plans),
		subscriptions: maps.Clone(s.subscriptions),
		payments:      maps.Clone(s.payments),
	}
}

func cloneLines[T any](m map[string][]T) map[string][]T {
	out := make(map[string][]T, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// Store guarda todo o estado em memória. Transações são serializadas por
// txMu; escritas fora de transação também a adquirem para não serem
// desfeitas pelo rollback de outra requisição.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	st   state
}

// NewStore cria um Store vazio com os planos padrão
func NewStore() *Store {
	s := &Store{st: newState()}
	for _, p := range defaultPlans() {
		s.st.plans[p.ID] = p
	}
	return s
}

// Transaction executa fn atomicamente. Se fn falhar, todo o estado alterado
// dentro dela é descartado.
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.st)
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.st)
}

// Repositórios expostos pelo Store

func (s *Store) Users() user.Repository { return &userRepo{s} }
func (s *Store) Tenants() tenant.Repository { return &tenantRepo{s} }
func (s *Store) Catalog() catalog.Repository { return &catalogRepo{s} }
func (s *Store) Recipes() recipe.Repository { return &recipeRepo{s} }
func (s *Store) Quotes() quote.Repository { return &quoteRepo{s} }
func (s *Store) Plans() billing.PlanRepository { return &planRepo{s} }
func (s *Store) Subscriptions() billing.SubscriptionRepository { return &subscriptionRepo{s} }
func (s *Store) Payments() billing.PaymentRepository { return &paymentRepo{s} }

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
