package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/precificacao-api/internal/adapter/repository/memory"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	"github.com/shopspring/decimal"
)

type stubExporter struct {
	got *quote.Quote
}

func (e *stubExporter) Quote(q *quote.Quote, product *catalog.Item) ([]byte, error) {
	e.got = q
	return []byte(product.Name), nil
}

type env struct {
	ctx      context.Context
	store    *memory.Store
	tokens   *auth.JWTService
	exporter *stubExporter
	tenants  *service.TenantService
	auth     *service.AuthService
	catalog  *service.CatalogService
	recipes  *service.RecipeService
	quotes   *service.QuoteService
	billing  *service.BillingService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()
	tokens, err := auth.NewJWTService("segredo-de-teste", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := &env{ctx: context.Background(), store: store, tokens: tokens, exporter: &stubExporter{}}
	e.tenants = service.NewTenantService(store, store.Tenants(), log)
	e.auth = service.NewAuthService(store, store.Users(), e.tenants, tokens, log)
	e.catalog = service.NewCatalogService(store, store.Catalog(), store.Recipes(), store.Quotes(), log)
	e.recipes = service.NewRecipeService(store, store.Recipes(), store.Catalog(), log)
	e.quotes = service.NewQuoteService(store, store.Quotes(), store.Recipes(), store.Catalog(), e.exporter, log)
	e.billing = service.NewBillingService(store, store.Plans(), store.Subscriptions(), store.Payments(), 7, log)
	return e
}

// owner cria um usuário com empresa e retorna os IDs
func (e *env) owner(t *testing.T, email, company string) (userID, tenantID string) {
	t.Helper()
	u, err := user.NewUser(email, user.Profile{Name: "Dono"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.store.Users().Create(e.ctx, u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tn, err := e.tenants.Create(e.ctx, u.ID, tenant.Input{TradeName: company})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return u.ID, tn.ID
}

func (e *env) item(t *testing.T, tenantID, name string, kind catalog.Kind, cost string) *catalog.Item {
	t.Helper()
	item, err := e.catalog.Create(e.ctx, tenantID, catalog.ItemInput{
		Name:     name,
		Kind:     kind,
		Unit:     "un",
		UnitCost: decimal.RequireFromString(cost),
		Active:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error creating %s: %v", name, err)
	}
	return item
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s: expected %s, got %s", name, want, got.String())
	}
}

func assertField(t *testing.T, err error, field string) {
	t.Helper()
	verr, ok := apperror.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error on %s, got %v", field, err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Fatalf("expected field %s, got %v", field, verr.Fields)
	}
}

func assertIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}
