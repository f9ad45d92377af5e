package route_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/hugohenrick/precificacao-api/docs"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/controller"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/route"
	"github.com/hugohenrick/precificacao-api/internal/adapter/export"
	"github.com/hugohenrick/precificacao-api/internal/adapter/repository/memory"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	"github.com/hugohenrick/precificacao-api/pkg/tenant"
	"github.com/swaggo/swag"
)

const frontendURL = "http://app.local"

type fakeGoogle struct{}

func (fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example/auth?state=" + state
}

func (fakeGoogle) Exchange(ctx context.Context, code string) (*auth.GoogleProfile, error) {
	switch code {
	case "codigo-valido":
		return &auth.GoogleProfile{Subject: "google-1", Email: "carla@exemplo.com", EmailVerified: true, Name: "Carla"}, nil
	case "codigo-nao-verificado":
		return &auth.GoogleProfile{Subject: "google-2", Email: "ana@exemplo.com", Name: "Intrusa"}, nil
	}
	return nil, errors.New("código inválido")
}

type server struct {
	t      *testing.T
	router *gin.Engine
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	log := logger.Nop()
	tokens, err := auth.NewJWTService("segredo-de-teste", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tenants := service.NewTenantService(store, store.Tenants(), log)
	authService := service.NewAuthService(store, store.Users(), tenants, tokens, log)
	catalogService := service.NewCatalogService(store, store.Catalog(), store.Recipes(), store.Quotes(), log)
	recipeService := service.NewRecipeService(store, store.Recipes(), store.Catalog(), log)
	quoteService := service.NewQuoteService(store, store.Quotes(), store.Recipes(), store.Catalog(), export.NewQuoteWorkbook(), log)
	billingService := service.NewBillingService(store, store.Plans(), store.Subscriptions(), store.Payments(), 7, log)

	router := gin.New()
	route.SetupRoutes(router.Group("/api/v1"), route.Controllers{
		Auth:    controller.NewAuthController(authService, fakeGoogle{}, frontendURL, log),
		Tenant:  controller.NewTenantController(tenants, log),
		Product: controller.NewProductController(catalogService, log),
		Recipe:  controller.NewRecipeController(recipeService, log),
		Quote:   controller.NewQuoteController(quoteService, log),
		Billing: controller.NewBillingController(billingService, log),
	}, route.Middlewares{
		Auth:   auth.JWTAuthMiddleware(tokens),
		Tenant: tenant.TenantMiddleware(tenants, auth.UserIDKey),
	})
	return &server{t: t, router: router}
}

func (s *server) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("unexpected error: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// expect verifica o status e decodifica o corpo em out, quando informado
func (s *server) expect(w *httptest.ResponseRecorder, status int, out interface{}) {
	s.t.Helper()
	if w.Code != status {
		s.t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			s.t.Fatalf("invalid json body: %v", err)
		}
	}
}

func (s *server) register(email, company string) dto.AuthResponse {
	s.t.Helper()
	var resp dto.AuthResponse
	s.expect(s.do(http.MethodPost, "/auth/register", "", gin.H{
		"email":        email,
		"password":     "segredo123",
		"name":         "Dono",
		"company_name": company,
	}), http.StatusCreated, &resp)
	return resp
}

func (s *server) product(token, name, kind, cost string) dto.ProductResponse {
	s.t.Helper()
	var resp dto.ProductResponse
	s.expect(s.do(http.MethodPost, "/produtos", token, gin.H{
		"nome":           name,
		"tipo":           kind,
		"unidade_medida": "kg",
		"preco_custo":    cost,
	}), http.StatusCreated, &resp)
	return resp
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	s.expect(s.do(http.MethodGet, "/health", "", nil), http.StatusOK, nil)
}

func TestAuthFlow(t *testing.T) {
	s := newServer(t)

	reg := s.register("ana@exemplo.com", "Padaria da Ana")
	if reg.Empresa == nil || reg.Empresa.NomeFantasia != "Padaria da Ana" {
		t.Fatalf("expected tenant created with the user, got %+v", reg.Empresa)
	}
	if reg.TokenType != "Bearer" || reg.AccessToken == "" || reg.RefreshToken == "" {
		t.Fatalf("unexpected tokens %+v", reg)
	}

	var errResp dto.ErrorResponse
	s.expect(s.do(http.MethodPost, "/auth/register", "", gin.H{
		"email": "ana@exemplo.com", "password": "segredo123", "name": "Outra",
	}), http.StatusConflict, &errResp)

	s.expect(s.do(http.MethodPost, "/auth/login", "", gin.H{
		"email": "ana@exemplo.com", "password": "errada123",
	}), http.StatusUnauthorized, nil)

	var login dto.AuthResponse
	s.expect(s.do(http.MethodPost, "/auth/login", "", gin.H{
		"email": "ANA@exemplo.com", "password": "segredo123",
	}), http.StatusOK, &login)

	// O token de acesso não serve para renovação
	s.expect(s.do(http.MethodPost, "/auth/refresh", "", gin.H{"refresh_token": login.AccessToken}), http.StatusUnauthorized, nil)
	s.expect(s.do(http.MethodPost, "/auth/refresh", "", gin.H{"refresh_token": login.RefreshToken}), http.StatusOK, nil)

	s.expect(s.do(http.MethodGet, "/auth/profile", "", nil), http.StatusUnauthorized, nil)

	var profile dto.UserResponse
	s.expect(s.do(http.MethodPut, "/auth/profile", login.AccessToken, gin.H{
		"name": "Ana Souza", "phone": "11999990000",
	}), http.StatusOK, &profile)
	if profile.Name != "Ana Souza" || profile.Email != "ana@exemplo.com" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestRequestValidation(t *testing.T) {
	s := newServer(t)

	var errResp dto.ErrorResponse
	s.expect(s.do(http.MethodPost, "/auth/register", "", gin.H{"email": "invalido", "password": "123"}), http.StatusBadRequest, &errResp)
	if errResp.Code != http.StatusBadRequest || errResp.Message == "" {
		t.Fatalf("unexpected error body %+v", errResp)
	}

	reg := s.register("ana@exemplo.com", "Padaria")
	errResp = dto.ErrorResponse{}
	s.expect(s.do(http.MethodPost, "/produtos", reg.AccessToken, gin.H{
		"nome": "Farinha", "tipo": "XX", "preco_custo": "-1",
	}), http.StatusBadRequest, &errResp)
	for _, field := range []string{"tipo", "unidade_medida", "preco_custo"} {
		if errResp.Fields[field] == "" {
			t.Fatalf("expected field error on %s, got %v", field, errResp.Fields)
		}
	}
}

func TestUserWithoutTenant(t *testing.T) {
	s := newServer(t)
	reg := s.register("bia@exemplo.com", "")
	if reg.Empresa != nil {
		t.Fatalf("expected no tenant, got %+v", reg.Empresa)
	}

	var list dto.ProductListResponse
	s.expect(s.do(http.MethodGet, "/produtos", reg.AccessToken, nil), http.StatusOK, &list)
	if list.TotalCount != 0 || list.Produtos == nil || len(list.Produtos) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}

	var errResp dto.ErrorResponse
	s.expect(s.do(http.MethodPost, "/produtos", reg.AccessToken, gin.H{
		"nome": "Farinha", "tipo": "MP", "unidade_medida": "kg", "preco_custo": "10",
	}), http.StatusBadRequest, &errResp)
	if errResp.Fields["empresa"] == "" {
		t.Fatalf("expected empresa field error, got %+v", errResp)
	}

	s.expect(s.do(http.MethodGet, "/empresas/me", reg.AccessToken, nil), http.StatusNotFound, nil)

	var company dto.TenantResponse
	s.expect(s.do(http.MethodPost, "/empresas", reg.AccessToken, gin.H{
		"nome_fantasia": "Confeitaria", "cnpj": "12.345.678/0001-90",
	}), http.StatusCreated, &company)
	if company.CNPJ != "12345678000190" {
		t.Fatalf("expected cnpj digits only, got %q", company.CNPJ)
	}
	s.expect(s.do(http.MethodPost, "/empresas", reg.AccessToken, gin.H{"nome_fantasia": "Outra"}), http.StatusConflict, nil)

	s.product(reg.AccessToken, "Farinha", "MP", "10")
}

func TestPricingFlow(t *testing.T) {
	s := newServer(t)
	token := s.register("ana@exemplo.com", "Padaria").AccessToken

	flour := s.product(token, "Farinha", "MP", "10")
	sugar := s.product(token, "Açúcar", "MP", "2.5")
	cake := s.product(token, "Bolo", "PA", "0")
	if flour.PrecoCusto != "10.0000" {
		t.Fatalf("expected cost with 4 places, got %q", flour.PrecoCusto)
	}

	var rec dto.RecipeResponse
	s.expect(s.do(http.MethodPost, "/composicoes", token, gin.H{
		"produto_acabado": cake.ID,
		"descricao":       "Bolo simples",
		"itens": []gin.H{
			{"componente": flour.ID, "quantidade": "2"},
			{"componente": sugar.ID, "quantidade": "2"},
		},
	}), http.StatusCreated, &rec)
	if len(rec.Itens) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(rec.Itens))
	}

	var cost dto.RecipeCostResponse
	s.expect(s.do(http.MethodGet, "/composicoes/"+rec.ID+"/custo", token, nil), http.StatusOK, &cost)
	if cost.CustoUnitario != "25.00" {
		t.Fatalf("expected recipe cost 25.00, got %s", cost.CustoUnitario)
	}

	// Atualização sem itens mantém as linhas
	s.expect(s.do(http.MethodPut, "/composicoes/"+rec.ID, token, gin.H{"descricao": "Bolo da casa"}), http.StatusOK, &rec)
	if len(rec.Itens) != 2 || rec.Descricao != "Bolo da casa" {
		t.Fatalf("expected lines untouched, got %+v", rec)
	}

	var q dto.QuoteResponse
	s.expect(s.do(http.MethodPost, "/orcamentos", token, gin.H{"produto_base": cake.ID, "descricao": "Festa"}), http.StatusCreated, &q)
	if len(q.ItensProduto) != 2 || q.PrecoVendaFinal != "31.25" || q.Status != "draft" {
		t.Fatalf("unexpected seeded quote %+v", q)
	}

	s.expect(s.do(http.MethodPost, "/orcamentos/"+q.ID+"/itens-processo", token, gin.H{
		"descricao": "Forno", "horas": "2.5", "custo_hora": "3.2",
	}), http.StatusCreated, &q)
	if q.CustoTotalProcessos != "8.00" || q.PrecoVendaFinal != "41.25" {
		t.Fatalf("unexpected totals after process %+v", q)
	}

	s.expect(s.do(http.MethodPost, "/orcamentos/"+q.ID+"/itens-despesa", token, gin.H{
		"descricao": "Cartão", "tipo": "percentual", "base_calculo": "custo", "valor": "10",
	}), http.StatusCreated, &q)
	if q.CustoTotalDespesasImpostos != "3.30" || q.CustoTotalProducao != "36.30" || q.PrecoVendaCalculado != "45.38" {
		t.Fatalf("unexpected totals after fee %+v", q)
	}

	var errResp dto.ErrorResponse
	s.expect(s.do(http.MethodPut, "/orcamentos/"+q.ID, token, gin.H{"margem_lucro_percentual": "100"}), http.StatusBadRequest, &errResp)
	if errResp.Fields["margem_lucro_percentual"] == "" {
		t.Fatalf("expected margin field error, got %+v", errResp)
	}

	s.expect(s.do(http.MethodPatch, "/orcamentos/"+q.ID+"/preco-final", token, gin.H{"preco_venda_final": "99.90"}), http.StatusOK, &q)
	if q.PrecoVendaFinal != "99.90" || !q.PrecoVendaFinalManual || q.PrecoVendaCalculado != "45.38" {
		t.Fatalf("unexpected override %+v", q)
	}
	s.expect(s.do(http.MethodPatch, "/orcamentos/"+q.ID+"/preco-final", token, gin.H{"preco_venda_final": nil}), http.StatusOK, &q)
	if q.PrecoVendaFinal != "45.38" || q.PrecoVendaFinalManual {
		t.Fatalf("expected override cleared %+v", q)
	}

	feeID := q.ItensDespesaImposto[0].ID
	s.expect(s.do(http.MethodDelete, "/orcamentos/"+q.ID+"/itens-despesa/"+feeID, token, nil), http.StatusOK, &q)
	if q.PrecoVendaFinal != "41.25" {
		t.Fatalf("expected totals recomputed after removal, got %s", q.PrecoVendaFinal)
	}
	s.expect(s.do(http.MethodDelete, "/orcamentos/"+q.ID+"/itens-despesa/"+feeID, token, nil), http.StatusNotFound, nil)

	w := s.do(http.MethodGet, "/orcamentos/"+q.ID+"/exportar", token, nil)
	s.expect(w, http.StatusOK, nil)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/vnd.openxmlformats") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatal("expected spreadsheet body")
	}

	// Componente usado em composição e orçamento não pode ser removido
	s.expect(s.do(http.MethodDelete, "/produtos/"+flour.ID, token, nil), http.StatusConflict, nil)

	s.expect(s.do(http.MethodPut, "/orcamentos/"+q.ID, token, gin.H{"status": "approved"}), http.StatusOK, &q)
	s.expect(s.do(http.MethodPost, "/orcamentos/"+q.ID+"/itens-processo", token, gin.H{
		"descricao": "Embalagem", "horas": "1", "custo_hora": "1",
	}), http.StatusConflict, nil)

	var list dto.QuoteListResponse
	s.expect(s.do(http.MethodGet, "/orcamentos?status=approved", token, nil), http.StatusOK, &list)
	if list.TotalCount != 1 || len(list.Orcamentos) != 1 {
		t.Fatalf("expected one approved quote, got %d", list.TotalCount)
	}

	s.expect(s.do(http.MethodDelete, "/orcamentos/"+q.ID, token, nil), http.StatusNoContent, nil)
	s.expect(s.do(http.MethodGet, "/orcamentos/"+q.ID, token, nil), http.StatusNotFound, nil)
}

func TestTenantIsolation(t *testing.T) {
	s := newServer(t)
	ana := s.register("ana@exemplo.com", "Padaria").AccessToken
	bia := s.register("bia@exemplo.com", "Confeitaria").AccessToken

	flour := s.product(ana, "Farinha", "MP", "10")

	s.expect(s.do(http.MethodGet, "/produtos/"+flour.ID, bia, nil), http.StatusNotFound, nil)
	s.expect(s.do(http.MethodDelete, "/produtos/"+flour.ID, bia, nil), http.StatusNotFound, nil)

	var list dto.ProductListResponse
	s.expect(s.do(http.MethodGet, "/produtos", bia, nil), http.StatusOK, &list)
	if list.TotalCount != 0 {
		t.Fatalf("expected no products for other tenant, got %d", list.TotalCount)
	}

	cake := s.product(bia, "Bolo", "PA", "0")
	var errResp dto.ErrorResponse
	s.expect(s.do(http.MethodPost, "/composicoes", bia, gin.H{
		"produto_acabado": cake.ID,
		"itens":           []gin.H{{"componente": flour.ID, "quantidade": "1"}},
	}), http.StatusBadRequest, &errResp)
	if errResp.Fields["itens[0].componente"] == "" {
		t.Fatalf("expected foreign component rejected, got %+v", errResp)
	}
}

func TestBillingRoutes(t *testing.T) {
	s := newServer(t)

	var plans []dto.PlanResponse
	s.expect(s.do(http.MethodGet, "/planos", "", nil), http.StatusOK, &plans)
	if len(plans) != 3 || plans[0].Slug != "basico" || plans[0].Price != "29.90" {
		t.Fatalf("unexpected plans %+v", plans)
	}
	s.expect(s.do(http.MethodGet, "/planos/inexistente", "", nil), http.StatusNotFound, nil)

	token := s.register("ana@exemplo.com", "").AccessToken
	s.expect(s.do(http.MethodGet, "/assinaturas/ativa", token, nil), http.StatusNotFound, nil)

	var sub dto.SubscriptionResponse
	s.expect(s.do(http.MethodPost, "/assinaturas", token, gin.H{"plan_id": plans[0].ID}), http.StatusCreated, &sub)
	if sub.Status != "trialing" || !sub.IsActive || sub.PriceAtSubscription != "29.90" {
		t.Fatalf("unexpected subscription %+v", sub)
	}
	s.expect(s.do(http.MethodPost, "/assinaturas", token, gin.H{"plan_id": plans[1].ID}), http.StatusConflict, nil)
	s.expect(s.do(http.MethodGet, "/assinaturas/ativa", token, nil), http.StatusOK, nil)

	s.expect(s.do(http.MethodPost, "/assinaturas/"+sub.ID+"/cancelar", token, nil), http.StatusOK, &sub)
	if sub.Status != "canceled" || sub.AutoRenew {
		t.Fatalf("unexpected canceled subscription %+v", sub)
	}
	s.expect(s.do(http.MethodGet, "/assinaturas/ativa", token, nil), http.StatusNotFound, nil)

	var payments dto.PaymentListResponse
	s.expect(s.do(http.MethodGet, "/pagamentos", token, nil), http.StatusOK, &payments)
	if payments.TotalCount != 0 || payments.TotalPages != 1 {
		t.Fatalf("unexpected payments page %+v", payments)
	}
	s.expect(s.do(http.MethodGet, "/pagamentos", "", nil), http.StatusUnauthorized, nil)
}

func TestGoogleLogin(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/auth/google/login", "", nil)
	s.expect(w, http.StatusTemporaryRedirect, nil)
	var state string
	for _, c := range w.Result().Cookies() {
		if c.Name == "oauth_state" {
			state = c.Value
		}
	}
	if state == "" || !strings.Contains(w.Header().Get("Location"), "state="+state) {
		t.Fatalf("expected state cookie matching redirect, got %q / %q", state, w.Header().Get("Location"))
	}

	callback := func(cookie, queryState, code string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state="+queryState+"&code="+code, nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "oauth_state", Value: cookie})
		}
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		return rec
	}

	failure := frontendURL + "/login?error=authentication_failed"
	if loc := callback(state, "outro", "codigo-valido").Header().Get("Location"); loc != failure {
		t.Fatalf("expected failure redirect on state mismatch, got %q", loc)
	}
	if loc := callback(state, state, "codigo-errado").Header().Get("Location"); loc != failure {
		t.Fatalf("expected failure redirect on exchange error, got %q", loc)
	}

	s.register("ana@exemplo.com", "Padaria")
	if loc := callback(state, state, "codigo-nao-verificado").Header().Get("Location"); loc != failure {
		t.Fatalf("expected failure redirect for unverified email, got %q", loc)
	}

	ok := callback(state, state, "codigo-valido")
	s.expect(ok, http.StatusTemporaryRedirect, nil)
	loc := ok.Header().Get("Location")
	if !strings.HasPrefix(loc, frontendURL+"/auth/callback?") || !strings.Contains(loc, "access=") {
		t.Fatalf("unexpected success redirect %q", loc)
	}
}

func TestMalformedIdentifiers(t *testing.T) {
	s := newServer(t)
	token := s.register("ana@exemplo.com", "Padaria").AccessToken

	for _, path := range []string{
		"/produtos/abc",
		"/composicoes/abc",
		"/composicoes/abc/custo",
		"/orcamentos/abc",
		"/orcamentos/abc/exportar",
		"/pagamentos/abc",
	} {
		var errResp dto.ErrorResponse
		s.expect(s.do(http.MethodGet, path, token, nil), http.StatusBadRequest, &errResp)
		if errResp.Message != "ID inválido" {
			t.Fatalf("%s: unexpected error body %+v", path, errResp)
		}
	}

	cake := s.product(token, "Bolo", "PA", "0")
	var q dto.QuoteResponse
	s.expect(s.do(http.MethodPost, "/orcamentos", token, gin.H{"produto_base": cake.ID}), http.StatusCreated, &q)
	s.expect(s.do(http.MethodDelete, "/orcamentos/"+q.ID+"/itens-processo/abc", token, nil), http.StatusBadRequest, nil)

	var errResp dto.ErrorResponse
	s.expect(s.do(http.MethodPost, "/orcamentos", token, gin.H{"produto_base": "x"}), http.StatusBadRequest, &errResp)
	if errResp.Fields["produto_base"] == "" {
		t.Fatalf("expected produto_base field error, got %+v", errResp)
	}

	errResp = dto.ErrorResponse{}
	s.expect(s.do(http.MethodPost, "/orcamentos/"+q.ID+"/itens-produto", token, gin.H{
		"componente": "x", "quantidade": "1",
	}), http.StatusBadRequest, &errResp)
	if errResp.Fields["componente"] == "" {
		t.Fatalf("expected componente field error, got %+v", errResp)
	}
}

func TestRoutesAreDocumented(t *testing.T) {
	s := newServer(t)

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("invalid swagger document: %v", err)
	}

	for _, r := range s.router.Routes() {
		path := strings.TrimPrefix(r.Path, "/api/v1")
		if path == "/health" {
			continue
		}
		segments := strings.Split(path, "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path = strings.Join(segments, "/")
		if _, ok := doc.Paths[path][strings.ToLower(r.Method)]; !ok {
			t.Fatalf("route %s %s missing from swagger document", r.Method, path)
		}
	}
}
