package service_test

import (
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/service"
)

func newQuote(t *testing.T, e *env, b bakery, useRecipe bool) *quote.Quote {
	t.Helper()
	in := service.CreateQuoteInput{UseRecipe: useRecipe}
	in.ProductID = b.cake.ID
	in.Description = "Encomenda"
	q, err := e.quotes.Create(e.ctx, b.tenantID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return q
}

func TestQuoteCreateSeedsFromRecipe(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	b.recipe(t, e)

	q := newQuote(t, e, b, true)
	if q.Status != quote.StatusDraft || len(q.Materials) != 2 {
		t.Fatalf("unexpected quote %+v", q)
	}
	if q.Materials[0].Description != "Farinha" {
		t.Fatalf("expected component name as description, got %s", q.Materials[0].Description)
	}
	assertDecimal(t, "materials", q.Totals.Materials, "25")
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "31.25")
	assertDecimal(t, "final", q.Totals.FinalPrice, "31.25")

	stored, err := e.quotes.Get(e.ctx, b.tenantID, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "stored line total", stored.Materials[0].Total, "20")

	// As linhas são cópias: mudar o custo no catálogo não altera o orçamento
	if _, err := e.catalog.Update(e.ctx, b.tenantID, b.flour.ID, catalog.ItemInput{
		Name: "Farinha", Kind: catalog.KindRawMaterial, Unit: "kg", UnitCost: dec("50"), Active: true,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recalculated, err := e.quotes.Recalculate(e.ctx, b.tenantID, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "computed after catalog change", recalculated.Totals.ComputedPrice, "31.25")

	empty := newQuote(t, e, b, false)
	if len(empty.Materials) != 0 || !empty.Totals.ComputedPrice.IsZero() {
		t.Fatalf("expected empty quote without recipe seeding")
	}
}

func TestQuoteLineMutationsRecompute(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	b.recipe(t, e)
	q := newQuote(t, e, b, true)

	q, err := e.quotes.AddProcess(e.ctx, b.tenantID, q.ID, quote.ProcessInput{
		Description: "Forno", Hours: dec("2.5"), HourlyRate: dec("3.2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "process line", q.Processes[0].Total, "8")
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "41.25")

	q, err = e.quotes.AddFee(e.ctx, b.tenantID, q.ID, quote.FeeInput{
		Description: "Comissão", Kind: quote.FeePercentage, Base: quote.BaseCost, Value: dec("10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "fees", q.Totals.Fees, "3.3")
	assertDecimal(t, "production", q.Totals.ProductionCost, "36.3")
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "45.38")

	stored, _ := e.quotes.Get(e.ctx, b.tenantID, q.ID)
	assertDecimal(t, "stored computed", stored.Totals.ComputedPrice, "45.38")
	assertDecimal(t, "stored fee line", stored.Fees[0].Total, "3.3")

	feeID := q.Fees[0].ID
	q, err = e.quotes.RemoveFee(e.ctx, b.tenantID, q.ID, feeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "computed after removal", q.Totals.ComputedPrice, "41.25")

	_, err = e.quotes.RemoveFee(e.ctx, b.tenantID, q.ID, feeID)
	assertIs(t, err, apperror.ErrNotFound)

	q, err = e.quotes.UpdateMaterial(e.ctx, b.tenantID, q.ID, q.Materials[0].ID, service.MaterialInput{
		ComponentID: b.flour.ID, Quantity: dec("1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 × 10 + 2 × 2,5 + 8 = 23
	assertDecimal(t, "production after material update", q.Totals.ProductionCost, "23")
}

func TestQuoteAddMaterialDefaultsFromCatalog(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	q := newQuote(t, e, b, false)

	q, err := e.quotes.AddMaterial(e.ctx, b.tenantID, q.ID, service.MaterialInput{
		ComponentID: b.egg.ID, Quantity: dec("12"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := q.Materials[0]
	if line.Description != "Ovo" {
		t.Fatalf("expected catalog name, got %s", line.Description)
	}
	assertDecimal(t, "unit cost", line.UnitCost, "0.8")
	assertDecimal(t, "line total", line.Total, "9.6")

	q, err = e.quotes.AddMaterial(e.ctx, b.tenantID, q.ID, service.MaterialInput{
		ComponentID: b.sugar.ID, Description: "Açúcar refinado", Quantity: dec("1"), UnitCost: decPtr("3"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "manual unit cost", q.Materials[1].UnitCost, "3")

	_, otherTenant := e.owner(t, "bia@exemplo.com", "Confeitaria")
	foreign := e.item(t, otherTenant, "Chocolate", catalog.KindRawMaterial, "30")
	_, err = e.quotes.AddMaterial(e.ctx, b.tenantID, q.ID, service.MaterialInput{ComponentID: foreign.ID, Quantity: dec("1")})
	assertField(t, err, "componente")
}

func TestQuoteFinalPriceOverride(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	b.recipe(t, e)
	q := newQuote(t, e, b, true)

	q, err := e.quotes.SetFinalPrice(e.ctx, b.tenantID, q.ID, decPtr("99.90"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.FinalPriceManual {
		t.Fatalf("expected manual flag")
	}

	q, err = e.quotes.AddProcess(e.ctx, b.tenantID, q.ID, quote.ProcessInput{
		Description: "Decoração", Hours: dec("1"), HourlyRate: dec("30"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "68.75")
	assertDecimal(t, "final", q.Totals.FinalPrice, "99.9")

	stored, _ := e.quotes.Get(e.ctx, b.tenantID, q.ID)
	assertDecimal(t, "stored final", stored.Totals.FinalPrice, "99.9")

	q, err = e.quotes.SetFinalPrice(e.ctx, b.tenantID, q.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.FinalPriceManual {
		t.Fatalf("expected manual flag cleared")
	}
	assertDecimal(t, "final follows computed", q.Totals.FinalPrice, "68.75")
}

func TestQuoteMarginGuard(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	b.recipe(t, e)
	q := newQuote(t, e, b, true)

	for _, m := range []string{"100", "150", "-1"} {
		_, err := e.quotes.Update(e.ctx, b.tenantID, q.ID, quote.HeaderInput{Margin: decPtr(m)})
		assertField(t, err, "margem_lucro_percentual")
	}

	stored, _ := e.quotes.Get(e.ctx, b.tenantID, q.ID)
	assertDecimal(t, "margin", stored.Margin, "20")
	assertDecimal(t, "computed", stored.Totals.ComputedPrice, "31.25")

	q, err := e.quotes.Update(e.ctx, b.tenantID, q.ID, quote.HeaderInput{Margin: decPtr("50")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "computed with 50%", q.Totals.ComputedPrice, "50")
}

func TestQuoteApprovedIsLocked(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	b.recipe(t, e)
	q := newQuote(t, e, b, true)

	approved := quote.StatusApproved
	if _, err := e.quotes.Update(e.ctx, b.tenantID, q.ID, quote.HeaderInput{Status: &approved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := e.quotes.AddFee(e.ctx, b.tenantID, q.ID, quote.FeeInput{Description: "Frete", Kind: quote.FeeFixed, Value: dec("10")})
	assertIs(t, err, quote.ErrQuoteApproved)
	_, err = e.quotes.AddMaterial(e.ctx, b.tenantID, q.ID, service.MaterialInput{ComponentID: b.egg.ID, Quantity: dec("1")})
	assertIs(t, err, quote.ErrQuoteApproved)
	_, err = e.quotes.Update(e.ctx, b.tenantID, q.ID, quote.HeaderInput{Margin: decPtr("30")})
	assertIs(t, err, apperror.ErrConflict)
	_, err = e.quotes.SetFinalPrice(e.ctx, b.tenantID, q.ID, decPtr("10"))
	assertIs(t, err, apperror.ErrConflict)

	draft := quote.StatusDraft
	q, err = e.quotes.Update(e.ctx, b.tenantID, q.ID, quote.HeaderInput{Status: &draft})
	if err != nil {
		t.Fatalf("status change must be accepted: %v", err)
	}
	if _, err := e.quotes.AddFee(e.ctx, b.tenantID, q.ID, quote.FeeInput{Description: "Frete", Kind: quote.FeeFixed, Value: dec("10")}); err != nil {
		t.Fatalf("draft quote must accept lines: %v", err)
	}
}

func TestQuoteListDeleteAndIsolation(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	first := newQuote(t, e, b, false)
	newQuote(t, e, b, false)

	sent := quote.StatusSent
	if _, err := e.quotes.Update(e.ctx, b.tenantID, first.ID, quote.HeaderInput{Status: &sent}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, total, err := e.quotes.List(e.ctx, b.tenantID, quote.Filter{}, service.Page{Limit: 10})
	if err != nil || total != 2 || len(all) != 2 {
		t.Fatalf("unexpected list: %d %d %v", total, len(all), err)
	}
	onlySent, total, _ := e.quotes.List(e.ctx, b.tenantID, quote.Filter{Status: quote.StatusSent}, service.Page{})
	if total != 1 || onlySent[0].ID != first.ID {
		t.Fatalf("expected only the sent quote")
	}

	none, total, _ := e.quotes.List(e.ctx, "", quote.Filter{}, service.Page{})
	if len(none) != 0 || total != 0 {
		t.Fatalf("expected empty list without tenant")
	}

	_, otherTenant := e.owner(t, "bia@exemplo.com", "Confeitaria")
	_, err = e.quotes.Get(e.ctx, otherTenant, first.ID)
	assertIs(t, err, apperror.ErrNotFound)
	_, err = e.quotes.Recalculate(e.ctx, otherTenant, first.ID)
	assertIs(t, err, apperror.ErrNotFound)

	if err := e.quotes.Delete(e.ctx, b.tenantID, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = e.quotes.Get(e.ctx, b.tenantID, first.ID)
	assertIs(t, err, apperror.ErrNotFound)
}

func TestQuoteExport(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	q := newQuote(t, e, b, false)

	got, data, err := e.quotes.Export(e.ctx, b.tenantID, q.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != q.ID || string(data) != "Bolo" || e.exporter.got.ID != q.ID {
		t.Fatalf("unexpected export result %q", data)
	}

	_, _, err = e.quotes.Export(e.ctx, "", q.ID)
	assertIs(t, err, apperror.ErrTenantRequired)
}
