package quote

import (
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(d(want)) {
		t.Fatalf("%s: expected %s, got %s", name, want, got.String())
	}
}

func seededQuote(t *testing.T, margin string) *Quote {
	t.Helper()
	rec := &recipe.Recipe{
		ID:        "r1",
		ProductID: "pa",
		FixedCost: d("5.00"),
		Lines:     []recipe.Line{{ID: "l1", ComponentID: "mp1", Quantity: d("2")}},
	}
	components := map[string]*catalog.Item{
		"mp1": {ID: "mp1", Name: "Farinha", UnitCost: d("10.00")},
	}
	q, err := New("tenant", NewInput{ProductID: "pa", Margin: dp(margin)}, rec, components)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return q
}

func TestRollupEndToEnd(t *testing.T) {
	q := seededQuote(t, "20")

	if len(q.Materials) != 1 || q.Materials[0].Description != "Farinha" {
		t.Fatalf("expected recipe lines to be copied, got %+v", q.Materials)
	}
	assertDecimal(t, "fixed cost", q.FixedCost, "5")
	assertDecimal(t, "materials", q.Totals.Materials, "20.00")
	assertDecimal(t, "fees", q.Totals.Fees, "0")
	assertDecimal(t, "production", q.Totals.ProductionCost, "25.00")
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "31.25")
	assertDecimal(t, "final", q.Totals.FinalPrice, "31.25")
}

func TestRollupLineTotals(t *testing.T) {
	q := &Quote{Margin: d("0"), Status: StatusDraft}
	if _, err := q.AddMaterial(MaterialInput{ComponentID: "mp", Description: "Tecido", Quantity: d("2.5"), UnitCost: d("3.2")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := q.AddProcess(ProcessInput{Description: "Corte", Hours: d("1.5"), HourlyRate: d("40")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Rollup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "material line", q.Materials[0].Total, "8.00")
	assertDecimal(t, "process line", q.Processes[0].Total, "60.00")
	assertDecimal(t, "materials", q.Totals.Materials, "8.00")
	assertDecimal(t, "processes", q.Totals.Processes, "60.00")
	assertDecimal(t, "production", q.Totals.ProductionCost, "68.00")
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "68.00")
}

func TestRollupRoundsOnlyStoredFields(t *testing.T) {
	q := &Quote{Margin: d("0"), Status: StatusDraft}
	for i := 0; i < 3; i++ {
		if _, err := q.AddMaterial(MaterialInput{ComponentID: "mp", Description: "Parafuso", Quantity: d("1"), UnitCost: d("0.0050")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := q.Rollup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Cada linha grava 0.01, mas a soma exata é 0.015 -> 0.02
	assertDecimal(t, "line", q.Materials[0].Total, "0.01")
	assertDecimal(t, "materials", q.Totals.Materials, "0.02")
}

func TestRollupTwoPhaseFees(t *testing.T) {
	q := &Quote{Margin: d("20"), FixedCost: d("0"), Status: StatusDraft}
	mustAdd := func(in FeeInput) {
		t.Helper()
		if _, err := q.AddFee(in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := q.AddMaterial(MaterialInput{ComponentID: "mp", Description: "Base", Quantity: d("1"), UnitCost: d("100")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustAdd(FeeInput{Description: "Frete", Kind: FeeFixed, Value: d("20")})
	mustAdd(FeeInput{Description: "Seguro", Kind: FeePercentage, Base: BaseCost, Value: d("10")})
	mustAdd(FeeInput{Description: "ICMS", Kind: FeePercentage, Base: BaseSale, Value: d("18")})

	if err := q.Rollup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// base 100; fase 1 = 20 + 10 = 30; provisório = 130 / 0.8 = 162.5
	// fase 2 = 18% de 162.5 = 29.25; custo total = 159.25; preço = 199.0625
	assertDecimal(t, "fixed fee", q.Fees[0].Total, "20")
	assertDecimal(t, "cost fee", q.Fees[1].Total, "10")
	assertDecimal(t, "sale fee", q.Fees[2].Total, "29.25")
	assertDecimal(t, "fees", q.Totals.Fees, "59.25")
	assertDecimal(t, "production", q.Totals.ProductionCost, "159.25")
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "199.06")
}

func TestRollupProductionCostIdentity(t *testing.T) {
	q := seededQuote(t, "35")
	if _, err := q.AddProcess(ProcessInput{Description: "Forno", Hours: d("0.75"), HourlyRate: d("33.33")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := q.AddFee(FeeInput{Description: "Taxa", Kind: FeePercentage, Base: BaseCost, Value: d("7.5")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Rollup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := q.Totals.Materials.Add(q.Totals.Processes).Add(q.FixedCost).Add(q.Totals.Fees)
	diff := sum.Sub(q.Totals.ProductionCost).Abs()
	if diff.GreaterThan(d("0.02")) {
		t.Fatalf("production cost %s differs from components sum %s", q.Totals.ProductionCost, sum)
	}
}

func TestFinalPriceOverrideSurvivesRollup(t *testing.T) {
	q := seededQuote(t, "20")
	if err := q.SetFinalPrice(dp("99.90")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := q.AddProcess(ProcessInput{Description: "Montagem", Hours: d("2"), HourlyRate: d("15")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Rollup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "final", q.Totals.FinalPrice, "99.90")
	assertDecimal(t, "computed", q.Totals.ComputedPrice, "68.75")

	if err := q.SetFinalPrice(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "final after clear", q.Totals.FinalPrice, "68.75")
}

func TestMarginGuard(t *testing.T) {
	for _, margin := range []string{"100", "150", "-1"} {
		_, err := New("tenant", NewInput{ProductID: "pa", Margin: dp(margin)}, nil, nil)
		verr, ok := apperror.AsValidation(err)
		if !ok {
			t.Fatalf("margin %s: expected validation error, got %v", margin, err)
		}
		if _, ok := verr.Fields["margem_lucro_percentual"]; !ok {
			t.Fatalf("margin %s: unexpected fields %v", margin, verr.Fields)
		}
	}

	q := seededQuote(t, "20")
	if err := q.ApplyHeader(HeaderInput{Margin: dp("100")}); err == nil {
		t.Fatalf("expected margin 100 to be rejected")
	}
	assertDecimal(t, "margin unchanged", q.Margin, "20")

	q.Margin = d("100")
	if _, ok := apperror.AsValidation(q.Rollup()); !ok {
		t.Fatalf("expected rollup to refuse margin 100")
	}
}
