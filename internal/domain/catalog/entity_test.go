package catalog

import (
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/shopspring/decimal"
)

func TestNewItem(t *testing.T) {
	item, err := NewItem("tenant-1", ItemInput{
		Name:     " Farinha ",
		SKU:      "FAR-01",
		Kind:     "mp",
		Unit:     "kg",
		UnitCost: decimal.RequireFromString("3.123456"),
		Active:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Kind != KindRawMaterial {
		t.Fatalf("expected kind MP, got %s", item.Kind)
	}
	if got := item.UnitCost.String(); got != "3.1235" {
		t.Fatalf("expected cost rounded to 4 places, got %s", got)
	}
	if item.Name != "Farinha" || item.TenantID != "tenant-1" {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.Label() != "Farinha (kg)" {
		t.Fatalf("unexpected label %q", item.Label())
	}
}

func TestItemValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    ItemInput
		field string
	}{
		{"sem nome", ItemInput{Kind: KindFinished, Unit: "un"}, "nome"},
		{"tipo inválido", ItemInput{Name: "X", Kind: "ZZ", Unit: "un"}, "tipo"},
		{"sem unidade", ItemInput{Name: "X", Kind: KindService}, "unidade_medida"},
		{"custo negativo", ItemInput{Name: "X", Kind: KindService, Unit: "h", UnitCost: decimal.NewFromInt(-1)}, "preco_custo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem("tenant-1", tt.in)
			verr, ok := apperror.AsValidation(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Fatalf("expected field %s, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestKindCanOwnRecipe(t *testing.T) {
	if KindRawMaterial.CanOwnRecipe() {
		t.Fatalf("raw material must not own a recipe")
	}
	for _, k := range []Kind{KindFinished, KindService, KindSubProduct} {
		if !k.CanOwnRecipe() {
			t.Fatalf("expected %s to own a recipe", k)
		}
	}
}
