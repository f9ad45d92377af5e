package recipe

import (
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{
			name:  "sem produto",
			in:    Input{},
			field: "produto_acabado",
		},
		{
			name: "componente repetido",
			in: Input{ProductID: "pa", Lines: []LineInput{
				{ComponentID: "mp1", Quantity: qty("1")},
				{ComponentID: "mp1", Quantity: qty("2")},
			}},
			field: "itens[1].componente",
		},
		{
			name:  "quantidade zero",
			in:    Input{ProductID: "pa", Lines: []LineInput{{ComponentID: "mp1", Quantity: qty("0")}}},
			field: "itens[0].quantidade",
		},
		{
			name:  "auto referência",
			in:    Input{ProductID: "pa", Lines: []LineInput{{ComponentID: "pa", Quantity: qty("1")}}},
			field: "itens[0].componente",
		},
		{
			name:  "custo fixo negativo",
			in:    Input{ProductID: "pa", FixedCost: qty("-1")},
			field: "custo_adicional_fixo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("tenant", tt.in)
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

func TestUpdateWithoutLinesKeepsLines(t *testing.T) {
	r, err := New("tenant", Input{ProductID: "pa", Lines: []LineInput{{ComponentID: "mp1", Quantity: qty("2")}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	diff, err := r.Update(Input{Description: "nova", FixedCost: qty("5")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diff.Empty() {
		t.Fatalf("expected empty diff, got %+v", diff)
	}
	if len(r.Lines) != 1 || r.ProductID != "pa" || r.Description != "nova" {
		t.Fatalf("unexpected recipe %+v", r)
	}
}

func TestUpdateRejectsProductThatIsComponent(t *testing.T) {
	r, _ := New("tenant", Input{ProductID: "pa", Lines: []LineInput{{ComponentID: "mp1", Quantity: qty("2")}}})
	if _, err := r.Update(Input{ProductID: "mp1"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestUnitCost(t *testing.T) {
	r, _ := New("tenant", Input{
		ProductID: "pa",
		FixedCost: qty("5"),
		Lines: []LineInput{
			{ComponentID: "mp1", Quantity: qty("2")},
			{ComponentID: "mp2", Quantity: qty("0.3333")},
		},
	})
	components := map[string]*catalog.Item{
		"mp1": {ID: "mp1", UnitCost: qty("10")},
		"mp2": {ID: "mp2", UnitCost: qty("3")},
	}
	// 20 + 0.9999 + 5 = 25.9999
	if got := r.UnitCost(components); got.String() != "26" {
		t.Fatalf("expected 26, got %s", got)
	}
}

func TestCheckReferences(t *testing.T) {
	raw := &catalog.Item{ID: "mp1", Kind: catalog.KindRawMaterial}
	finished := &catalog.Item{ID: "pa", Kind: catalog.KindFinished}
	lines := []LineInput{{ComponentID: "mp1", Quantity: qty("1")}, {ComponentID: "outra-empresa", Quantity: qty("1")}}

	err := CheckReferences(finished, lines, map[string]*catalog.Item{"mp1": raw})
	verr, ok := apperror.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["itens[1].componente"]; !ok {
		t.Fatalf("expected foreign component to be rejected, got %v", verr.Fields)
	}

	if err := CheckReferences(raw, nil, nil); err == nil {
		t.Fatalf("expected raw material product to be rejected")
	}
	if err := CheckReferences(finished, lines[:1], map[string]*catalog.Item{"mp1": raw}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
