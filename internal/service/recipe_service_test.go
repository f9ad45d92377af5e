package service_test

import (
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/hugohenrick/precificacao-api/internal/service"
)

type bakery struct {
	tenantID string
	flour    *catalog.Item
	sugar    *catalog.Item
	egg      *catalog.Item
	cake     *catalog.Item
}

func newBakery(t *testing.T, e *env) bakery {
	t.Helper()
	_, tenantID := e.owner(t, "ana@exemplo.com", "Padaria")
	return bakery{
		tenantID: tenantID,
		flour:    e.item(t, tenantID, "Farinha", catalog.KindRawMaterial, "10"),
		sugar:    e.item(t, tenantID, "Açúcar", catalog.KindRawMaterial, "2.5"),
		egg:      e.item(t, tenantID, "Ovo", catalog.KindRawMaterial, "0.8"),
		cake:     e.item(t, tenantID, "Bolo", catalog.KindFinished, "0"),
	}
}

func (b bakery) recipe(t *testing.T, e *env) *recipe.Recipe {
	t.Helper()
	rec, err := e.recipes.Create(e.ctx, b.tenantID, recipe.Input{
		ProductID:   b.cake.ID,
		Description: "Bolo simples",
		Lines: []recipe.LineInput{
			{ComponentID: b.flour.ID, Quantity: dec("2")},
			{ComponentID: b.sugar.ID, Quantity: dec("2")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestRecipeCreateValidation(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	_, otherTenant := e.owner(t, "bia@exemplo.com", "Confeitaria")
	foreign := e.item(t, otherTenant, "Chocolate", catalog.KindRawMaterial, "30")

	_, err := e.recipes.Create(e.ctx, b.tenantID, recipe.Input{
		ProductID: b.flour.ID,
		Lines:     []recipe.LineInput{{ComponentID: b.sugar.ID, Quantity: dec("1")}},
	})
	assertField(t, err, "produto_acabado")

	_, err = e.recipes.Create(e.ctx, b.tenantID, recipe.Input{
		ProductID: b.cake.ID,
		Lines:     []recipe.LineInput{{ComponentID: foreign.ID, Quantity: dec("1")}},
	})
	assertField(t, err, "itens[0].componente")

	b.recipe(t, e)
	_, err = e.recipes.Create(e.ctx, b.tenantID, recipe.Input{ProductID: b.cake.ID})
	assertIs(t, err, apperror.ErrConflict)
}

func TestRecipeReplaceLines(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	rec := b.recipe(t, e)
	flourLineID := rec.Lines[0].ID

	updated, err := e.recipes.Update(e.ctx, b.tenantID, rec.ID, recipe.Input{
		Description: "Bolo com ovos",
		Lines: []recipe.LineInput{
			{ComponentID: b.egg.ID, Quantity: dec("3")},
			{ComponentID: b.flour.ID, Quantity: dec("2.5")},
		},
		ReplaceLines: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := e.recipes.Get(e.ctx, b.tenantID, rec.ID)
	if len(got.Lines) != 2 || got.Description != "Bolo com ovos" || updated.ProductID != b.cake.ID {
		t.Fatalf("unexpected recipe %+v", got)
	}
	if got.Lines[0].ComponentID != b.egg.ID || got.Lines[1].ComponentID != b.flour.ID {
		t.Fatalf("expected submitted order, got %+v", got.Lines)
	}
	if got.Lines[1].ID != flourLineID {
		t.Fatalf("kept component must keep its line id")
	}
	assertDecimal(t, "flour quantity", got.Lines[1].Quantity, "2.5")
}

func TestRecipeReplaceLinesIsAtomic(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	rec := b.recipe(t, e)

	_, err := e.recipes.Update(e.ctx, b.tenantID, rec.ID, recipe.Input{
		Description: "Não deve gravar",
		Lines: []recipe.LineInput{
			{ComponentID: b.egg.ID, Quantity: dec("3")},
			{ComponentID: "inexistente", Quantity: dec("1")},
		},
		ReplaceLines: true,
	})
	assertField(t, err, "itens[1].componente")

	got, _ := e.recipes.Get(e.ctx, b.tenantID, rec.ID)
	if got.Description != "Bolo simples" || len(got.Lines) != 2 || got.Lines[0].ComponentID != b.flour.ID {
		t.Fatalf("recipe must be unchanged after a rejected replacement, got %+v", got)
	}

	_, err = e.recipes.Update(e.ctx, b.tenantID, rec.ID, recipe.Input{
		Lines: []recipe.LineInput{
			{ComponentID: b.egg.ID, Quantity: dec("1")},
			{ComponentID: b.egg.ID, Quantity: dec("2")},
		},
		ReplaceLines: true,
	})
	assertField(t, err, "itens[1].componente")
}

func TestRecipeUpdateWithoutLines(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	rec := b.recipe(t, e)

	if _, err := e.recipes.Update(e.ctx, b.tenantID, rec.ID, recipe.Input{
		Description: "Só o cabeçalho",
		FixedCost:   dec("4.50"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := e.recipes.Get(e.ctx, b.tenantID, rec.ID)
	if len(got.Lines) != 2 || got.Lines[0].ID != rec.Lines[0].ID {
		t.Fatalf("lines must be untouched, got %+v", got.Lines)
	}
	assertDecimal(t, "fixed cost", got.FixedCost, "4.50")

	// Reenviar o mesmo conjunto não altera as linhas
	same := []recipe.LineInput{
		{ComponentID: b.flour.ID, Quantity: dec("2")},
		{ComponentID: b.sugar.ID, Quantity: dec("2")},
	}
	if _, err := e.recipes.Update(e.ctx, b.tenantID, rec.ID, recipe.Input{Lines: same, ReplaceLines: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _ := e.recipes.Get(e.ctx, b.tenantID, rec.ID)
	for i := range again.Lines {
		if again.Lines[i].ID != rec.Lines[i].ID {
			t.Fatalf("no-op replacement must keep line ids")
		}
	}
}

func TestRecipeCostAndList(t *testing.T) {
	e := newEnv(t)
	b := newBakery(t, e)
	rec := b.recipe(t, e)

	_, cost, err := e.recipes.Cost(e.ctx, b.tenantID, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "cost", cost, "25")

	recipes, total, err := e.recipes.List(e.ctx, b.tenantID, service.Page{Limit: 10})
	if err != nil || total != 1 || len(recipes) != 1 || len(recipes[0].Lines) != 2 {
		t.Fatalf("unexpected list: %d %d %v", total, len(recipes), err)
	}

	if err := e.recipes.Delete(e.ctx, b.tenantID, rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = e.recipes.Delete(e.ctx, b.tenantID, rec.ID)
	assertIs(t, err, apperror.ErrNotFound)
}
