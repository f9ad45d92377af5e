package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// RecipeService gerencia as composições e a substituição das suas linhas
type RecipeService struct {
	tx      Transactor
	recipes recipe.Repository
	items   catalog.Repository
	log     logger.Logger
}

// NewRecipeService cria uma nova instância de RecipeService
func NewRecipeService(tx Transactor, recipes recipe.Repository, items catalog.Repository, log logger.Logger) *RecipeService {
	return &RecipeService{tx: tx, recipes: recipes, items: items, log: log}
}

// List lista as composições da empresa com suas linhas
func (s *RecipeService) List(ctx context.Context, tenantID string, page Page) ([]*recipe.Recipe, int, error) {
	if tenantID == "" {
		return []*recipe.Recipe{}, 0, nil
	}
	recipes, err := s.recipes.List(ctx, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.recipes.Count(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Get busca uma composição da empresa
func (s *RecipeService) Get(ctx context.Context, tenantID, id string) (*recipe.Recipe, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	return s.recipes.FindByID(ctx, tenantID, id)
}

// Create cria a composição com todas as linhas. Produto e componentes são
// validados contra o catálogo da empresa antes de qualquer gravação.
func (s *RecipeService) Create(ctx context.Context, tenantID string, in recipe.Input) (*recipe.Recipe, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	rec, err := recipe.New(tenantID, in)
	if err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, rec, true); err != nil {
			return err
		}
		if err := s.checkSingleRecipe(ctx, rec); err != nil {
			return err
		}
		return s.recipes.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Update altera o cabeçalho e, quando in.ReplaceLines é verdadeiro,
// substitui o conjunto de linhas. A diferença é aplicada na mesma transação
// do cabeçalho, com a composição bloqueada.
func (s *RecipeService) Update(ctx context.Context, tenantID, id string, in recipe.Input) (*recipe.Recipe, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}

	var out *recipe.Recipe
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		rec, err := s.recipes.LockByID(ctx, tenantID, id)
		if err != nil {
			return err
		}
		previousProduct := rec.ProductID

		diff, err := rec.Update(in)
		if err != nil {
			return err
		}
		if err := s.checkReferences(ctx, rec, in.ReplaceLines); err != nil {
			return err
		}
		if rec.ProductID != previousProduct {
			if err := s.checkSingleRecipe(ctx, rec); err != nil {
				return err
			}
		}

		if err := s.recipes.UpdateHeader(ctx, rec); err != nil {
			return err
		}
		if !diff.Empty() {
			if err := s.recipes.ApplyDiff(ctx, rec.ID, diff); err != nil {
				return err
			}
			s.log.Debug("itens da composição substituídos", "recipe_id", rec.ID,
				"incluidos", len(diff.Added), "removidos", len(diff.Removed), "alterados", len(diff.Changed))
		}
		out = rec
		return nil
	})
	return out, err
}

// Delete exclui a composição e suas linhas
func (s *RecipeService) Delete(ctx context.Context, tenantID, id string) error {
	if err := requireTenant(tenantID); err != nil {
		return err
	}
	return s.recipes.Delete(ctx, tenantID, id)
}

// Cost calcula o custo unitário da composição com os custos atuais do
// catálogo
func (s *RecipeService) Cost(ctx context.Context, tenantID, id string) (*recipe.Recipe, decimal.Decimal, error) {
	rec, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, decimal.Zero, err
	}
	components, err := s.items.FindByIDs(ctx, tenantID, rec.ComponentIDs())
	if err != nil {
		return nil, decimal.Zero, err
	}
	return rec, rec.UnitCost(components), nil
}

// checkReferences valida o produto acabado e, se withLines, os componentes
func (s *RecipeService) checkReferences(ctx context.Context, rec *recipe.Recipe, withLines bool) error {
	product, err := s.items.FindByID(ctx, rec.TenantID, rec.ProductID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	var lines []recipe.LineInput
	components := map[string]*catalog.Item{}
	if withLines {
		lines = make([]recipe.LineInput, 0, len(rec.Lines))
		for _, l := range rec.Lines {
			lines = append(lines, recipe.LineInput{ComponentID: l.ComponentID, Quantity: l.Quantity})
		}
		components, err = s.items.FindByIDs(ctx, rec.TenantID, rec.ComponentIDs())
		if err != nil {
			return err
		}
	}
	return recipe.CheckReferences(product, lines, components)
}

// checkSingleRecipe garante que o produto não possui outra composição
func (s *RecipeService) checkSingleRecipe(ctx context.Context, rec *recipe.Recipe) error {
	other, err := s.recipes.FindByProduct(ctx, rec.TenantID, rec.ProductID)
	switch {
	case err == nil && other.ID != rec.ID:
		return recipe.ErrRecipeExists
	case err != nil && !errors.Is(err, apperror.ErrNotFound):
		return err
	}
	return nil
}
