package service

import (
	"context"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
)

// CatalogService gerencia os produtos da empresa
type CatalogService struct {
	tx      Transactor
	items   catalog.Repository
	recipes recipe.Repository
	quotes  quote.Repository
	log     logger.Logger
}

// NewCatalogService cria uma nova instância de CatalogService
func NewCatalogService(tx Transactor, items catalog.Repository, recipes recipe.Repository, quotes quote.Repository, log logger.Logger) *CatalogService {
	return &CatalogService{tx: tx, items: items, recipes: recipes, quotes: quotes, log: log}
}

// List lista os produtos da empresa. Sem empresa a lista é vazia.
func (s *CatalogService) List(ctx context.Context, tenantID string, filter catalog.Filter, page Page) ([]*catalog.Item, int, error) {
	if tenantID == "" {
		return []*catalog.Item{}, 0, nil
	}
	items, err := s.items.List(ctx, tenantID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.items.Count(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Get busca um produto da empresa
func (s *CatalogService) Get(ctx context.Context, tenantID, id string) (*catalog.Item, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	return s.items.FindByID(ctx, tenantID, id)
}

// Create cadastra um produto
func (s *CatalogService) Create(ctx context.Context, tenantID string, in catalog.ItemInput) (*catalog.Item, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	item, err := catalog.NewItem(tenantID, in)
	if err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkSKU(ctx, item); err != nil {
			return err
		}
		return s.items.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Update substitui os campos editáveis do produto. Um produto com
// composição não pode passar a ser matéria-prima.
func (s *CatalogService) Update(ctx context.Context, tenantID, id string, in catalog.ItemInput) (*catalog.Item, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}

	var out *catalog.Item
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		item, err := s.items.FindByID(ctx, tenantID, id)
		if err != nil {
			return err
		}
		wasRecipeOwner := item.Kind.CanOwnRecipe()
		if err := item.Apply(in); err != nil {
			return err
		}

		if wasRecipeOwner && !item.Kind.CanOwnRecipe() {
			hasRecipe, err := s.recipes.HasRecipe(ctx, tenantID, item.ID)
			if err != nil {
				return err
			}
			if hasRecipe {
				return apperror.Invalid("tipo", "produto com composição não pode ser matéria-prima")
			}
		}
		if err := s.checkSKU(ctx, item); err != nil {
			return err
		}
		if err := s.items.Update(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}

// Delete exclui o produto. Produtos usados como componente de composição ou
// em orçamentos não podem ser excluídos; a composição do próprio produto é
// excluída junto.
func (s *CatalogService) Delete(ctx context.Context, tenantID, id string) error {
	if err := requireTenant(tenantID); err != nil {
		return err
	}

	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.items.FindByID(ctx, tenantID, id); err != nil {
			return err
		}

		inRecipe, err := s.recipes.IsComponentInUse(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if inRecipe {
			return catalog.ErrItemReferenced
		}
		inQuote, err := s.quotes.IsProductInUse(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if inQuote {
			return catalog.ErrItemReferenced
		}
		return s.items.Delete(ctx, tenantID, id)
	})
}

func (s *CatalogService) checkSKU(ctx context.Context, item *catalog.Item) error {
	if item.SKU == "" {
		return nil
	}
	exists, err := s.items.ExistsBySKU(ctx, item.TenantID, item.SKU, item.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Invalid("codigo_sku", "SKU já cadastrado na empresa")
	}
	return nil
}
