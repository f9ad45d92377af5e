package recipe

import (
	"context"
)

// Repository define a interface para operações de repositório de composições
type Repository interface {
	// Create grava a composição e suas linhas
	Create(ctx context.Context, r *Recipe) error

	// FindByID busca uma composição da empresa com suas linhas
	FindByID(ctx context.Context, tenantID, id string) (*Recipe, error)

	// LockByID busca a composição bloqueando a linha até o fim da transação
	LockByID(ctx context.Context, tenantID, id string) (*Recipe, error)

	// FindByProduct busca a composição do produto acabado
	FindByProduct(ctx context.Context, tenantID, productID string) (*Recipe, error)

	// List lista as composições da empresa
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Recipe, error)

	// Count conta as composições da empresa
	Count(ctx context.Context, tenantID string) (int, error)

	// UpdateHeader atualiza produto, descrição e custo fixo
	UpdateHeader(ctx context.Context, r *Recipe) error

	// ApplyDiff aplica as inclusões, alterações e remoções de linhas
	ApplyDiff(ctx context.Context, recipeID string, d Diff) error

	// Delete remove a composição e suas linhas
	Delete(ctx context.Context, tenantID, id string) error

	// IsComponentInUse verifica se o produto é componente de alguma composição
	IsComponentInUse(ctx context.Context, tenantID, productID string) (bool, error)

	// HasRecipe verifica se o produto possui composição
	HasRecipe(ctx context.Context, tenantID, productID string) (bool, error)
}
