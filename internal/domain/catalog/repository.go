package catalog

import (
	"context"
)

// Filter restringe a listagem de itens
type Filter struct {
	Kind   Kind
	Active *bool
	Search string // Busca por nome ou SKU
}

// Repository define a interface para operações de repositório de produtos.
// Todas as consultas são restritas ao tenant informado.
type Repository interface {
	// Create cria um novo item
	Create(ctx context.Context, item *Item) error

	// FindByID busca um item da empresa pelo ID
	FindByID(ctx context.Context, tenantID, id string) (*Item, error)

	// FindByIDs busca vários itens da empresa, indexados pelo ID
	FindByIDs(ctx context.Context, tenantID string, ids []string) (map[string]*Item, error)

	// List lista os itens da empresa ordenados por nome
	List(ctx context.Context, tenantID string, filter Filter, limit, offset int) ([]*Item, error)

	// Count conta os itens da empresa que atendem ao filtro
	Count(ctx context.Context, tenantID string, filter Filter) (int, error)

	// ExistsBySKU verifica se outro item da empresa já usa o SKU
	ExistsBySKU(ctx context.Context, tenantID, sku, excludeID string) (bool, error)

	// Update atualiza um item existente
	Update(ctx context.Context, item *Item) error

	// Delete remove um item
	Delete(ctx context.Context, tenantID, id string) error
}
