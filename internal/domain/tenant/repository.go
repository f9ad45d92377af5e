package tenant

import (
	"context"
)

// Repository define a interface para operações de repositório de empresas
type Repository interface {
	// Create cria uma nova empresa
	Create(ctx context.Context, t *Tenant) error

	// FindByID busca uma empresa pelo ID
	FindByID(ctx context.Context, id string) (*Tenant, error)

	// FindByOwner busca a empresa mais antiga do usuário dono
	FindByOwner(ctx context.Context, ownerID string) (*Tenant, error)

	// ExistsByCNPJ verifica se outro registro já usa o CNPJ
	ExistsByCNPJ(ctx context.Context, cnpj, excludeID string) (bool, error)

	// Update atualiza os dados de uma empresa existente
	Update(ctx context.Context, t *Tenant) error
}
