package quote

import (
	"context"
)

// Filter restringe a listagem de orçamentos
type Filter struct {
	Status Status
}

// Repository define a interface para operações de repositório de orçamentos.
// As linhas não possuem tenant próprio; o acesso a elas passa sempre pelo
// orçamento, buscado antes com o tenant.
type Repository interface {
	// Create grava o orçamento com todas as linhas
	Create(ctx context.Context, q *Quote) error

	// FindByID busca o orçamento da empresa com suas linhas
	FindByID(ctx context.Context, tenantID, id string) (*Quote, error)

	// LockByID busca o orçamento bloqueando a linha até o fim da transação
	LockByID(ctx context.Context, tenantID, id string) (*Quote, error)

	// List lista os cabeçalhos dos orçamentos da empresa, mais recentes primeiro
	List(ctx context.Context, tenantID string, filter Filter, limit, offset int) ([]*Quote, error)

	// Count conta os orçamentos da empresa
	Count(ctx context.Context, tenantID string, filter Filter) (int, error)

	// UpdateHeader grava descrição, quantidade, status, margem e preço manual
	UpdateHeader(ctx context.Context, q *Quote) error

	// SaveTotals grava os totais do orçamento e de cada linha
	SaveTotals(ctx context.Context, q *Quote) error

	// Delete remove o orçamento e suas linhas
	Delete(ctx context.Context, tenantID, id string) error

	// IsProductInUse verifica se o produto é base ou componente de algum orçamento
	IsProductInUse(ctx context.Context, tenantID, productID string) (bool, error)

	AddMaterial(ctx context.Context, l *MaterialLine) error
	UpdateMaterial(ctx context.Context, l *MaterialLine) error
	DeleteMaterial(ctx context.Context, quoteID, id string) error

	AddProcess(ctx context.Context, l *ProcessLine) error
	UpdateProcess(ctx context.Context, l *ProcessLine) error
	DeleteProcess(ctx context.Context, quoteID, id string) error

	AddFee(ctx context.Context, l *FeeLine) error
	UpdateFee(ctx context.Context, l *FeeLine) error
	DeleteFee(ctx context.Context, quoteID, id string) error
}
