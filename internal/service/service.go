// Package service contém os casos de uso da API. Toda operação recebe o
// tenant explicitamente e as alterações que tocam mais de um registro rodam
// dentro de uma única transação.
package service

import (
	"context"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
)

// Transactor executa fn numa transação. Chamadas aninhadas participam da
// transação externa.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Page delimita uma listagem. Limit zero significa sem limite.
type Page struct {
	Limit  int
	Offset int
}

// requireTenant rejeita escritas e leituras pontuais feitas sem empresa
func requireTenant(tenantID string) error {
	if tenantID == "" {
		return apperror.ErrTenantRequired
	}
	return nil
}
