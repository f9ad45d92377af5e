package tenant

import "errors"

// Erros comuns relacionados a operações de tenant
var (
	// ErrTenantNotActive ocorre quando a empresa do usuário está bloqueada ou inativa
	ErrTenantNotActive = errors.New("empresa não está ativa")
)
