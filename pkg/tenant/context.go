package tenant

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	// TenantIDKey é a chave usada para armazenar o tenant ID no contexto
	TenantIDKey = "tenant_id"

	tenantIDCtxKey contextKey = "tenant_id"
)

// SetTenantIDContext define o tenant ID no contexto
func SetTenantIDContext(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDCtxKey, tenantID)
}

// GetTenantIDFromContext obtém o tenant ID do contexto
func GetTenantIDFromContext(ctx context.Context) string {
	if tenantID, ok := ctx.Value(tenantIDCtxKey).(string); ok {
		return tenantID
	}
	return ""
}

// GetTenantID obtém o tenant ID de um contexto do Gin. Retorna vazio quando
// o usuário não possui empresa.
func GetTenantID(c *gin.Context) string {
	return c.GetString(TenantIDKey)
}
