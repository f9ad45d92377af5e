package tenant

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
)

// Info é o resultado da resolução da empresa de um usuário
type Info struct {
	ID     string
	Active bool
}

// Resolver encontra a empresa do usuário autenticado
type Resolver interface {
	ResolveTenant(ctx context.Context, userID string) (*Info, error)
}

// TenantMiddleware resolve a empresa do usuário autenticado e a guarda no
// contexto. Usuários sem empresa seguem sem tenant: listagens retornam vazio
// e escritas são rejeitadas pelos serviços. Empresas bloqueadas ou inativas
// recebem 403.
func TenantMiddleware(resolver Resolver, userIDKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(userIDKey)
		if userID == "" {
			c.Next()
			return
		}

		info, err := resolver.ResolveTenant(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Erro ao resolver empresa",
				err.Error(),
			))
			return
		}

		if !info.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Empresa inativa",
				ErrTenantNotActive.Error(),
			))
			return
		}

		c.Set(TenantIDKey, info.ID)
		c.Request = c.Request.WithContext(SetTenantIDContext(c.Request.Context(), info.ID))
		c.Next()
	}
}
