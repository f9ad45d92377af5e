package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
)

// Chaves do contexto do Gin preenchidas pelo middleware
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// TokenValidator valida tokens de acesso
type TokenValidator interface {
	ValidateToken(tokenString string, typ TokenType) (*JWTClaims, error)
}

// JWTAuthMiddleware cria um middleware para autenticação JWT
func JWTAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Obter o token do cabeçalho Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, "Autenticação requerida", "O cabeçalho Authorization não foi fornecido")
			return
		}

		// Verificar o formato "Bearer <token>"
		tokenParts := strings.Fields(authHeader)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			abort(c, "Formato de token inválido", "Use o formato 'Bearer <token>'")
			return
		}

		claims, err := validator.ValidateToken(tokenParts[1], TokenAccess)
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			abort(c, message, err.Error())
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// GetUserID obtém o ID do usuário autenticado
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func abort(c *gin.Context, message, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		http.StatusUnauthorized,
		message,
		details,
	))
}
