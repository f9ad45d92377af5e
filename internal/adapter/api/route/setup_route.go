package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/controller"
)

// Controllers agrupa os controllers registrados no router
type Controllers struct {
	Auth    *controller.AuthController
	Tenant  *controller.TenantController
	Product *controller.ProductController
	Recipe  *controller.RecipeController
	Quote   *controller.QuoteController
	Billing *controller.BillingController
}

// Middlewares agrupa os middlewares de autenticação e de resolução da empresa
type Middlewares struct {
	Auth   gin.HandlerFunc
	Tenant gin.HandlerFunc
}

// SetupRoutes registra todas as rotas da API sob o grupo informado
func SetupRoutes(api *gin.RouterGroup, c Controllers, m Middlewares) {
	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	SetupAuthRoutes(api, c.Auth, m.Auth)
	SetupTenantRoutes(api, c.Tenant, m.Auth)
	SetupBillingRoutes(api, c.Billing, m.Auth)

	// Rotas de precificação: autenticadas e com a empresa resolvida
	pricing := api.Group("")
	pricing.Use(m.Auth, m.Tenant)
	SetupProductRoutes(pricing, c.Product)
	SetupRecipeRoutes(pricing, c.Recipe)
	SetupQuoteRoutes(pricing, c.Quote)
}
