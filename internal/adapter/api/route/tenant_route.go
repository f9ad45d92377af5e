package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/controller"
)

// SetupTenantRoutes configura as rotas da empresa do usuário. Não passam
// pelo middleware de tenant porque o usuário pode ainda não ter empresa.
func SetupTenantRoutes(router *gin.RouterGroup, tenantController *controller.TenantController, authMiddleware gin.HandlerFunc) {
	tenantRouter := router.Group("/empresas")
	tenantRouter.Use(authMiddleware)
	{
		tenantRouter.POST("", tenantController.Create)
		tenantRouter.GET("/me", tenantController.Me)
		tenantRouter.PUT("/me", tenantController.Update)
	}
}
