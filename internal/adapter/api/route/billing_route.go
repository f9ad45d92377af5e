package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/controller"
)

// SetupBillingRoutes configura as rotas de planos, assinaturas e pagamentos.
// A listagem de planos é pública.
func SetupBillingRoutes(router *gin.RouterGroup, billingController *controller.BillingController, authMiddleware gin.HandlerFunc) {
	planRouter := router.Group("/planos")
	{
		planRouter.GET("", billingController.Plans)
		planRouter.GET("/:slug", billingController.Plan)
	}

	subscriptionRouter := router.Group("/assinaturas")
	subscriptionRouter.Use(authMiddleware)
	{
		subscriptionRouter.GET("", billingController.Subscriptions)
		subscriptionRouter.POST("", billingController.Subscribe)
		subscriptionRouter.GET("/ativa", billingController.Active)
		subscriptionRouter.POST("/:id/cancelar", billingController.Cancel)
	}

	paymentRouter := router.Group("/pagamentos")
	paymentRouter.Use(authMiddleware)
	{
		paymentRouter.GET("", billingController.Payments)
		paymentRouter.GET("/:id", billingController.Payment)
	}
}
