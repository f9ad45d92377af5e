package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/controller"
)

// SetupProductRoutes configura as rotas do cadastro de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/produtos")
	{
		productRouter.GET("", productController.List)
		productRouter.POST("", productController.Create)
		productRouter.GET("/:id", productController.Get)
		productRouter.PUT("/:id", productController.Update)
		productRouter.DELETE("/:id", productController.Delete)
	}
}

// SetupRecipeRoutes configura as rotas das composições
func SetupRecipeRoutes(router *gin.RouterGroup, recipeController *controller.RecipeController) {
	recipeRouter := router.Group("/composicoes")
	{
		recipeRouter.GET("", recipeController.List)
		recipeRouter.POST("", recipeController.Create)
		recipeRouter.GET("/:id", recipeController.Get)
		recipeRouter.PUT("/:id", recipeController.Update)
		recipeRouter.DELETE("/:id", recipeController.Delete)
		recipeRouter.GET("/:id/custo", recipeController.Cost)
	}
}

// SetupQuoteRoutes configura as rotas dos orçamentos e das suas abas
func SetupQuoteRoutes(router *gin.RouterGroup, quoteController *controller.QuoteController) {
	quoteRouter := router.Group("/orcamentos")
	{
		// Operações CRUD básicas
		quoteRouter.GET("", quoteController.List)
		quoteRouter.POST("", quoteController.Create)
		quoteRouter.GET("/:id", quoteController.Get)
		quoteRouter.PUT("/:id", quoteController.Update)
		quoteRouter.DELETE("/:id", quoteController.Delete)

		// Totais e exportação
		quoteRouter.PATCH("/:id/preco-final", quoteController.SetFinalPrice)
		quoteRouter.POST("/:id/recalcular", quoteController.Recalculate)
		quoteRouter.GET("/:id/exportar", quoteController.Export)

		// Abas de itens
		quoteRouter.POST("/:id/itens-produto", quoteController.AddMaterial)
		quoteRouter.PUT("/:id/itens-produto/:itemId", quoteController.UpdateMaterial)
		quoteRouter.DELETE("/:id/itens-produto/:itemId", quoteController.RemoveMaterial)
		quoteRouter.POST("/:id/itens-processo", quoteController.AddProcess)
		quoteRouter.PUT("/:id/itens-processo/:itemId", quoteController.UpdateProcess)
		quoteRouter.DELETE("/:id/itens-processo/:itemId", quoteController.RemoveProcess)
		quoteRouter.POST("/:id/itens-despesa", quoteController.AddFee)
		quoteRouter.PUT("/:id/itens-despesa/:itemId", quoteController.UpdateFee)
		quoteRouter.DELETE("/:id/itens-despesa/:itemId", quoteController.RemoveFee)
	}
}
