package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, authMiddleware gin.HandlerFunc) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh", authController.RefreshToken)
		authRouter.GET("/google/login", authController.GoogleLogin)
		authRouter.GET("/google/callback", authController.GoogleCallback)

		// Perfil do usuário logado
		authRouter.GET("/profile", authMiddleware, authController.Profile)
		authRouter.PUT("/profile", authMiddleware, authController.UpdateProfile)
	}
}
