package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
)

// TenantController gerencia as requisições relacionadas à empresa do usuário
type TenantController struct {
	tenantService *service.TenantService
	log           logger.Logger
}

// NewTenantController cria uma nova instância de TenantController
func NewTenantController(tenantService *service.TenantService, log logger.Logger) *TenantController {
	return &TenantController{
		tenantService: tenantService,
		log:           log,
	}
}

// Create cria a empresa do usuário autenticado
// @Summary Cria a empresa
// @Description Cria a empresa do usuário autenticado. Cada usuário possui uma empresa.
// @Tags empresas
// @Accept json
// @Produce json
// @Security Bearer
// @Param empresa body dto.TenantRequest true "Dados da empresa"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /empresas [post]
func (c *TenantController) Create(ctx *gin.Context) {
	var request dto.TenantRequest
	if !bindJSON(ctx, &request) {
		return
	}

	t, err := c.tenantService.Create(ctx.Request.Context(), auth.GetUserID(ctx), request.ToInput())
	if err != nil {
		respondError(ctx, c.log, "empresas.create", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(t))
}

// Me retorna a empresa do usuário autenticado
// @Summary Retorna a empresa do usuário
// @Tags empresas
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /empresas/me [get]
func (c *TenantController) Me(ctx *gin.Context) {
	t, err := c.tenantService.GetForOwner(ctx.Request.Context(), auth.GetUserID(ctx))
	if err != nil {
		respondError(ctx, c.log, "empresas.me", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// Update atualiza a empresa do usuário autenticado
// @Summary Atualiza a empresa do usuário
// @Tags empresas
// @Accept json
// @Produce json
// @Security Bearer
// @Param empresa body dto.TenantRequest true "Dados da empresa"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /empresas/me [put]
func (c *TenantController) Update(ctx *gin.Context) {
	var request dto.TenantRequest
	if !bindJSON(ctx, &request) {
		return
	}

	userID := auth.GetUserID(ctx)
	current, err := c.tenantService.GetForOwner(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, c.log, "empresas.update", err)
		return
	}

	t, err := c.tenantService.Update(ctx.Request.Context(), current.ID, userID, request.ToInput())
	if err != nil {
		respondError(ctx, c.log, "empresas.update", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}
