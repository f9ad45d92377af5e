package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	"github.com/hugohenrick/precificacao-api/pkg/tenant"
)

// RecipeController gerencia as composições (fichas técnicas)
type RecipeController struct {
	recipeService *service.RecipeService
	log           logger.Logger
}

// NewRecipeController cria uma nova instância de RecipeController
func NewRecipeController(recipeService *service.RecipeService, log logger.Logger) *RecipeController {
	return &RecipeController{
		recipeService: recipeService,
		log:           log,
	}
}

// List lista as composições da empresa
// @Summary Lista composições
// @Tags composicoes
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.RecipeListResponse
// @Router /composicoes [get]
func (c *RecipeController) List(ctx *gin.Context) {
	p, page := pagination(ctx)
	recipes, total, err := c.recipeService.List(ctx.Request.Context(), tenant.GetTenantID(ctx), page)
	if err != nil {
		respondError(ctx, c.log, "composicoes.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecipeListResponse(recipes, total, p))
}

// Get retorna uma composição com os itens
// @Summary Obtém uma composição
// @Tags composicoes
// @Produce json
// @Security Bearer
// @Param id path string true "ID da composição"
// @Success 200 {object} dto.RecipeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /composicoes/{id} [get]
func (c *RecipeController) Get(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	rec, err := c.recipeService.Get(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, "composicoes.get", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecipeResponse(rec))
}

// Create cria a composição com todos os itens
// @Summary Cria uma composição
// @Tags composicoes
// @Accept json
// @Produce json
// @Security Bearer
// @Param composicao body dto.RecipeRequest true "Composição e itens"
// @Success 201 {object} dto.RecipeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /composicoes [post]
func (c *RecipeController) Create(ctx *gin.Context) {
	var request dto.RecipeRequest
	if !bindJSON(ctx, &request) {
		return
	}

	rec, err := c.recipeService.Create(ctx.Request.Context(), tenant.GetTenantID(ctx), request.ToInput())
	if err != nil {
		respondError(ctx, c.log, "composicoes.create", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToRecipeResponse(rec))
}

// Update atualiza a composição. Quando itens é enviado, o conjunto de linhas
// é substituído numa única transação.
// @Summary Atualiza uma composição
// @Tags composicoes
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da composição"
// @Param composicao body dto.RecipeRequest true "Composição e itens"
// @Success 200 {object} dto.RecipeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /composicoes/{id} [put]
func (c *RecipeController) Update(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	var request dto.RecipeRequest
	if !bindJSON(ctx, &request) {
		return
	}

	rec, err := c.recipeService.Update(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), request.ToInput())
	if err != nil {
		respondError(ctx, c.log, "composicoes.update", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecipeResponse(rec))
}

// Delete remove a composição e os seus itens
// @Summary Remove uma composição
// @Tags composicoes
// @Security Bearer
// @Param id path string true "ID da composição"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /composicoes/{id} [delete]
func (c *RecipeController) Delete(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	if err := c.recipeService.Delete(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.log, "composicoes.delete", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Cost calcula o custo unitário da composição com os custos atuais
// @Summary Custo unitário da composição
// @Tags composicoes
// @Produce json
// @Security Bearer
// @Param id path string true "ID da composição"
// @Success 200 {object} dto.RecipeCostResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /composicoes/{id}/custo [get]
func (c *RecipeController) Cost(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	rec, cost, err := c.recipeService.Cost(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, "composicoes.cost", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecipeCostResponse(rec, cost))
}
