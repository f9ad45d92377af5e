package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	"github.com/hugohenrick/precificacao-api/pkg/tenant"
)

// ProductController gerencia as requisições relacionadas aos produtos
type ProductController struct {
	catalogService *service.CatalogService
	log            logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(catalogService *service.CatalogService, log logger.Logger) *ProductController {
	return &ProductController{
		catalogService: catalogService,
		log:            log,
	}
}

// List lista os produtos da empresa
// @Summary Lista produtos
// @Description Lista os produtos da empresa com filtros opcionais. Sem empresa a lista é vazia.
// @Tags produtos
// @Produce json
// @Security Bearer
// @Param tipo query string false "Tipo (MP, PA, SV, SB)"
// @Param ativo query bool false "Somente ativos ou inativos"
// @Param busca query string false "Busca por nome ou SKU"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /produtos [get]
func (c *ProductController) List(ctx *gin.Context) {
	filter := catalog.Filter{
		Kind:   catalog.Kind(ctx.Query("tipo")),
		Search: ctx.Query("busca"),
	}
	if raw := ctx.Query("ativo"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(ctx, c.log, "produtos.list", apperror.Invalid("ativo", "valor booleano inválido"))
			return
		}
		filter.Active = &active
	}

	p, page := pagination(ctx)
	items, total, err := c.catalogService.List(ctx.Request.Context(), tenant.GetTenantID(ctx), filter, page)
	if err != nil {
		respondError(ctx, c.log, "produtos.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductListResponse(items, total, p))
}

// Get retorna um produto
// @Summary Obtém um produto
// @Tags produtos
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	item, err := c.catalogService.Get(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, "produtos.get", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductResponse(item))
}

// Create cria um produto
// @Summary Cria um produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security Bearer
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /produtos [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if !bindJSON(ctx, &request) {
		return
	}

	item, err := c.catalogService.Create(ctx.Request.Context(), tenant.GetTenantID(ctx), request.ToInput())
	if err != nil {
		respondError(ctx, c.log, "produtos.create", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToProductResponse(item))
}

// Update atualiza um produto
// @Summary Atualiza um produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	var request dto.ProductRequest
	if !bindJSON(ctx, &request) {
		return
	}

	item, err := c.catalogService.Update(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), request.ToInput())
	if err != nil {
		respondError(ctx, c.log, "produtos.update", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductResponse(item))
}

// Delete remove um produto
// @Summary Remove um produto
// @Description Produtos usados em composições ou orçamentos não podem ser removidos
// @Tags produtos
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /produtos/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	if err := c.catalogService.Delete(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.log, "produtos.delete", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
