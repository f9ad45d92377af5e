package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	"github.com/hugohenrick/precificacao-api/pkg/tenant"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// QuoteController gerencia os orçamentos e as suas três abas de itens.
// Toda alteração retorna o orçamento completo com os totais recalculados.
type QuoteController struct {
	quoteService *service.QuoteService
	log          logger.Logger
}

// NewQuoteController cria uma nova instância de QuoteController
func NewQuoteController(quoteService *service.QuoteService, log logger.Logger) *QuoteController {
	return &QuoteController{
		quoteService: quoteService,
		log:          log,
	}
}

// List lista os orçamentos da empresa
// @Summary Lista orçamentos
// @Tags orcamentos
// @Produce json
// @Security Bearer
// @Param status query string false "Situação (draft, sent, approved, rejected)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.QuoteListResponse
// @Router /orcamentos [get]
func (c *QuoteController) List(ctx *gin.Context) {
	p, page := pagination(ctx)
	filter := quote.Filter{Status: quote.Status(ctx.Query("status"))}
	quotes, total, err := c.quoteService.List(ctx.Request.Context(), tenant.GetTenantID(ctx), filter, page)
	if err != nil {
		respondError(ctx, c.log, "orcamentos.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToQuoteListResponse(quotes, total, p))
}

// Get retorna um orçamento
// @Summary Obtém um orçamento
// @Tags orcamentos
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id} [get]
func (c *QuoteController) Get(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	q, err := c.quoteService.Get(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, "orcamentos.get", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToQuoteResponse(q))
}

// Create cria um orçamento, copiando a composição do produto base
// @Summary Cria um orçamento
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param orcamento body dto.CreateQuoteRequest true "Dados do orçamento"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /orcamentos [post]
func (c *QuoteController) Create(ctx *gin.Context) {
	var request dto.CreateQuoteRequest
	if !bindJSON(ctx, &request) {
		return
	}

	q, err := c.quoteService.Create(ctx.Request.Context(), tenant.GetTenantID(ctx), service.CreateQuoteInput{
		NewInput: quote.NewInput{
			ProductID:   request.ProdutoBase,
			Description: request.Descricao,
			Quantity:    request.Quantidade,
			Margin:      request.MargemLucroPercentual,
		},
		UseRecipe: request.UseRecipe(),
	})
	if err != nil {
		respondError(ctx, c.log, "orcamentos.create", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToQuoteResponse(q))
}

// Update altera o cabeçalho do orçamento
// @Summary Atualiza um orçamento
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param orcamento body dto.UpdateQuoteRequest true "Campos alterados"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orcamentos/{id} [put]
func (c *QuoteController) Update(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	var request dto.UpdateQuoteRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.update", http.StatusOK)(
		c.quoteService.Update(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), request.ToInput()))
}

// SetFinalPrice define ou limpa o preço de venda final manual
// @Summary Define o preço final
// @Description Envie null para voltar a usar o preço calculado
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param preco body dto.FinalPriceRequest true "Preço final"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/preco-final [patch]
func (c *QuoteController) SetFinalPrice(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	var request dto.FinalPriceRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.set_final_price", http.StatusOK)(
		c.quoteService.SetFinalPrice(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), request.PrecoVendaFinal))
}

// Recalculate refaz o cálculo dos totais
// @Summary Recalcula o orçamento
// @Tags orcamentos
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/recalcular [post]
func (c *QuoteController) Recalculate(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	c.respond(ctx, "orcamentos.recalculate", http.StatusOK)(
		c.quoteService.Recalculate(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id")))
}

// Delete remove o orçamento e todos os itens
// @Summary Remove um orçamento
// @Tags orcamentos
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id} [delete]
func (c *QuoteController) Delete(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	if err := c.quoteService.Delete(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.log, "orcamentos.delete", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Export gera a planilha do orçamento
// @Summary Exporta o orçamento
// @Tags orcamentos
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/exportar [get]
func (c *QuoteController) Export(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	q, data, err := c.quoteService.Export(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, "orcamentos.export", err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="orcamento-%s.xlsx"`, q.ID))
	ctx.Data(http.StatusOK, xlsxContentType, data)
}

// AddMaterial inclui um item de produto
// @Summary Inclui item de produto
// @Description Descrição e custo unitário ausentes são preenchidos com o cadastro do componente
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param item body dto.MaterialLineRequest true "Item de produto"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-produto [post]
func (c *QuoteController) AddMaterial(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	var request dto.MaterialLineRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.add_material", http.StatusCreated)(
		c.quoteService.AddMaterial(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), materialInput(request)))
}

// UpdateMaterial altera um item de produto
// @Summary Altera item de produto
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Param item body dto.MaterialLineRequest true "Item de produto"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-produto/{itemId} [put]
func (c *QuoteController) UpdateMaterial(ctx *gin.Context) {
	if !validIDs(ctx, "id", "itemId") {
		return
	}

	var request dto.MaterialLineRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.update_material", http.StatusOK)(
		c.quoteService.UpdateMaterial(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), ctx.Param("itemId"), materialInput(request)))
}

// RemoveMaterial remove um item de produto
// @Summary Remove item de produto
// @Tags orcamentos
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-produto/{itemId} [delete]
func (c *QuoteController) RemoveMaterial(ctx *gin.Context) {
	if !validIDs(ctx, "id", "itemId") {
		return
	}

	c.respond(ctx, "orcamentos.remove_material", http.StatusOK)(
		c.quoteService.RemoveMaterial(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), ctx.Param("itemId")))
}

// AddProcess inclui um item de processo
// @Summary Inclui item de processo
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param item body dto.ProcessLineRequest true "Item de processo"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-processo [post]
func (c *QuoteController) AddProcess(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	var request dto.ProcessLineRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.add_process", http.StatusCreated)(
		c.quoteService.AddProcess(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), request.ToInput()))
}

// UpdateProcess altera um item de processo
// @Summary Altera item de processo
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Param item body dto.ProcessLineRequest true "Item de processo"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-processo/{itemId} [put]
func (c *QuoteController) UpdateProcess(ctx *gin.Context) {
	if !validIDs(ctx, "id", "itemId") {
		return
	}

	var request dto.ProcessLineRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.update_process", http.StatusOK)(
		c.quoteService.UpdateProcess(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), ctx.Param("itemId"), request.ToInput()))
}

// RemoveProcess remove um item de processo
// @Summary Remove item de processo
// @Tags orcamentos
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-processo/{itemId} [delete]
func (c *QuoteController) RemoveProcess(ctx *gin.Context) {
	if !validIDs(ctx, "id", "itemId") {
		return
	}

	c.respond(ctx, "orcamentos.remove_process", http.StatusOK)(
		c.quoteService.RemoveProcess(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), ctx.Param("itemId")))
}

// AddFee inclui uma despesa ou imposto
// @Summary Inclui despesa ou imposto
// @Description Tipo percentual ou fixo; percentuais incidem sobre o custo ou sobre o preço de venda
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param item body dto.FeeLineRequest true "Despesa ou imposto"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-despesa [post]
func (c *QuoteController) AddFee(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	var request dto.FeeLineRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.add_fee", http.StatusCreated)(
		c.quoteService.AddFee(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), request.ToInput()))
}

// UpdateFee altera uma despesa ou imposto
// @Summary Altera despesa ou imposto
// @Tags orcamentos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Param item body dto.FeeLineRequest true "Despesa ou imposto"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-despesa/{itemId} [put]
func (c *QuoteController) UpdateFee(ctx *gin.Context) {
	if !validIDs(ctx, "id", "itemId") {
		return
	}

	var request dto.FeeLineRequest
	if !bindJSON(ctx, &request) {
		return
	}
	c.respond(ctx, "orcamentos.update_fee", http.StatusOK)(
		c.quoteService.UpdateFee(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), ctx.Param("itemId"), request.ToInput()))
}

// RemoveFee remove uma despesa ou imposto
// @Summary Remove despesa ou imposto
// @Tags orcamentos
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /orcamentos/{id}/itens-despesa/{itemId} [delete]
func (c *QuoteController) RemoveFee(ctx *gin.Context) {
	if !validIDs(ctx, "id", "itemId") {
		return
	}

	c.respond(ctx, "orcamentos.remove_fee", http.StatusOK)(
		c.quoteService.RemoveFee(ctx.Request.Context(), tenant.GetTenantID(ctx), ctx.Param("id"), ctx.Param("itemId")))
}

// respond escreve o orçamento retornado por uma alteração ou o erro
func (c *QuoteController) respond(ctx *gin.Context, operation string, status int) func(*quote.Quote, error) {
	return func(q *quote.Quote, err error) {
		if err != nil {
			respondError(ctx, c.log, operation, err)
			return
		}
		ctx.JSON(status, dto.ToQuoteResponse(q))
	}
}

func materialInput(r dto.MaterialLineRequest) service.MaterialInput {
	return service.MaterialInput{
		ComponentID: r.Componente,
		Description: r.Descricao,
		Quantity:    r.Quantidade,
		UnitCost:    r.CustoUnitario,
	}
}
