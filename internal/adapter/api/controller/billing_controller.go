package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
)

// BillingController expõe planos, assinaturas e pagamentos
type BillingController struct {
	billingService *service.BillingService
	log            logger.Logger
}

// NewBillingController cria uma nova instância de BillingController
func NewBillingController(billingService *service.BillingService, log logger.Logger) *BillingController {
	return &BillingController{
		billingService: billingService,
		log:            log,
	}
}

// Plans lista os planos ativos
// @Summary Lista planos
// @Tags planos
// @Produce json
// @Success 200 {array} dto.PlanResponse
// @Router /planos [get]
func (c *BillingController) Plans(ctx *gin.Context) {
	plans, err := c.billingService.Plans(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.log, "planos.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPlanListResponse(plans))
}

// Plan retorna um plano pelo slug
// @Summary Obtém um plano
// @Tags planos
// @Produce json
// @Param slug path string true "Slug do plano"
// @Success 200 {object} dto.PlanResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /planos/{slug} [get]
func (c *BillingController) Plan(ctx *gin.Context) {
	plan, err := c.billingService.PlanBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondError(ctx, c.log, "planos.get", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

// Subscriptions lista as assinaturas do usuário
// @Summary Lista assinaturas
// @Tags assinaturas
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.SubscriptionResponse
// @Router /assinaturas [get]
func (c *BillingController) Subscriptions(ctx *gin.Context) {
	subs, err := c.billingService.Subscriptions(ctx.Request.Context(), auth.GetUserID(ctx))
	if err != nil {
		respondError(ctx, c.log, "assinaturas.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(subs))
}

// Subscribe assina um plano em período de teste
// @Summary Assina um plano
// @Tags assinaturas
// @Accept json
// @Produce json
// @Security Bearer
// @Param assinatura body dto.SubscribeRequest true "Plano"
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /assinaturas [post]
func (c *BillingController) Subscribe(ctx *gin.Context) {
	var request dto.SubscribeRequest
	if !bindJSON(ctx, &request) {
		return
	}

	sub, err := c.billingService.Subscribe(ctx.Request.Context(), auth.GetUserID(ctx), request.PlanID)
	if err != nil {
		respondError(ctx, c.log, "assinaturas.create", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(sub))
}

// Active retorna a assinatura ativa ou em teste
// @Summary Assinatura ativa
// @Tags assinaturas
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assinaturas/ativa [get]
func (c *BillingController) Active(ctx *gin.Context) {
	sub, err := c.billingService.Active(ctx.Request.Context(), auth.GetUserID(ctx))
	if err != nil {
		respondError(ctx, c.log, "assinaturas.active", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(sub))
}

// Cancel cancela uma assinatura
// @Summary Cancela uma assinatura
// @Tags assinaturas
// @Produce json
// @Security Bearer
// @Param id path string true "ID da assinatura"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /assinaturas/{id}/cancelar [post]
func (c *BillingController) Cancel(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	sub, err := c.billingService.Cancel(ctx.Request.Context(), auth.GetUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, "assinaturas.cancel", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(sub))
}

// Payments lista o histórico de pagamentos
// @Summary Lista pagamentos
// @Tags pagamentos
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.PaymentListResponse
// @Router /pagamentos [get]
func (c *BillingController) Payments(ctx *gin.Context) {
	p, page := pagination(ctx)
	payments, total, err := c.billingService.Payments(ctx.Request.Context(), auth.GetUserID(ctx), page)
	if err != nil {
		respondError(ctx, c.log, "pagamentos.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(payments, total, p))
}

// Payment retorna um pagamento
// @Summary Obtém um pagamento
// @Tags pagamentos
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pagamento"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pagamentos/{id} [get]
func (c *BillingController) Payment(ctx *gin.Context) {
	if !validIDs(ctx, "id") {
		return
	}

	payment, err := c.billingService.Payment(ctx.Request.Context(), auth.GetUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, "pagamentos.get", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
