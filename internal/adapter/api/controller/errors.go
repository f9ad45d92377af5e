package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
)

// respondError converte o erro do serviço no status HTTP correspondente.
// Erros não classificados são registrados e retornados como 500.
func respondError(ctx *gin.Context, log logger.Logger, operation string, err error) {
	if verr, ok := apperror.AsValidation(err); ok {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(http.StatusBadRequest, "Dados inválidos", verr.Fields))
		return
	}

	switch {
	case errors.Is(err, apperror.ErrTenantRequired):
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(http.StatusBadRequest, "Empresa não encontrada",
			map[string]string{"empresa": "cadastre uma empresa antes de continuar"}))
	case errors.Is(err, apperror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Registro não encontrado", err.Error()))
	case errors.Is(err, apperror.ErrConflict), errors.Is(err, apperror.ErrReferenced):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Conflito", err.Error()))
	case errors.Is(err, apperror.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Não autenticado", err.Error()))
	case errors.Is(err, apperror.ErrForbidden):
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Operação não permitida", err.Error()))
	default:
		log.Error("erro inesperado", "operation", operation, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro interno", "tente novamente mais tarde"))
	}
}

// bindJSON decodifica o corpo e responde 400 em caso de erro
func bindJSON(ctx *gin.Context, request interface{}) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return false
	}
	return true
}

// validIDs confere o formato UUID dos parâmetros de rota informados
func validIDs(ctx *gin.Context, params ...string) bool {
	for _, name := range params {
		if _, err := uuid.Parse(ctx.Param(name)); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "formato de ID inválido: "+name))
			return false
		}
	}
	return true
}

// pagination lê page e page_size da query string
func pagination(ctx *gin.Context) (dto.PaginationParams, service.Page) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	p := dto.GetPagination(page, pageSize)
	return p, service.Page{Limit: p.PageSize, Offset: p.Offset()}
}
