package dto

import (
	"github.com/shopspring/decimal"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse representa uma resposta simples de sucesso
type MessageResponse struct {
	Message string `json:"message"`
}

// PaginationParams representa os parâmetros de paginação
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset retorna a quantidade de registros a pular
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageInfo acompanha as respostas de listagem
type PageInfo struct {
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// GetPagination retorna parâmetros de paginação com valores padrão
func GetPagination(page, pageSize int) PaginationParams {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// NewPageInfo calcula o total de páginas da listagem
func NewPageInfo(totalCount int, p PaginationParams) PageInfo {
	return PageInfo{
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationErrorResponse cria uma resposta de erro com as mensagens por campo
func NewValidationErrorResponse(code int, message string, fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Fields:  fields,
	}
}

// calculateTotalPages calcula o número total de páginas com base no total de registros e no tamanho da página
func calculateTotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return totalPages
}

// money formata valores monetários com duas casas
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// fixed formata quantidades e custos unitários com a precisão informada
func fixed(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}
