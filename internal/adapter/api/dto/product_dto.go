package dto

import (
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductRequest representa os dados de criação/atualização de produto
type ProductRequest struct {
	Nome          string          `json:"nome" binding:"required"`
	CodigoSKU     string          `json:"codigo_sku"`
	Tipo          string          `json:"tipo" binding:"required"`
	UnidadeMedida string          `json:"unidade_medida"`
	PrecoCusto    decimal.Decimal `json:"preco_custo" swaggertype:"string"`
	IsActive      *bool           `json:"is_active"`
}

// ToInput converte a requisição; produtos são ativos por padrão
func (r ProductRequest) ToInput() catalog.ItemInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return catalog.ItemInput{
		Name:     r.Nome,
		SKU:      r.CodigoSKU,
		Kind:     catalog.Kind(r.Tipo),
		Unit:     r.UnidadeMedida,
		UnitCost: r.PrecoCusto,
		Active:   active,
	}
}

// ProductResponse representa a estrutura de dados de resposta de produto
type ProductResponse struct {
	ID            string    `json:"id"`
	Empresa       string    `json:"empresa"`
	Nome          string    `json:"nome"`
	CodigoSKU     string    `json:"codigo_sku"`
	Tipo          string    `json:"tipo"`
	UnidadeMedida string    `json:"unidade_medida"`
	PrecoCusto    string    `json:"preco_custo"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListResponse representa a resposta de listagem de produtos
type ProductListResponse struct {
	Produtos []ProductResponse `json:"produtos"`
	PageInfo
}

// ToProductResponse converte um modelo de domínio em uma resposta DTO
func ToProductResponse(item *catalog.Item) ProductResponse {
	return ProductResponse{
		ID:            item.ID,
		Empresa:       item.TenantID,
		Nome:          item.Name,
		CodigoSKU:     item.SKU,
		Tipo:          string(item.Kind),
		UnidadeMedida: item.Unit,
		PrecoCusto:    fixed(item.UnitCost, catalog.CostPlaces),
		IsActive:      item.Active,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para o formato de resposta
func ToProductListResponse(items []*catalog.Item, totalCount int, p PaginationParams) ProductListResponse {
	response := ProductListResponse{
		Produtos: make([]ProductResponse, len(items)),
		PageInfo: NewPageInfo(totalCount, p),
	}
	for i, item := range items {
		response.Produtos[i] = ToProductResponse(item)
	}
	return response
}
