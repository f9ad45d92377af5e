package dto

import (
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/shopspring/decimal"
)

// RecipeLineRequest representa um ingrediente da composição
type RecipeLineRequest struct {
	Componente string          `json:"componente" binding:"required"`
	Quantidade decimal.Decimal `json:"quantidade" swaggertype:"string"`
}

// RecipeRequest representa a composição com o conjunto completo de itens.
// Na atualização, itens ausentes mantêm as linhas atuais.
type RecipeRequest struct {
	ProdutoAcabado     string               `json:"produto_acabado"`
	Descricao          string               `json:"descricao"`
	CustoAdicionalFixo decimal.Decimal      `json:"custo_adicional_fixo" swaggertype:"string"`
	Itens              *[]RecipeLineRequest `json:"itens"`
}

// ToInput converte a requisição para o domínio
func (r RecipeRequest) ToInput() recipe.Input {
	in := recipe.Input{
		ProductID:   r.ProdutoAcabado,
		Description: r.Descricao,
		FixedCost:   r.CustoAdicionalFixo,
	}
	if r.Itens != nil {
		in.ReplaceLines = true
		in.Lines = make([]recipe.LineInput, len(*r.Itens))
		for i, li := range *r.Itens {
			in.Lines[i] = recipe.LineInput{ComponentID: li.Componente, Quantity: li.Quantidade}
		}
	}
	return in
}

// RecipeLineResponse representa um item da composição
type RecipeLineResponse struct {
	ID         string `json:"id"`
	Componente string `json:"componente"`
	Quantidade string `json:"quantidade"`
}

// RecipeResponse representa a estrutura de dados de resposta da composição
type RecipeResponse struct {
	ID                 string               `json:"id"`
	Empresa            string               `json:"empresa"`
	ProdutoAcabado     string               `json:"produto_acabado"`
	Descricao          string               `json:"descricao"`
	CustoAdicionalFixo string               `json:"custo_adicional_fixo"`
	Itens              []RecipeLineResponse `json:"itens"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// RecipeListResponse representa a resposta de listagem de composições
type RecipeListResponse struct {
	Composicoes []RecipeResponse `json:"composicoes"`
	PageInfo
}

// RecipeCostResponse representa o custo unitário calculado da composição
type RecipeCostResponse struct {
	Composicao     string `json:"composicao"`
	ProdutoAcabado string `json:"produto_acabado"`
	CustoUnitario  string `json:"custo_unitario"`
}

// ToRecipeResponse converte um modelo de domínio em uma resposta DTO
func ToRecipeResponse(r *recipe.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:                 r.ID,
		Empresa:            r.TenantID,
		ProdutoAcabado:     r.ProductID,
		Descricao:          r.Description,
		CustoAdicionalFixo: money(r.FixedCost),
		Itens:              make([]RecipeLineResponse, len(r.Lines)),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	for i, l := range r.Lines {
		resp.Itens[i] = RecipeLineResponse{
			ID:         l.ID,
			Componente: l.ComponentID,
			Quantidade: fixed(l.Quantity, recipe.QuantityPlaces),
		}
	}
	return resp
}

// ToRecipeListResponse converte uma lista de composições para o formato de resposta
func ToRecipeListResponse(recipes []*recipe.Recipe, totalCount int, p PaginationParams) RecipeListResponse {
	response := RecipeListResponse{
		Composicoes: make([]RecipeResponse, len(recipes)),
		PageInfo:    NewPageInfo(totalCount, p),
	}
	for i, r := range recipes {
		response.Composicoes[i] = ToRecipeResponse(r)
	}
	return response
}

// ToRecipeCostResponse monta a resposta de custo
func ToRecipeCostResponse(r *recipe.Recipe, cost decimal.Decimal) RecipeCostResponse {
	return RecipeCostResponse{
		Composicao:     r.ID,
		ProdutoAcabado: r.ProductID,
		CustoUnitario:  money(cost),
	}
}
