package dto

import (
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest representa os dados de criação do orçamento
type CreateQuoteRequest struct {
	ProdutoBase           string           `json:"produto_base" binding:"required"`
	Descricao             string           `json:"descricao"`
	Quantidade            *decimal.Decimal `json:"quantidade" swaggertype:"string"`
	MargemLucroPercentual *decimal.Decimal `json:"margem_lucro_percentual" swaggertype:"string"`
	UsarComposicao        *bool            `json:"usar_composicao"`
}

// UseRecipe informa se a composição do produto base deve ser copiada;
// verdadeiro quando omitido
func (r CreateQuoteRequest) UseRecipe() bool {
	return r.UsarComposicao == nil || *r.UsarComposicao
}

// UpdateQuoteRequest representa a alteração do cabeçalho. Campos ausentes
// não são alterados.
type UpdateQuoteRequest struct {
	Descricao             *string          `json:"descricao"`
	Quantidade            *decimal.Decimal `json:"quantidade" swaggertype:"string"`
	Status                *string          `json:"status"`
	MargemLucroPercentual *decimal.Decimal `json:"margem_lucro_percentual" swaggertype:"string"`
}

// ToInput converte a requisição para o domínio
func (r UpdateQuoteRequest) ToInput() quote.HeaderInput {
	in := quote.HeaderInput{
		Description: r.Descricao,
		Quantity:    r.Quantidade,
		Margin:      r.MargemLucroPercentual,
	}
	if r.Status != nil {
		status := quote.Status(*r.Status)
		in.Status = &status
	}
	return in
}

// FinalPriceRequest define o preço final manual; null volta ao preço calculado
type FinalPriceRequest struct {
	PrecoVendaFinal *decimal.Decimal `json:"preco_venda_final" swaggertype:"string"`
}

// MaterialLineRequest representa um item de produto do orçamento
type MaterialLineRequest struct {
	Componente    string           `json:"componente" binding:"required"`
	Descricao     string           `json:"descricao"`
	Quantidade    decimal.Decimal  `json:"quantidade" swaggertype:"string"`
	CustoUnitario *decimal.Decimal `json:"custo_unitario" swaggertype:"string"`
}

// ProcessLineRequest representa um item de processo (mão de obra)
type ProcessLineRequest struct {
	Descricao string          `json:"descricao" binding:"required"`
	Horas     decimal.Decimal `json:"horas" swaggertype:"string"`
	CustoHora decimal.Decimal `json:"custo_hora" swaggertype:"string"`
}

// ToInput converte a requisição
func (r ProcessLineRequest) ToInput() quote.ProcessInput {
	return quote.ProcessInput{Description: r.Descricao, Hours: r.Horas, HourlyRate: r.CustoHora}
}

// FeeLineRequest representa uma despesa ou imposto
type FeeLineRequest struct {
	Descricao   string          `json:"descricao" binding:"required"`
	Tipo        string          `json:"tipo"`
	BaseCalculo string          `json:"base_calculo"`
	Valor       decimal.Decimal `json:"valor" swaggertype:"string"`
}

// ToInput converte a requisição. Tipo e base ausentes assumem percentual
// sobre o custo.
func (r FeeLineRequest) ToInput() quote.FeeInput {
	in := quote.FeeInput{
		Description: r.Descricao,
		Kind:        quote.FeeKind(r.Tipo),
		Base:        quote.FeeBase(r.BaseCalculo),
		Value:       r.Valor,
	}
	if in.Kind == "" {
		in.Kind = quote.FeePercentage
	}
	if in.Base == "" {
		in.Base = quote.BaseCost
	}
	return in
}

// MaterialLineResponse representa um item de produto do orçamento
type MaterialLineResponse struct {
	ID             string `json:"id"`
	Componente     string `json:"componente"`
	Descricao      string `json:"descricao"`
	Quantidade     string `json:"quantidade"`
	CustoUnitario  string `json:"custo_unitario"`
	CustoTotalItem string `json:"custo_total_item"`
}

// ProcessLineResponse representa um item de processo
type ProcessLineResponse struct {
	ID             string `json:"id"`
	Descricao      string `json:"descricao"`
	Horas          string `json:"horas"`
	CustoHora      string `json:"custo_hora"`
	CustoTotalItem string `json:"custo_total_item"`
}

// FeeLineResponse representa uma despesa ou imposto
type FeeLineResponse struct {
	ID             string `json:"id"`
	Descricao      string `json:"descricao"`
	Tipo           string `json:"tipo"`
	BaseCalculo    string `json:"base_calculo"`
	Valor          string `json:"valor"`
	CustoTotalItem string `json:"custo_total_item"`
}

// QuoteResponse representa o orçamento com as três abas e os totais
type QuoteResponse struct {
	ID                         string                 `json:"id"`
	Empresa                    string                 `json:"empresa"`
	ProdutoBase                string                 `json:"produto_base"`
	Descricao                  string                 `json:"descricao"`
	Quantidade                 string                 `json:"quantidade"`
	Status                     string                 `json:"status"`
	MargemLucroPercentual      string                 `json:"margem_lucro_percentual"`
	CustoAdicionalFixo         string                 `json:"custo_adicional_fixo"`
	CustoTotalMateriasPrimas   string                 `json:"custo_total_materias_primas"`
	CustoTotalProcessos        string                 `json:"custo_total_processos"`
	CustoTotalDespesasImpostos string                 `json:"custo_total_despesas_impostos"`
	CustoTotalProducao         string                 `json:"custo_total_producao"`
	PrecoVendaCalculado        string                 `json:"preco_venda_calculado"`
	PrecoVendaFinal            string                 `json:"preco_venda_final"`
	PrecoVendaFinalManual      bool                   `json:"preco_venda_final_manual"`
	ItensProduto               []MaterialLineResponse `json:"itens_produto"`
	ItensProcesso              []ProcessLineResponse  `json:"itens_processo"`
	ItensDespesaImposto        []FeeLineResponse      `json:"itens_despesa_imposto"`
	CreatedAt                  time.Time              `json:"created_at"`
	UpdatedAt                  time.Time              `json:"updated_at"`
}

// QuoteListResponse representa a resposta de listagem de orçamentos
type QuoteListResponse struct {
	Orcamentos []QuoteResponse `json:"orcamentos"`
	PageInfo
}

// ToQuoteResponse converte um modelo de domínio em uma resposta DTO
func ToQuoteResponse(q *quote.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:                         q.ID,
		Empresa:                    q.TenantID,
		ProdutoBase:                q.ProductID,
		Descricao:                  q.Description,
		Quantidade:                 fixed(q.Quantity, quote.QuantityPlaces),
		Status:                     string(q.Status),
		MargemLucroPercentual:      fixed(q.Margin, quote.MarginPlaces),
		CustoAdicionalFixo:         money(q.FixedCost),
		CustoTotalMateriasPrimas:   money(q.Totals.Materials),
		CustoTotalProcessos:        money(q.Totals.Processes),
		CustoTotalDespesasImpostos: money(q.Totals.Fees),
		CustoTotalProducao:         money(q.Totals.ProductionCost),
		PrecoVendaCalculado:        money(q.Totals.ComputedPrice),
		PrecoVendaFinal:            money(q.Totals.FinalPrice),
		PrecoVendaFinalManual:      q.FinalPriceManual,
		ItensProduto:               make([]MaterialLineResponse, len(q.Materials)),
		ItensProcesso:              make([]ProcessLineResponse, len(q.Processes)),
		ItensDespesaImposto:        make([]FeeLineResponse, len(q.Fees)),
		CreatedAt:                  q.CreatedAt,
		UpdatedAt:                  q.UpdatedAt,
	}
	for i, l := range q.Materials {
		resp.ItensProduto[i] = MaterialLineResponse{
			ID:             l.ID,
			Componente:     l.ComponentID,
			Descricao:      l.Description,
			Quantidade:     fixed(l.Quantity, quote.LineQuantityPlaces),
			CustoUnitario:  fixed(l.UnitCost, quote.UnitCostPlaces),
			CustoTotalItem: money(l.Total),
		}
	}
	for i, l := range q.Processes {
		resp.ItensProcesso[i] = ProcessLineResponse{
			ID:             l.ID,
			Descricao:      l.Description,
			Horas:          fixed(l.Hours, quote.HoursPlaces),
			CustoHora:      fixed(l.HourlyRate, quote.HourlyRatePlaces),
			CustoTotalItem: money(l.Total),
		}
	}
	for i, l := range q.Fees {
		resp.ItensDespesaImposto[i] = FeeLineResponse{
			ID:             l.ID,
			Descricao:      l.Description,
			Tipo:           string(l.Kind),
			BaseCalculo:    string(l.Base),
			Valor:          fixed(l.Value, quote.FeeValuePlaces),
			CustoTotalItem: money(l.Total),
		}
	}
	return resp
}

// ToQuoteListResponse converte uma lista de orçamentos para o formato de resposta
func ToQuoteListResponse(quotes []*quote.Quote, totalCount int, p PaginationParams) QuoteListResponse {
	response := QuoteListResponse{
		Orcamentos: make([]QuoteResponse, len(quotes)),
		PageInfo:   NewPageInfo(totalCount, p),
	}
	for i, q := range quotes {
		response.Orcamentos[i] = ToQuoteResponse(q)
	}
	return response
}
