package quote

import (
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/shopspring/decimal"
)

// Rollup recalcula os totais das linhas e do orçamento.
//
// Despesas percentuais sobre o preço de venda dependem do próprio preço, que
// depende das despesas. A dependência é resolvida em duas fases, sem
// iteração: primeiro as despesas fixas e as percentuais sobre o custo, que
// definem um preço provisório; depois as percentuais sobre a venda, aplicadas
// sobre esse preço provisório. O resultado é uma aproximação de passo único,
// não a solução exata do sistema.
//
// Os arredondamentos acontecem apenas nos campos gravados; as somas usam os
// valores exatos de cada linha. O preço final só acompanha o calculado
// enquanto não foi definido manualmente.
func (q *Quote) Rollup() error {
	if err := validateMargin(q.Margin); err != nil {
		return apperror.Invalid("margem_lucro_percentual", err.Error())
	}

	materials := decimal.Zero
	for i := range q.Materials {
		l := &q.Materials[i]
		total := l.Quantity.Mul(l.UnitCost)
		materials = materials.Add(total)
		l.Total = total.Round(TotalPlaces)
	}

	processes := decimal.Zero
	for i := range q.Processes {
		l := &q.Processes[i]
		total := l.Hours.Mul(l.HourlyRate)
		processes = processes.Add(total)
		l.Total = total.Round(TotalPlaces)
	}

	base := materials.Add(processes).Add(q.FixedCost)

	// Fase 1: despesas fixas e percentuais sobre o custo
	phaseOne := decimal.Zero
	for i := range q.Fees {
		l := &q.Fees[i]
		var total decimal.Decimal
		switch {
		case l.Kind == FeeFixed:
			total = l.Value
		case l.Base == BaseCost:
			total = l.Value.Div(hundred).Mul(base)
		default:
			continue
		}
		phaseOne = phaseOne.Add(total)
		l.Total = total.Round(TotalPlaces)
	}

	provisional := salePrice(base.Add(phaseOne), q.Margin)

	// Fase 2: despesas percentuais sobre o preço de venda provisório
	phaseTwo := decimal.Zero
	for i := range q.Fees {
		l := &q.Fees[i]
		if l.Kind != FeePercentage || l.Base != BaseSale {
			continue
		}
		total := l.Value.Div(hundred).Mul(provisional)
		phaseTwo = phaseTwo.Add(total)
		l.Total = total.Round(TotalPlaces)
	}

	fees := phaseOne.Add(phaseTwo)
	production := base.Add(fees)
	computed := salePrice(production, q.Margin)

	q.Totals.Materials = materials.Round(TotalPlaces)
	q.Totals.Processes = processes.Round(TotalPlaces)
	q.Totals.Fees = fees.Round(TotalPlaces)
	q.Totals.ProductionCost = production.Round(TotalPlaces)
	q.Totals.ComputedPrice = computed.Round(TotalPlaces)
	if !q.FinalPriceManual {
		q.Totals.FinalPrice = q.Totals.ComputedPrice
	}
	return nil
}

// salePrice aplica a margem sobre o custo: custo / (1 - m/100)
func salePrice(cost, margin decimal.Decimal) decimal.Decimal {
	return cost.Mul(hundred).Div(hundred.Sub(margin))
}
