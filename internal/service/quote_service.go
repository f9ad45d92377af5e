package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// QuoteExporter gera a planilha de um orçamento
type QuoteExporter interface {
	Quote(q *quote.Quote, product *catalog.Item) ([]byte, error)
}

// CreateQuoteInput contém os dados de criação. UseRecipe copia a composição
// do produto base, quando existir.
type CreateQuoteInput struct {
	quote.NewInput
	UseRecipe bool
}

// MaterialInput é um item de produto do orçamento. Descrição vazia usa o
// nome do componente e UnitCost nil usa o custo atual do catálogo.
type MaterialInput struct {
	ComponentID string
	Description string
	Quantity    decimal.Decimal
	UnitCost    *decimal.Decimal
}

// QuoteService gerencia orçamentos. Toda alteração roda numa transação que
// termina com o recálculo dos totais.
type QuoteService struct {
	tx       Transactor
	quotes   quote.Repository
	recipes  recipe.Repository
	items    catalog.Repository
	exporter QuoteExporter
	log      logger.Logger
}

// NewQuoteService cria uma nova instância de QuoteService
func NewQuoteService(tx Transactor, quotes quote.Repository, recipes recipe.Repository, items catalog.Repository, exporter QuoteExporter, log logger.Logger) *QuoteService {
	return &QuoteService{tx: tx, quotes: quotes, recipes: recipes, items: items, exporter: exporter, log: log}
}

// List lista os orçamentos da empresa, mais recentes primeiro
func (s *QuoteService) List(ctx context.Context, tenantID string, filter quote.Filter, page Page) ([]*quote.Quote, int, error) {
	if tenantID == "" {
		return []*quote.Quote{}, 0, nil
	}
	quotes, err := s.quotes.List(ctx, tenantID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.quotes.Count(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	return quotes, total, nil
}

// Get busca um orçamento com todas as linhas
func (s *QuoteService) Get(ctx context.Context, tenantID, id string) (*quote.Quote, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	return s.quotes.FindByID(ctx, tenantID, id)
}

// Create cria um orçamento em rascunho para um produto da empresa,
// copiando a composição do produto quando solicitado
func (s *QuoteService) Create(ctx context.Context, tenantID string, in CreateQuoteInput) (*quote.Quote, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}

	var out *quote.Quote
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if in.ProductID != "" {
			if _, err := s.items.FindByID(ctx, tenantID, in.ProductID); err != nil {
				if errors.Is(err, apperror.ErrNotFound) {
					return apperror.Invalid("produto_base", "produto não encontrado na empresa")
				}
				return err
			}
		}

		var rec *recipe.Recipe
		components := map[string]*catalog.Item{}
		if in.UseRecipe && in.ProductID != "" {
			found, err := s.recipes.FindByProduct(ctx, tenantID, in.ProductID)
			switch {
			case err == nil:
				rec = found
				components, err = s.items.FindByIDs(ctx, tenantID, rec.ComponentIDs())
				if err != nil {
					return err
				}
			case !errors.Is(err, apperror.ErrNotFound):
				return err
			}
		}

		q, err := quote.New(tenantID, in.NewInput, rec, components)
		if err != nil {
			return err
		}
		if err := s.quotes.Create(ctx, q); err != nil {
			return err
		}
		out = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("orçamento criado", "quote_id", out.ID, "itens_copiados", len(out.Materials))
	return out, nil
}

// Update altera o cabeçalho do orçamento
func (s *QuoteService) Update(ctx context.Context, tenantID, id string, in quote.HeaderInput) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, id, func(ctx context.Context, q *quote.Quote) error {
		if err := q.ApplyHeader(in); err != nil {
			return err
		}
		return s.quotes.UpdateHeader(ctx, q)
	})
}

// SetFinalPrice define o preço final manualmente ou, com nil, volta a
// acompanhar o preço calculado
func (s *QuoteService) SetFinalPrice(ctx context.Context, tenantID, id string, price *decimal.Decimal) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, id, func(ctx context.Context, q *quote.Quote) error {
		if err := q.SetFinalPrice(price); err != nil {
			return err
		}
		return s.quotes.UpdateHeader(ctx, q)
	})
}

// Recalculate executa o recálculo dos totais sem outra alteração
func (s *QuoteService) Recalculate(ctx context.Context, tenantID, id string) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, id, func(context.Context, *quote.Quote) error { return nil })
}

// Delete exclui o orçamento e suas linhas
func (s *QuoteService) Delete(ctx context.Context, tenantID, id string) error {
	if err := requireTenant(tenantID); err != nil {
		return err
	}
	return s.quotes.Delete(ctx, tenantID, id)
}

// AddMaterial inclui um item de produto
func (s *QuoteService) AddMaterial(ctx context.Context, tenantID, quoteID string, in MaterialInput) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		if err := q.EnsureEditable(); err != nil {
			return err
		}
		mi, err := s.materialInput(ctx, tenantID, in)
		if err != nil {
			return err
		}
		line, err := q.AddMaterial(mi)
		if err != nil {
			return err
		}
		return s.quotes.AddMaterial(ctx, line)
	})
}

// UpdateMaterial altera um item de produto
func (s *QuoteService) UpdateMaterial(ctx context.Context, tenantID, quoteID, lineID string, in MaterialInput) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		if err := q.EnsureEditable(); err != nil {
			return err
		}
		if _, ok := q.FindMaterial(lineID); !ok {
			return quote.ErrLineNotFound
		}
		mi, err := s.materialInput(ctx, tenantID, in)
		if err != nil {
			return err
		}
		line, err := q.UpdateMaterial(lineID, mi)
		if err != nil {
			return err
		}
		return s.quotes.UpdateMaterial(ctx, line)
	})
}

// RemoveMaterial remove um item de produto
func (s *QuoteService) RemoveMaterial(ctx context.Context, tenantID, quoteID, lineID string) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		if err := q.RemoveMaterial(lineID); err != nil {
			return err
		}
		return s.quotes.DeleteMaterial(ctx, q.ID, lineID)
	})
}

// AddProcess inclui um processo
func (s *QuoteService) AddProcess(ctx context.Context, tenantID, quoteID string, in quote.ProcessInput) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		line, err := q.AddProcess(in)
		if err != nil {
			return err
		}
		return s.quotes.AddProcess(ctx, line)
	})
}

// UpdateProcess altera um processo
func (s *QuoteService) UpdateProcess(ctx context.Context, tenantID, quoteID, lineID string, in quote.ProcessInput) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		line, err := q.UpdateProcess(lineID, in)
		if err != nil {
			return err
		}
		return s.quotes.UpdateProcess(ctx, line)
	})
}

// RemoveProcess remove um processo
func (s *QuoteService) RemoveProcess(ctx context.Context, tenantID, quoteID, lineID string) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		if err := q.RemoveProcess(lineID); err != nil {
			return err
		}
		return s.quotes.DeleteProcess(ctx, q.ID, lineID)
	})
}

// AddFee inclui uma despesa ou imposto
func (s *QuoteService) AddFee(ctx context.Context, tenantID, quoteID string, in quote.FeeInput) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		line, err := q.AddFee(in)
		if err != nil {
			return err
		}
		return s.quotes.AddFee(ctx, line)
	})
}

// UpdateFee altera uma despesa ou imposto
func (s *QuoteService) UpdateFee(ctx context.Context, tenantID, quoteID, lineID string, in quote.FeeInput) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		line, err := q.UpdateFee(lineID, in)
		if err != nil {
			return err
		}
		return s.quotes.UpdateFee(ctx, line)
	})
}

// RemoveFee remove uma despesa ou imposto
func (s *QuoteService) RemoveFee(ctx context.Context, tenantID, quoteID, lineID string) (*quote.Quote, error) {
	return s.mutate(ctx, tenantID, quoteID, func(ctx context.Context, q *quote.Quote) error {
		if err := q.RemoveFee(lineID); err != nil {
			return err
		}
		return s.quotes.DeleteFee(ctx, q.ID, lineID)
	})
}

// Export gera a planilha do orçamento
func (s *QuoteService) Export(ctx context.Context, tenantID, id string) (*quote.Quote, []byte, error) {
	q, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	product, err := s.items.FindByID(ctx, tenantID, q.ProductID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.exporter.Quote(q, product)
	if err != nil {
		return nil, nil, err
	}
	return q, data, nil
}

// mutate bloqueia o orçamento, aplica fn e grava os totais recalculados,
// tudo na mesma transação
func (s *QuoteService) mutate(ctx context.Context, tenantID, id string, fn func(ctx context.Context, q *quote.Quote) error) (*quote.Quote, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}

	var out *quote.Quote
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		q, err := s.quotes.LockByID(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, q); err != nil {
			return err
		}
		if err := q.Rollup(); err != nil {
			return err
		}
		if err := s.quotes.SaveTotals(ctx, q); err != nil {
			return err
		}
		out = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("orçamento recalculado", "quote_id", out.ID,
		"custo_total_producao", out.Totals.ProductionCost.StringFixed(2),
		"preco_venda_final", out.Totals.FinalPrice.StringFixed(2))
	return out, nil
}

// materialInput completa descrição e custo com os dados do componente, que
// deve pertencer à empresa
func (s *QuoteService) materialInput(ctx context.Context, tenantID string, in MaterialInput) (quote.MaterialInput, error) {
	out := quote.MaterialInput{
		ComponentID: in.ComponentID,
		Description: in.Description,
		Quantity:    in.Quantity,
	}
	if in.UnitCost != nil {
		out.UnitCost = *in.UnitCost
	}
	if in.ComponentID == "" {
		return out, nil
	}

	item, err := s.items.FindByID(ctx, tenantID, in.ComponentID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return out, apperror.Invalid("componente", "componente não encontrado na empresa")
		}
		return out, err
	}
	if strings.TrimSpace(out.Description) == "" {
		out.Description = item.Name
	}
	if in.UnitCost == nil {
		out.UnitCost = item.UnitCost
	}
	return out, nil
}
