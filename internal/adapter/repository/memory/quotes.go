package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
)

type quoteRepo struct{ s *Store }

func (r *quoteRepo) Create(ctx context.Context, q *quote.Quote) error {
	return r.s.write(ctx, func(st *state) error {
		product, ok := st.items[q.ProductID]
		if !ok || product.TenantID != q.TenantID {
			return fmt.Errorf("produto base inexistente: %w", apperror.ErrReferenced)
		}
		for _, l := range q.Materials {
			if _, ok := st.items[l.ComponentID]; !ok {
				return fmt.Errorf("componente inexistente: %w", apperror.ErrReferenced)
			}
		}
		st.quotes[q.ID] = header(q)
		st.materials[q.ID] = slices.Clone(q.Materials)
		st.processes[q.ID] = slices.Clone(q.Processes)
		st.fees[q.ID] = slices.Clone(q.Fees)
		return nil
	})
}

func (r *quoteRepo) FindByID(ctx context.Context, tenantID, id string) (*quote.Quote, error) {
	var found *quote.Quote
	_ = r.s.read(func(st *state) error {
		if q, ok := st.quotes[id]; ok && q.TenantID == tenantID {
			q.Materials = slices.Clone(st.materials[id])
			q.Processes = slices.Clone(st.processes[id])
			q.Fees = slices.Clone(st.fees[id])
			found = &q
		}
		return nil
	})
	if found == nil {
		return nil, quote.ErrQuoteNotFound
	}
	return found, nil
}

// LockByID equivale a FindByID: dentro de uma transação o Store já está
// serializado.
func (r *quoteRepo) LockByID(ctx context.Context, tenantID, id string) (*quote.Quote, error) {
	return r.FindByID(ctx, tenantID, id)
}

func (r *quoteRepo) List(ctx context.Context, tenantID string, filter quote.Filter, limit, offset int) ([]*quote.Quote, error) {
	quotes := r.filtered(tenantID, filter)
	slices.SortFunc(quotes, func(a, b *quote.Quote) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID, b.ID))
	})
	return paginate(quotes, limit, offset), nil
}

func (r *quoteRepo) Count(ctx context.Context, tenantID string, filter quote.Filter) (int, error) {
	return len(r.filtered(tenantID, filter)), nil
}

func (r *quoteRepo) filtered(tenantID string, filter quote.Filter) []*quote.Quote {
	var out []*quote.Quote
	_ = r.s.read(func(st *state) error {
		for _, q := range st.quotes {
			if q.TenantID != tenantID {
				continue
			}
			if filter.Status != "" && q.Status != filter.Status {
				continue
			}
			out = append(out, &q)
		}
		return nil
	})
	return out
}

func (r *quoteRepo) UpdateHeader(ctx context.Context, q *quote.Quote) error {
	return r.updateStored(ctx, q.TenantID, q.ID, func(stored *quote.Quote) {
		stored.Description = q.Description
		stored.Quantity = q.Quantity
		stored.Status = q.Status
		stored.Margin = q.Margin
		stored.FinalPriceManual = q.FinalPriceManual
		stored.UpdatedAt = q.UpdatedAt
	})
}

func (r *quoteRepo) SaveTotals(ctx context.Context, q *quote.Quote) error {
	return r.s.write(ctx, func(st *state) error {
		stored, ok := st.quotes[q.ID]
		if !ok || stored.TenantID != q.TenantID {
			return quote.ErrQuoteNotFound
		}
		stored.Totals = q.Totals
		stored.UpdatedAt = q.UpdatedAt
		st.quotes[q.ID] = stored

		setTotals(st.materials[q.ID], q.Materials, func(l quote.MaterialLine) string { return l.ID },
			func(dst *quote.MaterialLine, src quote.MaterialLine) { dst.Total = src.Total })
		setTotals(st.processes[q.ID], q.Processes, func(l quote.ProcessLine) string { return l.ID },
			func(dst *quote.ProcessLine, src quote.ProcessLine) { dst.Total = src.Total })
		setTotals(st.fees[q.ID], q.Fees, func(l quote.FeeLine) string { return l.ID },
			func(dst *quote.FeeLine, src quote.FeeLine) { dst.Total = src.Total })
		return nil
	})
}

func (r *quoteRepo) Delete(ctx context.Context, tenantID, id string) error {
	return r.s.write(ctx, func(st *state) error {
		q, ok := st.quotes[id]
		if !ok || q.TenantID != tenantID {
			return quote.ErrQuoteNotFound
		}
		delete(st.quotes, id)
		delete(st.materials, id)
		delete(st.processes, id)
		delete(st.fees, id)
		return nil
	})
}

func (r *quoteRepo) IsProductInUse(ctx context.Context, tenantID, productID string) (bool, error) {
	inUse := false
	_ = r.s.read(func(st *state) error {
		inUse = productInQuotes(st, productID)
		return nil
	})
	return inUse, nil
}

func (r *quoteRepo) AddMaterial(ctx context.Context, l *quote.MaterialLine) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.quotes[l.QuoteID]; !ok {
			return quote.ErrQuoteNotFound
		}
		if _, ok := st.items[l.ComponentID]; !ok {
			return fmt.Errorf("componente inexistente: %w", apperror.ErrReferenced)
		}
		st.materials[l.QuoteID] = append(st.materials[l.QuoteID], *l)
		return nil
	})
}

func (r *quoteRepo) UpdateMaterial(ctx context.Context, l *quote.MaterialLine) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.items[l.ComponentID]; !ok {
			return fmt.Errorf("componente inexistente: %w", apperror.ErrReferenced)
		}
		return replaceLine(st.materials[l.QuoteID], *l, func(x quote.MaterialLine) string { return x.ID })
	})
}

func (r *quoteRepo) DeleteMaterial(ctx context.Context, quoteID, id string) error {
	return r.s.write(ctx, func(st *state) error {
		lines, err := removeLine(st.materials[quoteID], id, func(x quote.MaterialLine) string { return x.ID })
		if err != nil {
			return err
		}
		st.materials[quoteID] = lines
		return nil
	})
}

func (r *quoteRepo) AddProcess(ctx context.Context, l *quote.ProcessLine) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.quotes[l.QuoteID]; !ok {
			return quote.ErrQuoteNotFound
		}
		st.processes[l.QuoteID] = append(st.processes[l.QuoteID], *l)
		return nil
	})
}

func (r *quoteRepo) UpdateProcess(ctx context.Context, l *quote.ProcessLine) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceLine(st.processes[l.QuoteID], *l, func(x quote.ProcessLine) string { return x.ID })
	})
}

func (r *quoteRepo) DeleteProcess(ctx context.Context, quoteID, id string) error {
	return r.s.write(ctx, func(st *state) error {
		lines, err := removeLine(st.processes[quoteID], id, func(x quote.ProcessLine) string { return x.ID })
		if err != nil {
			return err
		}
		st.processes[quoteID] = lines
		return nil
	})
}

func (r *quoteRepo) AddFee(ctx context.Context, l *quote.FeeLine) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.quotes[l.QuoteID]; !ok {
			return quote.ErrQuoteNotFound
		}
		st.fees[l.QuoteID] = append(st.fees[l.QuoteID], *l)
		return nil
	})
}

func (r *quoteRepo) UpdateFee(ctx context.Context, l *quote.FeeLine) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceLine(st.fees[l.QuoteID], *l, func(x quote.FeeLine) string { return x.ID })
	})
}

func (r *quoteRepo) DeleteFee(ctx context.Context, quoteID, id string) error {
	return r.s.write(ctx, func(st *state) error {
		lines, err := removeLine(st.fees[quoteID], id, func(x quote.FeeLine) string { return x.ID })
		if err != nil {
			return err
		}
		st.fees[quoteID] = lines
		return nil
	})
}

func (r *quoteRepo) updateStored(ctx context.Context, tenantID, id string, fn func(stored *quote.Quote)) error {
	return r.s.write(ctx, func(st *state) error {
		stored, ok := st.quotes[id]
		if !ok || stored.TenantID != tenantID {
			return quote.ErrQuoteNotFound
		}
		fn(&stored)
		st.quotes[id] = stored
		return nil
	})
}

func header(q *quote.Quote) quote.Quote {
	h := *q
	h.Materials, h.Processes, h.Fees = nil, nil, nil
	return h
}

func replaceLine[T any](lines []T, line T, id func(T) string) error {
	for i := range lines {
		if id(lines[i]) == id(line) {
			lines[i] = line
			return nil
		}
	}
	return quote.ErrLineNotFound
}

func removeLine[T any](lines []T, lineID string, id func(T) string) ([]T, error) {
	for i := range lines {
		if id(lines[i]) == lineID {
			return slices.Delete(lines, i, i+1), nil
		}
	}
	return lines, quote.ErrLineNotFound
}

func setTotals[T any](stored, computed []T, id func(T) string, set func(dst *T, src T)) {
	byID := make(map[string]T, len(computed))
	for _, l := range computed {
		byID[id(l)] = l
	}
	for i := range stored {
		if src, ok := byID[id(stored[i])]; ok {
			set(&stored[i], src)
		}
	}
}
