package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
)

type catalogRepo struct{ s *Store }

func (r *catalogRepo) Create(ctx context.Context, item *catalog.Item) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.tenants[item.TenantID]; !ok {
			return fmt.Errorf("empresa inexistente: %w", apperror.ErrReferenced)
		}
		if err := checkSKUUnique(st, item); err != nil {
			return err
		}
		st.items[item.ID] = *item
		return nil
	})
}

func (r *catalogRepo) FindByID(ctx context.Context, tenantID, id string) (*catalog.Item, error) {
	var found *catalog.Item
	_ = r.s.read(func(st *state) error {
		if item, ok := st.items[id]; ok && item.TenantID == tenantID {
			found = &item
		}
		return nil
	})
	if found == nil {
		return nil, catalog.ErrItemNotFound
	}
	return found, nil
}

func (r *catalogRepo) FindByIDs(ctx context.Context, tenantID string, ids []string) (map[string]*catalog.Item, error) {
	out := make(map[string]*catalog.Item, len(ids))
	_ = r.s.read(func(st *state) error {
		for _, id := range ids {
			if item, ok := st.items[id]; ok && item.TenantID == tenantID {
				out[id] = &item
			}
		}
		return nil
	})
	return out, nil
}

func (r *catalogRepo) List(ctx context.Context, tenantID string, filter catalog.Filter, limit, offset int) ([]*catalog.Item, error) {
	items := r.filtered(tenantID, filter)
	slices.SortFunc(items, func(a, b *catalog.Item) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})
	return paginate(items, limit, offset), nil
}

func (r *catalogRepo) Count(ctx context.Context, tenantID string, filter catalog.Filter) (int, error) {
	return len(r.filtered(tenantID, filter)), nil
}

func (r *catalogRepo) filtered(tenantID string, filter catalog.Filter) []*catalog.Item {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var items []*catalog.Item
	_ = r.s.read(func(st *state) error {
		for _, item := range st.items {
			if item.TenantID != tenantID {
				continue
			}
			if filter.Kind != "" && item.Kind != filter.Kind {
				continue
			}
			if filter.Active != nil && item.Active != *filter.Active {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(item.Name), search) &&
				!strings.Contains(strings.ToLower(item.SKU), search) {
				continue
			}
			items = append(items, &item)
		}
		return nil
	})
	return items
}

func (r *catalogRepo) ExistsBySKU(ctx context.Context, tenantID, sku, excludeID string) (bool, error) {
	exists := false
	_ = r.s.read(func(st *state) error {
		for _, item := range st.items {
			if item.TenantID == tenantID && item.SKU == sku && item.ID != excludeID {
				exists = true
			}
		}
		return nil
	})
	return exists, nil
}

func (r *catalogRepo) Update(ctx context.Context, item *catalog.Item) error {
	return r.s.write(ctx, func(st *state) error {
		current, ok := st.items[item.ID]
		if !ok || current.TenantID != item.TenantID {
			return catalog.ErrItemNotFound
		}
		if err := checkSKUUnique(st, item); err != nil {
			return err
		}
		st.items[item.ID] = *item
		return nil
	})
}

// Delete remove o item. Assim como as chaves estrangeiras do esquema,
// recusa itens usados como componente ou em orçamentos e remove em cascata
// a composição da qual o item é o produto acabado.
func (r *catalogRepo) Delete(ctx context.Context, tenantID, id string) error {
	return r.s.write(ctx, func(st *state) error {
		item, ok := st.items[id]
		if !ok || item.TenantID != tenantID {
			return catalog.ErrItemNotFound
		}
		if componentInUse(st, id) || productInQuotes(st, id) {
			return catalog.ErrItemReferenced
		}
		for recipeID, rec := range st.recipes {
			if rec.ProductID == id {
				delete(st.recipes, recipeID)
				delete(st.recipeLines, recipeID)
			}
		}
		delete(st.items, id)
		return nil
	})
}

func checkSKUUnique(st *state, item *catalog.Item) error {
	if item.SKU == "" {
		return nil
	}
	for _, other := range st.items {
		if other.ID != item.ID && other.TenantID == item.TenantID && other.SKU == item.SKU {
			return fmt.Errorf("SKU já cadastrado: %w", apperror.ErrConflict)
		}
	}
	return nil
}

func componentInUse(st *state, productID string) bool {
	for _, lines := range st.recipeLines {
		for _, l := range lines {
			if l.ComponentID == productID {
				return true
			}
		}
	}
	return false
}

func productInQuotes(st *state, productID string) bool {
	for _, q := range st.quotes {
		if q.ProductID == productID {
			return true
		}
	}
	for _, lines := range st.materials {
		for _, l := range lines {
			if l.ComponentID == productID {
				return true
			}
		}
	}
	return false
}
