package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
)

type recipeRepo struct{ s *Store }

func (r *recipeRepo) Create(ctx context.Context, rec *recipe.Recipe) error {
	return r.s.write(ctx, func(st *state) error {
		product, ok := st.items[rec.ProductID]
		if !ok || product.TenantID != rec.TenantID {
			return fmt.Errorf("produto acabado inexistente: %w", apperror.ErrReferenced)
		}
		for _, other := range st.recipes {
			if other.TenantID == rec.TenantID && other.ProductID == rec.ProductID {
				return recipe.ErrRecipeExists
			}
		}
		if err := checkRecipeLines(st, rec.Lines); err != nil {
			return err
		}

		header := *rec
		header.Lines = nil
		st.recipes[rec.ID] = header
		st.recipeLines[rec.ID] = slices.Clone(rec.Lines)
		return nil
	})
}

func (r *recipeRepo) FindByID(ctx context.Context, tenantID, id string) (*recipe.Recipe, error) {
	var found *recipe.Recipe
	_ = r.s.read(func(st *state) error {
		if rec, ok := st.recipes[id]; ok && rec.TenantID == tenantID {
			found = withLines(st, rec)
		}
		return nil
	})
	if found == nil {
		return nil, recipe.ErrRecipeNotFound
	}
	return found, nil
}

// LockByID equivale a FindByID: dentro de uma transação o Store já está
// serializado.
func (r *recipeRepo) LockByID(ctx context.Context, tenantID, id string) (*recipe.Recipe, error) {
	return r.FindByID(ctx, tenantID, id)
}

func (r *recipeRepo) FindByProduct(ctx context.Context, tenantID, productID string) (*recipe.Recipe, error) {
	var found *recipe.Recipe
	_ = r.s.read(func(st *state) error {
		for _, rec := range st.recipes {
			if rec.TenantID == tenantID && rec.ProductID == productID {
				found = withLines(st, rec)
				return nil
			}
		}
		return nil
	})
	if found == nil {
		return nil, recipe.ErrRecipeNotFound
	}
	return found, nil
}

func (r *recipeRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*recipe.Recipe, error) {
	var out []*recipe.Recipe
	_ = r.s.read(func(st *state) error {
		for _, rec := range st.recipes {
			if rec.TenantID == tenantID {
				out = append(out, withLines(st, rec))
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *recipe.Recipe) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.ID, b.ID))
	})
	return paginate(out, limit, offset), nil
}

func (r *recipeRepo) Count(ctx context.Context, tenantID string) (int, error) {
	count := 0
	_ = r.s.read(func(st *state) error {
		for _, rec := range st.recipes {
			if rec.TenantID == tenantID {
				count++
			}
		}
		return nil
	})
	return count, nil
}

func (r *recipeRepo) UpdateHeader(ctx context.Context, rec *recipe.Recipe) error {
	return r.s.write(ctx, func(st *state) error {
		current, ok := st.recipes[rec.ID]
		if !ok || current.TenantID != rec.TenantID {
			return recipe.ErrRecipeNotFound
		}
		for _, other := range st.recipes {
			if other.ID != rec.ID && other.TenantID == rec.TenantID && other.ProductID == rec.ProductID {
				return recipe.ErrRecipeExists
			}
		}
		header := *rec
		header.Lines = nil
		st.recipes[rec.ID] = header
		return nil
	})
}

func (r *recipeRepo) ApplyDiff(ctx context.Context, recipeID string, d recipe.Diff) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.recipes[recipeID]; !ok {
			return recipe.ErrRecipeNotFound
		}
		lines := st.recipeLines[recipeID]

		lines = slices.DeleteFunc(lines, func(l recipe.Line) bool {
			return slices.ContainsFunc(d.Removed, func(rm recipe.Line) bool { return rm.ID == l.ID })
		})
		for _, changed := range d.Changed {
			for i := range lines {
				if lines[i].ID == changed.ID {
					lines[i].Quantity = changed.Quantity
				}
			}
		}
		lines = append(lines, d.Added...)
		if err := checkRecipeLines(st, lines); err != nil {
			return err
		}

		// Mantém a ordem enviada pelo cliente
		if len(d.Result) == len(lines) {
			lines = slices.Clone(d.Result)
		}
		st.recipeLines[recipeID] = lines
		return nil
	})
}

func (r *recipeRepo) Delete(ctx context.Context, tenantID, id string) error {
	return r.s.write(ctx, func(st *state) error {
		rec, ok := st.recipes[id]
		if !ok || rec.TenantID != tenantID {
			return recipe.ErrRecipeNotFound
		}
		delete(st.recipes, id)
		delete(st.recipeLines, id)
		return nil
	})
}

func (r *recipeRepo) IsComponentInUse(ctx context.Context, tenantID, productID string) (bool, error) {
	inUse := false
	_ = r.s.read(func(st *state) error {
		inUse = componentInUse(st, productID)
		return nil
	})
	return inUse, nil
}

func (r *recipeRepo) HasRecipe(ctx context.Context, tenantID, productID string) (bool, error) {
	_, err := r.FindByProduct(ctx, tenantID, productID)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func withLines(st *state, rec recipe.Recipe) *recipe.Recipe {
	rec.Lines = slices.Clone(st.recipeLines[rec.ID])
	if rec.Lines == nil {
		rec.Lines = []recipe.Line{}
	}
	return &rec
}

func checkRecipeLines(st *state, lines []recipe.Line) error {
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if _, ok := st.items[l.ComponentID]; !ok {
			return fmt.Errorf("componente inexistente: %w", apperror.ErrReferenced)
		}
		if seen[l.ComponentID] {
			return fmt.Errorf("componente repetido na composição: %w", apperror.ErrConflict)
		}
		seen[l.ComponentID] = true
	}
	return nil
}
