package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, empresa_id, nome, codigo_sku, tipo, unidade_medida, preco_custo,
	is_active, created_at, updated_at`

// ProductRepository implementa a interface catalog.Repository sobre a tabela produtos
type ProductRepository struct {
	db *database.PostgresDB
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *database.PostgresDB) catalog.Repository {
	return &ProductRepository{db: db}
}

// Create implementa catalog.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, item *catalog.Item) error {
	_, err := r.db.Querier(ctx).Exec(ctx,
		`INSERT INTO produtos (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.TenantID, item.Name, item.SKU, item.Kind, item.Unit, item.UnitCost,
		item.Active, item.CreatedAt, item.UpdatedAt)
	return translateError(err, "criar produto", nil)
}

// FindByID implementa catalog.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, tenantID, id string) (*catalog.Item, error) {
	row := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+productColumns+` FROM produtos WHERE empresa_id = $1 AND id = $2`,
		tenantID, id)
	item, err := scanProduct(row)
	if err != nil {
		return nil, translateError(err, "buscar produto", catalog.ErrItemNotFound)
	}
	return item, nil
}

// FindByIDs implementa catalog.Repository.FindByIDs
func (r *ProductRepository) FindByIDs(ctx context.Context, tenantID string, ids []string) (map[string]*catalog.Item, error) {
	out := make(map[string]*catalog.Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Querier(ctx).Query(ctx,
		`SELECT `+productColumns+` FROM produtos
		WHERE empresa_id = $1 AND id::text = ANY($2)`,
		tenantID, ids)
	if err != nil {
		return nil, translateError(err, "buscar produtos", nil)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanProduct(rows)
		if err != nil {
			return nil, translateError(err, "ler produto", nil)
		}
		out[item.ID] = item
	}
	return out, translateError(rows.Err(), "buscar produtos", nil)
}

// List implementa catalog.Repository.List
func (r *ProductRepository) List(ctx context.Context, tenantID string, filter catalog.Filter, limit, offset int) ([]*catalog.Item, error) {
	where, args := productFilter(tenantID, filter)
	args = append(args, limit, offset)
	rows, err := r.db.Querier(ctx).Query(ctx,
		fmt.Sprintf(`SELECT %s FROM produtos WHERE %s
		ORDER BY nome ASC, id ASC
		LIMIT NULLIF($%d, 0) OFFSET $%d`, productColumns, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, translateError(err, "listar produtos", nil)
	}
	defer rows.Close()

	items := []*catalog.Item{}
	for rows.Next() {
		item, err := scanProduct(rows)
		if err != nil {
			return nil, translateError(err, "ler produto", nil)
		}
		items = append(items, item)
	}
	return items, translateError(rows.Err(), "listar produtos", nil)
}

// Count implementa catalog.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, tenantID string, filter catalog.Filter) (int, error) {
	where, args := productFilter(tenantID, filter)
	var count int
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM produtos WHERE `+where, args...).Scan(&count)
	if err != nil {
		return 0, translateError(err, "contar produtos", nil)
	}
	return count, nil
}

// ExistsBySKU implementa catalog.Repository.ExistsBySKU
func (r *ProductRepository) ExistsBySKU(ctx context.Context, tenantID, sku, excludeID string) (bool, error) {
	var exists bool
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM produtos
			WHERE empresa_id = $1 AND codigo_sku = $2 AND id::text <> $3
		)`, tenantID, sku, excludeID).Scan(&exists)
	if err != nil {
		return false, translateError(err, "verificar SKU", nil)
	}
	return exists, nil
}

// Update implementa catalog.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, item *catalog.Item) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE produtos SET
			nome = $3, codigo_sku = $4, tipo = $5, unidade_medida = $6,
			preco_custo = $7, is_active = $8, updated_at = $9
		WHERE empresa_id = $1 AND id = $2`,
		item.TenantID, item.ID, item.Name, item.SKU, item.Kind, item.Unit,
		item.UnitCost, item.Active, item.UpdatedAt)
	if err != nil {
		return translateError(err, "atualizar produto", nil)
	}
	return expectAffected(tag, catalog.ErrItemNotFound)
}

// Delete implementa catalog.Repository.Delete. Itens referenciados por
// composições ou orçamentos são protegidos pelas chaves estrangeiras.
func (r *ProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`DELETE FROM produtos WHERE empresa_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		if err = translateError(err, "excluir produto", nil); isReferenced(err) {
			return catalog.ErrItemReferenced
		}
		return err
	}
	return expectAffected(tag, catalog.ErrItemNotFound)
}

func productFilter(tenantID string, filter catalog.Filter) (string, []any) {
	conditions := []string{"empresa_id = $1"}
	args := []any{tenantID}

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		conditions = append(conditions, fmt.Sprintf("tipo = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(nome ILIKE $%d OR codigo_sku ILIKE $%d)", len(args), len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

func scanProduct(row pgx.Row) (*catalog.Item, error) {
	var item catalog.Item
	err := row.Scan(&item.ID, &item.TenantID, &item.Name, &item.SKU, &item.Kind, &item.Unit,
		&item.UnitCost, &item.Active, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
