package repository

import (
	"context"

	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

const recipeColumns = `id, empresa_id, produto_acabado_id, descricao, custo_adicional_fixo,
	created_at, updated_at`

// RecipeRepository implementa a interface recipe.Repository
type RecipeRepository struct {
	db *database.PostgresDB
}

// NewRecipeRepository cria uma nova instância de RecipeRepository
func NewRecipeRepository(db *database.PostgresDB) recipe.Repository {
	return &RecipeRepository{db: db}
}

// Create implementa recipe.Repository.Create. O cabeçalho e as linhas são
// enviados num único lote e devem ser chamados dentro de uma transação.
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	batch := &pgx.Batch{}
	batch.Queue(
		`INSERT INTO composicoes (`+recipeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.TenantID, rec.ProductID, rec.Description, rec.FixedCost, rec.CreatedAt, rec.UpdatedAt)
	for i, l := range rec.Lines {
		queueInsertRecipeLine(batch, l, i)
	}

	if err := r.db.Querier(ctx).SendBatch(ctx, batch).Close(); err != nil {
		if constraintViolated(err, "ux_composicoes_produto") {
			return recipe.ErrRecipeExists
		}
		return translateError(err, "criar composição", nil)
	}
	return nil
}

// FindByID implementa recipe.Repository.FindByID
func (r *RecipeRepository) FindByID(ctx context.Context, tenantID, id string) (*recipe.Recipe, error) {
	return r.findOne(ctx, `SELECT `+recipeColumns+` FROM composicoes WHERE empresa_id = $1 AND id = $2`, tenantID, id)
}

// LockByID implementa recipe.Repository.LockByID
func (r *RecipeRepository) LockByID(ctx context.Context, tenantID, id string) (*recipe.Recipe, error) {
	return r.findOne(ctx, `SELECT `+recipeColumns+` FROM composicoes WHERE empresa_id = $1 AND id = $2 FOR UPDATE`, tenantID, id)
}

// FindByProduct implementa recipe.Repository.FindByProduct
func (r *RecipeRepository) FindByProduct(ctx context.Context, tenantID, productID string) (*recipe.Recipe, error) {
	return r.findOne(ctx, `SELECT `+recipeColumns+` FROM composicoes WHERE empresa_id = $1 AND produto_acabado_id = $2`, tenantID, productID)
}

func (r *RecipeRepository) findOne(ctx context.Context, query string, args ...any) (*recipe.Recipe, error) {
	rec, err := scanRecipe(r.db.Querier(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "buscar composição", recipe.ErrRecipeNotFound)
	}

	lines, err := r.loadLines(ctx, []string{rec.ID})
	if err != nil {
		return nil, err
	}
	rec.Lines = lines[rec.ID]
	if rec.Lines == nil {
		rec.Lines = []recipe.Line{}
	}
	return rec, nil
}

// List implementa recipe.Repository.List
func (r *RecipeRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*recipe.Recipe, error) {
	rows, err := r.db.Querier(ctx).Query(ctx,
		`SELECT `+recipeColumns+` FROM composicoes
		WHERE empresa_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT NULLIF($2, 0) OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, translateError(err, "listar composições", nil)
	}

	recipes := []*recipe.Recipe{}
	ids := []string{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			rows.Close()
			return nil, translateError(err, "ler composição", nil)
		}
		recipes = append(recipes, rec)
		ids = append(ids, rec.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "listar composições", nil)
	}

	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, rec := range recipes {
		rec.Lines = lines[rec.ID]
		if rec.Lines == nil {
			rec.Lines = []recipe.Line{}
		}
	}
	return recipes, nil
}

// Count implementa recipe.Repository.Count
func (r *RecipeRepository) Count(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM composicoes WHERE empresa_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, translateError(err, "contar composições", nil)
	}
	return count, nil
}

// UpdateHeader implementa recipe.Repository.UpdateHeader
func (r *RecipeRepository) UpdateHeader(ctx context.Context, rec *recipe.Recipe) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE composicoes SET
			produto_acabado_id = $3, descricao = $4, custo_adicional_fixo = $5, updated_at = $6
		WHERE empresa_id = $1 AND id = $2`,
		rec.TenantID, rec.ID, rec.ProductID, rec.Description, rec.FixedCost, rec.UpdatedAt)
	if err != nil {
		if constraintViolated(err, "ux_composicoes_produto") {
			return recipe.ErrRecipeExists
		}
		return translateError(err, "atualizar composição", nil)
	}
	return expectAffected(tag, recipe.ErrRecipeNotFound)
}

// ApplyDiff implementa recipe.Repository.ApplyDiff. As remoções vêm antes
// das inclusões para que um componente removido e reincluído não viole a
// unicidade (composição, componente).
func (r *RecipeRepository) ApplyDiff(ctx context.Context, recipeID string, d recipe.Diff) error {
	if d.Empty() {
		return nil
	}

	batch := &pgx.Batch{}
	for _, l := range d.Removed {
		batch.Queue(`DELETE FROM itens_composicao WHERE composicao_id = $1 AND id = $2`, recipeID, l.ID)
	}
	for _, l := range d.Changed {
		batch.Queue(`UPDATE itens_composicao SET quantidade = $3 WHERE composicao_id = $1 AND id = $2`,
			recipeID, l.ID, l.Quantity)
	}
	added := make(map[string]bool, len(d.Added))
	for _, l := range d.Added {
		added[l.ID] = true
	}
	for i, l := range d.Result {
		if added[l.ID] {
			queueInsertRecipeLine(batch, l, i)
			continue
		}
		batch.Queue(`UPDATE itens_composicao SET posicao = $3 WHERE composicao_id = $1 AND id = $2`,
			recipeID, l.ID, i)
	}

	if err := r.db.Querier(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "substituir itens da composição", nil)
	}
	return nil
}

// Delete implementa recipe.Repository.Delete
func (r *RecipeRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`DELETE FROM composicoes WHERE empresa_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return translateError(err, "excluir composição", nil)
	}
	return expectAffected(tag, recipe.ErrRecipeNotFound)
}

// IsComponentInUse implementa recipe.Repository.IsComponentInUse
func (r *RecipeRepository) IsComponentInUse(ctx context.Context, tenantID, productID string) (bool, error) {
	var inUse bool
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM itens_composicao i
			JOIN composicoes c ON c.id = i.composicao_id
			WHERE c.empresa_id = $1 AND i.componente_id = $2
		)`, tenantID, productID).Scan(&inUse)
	if err != nil {
		return false, translateError(err, "verificar uso do componente", nil)
	}
	return inUse, nil
}

// HasRecipe implementa recipe.Repository.HasRecipe
func (r *RecipeRepository) HasRecipe(ctx context.Context, tenantID, productID string) (bool, error) {
	var exists bool
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM composicoes WHERE empresa_id = $1 AND produto_acabado_id = $2)`,
		tenantID, productID).Scan(&exists)
	if err != nil {
		return false, translateError(err, "verificar composição do produto", nil)
	}
	return exists, nil
}

func (r *RecipeRepository) loadLines(ctx context.Context, recipeIDs []string) (map[string][]recipe.Line, error) {
	out := make(map[string][]recipe.Line, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Querier(ctx).Query(ctx,
		`SELECT id, composicao_id, componente_id, quantidade
		FROM itens_composicao
		WHERE composicao_id::text = ANY($1)
		ORDER BY posicao ASC, id ASC`, recipeIDs)
	if err != nil {
		return nil, translateError(err, "buscar itens da composição", nil)
	}
	defer rows.Close()

	for rows.Next() {
		var l recipe.Line
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.ComponentID, &l.Quantity); err != nil {
			return nil, translateError(err, "ler item da composição", nil)
		}
		out[l.RecipeID] = append(out[l.RecipeID], l)
	}
	return out, translateError(rows.Err(), "buscar itens da composição", nil)
}

func queueInsertRecipeLine(batch *pgx.Batch, l recipe.Line, position int) {
	batch.Queue(
		`INSERT INTO itens_composicao (id, composicao_id, componente_id, quantidade, posicao)
		VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.RecipeID, l.ComponentID, l.Quantity, position)
}

func scanRecipe(row pgx.Row) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	err := row.Scan(&rec.ID, &rec.TenantID, &rec.ProductID, &rec.Description, &rec.FixedCost,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
