package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

const quoteColumns = `id, empresa_id, produto_base_id, descricao, quantidade, status,
	margem_lucro_percentual, custo_adicional_fixo,
	custo_total_materias_primas, custo_total_processos, custo_total_despesas_impostos,
	custo_total_producao, preco_venda_calculado, preco_venda_final, preco_venda_final_manual,
	created_at, updated_at`

// QuoteRepository implementa a interface quote.Repository
type QuoteRepository struct {
	db *database.PostgresDB
}

// NewQuoteRepository cria uma nova instância de QuoteRepository
func NewQuoteRepository(db *database.PostgresDB) quote.Repository {
	return &QuoteRepository{db: db}
}

// Create implementa quote.Repository.Create
func (r *QuoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	batch := &pgx.Batch{}
	batch.Queue(
		`INSERT INTO orcamentos (`+quoteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		q.ID, q.TenantID, q.ProductID, q.Description, q.Quantity, q.Status,
		q.Margin, q.FixedCost,
		q.Totals.Materials, q.Totals.Processes, q.Totals.Fees,
		q.Totals.ProductionCost, q.Totals.ComputedPrice, q.Totals.FinalPrice, q.FinalPriceManual,
		q.CreatedAt, q.UpdatedAt)
	for i := range q.Materials {
		queueInsertMaterial(batch, &q.Materials[i])
	}
	for i := range q.Processes {
		queueInsertProcess(batch, &q.Processes[i])
	}
	for i := range q.Fees {
		queueInsertFee(batch, &q.Fees[i])
	}

	if err := r.db.Querier(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "criar orçamento", nil)
	}
	return nil
}

// FindByID implementa quote.Repository.FindByID
func (r *QuoteRepository) FindByID(ctx context.Context, tenantID, id string) (*quote.Quote, error) {
	return r.findOne(ctx, `SELECT `+quoteColumns+` FROM orcamentos WHERE empresa_id = $1 AND id = $2`, tenantID, id)
}

// LockByID implementa quote.Repository.LockByID
func (r *QuoteRepository) LockByID(ctx context.Context, tenantID, id string) (*quote.Quote, error) {
	return r.findOne(ctx, `SELECT `+quoteColumns+` FROM orcamentos WHERE empresa_id = $1 AND id = $2 FOR UPDATE`, tenantID, id)
}

func (r *QuoteRepository) findOne(ctx context.Context, query string, tenantID, id string) (*quote.Quote, error) {
	q, err := scanQuote(r.db.Querier(ctx).QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, translateError(err, "buscar orçamento", quote.ErrQuoteNotFound)
	}
	if err := r.loadLines(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// List implementa quote.Repository.List. Somente os cabeçalhos são
// carregados.
func (r *QuoteRepository) List(ctx context.Context, tenantID string, filter quote.Filter, limit, offset int) ([]*quote.Quote, error) {
	where, args := quoteFilter(tenantID, filter)
	query := fmt.Sprintf(`SELECT %s FROM orcamentos %s
		ORDER BY created_at DESC, id DESC
		LIMIT NULLIF($%d, 0) OFFSET $%d`, quoteColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar orçamentos", nil)
	}
	defer rows.Close()

	quotes := []*quote.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, translateError(err, "ler orçamento", nil)
		}
		quotes = append(quotes, q)
	}
	return quotes, translateError(rows.Err(), "listar orçamentos", nil)
}

// Count implementa quote.Repository.Count
func (r *QuoteRepository) Count(ctx context.Context, tenantID string, filter quote.Filter) (int, error) {
	where, args := quoteFilter(tenantID, filter)
	var count int
	err := r.db.Querier(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM orcamentos `+where, args...).Scan(&count)
	if err != nil {
		return 0, translateError(err, "contar orçamentos", nil)
	}
	return count, nil
}

// UpdateHeader implementa quote.Repository.UpdateHeader
func (r *QuoteRepository) UpdateHeader(ctx context.Context, q *quote.Quote) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE orcamentos SET
			descricao = $3, quantidade = $4, status = $5, margem_lucro_percentual = $6,
			preco_venda_final = $7, preco_venda_final_manual = $8, updated_at = $9
		WHERE empresa_id = $1 AND id = $2`,
		q.TenantID, q.ID, q.Description, q.Quantity, q.Status, q.Margin,
		q.Totals.FinalPrice, q.FinalPriceManual, q.UpdatedAt)
	if err != nil {
		return translateError(err, "atualizar orçamento", nil)
	}
	return expectAffected(tag, quote.ErrQuoteNotFound)
}

// SaveTotals implementa quote.Repository.SaveTotals. Os totais do cabeçalho
// e de cada linha seguem num único lote.
func (r *QuoteRepository) SaveTotals(ctx context.Context, q *quote.Quote) error {
	batch := &pgx.Batch{}
	batch.Queue(
		`UPDATE orcamentos SET
			custo_total_materias_primas = $3, custo_total_processos = $4,
			custo_total_despesas_impostos = $5, custo_total_producao = $6,
			preco_venda_calculado = $7, preco_venda_final = $8, updated_at = $9
		WHERE empresa_id = $1 AND id = $2`,
		q.TenantID, q.ID, q.Totals.Materials, q.Totals.Processes, q.Totals.Fees,
		q.Totals.ProductionCost, q.Totals.ComputedPrice, q.Totals.FinalPrice, q.UpdatedAt)
	for _, l := range q.Materials {
		batch.Queue(`UPDATE orcamento_itens_produto SET custo_total_item = $3 WHERE orcamento_id = $1 AND id = $2`,
			q.ID, l.ID, l.Total)
	}
	for _, l := range q.Processes {
		batch.Queue(`UPDATE orcamento_itens_processo SET custo_total_item = $3 WHERE orcamento_id = $1 AND id = $2`,
			q.ID, l.ID, l.Total)
	}
	for _, l := range q.Fees {
		batch.Queue(`UPDATE orcamento_itens_despesa_imposto SET custo_total_item = $3 WHERE orcamento_id = $1 AND id = $2`,
			q.ID, l.ID, l.Total)
	}

	if err := r.db.Querier(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "gravar totais do orçamento", nil)
	}
	return nil
}

// Delete implementa quote.Repository.Delete
func (r *QuoteRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`DELETE FROM orcamentos WHERE empresa_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return translateError(err, "excluir orçamento", nil)
	}
	return expectAffected(tag, quote.ErrQuoteNotFound)
}

// IsProductInUse implementa quote.Repository.IsProductInUse
func (r *QuoteRepository) IsProductInUse(ctx context.Context, tenantID, productID string) (bool, error) {
	var inUse bool
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM orcamentos WHERE empresa_id = $1 AND produto_base_id = $2
		) OR EXISTS(
			SELECT 1 FROM orcamento_itens_produto i
			JOIN orcamentos o ON o.id = i.orcamento_id
			WHERE o.empresa_id = $1 AND i.componente_id = $2
		)`, tenantID, productID).Scan(&inUse)
	if err != nil {
		return false, translateError(err, "verificar uso do produto em orçamentos", nil)
	}
	return inUse, nil
}

// AddMaterial implementa quote.Repository.AddMaterial
func (r *QuoteRepository) AddMaterial(ctx context.Context, l *quote.MaterialLine) error {
	return r.sendOne(ctx, "incluir item de produto", func(b *pgx.Batch) { queueInsertMaterial(b, l) })
}

// UpdateMaterial implementa quote.Repository.UpdateMaterial
func (r *QuoteRepository) UpdateMaterial(ctx context.Context, l *quote.MaterialLine) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE orcamento_itens_produto SET
			componente_id = $3, descricao = $4, quantidade = $5, custo_unitario = $6, custo_total_item = $7
		WHERE orcamento_id = $1 AND id = $2`,
		l.QuoteID, l.ID, l.ComponentID, l.Description, l.Quantity, l.UnitCost, l.Total)
	if err != nil {
		return translateError(err, "atualizar item de produto", nil)
	}
	return expectAffected(tag, quote.ErrLineNotFound)
}

// DeleteMaterial implementa quote.Repository.DeleteMaterial
func (r *QuoteRepository) DeleteMaterial(ctx context.Context, quoteID, id string) error {
	return r.deleteLine(ctx, "orcamento_itens_produto", quoteID, id)
}

// AddProcess implementa quote.Repository.AddProcess
func (r *QuoteRepository) AddProcess(ctx context.Context, l *quote.ProcessLine) error {
	return r.sendOne(ctx, "incluir processo", func(b *pgx.Batch) { queueInsertProcess(b, l) })
}

// UpdateProcess implementa quote.Repository.UpdateProcess
func (r *QuoteRepository) UpdateProcess(ctx context.Context, l *quote.ProcessLine) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE orcamento_itens_processo SET
			descricao = $3, horas = $4, custo_hora = $5, custo_total_item = $6
		WHERE orcamento_id = $1 AND id = $2`,
		l.QuoteID, l.ID, l.Description, l.Hours, l.HourlyRate, l.Total)
	if err != nil {
		return translateError(err, "atualizar processo", nil)
	}
	return expectAffected(tag, quote.ErrLineNotFound)
}

// DeleteProcess implementa quote.Repository.DeleteProcess
func (r *QuoteRepository) DeleteProcess(ctx context.Context, quoteID, id string) error {
	return r.deleteLine(ctx, "orcamento_itens_processo", quoteID, id)
}

// AddFee implementa quote.Repository.AddFee
func (r *QuoteRepository) AddFee(ctx context.Context, l *quote.FeeLine) error {
	return r.sendOne(ctx, "incluir despesa ou imposto", func(b *pgx.Batch) { queueInsertFee(b, l) })
}

// UpdateFee implementa quote.Repository.UpdateFee
func (r *QuoteRepository) UpdateFee(ctx context.Context, l *quote.FeeLine) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE orcamento_itens_despesa_imposto SET
			descricao = $3, tipo = $4, base_calculo = $5, valor = $6, custo_total_item = $7
		WHERE orcamento_id = $1 AND id = $2`,
		l.QuoteID, l.ID, l.Description, l.Kind, l.Base, l.Value, l.Total)
	if err != nil {
		return translateError(err, "atualizar despesa ou imposto", nil)
	}
	return expectAffected(tag, quote.ErrLineNotFound)
}

// DeleteFee implementa quote.Repository.DeleteFee
func (r *QuoteRepository) DeleteFee(ctx context.Context, quoteID, id string) error {
	return r.deleteLine(ctx, "orcamento_itens_despesa_imposto", quoteID, id)
}

func (r *QuoteRepository) sendOne(ctx context.Context, op string, queue func(*pgx.Batch)) error {
	batch := &pgx.Batch{}
	queue(batch)
	if err := r.db.Querier(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, op, nil)
	}
	return nil
}

// deleteLine recebe apenas nomes de tabela fixos deste arquivo
func (r *QuoteRepository) deleteLine(ctx context.Context, table, quoteID, id string) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`DELETE FROM `+table+` WHERE orcamento_id = $1 AND id = $2`, quoteID, id)
	if err != nil {
		return translateError(err, "excluir item do orçamento", nil)
	}
	return expectAffected(tag, quote.ErrLineNotFound)
}

func (r *QuoteRepository) loadLines(ctx context.Context, q *quote.Quote) error {
	db := r.db.Querier(ctx)
	q.Materials = []quote.MaterialLine{}
	q.Processes = []quote.ProcessLine{}
	q.Fees = []quote.FeeLine{}

	rows, err := db.Query(ctx,
		`SELECT id, orcamento_id, componente_id, descricao, quantidade, custo_unitario, custo_total_item
		FROM orcamento_itens_produto WHERE orcamento_id = $1 ORDER BY posicao`, q.ID)
	if err != nil {
		return translateError(err, "buscar itens de produto", nil)
	}
	for rows.Next() {
		var l quote.MaterialLine
		if err := rows.Scan(&l.ID, &l.QuoteID, &l.ComponentID, &l.Description, &l.Quantity, &l.UnitCost, &l.Total); err != nil {
			rows.Close()
			return translateError(err, "ler item de produto", nil)
		}
		q.Materials = append(q.Materials, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return translateError(err, "buscar itens de produto", nil)
	}

	rows, err = db.Query(ctx,
		`SELECT id, orcamento_id, descricao, horas, custo_hora, custo_total_item
		FROM orcamento_itens_processo WHERE orcamento_id = $1 ORDER BY posicao`, q.ID)
	if err != nil {
		return translateError(err, "buscar processos", nil)
	}
	for rows.Next() {
		var l quote.ProcessLine
		if err := rows.Scan(&l.ID, &l.QuoteID, &l.Description, &l.Hours, &l.HourlyRate, &l.Total); err != nil {
			rows.Close()
			return translateError(err, "ler processo", nil)
		}
		q.Processes = append(q.Processes, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return translateError(err, "buscar processos", nil)
	}

	rows, err = db.Query(ctx,
		`SELECT id, orcamento_id, descricao, tipo, base_calculo, valor, custo_total_item
		FROM orcamento_itens_despesa_imposto WHERE orcamento_id = $1 ORDER BY posicao`, q.ID)
	if err != nil {
		return translateError(err, "buscar despesas e impostos", nil)
	}
	defer rows.Close()
	for rows.Next() {
		var l quote.FeeLine
		if err := rows.Scan(&l.ID, &l.QuoteID, &l.Description, &l.Kind, &l.Base, &l.Value, &l.Total); err != nil {
			return translateError(err, "ler despesa ou imposto", nil)
		}
		q.Fees = append(q.Fees, l)
	}
	return translateError(rows.Err(), "buscar despesas e impostos", nil)
}

func quoteFilter(tenantID string, filter quote.Filter) (string, []any) {
	where := "WHERE empresa_id = $1"
	args := []any{tenantID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	return where, args
}

func queueInsertMaterial(batch *pgx.Batch, l *quote.MaterialLine) {
	batch.Queue(
		`INSERT INTO orcamento_itens_produto
			(id, orcamento_id, componente_id, descricao, quantidade, custo_unitario, custo_total_item)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.QuoteID, l.ComponentID, l.Description, l.Quantity, l.UnitCost, l.Total)
}

func queueInsertProcess(batch *pgx.Batch, l *quote.ProcessLine) {
	batch.Queue(
		`INSERT INTO orcamento_itens_processo
			(id, orcamento_id, descricao, horas, custo_hora, custo_total_item)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.QuoteID, l.Description, l.Hours, l.HourlyRate, l.Total)
}

func queueInsertFee(batch *pgx.Batch, l *quote.FeeLine) {
	batch.Queue(
		`INSERT INTO orcamento_itens_despesa_imposto
			(id, orcamento_id, descricao, tipo, base_calculo, valor, custo_total_item)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.QuoteID, l.Description, l.Kind, l.Base, l.Value, l.Total)
}

func scanQuote(row pgx.Row) (*quote.Quote, error) {
	var q quote.Quote
	err := row.Scan(
		&q.ID, &q.TenantID, &q.ProductID, &q.Description, &q.Quantity, &q.Status,
		&q.Margin, &q.FixedCost,
		&q.Totals.Materials, &q.Totals.Processes, &q.Totals.Fees,
		&q.Totals.ProductionCost, &q.Totals.ComputedPrice, &q.Totals.FinalPrice, &q.FinalPriceManual,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
