package repository

import (
	"context"

	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

const tenantColumns = `id, owner_id, nome_fantasia, razao_social, cnpj, email, telefone,
	status, created_at, updated_at`

// TenantRepository implementa a interface tenant.Repository
type TenantRepository struct {
	db *database.PostgresDB
}

// NewTenantRepository cria uma nova instância de TenantRepository
func NewTenantRepository(db *database.PostgresDB) tenant.Repository {
	return &TenantRepository{db: db}
}

// Create implementa tenant.Repository.Create
func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	_, err := r.db.Querier(ctx).Exec(ctx,
		`INSERT INTO empresas (`+tenantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.OwnerID, t.TradeName, t.LegalName, t.CNPJ, t.Email, t.Phone,
		t.Status, t.CreatedAt, t.UpdatedAt)
	return translateError(err, "criar empresa", nil)
}

// FindByID implementa tenant.Repository.FindByID
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	row := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM empresas WHERE id = $1`, id)
	return scanTenant(row)
}

// FindByOwner implementa tenant.Repository.FindByOwner
func (r *TenantRepository) FindByOwner(ctx context.Context, ownerID string) (*tenant.Tenant, error) {
	row := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM empresas
		WHERE owner_id = $1
		ORDER BY created_at ASC
		LIMIT 1`, ownerID)
	return scanTenant(row)
}

// ExistsByCNPJ implementa tenant.Repository.ExistsByCNPJ
func (r *TenantRepository) ExistsByCNPJ(ctx context.Context, cnpj, excludeID string) (bool, error) {
	var exists bool
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM empresas WHERE cnpj = $1 AND id::text <> $2)`,
		cnpj, excludeID).Scan(&exists)
	if err != nil {
		return false, translateError(err, "verificar CNPJ", nil)
	}
	return exists, nil
}

// Update implementa tenant.Repository.Update
func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE empresas SET
			nome_fantasia = $2, razao_social = $3, cnpj = $4, email = $5,
			telefone = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		t.ID, t.TradeName, t.LegalName, t.CNPJ, t.Email, t.Phone, t.Status, t.UpdatedAt)
	if err != nil {
		return translateError(err, "atualizar empresa", nil)
	}
	return expectAffected(tag, tenant.ErrTenantNotFound)
}

func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var t tenant.Tenant
	err := row.Scan(&t.ID, &t.OwnerID, &t.TradeName, &t.LegalName, &t.CNPJ, &t.Email,
		&t.Phone, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "buscar empresa", tenant.ErrTenantNotFound)
	}
	return &t, nil
}
