package repository

import (
	"context"

	"github.com/hugohenrick/precificacao-api/internal/domain/user"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, phone, company_name, password_hash, google_subject,
	status, last_login_at, created_at, updated_at`

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *database.PostgresDB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *database.PostgresDB) user.Repository {
	return &UserRepository{db: db}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Querier(ctx).Exec(ctx,
		`INSERT INTO usuarios (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Email, u.Name, u.Phone, u.CompanyName, u.PasswordHash, u.GoogleSubject,
		u.Status, u.LastLoginAt, u.CreatedAt, u.UpdatedAt)
	if constraintViolated(err, "ux_usuarios_email") {
		return user.ErrEmailInUse
	}
	return translateError(err, "criar usuário", nil)
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	row := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, user.NormalizeEmail(email))
	return scanUser(row)
}

// FindByGoogleSubject implementa user.Repository.FindByGoogleSubject
func (r *UserRepository) FindByGoogleSubject(ctx context.Context, subject string) (*user.User, error) {
	if subject == "" {
		return nil, user.ErrUserNotFound
	}
	row := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE google_subject = $1`, subject)
	return scanUser(row)
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE usuarios SET
			email = $2, name = $3, phone = $4, company_name = $5, password_hash = $6,
			google_subject = $7, status = $8, updated_at = $9
		WHERE id = $1`,
		u.ID, u.Email, u.Name, u.Phone, u.CompanyName, u.PasswordHash,
		u.GoogleSubject, u.Status, u.UpdatedAt)
	if err != nil {
		return translateError(err, "atualizar usuário", nil)
	}
	return expectAffected(tag, user.ErrUserNotFound)
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	tag, err := r.db.Querier(ctx).Exec(ctx,
		`UPDATE usuarios SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "atualizar último login", nil)
	}
	return expectAffected(tag, user.ErrUserNotFound)
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.CompanyName, &u.PasswordHash,
		&u.GoogleSubject, &u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "buscar usuário", user.ErrUserNotFound)
	}
	return &u, nil
}
