package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = fmt.Errorf("usuário %w", apperror.ErrNotFound)
	ErrEmailInUse         = fmt.Errorf("email já cadastrado: %w", apperror.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("email ou senha inválidos: %w", apperror.ErrUnauthorized)
	ErrUserInactive       = fmt.Errorf("usuário inativo: %w", apperror.ErrForbidden)
	ErrEmailNotVerified   = fmt.Errorf("email da conta Google não verificado: %w", apperror.ErrUnauthorized)
)

// MinPasswordLength é o tamanho mínimo aceito para senhas
const MinPasswordLength = 8

// Status representa o status do usuário
type Status string

// Constantes para Status
const (
	StatusActive   Status = "active"   // Usuário ativo
	StatusInactive Status = "inactive" // Usuário inativo
	StatusBlocked  Status = "blocked"  // Usuário bloqueado
)

// User representa um usuário do sistema. Contas criadas apenas por login
// social não possuem senha.
type User struct {
	ID            string
	Email         string
	Name          string
	Phone         string
	CompanyName   string
	PasswordHash  string
	GoogleSubject string
	Status        Status
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile contém os dados editáveis do perfil
type Profile struct {
	Name        string
	Phone       string
	CompanyName string
}

// NewUser cria um usuário ativo com email normalizado
func NewUser(email string, p Profile) (*User, error) {
	email = NormalizeEmail(email)
	verr := apperror.NewValidationError()
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		verr.Add("email", "email inválido")
	}
	if strings.TrimSpace(p.Name) == "" {
		verr.Add("name", "nome é obrigatório")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		ID:          uuid.New().String(),
		Email:       email,
		Name:        strings.TrimSpace(p.Name),
		Phone:       strings.TrimSpace(p.Phone),
		CompanyName: strings.TrimSpace(p.CompanyName),
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NormalizeEmail padroniza o email para comparação
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperror.Invalid("password", fmt.Sprintf("senha deve ter ao menos %d caracteres", MinPasswordLength))
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// UpdateProfile altera nome, telefone e nome da empresa
func (u *User) UpdateProfile(p Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.Invalid("name", "nome é obrigatório")
	}
	u.Name = strings.TrimSpace(p.Name)
	u.Phone = strings.TrimSpace(p.Phone)
	u.CompanyName = strings.TrimSpace(p.CompanyName)
	u.UpdatedAt = time.Now()
	return nil
}

// LinkGoogle associa a conta Google ao usuário
func (u *User) LinkGoogle(subject string) {
	u.GoogleSubject = subject
	u.UpdatedAt = time.Now()
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
