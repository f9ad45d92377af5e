package tenant

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
)

var (
	ErrTenantNotFound      = fmt.Errorf("empresa %w", apperror.ErrNotFound)
	ErrTenantAlreadyExists = fmt.Errorf("usuário já possui empresa: %w", apperror.ErrConflict)
)

// Status representa o estado da empresa
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// Tenant representa uma empresa-cliente (Empresa). Todo cadastro de produtos,
// composições e orçamentos pertence a exatamente uma empresa.
type Tenant struct {
	ID        string
	OwnerID   string
	TradeName string // Nome fantasia
	LegalName string // Razão social
	CNPJ      string // Somente dígitos, opcional
	Email     string
	Phone     string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input contém os dados editáveis da empresa
type Input struct {
	TradeName string
	LegalName string
	CNPJ      string
	Email     string
	Phone     string
}

// NewTenant cria uma nova empresa para o usuário dono
func NewTenant(ownerID string, in Input) (*Tenant, error) {
	in = in.normalized()
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Tenant{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		TradeName: in.TradeName,
		LegalName: in.LegalName,
		CNPJ:      in.CNPJ,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados da empresa
func (t *Tenant) Update(in Input) error {
	in = in.normalized()
	if err := in.validate(); err != nil {
		return err
	}

	t.TradeName = in.TradeName
	t.LegalName = in.LegalName
	t.CNPJ = in.CNPJ
	t.Email = in.Email
	t.Phone = in.Phone
	t.UpdatedAt = time.Now()
	return nil
}

// IsActive verifica se a empresa está ativa
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive
}

// Deactivate desativa a empresa
func (t *Tenant) Deactivate() {
	t.Status = StatusInactive
	t.UpdatedAt = time.Now()
}

// Block bloqueia a empresa
func (t *Tenant) Block() {
	t.Status = StatusBlocked
	t.UpdatedAt = time.Now()
}

// NormalizeCNPJ remove pontuação do CNPJ
func NormalizeCNPJ(cnpj string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, cnpj)
}

func (in Input) normalized() Input {
	in.TradeName = strings.TrimSpace(in.TradeName)
	in.LegalName = strings.TrimSpace(in.LegalName)
	in.CNPJ = NormalizeCNPJ(in.CNPJ)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

func (in Input) validate() error {
	verr := apperror.NewValidationError()
	if in.TradeName == "" {
		verr.Add("nome_fantasia", "nome fantasia é obrigatório")
	} else if len(in.TradeName) > 255 {
		verr.Add("nome_fantasia", "nome fantasia deve ter no máximo 255 caracteres")
	}
	if in.CNPJ != "" && len(in.CNPJ) != 14 {
		verr.Add("cnpj", "CNPJ deve conter 14 dígitos")
	}
	return verr.OrNil()
}
