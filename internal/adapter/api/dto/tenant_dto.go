package dto

import (
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
)

// TenantRequest representa os dados de criação/atualização da empresa
type TenantRequest struct {
	NomeFantasia string `json:"nome_fantasia" binding:"required"`
	RazaoSocial  string `json:"razao_social"`
	CNPJ         string `json:"cnpj"`
	Email        string `json:"email" binding:"omitempty,email"`
	Telefone     string `json:"telefone"`
}

// ToInput converte a requisição para o domínio
func (r TenantRequest) ToInput() tenant.Input {
	return tenant.Input{
		TradeName: r.NomeFantasia,
		LegalName: r.RazaoSocial,
		CNPJ:      r.CNPJ,
		Email:     r.Email,
		Phone:     r.Telefone,
	}
}

// TenantResponse representa a estrutura de dados de resposta da empresa
type TenantResponse struct {
	ID           string    `json:"id"`
	Owner        string    `json:"owner"`
	NomeFantasia string    `json:"nome_fantasia"`
	RazaoSocial  string    `json:"razao_social"`
	CNPJ         string    `json:"cnpj"`
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToTenantResponse converte um modelo de domínio em uma resposta DTO
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:           t.ID,
		Owner:        t.OwnerID,
		NomeFantasia: t.TradeName,
		RazaoSocial:  t.LegalName,
		CNPJ:         t.CNPJ,
		Email:        t.Email,
		Telefone:     t.Phone,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
