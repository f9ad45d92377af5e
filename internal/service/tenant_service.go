package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	tenantctx "github.com/hugohenrick/precificacao-api/pkg/tenant"
)

// TenantService gerencia a empresa de cada usuário
type TenantService struct {
	tx      Transactor
	tenants tenant.Repository
	log     logger.Logger
}

// NewTenantService cria uma nova instância de TenantService
func NewTenantService(tx Transactor, tenants tenant.Repository, log logger.Logger) *TenantService {
	return &TenantService{tx: tx, tenants: tenants, log: log}
}

// Create cria a empresa do usuário. Cada usuário possui no máximo uma.
func (s *TenantService) Create(ctx context.Context, ownerID string, in tenant.Input) (*tenant.Tenant, error) {
	t, err := tenant.NewTenant(ownerID, in)
	if err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("empresa criada", "tenant_id", t.ID, "owner_id", ownerID)
	return t, nil
}

// create grava a empresa verificando dono e CNPJ; deve rodar numa transação
func (s *TenantService) create(ctx context.Context, t *tenant.Tenant) error {
	if _, err := s.tenants.FindByOwner(ctx, t.OwnerID); err == nil {
		return tenant.ErrTenantAlreadyExists
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	if err := s.checkCNPJ(ctx, t.CNPJ, ""); err != nil {
		return err
	}
	return s.tenants.Create(ctx, t)
}

// GetForOwner retorna a empresa do usuário
func (s *TenantService) GetForOwner(ctx context.Context, ownerID string) (*tenant.Tenant, error) {
	return s.tenants.FindByOwner(ctx, ownerID)
}

// Update altera os dados da empresa do usuário
func (s *TenantService) Update(ctx context.Context, tenantID, ownerID string, in tenant.Input) (*tenant.Tenant, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}

	var out *tenant.Tenant
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		t, err := s.tenants.FindByID(ctx, tenantID)
		if err != nil {
			return err
		}
		if t.OwnerID != ownerID {
			return apperror.ErrForbidden
		}
		if err := t.Update(in); err != nil {
			return err
		}
		if err := s.checkCNPJ(ctx, t.CNPJ, t.ID); err != nil {
			return err
		}
		if err := s.tenants.Update(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	return out, err
}

// ResolveTenant implementa tenant.Resolver para o middleware
func (s *TenantService) ResolveTenant(ctx context.Context, userID string) (*tenantctx.Info, error) {
	t, err := s.tenants.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &tenantctx.Info{ID: t.ID, Active: t.IsActive()}, nil
}

func (s *TenantService) checkCNPJ(ctx context.Context, cnpj, excludeID string) error {
	if cnpj == "" {
		return nil
	}
	exists, err := s.tenants.ExistsByCNPJ(ctx, cnpj, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Invalid("cnpj", "CNPJ já cadastrado")
	}
	return nil
}
