package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
)

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, u *user.User) error {
	return r.s.write(ctx, func(st *state) error {
		if err := checkUserUnique(st, u); err != nil {
			return err
		}
		st.users[u.ID] = *u
		return nil
	})
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.find(func(u user.User) bool { return u.ID == id })
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)
	return r.find(func(u user.User) bool { return u.Email == email })
}

func (r *userRepo) FindByGoogleSubject(ctx context.Context, subject string) (*user.User, error) {
	if subject == "" {
		return nil, user.ErrUserNotFound
	}
	return r.find(func(u user.User) bool { return u.GoogleSubject == subject })
}

func (r *userRepo) find(match func(u user.User) bool) (*user.User, error) {
	var found *user.User
	_ = r.s.read(func(st *state) error {
		for _, u := range st.users {
			if match(u) {
				found = &u
				return nil
			}
		}
		return nil
	})
	if found == nil {
		return nil, user.ErrUserNotFound
	}
	return found, nil
}

func (r *userRepo) Update(ctx context.Context, u *user.User) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.users[u.ID]; !ok {
			return user.ErrUserNotFound
		}
		if err := checkUserUnique(st, u); err != nil {
			return err
		}
		st.users[u.ID] = *u
		return nil
	})
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return user.ErrUserNotFound
		}
		now := time.Now()
		u.LastLoginAt = &now
		st.users[id] = u
		return nil
	})
}

func checkUserUnique(st *state, u *user.User) error {
	for _, other := range st.users {
		if other.ID == u.ID {
			continue
		}
		if other.Email == u.Email {
			return user.ErrEmailInUse
		}
		if u.GoogleSubject != "" && other.GoogleSubject == u.GoogleSubject {
			return fmt.Errorf("conta Google já vinculada: %w", apperror.ErrConflict)
		}
	}
	return nil
}

type tenantRepo struct{ s *Store }

func (r *tenantRepo) Create(ctx context.Context, t *tenant.Tenant) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.users[t.OwnerID]; !ok {
			return fmt.Errorf("usuário dono inexistente: %w", apperror.ErrReferenced)
		}
		if err := checkCNPJUnique(st, t); err != nil {
			return err
		}
		st.tenants[t.ID] = *t
		return nil
	})
}

func (r *tenantRepo) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	var found *tenant.Tenant
	_ = r.s.read(func(st *state) error {
		if t, ok := st.tenants[id]; ok {
			found = &t
		}
		return nil
	})
	if found == nil {
		return nil, tenant.ErrTenantNotFound
	}
	return found, nil
}

func (r *tenantRepo) FindByOwner(ctx context.Context, ownerID string) (*tenant.Tenant, error) {
	var owned []tenant.Tenant
	_ = r.s.read(func(st *state) error {
		for _, t := range st.tenants {
			if t.OwnerID == ownerID {
				owned = append(owned, t)
			}
		}
		return nil
	})
	if len(owned) == 0 {
		return nil, tenant.ErrTenantNotFound
	}
	oldest := slices.MinFunc(owned, func(a, b tenant.Tenant) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return &oldest, nil
}

func (r *tenantRepo) ExistsByCNPJ(ctx context.Context, cnpj, excludeID string) (bool, error) {
	exists := false
	_ = r.s.read(func(st *state) error {
		for _, t := range st.tenants {
			if t.CNPJ == cnpj && t.ID != excludeID {
				exists = true
			}
		}
		return nil
	})
	return exists, nil
}

func (r *tenantRepo) Update(ctx context.Context, t *tenant.Tenant) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.tenants[t.ID]; !ok {
			return tenant.ErrTenantNotFound
		}
		if err := checkCNPJUnique(st, t); err != nil {
			return err
		}
		st.tenants[t.ID] = *t
		return nil
	})
}

func checkCNPJUnique(st *state, t *tenant.Tenant) error {
	if t.CNPJ == "" {
		return nil
	}
	for _, other := range st.tenants {
		if other.ID != t.ID && other.CNPJ == t.CNPJ {
			return fmt.Errorf("CNPJ já cadastrado: %w", apperror.ErrConflict)
		}
	}
	return nil
}
