package service_test

import (
	"errors"
	"testing"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
)

func register(t *testing.T, e *env, email, company string) *service.AuthResult {
	t.Helper()
	res, err := e.auth.Register(e.ctx, service.RegisterInput{
		Email:       email,
		Password:    "senha-segura",
		Name:        "Ana",
		CompanyName: company,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res
}

func TestRegisterCreatesTenant(t *testing.T) {
	e := newEnv(t)
	res := register(t, e, "Ana@Exemplo.com", "Padaria da Ana")

	if res.User.Email != "ana@exemplo.com" {
		t.Fatalf("expected normalized email, got %s", res.User.Email)
	}
	if res.Tenant == nil || res.Tenant.OwnerID != res.User.ID || res.Tenant.TradeName != "Padaria da Ana" {
		t.Fatalf("expected tenant owned by the new user, got %+v", res.Tenant)
	}
	if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair")
	}

	_, err := e.auth.Register(e.ctx, service.RegisterInput{Email: "ana@exemplo.com", Password: "outra-senha", Name: "Outra"})
	assertIs(t, err, user.ErrEmailInUse)
}

func TestRegisterWithoutCompany(t *testing.T) {
	e := newEnv(t)
	res := register(t, e, "ana@exemplo.com", "")
	if res.Tenant != nil {
		t.Fatalf("expected no tenant, got %+v", res.Tenant)
	}

	_, err := e.auth.Register(e.ctx, service.RegisterInput{Email: "bia@exemplo.com", Password: "curta", Name: "Bia"})
	assertField(t, err, "password")
}

func TestLoginAndRefresh(t *testing.T) {
	e := newEnv(t)
	register(t, e, "ana@exemplo.com", "Padaria")

	_, err := e.auth.Login(e.ctx, "ana@exemplo.com", "senha-errada")
	assertIs(t, err, apperror.ErrUnauthorized)
	_, err = e.auth.Login(e.ctx, "ninguem@exemplo.com", "senha-segura")
	assertIs(t, err, apperror.ErrUnauthorized)

	res, err := e.auth.Login(e.ctx, " ANA@exemplo.com ", "senha-segura")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tenant == nil {
		t.Fatalf("expected tenant on login")
	}
	u, _ := e.auth.Profile(e.ctx, res.User.ID)
	if u.LastLoginAt == nil {
		t.Fatalf("expected last login to be recorded")
	}

	_, err = e.auth.Refresh(e.ctx, res.Tokens.AccessToken)
	assertIs(t, err, service.ErrInvalidRefreshToken)

	refreshed, err := e.auth.Refresh(e.ctx, res.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := e.tokens.ValidateToken(refreshed.Tokens.AccessToken, auth.TokenAccess)
	if err != nil || claims.UserID != res.User.ID {
		t.Fatalf("unexpected refreshed token: %v %+v", err, claims)
	}
}

func TestUpdateProfile(t *testing.T) {
	e := newEnv(t)
	res := register(t, e, "ana@exemplo.com", "")

	u, err := e.auth.UpdateProfile(e.ctx, res.User.ID, user.Profile{Name: "Ana Maria", Phone: "11999990000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Ana Maria" || u.Phone != "11999990000" {
		t.Fatalf("unexpected profile %+v", u)
	}

	_, err = e.auth.UpdateProfile(e.ctx, res.User.ID, user.Profile{Name: " "})
	assertField(t, err, "name")
}

func TestSocialLogin(t *testing.T) {
	e := newEnv(t)
	profile := auth.GoogleProfile{Subject: "g-1", Email: "nova@exemplo.com", EmailVerified: true, Name: "Nova"}

	first, err := e.auth.SocialLogin(e.ctx, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.User.GoogleSubject != "g-1" || first.User.PasswordHash != "" {
		t.Fatalf("unexpected social user %+v", first.User)
	}

	second, err := e.auth.SocialLogin(e.ctx, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Fatalf("expected same user on second login")
	}

	// Conta existente com o mesmo email é vinculada
	existing := register(t, e, "ana@exemplo.com", "")
	linked, err := e.auth.SocialLogin(e.ctx, auth.GoogleProfile{Subject: "g-2", Email: "ANA@exemplo.com", EmailVerified: true, Name: "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linked.User.ID != existing.User.ID || linked.User.GoogleSubject != "g-2" {
		t.Fatalf("expected linked account, got %+v", linked.User)
	}
}

func TestSocialLoginRequiresVerifiedEmail(t *testing.T) {
	e := newEnv(t)
	existing := register(t, e, "ana@exemplo.com", "Padaria")

	_, err := e.auth.SocialLogin(e.ctx, auth.GoogleProfile{Subject: "g-outro", Email: "ana@exemplo.com", Name: "Outra"})
	if !errors.Is(err, user.ErrEmailNotVerified) || !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected unverified email rejected, got %v", err)
	}
	stored, err := e.store.Users().FindByID(e.ctx, existing.User.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.GoogleSubject != "" {
		t.Fatalf("expected account left unlinked, got subject %q", stored.GoogleSubject)
	}

	if _, err := e.auth.SocialLogin(e.ctx, auth.GoogleProfile{Subject: "g-nova", Email: "nova@exemplo.com"}); !errors.Is(err, user.ErrEmailNotVerified) {
		t.Fatalf("expected no account created for unverified email, got %v", err)
	}
	if _, err := e.store.Users().FindByEmail(e.ctx, "nova@exemplo.com"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected no user stored, got %v", err)
	}

	// Conta já vinculada continua entrando pelo identificador
	linked, err := e.auth.SocialLogin(e.ctx, auth.GoogleProfile{Subject: "g-ana", Email: "ana@exemplo.com", EmailVerified: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := e.auth.SocialLogin(e.ctx, auth.GoogleProfile{Subject: "g-ana", Email: "ana@exemplo.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.User.ID != linked.User.ID || again.User.ID != existing.User.ID {
		t.Fatalf("expected same linked user")
	}
}
