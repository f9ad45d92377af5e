package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/precificacao-api/internal/domain/apperror"
	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
)

var ErrInvalidRefreshToken = fmt.Errorf("token de renovação inválido: %w", apperror.ErrUnauthorized)

// TokenIssuer emite e valida os tokens da API
type TokenIssuer interface {
	GeneratePair(u *user.User) (*auth.TokenPair, error)
	ValidateToken(tokenString string, typ auth.TokenType) (*auth.JWTClaims, error)
}

// RegisterInput contém os dados de cadastro
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	CompanyName string
}

// AuthResult é o retorno de cadastro e login
type AuthResult struct {
	User   *user.User
	Tenant *tenant.Tenant // Nil quando o usuário ainda não possui empresa
	Tokens *auth.TokenPair
}

// AuthService cuida de cadastro, login e perfil
type AuthService struct {
	tx      Transactor
	users   user.Repository
	tenants *TenantService
	tokens  TokenIssuer
	log     logger.Logger
}

// NewAuthService cria uma nova instância de AuthService
func NewAuthService(tx Transactor, users user.Repository, tenants *TenantService, tokens TokenIssuer, log logger.Logger) *AuthService {
	return &AuthService{tx: tx, users: users, tenants: tenants, tokens: tokens, log: log}
}

// Register cria o usuário e, quando o nome da empresa é informado, a sua
// empresa na mesma transação
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	u, err := user.NewUser(in.Email, user.Profile{Name: in.Name, Phone: in.Phone, CompanyName: in.CompanyName})
	if err != nil {
		return nil, err
	}
	if err := u.SetPassword(in.Password); err != nil {
		return nil, err
	}

	var t *tenant.Tenant
	if u.CompanyName != "" {
		t, err = tenant.NewTenant(u.ID, tenant.Input{TradeName: u.CompanyName})
		if err != nil {
			return nil, err
		}
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByEmail(ctx, u.Email); err == nil {
			return user.ErrEmailInUse
		} else if !errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		if err := s.users.Create(ctx, u); err != nil {
			return err
		}
		if t != nil {
			return s.tenants.create(ctx, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("usuário cadastrado", "user_id", u.ID, "com_empresa", t != nil)
	return s.issue(u, t)
}

// Login autentica por email e senha
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.CheckPassword(password) {
		return nil, user.ErrInvalidCredentials
	}
	return s.signIn(ctx, u)
}

// Refresh troca um token de renovação válido por um novo par
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.ValidateToken(refreshToken, auth.TokenRefresh)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, user.ErrUserInactive
	}
	return s.issue(u, s.tenantOf(ctx, u.ID))
}

// Profile retorna o usuário autenticado
func (s *AuthService) Profile(ctx context.Context, userID string) (*user.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile altera nome, telefone e nome da empresa do usuário
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, p user.Profile) (*user.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.UpdateProfile(p); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SocialLogin autentica com a conta Google: busca pelo identificador da
// conta, depois pelo email (vinculando a conta) e por fim cria o usuário.
// Vínculo e cadastro por email exigem email verificado pelo Google.
func (s *AuthService) SocialLogin(ctx context.Context, profile auth.GoogleProfile) (*AuthResult, error) {
	var u *user.User
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.users.FindByGoogleSubject(ctx, profile.Subject)
		if err == nil {
			u = found
			return nil
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		if !profile.EmailVerified {
			return user.ErrEmailNotVerified
		}

		found, err = s.users.FindByEmail(ctx, user.NormalizeEmail(profile.Email))
		switch {
		case err == nil:
			found.LinkGoogle(profile.Subject)
			u = found
			return s.users.Update(ctx, found)
		case !errors.Is(err, apperror.ErrNotFound):
			return err
		}

		name := profile.Name
		if name == "" {
			name = profile.Email
		}
		created, err := user.NewUser(profile.Email, user.Profile{Name: name})
		if err != nil {
			return err
		}
		created.LinkGoogle(profile.Subject)
		u = created
		return s.users.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return s.signIn(ctx, u)
}

func (s *AuthService) signIn(ctx context.Context, u *user.User) (*AuthResult, error) {
	if !u.IsActive() {
		return nil, user.ErrUserInactive
	}
	if err := s.users.UpdateLastLogin(ctx, u.ID); err != nil {
		s.log.Warn("erro ao registrar último login", "user_id", u.ID, "error", err)
	}
	return s.issue(u, s.tenantOf(ctx, u.ID))
}

func (s *AuthService) issue(u *user.User, t *tenant.Tenant) (*AuthResult, error) {
	pair, err := s.tokens.GeneratePair(u)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar tokens: %w", err)
	}
	return &AuthResult{User: u, Tenant: t, Tokens: pair}, nil
}

// tenantOf busca a empresa do usuário; a ausência não impede o login
func (s *AuthService) tenantOf(ctx context.Context, userID string) *tenant.Tenant {
	t, err := s.tenants.GetForOwner(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			s.log.Warn("erro ao buscar empresa do usuário", "user_id", userID, "error", err)
		}
		return nil
	}
	return t
}
