package dto

import (
	"time"

	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
)

// RegisterRequest representa os dados de cadastro
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
}

// LoginRequest representa os dados para login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest representa os dados para renovação de token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ProfileRequest representa a atualização do perfil
type ProfileRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
}

// UserResponse representa os dados públicos do usuário
type UserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	CompanyName  string     `json:"company_name"`
	Status       string     `json:"status"`
	GoogleLinked bool       `json:"google_linked"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AuthResponse é a resposta de cadastro, login e renovação
type AuthResponse struct {
	User         UserResponse    `json:"user"`
	Empresa      *TenantResponse `json:"empresa,omitempty"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
}

// ToUserResponse converte o usuário para a resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		CompanyName:  u.CompanyName,
		Status:       string(u.Status),
		GoogleLinked: u.GoogleSubject != "",
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
	}
}

// NewAuthResponse monta a resposta de login. O tenant pode ser nil.
func NewAuthResponse(u *user.User, t *tenant.Tenant, accessToken, refreshToken string, expiresIn int64) AuthResponse {
	resp := AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	}
	if t != nil {
		tr := ToTenantResponse(t)
		resp.Empresa = &tr
	}
	return resp
}
