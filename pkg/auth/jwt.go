package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
)

// Erros específicos
var (
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrInvalidClaims  = errors.New("claims inválidas")
	ErrWrongTokenType = errors.New("tipo de token incorreto")
	ErrMissingJWTKey  = errors.New("chave secreta JWT não configurada")
)

// TokenType diferencia tokens de acesso e de renovação
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

const issuer = "precificacao-api"

// JWTClaims representa as claims personalizadas do token JWT
type JWTClaims struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Type   TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair é o par de tokens entregue no login
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // Segundos de validade do token de acesso
}

// JWTService implementa serviços relacionados a tokens JWT
type JWTService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTService cria uma nova instância de JWTService
func NewJWTService(secretKey string, accessTTL, refreshTTL time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}

	return &JWTService{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// GeneratePair gera os tokens de acesso e de renovação para o usuário
func (s *JWTService) GeneratePair(u *user.User) (*TokenPair, error) {
	access, err := s.generate(u, TokenAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generate(u, TokenRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *JWTService) generate(u *user.User, typ TokenType, ttl time.Duration) (string, error) {
	now := s.now()
	claims := JWTClaims{
		UserID: u.ID,
		Email:  u.Email,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   u.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken valida um token JWT do tipo informado e retorna as claims
func (s *JWTService) ValidateToken(tokenString string, typ TokenType) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verificar o método de assinatura
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidClaims
	}
	if claims.Type != typ {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
