package controller

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/dto"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
)

const oauthStateCookie = "oauth_state"

// GoogleAuthenticator é o provedor OAuth2 usado no login social
type GoogleAuthenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.GoogleProfile, error)
}

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	authService *service.AuthService
	google      GoogleAuthenticator
	frontendURL string
	log         logger.Logger
}

// NewAuthController cria uma nova instância de AuthController. google pode
// ser nil quando o login social não está configurado.
func NewAuthController(authService *service.AuthService, google GoogleAuthenticator, frontendURL string, log logger.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		google:      google,
		frontendURL: frontendURL,
		log:         log,
	}
}

// Register cadastra um usuário
// @Summary Cadastra um usuário
// @Description Cria o usuário e, quando company_name é informado, a sua empresa
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := c.authService.Register(ctx.Request.Context(), service.RegisterInput{
		Email:       request.Email,
		Password:    request.Password,
		Name:        request.Name,
		Phone:       request.Phone,
		CompanyName: request.CompanyName,
	})
	if err != nil {
		respondError(ctx, c.log, "auth.register", err)
		return
	}
	ctx.JSON(http.StatusCreated, toAuthResponse(result))
}

// Login autentica um usuário e retorna o par de tokens
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna os tokens JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondError(ctx, c.log, "auth.login", err)
		return
	}
	ctx.JSON(http.StatusOK, toAuthResponse(result))
}

// RefreshToken renova o par de tokens
// @Summary Renova os tokens JWT
// @Description Troca um refresh token válido por um novo par
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := c.authService.Refresh(ctx.Request.Context(), request.RefreshToken)
	if err != nil {
		respondError(ctx, c.log, "auth.refresh", err)
		return
	}
	ctx.JSON(http.StatusOK, toAuthResponse(result))
}

// Profile retorna o usuário autenticado
// @Summary Retorna o perfil do usuário
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	u, err := c.authService.Profile(ctx.Request.Context(), auth.GetUserID(ctx))
	if err != nil {
		respondError(ctx, c.log, "auth.profile", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// UpdateProfile atualiza o perfil do usuário autenticado
// @Summary Atualiza o perfil do usuário
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param profile body dto.ProfileRequest true "Dados do perfil"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var request dto.ProfileRequest
	if !bindJSON(ctx, &request) {
		return
	}

	u, err := c.authService.UpdateProfile(ctx.Request.Context(), auth.GetUserID(ctx), user.Profile{
		Name:        request.Name,
		Phone:       request.Phone,
		CompanyName: request.CompanyName,
	})
	if err != nil {
		respondError(ctx, c.log, "auth.update_profile", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// GoogleLogin redireciona para a tela de consentimento do Google
// @Summary Inicia o login com Google
// @Tags auth
// @Success 307
// @Failure 503 {object} dto.ErrorResponse
// @Router /auth/google/login [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	if c.google == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "Login com Google indisponível", auth.ErrGoogleDisabled.Error()))
		return
	}

	state, err := auth.NewState()
	if err != nil {
		respondError(ctx, c.log, "auth.google_login", err)
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, state, 600, "/", "", ctx.Request.TLS != nil, true)
	ctx.Redirect(http.StatusTemporaryRedirect, c.google.AuthCodeURL(state))
}

// GoogleCallback conclui o login com Google e redireciona para o frontend
// com os tokens
// @Summary Retorno do login com Google
// @Tags auth
// @Param code query string true "Código de autorização"
// @Param state query string true "State enviado no login"
// @Success 307
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	if c.google == nil {
		c.redirectFailure(ctx)
		return
	}

	state, err := ctx.Cookie(oauthStateCookie)
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", ctx.Request.TLS != nil, true)
	if err != nil || state == "" || state != ctx.Query("state") {
		c.log.Warn("state inválido no login com Google")
		c.redirectFailure(ctx)
		return
	}

	profile, err := c.google.Exchange(ctx.Request.Context(), ctx.Query("code"))
	if err != nil {
		c.log.Error("erro no login com Google", "error", err)
		c.redirectFailure(ctx)
		return
	}

	result, err := c.authService.SocialLogin(ctx.Request.Context(), *profile)
	if err != nil {
		c.log.Error("erro ao autenticar usuário do Google", "error", err)
		c.redirectFailure(ctx)
		return
	}

	query := url.Values{}
	query.Set("access", result.Tokens.AccessToken)
	query.Set("refresh", result.Tokens.RefreshToken)
	ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/auth/callback?"+query.Encode())
}

func (c *AuthController) redirectFailure(ctx *gin.Context) {
	ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/login?error=authentication_failed")
}

func toAuthResponse(r *service.AuthResult) dto.AuthResponse {
	return dto.NewAuthResponse(r.User, r.Tenant, r.Tokens.AccessToken, r.Tokens.RefreshToken, r.Tokens.ExpiresIn)
}
