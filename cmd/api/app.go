package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/controller"
	"github.com/hugohenrick/precificacao-api/internal/adapter/api/route"
	"github.com/hugohenrick/precificacao-api/internal/adapter/export"
	"github.com/hugohenrick/precificacao-api/internal/adapter/repository"
	"github.com/hugohenrick/precificacao-api/internal/adapter/repository/memory"
	"github.com/hugohenrick/precificacao-api/internal/config"
	"github.com/hugohenrick/precificacao-api/internal/domain/billing"
	"github.com/hugohenrick/precificacao-api/internal/domain/catalog"
	"github.com/hugohenrick/precificacao-api/internal/domain/quote"
	"github.com/hugohenrick/precificacao-api/internal/domain/recipe"
	"github.com/hugohenrick/precificacao-api/internal/domain/tenant"
	"github.com/hugohenrick/precificacao-api/internal/domain/user"
	"github.com/hugohenrick/precificacao-api/internal/infrastructure/database"
	"github.com/hugohenrick/precificacao-api/internal/service"
	"github.com/hugohenrick/precificacao-api/pkg/auth"
	"github.com/hugohenrick/precificacao-api/pkg/logger"
	tenantctx "github.com/hugohenrick/precificacao-api/pkg/tenant"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories agrupa a persistência usada pelos serviços
type repositories struct {
	tx            service.Transactor
	users         user.Repository
	tenants       tenant.Repository
	catalog       catalog.Repository
	recipes       recipe.Repository
	quotes        quote.Repository
	plans         billing.PlanRepository
	subscriptions billing.SubscriptionRepository
	payments      billing.PaymentRepository
}

// App representa a aplicação e suas dependências
type App struct {
	cfg    *config.Config
	log    logger.Logger
	router *gin.Engine
	db     *database.PostgresDB
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	repos, err := app.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	if err != nil {
		app.Close()
		return nil, err
	}

	// Serviços
	tenantService := service.NewTenantService(repos.tx, repos.tenants, log)
	authService := service.NewAuthService(repos.tx, repos.users, tenantService, tokens, log)
	catalogService := service.NewCatalogService(repos.tx, repos.catalog, repos.recipes, repos.quotes, log)
	recipeService := service.NewRecipeService(repos.tx, repos.recipes, repos.catalog, log)
	quoteService := service.NewQuoteService(repos.tx, repos.quotes, repos.recipes, repos.catalog, export.NewQuoteWorkbook(), log)
	billingService := service.NewBillingService(repos.tx, repos.plans, repos.subscriptions, repos.payments, cfg.TrialDays, log)

	// O login social só é habilitado com as credenciais configuradas
	var google controller.GoogleAuthenticator
	if cfg.Google.Enabled() {
		google = auth.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	} else {
		log.Warn("Login com Google desabilitado", "motivo", "GOOGLE_CLIENT_ID ou GOOGLE_CLIENT_SECRET ausente")
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	route.SetupRoutes(router.Group("/api/v1"), route.Controllers{
		Auth:    controller.NewAuthController(authService, google, cfg.FrontendURL, log),
		Tenant:  controller.NewTenantController(tenantService, log),
		Product: controller.NewProductController(catalogService, log),
		Recipe:  controller.NewRecipeController(recipeService, log),
		Quote:   controller.NewQuoteController(quoteService, log),
		Billing: controller.NewBillingController(billingService, log),
	}, route.Middlewares{
		Auth:   auth.JWTAuthMiddleware(tokens),
		Tenant: tenantctx.TenantMiddleware(tenantService, auth.UserIDKey),
	})

	app.router = router
	return app, nil
}

// openStorage escolhe o backend de persistência configurado
func (a *App) openStorage(ctx context.Context) (*repositories, error) {
	if a.cfg.Storage == config.StorageMemory {
		a.log.Warn("Usando armazenamento em memória; os dados serão perdidos ao encerrar")
		store := memory.NewStore()
		return &repositories{
			tx:            store,
			users:         store.Users(),
			tenants:       store.Tenants(),
			catalog:       store.Catalog(),
			recipes:       store.Recipes(),
			quotes:        store.Quotes(),
			plans:         store.Plans(),
			subscriptions: store.Subscriptions(),
			payments:      store.Payments(),
		}, nil
	}

	if a.cfg.RunMigrations {
		if err := database.RunMigrations(a.cfg.Database.ConnectionString()); err != nil {
			return nil, err
		}
		a.log.Info("Migrações aplicadas")
	}

	db, err := database.NewPostgresDB(ctx, a.cfg.Database, a.log)
	if err != nil {
		return nil, err
	}
	a.db = db

	return &repositories{
		tx:            db,
		users:         repository.NewUserRepository(db),
		tenants:       repository.NewTenantRepository(db),
		catalog:       repository.NewProductRepository(db),
		recipes:       repository.NewRecipeRepository(db),
		quotes:        repository.NewQuoteRepository(db),
		plans:         repository.NewPlanRepository(db),
		subscriptions: repository.NewSubscriptionRepository(db),
		payments:      repository.NewPaymentRepository(db),
	}, nil
}

// Run inicia o servidor HTTP e encerra graciosamente quando ctx é cancelado
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Servidor iniciado", "porta", a.cfg.Port, "storage", a.cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
