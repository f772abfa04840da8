package routes

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"trade_credit/docs"
	"trade_credit/internal/adapter/http/handlers"
	"trade_credit/internal/adapter/http/middleware"
	"trade_credit/internal/adapter/persistence/repository"
	"trade_credit/internal/infrastructure/auth"
	"trade_credit/internal/infrastructure/config"
	"trade_credit/internal/infrastructure/credentials"
	"trade_credit/internal/infrastructure/database"
	"trade_credit/internal/infrastructure/lock"
	"trade_credit/internal/infrastructure/logger"
	"trade_credit/internal/infrastructure/payments"
	"trade_credit/internal/usecase"
	"trade_credit/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the adapters the HTTP surface is built on.
type Dependencies struct {
	Requests    interfaces.IObligationRequestRepository
	Obligations interfaces.IPaymentObligationRepository
	Catalog     interfaces.ICatalogService
	Verifier    interfaces.ICredentialVerifier
	Locks       interfaces.ILockManager
	Gateway     interfaces.IPaymentGateway
	Tokens      middleware.TokenValidator
}

// Run will start the server
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build dependencies", zap.Error(err))
		return err
	}
	defer cleanup()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(cfg, deps, log)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires use cases over deps and registers every route.
func NewRouter(cfg *config.Config, deps Dependencies, log *zap.Logger) *gin.Engine {
	policy := usecase.Policy{
		Location:      cfg.DeadlineLocation(),
		NetTermDays:   cfg.Settlement.NetTermDays,
		MaxCASRetries: cfg.Settlement.MaxCASRetries,
	}

	factory := usecase.NewObligationFactory(deps.Requests, log)
	requestUseCase := usecase.NewObligationRequestUseCase(deps.Requests, deps.Catalog, factory, policy, log)
	settlementUseCase := usecase.NewSettlementUseCase(deps.Obligations, deps.Verifier, deps.Locks, deps.Gateway, policy, log)
	queryUseCase := usecase.NewSettlementQueryUseCase(deps.Obligations)

	requestHandler := handlers.NewObligationRequestHandler(requestUseCase, policy.Location)
	settlementHandler := handlers.NewSettlementHandler(settlementUseCase, queryUseCase)

	router := gin.New()
	router.Use(logger.GinMiddleware(log), logger.Recovery(log))

	if cfg.Swagger.Enabled {
		docs.SwaggerInfo.BasePath = "/v1"
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("", middleware.Auth(deps.Tokens))
	addSettlementRoutes(secured, requestHandler, settlementHandler)
	return router
}

func buildDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (Dependencies, func(), error) {
	deps := Dependencies{Tokens: auth.NewJWTService(cfg.JWT)}
	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var store credentials.ICredentialStore
	switch cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return Dependencies{}, cleanup, err
		}
		tables := repository.DynamoTables{
			Requests:     cfg.DynamoDB.RequestsTable,
			Obligations:  cfg.DynamoDB.ObligationsTable,
			Transactions: cfg.DynamoDB.TransactionsTable,
			Guards:       cfg.DynamoDB.GuardsTable,
			Catalog:      cfg.DynamoDB.CatalogTable,
			Credentials:  cfg.DynamoDB.CredentialsTable,
		}
		catalog := repository.NewCatalogDynamoRepository(ddb, tables)
		deps.Requests = repository.NewObligationRequestDynamoRepository(ddb, tables)
		deps.Obligations = repository.NewPaymentObligationDynamoRepository(ddb, tables)
		deps.Catalog = catalog
		store = catalog
	default:
		db, err := database.OpenGorm(cfg, log)
		if err != nil {
			return Dependencies{}, cleanup, err
		}
		if sqlDB, err := db.DB(); err == nil {
			cleanups = append(cleanups, func() { _ = sqlDB.Close() })
		}
		if err := repository.Migrate(db); err != nil {
			return Dependencies{}, cleanup, fmt.Errorf("failed to migrate: %w", err)
		}
		catalog := repository.NewCatalogGormRepository(db)
		deps.Requests = repository.NewObligationRequestGormRepository(db)
		deps.Obligations = repository.NewPaymentObligationGormRepository(db)
		deps.Catalog = catalog
		store = catalog
	}
	deps.Verifier = credentials.NewBcryptVerifier(store)

	if cfg.Redis.Enabled {
		client, err := database.ConnectRedis(ctx, cfg)
		if err != nil {
			return Dependencies{}, cleanup, err
		}
		cleanups = append(cleanups, func() { _ = client.Close() })
		deps.Locks = lock.NewRedisLockManager(client, cfg.Redis.LockTTL, cfg.Redis.LockRetryWait, cfg.Redis.LockRetries, log)
	} else {
		deps.Locks = lock.NewMemoryLockManager()
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock, log)
	if err != nil {
		log.Warn("payment gateway not configured, payments are recorded without authorization", zap.Error(err))
	} else {
		deps.Gateway = gateway
	}

	return deps, cleanup, nil
}
