package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/fantasy-hoops/external/jobqueue"
	"github.com/riskibarqy/fantasy-hoops/external/yahoo"
	"github.com/riskibarqy/fantasy-hoops/internal/config"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/jobscheduler"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/transaction"
	cacherepo "github.com/riskibarqy/fantasy-hoops/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-hoops/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-hoops/internal/interfaces/httpapi"
	platformcache "github.com/riskibarqy/fantasy-hoops/internal/platform/cache"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-hoops/internal/usecase"
)

// NewHTTPServer wires the full dependency graph and returns the server plus
// a cleanup that releases the database pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var (
		leagueRepo   league.Repository       = postgres.NewLeagueRepository(db)
		snapshotRepo snapshot.Repository     = postgres.NewSnapshotRepository(db)
		txRepo       transaction.Repository  = postgres.NewTransactionRepository(db)
		dispatchRepo jobscheduler.Repository = postgres.NewJobDispatchRepository(db)
	)

	if cfg.CacheEnabled {
		store := platformcache.NewStore(cfg.CacheTTL)
		leagueRepo = cacherepo.NewLeagueRepository(leagueRepo, store)
		snapshotRepo = cacherepo.NewSnapshotRepository(snapshotRepo, store)
		txRepo = cacherepo.NewTransactionRepository(txRepo, store)
	}

	tokens := yahoo.NewTokenSource(yahoo.TokenSourceConfig{
		ClientID:     cfg.YahooClientID,
		ClientSecret: cfg.YahooClientSecret,
		RefreshToken: cfg.YahooRefreshToken,
		TokenURL:     cfg.YahooTokenURL,
		Store:        postgres.NewOAuthTokenRepository(db),
		Timeout:      cfg.YahooTimeout,
		Logger:       logger,
	})

	provider := yahoo.NewClient(yahoo.ClientConfig{
		BaseURL:    cfg.YahooAPIBaseURL,
		Tokens:     tokens,
		Timeout:    cfg.YahooTimeout,
		MaxRetries: cfg.YahooMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.YahooCircuitEnabled,
			FailureThreshold: cfg.YahooCircuitFailureCount,
			OpenTimeout:      cfg.YahooCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.YahooCircuitHalfOpenMaxReq,
		},
	})

	queue := usecase.NewNoopJobQueue()
	if cfg.QStashEnabled {
		queue = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
	} else {
		logger.Info("qstash disabled, background refresh runs inline", "reason", "QSTASH_ENABLED=false")
	}

	dashboardSvc := usecase.NewDashboardService(provider, snapshotRepo, leagueRepo, cfg.CacheTTL, logger)
	analyticsSvc := usecase.NewAnalyticsService(dashboardSvc, cfg.PeriodFetchWorkers, logger)
	transactionSvc := usecase.NewTransactionService(provider, txRepo, leagueRepo, cfg.SyncWorkerCount, logger)
	leagueSvc := usecase.NewLeagueService(provider, leagueRepo, logger)
	jobOrchestrator := usecase.NewJobOrchestratorService(
		leagueRepo,
		dashboardSvc,
		transactionSvc,
		queue,
		dispatchRepo,
		usecase.JobOrchestratorConfig{SweepInterval: cfg.RefreshSweepInterval},
		logger,
	)

	handler := httpapi.NewHandler(dashboardSvc, analyticsSvc, transactionSvc, leagueSvc, jobOrchestrator, logger)
	router := httpapi.NewRouter(
		handler,
		httpapi.NewStaticTokenVerifier(cfg.AuthToken),
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
