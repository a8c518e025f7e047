package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"gp_tracker/internal/config"
	"gp_tracker/internal/domain/service/calc"
	"gp_tracker/internal/domain/service/params"
	"gp_tracker/internal/domain/service/slayer"
	"gp_tracker/internal/infrastructure/persistence"
	"gp_tracker/internal/infrastructure/pricing"
	"gp_tracker/internal/infrastructure/refdata"
	"gp_tracker/internal/infrastructure/userconfig"
	"gp_tracker/internal/server"
	"gp_tracker/internal/worker"
	"gp_tracker/pkg/application/connectors"
	"gp_tracker/pkg/application/modules"
	"gp_tracker/pkg/httpx"
	"gp_tracker/pkg/logx"
	"gp_tracker/pkg/middlewarex"
)

const logFieldMaxLen = 4096

func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	rd := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rd.Client(ctx)
	defer rd.Close(ctx)

	catalog := refdata.NewCatalog(
		persistence.NewMonsterRepository(db),
		persistence.NewMasterRepository(db),
	)
	if err := catalog.Load(ctx); err != nil {
		return fmt.Errorf("catalog.Load: %w", err)
	}

	priceClient, err := pricing.NewClient(
		cfg.Prices.BaseURL,
		cfg.Prices.UserAgent,
		pricing.WithTimeout(cfg.Prices.FetchTimeout),
		pricing.WithTransport(httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		)),
	)
	if err != nil {
		return fmt.Errorf("pricing.NewClient: %w", err)
	}

	priceCache := pricing.NewCache(priceClient, cfg.Prices.EffectiveTTL(), cfg.Prices.FetchTimeout)

	resolver := params.NewResolver(userconfig.NewStore(redisClient))
	engine := slayer.NewEngine(catalog, priceCache)
	calculator := calc.NewCalculator(resolver, priceCache, engine)

	warmer := worker.NewPriceWarmer(priceCache, catalog).
		WithInterval(cfg.Worker.WarmInterval)

	if err := warmer.Start(ctx); err != nil {
		return fmt.Errorf("warmer.Start: %w", err)
	}
	defer warmer.Stop()

	tasks := worker.NewTaskHandlers(catalog, warmer)

	httpServer := newHTTPServer(cfg, calculator, catalog)

	g, gCtx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(gCtx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeAddress,
	}.Run(gCtx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricAddress,
	}.Run(gCtx, g)

	modules.AsynqServer{
		RedisAddress:  cfg.Redis.Address,
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(gCtx, g,
		modules.AsynqQueues{cfg.Worker.QueueName: 1},
		modules.AsynqHandler{Pattern: worker.TypeRefdataReload, Handle: tasks.HandleRefdataReload},
		modules.AsynqHandler{Pattern: worker.TypePricesWarm, Handle: tasks.HandlePricesWarm},
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newHTTPServer(cfg config.Config, calculator *calc.Calculator, catalog *refdata.Catalog) *http.Server {
	router := chi.NewRouter()

	masker := logx.NewSensitiveDataMasker()

	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	server.NewServer(
		server.NewCalcServer(calculator, catalog),
	).RegisterRoutes(router)

	return &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
}
