package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nextswitchio/guestly/internal/config"
	"github.com/nextswitchio/guestly/internal/handler"
	"github.com/nextswitchio/guestly/internal/middleware"
	"github.com/nextswitchio/guestly/internal/notification"
	"github.com/nextswitchio/guestly/internal/repository"
	"github.com/nextswitchio/guestly/internal/repository/memory"
	"github.com/nextswitchio/guestly/internal/router"
	"github.com/nextswitchio/guestly/internal/scheduler"
	"github.com/nextswitchio/guestly/internal/service"
	"github.com/nextswitchio/guestly/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type repos struct {
	inventory  ports.InventoryRepo
	orders     ports.OrderRepo
	wallets    ports.WalletRepo
	savings    ports.SavingsRepo
	products   ports.ProductRepo
	merchOrder ports.MerchOrderRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"guestly",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(r); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*repos, error) {
	if a.cfg.Storage.Engine == "memory" {
		a.log.Info("using in-memory storage engine")
		return &repos{
			inventory:  memory.NewInventoryRepo(),
			orders:     memory.NewOrderRepo(),
			wallets:    memory.NewWalletRepo(),
			savings:    memory.NewSavingsRepo(),
			products:   memory.NewProductRepo(),
			merchOrder: memory.NewMerchOrderRepo(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return &repos{
		inventory:  repository.NewInventoryRepo(a.db),
		orders:     repository.NewOrderRepo(a.db),
		wallets:    repository.NewWalletRepo(a.db),
		savings:    repository.NewSavingsRepo(a.db),
		products:   repository.NewProductRepo(a.db),
		merchOrder: repository.NewMerchOrderRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices(r *repos) error {
	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.OpsChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	inventoryService := service.NewInventoryService(r.inventory, a.log)
	walletService := service.NewWalletService(r.wallets, r.savings, a.log)
	orderService := service.NewOrderService(
		r.orders,
		inventoryService,
		walletService,
		n,
		a.cfg.Scheduler.OrderTTL,
		a.log,
	)
	merchService := service.NewMerchService(
		r.products,
		r.merchOrder,
		r.products,
		walletService,
		n,
		a.cfg.Scheduler.OrderTTL,
		a.log,
	)

	a.scheduler = scheduler.New(
		orderService,
		merchService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(inventoryService, orderService, walletService, merchService)
	rt := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      rt,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
