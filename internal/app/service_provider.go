package app

import (
	"context"
	"database/sql"
	"net/http"
	wheelAPI "spin_wheel/internal/api/wheel"
	"spin_wheel/internal/config"
	"spin_wheel/internal/config/env"
	"spin_wheel/internal/registry"
	"spin_wheel/internal/repository"
	"spin_wheel/internal/repository/section_file_repo"
	"spin_wheel/internal/repository/section_repo"
	"spin_wheel/internal/repository/section_sqlite_repo"
	"spin_wheel/internal/repository/wheel_stats_repo"
	"spin_wheel/internal/selection"
	"spin_wheel/internal/service"
	"spin_wheel/internal/service/wheel"
	"spin_wheel/pkg/resp"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ServiceProvider struct {
	configPath string

	// Logger
	loggerCfg config.LoggerConfig
	logger    *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool
	sqliteDB *sql.DB

	// Wheel bits
	wheelCfg    config.WheelConfig
	storageCfg  config.StorageConfig
	sectionRepo repository.SectionRepository
	wheelStats  repository.WheelStatsRepository
	registry    *registry.Registry
	loadErr     error
	wheelServ   service.WheelService
	wheelHand   *wheelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		level, err := zapcore.ParseLevel(sp.LoggerCfg().Level())
		if err != nil {
			panic("failed to parse log level: " + err.Error())
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := cfg.Build()
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.logger = logger
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) SQLiteDB(ctx context.Context) *sql.DB {
	if sp.sqliteDB == nil {
		db, err := section_sqlite_repo.Open(ctx, sp.StorageCfg().SQLitePath())
		if err != nil {
			panic("failed to open sqlite: " + err.Error())
		}
		sp.sqliteDB = db
	}
	return sp.sqliteDB
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

// SectionRepository Хранилище секций по драйверу из конфига
func (sp *ServiceProvider) SectionRepository(ctx context.Context) repository.SectionRepository {
	if sp.sectionRepo == nil {
		storage := sp.StorageCfg()
		capacity := sp.WheelCfg().Capacity()

		switch storage.Driver() {
		case env.StorageDriverPostgres:
			sp.sectionRepo = section_repo.NewSectionRepository(sp.DBClient(ctx), sp.TXManager(ctx), storage.Key(), capacity)
		case env.StorageDriverSQLite:
			sp.sectionRepo = section_sqlite_repo.NewSectionSQLiteRepository(sp.SQLiteDB(ctx), storage.Key(), capacity)
		default:
			sp.sectionRepo = section_file_repo.NewSectionFileRepository(storage.FilePath(), capacity)
		}

		sp.Logger().Info("section storage selected", zap.String("driver", storage.Driver()))
	}
	return sp.sectionRepo
}

func (sp *ServiceProvider) WheelStatsRepository() repository.WheelStatsRepository {
	if sp.wheelStats == nil {
		sp.wheelStats = wheel_stats_repo.NewWheelStatsRepository()
	}
	return sp.wheelStats
}

// Registry Реестр секций. Если хранилище не читается, колесо стартует с пустыми секциями
func (sp *ServiceProvider) Registry(ctx context.Context) *registry.Registry {
	if sp.registry == nil {
		reg := registry.New(sp.SectionRepository(ctx), sp.WheelCfg().Capacity())
		err := reg.Load(ctx)
		if err != nil {
			sp.loadErr = err
			sp.Logger().Warn("stored sections not loaded, starting with defaults", zap.Error(err))
		}
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		cfg := sp.WheelCfg()
		sp.wheelServ = wheel.NewWheelService(wheel.Deps{
			Registry:    sp.Registry(ctx),
			Engine:      selection.NewEngine(selection.DefaultRNG()),
			StatsRepo:   sp.WheelStatsRepository(),
			Logger:      sp.Logger().Named("wheel"),
			SettleDelay: cfg.SettleDelay(),
			FullTurns:   cfg.FullTurns(),
		})
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv:   sp.WheelService(ctx),
			Logger: sp.Logger().Named("http"),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		// Wheel endpoints
		r.Route("/wheel", sp.WheelHandler(ctx).Routes)

		sp.router = r
	}

	return sp.router
}

// Close Останавливает таймер колеса и закрывает соединения
func (sp *ServiceProvider) Close() {
	if sp.wheelServ != nil {
		_ = sp.wheelServ.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
		sp.dbClient = nil
	}
	if sp.sqliteDB != nil {
		_ = sp.sqliteDB.Close()
		sp.sqliteDB = nil
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
