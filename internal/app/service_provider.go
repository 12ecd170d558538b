package app

import (
	blackjackAPI "blackjack_backend/internal/api/blackjack"
	"blackjack_backend/internal/config"
	"blackjack_backend/internal/config/env"
	"blackjack_backend/internal/middleware"
	"blackjack_backend/internal/repository"
	"blackjack_backend/internal/repository/bet_repo"
	"blackjack_backend/internal/repository/round_repo"
	"blackjack_backend/internal/repository/user_repo"
	"blackjack_backend/internal/service"
	"blackjack_backend/internal/service/blackjack"
	"blackjack_backend/pkg/resp"
	"context"
	"net/http"
	"os"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	configPath string

	// Logging
	logCfg config.LogConfig
	logger *log.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg config.JWTConfig

	// User bits
	userRepo repository.UserRepository

	// Blackjack bits
	blackjackCfg  config.BlackjackConfig
	betRepo       repository.BetRepository
	roundRepo     repository.RoundRepository
	blackjackServ service.BlackjackService
	blackjackHand *blackjackAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *log.Logger {
	if sp.logger == nil {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
		})
		level, err := log.ParseLevel(sp.LogCfg().Level())
		if err != nil {
			logger.Warn("unknown log level, using info", "level", sp.LogCfg().Level())
			level = log.InfoLevel
		}
		logger.SetLevel(level)
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

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) BlackjackCfg() config.BlackjackConfig {
	if sp.blackjackCfg == nil {
		cfg, err := env.NewBlackjackConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get blackjack config: " + err.Error())
		}
		sp.blackjackCfg = cfg
	}
	return sp.blackjackCfg
}

func (sp *ServiceProvider) BetRepository(ctx context.Context) repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.betRepo
}

func (sp *ServiceProvider) RoundRepository() repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository()
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.BlackjackCfg(),
			sp.UserRepo(ctx),
			sp.BetRepository(ctx),
			sp.RoundRepository(),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{
			Serv:   sp.BlackjackService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.blackjackHand
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
		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
		})

		// Blackjack endpoints
		blackjackHandler := sp.BlackjackHandler(ctx)
		r.Route("/blackjack", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey(), sp.Logger()))

			rr.Post("/bet", blackjackHandler.Bet)
			rr.Post("/hit", blackjackHandler.Hit)
			rr.Post("/stand", blackjackHandler.Stand)
			rr.Post("/reset", blackjackHandler.Reset)
			rr.Get("/round", blackjackHandler.Round)
			rr.Get("/balance", blackjackHandler.Balance)
			rr.Get("/history", blackjackHandler.History)
		})

		sp.router = r
	}

	return sp.router
}
