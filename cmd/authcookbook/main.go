// Command authcookbook runs the journal service behind one of three
// interchangeable authentication strategies: none, basic, or jwt. The
// strategy is fixed at startup; the journal API is identical under all three.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ishwor/authcookbook/auth"
	"github.com/ishwor/authcookbook/auth/password"
	"github.com/ishwor/authcookbook/auth/store"
	"github.com/ishwor/authcookbook/auth/token"
	"github.com/ishwor/authcookbook/authapi"
	"github.com/ishwor/authcookbook/config"
	"github.com/ishwor/authcookbook/database"
	"github.com/ishwor/authcookbook/journal"
	"github.com/ishwor/authcookbook/logger"
	"github.com/ishwor/authcookbook/server"
	"github.com/ishwor/authcookbook/server/endpoint"
	"github.com/ishwor/authcookbook/server/middleware"
)

const serviceName = "authcookbook"

func main() {
	var cfg config.Config
	if err := config.Load(serviceName, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, cfg.Service)

	if err := run(cfg, log); err != nil {
		log.Fatal("Service failed", map[string]interface{}{"error": err.Error()})
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	ctx := context.Background()

	strategy, err := auth.ParseStrategy(cfg.Auth.Strategy)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	journals := journal.NewRepository(db)
	if cfg.Database.AutoMigrate {
		if err := journals.Migrate(); err != nil {
			return err
		}
	}

	table, err := auth.TableWithOverrides(strategy, cfg.Auth.Policy)
	if err != nil {
		return err
	}
	policy, err := auth.NewPolicy(table)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	engine := srv.GinEngine()

	engine.GET("/health", endpoint.Health(cfg.Service, db.PingContext))
	engine.GET("/version", endpoint.Version())

	resolver, err := buildResolver(ctx, cfg, strategy, db, engine, log)
	if err != nil {
		return err
	}

	journalHandler := journal.NewHandler(journals)
	protected := engine.Group("/journal")
	protected.Use(middleware.Authenticate(resolver, nil))
	protected.GET("", middleware.RequireOperation(policy, auth.OpList), journalHandler.List)
	protected.GET("/:id", middleware.RequireOperation(policy, auth.OpRead), journalHandler.Get)
	protected.POST("", middleware.RequireOperation(policy, auth.OpCreate), journalHandler.Create)
	protected.PUT("/:id", middleware.RequireOperation(policy, auth.OpUpdate), journalHandler.Update)
	protected.DELETE("/:id", middleware.RequireOperation(policy, auth.OpDelete), journalHandler.Delete)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("Service started", map[string]interface{}{
		"strategy": string(strategy),
		"addr":     srv.Addr(),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return srv.Stop(ctx)
}

// buildResolver wires the strategy's credential backend and resolver, and
// registers any strategy-specific public routes on the engine.
func buildResolver(ctx context.Context, cfg config.Config, strategy auth.Strategy, db *database.DB, engine *gin.Engine, log *logger.Logger) (auth.Resolver, error) {
	switch strategy {
	case auth.StrategyNone:
		return auth.NewOpenResolver(), nil

	case auth.StrategyBasic:
		hasher, err := password.NewHasher(cfg.Auth.Password)
		if err != nil {
			return nil, err
		}
		records := make([]auth.Record, 0, len(cfg.Auth.BasicUsers))
		for _, u := range cfg.Auth.BasicUsers {
			hash, err := hasher.Hash(u.Password)
			if err != nil {
				return nil, fmt.Errorf("hash static user %q: %w", u.Username, err)
			}
			role, err := auth.ParseRole(u.Role)
			if err != nil {
				return nil, err
			}
			records = append(records, auth.Record{Identity: u.Username, PasswordHash: hash, Role: role})
		}
		staticStore, err := store.NewStaticStore(records)
		if err != nil {
			return nil, err
		}
		return auth.NewBasicResolver(staticStore, hasher, log), nil

	case auth.StrategyJWT:
		hasher, err := password.NewHasher(cfg.Auth.Password)
		if err != nil {
			return nil, err
		}
		users := store.NewGormStore(db)
		if cfg.Database.AutoMigrate {
			if err := users.Migrate(); err != nil {
				return nil, err
			}
		}
		if err := seedAdmin(ctx, users, hasher, cfg.Auth.SeedAdmin, log); err != nil {
			return nil, err
		}
		tokens, err := token.NewService(&cfg.Auth.JWT)
		if err != nil {
			return nil, err
		}

		authHandler := authapi.NewHandler(users, hasher, tokens, log)
		public := engine.Group("/auth")
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)

		return auth.NewBearerResolver(tokens, log), nil

	default:
		return nil, fmt.Errorf("unsupported strategy %q", strategy)
	}
}

// seedAdmin creates the configured admin credential if it does not already
// exist. Registration only produces USER roles, so this is the only way an
// ADMIN principal enters the persisted store.
func seedAdmin(ctx context.Context, users *store.GormStore, hasher password.Hasher, seed config.SeedAdmin, log *logger.Logger) error {
	if seed.Email == "" {
		return nil
	}

	exists, err := users.ExistsByIdentity(ctx, seed.Email)
	if err != nil {
		return err
	}
	if exists {
		log.Debug("Admin already seeded", map[string]interface{}{"identity": seed.Email})
		return nil
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}
	if _, err := users.Create(ctx, seed.Email, hash, auth.RoleAdmin); err != nil {
		return err
	}
	log.Info("Seeded admin credential", map[string]interface{}{"identity": seed.Email})
	return nil
}
