package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/cache"
	"github.com/Youssef-M-Salama/E-Commerce-Website/config"
	"github.com/Youssef-M-Salama/E-Commerce-Website/database"
	"github.com/Youssef-M-Salama/E-Commerce-Website/filestore"
	"github.com/Youssef-M-Salama/E-Commerce-Website/logging"
	"github.com/Youssef-M-Salama/E-Commerce-Website/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront and admin back-office",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("storefront: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// bootstrap loads config, builds the logger and opens the database.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := logging.New(cfg.IsDev(), verbose)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}
	return cfg, logger, db, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			logger.Info("migration complete")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default admin and customer when missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			return database.Seed(db, logger)
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer database.Close(db)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger, db)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger, db *gorm.DB) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	catalogCache := cache.Catalog(cache.Noop{})
	if cfg.Redis.Addr != "" {
		client, err := cache.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			defer client.Close()
			catalogCache = cache.NewRedisCatalog(client, cfg.Redis.TTL, logger.Named("cache"))
			logger.Info("catalog cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
	}

	router, hub := routes.NewRouter(routes.Options{
		DB:           db,
		Cache:        catalogCache,
		Sessions:     auth.NewSessionStore(cfg.Session.Secret, cfg.Session.MaxAge, cfg.Session.Secure),
		WebRoot:      cfg.Uploads.WebRoot,
		AllowOrigins: cfg.CORS.AllowOrigins,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Backup.Dir != "" {
		backup := &filestore.Backup{
			Source:    cfg.Uploads.WebRoot,
			Dir:       cfg.Backup.Dir,
			Retention: cfg.Backup.Retention,
			Hour:      cfg.Backup.Hour,
			Minute:    cfg.Backup.Minute,
			Logger:    logger.Named("backup"),
		}
		g.Go(func() error { return backup.Run(ctx) })
	}

	return g.Wait()
}
