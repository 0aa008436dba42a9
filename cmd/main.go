package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brewmatic/internal/core"
	"brewmatic/internal/handlers"
	"brewmatic/internal/logger"
	"brewmatic/internal/repository"
	"brewmatic/internal/repository/db"
	"brewmatic/internal/server"
	"brewmatic/internal/service"

	"github.com/spf13/viper"
)

// defaultTick is the control period the core timing constants are tuned for.
const defaultTick = 10 * time.Millisecond

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	machine := core.New(loadCoreConfig())
	services := service.NewService(repos, machine, log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the control loop (via composed service)
	go services.Runner.Run(ctx, tickPeriod())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// loadCoreConfig starts from the hardware defaults and lets config.yml
// override individual knobs under the "core" key.
func loadCoreConfig() core.Config {
	cfg := core.DefaultConfig()
	if sub := viper.Sub("core"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			logger.Get(logger.InfoLevel).Warnw("invalid core config; using defaults", "err", err)
			return core.DefaultConfig()
		}
	}
	return cfg
}

// tickPeriod reads the control period from config, falling back to the default.
func tickPeriod() time.Duration {
	if d := viper.GetDuration("tick"); d > 0 {
		return d
	}
	return defaultTick
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "brewmatic.db")
		dbPath = "brewmatic.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
