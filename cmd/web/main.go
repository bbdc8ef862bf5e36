package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jkivisto/maturemark/internal/assessments"
	"github.com/jkivisto/maturemark/internal/envstruct"
	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/kvstore"
	"github.com/jkivisto/maturemark/internal/logging"
	"github.com/jkivisto/maturemark/internal/pprofserver"
	"github.com/jkivisto/maturemark/internal/repositories"
	"github.com/joho/godotenv"
)

type config struct {
	Addr      string `env:"MATUREMARK_ADDR" envDefault:"localhost:4000"`
	PprofPort string `env:"MATUREMARK_PPROF_PORT" envDefault:":6060"`
	SQLiteURL string `env:"MATUREMARK_SQLITE_URL" envDefault:"./maturemark.sqlite"`
}

type application struct {
	logger      *slog.Logger
	projects    *repositories.ProjectRepository
	assessments *assessments.Manager
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	var cfg config
	if err := envstruct.Populate(&cfg, os.LookupEnv); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP network address")
	pprofPort := flag.String("pprof-port", cfg.PprofPort, "Port for pprof listening on localhost")
	dbURL := flag.String("sqlite-url", cfg.SQLiteURL, "SQLite URL")
	flag.Parse()

	// Initialise pprof listening on localhost so that it's not open to the world
	pprofserver.Launch(*pprofPort, logger)

	ctx := context.Background()

	store, err := kvstore.Open(ctx, *dbURL, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("connected to db")

	projects := repositories.NewProjectRepository(store, logger)

	app := application{
		logger:      logger,
		projects:    projects,
		assessments: assessments.NewManager(projects, logger),
	}

	if err = app.configureAndStartServer(ctx, *addr); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
