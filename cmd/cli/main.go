package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/kvstore"
	"github.com/jkivisto/maturemark/internal/repositories"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var sqliteURL string

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVar(&sqliteURL, "sqlite-url", "./maturemark.sqlite", "SQLite URL")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(createProjectCmd)
}

var rootCmd = &cobra.Command{
	Use:  "maturemark-cli",
	Long: `Command line utilities for the maturemark assessment tracker`,
}

// newRepository opens the database behind --sqlite-url and returns a project
// repository together with a close function.
func newRepository(ctx context.Context) (*repositories.ProjectRepository, func() error, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store, err := kvstore.Open(ctx, sqliteURL, logger)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewProjectRepository(store, logger), store.Close, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
