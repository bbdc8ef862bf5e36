package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jkivisto/maturemark/internal/assessments"
	"github.com/spf13/cobra"
)

var createProjectDescription string

func init() {
	createProjectCmd.Flags().StringVar(&createProjectDescription, "description", "", "project description")
}

var createProjectCmd = &cobra.Command{
	Use:   "create-project <name>",
	Short: "Create a project to assess",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("project name must not be blank")
		}
		ctx := cmd.Context()
		repository, closeStore, err := newRepository(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		manager := assessments.NewManager(repository, logger)
		project, err := manager.CreateProject(ctx, name, createProjectDescription)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), project.ID)
		return nil
	},
}
