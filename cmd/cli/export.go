package main

import (
	"io"
	"os"

	"github.com/jkivisto/maturemark/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportSearch string
	exportSort   string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "filter by project name or assessor")
	exportCmd.Flags().StringVar(&exportSort, "sort", "date", "sort order: date, score or project")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export completed assessment history as CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		repository, closeStore, err := newRepository(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		projects, err := repository.Load(ctx)
		if err != nil {
			return err
		}
		records := export.Filter(export.Records(projects), exportSearch)
		export.Sort(records, export.SortField(exportSort))

		var out io.Writer = os.Stdout
		if exportOutput != "" {
			file, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()
			out = file
		}
		return export.WriteCSV(out, records)
	},
}
