package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
)

func generateCmd() *cobra.Command {
	var (
		output     string
		xlsxOutput string
		paramsFile string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the incident dataset and write it to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.OutputCSV = output
			}
			if xlsxOutput != "" {
				cfg.OutputXLSX = xlsxOutput
			}
			if paramsFile != "" {
				cfg.GeneratorParamsFile = paramsFile
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			repo, closeStorage, err := openStorage(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeStorage()

			datasetService := service.NewDatasetService(repo, nil, nil, nil, log, cfg)

			opts := service.GenerateOptions{}
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}
			run, err := datasetService.Generate(ctx, opts)
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), run)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV output path (overrides OUTPUT_CSV)")
	cmd.Flags().StringVar(&xlsxOutput, "xlsx", "", "Also export an XLSX workbook to this path")
	cmd.Flags().StringVarP(&paramsFile, "params", "p", "", "Generator params YAML (overrides GENERATOR_PARAMS_FILE)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed; 0 picks a time-based seed")
	return cmd
}

// printRun печатает итоги запуска для оператора
func printRun(w io.Writer, run *models.GenerationRun) {
	fmt.Fprintf(w, "Dataset written to %s\n", run.OutputPath)
	fmt.Fprintf(w, "Seed: %d\n", run.Seed)
	fmt.Fprintf(w, "Incidents: %d\n", run.RowCount)
	fmt.Fprintf(w, "Total cost: R$ %.1f million\n", float64(run.TotalCost)/1_000_000)
	for _, c := range models.Carriers {
		fmt.Fprintf(w, "  %-12s %d\n", c, run.CarrierCounts[c])
	}
}
