package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/report"
)

func exportCmd() *cobra.Command {
	var (
		all      bool
		output   string
		findings bool
	)

	cmd := &cobra.Command{
		Use:   "export [inspection-id...]",
		Short: "Export inspection reports as CSV",
		Long: `Export re-scores the given inspections and writes the report table as
CSV. The default table has one summary row per inspection; --findings
switches to one row per failing point, paired with its recommendation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dirSource, svc, logger := newEnvironment()

			ids, err := resolveIDs(args, all, dirSource)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if !findings {
				if err := svc.ExportCSV(cmd.Context(), ids, w); err != nil {
					return fmt.Errorf("export failed: %s", domain.ErrorMessage(err))
				}
			} else {
				results, err := svc.Recalculate(cmd.Context(), ids)
				if err != nil {
					return fmt.Errorf("export failed: %s", domain.ErrorMessage(err))
				}
				reports := make([]*domain.InspectionReport, 0, len(ids))
				for _, id := range ids {
					item, ok := results[id]
					if !ok || item.Err != nil {
						logger.Warn("skipping inspection in export", "inspection_id", id)
						continue
					}
					reports = append(reports, item.Report)
				}
				if err := report.WriteFindingsCSV(w, reports); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
			}

			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "export every inspection in the checklist directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&findings, "findings", false, "one row per failing point instead of per inspection")
	return cmd
}
