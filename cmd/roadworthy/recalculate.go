package main

import (
	"fmt"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/service"
)

func recalculateCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recalculate [inspection-id...]",
		Short: "Re-score stored inspections",
		Long: `Recalculate re-scores inspections from the checklist directory and
prints the fresh result for each. Scoring is deterministic, so repeated
runs over unchanged checklists produce identical results; use this after
a weight-table correction or an engine upgrade.

One inspection's failure never aborts the rest of the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dirSource, svc, _ := newEnvironment()

			ids, err := resolveIDs(args, all, dirSource)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No inspections found.")
				return nil
			}

			bar := progressbar.NewOptions(len(ids),
				progressbar.OptionSetDescription("Recalculating"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			// One service call per inspection keeps the bar honest; the
			// checklists are small enough that batching buys nothing here.
			results := make(map[string]service.BatchItem, len(ids))
			for _, id := range ids {
				batch, err := svc.Recalculate(cmd.Context(), []string{id})
				if err != nil {
					return err
				}
				results[id] = batch[id]
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			printBatchResults(cmd, ids, results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "recalculate every inspection in the checklist directory")
	return cmd
}

// printBatchResults prints one line per inspection in a stable order.
func printBatchResults(cmd *cobra.Command, ids []string, results map[string]service.BatchItem) {
	out := cmd.OutOrStdout()

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	failed := 0
	for _, id := range sorted {
		item := results[id]
		if item.Err != nil {
			failed++
			fmt.Fprintf(out, "%-24s ERROR  %s\n", id, domain.ErrorMessage(item.Err))
			continue
		}
		rpt := item.Report
		fmt.Fprintf(out, "%-24s %-4s health %5.1f%%  completion %5.1f%%\n",
			id, rpt.ResultCode, rpt.HealthPercent, rpt.CompletionPercent)
	}
	fmt.Fprintf(out, "\n%d recalculated, %d failed\n", len(ids)-failed, failed)
}
