package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/source"
)

func scoreCmd() *cobra.Command {
	var (
		final      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "score <checklist.json>",
		Short: "Score a single checklist document",
		Long: `Score evaluates one checklist document and prints the resulting report.

With --final the completion and critical-coverage requirements are
enforced; a checklist below the completion threshold or missing answers
on critical points is rejected instead of scored provisionally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _, svc, _ := newEnvironment()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read checklist document: %w", err)
			}
			doc, err := source.Decode(data)
			if err != nil {
				return fmt.Errorf("failed to decode checklist document: %s", domain.ErrorMessage(err))
			}
			checklist, meta, err := doc.Materialize(catalog)
			if err != nil {
				return fmt.Errorf("invalid checklist document: %s", domain.ErrorMessage(err))
			}

			rpt, err := svc.Score(cmd.Context(), checklist, *meta, final)
			if err != nil {
				return fmt.Errorf("scoring failed: %s", domain.ErrorMessage(err))
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rpt)
			}
			printReport(cmd, rpt)
			return nil
		},
	}

	cmd.Flags().BoolVar(&final, "final", false, "enforce completion and critical coverage, then finalize")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full report as JSON")
	return cmd
}

// printReport writes the human-readable report summary.
func printReport(cmd *cobra.Command, rpt *domain.InspectionReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Inspection %s (%s)\n", rpt.Metadata.InspectionNumber, rpt.Metadata.VehicleRef)
	fmt.Fprintf(out, "  Checklist:  %s\n", rpt.ChecklistVersion)
	fmt.Fprintf(out, "  Result:     %s (%s)\n", rpt.ResultCode, rpt.ResultLabel)
	fmt.Fprintf(out, "  Health:     %.1f%%\n", rpt.HealthPercent)
	fmt.Fprintf(out, "  Completion: %.1f%%\n", rpt.CompletionPercent)
	if rpt.IsProvisional {
		fmt.Fprintln(out, "  Provisional: yes (below completion threshold)")
	}
	for _, w := range rpt.Warnings {
		fmt.Fprintf(out, "  Warning: %s\n", w)
	}

	if rpt.FailureProfile.HasFailures() {
		fmt.Fprintf(out, "\nFailures (%d critical, %d major, %d minor):\n",
			rpt.FailureProfile.CriticalCount,
			rpt.FailureProfile.MajorCount,
			rpt.FailureProfile.MinorCount,
		)
		for _, fp := range rpt.FailureProfile.FailedPoints {
			fmt.Fprintf(out, "  [%s/%s] %s: %s\n", fp.Tier, fp.Status, fp.PointID, fp.Description)
		}
	}

	if len(rpt.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, rec := range rpt.Recommendations {
			marker := " "
			if rec.Urgency == domain.UrgencyUrgent {
				marker = "!"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, rec.Action)
		}
	}
}
