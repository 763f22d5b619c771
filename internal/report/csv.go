package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/DukeRupert/roadworthy/internal/domain"
)

// Every report field is a primitive or a fixed-shape list, so reports
// flatten into two tables: one summary row per inspection, and one
// findings row per failing point.

// summaryHeader is the column set for the per-inspection summary export.
var summaryHeader = []string{
	"inspection_id",
	"inspection_number",
	"vehicle",
	"technician",
	"checklist_version",
	"started_at",
	"completed_at",
	"completion_pct",
	"health_pct",
	"total_weight",
	"achieved_weight",
	"result_code",
	"result_label",
	"provisional",
	"critical_failures",
	"major_failures",
	"minor_failures",
	"failed_points",
	"warnings",
}

// findingsHeader is the column set for the per-finding export.
var findingsHeader = []string{
	"inspection_id",
	"inspection_number",
	"point_id",
	"category",
	"tier",
	"status",
	"description",
	"recommendation",
	"urgency",
}

// WriteSummaryCSV writes one row per report.
func WriteSummaryCSV(w io.Writer, reports []*domain.InspectionReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, r := range reports {
		ids := make([]string, len(r.FailureProfile.FailedPoints))
		for i, fp := range r.FailureProfile.FailedPoints {
			ids[i] = fp.PointID
		}
		row := []string{
			r.Metadata.InspectionID.String(),
			r.Metadata.InspectionNumber,
			r.Metadata.VehicleRef,
			r.Metadata.TechnicianName,
			r.ChecklistVersion,
			formatTime(r.Metadata.StartedAt),
			formatTime(r.Metadata.CompletedAt),
			formatPercent(r.CompletionPercent),
			formatPercent(r.HealthPercent),
			strconv.Itoa(r.TotalWeight),
			strconv.FormatFloat(r.AchievedWeight, 'f', 1, 64),
			r.ResultCode.String(),
			r.ResultLabel,
			strconv.FormatBool(r.IsProvisional),
			strconv.Itoa(r.FailureProfile.CriticalCount),
			strconv.Itoa(r.FailureProfile.MajorCount),
			strconv.Itoa(r.FailureProfile.MinorCount),
			strings.Join(ids, "; "),
			strings.Join(r.Warnings, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFindingsCSV writes one row per failing point across all reports,
// pairing each finding with its recommendation.
func WriteFindingsCSV(w io.Writer, reports []*domain.InspectionReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(findingsHeader); err != nil {
		return err
	}
	for _, r := range reports {
		recsByPoint := make(map[string]domain.Recommendation, len(r.Recommendations))
		for _, rec := range r.Recommendations {
			if rec.PointID != "" {
				recsByPoint[rec.PointID] = rec
			}
		}
		for _, fp := range r.FailureProfile.FailedPoints {
			rec := recsByPoint[fp.PointID]
			row := []string{
				r.Metadata.InspectionID.String(),
				r.Metadata.InspectionNumber,
				fp.PointID,
				fp.Category.String(),
				fp.Tier.String(),
				fp.Status.String(),
				fp.Description,
				rec.Action,
				rec.Urgency.String(),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
