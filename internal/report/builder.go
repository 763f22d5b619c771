// Package report assembles inspection reports from the scoring engine's
// outputs and renders them as flat tabular data for export.
//
// The builder strictly composes calculator, categorizer, classifier, and
// recommender results; it never re-derives weights or statuses itself, so
// the same checklist state always produces an identical report.
package report

import (
	"log/slog"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/scoring"
)

// Builder assembles InspectionReports for one checklist version.
type Builder struct {
	engine *scoring.Engine
	logger *slog.Logger
}

// NewBuilder creates a report builder on top of a scoring engine.
func NewBuilder(engine *scoring.Engine, logger *slog.Logger) *Builder {
	return &Builder{
		engine: engine,
		logger: logger,
	}
}

// BuildReport scores a checklist and assembles the full report.
//
// With final=false the call always succeeds for a well-formed checklist;
// below the completion threshold the report is annotated as provisional.
//
// With final=true the checklist must be at or above the completion
// threshold (incomplete_inspection otherwise) and every critical-tier
// point must be explicitly assessed (missing_critical_coverage naming the
// unanswered points otherwise). On success the checklist is finalized and
// becomes read-only.
func (b *Builder) BuildReport(c *domain.Checklist, meta domain.ReportMetadata, final bool) (*domain.InspectionReport, error) {
	const op = "report.build"

	score, err := b.engine.Score(c)
	if err != nil {
		return nil, err
	}

	if final {
		if score.CompletionPercent < domain.CompletionThreshold {
			return nil, domain.IncompleteInspection(op, score.CompletionPercent)
		}
		if missing := c.UnansweredCritical(); len(missing) > 0 {
			return nil, domain.MissingCriticalCoverage(op, missing)
		}
	}

	profile, err := b.engine.Categorize(c)
	if err != nil {
		return nil, err
	}
	code := b.engine.Classify(profile, score.HealthPercent)
	recs := b.engine.Recommend(profile)

	var warnings []string
	if score.Warning != "" {
		warnings = append(warnings, score.Warning)
	}

	rpt := &domain.InspectionReport{
		ChecklistVersion:  c.Version,
		HealthPercent:     score.HealthPercent,
		CompletionPercent: score.CompletionPercent,
		TotalWeight:       score.TotalWeight,
		AchievedWeight:    score.AchievedWeight,
		ResultCode:        code,
		ResultLabel:       code.Label(),
		IsProvisional:     !final && score.Provisional,
		Warnings:          warnings,
		FailureProfile:    *profile,
		Recommendations:   recs,
		Metadata:          meta,
	}

	if final {
		if err := c.Finalize(); err != nil {
			return nil, err
		}
		b.logger.Info("inspection finalized",
			"inspection_id", meta.InspectionID,
			"version", c.Version,
			"result", code.String(),
			"health_percent", score.HealthPercent,
		)
	}
	return rpt, nil
}
