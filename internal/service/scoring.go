// Package service contains the business logic layer.
//
// This file implements the scoring service: the single-checklist scoring
// entry point plus the batch operations expected by administrative tooling
// (bulk recalculate, CSV export). The service composes the scoring engine
// and report builder; it never persists anything itself. Callers persist
// reports and serialize edits against scoring per checklist.
package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/metrics"
	"github.com/DukeRupert/roadworthy/internal/registry"
	"github.com/DukeRupert/roadworthy/internal/report"
	"github.com/DukeRupert/roadworthy/internal/scoring"
)

// DefaultRecalculateConcurrency bounds parallel scoring in batch
// operations. Checklists score independently, so the only limit is how
// many goroutines are worth spawning for an O(points) computation.
const DefaultRecalculateConcurrency = 4

// =============================================================================
// Interface Definition
// =============================================================================

// BatchItem is the outcome for one checklist within a batch operation.
// Exactly one of Report and Err is set; one checklist's failure never
// aborts the rest of the batch.
type BatchItem struct {
	Report *domain.InspectionReport
	Err    error
}

// ScoringService defines the scoring operations exposed to collaborators.
type ScoringService interface {
	// Score evaluates a checklist and assembles its report. With
	// final=true the completion and critical-coverage invariants are
	// enforced and the checklist is finalized on success.
	Score(ctx context.Context, c *domain.Checklist, meta domain.ReportMetadata, final bool) (*domain.InspectionReport, error)

	// Recalculate re-scores the given inspections, resolving each
	// checklist through the configured source. Results are per-item and
	// independent.
	Recalculate(ctx context.Context, inspectionIDs []string) (map[string]BatchItem, error)

	// ExportCSV re-scores the given inspections and writes one summary
	// row per successful report to w, preserving the input order.
	// Failed items are logged and skipped.
	ExportCSV(ctx context.Context, inspectionIDs []string, w io.Writer) error

	// Versions lists the registered checklist versions.
	Versions() []string
}

// =============================================================================
// Implementation
// =============================================================================

type scoringService struct {
	catalog     *registry.Catalog
	source      domain.ChecklistSource
	logger      *slog.Logger
	concurrency int
}

// NewScoringService creates a ScoringService. The source may be nil when
// only single-checklist scoring is needed; batch operations then fail
// with EINVALID. A concurrency of 0 selects the default.
func NewScoringService(catalog *registry.Catalog, source domain.ChecklistSource, logger *slog.Logger, concurrency int) ScoringService {
	if concurrency <= 0 {
		concurrency = DefaultRecalculateConcurrency
	}
	return &scoringService{
		catalog:     catalog,
		source:      source,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Score evaluates one checklist.
func (s *scoringService) Score(ctx context.Context, c *domain.Checklist, meta domain.ReportMetadata, final bool) (*domain.InspectionReport, error) {
	reg, err := s.catalog.Get(c.Version)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	engine := scoring.New(reg, s.logger)
	builder := report.NewBuilder(engine, s.logger)
	rpt, err := builder.BuildReport(c, meta, final)
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ScoringRunsTotal.WithLabelValues("", "error").Inc()
		return nil, err
	}

	metrics.ScoringRunsTotal.WithLabelValues(rpt.ResultCode.String(), "ok").Inc()
	if final {
		metrics.ReportsFinalized.Inc()
	}
	s.logger.Debug("checklist scored",
		"inspection_id", meta.InspectionID,
		"version", c.Version,
		"result", rpt.ResultCode.String(),
		"health_percent", rpt.HealthPercent,
		"completion_percent", rpt.CompletionPercent,
		"provisional", rpt.IsProvisional,
	)
	return rpt, nil
}

// Recalculate re-scores inspections with bounded concurrency.
func (s *scoringService) Recalculate(ctx context.Context, inspectionIDs []string) (map[string]BatchItem, error) {
	const op = "scoring.recalculate"

	if s.source == nil {
		return nil, domain.Invalid(op, "no checklist source configured for batch operations")
	}
	metrics.BatchRecalculations.Inc()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]BatchItem, len(inspectionIDs))
		sem     = make(chan struct{}, s.concurrency)
	)

	for _, id := range inspectionIDs {
		// Canceled batches stop scheduling new items; finished items
		// keep their results.
		if err := ctx.Err(); err != nil {
			mu.Lock()
			results[id] = BatchItem{Err: domain.Wrap(err, domain.EINTERNAL, op, "batch canceled")}
			mu.Unlock()
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(id string) {
			defer wg.Done()
			defer func() { <-sem }()

			item := s.recalculateOne(ctx, id)
			if item.Err != nil {
				metrics.BatchItemsTotal.WithLabelValues("error").Inc()
				s.logger.Warn("recalculation failed",
					"inspection_id", id,
					"error", item.Err.Error(),
				)
			} else {
				metrics.BatchItemsTotal.WithLabelValues("ok").Inc()
			}

			mu.Lock()
			results[id] = item
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	s.logger.Info("batch recalculation finished",
		"requested", len(inspectionIDs),
		"succeeded", countSucceeded(results),
	)
	return results, nil
}

// recalculateOne resolves and scores a single inspection.
func (s *scoringService) recalculateOne(ctx context.Context, inspectionID string) BatchItem {
	c, meta, err := s.source.Checklist(ctx, inspectionID)
	if err != nil {
		return BatchItem{Err: err}
	}
	rpt, err := s.Score(ctx, c, *meta, false)
	if err != nil {
		return BatchItem{Err: err}
	}
	return BatchItem{Report: rpt}
}

// ExportCSV re-scores inspections and streams the summary table to w.
func (s *scoringService) ExportCSV(ctx context.Context, inspectionIDs []string, w io.Writer) error {
	const op = "scoring.export_csv"

	results, err := s.Recalculate(ctx, inspectionIDs)
	if err != nil {
		return err
	}

	// Preserve the caller's ordering so identical requests produce
	// identical files.
	reports := make([]*domain.InspectionReport, 0, len(inspectionIDs))
	for _, id := range inspectionIDs {
		item, ok := results[id]
		if !ok || item.Err != nil {
			continue
		}
		reports = append(reports, item.Report)
	}

	if err := report.WriteSummaryCSV(w, reports); err != nil {
		return domain.Internal(err, op, "failed to write CSV export")
	}
	metrics.ExportsGenerated.WithLabelValues("csv").Inc()
	return nil
}

// Versions lists the registered checklist versions.
func (s *scoringService) Versions() []string {
	return s.catalog.Versions()
}

func countSucceeded(results map[string]BatchItem) int {
	n := 0
	for _, item := range results {
		if item.Err == nil {
			n++
		}
	}
	return n
}
