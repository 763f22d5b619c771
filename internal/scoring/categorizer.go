package scoring

import (
	"github.com/DukeRupert/roadworthy/internal/domain"
)

// Categorize buckets every failing or degraded point by criticality tier
// and collects the descriptions used for recommendation generation.
//
// Counting rules:
//   - criticalCount: critical-tier points with status major-issue or fail.
//   - majorCount: critical- or major-tier points with status major-issue
//     or fail. Critical entries count here too; a critical failure is also
//     a major failure for the major-failure threshold, so the buckets
//     overlap by design.
//   - minorCount: minor-issue on any tier, plus standard- or minor-tier
//     points with status major-issue or fail (those are not counted as
//     major).
func (e *Engine) Categorize(c *domain.Checklist) (*domain.FailureProfile, error) {
	const op = "scoring.categorize"

	if err := e.checkVersion(op, c); err != nil {
		return nil, err
	}

	profile := &domain.FailureProfile{}
	for i := range c.Points {
		p := &c.Points[i]

		// The registered definition is authoritative for tier, category,
		// and description; only the status is taken from the checklist.
		def, err := e.registry.Definition(p.ID)
		if err != nil {
			return nil, err
		}
		if !p.Status.IsDefect() {
			continue
		}

		profile.FailedPoints = append(profile.FailedPoints, domain.FailedPoint{
			PointID:     p.ID,
			Category:    def.Category,
			Tier:        def.Tier,
			Status:      p.Status,
			Description: def.Description,
		})

		severe := p.Status == domain.PointStatusMajorIssue || p.Status == domain.PointStatusFail
		switch {
		case severe && def.Tier == domain.TierCritical:
			profile.CriticalCount++
			profile.MajorCount++
		case severe && def.Tier == domain.TierMajor:
			profile.MajorCount++
		default:
			// Minor-issue on any tier, or a severe finding on a
			// standard/minor-tier point.
			profile.MinorCount++
		}
	}
	return profile, nil
}
