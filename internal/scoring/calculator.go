package scoring

import (
	"github.com/DukeRupert/roadworthy/internal/domain"
)

// AllNotApplicableWarning annotates a score computed from a checklist
// whose every answered point was assessed as not applicable. This is a
// reportable condition, not an error.
const AllNotApplicableWarning = "every assessed point was marked not applicable; health defaults to 0"

// Score computes the completion percentage and the weighted health
// percentage for a checklist.
//
// Weights and tiers are resolved through the registry, so a checklist
// referencing a point outside the registered version fails with an
// unknown_point error rather than scoring against stale embedded weights.
//
// Unanswered and not-applicable points are excluded from both the total
// and the achieved weight; completion counts not-applicable as answered.
// A checklist with no scorable points yields health 0 with a warning
// annotation instead of dividing by zero.
func (e *Engine) Score(c *domain.Checklist) (*domain.ScoreResult, error) {
	const op = "scoring.score"

	if err := e.checkVersion(op, c); err != nil {
		return nil, err
	}

	var (
		totalWeight    int
		achievedWeight float64
	)
	for i := range c.Points {
		p := &c.Points[i]
		weight, _, err := e.registry.WeightOf(p.ID)
		if err != nil {
			return nil, err
		}
		if !p.Status.IsScorable() {
			continue
		}
		totalWeight += weight
		achievedWeight += float64(weight) * p.Multiplier()
	}

	result := &domain.ScoreResult{
		TotalWeight:       totalWeight,
		AchievedWeight:    achievedWeight,
		CompletionPercent: c.CompletionPercent(),
	}
	result.Provisional = result.CompletionPercent < domain.CompletionThreshold

	if totalWeight == 0 {
		// Degenerate input: nothing scorable. Health is defined as 0.
		result.HealthPercent = 0
		if c.AnsweredCount() > 0 {
			result.Warning = AllNotApplicableWarning
			e.logger.Warn("checklist has no scorable points",
				"version", c.Version,
				"answered", c.AnsweredCount(),
			)
		}
		return result, nil
	}

	result.HealthPercent = 100 * achievedWeight / float64(totalWeight)
	return result, nil
}
