package scoring

import (
	"github.com/DukeRupert/roadworthy/internal/domain"
)

// Classify maps failure counts and the health percentage to a result code.
//
// The rules form a priority ladder evaluated top-down; the first match
// wins. Critical findings are checked before percentage-only rules so a
// small number of safety-critical failures dominates the verdict even
// when the aggregate score is otherwise acceptable.
//
// The passing rules require defects of their class to actually exist:
// "passed with major defects" needs at least one major failure, "passed
// with minor defects" at least one minor failure. A clean checklist falls
// through to the plain pass rule.
func (e *Engine) Classify(profile *domain.FailureProfile, healthPercent float64) domain.ResultCode {
	critical := profile.CriticalCount
	major := profile.MajorCount
	minor := profile.MinorCount

	switch {
	case critical >= 3 || healthPercent < 40:
		return domain.ResultFailed
	case critical >= 1 && healthPercent < 60:
		return domain.ResultFailedMajorDefects
	case major > 8 || healthPercent < 70:
		return domain.ResultFailedMinorDefects
	case major >= 1 && major <= 5 && healthPercent >= 70:
		return domain.ResultPassedMajorDefects
	case minor >= 1 && minor <= 10 && healthPercent >= 80:
		return domain.ResultPassedMinorDefects
	case minor <= 5 && healthPercent >= 85:
		return domain.ResultPassed
	}

	// Reachable gap between the fail and pass ladders (e.g. 6-8 major
	// failures with health >= 70, or a clean sheet below 85). Default to
	// the more cautious of the adjoining categories.
	e.logger.Warn("no classification rule matched, defaulting to passed with minor defects",
		"critical_failures", critical,
		"major_failures", major,
		"minor_failures", minor,
		"health_percent", healthPercent,
	)
	return domain.ResultPassedMinorDefects
}
