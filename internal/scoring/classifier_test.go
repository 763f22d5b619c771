package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/roadworthy/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		critical int
		major    int
		minor    int
		health   float64
		want     domain.ResultCode
	}{
		// Outright fail
		{"three critical failures", 3, 3, 0, 90, domain.ResultFailed},
		{"health below 40", 0, 0, 0, 39.9, domain.ResultFailed},

		// Failed with major defects
		{"one critical and poor health", 1, 1, 0, 59.9, domain.ResultFailedMajorDefects},
		{"two critical and poor health", 2, 2, 0, 45, domain.ResultFailedMajorDefects},

		// Failed with minor defects
		{"nine major failures", 0, 9, 0, 90, domain.ResultFailedMinorDefects},
		{"health below 70", 0, 0, 2, 69.9, domain.ResultFailedMinorDefects},

		// The fail-rule health comparisons are strict, so landing exactly
		// on a threshold falls through to the next rule.
		{"health exactly 40 without critical findings", 0, 0, 0, 40, domain.ResultFailedMinorDefects},
		{"health exactly 60 with a critical finding", 1, 1, 0, 60, domain.ResultFailedMinorDefects},

		// Passed with major defects
		{"few major failures with acceptable health", 0, 3, 0, 75, domain.ResultPassedMajorDefects},
		{"two critical failures but strong health", 2, 2, 0, 80, domain.ResultPassedMajorDefects},
		{"major rule boundary at health 70", 0, 1, 0, 70, domain.ResultPassedMajorDefects},

		// Passed with minor defects
		{"minor issues with good health", 0, 0, 4, 85, domain.ResultPassedMinorDefects},
		{"minor rule boundary at health 80", 0, 0, 1, 80, domain.ResultPassedMinorDefects},
		{"ten minor issues", 0, 0, 10, 95, domain.ResultPassedMinorDefects},

		// Passed
		{"clean sheet", 0, 0, 0, 100, domain.ResultPassed},
		{"pass boundary at health 85", 0, 0, 0, 85, domain.ResultPassed},

		// Gaps between the ladders fall back to passed with minor defects.
		{"gap: six major failures with decent health", 0, 6, 0, 75, domain.ResultPassedMinorDefects},
		{"gap: clean sheet below 85", 0, 0, 0, 82, domain.ResultPassedMinorDefects},
		{"gap: eleven minor issues with strong health", 0, 0, 11, 95, domain.ResultPassedMinorDefects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			profile := &domain.FailureProfile{
				CriticalCount: tt.critical,
				MajorCount:    tt.major,
				MinorCount:    tt.minor,
			}
			assert.Equal(t, tt.want, e.Classify(profile, tt.health))
		})
	}
}

// TestClassify_CriticalDominates pins the rule ordering: a vehicle with
// one critical failure and a health score that would otherwise pass must
// not classify better than one with no critical findings.
func TestClassify_CriticalDominates(t *testing.T) {
	e := newTestEngine(t)

	withCritical := e.Classify(&domain.FailureProfile{CriticalCount: 1, MajorCount: 1}, 55)
	assert.Equal(t, domain.ResultFailedMajorDefects, withCritical)

	withoutCritical := e.Classify(&domain.FailureProfile{MinorCount: 2}, 55)
	assert.Equal(t, domain.ResultFailedMinorDefects, withoutCritical)

	assert.Greater(t, withCritical.Rank(), withoutCritical.Rank())
}

// TestClassify_ImprovementNeverWorsensVerdict walks one critical point
// through the status ladder on an otherwise passing checklist and checks
// the verdict only ever improves.
func TestClassify_ImprovementNeverWorsensVerdict(t *testing.T) {
	e := newTestEngine(t)

	ladder := []domain.PointStatus{
		domain.PointStatusFail,
		domain.PointStatusMajorIssue,
		domain.PointStatusMinorIssue,
		domain.PointStatusPass,
	}

	prevRank := domain.ResultFailed.Rank()
	for _, status := range ladder {
		c := allPass(t, e)
		require.NoError(t, c.SetStatus("brk-line", status))

		score, err := e.Score(c)
		require.NoError(t, err)
		profile, err := e.Categorize(c)
		require.NoError(t, err)

		rank := e.Classify(profile, score.HealthPercent).Rank()
		assert.LessOrEqual(t, rank, prevRank,
			"improving brk-line to %s worsened the verdict", status)
		prevRank = rank
	}
}
