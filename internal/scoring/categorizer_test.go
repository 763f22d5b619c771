package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/roadworthy/internal/domain"
)

func TestCategorize_CleanChecklist(t *testing.T) {
	e := newTestEngine(t)

	profile, err := e.Categorize(allPass(t, e))
	require.NoError(t, err)

	assert.False(t, profile.HasFailures())
	assert.Equal(t, 0, profile.CriticalCount)
	assert.Equal(t, 0, profile.MajorCount)
	assert.Equal(t, 0, profile.MinorCount)
}

func TestCategorize_BucketsByTierAndStatus(t *testing.T) {
	e := newTestEngine(t)
	c := fill(t, e, map[string]domain.PointStatus{
		"brk-line":  domain.PointStatusFail,       // critical tier, severe
		"str-rack":  domain.PointStatusMinorIssue, // critical tier, minor issue
		"eng-mount": domain.PointStatusMajorIssue, // major tier, severe
		"sus-shock": domain.PointStatusPass,
		"elc-batt":  domain.PointStatusFail, // standard tier, severe
		"int-seat":  domain.PointStatusMinorIssue,
	})

	profile, err := e.Categorize(c)
	require.NoError(t, err)

	assert.Equal(t, 1, profile.CriticalCount)

	// The critical failure counts toward the major total as well: a
	// critical failure is also a major failure for the threshold rules.
	assert.Equal(t, 2, profile.MajorCount)

	// Minor issues on any tier, plus severe findings on standard/minor
	// tiers, land in the minor bucket.
	assert.Equal(t, 3, profile.MinorCount)

	assert.Len(t, profile.FailedPoints, 5)
	assert.Equal(t, 5, profile.AffectedCategories())
}

func TestCategorize_DefinitionFromRegistryNotChecklist(t *testing.T) {
	e := newTestEngine(t)
	c := fill(t, e, map[string]domain.PointStatus{
		"brk-line": domain.PointStatusFail,
	})

	// Tamper with the embedded definition fields; the registry must win.
	p, err := c.Point("brk-line")
	require.NoError(t, err)
	p.Tier = domain.TierMinor
	p.Category = domain.CategoryInterior
	p.Description = "tampered"

	profile, err := e.Categorize(c)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CriticalCount)

	fp := profile.FailedPoints[0]
	assert.Equal(t, domain.TierCritical, fp.Tier)
	assert.Equal(t, domain.CategoryBraking, fp.Category)
	assert.Equal(t, "Brake line integrity", fp.Description)
}
