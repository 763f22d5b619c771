package scoring

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/registry"
)

// testRegistry is a six-point checklist version spanning all four tiers.
// Total scorable weight is 34 when every point is answered.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New("test-v1", "Engine Test Checklist", []registry.PointDefinition{
		{ID: "brk-line", Category: domain.CategoryBraking, Tier: domain.TierCritical, Weight: 10, Description: "Brake line integrity"},
		{ID: "str-rack", Category: domain.CategorySteering, Tier: domain.TierCritical, Weight: 10, Description: "Steering rack condition"},
		{ID: "eng-mount", Category: domain.CategoryEngine, Tier: domain.TierMajor, Weight: 5, Description: "Engine mount condition"},
		{ID: "sus-shock", Category: domain.CategorySuspension, Tier: domain.TierMajor, Weight: 5, Description: "Shock absorber condition"},
		{ID: "elc-batt", Category: domain.CategoryElectrical, Tier: domain.TierStandard, Weight: 3, Description: "Battery condition"},
		{ID: "int-seat", Category: domain.CategoryInterior, Tier: domain.TierMinor, Weight: 1, Description: "Seat condition"},
	})
	require.NoError(t, err)
	return r
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(testRegistry(t), testLogger())
}

// fill builds a checklist for the test registry with the given statuses.
// Points absent from the map stay unanswered.
func fill(t *testing.T, e *Engine, statuses map[string]domain.PointStatus) *domain.Checklist {
	t.Helper()
	c := e.Registry().NewChecklist()
	for id, status := range statuses {
		require.NoError(t, c.SetStatus(id, status))
	}
	return c
}

// allPass answers every point as passing.
func allPass(t *testing.T, e *Engine) *domain.Checklist {
	t.Helper()
	c := e.Registry().NewChecklist()
	for _, p := range c.Points {
		require.NoError(t, c.SetStatus(p.ID, domain.PointStatusPass))
	}
	return c
}
