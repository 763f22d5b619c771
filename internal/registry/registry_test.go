package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/roadworthy/internal/domain"
)

func validDefs() []PointDefinition {
	return []PointDefinition{
		{ID: "brk-line", Category: domain.CategoryBraking, Tier: domain.TierCritical, Weight: 10, Description: "Brake line integrity"},
		{ID: "eng-mount", Category: domain.CategoryEngine, Tier: domain.TierMajor, Weight: 5, Description: "Engine mount condition"},
		{ID: "int-seat", Category: domain.CategoryInterior, Tier: domain.TierMinor, Weight: 1, Description: "Seat condition"},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		version string
		mutate  func(defs []PointDefinition)
		wantErr string
	}{
		{"valid definition", "v1", nil, ""},
		{"empty version", "", nil, "must not be empty"},
		{"duplicate point ID", "v1", func(d []PointDefinition) { d[1].ID = d[0].ID }, "duplicate point ID"},
		{"empty point ID", "v1", func(d []PointDefinition) { d[0].ID = "" }, "empty ID"},
		{"unrecognized category", "v1", func(d []PointDefinition) { d[0].Category = "warp_drive" }, "unrecognized category"},
		{"unrecognized tier", "v1", func(d []PointDefinition) { d[0].Tier = "mega" }, "unrecognized tier"},
		{"weight above tier band", "v1", func(d []PointDefinition) { d[0].Weight = 13 }, "outside the critical band"},
		{"weight below tier band", "v1", func(d []PointDefinition) { d[2].Weight = 0 }, "outside the minor band"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := validDefs()
			if tt.mutate != nil {
				tt.mutate(defs)
			}

			r, err := New(tt.version, "Test", defs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, r.Version())
			assert.Equal(t, len(defs), r.Len())
		})
	}
}

func TestRegistry_WeightOf(t *testing.T) {
	r, err := New("v1", "Test", validDefs())
	require.NoError(t, err)

	weight, tier, err := r.WeightOf("brk-line")
	require.NoError(t, err)
	assert.Equal(t, 10, weight)
	assert.Equal(t, domain.TierCritical, tier)

	_, _, err = r.WeightOf("brk-rotor-rear")
	require.Error(t, err)
	assert.Equal(t, domain.EUNKNOWN, domain.ErrorCode(err))
	assert.Contains(t, err.Error(), "brk-rotor-rear")
}

func TestRegistry_Definition(t *testing.T) {
	r, err := New("v1", "Test", validDefs())
	require.NoError(t, err)

	def, err := r.Definition("eng-mount")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryEngine, def.Category)
	assert.Equal(t, domain.TierMajor, def.Tier)
	assert.Equal(t, 5, def.Weight)
	assert.Equal(t, "Engine mount condition", def.Description)

	// Definitions are returned by value; callers cannot mutate the table.
	def.Weight = 99
	again, err := r.Definition("eng-mount")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Weight)

	_, err = r.Definition("eng-turbo")
	require.Error(t, err)
	assert.Equal(t, domain.EUNKNOWN, domain.ErrorCode(err))
}

func TestRegistry_NewChecklist(t *testing.T) {
	r, err := New("v1", "Test", validDefs())
	require.NoError(t, err)

	c := r.NewChecklist()
	assert.Equal(t, "v1", c.Version)
	assert.Len(t, c.Points, r.Len())
	for _, p := range c.Points {
		assert.Equal(t, domain.PointStatusUnanswered, p.Status)
	}
}

func TestCatalog(t *testing.T) {
	r1, err := New("v1", "One", validDefs())
	require.NoError(t, err)
	r2, err := New("v2", "Two", validDefs())
	require.NoError(t, err)

	catalog, err := NewCatalog(r2, r1)
	require.NoError(t, err)

	assert.Equal(t, []string{"v1", "v2"}, catalog.Versions())

	got, err := catalog.Get("v1")
	require.NoError(t, err)
	assert.Equal(t, "One", got.Name())

	_, err = catalog.Get("v3")
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))

	_, err = NewCatalog(r1, r1)
	require.Error(t, err)
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
}

func TestBuiltin(t *testing.T) {
	catalog := Builtin()
	assert.Equal(t, []string{VersionInitial160, VersionQuarterly}, catalog.Versions())

	initial, err := catalog.Get(VersionInitial160)
	require.NoError(t, err)
	assert.Equal(t, 160, initial.Len())

	quarterly, err := catalog.Get(VersionQuarterly)
	require.NoError(t, err)
	assert.Greater(t, quarterly.Len(), 0)
	assert.Less(t, quarterly.Len(), initial.Len())

	// Every category is represented in the full inspection.
	seen := make(map[domain.PointCategory]bool)
	for _, p := range initial.NewChecklist().Points {
		seen[p.Category] = true
	}
	for _, cat := range domain.AllCategories() {
		assert.True(t, seen[cat], "category %q missing from the 160-point checklist", cat)
	}
}
