package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/registry"
)

func testCatalog(t *testing.T) *registry.Catalog {
	t.Helper()
	r, err := registry.New("src-v1", "Source Test Checklist", []registry.PointDefinition{
		{ID: "brk-line", Category: domain.CategoryBraking, Tier: domain.TierCritical, Weight: 10, Description: "Brake line integrity"},
		{ID: "eng-mount", Category: domain.CategoryEngine, Tier: domain.TierMajor, Weight: 5, Description: "Engine mount condition"},
	})
	require.NoError(t, err)
	catalog, err := registry.NewCatalog(r)
	require.NoError(t, err)
	return catalog
}

const validDocument = `{
	"checklistVersion": "src-v1",
	"metadata": {
		"inspectionId": "7d444840-9dc0-11d1-b245-5ffdce74fad2",
		"inspectionNumber": "INS-7",
		"technicianName": "R. Alvarez",
		"vehicleRef": "2019 Transit"
	},
	"responses": [
		{"pointId": "brk-line", "status": "pass"},
		{"pointId": "eng-mount", "status": "not_applicable"}
	]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(validDocument))
	require.NoError(t, err)
	assert.Equal(t, "src-v1", doc.ChecklistVersion)
	assert.Len(t, doc.Responses, 2)

	_, err = Decode([]byte(`{"checklistVersion":`))
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestMaterialize(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("valid document", func(t *testing.T) {
		doc, err := Decode([]byte(validDocument))
		require.NoError(t, err)

		c, meta, err := doc.Materialize(catalog)
		require.NoError(t, err)

		assert.Equal(t, "src-v1", c.Version)
		assert.Equal(t, 2, c.AnsweredCount())
		p, err := c.Point("eng-mount")
		require.NoError(t, err)
		assert.Equal(t, domain.PointStatusNotApplicable, p.Status)

		assert.Equal(t, "INS-7", meta.InspectionNumber)
		assert.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", meta.InspectionID.String())
	})

	tests := []struct {
		name     string
		doc      Document
		wantCode string
	}{
		{
			"missing version",
			Document{},
			domain.EINVALID,
		},
		{
			"unknown version",
			Document{ChecklistVersion: "src-v9"},
			domain.ENOTFOUND,
		},
		{
			"unknown point",
			Document{
				ChecklistVersion: "src-v1",
				Responses:        []PointResponse{{PointID: "rocket", Status: "pass"}},
			},
			domain.EUNKNOWN,
		},
		{
			"unrecognized status",
			Document{
				ChecklistVersion: "src-v1",
				Responses:        []PointResponse{{PointID: "brk-line", Status: "sideways"}},
			},
			domain.EINVALID,
		},
		{
			"malformed inspection UUID",
			Document{
				ChecklistVersion: "src-v1",
				Metadata:         Metadata{InspectionID: "not-a-uuid"},
			},
			domain.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.doc.Materialize(catalog)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
		})
	}
}

func TestDirSource(t *testing.T) {
	catalog := testCatalog(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "insp-7.json"), []byte(validDocument), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	src := NewDirSource(dir, catalog)
	ctx := context.Background()

	t.Run("resolves stored document", func(t *testing.T) {
		c, meta, err := src.Checklist(ctx, "insp-7")
		require.NoError(t, err)
		assert.Equal(t, "src-v1", c.Version)
		assert.Equal(t, "INS-7", meta.InspectionNumber)
	})

	t.Run("missing inspection", func(t *testing.T) {
		_, _, err := src.Checklist(ctx, "insp-8")
		require.Error(t, err)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		for _, id := range []string{"", "../insp-7", "a/b", `a\b`} {
			_, _, err := src.Checklist(ctx, id)
			require.Error(t, err, "id %q", id)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		}
	})

	t.Run("lists only JSON documents", func(t *testing.T) {
		ids, err := src.IDs()
		require.NoError(t, err)
		assert.Equal(t, []string{"insp-7"}, ids)
	})
}
