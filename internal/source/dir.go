package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/registry"
)

// DirSource resolves inspection identifiers to checklist documents stored
// as <dir>/<id>.json. It is the reference ChecklistSource for the admin
// tooling; production deployments substitute their own implementation at
// the same interface.
type DirSource struct {
	dir     string
	catalog *registry.Catalog
}

// NewDirSource creates a directory-backed checklist source.
func NewDirSource(dir string, catalog *registry.Catalog) *DirSource {
	return &DirSource{
		dir:     dir,
		catalog: catalog,
	}
}

// Checklist loads and materializes the document for an inspection ID.
func (s *DirSource) Checklist(_ context.Context, inspectionID string) (*domain.Checklist, *domain.ReportMetadata, error) {
	const op = "source.dir_checklist"

	// Identifiers become file names; refuse anything that could escape
	// the source directory.
	if inspectionID == "" || strings.ContainsAny(inspectionID, `/\`) || inspectionID != filepath.Base(inspectionID) {
		return nil, nil, domain.Invalid(op, "invalid inspection identifier")
	}

	path := filepath.Join(s.dir, inspectionID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, domain.NotFound(op, "inspection", inspectionID)
		}
		return nil, nil, domain.Internal(err, op, "failed to read checklist document")
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return doc.Materialize(s.catalog)
}

// IDs lists the inspection identifiers available in the directory.
func (s *DirSource) IDs() ([]string, error) {
	const op = "source.dir_ids"

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to read checklist directory")
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}
