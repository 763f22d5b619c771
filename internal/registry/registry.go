// Package registry supplies the versioned weight tables for inspection
// checklists.
//
// A Registry is an explicit configuration object injected into the scoring
// engine at construction time. Weights are immutable once a version is
// built; publishing changed weights means registering a new version, never
// mutating an existing one. This keeps multiple checklist versions safe to
// use in one process and guarantees the weight table is stable for the
// duration of a scoring pass.
package registry

import (
	"fmt"
	"sort"

	"github.com/DukeRupert/roadworthy/internal/domain"
)

// PointDefinition is the registered definition of one inspection point:
// everything except the technician-recorded status.
type PointDefinition struct {
	ID          string
	Category    domain.PointCategory
	Tier        domain.CriticalityTier
	Weight      int
	Description string
}

// Registry holds the point definitions for one checklist version.
// Pure lookup; no computation and read-only after construction.
type Registry struct {
	version string
	name    string
	defs    []PointDefinition
	index   map[string]int
}

// New builds a registry for a checklist version. Point IDs must be unique,
// categories and tiers must be recognized values, and every weight must
// fall inside its tier's band (critical 8-12, major 4-7, standard 2-4,
// minor 1-2).
func New(version, name string, defs []PointDefinition) (*Registry, error) {
	const op = "registry.new"

	if version == "" {
		return nil, domain.Invalid(op, "checklist version must not be empty")
	}
	if len(defs) == 0 {
		return nil, domain.Errorf(domain.EINVALID, op, "checklist version %q has no points", version)
	}

	r := &Registry{
		version: version,
		name:    name,
		defs:    make([]PointDefinition, len(defs)),
		index:   make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		if d.ID == "" {
			return nil, domain.Errorf(domain.EINVALID, op, "point %d in version %q has an empty ID", i, version)
		}
		if _, exists := r.index[d.ID]; exists {
			return nil, domain.Errorf(domain.EINVALID, op, "duplicate point ID %q in version %q", d.ID, version)
		}
		if !d.Category.IsValid() {
			return nil, domain.Errorf(domain.EINVALID, op, "point %q has unrecognized category %q", d.ID, d.Category)
		}
		if !d.Tier.IsValid() {
			return nil, domain.Errorf(domain.EINVALID, op, "point %q has unrecognized tier %q", d.ID, d.Tier)
		}
		if !d.Tier.AllowsWeight(d.Weight) {
			min, max := d.Tier.WeightBand()
			return nil, domain.Errorf(domain.EINVALID, op,
				"point %q has weight %d outside the %s band %d-%d", d.ID, d.Weight, d.Tier, min, max)
		}
		r.defs[i] = d
		r.index[d.ID] = i
	}
	return r, nil
}

// MustNew is New for package-level checklist definitions; it panics on an
// invalid definition. Intended for the builtin versions only.
func MustNew(version, name string, defs []PointDefinition) *Registry {
	r, err := New(version, name, defs)
	if err != nil {
		panic(fmt.Sprintf("invalid builtin checklist %q: %v", version, err))
	}
	return r
}

// Version returns the checklist version identifier.
func (r *Registry) Version() string {
	return r.version
}

// Name returns the checklist display name.
func (r *Registry) Name() string {
	return r.name
}

// Len returns the number of registered points.
func (r *Registry) Len() int {
	return len(r.defs)
}

// WeightOf returns the weight and criticality tier of a point, or an
// unknown_point error if the ID is not part of this version.
func (r *Registry) WeightOf(pointID string) (int, domain.CriticalityTier, error) {
	const op = "registry.weight_of"

	i, ok := r.index[pointID]
	if !ok {
		return 0, "", domain.UnknownPoint(op, pointID, r.version)
	}
	return r.defs[i].Weight, r.defs[i].Tier, nil
}

// Definition returns the full definition of a point, or an unknown_point
// error if the ID is not part of this version.
func (r *Registry) Definition(pointID string) (*PointDefinition, error) {
	const op = "registry.definition"

	i, ok := r.index[pointID]
	if !ok {
		return nil, domain.UnknownPoint(op, pointID, r.version)
	}
	d := r.defs[i]
	return &d, nil
}

// NewChecklist creates an empty checklist for this version, with every
// point unanswered.
func (r *Registry) NewChecklist() *domain.Checklist {
	points := make([]domain.InspectionPoint, len(r.defs))
	for i, d := range r.defs {
		points[i] = domain.InspectionPoint{
			ID:          d.ID,
			Category:    d.Category,
			Tier:        d.Tier,
			Weight:      d.Weight,
			Description: d.Description,
		}
	}
	// Uniqueness was validated at construction, so this cannot fail.
	c, err := domain.NewChecklist(r.version, r.name, points)
	if err != nil {
		panic(fmt.Sprintf("registry %q produced an invalid checklist: %v", r.version, err))
	}
	return c
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog maps checklist version identifiers to registries. Like a single
// Registry it is read-only after construction.
type Catalog struct {
	versions map[string]*Registry
}

// NewCatalog builds a catalog from the given registries. Versions must be
// unique.
func NewCatalog(registries ...*Registry) (*Catalog, error) {
	const op = "registry.new_catalog"

	c := &Catalog{versions: make(map[string]*Registry, len(registries))}
	for _, r := range registries {
		if _, exists := c.versions[r.version]; exists {
			return nil, domain.Errorf(domain.ECONFLICT, op, "checklist version %q registered twice", r.version)
		}
		c.versions[r.version] = r
	}
	return c, nil
}

// Get returns the registry for a checklist version, or ENOTFOUND.
func (c *Catalog) Get(version string) (*Registry, error) {
	const op = "registry.catalog_get"

	r, ok := c.versions[version]
	if !ok {
		return nil, domain.NotFound(op, "checklist version", version)
	}
	return r, nil
}

// Versions returns the registered version identifiers in sorted order.
func (c *Catalog) Versions() []string {
	out := make([]string, 0, len(c.versions))
	for v := range c.versions {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
