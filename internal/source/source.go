// Package source defines the checklist interchange document and a
// directory-backed ChecklistSource for administrative batch operations.
//
// The engine itself owns no persistence; collaborators hand it checklist
// snapshots. The JSON document here is that hand-off format, shared by
// the HTTP API and the CLI.
package source

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/registry"
)

// PointResponse is one (pointId, status) pair recorded by a technician.
type PointResponse struct {
	PointID string `json:"pointId"`
	Status  string `json:"status"`
}

// Metadata carries the caller-supplied inspection context.
type Metadata struct {
	InspectionID     string    `json:"inspectionId"`
	InspectionNumber string    `json:"inspectionNumber"`
	TechnicianID     string    `json:"technicianId"`
	TechnicianName   string    `json:"technicianName"`
	VehicleRef       string    `json:"vehicleRef"`
	StartedAt        time.Time `json:"startedAt"`
	CompletedAt      time.Time `json:"completedAt"`
}

// Document is a checklist snapshot: the version, the recorded statuses,
// and the inspection metadata.
type Document struct {
	ChecklistVersion string          `json:"checklistVersion"`
	Metadata         Metadata        `json:"metadata"`
	Responses        []PointResponse `json:"responses"`
}

// Decode parses a checklist document from JSON.
func Decode(data []byte) (*Document, error) {
	const op = "source.decode"

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.Wrap(err, domain.EINVALID, op, "checklist document is not valid JSON")
	}
	return &doc, nil
}

// Materialize builds the domain checklist and metadata for a document,
// resolving point definitions through the catalog. Statuses referencing
// unknown points or unrecognized values are rejected.
func (d *Document) Materialize(catalog *registry.Catalog) (*domain.Checklist, *domain.ReportMetadata, error) {
	const op = "source.materialize"

	if d.ChecklistVersion == "" {
		return nil, nil, domain.Invalid(op, "checklistVersion is required")
	}
	reg, err := catalog.Get(d.ChecklistVersion)
	if err != nil {
		return nil, nil, err
	}

	checklist := reg.NewChecklist()
	for _, resp := range d.Responses {
		if err := checklist.SetStatus(resp.PointID, domain.PointStatus(resp.Status)); err != nil {
			return nil, nil, err
		}
	}

	meta, err := d.Metadata.toDomain(op)
	if err != nil {
		return nil, nil, err
	}
	return checklist, meta, nil
}

// toDomain validates the UUID fields and converts the metadata.
func (m Metadata) toDomain(op string) (*domain.ReportMetadata, error) {
	meta := &domain.ReportMetadata{
		InspectionNumber: m.InspectionNumber,
		TechnicianName:   m.TechnicianName,
		VehicleRef:       m.VehicleRef,
		StartedAt:        m.StartedAt,
		CompletedAt:      m.CompletedAt,
	}

	if m.InspectionID != "" {
		id, err := uuid.Parse(m.InspectionID)
		if err != nil {
			return nil, domain.Invalid(op, "metadata.inspectionId is not a valid UUID")
		}
		meta.InspectionID = id
	}
	if m.TechnicianID != "" {
		id, err := uuid.Parse(m.TechnicianID)
		if err != nil {
			return nil, domain.Invalid(op, "metadata.technicianId is not a valid UUID")
		}
		meta.TechnicianID = id
	}
	return meta, nil
}
