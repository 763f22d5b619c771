// Package domain contains core business types and interfaces.
//
// This file defines the Checklist domain type: an ordered, named collection
// of inspection points for one inspection type, populated point-by-point by
// a technician.
package domain

import "context"

// =============================================================================
// Checklist State
// =============================================================================

// ChecklistState represents the lifecycle state of a checklist.
type ChecklistState string

const (
	// ChecklistStateEmpty indicates no point has been assessed yet.
	ChecklistStateEmpty ChecklistState = "empty"

	// ChecklistStateInProgress indicates at least one point has been
	// assessed but completion is below the finalization threshold.
	ChecklistStateInProgress ChecklistState = "in_progress"

	// ChecklistStateComplete indicates completion has reached the
	// finalization threshold. The checklist may still be edited.
	ChecklistStateComplete ChecklistState = "complete"

	// ChecklistStateFinalized indicates a final report has been issued.
	// Finalized checklists are read-only; there is no reopen transition.
	// Reopening is modeled by the caller creating a new checklist.
	ChecklistStateFinalized ChecklistState = "finalized"
)

// String returns the string representation of the state.
func (s ChecklistState) String() string {
	return string(s)
}

// CompletionThreshold is the completion percentage at or above which a
// checklist is considered complete and eligible for a final report.
const CompletionThreshold = 80.0

// =============================================================================
// Checklist Domain Type
// =============================================================================

// Checklist is an ordered collection of inspection points for one
// inspection type. Point IDs are unique within a checklist and the point
// definitions are fixed by the registered checklist version; only statuses
// change over the inspection's duration.
type Checklist struct {
	Version string            // Checklist version identifier (resolves weights)
	Name    string            // Display name, e.g. "160-Point Initial Inspection"
	Points  []InspectionPoint // Ordered points

	finalized bool
	index     map[string]int // point ID -> position in Points
}

// NewChecklist creates a checklist from a fixed set of point definitions.
// Every point starts unanswered regardless of the status carried on the
// definitions. Duplicate point IDs are rejected.
func NewChecklist(version, name string, points []InspectionPoint) (*Checklist, error) {
	const op = "checklist.new"

	c := &Checklist{
		Version: version,
		Name:    name,
		Points:  make([]InspectionPoint, len(points)),
		index:   make(map[string]int, len(points)),
	}
	for i, p := range points {
		if _, exists := c.index[p.ID]; exists {
			return nil, Errorf(EINVALID, op, "duplicate point ID %q in checklist version %q", p.ID, version)
		}
		p.Status = PointStatusUnanswered
		c.Points[i] = p
		c.index[p.ID] = i
	}
	return c, nil
}

// Point returns the point with the given ID, or an unknown_point error.
func (c *Checklist) Point(id string) (*InspectionPoint, error) {
	const op = "checklist.point"

	i, ok := c.index[id]
	if !ok {
		return nil, UnknownPoint(op, id, c.Version)
	}
	return &c.Points[i], nil
}

// SetStatus records the technician's assessment for a point.
// Returns unknown_point if the ID is not part of the checklist, EINVALID
// for an unrecognized status, and ECONFLICT once the checklist has been
// finalized.
func (c *Checklist) SetStatus(id string, status PointStatus) error {
	const op = "checklist.set_status"

	if c.finalized {
		return Errorf(ECONFLICT, op, "checklist is finalized and can no longer be edited")
	}
	if !status.IsValid() {
		return Errorf(EINVALID, op, "unrecognized point status %q", status)
	}
	i, ok := c.index[id]
	if !ok {
		return UnknownPoint(op, id, c.Version)
	}
	c.Points[i].Status = status
	return nil
}

// AnsweredCount returns the number of points the technician has assessed.
// Not-applicable counts as answered.
func (c *Checklist) AnsweredCount() int {
	n := 0
	for i := range c.Points {
		if c.Points[i].Status.IsAnswered() {
			n++
		}
	}
	return n
}

// CompletionPercent returns the percentage of points assessed, 0-100.
// An empty checklist (no points) reports 0.
func (c *Checklist) CompletionPercent() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return 100 * float64(c.AnsweredCount()) / float64(len(c.Points))
}

// UnansweredCritical returns the IDs of critical-tier points that have not
// been assessed. All critical points must be explicitly assessed before a
// final verdict is trustworthy.
func (c *Checklist) UnansweredCritical() []string {
	var ids []string
	for i := range c.Points {
		p := &c.Points[i]
		if p.Tier == TierCritical && !p.Status.IsAnswered() {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// State returns the checklist's lifecycle state, derived from its statuses
// except for the terminal finalized state.
func (c *Checklist) State() ChecklistState {
	if c.finalized {
		return ChecklistStateFinalized
	}
	if c.AnsweredCount() == 0 {
		return ChecklistStateEmpty
	}
	if c.CompletionPercent() >= CompletionThreshold {
		return ChecklistStateComplete
	}
	return ChecklistStateInProgress
}

// IsFinalized returns true once a final report has been issued.
func (c *Checklist) IsFinalized() bool {
	return c.finalized
}

// Finalize marks the checklist read-only. Only complete checklists may be
// finalized; the report builder additionally enforces critical coverage
// before calling this.
func (c *Checklist) Finalize() error {
	const op = "checklist.finalize"

	if c.finalized {
		return nil
	}
	if c.State() != ChecklistStateComplete {
		return IncompleteInspection(op, c.CompletionPercent())
	}
	c.finalized = true
	return nil
}

// =============================================================================
// Checklist Source
// =============================================================================

// ChecklistSource supplies checklists for batch operations. Implementations
// live in the calling layer (persistence is not this engine's concern); the
// engine only reads stable snapshots through this interface.
type ChecklistSource interface {
	// Checklist returns the checklist and report metadata for an
	// inspection identifier. Returns ENOTFOUND if the identifier is
	// unknown.
	Checklist(ctx context.Context, inspectionID string) (*Checklist, *ReportMetadata, error)
}
