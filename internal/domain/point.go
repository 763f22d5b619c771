// Package domain contains core business types and interfaces.
//
// This file defines the InspectionPoint domain type: an atomic checklist
// item with a system category, a criticality tier, an immutable weight,
// and the status recorded by the technician.
package domain

// =============================================================================
// Point Status
// =============================================================================

// PointStatus represents the technician-recorded outcome for a single
// inspection point.
type PointStatus string

const (
	// PointStatusUnanswered indicates the technician has not yet reached
	// this point. This is the initial state of every point and is distinct
	// from not-applicable, which is an explicit assessment.
	PointStatusUnanswered PointStatus = "unanswered"

	// PointStatusPass indicates the point passed inspection.
	PointStatusPass PointStatus = "pass"

	// PointStatusMinorIssue indicates a cosmetic or wear-level defect that
	// does not impair function.
	PointStatusMinorIssue PointStatus = "minor_issue"

	// PointStatusMajorIssue indicates a functional defect that degrades
	// but does not eliminate operation.
	PointStatusMajorIssue PointStatus = "major_issue"

	// PointStatusFail indicates the point failed inspection outright.
	PointStatusFail PointStatus = "fail"

	// PointStatusNotApplicable indicates the technician explicitly assessed
	// the point as not applicable to this vehicle (e.g. a 4WD transfer case
	// check on a 2WD vehicle).
	PointStatusNotApplicable PointStatus = "not_applicable"
)

// String returns the string representation of the status.
func (s PointStatus) String() string {
	return string(s)
}

// IsValid returns true if the status is a recognized value.
func (s PointStatus) IsValid() bool {
	switch s {
	case PointStatusUnanswered, PointStatusPass, PointStatusMinorIssue,
		PointStatusMajorIssue, PointStatusFail, PointStatusNotApplicable:
		return true
	}
	return false
}

// IsAnswered returns true if the technician has assessed this point.
// Not-applicable counts as answered; it is an explicit assessment.
func (s PointStatus) IsAnswered() bool {
	return s != PointStatusUnanswered && s.IsValid()
}

// IsScorable returns true if the status contributes to the weighted health
// calculation. Unanswered and not-applicable points are excluded from both
// the numerator and denominator.
func (s PointStatus) IsScorable() bool {
	switch s {
	case PointStatusPass, PointStatusMinorIssue, PointStatusMajorIssue, PointStatusFail:
		return true
	}
	return false
}

// IsDefect returns true if the status represents any degradation or failure.
func (s PointStatus) IsDefect() bool {
	switch s {
	case PointStatusMinorIssue, PointStatusMajorIssue, PointStatusFail:
		return true
	}
	return false
}

// =============================================================================
// Criticality Tier
// =============================================================================

// CriticalityTier represents how strongly a point's failure should influence
// the overall verdict.
type CriticalityTier string

const (
	// TierCritical marks safety-critical points (brakes, steering). A small
	// number of critical failures dominates the verdict regardless of the
	// aggregate score.
	TierCritical CriticalityTier = "critical"

	// TierMajor marks major mechanical points whose failure requires prompt
	// service but is not an immediate safety hazard.
	TierMajor CriticalityTier = "major"

	// TierStandard marks ordinary condition points.
	TierStandard CriticalityTier = "standard"

	// TierMinor marks cosmetic and convenience points.
	TierMinor CriticalityTier = "minor"
)

// String returns the string representation of the tier.
func (t CriticalityTier) String() string {
	return string(t)
}

// IsValid returns true if the tier is a recognized value.
func (t CriticalityTier) IsValid() bool {
	switch t {
	case TierCritical, TierMajor, TierStandard, TierMinor:
		return true
	}
	return false
}

// WeightBand returns the inclusive weight range allowed for points in this
// tier: critical 8-12, major 4-7, standard 2-4, minor 1-2.
func (t CriticalityTier) WeightBand() (min, max int) {
	switch t {
	case TierCritical:
		return 8, 12
	case TierMajor:
		return 4, 7
	case TierStandard:
		return 2, 4
	case TierMinor:
		return 1, 2
	}
	return 0, 0
}

// AllowsWeight returns true if the given weight falls inside the tier's band.
func (t CriticalityTier) AllowsWeight(weight int) bool {
	min, max := t.WeightBand()
	return weight >= min && weight <= max
}

// =============================================================================
// Point Category
// =============================================================================

// PointCategory identifies the vehicle system a point belongs to.
type PointCategory string

const (
	CategoryBraking         PointCategory = "braking"
	CategorySteering        PointCategory = "steering"
	CategoryTires           PointCategory = "tires"
	CategoryLighting        PointCategory = "lighting"
	CategoryEngine          PointCategory = "engine"
	CategoryTransmission    PointCategory = "transmission"
	CategorySuspension      PointCategory = "suspension"
	CategoryElectrical      PointCategory = "electrical"
	CategoryFrame           PointCategory = "frame"
	CategoryHVAC            PointCategory = "hvac"
	CategoryInterior        PointCategory = "interior"
	CategoryExterior        PointCategory = "exterior"
	CategoryFluids          PointCategory = "fluids"
	CategoryConvenience     PointCategory = "convenience"
	CategoryTechnology      PointCategory = "technology"
	CategorySafetyEquipment PointCategory = "safety_equipment"
)

// String returns the string representation of the category.
func (c PointCategory) String() string {
	return string(c)
}

// IsValid returns true if the category is a recognized value.
func (c PointCategory) IsValid() bool {
	switch c {
	case CategoryBraking, CategorySteering, CategoryTires, CategoryLighting,
		CategoryEngine, CategoryTransmission, CategorySuspension,
		CategoryElectrical, CategoryFrame, CategoryHVAC, CategoryInterior,
		CategoryExterior, CategoryFluids, CategoryConvenience,
		CategoryTechnology, CategorySafetyEquipment:
		return true
	}
	return false
}

// AllCategories lists every recognized category in display order.
func AllCategories() []PointCategory {
	return []PointCategory{
		CategoryBraking, CategorySteering, CategoryTires, CategoryLighting,
		CategoryEngine, CategoryTransmission, CategorySuspension,
		CategoryElectrical, CategoryFrame, CategoryHVAC, CategoryInterior,
		CategoryExterior, CategoryFluids, CategoryConvenience,
		CategoryTechnology, CategorySafetyEquipment,
	}
}

// =============================================================================
// Inspection Point Domain Type
// =============================================================================

// InspectionPoint is an atomic checklist item.
//
// The definition fields (ID, Category, Tier, Weight, Description) come from
// the registered checklist version and are immutable once assigned. Status
// is the only field supplied by the technician.
type InspectionPoint struct {
	ID          string          // Unique within a checklist version
	Category    PointCategory   // Vehicle system this point belongs to
	Tier        CriticalityTier // Criticality tier
	Weight      int             // Immutable weight within the tier's band
	Description string          // One-line description used in reports
	Status      PointStatus     // Technician-recorded outcome
}

// Multiplier returns the status multiplier applied to the point's weight
// when computing achieved weight: pass 1.0, minor-issue 0.7, major-issue
// 0.3, fail 0.0. Non-scorable statuses return 0 and must be excluded by
// the caller.
func (p *InspectionPoint) Multiplier() float64 {
	switch p.Status {
	case PointStatusPass:
		return 1.0
	case PointStatusMinorIssue:
		return 0.7
	case PointStatusMajorIssue:
		return 0.3
	case PointStatusFail:
		return 0.0
	}
	return 0.0
}
