// Package domain contains core business types and interfaces.
//
// This file defines the scoring output types: ScoreResult, FailureProfile,
// Recommendation, and the aggregate InspectionReport. Every report field is
// a primitive or a fixed-shape list so reports can be flattened into
// tabular data for CSV export.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Score Result
// =============================================================================

// ScoreResult is the output of the health index calculator. It is a pure
// function of the checklist: recompute it whenever statuses change, never
// mutate it independently.
type ScoreResult struct {
	TotalWeight       int     `json:"totalWeight"`       // Sum of weights of scorable points
	AchievedWeight    float64 `json:"achievedWeight"`    // Sum of weight x status multiplier
	HealthPercent     float64 `json:"healthPercentage"`  // 100 x achieved / total, 0 when nothing is scorable
	CompletionPercent float64 `json:"completionPercentage"` // Answered points / all points, N/A counts as answered
	Provisional       bool    `json:"provisional"`       // True below the completion threshold
	Warning           string  `json:"warning,omitempty"` // Set for degenerate inputs (e.g. every point N/A)
}

// =============================================================================
// Failure Profile
// =============================================================================

// FailedPoint describes one failing or degraded point for reporting and
// recommendation generation.
type FailedPoint struct {
	PointID     string          `json:"pointId"`
	Category    PointCategory   `json:"category"`
	Tier        CriticalityTier `json:"tier"`
	Status      PointStatus     `json:"status"`
	Description string          `json:"description"`
}

// FailureProfile is the output of the failure categorizer: counts of
// failing or degraded points bucketed by criticality tier.
//
// The buckets are not mutually exclusive: a critical-tier major/fail entry
// counts toward both the critical and major totals, because a critical
// failure is also a major failure for the purpose of the major-failure
// threshold.
type FailureProfile struct {
	CriticalCount int           `json:"criticalCount"`
	MajorCount    int           `json:"majorCount"`
	MinorCount    int           `json:"minorCount"`
	FailedPoints  []FailedPoint `json:"failedPoints"`
}

// HasFailures returns true if any point is failing or degraded.
func (p *FailureProfile) HasFailures() bool {
	return len(p.FailedPoints) > 0
}

// AffectedCategories returns the number of distinct categories with at
// least one failing or degraded point.
func (p *FailureProfile) AffectedCategories() int {
	seen := make(map[PointCategory]struct{}, len(p.FailedPoints))
	for _, fp := range p.FailedPoints {
		seen[fp.Category] = struct{}{}
	}
	return len(seen)
}

// =============================================================================
// Recommendation
// =============================================================================

// RecommendationUrgency flags how quickly a recommendation should be acted on.
type RecommendationUrgency string

const (
	// UrgencyUrgent marks recommendations arising from critical-tier
	// failures: immediate attention required.
	UrgencyUrgent RecommendationUrgency = "urgent"

	// UrgencyStandard marks all other recommendations.
	UrgencyStandard RecommendationUrgency = "standard"
)

// String returns the string representation of the urgency.
func (u RecommendationUrgency) String() string {
	return string(u)
}

// Recommendation is one actionable maintenance item derived from a failing
// point. Aggregate recommendations (no issues found, multiple systems
// affected) carry an empty PointID.
type Recommendation struct {
	PointID  string                `json:"pointId,omitempty"`
	Category PointCategory         `json:"category,omitempty"`
	Action   string                `json:"action"`
	Urgency  RecommendationUrgency `json:"urgency"`
}

// =============================================================================
// Report Metadata
// =============================================================================

// ReportMetadata carries caller-supplied inspection context. It is opaque
// to the engine and passed through into the report unchanged.
type ReportMetadata struct {
	InspectionID     uuid.UUID `json:"inspectionId"`
	InspectionNumber string    `json:"inspectionNumber"`
	TechnicianID     uuid.UUID `json:"technicianId"`
	TechnicianName   string    `json:"technicianName"`
	VehicleRef       string    `json:"vehicleRef"`
	StartedAt        time.Time `json:"startedAt"`
	CompletedAt      time.Time `json:"completedAt"`
}

// =============================================================================
// Inspection Report
// =============================================================================

// InspectionReport is the aggregate scoring output: calculator, categorizer,
// classifier, and recommender results plus metadata. It is created once per
// scoring run and immutable once produced; a changed checklist requires a
// new report, not an in-place patch.
type InspectionReport struct {
	ChecklistVersion  string         `json:"checklistVersion"`
	HealthPercent     float64        `json:"healthPercentage"`
	CompletionPercent float64        `json:"completionPercentage"`
	TotalWeight       int            `json:"totalWeight"`
	AchievedWeight    float64        `json:"achievedWeight"`
	ResultCode        ResultCode     `json:"resultCode"`
	ResultLabel       string         `json:"resultLabel"`
	IsProvisional     bool           `json:"isProvisional"`
	Warnings          []string       `json:"warnings,omitempty"`
	FailureProfile    FailureProfile `json:"failureProfile"`
	Recommendations   []Recommendation `json:"recommendations"`
	Metadata          ReportMetadata `json:"metadata"`
}
