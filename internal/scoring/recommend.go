package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DukeRupert/roadworthy/internal/domain"
)

// Aggregate recommendation texts.
const (
	NoIssuesRecommendation        = "No issues found - continue regular maintenance schedule."
	MultipleSystemsRecommendation = "Multiple systems affected - comprehensive service recommended."
)

// multipleSystemsThreshold is the number of distinct affected categories
// at which the aggregate comprehensive-service recommendation is added.
const multipleSystemsThreshold = 3

var titleCaser = cases.Title(language.English)

// CategoryLabel returns the display label for a category, e.g.
// "safety_equipment" becomes "Safety Equipment".
func CategoryLabel(c domain.PointCategory) string {
	if c == domain.CategoryHVAC {
		return "HVAC"
	}
	return titleCaser.String(strings.ReplaceAll(c.String(), "_", " "))
}

// Recommend emits one actionable recommendation per failing or degraded
// point, in checklist order, followed by the aggregate recommendation when
// three or more distinct systems are affected. A clean profile yields the
// single no-issues recommendation.
//
// Urgency follows the categorizer's buckets: only severe critical-tier
// findings are urgent.
func (e *Engine) Recommend(profile *domain.FailureProfile) []domain.Recommendation {
	if !profile.HasFailures() {
		return []domain.Recommendation{{
			Action:  NoIssuesRecommendation,
			Urgency: domain.UrgencyStandard,
		}}
	}

	recs := make([]domain.Recommendation, 0, len(profile.FailedPoints)+1)
	for _, fp := range profile.FailedPoints {
		recs = append(recs, pointRecommendation(fp))
	}

	if profile.AffectedCategories() >= multipleSystemsThreshold {
		recs = append(recs, domain.Recommendation{
			Action:  MultipleSystemsRecommendation,
			Urgency: domain.UrgencyStandard,
		})
	}
	return recs
}

// pointRecommendation builds the recommendation for one failing point.
func pointRecommendation(fp domain.FailedPoint) domain.Recommendation {
	label := CategoryLabel(fp.Category)
	severe := fp.Status == domain.PointStatusMajorIssue || fp.Status == domain.PointStatusFail

	var (
		action  string
		urgency domain.RecommendationUrgency
	)
	switch {
	case severe && fp.Tier == domain.TierCritical:
		action = fmt.Sprintf("%s: %s - immediate attention required.", label, fp.Description)
		urgency = domain.UrgencyUrgent
	case severe && fp.Tier == domain.TierMajor:
		action = fmt.Sprintf("%s: %s - schedule service soon.", label, fp.Description)
		urgency = domain.UrgencyStandard
	default:
		action = fmt.Sprintf("%s: %s - monitor at next service.", label, fp.Description)
		urgency = domain.UrgencyStandard
	}

	return domain.Recommendation{
		PointID:  fp.PointID,
		Category: fp.Category,
		Action:   action,
		Urgency:  urgency,
	}
}
