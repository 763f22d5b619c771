package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointStatus_Predicates(t *testing.T) {
	tests := []struct {
		status       PointStatus
		wantValid    bool
		wantAnswered bool
		wantScorable bool
		wantDefect   bool
	}{
		{PointStatusUnanswered, true, false, false, false},
		{PointStatusPass, true, true, true, false},
		{PointStatusMinorIssue, true, true, true, true},
		{PointStatusMajorIssue, true, true, true, true},
		{PointStatusFail, true, true, true, true},
		{PointStatusNotApplicable, true, true, false, false},
		{PointStatus("bogus"), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantValid, tt.status.IsValid())
			assert.Equal(t, tt.wantAnswered, tt.status.IsAnswered())
			assert.Equal(t, tt.wantScorable, tt.status.IsScorable())
			assert.Equal(t, tt.wantDefect, tt.status.IsDefect())
		})
	}
}

func TestInspectionPoint_Multiplier(t *testing.T) {
	tests := []struct {
		status PointStatus
		want   float64
	}{
		{PointStatusPass, 1.0},
		{PointStatusMinorIssue, 0.7},
		{PointStatusMajorIssue, 0.3},
		{PointStatusFail, 0.0},
		{PointStatusUnanswered, 0.0},
		{PointStatusNotApplicable, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			p := &InspectionPoint{Status: tt.status}
			assert.Equal(t, tt.want, p.Multiplier())
		})
	}
}

func TestCriticalityTier_WeightBand(t *testing.T) {
	tests := []struct {
		tier     CriticalityTier
		min, max int
	}{
		{TierCritical, 8, 12},
		{TierMajor, 4, 7},
		{TierStandard, 2, 4},
		{TierMinor, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			min, max := tt.tier.WeightBand()
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)

			assert.True(t, tt.tier.AllowsWeight(tt.min))
			assert.True(t, tt.tier.AllowsWeight(tt.max))
			assert.False(t, tt.tier.AllowsWeight(tt.min-1))
			assert.False(t, tt.tier.AllowsWeight(tt.max+1))
		})
	}
}

func TestPointCategory_IsValid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
	assert.False(t, PointCategory("propulsion").IsValid())
	assert.Len(t, AllCategories(), 16)
}

func TestResultCode_RankOrdering(t *testing.T) {
	ordered := []ResultCode{
		ResultPassed,
		ResultPassedMinorDefects,
		ResultPassedMajorDefects,
		ResultFailedMinorDefects,
		ResultFailedMajorDefects,
		ResultFailed,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Rank(), ordered[i].Rank())
	}

	for _, c := range ordered[:3] {
		assert.True(t, c.IsPassing(), "%s should be passing", c)
	}
	for _, c := range ordered[3:] {
		assert.False(t, c.IsPassing(), "%s should be failing", c)
	}
}
