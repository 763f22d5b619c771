// Package domain contains core business types and interfaces.
//
// This file defines the ResultCode enumeration: the categorical verdict
// assigned by the result classifier.
package domain

// ResultCode is the categorical pass/fail verdict for an inspection.
type ResultCode string

const (
	// ResultPassed indicates the vehicle passed with no notable defects.
	ResultPassed ResultCode = "PAS"

	// ResultPassedMinorDefects indicates a pass with minor defects noted.
	ResultPassedMinorDefects ResultCode = "PMD"

	// ResultPassedMajorDefects indicates a pass with major defects that
	// require scheduled service.
	ResultPassedMajorDefects ResultCode = "PJD"

	// ResultFailedMinorDefects indicates a fail driven by accumulated
	// minor defects or a degraded aggregate score.
	ResultFailedMinorDefects ResultCode = "FMD"

	// ResultFailedMajorDefects indicates a fail driven by critical
	// findings combined with a poor aggregate score.
	ResultFailedMajorDefects ResultCode = "FJD"

	// ResultFailed indicates an outright fail: multiple critical failures
	// or a severely degraded vehicle.
	ResultFailed ResultCode = "FAI"
)

// String returns the three-letter code.
func (c ResultCode) String() string {
	return string(c)
}

// IsValid returns true if the code is a recognized value.
func (c ResultCode) IsValid() bool {
	switch c {
	case ResultPassed, ResultPassedMinorDefects, ResultPassedMajorDefects,
		ResultFailedMinorDefects, ResultFailedMajorDefects, ResultFailed:
		return true
	}
	return false
}

// IsPassing returns true for the three passing verdicts.
func (c ResultCode) IsPassing() bool {
	switch c {
	case ResultPassed, ResultPassedMinorDefects, ResultPassedMajorDefects:
		return true
	}
	return false
}

// Label returns a human-readable label for display and reports.
func (c ResultCode) Label() string {
	switch c {
	case ResultPassed:
		return "Passed"
	case ResultPassedMinorDefects:
		return "Passed - Minor Defects"
	case ResultPassedMajorDefects:
		return "Passed - Major Defects"
	case ResultFailedMinorDefects:
		return "Failed - Minor Defects"
	case ResultFailedMajorDefects:
		return "Failed - Major Defects"
	case ResultFailed:
		return "Failed"
	}
	return string(c)
}

// Rank orders result codes from best (0, Passed) to worst (5, Failed).
// Improving a single point's status must never increase the rank.
func (c ResultCode) Rank() int {
	switch c {
	case ResultPassed:
		return 0
	case ResultPassedMinorDefects:
		return 1
	case ResultPassedMajorDefects:
		return 2
	case ResultFailedMinorDefects:
		return 3
	case ResultFailedMajorDefects:
		return 4
	case ResultFailed:
		return 5
	}
	return 5
}
