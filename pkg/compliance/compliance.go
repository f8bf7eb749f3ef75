// Package compliance holds the rule evaluator shared by the alert engine
// and the record-entry API, so a reading is judged identically at write
// time and at alert time.
package compliance

import (
	"math"
	"time"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

// Range is a closed temperature interval in degrees celsius.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var thresholds = map[models.TemperatureLogType]Range{
	models.TempLogTypeFridge:   {Min: 0, Max: 5},
	models.TempLogTypeFreezer:  {Min: -25, Max: -18},
	models.TempLogTypeHotHold:  {Min: 63, Max: 100},
	models.TempLogTypeDelivery: {Min: 0, Max: 8},
}

var (
	IceCheckRange     = Range{Min: -1, Max: 1}
	BoilingCheckRange = Range{Min: 99, Max: 101}
)

// ThresholdFor returns the configured range for a reading type, if any.
func ThresholdFor(t models.TemperatureLogType) (Range, bool) {
	r, ok := thresholds[t]
	return r, ok
}

// IsTemperatureCompliant reports whether value lies within the closed
// interval configured for the reading type. Types without a threshold
// (custom appliances, dishwashers) are treated as compliant so that
// unconfigured equipment never raises false alarms.
func IsTemperatureCompliant(t models.TemperatureLogType, value float64) bool {
	r, ok := thresholds[t]
	if !ok {
		return true
	}
	return r.Contains(value)
}

// IsProbeCalibrationCompliant requires both the ice check and the boiling
// check to pass. A missing reading fails the calibration.
func IsProbeCalibrationCompliant(iceTemp, boilingTemp *float64) bool {
	if iceTemp == nil || boilingTemp == nil {
		return false
	}
	return IceCheckRange.Contains(*iceTemp) && BoilingCheckRange.Contains(*boilingTemp)
}

// EvaluateLog derives the compliance flag for a reading at write time.
func EvaluateLog(log *models.TemperatureLog) bool {
	if log.Type == models.TempLogTypeProbeCalibration {
		return IsProbeCalibrationCompliant(log.IceTemp, log.BoilingTemp)
	}
	if _, hasThreshold := thresholds[log.Type]; !hasThreshold {
		return true
	}
	if log.Temperature == nil {
		return false
	}
	return IsTemperatureCompliant(log.Type, *log.Temperature)
}

// DaysUntil returns the ceiling of the day difference between date and
// reference. Past dates yield negative values.
func DaysUntil(date time.Time, reference time.Time) int {
	return int(math.Ceil(date.Sub(reference).Hours() / 24))
}

// CertificateSeverity buckets days-until-expiry into an alert severity.
// Callers are responsible for the 30-day lookahead pre-filter; days
// beyond it are never passed in.
func CertificateSeverity(daysUntilExpiry int) models.AlertSeverity {
	switch {
	case daysUntilExpiry <= 0:
		return models.SeverityCritical
	case daysUntilExpiry <= 7:
		return models.SeverityHigh
	case daysUntilExpiry <= 14:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// IsWithinDedupeWindow reports whether an alert created at createdAt still
// suppresses an identical candidate at now.
func IsWithinDedupeWindow(createdAt, now time.Time, windowHours int) bool {
	window := time.Duration(windowHours) * time.Hour
	elapsed := now.Sub(createdAt)
	return elapsed >= 0 && elapsed < window
}
