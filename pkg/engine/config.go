package engine

import "github.com/safefoodhq/sfbb-compliance-service/pkg/common"

// Config carries the engine tunables. All cutoffs are hour-of-day
// thresholds compared against the injected pass time, an approximation of
// local business hours.
type Config struct {
	DedupeWindowHours        int
	CertificateLookaheadDays int
	OpeningCutoffHour        int
	ClosingCutoffHour        int
	CleaningCutoffHour       int
	TempLogCutoffHour        int
	PassWorkers              int
}

func DefaultConfig() Config {
	return Config{
		DedupeWindowHours:        24,
		CertificateLookaheadDays: 30,
		OpeningCutoffHour:        11,
		ClosingCutoffHour:        10,
		CleaningCutoffHour:       20,
		TempLogCutoffHour:        15,
		PassWorkers:              4,
	}
}

func ConfigFromEnv() Config {
	d := DefaultConfig()
	return Config{
		DedupeWindowHours:        common.EnvInt(common.EnvKeyDedupeWindowHours, d.DedupeWindowHours),
		CertificateLookaheadDays: common.EnvInt(common.EnvKeyCertLookaheadDays, d.CertificateLookaheadDays),
		OpeningCutoffHour:        common.EnvInt(common.EnvKeyOpeningCutoffHour, d.OpeningCutoffHour),
		ClosingCutoffHour:        common.EnvInt(common.EnvKeyClosingCutoffHour, d.ClosingCutoffHour),
		CleaningCutoffHour:       common.EnvInt(common.EnvKeyCleaningCutoffHour, d.CleaningCutoffHour),
		TempLogCutoffHour:        common.EnvInt(common.EnvKeyTempLogCutoffHour, d.TempLogCutoffHour),
		PassWorkers:              common.EnvInt(common.EnvKeyPassWorkers, d.PassWorkers),
	}
}
