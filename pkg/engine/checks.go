package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/compliance"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

// Candidate is an alert a check routine wants raised. Candidates are
// deduplicated against open alerts before anything is persisted.
type Candidate struct {
	Type      models.AlertType
	Severity  models.AlertSeverity
	Title     string
	Message   string
	RelatedID string
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// BuildCertificateCandidates emits one candidate per certificate expiring
// within the lookahead window, already-expired included. Certificates
// without an expiry date never expire.
func BuildCertificateCandidates(certs []CertificateRecord, now time.Time, cfg Config) []Candidate {
	var candidates []Candidate
	for _, cert := range certs {
		if cert.ExpiryDate == nil {
			continue
		}
		days := compliance.DaysUntil(*cert.ExpiryDate, now)
		if days > cfg.CertificateLookaheadDays {
			continue
		}

		var title, message string
		if days <= 0 {
			title = fmt.Sprintf("%s certificate expired", cert.Name)
			message = fmt.Sprintf("%s's %s certificate expired on %s. Renew it immediately.",
				cert.EmployeeName, cert.Name, dateKey(*cert.ExpiryDate))
		} else {
			title = fmt.Sprintf("%s certificate expiring soon", cert.Name)
			message = fmt.Sprintf("%s's %s certificate expires on %s (in %d days).",
				cert.EmployeeName, cert.Name, dateKey(*cert.ExpiryDate), days)
		}

		candidates = append(candidates, Candidate{
			Type:      models.AlertTypeCertificateExpiry,
			Severity:  compliance.CertificateSeverity(days),
			Title:     title,
			Message:   message,
			RelatedID: cert.ID,
		})
	}
	return candidates
}

// BuildTemperatureCandidates emits one critical candidate per
// non-compliant reading. Each reading is its own incident, so the title
// carries the appliance and reading time.
func BuildTemperatureCandidates(logs []models.TemperatureLog) []Candidate {
	var candidates []Candidate
	for _, log := range logs {
		subject := log.ApplianceName
		if subject == "" {
			subject = string(log.Type)
		}

		var reading string
		if log.Temperature != nil {
			reading = fmt.Sprintf("%.1f°C", *log.Temperature)
		} else {
			reading = "no reading"
		}

		candidates = append(candidates, Candidate{
			Type:      models.AlertTypeTemperature,
			Severity:  models.SeverityCritical,
			Title:     fmt.Sprintf("Temperature out of range: %s at %s", subject, log.Time),
			Message:   fmt.Sprintf("A %s reading of %s for %s was outside the safe range. Check the equipment and record corrective action.", log.Type, reading, subject),
			RelatedID: log.ID,
		})
	}
	return candidates
}

func (e *Engine) checkCertificates(ctx context.Context, tenantID string, now time.Time) ([]Candidate, error) {
	certs, err := e.Store.CertificatesForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return BuildCertificateCandidates(certs, now, e.Config), nil
}

func (e *Engine) checkOpeningChecklist(ctx context.Context, tenantID string, now time.Time) ([]Candidate, error) {
	if now.Hour() < e.Config.OpeningCutoffHour {
		return nil, nil
	}
	today := dateKey(now)
	exists, err := e.Store.SignedOffChecklistExists(ctx, tenantID, models.ChecklistTypeOpening, today)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}
	return []Candidate{{
		Type:     models.AlertTypeOverdueTask,
		Severity: models.SeverityHigh,
		Title:    "Opening checks not completed",
		Message:  fmt.Sprintf("The opening checklist for %s has not been signed off. Complete it before service.", today),
	}}, nil
}

func (e *Engine) checkClosingChecklist(ctx context.Context, tenantID string, now time.Time) ([]Candidate, error) {
	if now.Hour() < e.Config.ClosingCutoffHour {
		return nil, nil
	}
	yesterday := dateKey(now.AddDate(0, 0, -1))
	exists, err := e.Store.SignedOffChecklistExists(ctx, tenantID, models.ChecklistTypeClosing, yesterday)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}
	return []Candidate{{
		Type:     models.AlertTypeOverdueTask,
		Severity: models.SeverityMedium,
		Title:    "Closing checks not completed",
		Message:  fmt.Sprintf("The closing checklist for %s was not signed off. Record it retrospectively in your diary.", yesterday),
	}}, nil
}

func (e *Engine) checkDailyCleaning(ctx context.Context, tenantID string, now time.Time) ([]Candidate, error) {
	if now.Hour() < e.Config.CleaningCutoffHour {
		return nil, nil
	}
	today := dateKey(now)
	exists, err := e.Store.SignedOffCleaningExists(ctx, tenantID, models.CleaningFrequencyDaily, today)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}
	return []Candidate{{
		Type:     models.AlertTypeOverdueTask,
		Severity: models.SeverityMedium,
		Title:    "Daily cleaning not completed",
		Message:  fmt.Sprintf("The daily cleaning schedule for %s has not been signed off.", today),
	}}, nil
}

func (e *Engine) checkNonCompliantTemperatures(ctx context.Context, tenantID string, now time.Time) ([]Candidate, error) {
	logs, err := e.Store.NonCompliantLogsForDate(ctx, tenantID, dateKey(now))
	if err != nil {
		return nil, err
	}
	return BuildTemperatureCandidates(logs), nil
}

func (e *Engine) checkMissingTemperatureLogs(ctx context.Context, tenantID string, now time.Time) ([]Candidate, error) {
	if now.Hour() < e.Config.TempLogCutoffHour {
		return nil, nil
	}
	today := dateKey(now)

	appliances, err := e.Store.MonitoredAppliances(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	for _, appliance := range appliances {
		has, err := e.Store.ApplianceHasLogForDate(ctx, tenantID, appliance.ID, today)
		if err != nil {
			return candidates, err
		}
		if has {
			continue
		}
		candidates = append(candidates, Candidate{
			Type:      models.AlertTypeTemperature,
			Severity:  models.SeverityHigh,
			Title:     fmt.Sprintf("No temperature log for %s today", appliance.Name),
			Message:   fmt.Sprintf("%s (%s) has no recorded temperature check for %s.", appliance.Name, appliance.Type, today),
			RelatedID: appliance.ID,
		})
	}
	return candidates, nil
}
