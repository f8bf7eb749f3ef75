package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/compliance"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/metrics"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

// Notifier delivers a digest of freshly created critical alerts. A nil
// notifier disables delivery.
type Notifier interface {
	SendCriticalAlertDigest(toEmail string, alerts []models.Alert) error
}

type Engine struct {
	Store    Store
	Config   Config
	Notifier Notifier
}

// PassResult is what a single invocation reports back to its trigger.
type PassResult struct {
	AlertsCreated    int `json:"alerts_created"`
	TenantsProcessed int `json:"tenants_processed"`
}

func New(store Store, cfg Config) *Engine {
	return &Engine{Store: store, Config: cfg}
}

func (e *Engine) WithNotifier(n Notifier) *Engine {
	e.Notifier = n
	return e
}

type checkRoutine struct {
	name string
	run  func(ctx context.Context, tenantID string, now time.Time) ([]Candidate, error)
}

func (e *Engine) routines() []checkRoutine {
	return []checkRoutine{
		{"certificates", e.checkCertificates},
		{"opening_checklist", e.checkOpeningChecklist},
		{"closing_checklist", e.checkClosingChecklist},
		{"daily_cleaning", e.checkDailyCleaning},
		{"noncompliant_temperatures", e.checkNonCompliantTemperatures},
		{"missing_temperature_logs", e.checkMissingTemperatureLogs},
	}
}

// RunAlertPass runs one full pass over all tenants at the given time.
// Tenants run under a bounded worker pool; one tenant's failure never
// aborts the pass. The only fatal error is failing to enumerate tenants.
func (e *Engine) RunAlertPass(ctx context.Context, now time.Time) (PassResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngine,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPass),
	)

	start := time.Now()
	defer func() {
		metrics.PassDuration.Observe(time.Since(start).Seconds())
	}()

	tenantIDs, err := e.Store.ListTenantIDs(ctx)
	if err != nil {
		logger.Error("Cannot enumerate tenants, aborting pass", zap.Error(err))
		return PassResult{}, err
	}

	logger.Info("Alert pass started",
		zap.Int("tenants", len(tenantIDs)),
		zap.Time("now", now))

	workers := e.Config.PassWorkers
	if workers <= 0 {
		workers = 1
	}

	var alertsCreated atomic.Int64
	var tenantsProcessed atomic.Int64

	jobs := make(chan string)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tenantID := range jobs {
				created := e.runTenant(ctx, tenantID, now)
				alertsCreated.Add(int64(created))
				tenantsProcessed.Add(1)
				metrics.TenantsProcessedTotal.Inc()
			}
		}()
	}

feed:
	for _, tenantID := range tenantIDs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- tenantID:
		}
	}
	close(jobs)
	wg.Wait()

	result := PassResult{
		AlertsCreated:    int(alertsCreated.Load()),
		TenantsProcessed: int(tenantsProcessed.Load()),
	}

	logger.Info("Alert pass finished",
		zap.Int("alerts_created", result.AlertsCreated),
		zap.Int("tenants_processed", result.TenantsProcessed),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

// runTenant evaluates every check routine for one tenant and persists the
// deduplicated candidates. Routine errors degrade to an empty candidate
// list; panics from malformed tenant data are contained here.
func (e *Engine) runTenant(ctx context.Context, tenantID string, now time.Time) (created int) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngine,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPass),
		zap.String("tenant_id", tenantID),
	)

	defer func() {
		if r := recover(); r != nil {
			metrics.TenantFailuresTotal.Inc()
			logger.Error("Tenant pass panicked", zap.Any("panic", r))
		}
	}()

	var candidates []Candidate
	for _, routine := range e.routines() {
		routineCandidates, err := routine.run(ctx, tenantID, now)
		if err != nil {
			metrics.CheckRoutineErrors.WithLabelValues(routine.name).Inc()
			logger.Warn("Check routine failed, skipping",
				zap.String("routine", routine.name), zap.Error(err))
			continue
		}
		candidates = append(candidates, routineCandidates...)
	}

	createdAlerts := e.persistCandidates(ctx, tenantID, candidates, now, logger)
	e.notifyCriticals(ctx, tenantID, createdAlerts, logger)
	return len(createdAlerts)
}

// persistCandidates serializes the dedupe/insert step for one tenant. The
// in-pass seen set and the open-alert lookup are fast paths; the unique
// index on (tenant_id, type, title, day_bucket) is the authoritative guard.
func (e *Engine) persistCandidates(ctx context.Context, tenantID string, candidates []Candidate, now time.Time, logger *zap.Logger) []models.Alert {
	var created []models.Alert
	seen := make(map[string]bool)
	since := now.Add(-time.Duration(e.Config.DedupeWindowHours) * time.Hour)

	for _, candidate := range candidates {
		key := string(candidate.Type) + "|" + candidate.Title
		if seen[key] {
			metrics.AlertsSuppressedTotal.Inc()
			continue
		}
		seen[key] = true

		exists, err := e.Store.OpenAlertExists(ctx, tenantID, candidate.Type, candidate.Title, since)
		if err != nil {
			logger.Warn("Dedupe lookup failed, dropping candidate for this pass",
				zap.String("title", candidate.Title), zap.Error(err))
			continue
		}
		if exists {
			metrics.AlertsSuppressedTotal.Inc()
			continue
		}

		alert := models.Alert{
			ID:        uuid.NewString(),
			TenantID:  tenantID,
			Type:      candidate.Type,
			Severity:  candidate.Severity,
			Title:     candidate.Title,
			Message:   candidate.Message,
			CreatedAt: now,
			RelatedID: candidate.RelatedID,
			DayBucket: dateKey(now),
		}

		inserted, err := e.Store.InsertAlert(ctx, &alert)
		if err != nil {
			logger.Warn("Alert insert failed, dropping candidate for this pass",
				zap.String("title", candidate.Title), zap.Error(err))
			continue
		}
		if !inserted {
			// lost the race to a concurrent pass, the index did its job
			metrics.AlertsSuppressedTotal.Inc()
			continue
		}

		metrics.AlertsCreatedTotal.WithLabelValues(string(alert.Type), string(alert.Severity)).Inc()
		logger.Info("Alert created", zap.Reflect("alert", alert))
		created = append(created, alert)
	}
	return created
}

func (e *Engine) notifyCriticals(ctx context.Context, tenantID string, created []models.Alert, logger *zap.Logger) {
	if e.Notifier == nil {
		return
	}

	var criticals []models.Alert
	for _, alert := range created {
		if alert.Severity == models.SeverityCritical {
			criticals = append(criticals, alert)
		}
	}
	if len(criticals) == 0 {
		return
	}

	email, err := e.Store.TenantEmail(ctx, tenantID)
	if err != nil || email == "" {
		logger.Warn("No tenant email for critical alert digest", zap.Error(err))
		return
	}

	if err := e.Notifier.SendCriticalAlertDigest(email, criticals); err != nil {
		metrics.NotifyFailuresTotal.Inc()
		logger.Warn("Critical alert digest delivery failed", zap.Error(err))
	}
}

// DedupeWindowContains is re-exported for the record-keeping API so the UI
// side can show "already alerted" state with the same rule the engine uses.
func (e *Engine) DedupeWindowContains(createdAt, now time.Time) bool {
	return compliance.IsWithinDedupeWindow(createdAt, now, e.Config.DedupeWindowHours)
}
