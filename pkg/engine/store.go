package engine

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/db"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

// CertificateRecord is the slice of a certificate the expiry check needs,
// with the holder's name joined in.
type CertificateRecord struct {
	ID           string
	Name         string
	EmployeeName string
	ExpiryDate   *time.Time
}

// Store is the persistence contract the engine runs against. Each method
// reads only what one check routine needs; InsertAlert is the single write.
type Store interface {
	ListTenantIDs(ctx context.Context) ([]string, error)
	TenantEmail(ctx context.Context, tenantID string) (string, error)
	CertificatesForTenant(ctx context.Context, tenantID string) ([]CertificateRecord, error)
	SignedOffChecklistExists(ctx context.Context, tenantID string, checklistType models.ChecklistType, date string) (bool, error)
	SignedOffCleaningExists(ctx context.Context, tenantID string, frequency models.CleaningFrequency, date string) (bool, error)
	NonCompliantLogsForDate(ctx context.Context, tenantID, date string) ([]models.TemperatureLog, error)
	MonitoredAppliances(ctx context.Context, tenantID string) ([]models.Appliance, error)
	ApplianceHasLogForDate(ctx context.Context, tenantID, applianceID, date string) (bool, error)
	OpenAlertExists(ctx context.Context, tenantID string, alertType models.AlertType, title string, since time.Time) (bool, error)
	// InsertAlert persists an alert, reporting false when the row was
	// dropped by the (tenant, type, title, day_bucket) unique index.
	InsertAlert(ctx context.Context, alert *models.Alert) (bool, error)
}

// GormStore adapts the shared gorm connection to the Store contract.
type GormStore struct {
	Db db.DB
}

func NewGormStore(database db.DB) *GormStore {
	return &GormStore{Db: database}
}

func (s *GormStore) ListTenantIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.Db.Conn.WithContext(ctx).
		Model(&models.Tenant{}).
		Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) TenantEmail(ctx context.Context, tenantID string) (string, error) {
	var tenant models.Tenant
	err := s.Db.Conn.WithContext(ctx).
		Select("email").
		First(&tenant, "id = ?", tenantID).Error
	return tenant.Email, err
}

func (s *GormStore) CertificatesForTenant(ctx context.Context, tenantID string) ([]CertificateRecord, error) {
	var records []CertificateRecord
	err := s.Db.Conn.WithContext(ctx).
		Model(&models.Certificate{}).
		Select("certificates.id, certificates.name, certificates.expiry_date, employees.name AS employee_name").
		Joins("JOIN employees ON employees.id = certificates.employee_id").
		Where("certificates.tenant_id = ?", tenantID).
		Scan(&records).Error
	return records, err
}

func (s *GormStore) SignedOffChecklistExists(ctx context.Context, tenantID string, checklistType models.ChecklistType, date string) (bool, error) {
	var count int64
	err := s.Db.Conn.WithContext(ctx).
		Model(&models.Checklist{}).
		Where("tenant_id = ? AND type = ? AND date = ? AND signed_off = ?", tenantID, checklistType, date, true).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) SignedOffCleaningExists(ctx context.Context, tenantID string, frequency models.CleaningFrequency, date string) (bool, error) {
	var count int64
	err := s.Db.Conn.WithContext(ctx).
		Model(&models.CleaningRecord{}).
		Where("tenant_id = ? AND frequency = ? AND date = ? AND signed_off = ?", tenantID, frequency, date, true).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) NonCompliantLogsForDate(ctx context.Context, tenantID, date string) ([]models.TemperatureLog, error) {
	var logs []models.TemperatureLog
	err := s.Db.Conn.WithContext(ctx).
		Where("tenant_id = ? AND date = ? AND is_compliant = ?", tenantID, date, false).
		Find(&logs).Error
	return logs, err
}

func (s *GormStore) MonitoredAppliances(ctx context.Context, tenantID string) ([]models.Appliance, error) {
	var appliances []models.Appliance
	err := s.Db.Conn.WithContext(ctx).
		Where("tenant_id = ? AND type IN ?", tenantID, []models.ApplianceType{
			models.ApplianceTypeFridge,
			models.ApplianceTypeFreezer,
			models.ApplianceTypeHotHold,
		}).
		Find(&appliances).Error
	return appliances, err
}

func (s *GormStore) ApplianceHasLogForDate(ctx context.Context, tenantID, applianceID, date string) (bool, error) {
	var count int64
	err := s.Db.Conn.WithContext(ctx).
		Model(&models.TemperatureLog{}).
		Where("tenant_id = ? AND appliance_id = ? AND date = ?", tenantID, applianceID, date).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) OpenAlertExists(ctx context.Context, tenantID string, alertType models.AlertType, title string, since time.Time) (bool, error) {
	var count int64
	err := s.Db.Conn.WithContext(ctx).
		Model(&models.Alert{}).
		Where("tenant_id = ? AND type = ? AND title = ? AND acknowledged = ? AND created_at >= ?",
			tenantID, alertType, title, false, since).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) InsertAlert(ctx context.Context, alert *models.Alert) (bool, error) {
	result := s.Db.Conn.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(alert)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
