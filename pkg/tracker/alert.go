package tracker

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

func (t *Tracker) listAlerts(tenantID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := t.Db.Conn.
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

func (t *Tracker) acknowledgeAlert(tenantID, alertID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTracker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	result := t.Db.Conn.
		Model(&models.Alert{}).
		Where("id = ? AND tenant_id = ?", alertID, tenantID).
		Update("acknowledged", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Info("Alert acknowledged", zap.String("alert_id", alertID))
	return nil
}

func (t *Tracker) dismissAlert(tenantID, alertID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTracker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	result := t.Db.Conn.
		Where("id = ? AND tenant_id = ?", alertID, tenantID).
		Delete(&models.Alert{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Info("Alert dismissed", zap.String("alert_id", alertID))
	return nil
}

type IAlertImpl struct {
	tracker *Tracker
}

func (ia *IAlertImpl) ListAlerts(tenantID string) ([]models.Alert, error) {
	return ia.tracker.listAlerts(tenantID)
}

func (ia *IAlertImpl) Acknowledge(tenantID, alertID string) error {
	return ia.tracker.acknowledgeAlert(tenantID, alertID)
}

func (ia *IAlertImpl) Dismiss(tenantID, alertID string) error {
	return ia.tracker.dismissAlert(tenantID, alertID)
}

func (t *Tracker) GetIAlert() IAlert {
	return &IAlertImpl{tracker: t}
}
