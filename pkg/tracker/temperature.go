package tracker

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/compliance"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

// logTemperature persists one reading. The compliance flag is computed
// here, at write time, through the shared evaluator; the alert engine
// trusts the stored flag and never re-derives it.
func (t *Tracker) logTemperature(tenantID string, input *models.TemperatureLog) (*models.TemperatureLog, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTracker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTemperature),
	)

	log := models.TemperatureLog{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Type:          input.Type,
		ApplianceID:   input.ApplianceID,
		ApplianceName: input.ApplianceName,
		Temperature:   input.Temperature,
		IceTemp:       input.IceTemp,
		BoilingTemp:   input.BoilingTemp,
		Date:          input.Date,
		Time:          input.Time,
		LoggedBy:      input.LoggedBy,
		Notes:         input.Notes,
	}
	log.IsCompliant = compliance.EvaluateLog(&log)

	logger.Info("Received temperature log", zap.Reflect("log", log))

	if err := t.Db.Conn.Create(&log).Error; err != nil {
		return nil, err
	}

	logger.Info("Temperature log saved", zap.Reflect("log", log))
	return &log, nil
}

func (t *Tracker) getLogsForDate(tenantID, date string) ([]models.TemperatureLog, error) {
	var logs []models.TemperatureLog
	err := t.Db.Conn.
		Where("tenant_id = ? AND date = ?", tenantID, date).
		Order("time asc").
		Find(&logs).Error
	return logs, err
}

type ITemperatureImpl struct {
	tracker *Tracker
}

func (it *ITemperatureImpl) LogTemperature(tenantID string, input *models.TemperatureLog) (*models.TemperatureLog, error) {
	return it.tracker.logTemperature(tenantID, input)
}

func (it *ITemperatureImpl) GetLogsForDate(tenantID, date string) ([]models.TemperatureLog, error) {
	return it.tracker.getLogsForDate(tenantID, date)
}

func (t *Tracker) GetITemperature() ITemperature {
	return &ITemperatureImpl{tracker: t}
}
