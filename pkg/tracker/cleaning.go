package tracker

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

type CleaningInput struct {
	Frequency models.CleaningFrequency
	Date      string
	Tasks     []models.CleaningTask
	SignedOff bool
}

func (t *Tracker) submitCleaningRecord(tenantID string, input *CleaningInput) (*models.CleaningRecord, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTracker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCleaning),
	)

	tasks, err := json.Marshal(input.Tasks)
	if err != nil {
		return nil, err
	}

	record := models.CleaningRecord{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Frequency: input.Frequency,
		Date:      input.Date,
		Tasks:     string(tasks),
		SignedOff: input.SignedOff,
	}

	if err := t.Db.Conn.Create(&record).Error; err != nil {
		return nil, err
	}

	logger.Info("Cleaning record saved", zap.Reflect("record", record))
	return &record, nil
}

func (t *Tracker) getCleaningRecord(tenantID string, frequency models.CleaningFrequency, date string) (*models.CleaningRecord, error) {
	var record models.CleaningRecord
	err := t.Db.Conn.
		Where("tenant_id = ? AND frequency = ? AND date = ?", tenantID, frequency, date).
		Order("signed_off desc").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

type ICleaningImpl struct {
	tracker *Tracker
}

func (ic *ICleaningImpl) SubmitCleaningRecord(tenantID string, input *CleaningInput) (*models.CleaningRecord, error) {
	return ic.tracker.submitCleaningRecord(tenantID, input)
}

func (ic *ICleaningImpl) GetCleaningRecord(tenantID string, frequency models.CleaningFrequency, date string) (*models.CleaningRecord, error) {
	return ic.tracker.getCleaningRecord(tenantID, frequency, date)
}

func (t *Tracker) GetICleaning() ICleaning {
	return &ICleaningImpl{tracker: t}
}
