package tracker

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

type ChecklistInput struct {
	Type        models.ChecklistType
	Date        string
	Items       []models.ChecklistItem
	SignedOff   bool
	CompletedBy string
}

func (t *Tracker) submitChecklist(tenantID string, input *ChecklistInput) (*models.Checklist, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTracker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryChecklist),
	)

	items, err := json.Marshal(input.Items)
	if err != nil {
		return nil, err
	}

	checklist := models.Checklist{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Type:        input.Type,
		Date:        input.Date,
		Items:       string(items),
		SignedOff:   input.SignedOff,
		CompletedBy: input.CompletedBy,
	}

	if err := t.Db.Conn.Create(&checklist).Error; err != nil {
		return nil, err
	}

	logger.Info("Checklist saved", zap.Reflect("checklist", checklist))
	return &checklist, nil
}

// getChecklist returns the signed-off instance when one exists, falling
// back to any instance for the day. Duplicates per day are tolerated.
func (t *Tracker) getChecklist(tenantID string, checklistType models.ChecklistType, date string) (*models.Checklist, error) {
	var checklist models.Checklist
	err := t.Db.Conn.
		Where("tenant_id = ? AND type = ? AND date = ?", tenantID, checklistType, date).
		Order("signed_off desc").
		First(&checklist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &checklist, err
}

type IChecklistImpl struct {
	tracker *Tracker
}

func (ic *IChecklistImpl) SubmitChecklist(tenantID string, input *ChecklistInput) (*models.Checklist, error) {
	return ic.tracker.submitChecklist(tenantID, input)
}

func (ic *IChecklistImpl) GetChecklist(tenantID string, checklistType models.ChecklistType, date string) (*models.Checklist, error) {
	return ic.tracker.getChecklist(tenantID, checklistType, date)
}

func (t *Tracker) GetIChecklist() IChecklist {
	return &IChecklistImpl{tracker: t}
}
