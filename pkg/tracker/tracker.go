package tracker

import (
	"github.com/safefoodhq/sfbb-compliance-service/pkg/db"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

type ITemperature interface {
	LogTemperature(tenantID string, input *models.TemperatureLog) (*models.TemperatureLog, error)
	GetLogsForDate(tenantID, date string) ([]models.TemperatureLog, error)
}

type IChecklist interface {
	SubmitChecklist(tenantID string, input *ChecklistInput) (*models.Checklist, error)
	GetChecklist(tenantID string, checklistType models.ChecklistType, date string) (*models.Checklist, error)
}

type ICleaning interface {
	SubmitCleaningRecord(tenantID string, input *CleaningInput) (*models.CleaningRecord, error)
	GetCleaningRecord(tenantID string, frequency models.CleaningFrequency, date string) (*models.CleaningRecord, error)
}

type IStaff interface {
	AddEmployee(tenantID string, input *models.Employee) (*models.Employee, error)
	AddCertificate(tenantID, employeeID string, input *models.Certificate) (*models.Certificate, error)
	ListEmployees(tenantID string) ([]models.Employee, error)
}

type IAlert interface {
	ListAlerts(tenantID string) ([]models.Alert, error)
	Acknowledge(tenantID, alertID string) error
	Dismiss(tenantID, alertID string) error
}

type Tracker struct {
	Db          db.DB
	Temperature ITemperature
	Checklist   IChecklist
	Cleaning    ICleaning
	Staff       IStaff
	Alert       IAlert
}

type ServiceOpts struct {
	Temperature ITemperature
	Checklist   IChecklist
	Cleaning    ICleaning
	Staff       IStaff
	Alert       IAlert
}

func (t *Tracker) WithServices(opts ServiceOpts) *Tracker {
	if opts.Temperature != nil {
		t.Temperature = opts.Temperature
	}
	if opts.Checklist != nil {
		t.Checklist = opts.Checklist
	}
	if opts.Cleaning != nil {
		t.Cleaning = opts.Cleaning
	}
	if opts.Staff != nil {
		t.Staff = opts.Staff
	}
	if opts.Alert != nil {
		t.Alert = opts.Alert
	}
	return t
}
