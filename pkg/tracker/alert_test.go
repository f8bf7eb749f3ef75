package tracker

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

func seedAlert(t *testing.T, tr *Tracker, tenantID string) models.Alert {
	t.Helper()
	alert := models.Alert{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Type:      models.AlertTypeTemperature,
		Severity:  models.SeverityCritical,
		Title:     "Temperature out of range: Main fridge at 08:30",
		CreatedAt: time.Now(),
		DayBucket: "2024-06-10",
	}
	require.NoError(t, tr.Db.Conn.Create(&alert).Error)
	return alert
}

func TestAcknowledgeAlert(t *testing.T) {
	common.SetTestLoggerNop()

	tr := GetTestTrackerWithMemorySqlite(t)
	tenantID := seedTestTenant(t, tr)
	alert := seedAlert(t, tr, tenantID)

	require.NoError(t, tr.Alert.Acknowledge(tenantID, alert.ID))

	alerts, err := tr.Alert.ListAlerts(tenantID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.True(t, alerts[0].Acknowledged)
}

func TestAcknowledgeAlert_WrongTenant(t *testing.T) {
	common.SetTestLoggerNop()

	tr := GetTestTrackerWithMemorySqlite(t)
	tenantID := seedTestTenant(t, tr)
	otherTenant := seedTestTenant(t, tr)
	alert := seedAlert(t, tr, tenantID)

	// another tenant cannot touch this alert
	err := tr.Alert.Acknowledge(otherTenant, alert.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDismissAlert(t *testing.T) {
	common.SetTestLoggerNop()

	tr := GetTestTrackerWithMemorySqlite(t)
	tenantID := seedTestTenant(t, tr)
	alert := seedAlert(t, tr, tenantID)

	require.NoError(t, tr.Alert.Dismiss(tenantID, alert.ID))

	alerts, err := tr.Alert.ListAlerts(tenantID)
	require.NoError(t, err)
	assert.Len(t, alerts, 0)

	assert.ErrorIs(t, tr.Alert.Dismiss(tenantID, alert.ID), gorm.ErrRecordNotFound)
}

func TestChecklistRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	tr := GetTestTrackerWithMemorySqlite(t)
	tenantID := seedTestTenant(t, tr)

	_, err := tr.Checklist.SubmitChecklist(tenantID, &ChecklistInput{
		Type: models.ChecklistTypeOpening,
		Date: "2024-06-10",
		Items: []models.ChecklistItem{
			{Label: "Fridges at or below 5°C", Completed: true},
			{Label: "Handwash stations stocked", Completed: true},
		},
		SignedOff:   true,
		CompletedBy: "Ana",
	})
	require.NoError(t, err)

	got, err := tr.Checklist.GetChecklist(tenantID, models.ChecklistTypeOpening, "2024-06-10")
	require.NoError(t, err)
	assert.True(t, got.SignedOff)
	assert.Contains(t, got.Items, "Handwash stations stocked")

	_, err = tr.Checklist.GetChecklist(tenantID, models.ChecklistTypeClosing, "2024-06-10")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCleaningRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	tr := GetTestTrackerWithMemorySqlite(t)
	tenantID := seedTestTenant(t, tr)

	_, err := tr.Cleaning.SubmitCleaningRecord(tenantID, &CleaningInput{
		Frequency: models.CleaningFrequencyDaily,
		Date:      "2024-06-10",
		Tasks: []models.CleaningTask{
			{Label: "Sanitise prep surfaces", Completed: true},
		},
		SignedOff: true,
	})
	require.NoError(t, err)

	got, err := tr.Cleaning.GetCleaningRecord(tenantID, models.CleaningFrequencyDaily, "2024-06-10")
	require.NoError(t, err)
	assert.True(t, got.SignedOff)
}

func TestStaffAndCertificates(t *testing.T) {
	common.SetTestLoggerNop()

	tr := GetTestTrackerWithMemorySqlite(t)
	tenantID := seedTestTenant(t, tr)

	employee, err := tr.Staff.AddEmployee(tenantID, &models.Employee{Name: "Ben", Role: "KP"})
	require.NoError(t, err)

	expiry := time.Now().AddDate(1, 0, 0)
	_, err = tr.Staff.AddCertificate(tenantID, employee.ID, &models.Certificate{
		Name:       "Food Hygiene Level 2",
		IssueDate:  time.Now().AddDate(-2, 0, 0),
		ExpiryDate: &expiry,
	})
	require.NoError(t, err)

	// certificates can only be attached to the owning tenant's employees
	otherTenant := seedTestTenant(t, tr)
	_, err = tr.Staff.AddCertificate(otherTenant, employee.ID, &models.Certificate{Name: "First Aid"})
	assert.Error(t, err)

	employees, err := tr.Staff.ListEmployees(tenantID)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Len(t, employees[0].Certificates, 1)
	assert.Equal(t, "Food Hygiene Level 2", employees[0].Certificates[0].Name)
}
