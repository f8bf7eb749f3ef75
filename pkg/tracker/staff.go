package tracker

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

func (t *Tracker) addEmployee(tenantID string, input *models.Employee) (*models.Employee, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTracker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStaff),
	)

	employee := models.Employee{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Name:     input.Name,
		Role:     input.Role,
	}

	if err := t.Db.Conn.Create(&employee).Error; err != nil {
		return nil, err
	}

	logger.Info("Employee added", zap.Reflect("employee", employee))
	return &employee, nil
}

func (t *Tracker) addCertificate(tenantID, employeeID string, input *models.Certificate) (*models.Certificate, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTracker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStaff),
	)

	// the employee must belong to the tenant
	var employee models.Employee
	if err := t.Db.Conn.First(&employee, "id = ? AND tenant_id = ?", employeeID, tenantID).Error; err != nil {
		return nil, err
	}

	cert := models.Certificate{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		EmployeeID: employeeID,
		Name:       input.Name,
		IssueDate:  input.IssueDate,
		ExpiryDate: input.ExpiryDate,
	}

	if err := t.Db.Conn.Create(&cert).Error; err != nil {
		return nil, err
	}

	logger.Info("Certificate added", zap.Reflect("certificate", cert))
	return &cert, nil
}

func (t *Tracker) listEmployees(tenantID string) ([]models.Employee, error) {
	var employees []models.Employee
	err := t.Db.Conn.
		Preload("Certificates").
		Where("tenant_id = ?", tenantID).
		Order("name asc").
		Find(&employees).Error
	return employees, err
}

type IStaffImpl struct {
	tracker *Tracker
}

func (is *IStaffImpl) AddEmployee(tenantID string, input *models.Employee) (*models.Employee, error) {
	return is.tracker.addEmployee(tenantID, input)
}

func (is *IStaffImpl) AddCertificate(tenantID, employeeID string, input *models.Certificate) (*models.Certificate, error) {
	return is.tracker.addCertificate(tenantID, employeeID, input)
}

func (is *IStaffImpl) ListEmployees(tenantID string) ([]models.Employee, error) {
	return is.tracker.listEmployees(tenantID)
}

func (t *Tracker) GetIStaff() IStaff {
	return &IStaffImpl{tracker: t}
}
