package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/metrics"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/tracker"
)

type TemperatureLogRequest struct {
	Type          string   `json:"type"`
	ApplianceID   string   `json:"applianceId"`
	ApplianceName string   `json:"applianceName"`
	Temperature   *float64 `json:"temperature"`
	IceTemp       *float64 `json:"iceTemp"`
	BoilingTemp   *float64 `json:"boilingTemp"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	LoggedBy      string   `json:"loggedBy"`
	Notes         string   `json:"notes"`
}

var temperatureLogRequestSchema = z.Struct(z.Shape{
	"Type": z.String().Required().OneOf([]string{
		"fridge", "freezer", "hot_hold", "delivery", "dishwasher", "probe_calibration",
	}),
	"ApplianceID":   z.String(),
	"ApplianceName": z.String(),
	"Temperature":   z.Ptr(z.Float64()),
	"IceTemp":       z.Ptr(z.Float64()),
	"BoilingTemp":   z.Ptr(z.Float64()),
	"Date":          z.String().Required(),
	"Time":          z.String().Required(),
	"LoggedBy":      z.String(),
	"Notes":         z.String(),
})

func (rs *RestfulServer) PostTemperatureLog(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req TemperatureLogRequest
	if err := temperatureLogRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	log, err := rs.Tracker.Temperature.LogTemperature(tenantID, &models.TemperatureLog{
		Type:          models.TemperatureLogType(req.Type),
		ApplianceID:   req.ApplianceID,
		ApplianceName: req.ApplianceName,
		Temperature:   req.Temperature,
		IceTemp:       req.IceTemp,
		BoilingTemp:   req.BoilingTemp,
		Date:          req.Date,
		Time:          req.Time,
		LoggedBy:      req.LoggedBy,
		Notes:         req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func (rs *RestfulServer) GetTemperatureLogs(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	logs, err := rs.Tracker.Temperature.GetLogsForDate(tenantID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

type ChecklistItemRequest struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type ChecklistRequest struct {
	Type        string                 `json:"type"`
	Date        string                 `json:"date"`
	Items       []ChecklistItemRequest `json:"items"`
	SignedOff   bool                   `json:"signedOff"`
	CompletedBy string                 `json:"completedBy"`
}

var checklistRequestSchema = z.Struct(z.Shape{
	"Type": z.String().Required().OneOf([]string{"opening", "closing"}),
	"Date": z.String().Required(),
	"Items": z.Slice(z.Struct(z.Shape{
		"Label":     z.String().Required(),
		"Completed": z.Bool(),
	})),
	"SignedOff":   z.Bool(),
	"CompletedBy": z.String(),
})

func (rs *RestfulServer) PostChecklist(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ChecklistRequest
	if err := checklistRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	items := make([]models.ChecklistItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.ChecklistItem{Label: item.Label, Completed: item.Completed})
	}

	checklist, err := rs.Tracker.Checklist.SubmitChecklist(tenantID, &tracker.ChecklistInput{
		Type:        models.ChecklistType(req.Type),
		Date:        req.Date,
		Items:       items,
		SignedOff:   req.SignedOff,
		CompletedBy: req.CompletedBy,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, checklist)
}

func (rs *RestfulServer) GetChecklist(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	checklistType := models.ChecklistType(c.Query("type"))
	if checklistType != models.ChecklistTypeOpening && checklistType != models.ChecklistTypeClosing {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be opening or closing"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	checklist, err := rs.Tracker.Checklist.GetChecklist(tenantID, checklistType, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, checklist)
}

type CleaningRecordRequest struct {
	Frequency string                 `json:"frequency"`
	Date      string                 `json:"date"`
	Tasks     []ChecklistItemRequest `json:"tasks"`
	SignedOff bool                   `json:"signedOff"`
}

var cleaningRecordRequestSchema = z.Struct(z.Shape{
	"Frequency": z.String().Required().OneOf([]string{"daily", "weekly", "monthly"}),
	"Date":      z.String().Required(),
	"Tasks": z.Slice(z.Struct(z.Shape{
		"Label":     z.String().Required(),
		"Completed": z.Bool(),
	})),
	"SignedOff": z.Bool(),
})

func (rs *RestfulServer) PostCleaningRecord(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req CleaningRecordRequest
	if err := cleaningRecordRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	tasks := make([]models.CleaningTask, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		tasks = append(tasks, models.CleaningTask{Label: task.Label, Completed: task.Completed})
	}

	record, err := rs.Tracker.Cleaning.SubmitCleaningRecord(tenantID, &tracker.CleaningInput{
		Frequency: models.CleaningFrequency(req.Frequency),
		Date:      req.Date,
		Tasks:     tasks,
		SignedOff: req.SignedOff,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (rs *RestfulServer) GetCleaningRecord(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	frequency := models.CleaningFrequency(c.Query("frequency"))
	if frequency == "" {
		frequency = models.CleaningFrequencyDaily
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	record, err := rs.Tracker.Cleaning.GetCleaningRecord(tenantID, frequency, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

type EmployeeRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

var employeeRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Required(),
	"Role": z.String(),
})

func (rs *RestfulServer) PostEmployee(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req EmployeeRequest
	if err := employeeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	employee, err := rs.Tracker.Staff.AddEmployee(tenantID, &models.Employee{
		Name: req.Name,
		Role: req.Role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (rs *RestfulServer) GetEmployees(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	employees, err := rs.Tracker.Staff.ListEmployees(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

type CertificateRequest struct {
	Name       string     `json:"name"`
	IssueDate  time.Time  `json:"issueDate"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

var certificateRequestSchema = z.Struct(z.Shape{
	"Name":       z.String().Required(),
	"IssueDate":  z.Time().Required(),
	"ExpiryDate": z.Ptr(z.Time()),
})

func (rs *RestfulServer) PostCertificate(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	employeeID := c.Param("employee_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req CertificateRequest
	if err := certificateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	cert, err := rs.Tracker.Staff.AddCertificate(tenantID, employeeID, &models.Certificate{
		Name:       req.Name,
		IssueDate:  req.IssueDate,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, cert)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alerts, err := rs.Tracker.Alert.ListAlerts(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	alertID := c.Param("alert_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if err := rs.Tracker.Alert.Acknowledge(tenantID, alertID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) DismissAlert(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	alertID := c.Param("alert_id")

	if !rs.CheckTenantLimiter(tenantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if err := rs.Tracker.Alert.Dismiss(tenantID, alertID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	tenantID := c.Param("tenant_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(tenantID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

// RunAlertPass triggers one pass immediately and reports the counts. The
// scheduler uses the same engine entrypoint on a timer.
func (rs *RestfulServer) RunAlertPass(c *gin.Context) {
	if rs.Engine == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}

	metrics.PassRunsTotal.WithLabelValues("manual").Inc()

	result, err := rs.Engine.RunAlertPass(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
