package models

import "time"

type ApplianceType string

const (
	ApplianceTypeFridge     ApplianceType = "fridge"
	ApplianceTypeFreezer    ApplianceType = "freezer"
	ApplianceTypeHotHold    ApplianceType = "hot_hold"
	ApplianceTypeDishwasher ApplianceType = "dishwasher"
	ApplianceTypeProbe      ApplianceType = "probe"
)

type TemperatureLogType string

const (
	TempLogTypeFridge           TemperatureLogType = "fridge"
	TempLogTypeFreezer          TemperatureLogType = "freezer"
	TempLogTypeHotHold          TemperatureLogType = "hot_hold"
	TempLogTypeDelivery         TemperatureLogType = "delivery"
	TempLogTypeDishwasher       TemperatureLogType = "dishwasher"
	TempLogTypeProbeCalibration TemperatureLogType = "probe_calibration"
)

type ChecklistType string

const (
	ChecklistTypeOpening ChecklistType = "opening"
	ChecklistTypeClosing ChecklistType = "closing"
)

type CleaningFrequency string

const (
	CleaningFrequencyDaily   CleaningFrequency = "daily"
	CleaningFrequencyWeekly  CleaningFrequency = "weekly"
	CleaningFrequencyMonthly CleaningFrequency = "monthly"
)

type AlertType string

const (
	AlertTypeCertificateExpiry AlertType = "certificate_expiry"
	AlertTypeTemperature       AlertType = "temperature"
	AlertTypeOverdueTask       AlertType = "overdue_task"
	AlertTypeInspection        AlertType = "inspection"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Tenant is a business account, the root of all per-user partitioning.
type Tenant struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Email     string
	CreatedAt time.Time

	Employees       []Employee       `gorm:"foreignKey:TenantID;references:ID"`
	Appliances      []Appliance      `gorm:"foreignKey:TenantID;references:ID"`
	TemperatureLogs []TemperatureLog `gorm:"foreignKey:TenantID;references:ID"`
	Alerts          []Alert          `gorm:"foreignKey:TenantID;references:ID"`
}

type Employee struct {
	ID       string `gorm:"primaryKey"`
	TenantID string `gorm:"index"`
	Name     string
	Role     string

	Certificates []Certificate `gorm:"foreignKey:EmployeeID;references:ID"`
}

// Certificate tracks a training/hygiene qualification. A nil ExpiryDate
// means the certificate never expires.
type Certificate struct {
	ID         string `gorm:"primaryKey"`
	TenantID   string `gorm:"index"`
	EmployeeID string `gorm:"index"`
	Name       string
	IssueDate  time.Time
	ExpiryDate *time.Time
}

type Appliance struct {
	ID       string        `gorm:"primaryKey"`
	TenantID string        `gorm:"index"`
	Name     string
	Type     ApplianceType `gorm:"type:varchar(20)"`
	Location string
	MinTemp  *float64
	MaxTemp  *float64
}

// TemperatureLog is one reading event. IsCompliant is computed from the
// thresholds at write time and trusted as written from then on.
type TemperatureLog struct {
	ID            string             `gorm:"primaryKey"`
	TenantID      string             `gorm:"index"`
	Type          TemperatureLogType `gorm:"type:varchar(20)"`
	ApplianceID   string             `gorm:"index"`
	ApplianceName string
	Temperature   *float64
	IceTemp       *float64
	BoilingTemp   *float64
	Date          string `gorm:"type:varchar(10);index"` // YYYY-MM-DD
	Time          string `gorm:"type:varchar(5)"`        // HH:MM
	LoggedBy      string
	IsCompliant   bool
	Notes         string `gorm:"type:text"`
}

type ChecklistItem struct {
	Label       string     `json:"label"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type Checklist struct {
	ID          string        `gorm:"primaryKey"`
	TenantID    string        `gorm:"index"`
	Type        ChecklistType `gorm:"type:varchar(10);check:type IN ('opening','closing')"`
	Date        string        `gorm:"type:varchar(10);index"`
	Items       string        `gorm:"type:text"` // JSON-encoded []ChecklistItem
	SignedOff   bool
	CompletedBy string
}

type CleaningTask struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type CleaningRecord struct {
	ID        string            `gorm:"primaryKey"`
	TenantID  string            `gorm:"index"`
	Frequency CleaningFrequency `gorm:"type:varchar(10);check:frequency IN ('daily','weekly','monthly')"`
	Date      string            `gorm:"type:varchar(10);index"`
	Tasks     string            `gorm:"type:text"` // JSON-encoded []CleaningTask
	SignedOff bool
}

// Alert is the engine's output entity. The unique index over
// (tenant_id, type, title, day_bucket) is the authoritative duplicate
// guard; the engine's pre-insert lookup is only a fast path.
type Alert struct {
	ID           string        `gorm:"primaryKey"`
	TenantID     string        `gorm:"index;uniqueIndex:idx_alert_dedupe"`
	Type         AlertType     `gorm:"type:varchar(20);uniqueIndex:idx_alert_dedupe"`
	Severity     AlertSeverity `gorm:"type:varchar(10)"`
	Title        string        `gorm:"uniqueIndex:idx_alert_dedupe"`
	Message      string        `gorm:"type:text"`
	CreatedAt    time.Time
	Acknowledged bool
	RelatedID    string
	DayBucket    string `gorm:"type:varchar(10);uniqueIndex:idx_alert_dedupe"`
}
