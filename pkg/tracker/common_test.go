package tracker

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/db"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
	_ "github.com/safefoodhq/sfbb-compliance-service/pkg/testing"
)

func GetTestTrackerWithMemorySqlite(t *testing.T) *Tracker {
	t.Helper()

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	trackerInstance := &Tracker{Db: *dbInstance}

	trackerInstance.WithServices(ServiceOpts{
		Temperature: trackerInstance.GetITemperature(),
		Checklist:   trackerInstance.GetIChecklist(),
		Cleaning:    trackerInstance.GetICleaning(),
		Staff:       trackerInstance.GetIStaff(),
		Alert:       trackerInstance.GetIAlert(),
	})

	return trackerInstance
}

func seedTestTenant(t *testing.T, tr *Tracker) string {
	t.Helper()
	tenant := models.Tenant{ID: uuid.NewString(), Name: "Test Kitchen", Email: "kitchen@example.com"}
	require.NoError(t, tr.Db.Conn.Create(&tenant).Error)
	return tenant.ID
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
