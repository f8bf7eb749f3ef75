// Command alertpass runs a single alert pass and prints the result as
// JSON, for cron-style invocation.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/db"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/engine"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/metrics"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/notify"
)

func main() {
	_ = godotenv.Load()

	var dbInstance *db.DB
	switch os.Getenv(common.EnvKeySFBBDBType) {
	case "file", "":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown SFBB_DB_TYPE: " + os.Getenv(common.EnvKeySFBBDBType))
	}

	alertEngine := engine.New(engine.NewGormStore(*dbInstance), engine.ConfigFromEnv())
	if mailConfig, ok := notify.LoadMailConfig(); ok {
		alertEngine.WithNotifier(notify.NewMailer(mailConfig))
	}

	metrics.PassRunsTotal.WithLabelValues("cron").Inc()

	result, err := alertEngine.RunAlertPass(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("alert pass failed: %v", err)
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))
}
