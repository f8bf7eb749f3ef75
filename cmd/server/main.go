package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/db"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/engine"
	sfbbHttp "github.com/safefoodhq/sfbb-compliance-service/pkg/http"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/metrics"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/notify"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/tracker"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeySFBBDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown SFBB_DB_TYPE: " + dbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySFBBHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySFBBDefaultRate), 64); err != nil {
		log.Fatal("Invalid SFBB_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySFBBDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SFBB_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	trackerCore := tracker.Tracker{
		Db: *dbInstance,
	}
	trackerCore.WithServices(tracker.ServiceOpts{
		Temperature: trackerCore.GetITemperature(),
		Checklist:   trackerCore.GetIChecklist(),
		Cleaning:    trackerCore.GetICleaning(),
		Staff:       trackerCore.GetIStaff(),
		Alert:       trackerCore.GetIAlert(),
	})

	alertEngine := engine.New(engine.NewGormStore(*dbInstance), engine.ConfigFromEnv())
	if mailConfig, ok := notify.LoadMailConfig(); ok {
		alertEngine.WithNotifier(notify.NewMailer(mailConfig))
		logger.Info("Critical alert mail notifications enabled")
	}

	passInterval := time.Duration(common.EnvInt(common.EnvKeyPassIntervalMinutes, 60)) * time.Minute
	go runScheduler(alertEngine, passInterval)

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &sfbbHttp.RestfulServer{
		Server:           gin.Default(),
		Tracker:          &trackerCore,
		Engine:           alertEngine,
		RateLimiterStore: tracker.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst),
		zap.Duration("pass_interval", passInterval))

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}

// runScheduler drives the alert engine on a fixed interval. A failed pass
// is retried naturally by the next tick.
func runScheduler(alertEngine *engine.Engine, interval time.Duration) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngine,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPass),
	)

	logger.Info("Alert scheduler started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		metrics.PassRunsTotal.WithLabelValues("scheduler").Inc()

		result, err := alertEngine.RunAlertPass(context.Background(), time.Now())
		if err != nil {
			logger.Error("Scheduled alert pass failed", zap.Error(err))
			continue
		}

		logger.Info("Scheduled alert pass done",
			zap.Int("alerts_created", result.AlertsCreated),
			zap.Int("tenants_processed", result.TenantsProcessed))
	}
}
