package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySFBBDBType string = "SFBB_DB_TYPE"
	EnvKeySFBBDbPath string = "SFBB_DB_PATH"
	EnvKeySFBBDbDSN  string = "SFBB_DB_DSN"

	EnvKeySFBBHttpHostPort string = "SFBB_HTTP_HOST_PORT"

	EnvKeySFBBDefaultRate  string = "SFBB_DEFAULT_RATE"
	EnvKeySFBBDefaultBurst string = "SFBB_DEFAULT_BURST"

	EnvKeyDedupeWindowHours   string = "DEDUPE_WINDOW_HOURS"
	EnvKeyCertLookaheadDays   string = "CERT_LOOKAHEAD_DAYS"
	EnvKeyOpeningCutoffHour   string = "OPENING_CUTOFF_HOUR"
	EnvKeyClosingCutoffHour   string = "CLOSING_CUTOFF_HOUR"
	EnvKeyCleaningCutoffHour  string = "CLEANING_CUTOFF_HOUR"
	EnvKeyTempLogCutoffHour   string = "TEMPLOG_CUTOFF_HOUR"
	EnvKeyPassWorkers         string = "PASS_WORKERS"
	EnvKeyPassIntervalMinutes string = "PASS_INTERVAL_MINUTES"

	EnvKeySMTPHost       string = "SMTP_HOST"
	EnvKeySMTPPort       string = "SMTP_PORT"
	EnvKeySMTPSenderName string = "SMTP_SENDER_NAME"
	EnvKeySMTPEmail      string = "SMTP_AUTH_EMAIL"
	EnvKeySMTPPassword   string = "SMTP_AUTH_PASSWORD"

	LoggerNameEngine        string = "alert_engine"
	LoggerNameTracker       string = "tracker"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameNotifier      string = "notifier"

	LoggerFieldCategory string = "category"

	LoggerCategoryTemperature string = "temperature"
	LoggerCategoryChecklist   string = "checklist"
	LoggerCategoryCleaning    string = "cleaning"
	LoggerCategoryStaff       string = "staff"
	LoggerCategoryAlert       string = "alert"
	LoggerCategoryPass        string = "pass"
)
