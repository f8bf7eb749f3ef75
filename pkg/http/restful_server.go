package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/engine"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/tracker"
)

type RestfulServer struct {
	Server           *gin.Engine
	Tracker          *tracker.Tracker
	Engine           *engine.Engine
	RateLimiterStore *tracker.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(tenantID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(tenantID)
	}
}

func (rs *RestfulServer) CheckTenantLimiter(tenantID string) bool {
	limiter := rs.GetLimiter(tenantID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(tenantID string, tenantRate float64, tenantBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(tenantID, rate.Limit(tenantRate), tenantBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rs.Server.POST("/admin/alert-pass", rs.RunAlertPass)

	tenants := rs.Server.Group("/tenants/:tenant_id")
	{
		tenants.POST("/temperature-logs", rs.PostTemperatureLog)
		tenants.GET("/temperature-logs", rs.GetTemperatureLogs)
		tenants.POST("/checklists", rs.PostChecklist)
		tenants.GET("/checklists", rs.GetChecklist)
		tenants.POST("/cleaning-records", rs.PostCleaningRecord)
		tenants.GET("/cleaning-records", rs.GetCleaningRecord)
		tenants.POST("/employees", rs.PostEmployee)
		tenants.GET("/employees", rs.GetEmployees)
		tenants.POST("/employees/:employee_id/certificates", rs.PostCertificate)
		tenants.GET("/alerts", rs.GetAlerts)
		tenants.POST("/alerts/:alert_id/acknowledge", rs.AcknowledgeAlert)
		tenants.DELETE("/alerts/:alert_id", rs.DismissAlert)
		tenants.POST("/limiter", rs.PostLimiter)
	}
}
