package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction log một hành động audit
type AuditAction struct {
	Action    string                 `json:"action"`     // Tên hành động (ví dụ: "unify_run_trigger", "rfm_recalculate")
	IP        string                 `json:"ip"`         // IP address
	UserAgent string                 `json:"user_agent"` // User agent
	Details   map[string]interface{} `json:"details"`    // Chi tiết bổ sung
	Timestamp time.Time              `json:"timestamp"`  // Thời gian
}

// LogAction log một hành động audit từ request
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	// Lấy request ID
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"action":     audit.Action,
		"ip":         audit.IP,
		"user_agent": audit.UserAgent,
		"details":    audit.Details,
		"timestamp":  audit.Timestamp,
	}).Info("Audit log")
}

// LogRun log một lần chạy gộp khách hàng (trigger thủ công hoặc từ worker)
func LogRun(runID string, trigger string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["run_id"] = runID
	details["trigger"] = trigger

	GetAuditLogger().WithFields(logrus.Fields{
		"action":    "unify_run",
		"details":   details,
		"timestamp": time.Now(),
	}).Info("Audit log")
}
