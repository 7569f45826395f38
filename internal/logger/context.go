package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest tạo log entry với thông tin request (request_id, method, path, ip)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	requestID := ""
	if rid, ok := c.Locals("requestid").(string); ok {
		requestID = rid
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}

	return GetAppLogger().WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
	})
}

// WithFields tạo log entry với các fields tùy chỉnh
func WithFields(fields logrus.Fields) *logrus.Entry {
	return GetAppLogger().WithFields(fields)
}

// WithError tạo log entry với error
func WithError(err error) *logrus.Entry {
	return GetErrorLogger().WithError(err)
}

// WithModule tạo log entry gắn module (order, unify, rfm, worker)
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}
