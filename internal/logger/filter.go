package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook lọc log entries theo cấu hình trước khi đưa vào async queue.
// Entry không qua được filter sẽ được đánh dấu "_filtered" để AsyncHook bỏ qua.
type FilterHook struct {
	mu sync.RWMutex

	// allowedModules: nil = cho phép tất cả
	allowedModules  map[string]bool
	allowedMethods  map[string]bool
	allowedLogTypes map[string]bool
}

// NewFilterHook tạo filter hook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{}
	if cfg != nil {
		hook.allowedModules = parseFilter(cfg.FilterModules)
		hook.allowedMethods = parseFilter(cfg.FilterMethods)
		hook.allowedLogTypes = parseFilter(cfg.FilterLogTypes)
	}
	return hook
}

// parseFilter parse chuỗi filter dạng "a,b,c"
// Trả về nil nếu rỗng hoặc "*" (cho phép tất cả)
func parseFilter(s string) map[string]bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil
	}

	allowed := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			allowed[part] = true
		}
	}
	if len(allowed) == 0 {
		return nil
	}
	return allowed
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire kiểm tra entry theo các filter và đánh dấu "_filtered" nếu không qua.
// Không trả về error để không làm gián đoạn logging.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.allowed(entry) {
		entry.Data["_filtered"] = true
	}
	return nil
}

func (h *FilterHook) allowed(entry *logrus.Entry) bool {
	// Filter theo log type (level)
	if h.allowedLogTypes != nil {
		if !h.allowedLogTypes[entry.Level.String()] {
			return false
		}
	}

	// Filter theo module
	if h.allowedModules != nil {
		module, _ := entry.Data["module"].(string)
		if module == "" || !h.allowedModules[strings.ToLower(module)] {
			return false
		}
	}

	// Filter theo HTTP method
	if h.allowedMethods != nil {
		method, _ := entry.Data["method"].(string)
		if method == "" || !h.allowedMethods[strings.ToLower(method)] {
			return false
		}
	}

	return true
}

// UpdateFilters cập nhật filter tại runtime
func (h *FilterHook) UpdateFilters(modules, methods, logTypes string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedModules = parseFilter(modules)
	h.allowedMethods = parseFilter(methods)
	h.allowedLogTypes = parseFilter(logTypes)
}
