// Package router đăng ký các route thuộc domain Unify: chạy gộp,
// nhật ký run, profile khách hàng, rescore RFM, health check.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/NareeyaChenu/rfm-project/internal/api/base/handler"
	"github.com/NareeyaChenu/rfm-project/internal/api/middleware"
	apirouter "github.com/NareeyaChenu/rfm-project/internal/api/router"
	unifyhdl "github.com/NareeyaChenu/rfm-project/internal/api/unify/handler"
	"github.com/NareeyaChenu/rfm-project/internal/global"
)

// Register đăng ký tất cả route Unify lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	runHandler, err := unifyhdl.NewUnifyRunHandler(global.MongoDB_ServerConfig)
	if err != nil {
		return fmt.Errorf("tạo UnifyRunHandler: %w", err)
	}
	customerHandler, err := unifyhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("tạo CustomerHandler: %w", err)
	}
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("tạo SystemHandler: %w", err)
	}

	authMiddlewares := []fiber.Handler{middleware.RequireAuth()}

	// POST /unify/run: chạy gộp khách hàng. Body: from, to, dryRun
	apirouter.RegisterRouteWithMiddleware(v1, "/unify", "POST", "/run", authMiddlewares, runHandler.HandleTriggerRun)
	// GET /unify/runs: lịch sử các lần chạy. Query: page, limit
	apirouter.RegisterRouteWithMiddleware(v1, "/unify", "GET", "/runs", authMiddlewares, runHandler.HandleListRuns)

	// GET /customers: danh sách profile. Query: page, limit, segment
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "", authMiddlewares, customerHandler.HandleListCustomers)
	// GET /customers/:customerId/profile
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/:customerId/profile", authMiddlewares, customerHandler.HandleGetProfile)
	// POST /customers/rfm/recalculate: rescore RFM toàn bộ profile đã lưu
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/rfm/recalculate", authMiddlewares, customerHandler.HandleRecalculateRfm)

	// GET /health: liveness, không cần auth
	apirouter.RegisterRouteWithMiddleware(v1, "", "GET", "/health", nil, systemHandler.HandleHealth)

	return nil
}
