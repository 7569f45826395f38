// Package unifyhdl - Handler API cho domain Unify.
package unifyhdl

import (
	"fmt"
	"strconv"

	basehdl "github.com/NareeyaChenu/rfm-project/internal/api/base/handler"
	unifydto "github.com/NareeyaChenu/rfm-project/internal/api/unify/dto"
	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
	unifysvc "github.com/NareeyaChenu/rfm-project/internal/api/unify/service"
	"github.com/NareeyaChenu/rfm-project/config"
	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// UnifyRunHandler xử lý trigger và tra cứu các lần chạy gộp.
type UnifyRunHandler struct {
	RunService *unifysvc.UnifyRunService
}

// NewUnifyRunHandler tạo UnifyRunHandler mới.
func NewUnifyRunHandler(cfg *config.Configuration) (*UnifyRunHandler, error) {
	runSvc, err := unifysvc.NewUnifyRunService(cfg)
	if err != nil {
		return nil, fmt.Errorf("tạo UnifyRunService: %w", err)
	}
	return &UnifyRunHandler{RunService: runSvc}, nil
}

// toRunResponse chuyển UnifyRun sang DTO trả về.
func toRunResponse(r *unifymodels.UnifyRun) *unifydto.UnifyRunResponse {
	if r == nil {
		return nil
	}
	return &unifydto.UnifyRunResponse{
		RunID:         r.RunID,
		Trigger:       r.Trigger,
		Status:        r.Status,
		DryRun:        r.DryRun,
		FromDate:      r.FromDate,
		ToDate:        r.ToDate,
		OrderCount:    r.OrderCount,
		ClusterCount:  r.ClusterCount,
		ProfileCount:  r.ProfileCount,
		UpsertedCount: r.UpsertedCount,
		DurationMs:    r.DurationMs,
		Error:         r.Error,
		StartedAt:     r.StartedAt,
		FinishedAt:    r.FinishedAt,
	}
}

// HandleTriggerRun xử lý POST /unify/run.
func (h *UnifyRunHandler) HandleTriggerRun(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input unifydto.UnifyRunInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
		}
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationInput, "from/to phải có dạng YYYY-MM-DD", common.StatusBadRequest, err.Error()))
		}
		if input.From > input.To {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationInput, "from phải nhỏ hơn hoặc bằng to", common.StatusBadRequest, nil))
		}

		logger.LogAction("unify_run_trigger", c, map[string]interface{}{
			"from": input.From, "to": input.To, "dry_run": input.DryRun,
		})

		run, err := h.RunService.Run(c.Context(), input.From, input.To, input.DryRun, unifymodels.RunTriggerAPI)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, toRunResponse(run), nil)
	})
}

// parsePagination đọc page/limit từ query string, sai thì về mặc định.
func parsePagination(c fiber.Ctx, defaultLimit int64) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", strconv.FormatInt(defaultLimit, 10)), 10, 64)
	if err != nil || limit < 1 || limit > 200 {
		limit = defaultLimit
	}
	return page, limit
}

// HandleListRuns xử lý GET /unify/runs.
func (h *UnifyRunHandler) HandleListRuns(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		page, limit := parsePagination(c, 20)
		result, err := h.RunService.ListRuns(c.Context(), page, limit)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		items := make([]unifydto.UnifyRunResponse, 0, len(result.Items))
		for i := range result.Items {
			items = append(items, *toRunResponse(&result.Items[i]))
		}
		return basehdl.HandleResponse(c, fiber.Map{
			"items":     items,
			"page":      result.Page,
			"limit":     result.Limit,
			"total":     result.Total,
			"totalPage": result.TotalPage,
		}, nil)
	})
}
