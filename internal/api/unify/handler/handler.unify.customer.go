// Handler profile khách hàng đã gộp.
package unifyhdl

import (
	"fmt"

	basehdl "github.com/NareeyaChenu/rfm-project/internal/api/base/handler"
	unifydto "github.com/NareeyaChenu/rfm-project/internal/api/unify/dto"
	rfmsvc "github.com/NareeyaChenu/rfm-project/internal/api/rfm/service"
	unifysvc "github.com/NareeyaChenu/rfm-project/internal/api/unify/service"
	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// CustomerHandler đọc profile và rescore RFM.
type CustomerHandler struct {
	ProfileService *unifysvc.CustomerProfileService
	RfmService     *rfmsvc.RfmService
}

// NewCustomerHandler tạo CustomerHandler mới.
func NewCustomerHandler() (*CustomerHandler, error) {
	profileSvc, err := unifysvc.NewCustomerProfileService()
	if err != nil {
		return nil, fmt.Errorf("tạo CustomerProfileService: %w", err)
	}
	rfmSvc, err := rfmsvc.NewRfmService()
	if err != nil {
		return nil, fmt.Errorf("tạo RfmService: %w", err)
	}
	return &CustomerHandler{ProfileService: profileSvc, RfmService: rfmSvc}, nil
}

// HandleGetProfile xử lý GET /customers/:customerId/profile.
func (h *CustomerHandler) HandleGetProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		customerID := c.Params("customerId")
		if customerID == "" {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationInput, "Thiếu customerId", common.StatusBadRequest, nil))
		}
		profile, err := h.ProfileService.GetByID(c.Context(), customerID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, profile, nil)
	})
}

// HandleListCustomers xử lý GET /customers.
func (h *CustomerHandler) HandleListCustomers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		page, limit := parsePagination(c, 50)
		var query unifydto.CustomerListQuery
		if err := c.Bind().Query(&query); err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
		}
		if err := global.Validate.Struct(&query); err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
		}
		result, err := h.ProfileService.List(c.Context(), page, limit, query.Segment)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, result, nil)
	})
}

// HandleRecalculateRfm xử lý POST /customers/rfm/recalculate.
func (h *CustomerHandler) HandleRecalculateRfm(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		logger.LogAction("rfm_recalculate", c, nil)
		scored, err := h.RfmService.RecalculateAll(c.Context())
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, unifydto.RfmRecalculateResponse{ScoredProfiles: scored}, nil)
	})
}
