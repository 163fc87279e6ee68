package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CouponHandler struct {
	couponService service.ICouponService
	auditService  service.IAuditService
}

func NewCouponHandler(couponService service.ICouponService, auditService service.IAuditService) *CouponHandler {
	if couponService == nil {
		panic("couponService cannot be nil")
	}
	if auditService == nil {
		panic("auditService cannot be nil")
	}
	return &CouponHandler{
		couponService: couponService,
		auditService:  auditService,
	}
}

// Preview 結帳前試算折扣，不消耗使用次數
//
// POST /coupons/preview
func (c *CouponHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var previewDTO dto.CouponPreviewDTO
	if err := json.NewDecoder(r.Body).Decode(&previewDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	preview, err := c.couponService.Preview(r.Context(), previewDTO.Code, previewDTO.Subtotal)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, preview)
}

// CreateCoupon 建立優惠券，管理端操作
//
// POST /admin/coupons
func (c *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var createDTO dto.CreateCouponDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	coupon, err := c.couponService.CreateCoupon(r.Context(), service.CreateCouponParams{
		Code:           createDTO.Code,
		Description:    createDTO.Description,
		DiscountType:   createDTO.DiscountType,
		DiscountValue:  createDTO.DiscountValue,
		MinOrderAmount: createDTO.MinOrderAmount,
		MaxDiscount:    createDTO.MaxDiscount,
		UsageLimit:     createDTO.UsageLimit,
		ValidFrom:      createDTO.ValidFrom,
		ValidUntil:     createDTO.ValidUntil,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	c.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "create_coupon",
		TableName: "coupons",
		RecordID:  coupon.CouponID,
		NewValues: coupon,
	})
	api.CreatedJSON(w, coupon)
}

// UpdateCoupon 更新優惠券，管理端操作
//
// PUT /admin/coupons/{id}
func (c *CouponHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid coupon id")
		return
	}

	var updateDTO dto.UpdateCouponDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	before, err := c.couponService.GetCouponByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	coupon, err := c.couponService.UpdateCoupon(r.Context(), id, service.UpdateCouponParams{
		Description:    updateDTO.Description,
		DiscountValue:  updateDTO.DiscountValue,
		MinOrderAmount: updateDTO.MinOrderAmount,
		MaxDiscount:    updateDTO.MaxDiscount,
		UsageLimit:     updateDTO.UsageLimit,
		ValidFrom:      updateDTO.ValidFrom,
		ValidUntil:     updateDTO.ValidUntil,
		IsActive:       updateDTO.IsActive,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	c.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "update_coupon",
		TableName: "coupons",
		RecordID:  id,
		OldValues: before,
		NewValues: coupon,
	})
	api.SuccessJSON(w, coupon)
}

// ListCoupons 優惠券列表，管理端操作
//
// GET /admin/coupons
func (c *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	offset, limit := paging(r)
	coupons, err := c.couponService.ListCoupons(r.Context(), offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, coupons)
}

// GetCoupon 單一優惠券，管理端操作
//
// GET /admin/coupons/{id}
func (c *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid coupon id")
		return
	}

	coupon, err := c.couponService.GetCouponByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, coupon)
}

// DeactivateCoupon 停用優惠券
//
// DELETE /admin/coupons/{id}
func (c *CouponHandler) DeactivateCoupon(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid coupon id")
		return
	}

	if err := c.couponService.Deactivate(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	c.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "deactivate_coupon",
		TableName: "coupons",
		RecordID:  id,
	})
	api.SuccessJSON(w, map[string]string{"message": "coupon deactivated"})
}
