package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type OrderHandler struct {
	checkoutService service.ICheckoutService
	orderService    service.IOrderService
	auditService    service.IAuditService
}

func NewOrderHandler(checkoutService service.ICheckoutService, orderService service.IOrderService, auditService service.IAuditService) *OrderHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	if auditService == nil {
		panic("auditService cannot be nil")
	}
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
		auditService:    auditService,
	}
}

// PlaceOrder 下單，購物車轉訂單
//
// POST /orders
func (o *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var placeDTO dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&placeDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := o.checkoutService.PlaceOrder(r.Context(), service.PlaceOrderParams{
		UserID:          payload.UserID,
		ShippingAddress: placeDTO.ShippingAddress,
		CouponCode:      placeDTO.CouponCode,
		PaymentMethod:   placeDTO.PaymentMethod,
		Courier:         placeDTO.Courier,
	})
	middleware.RecordCheckoutOperation("place_order", err == nil)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.CreatedJSON(w, order)
}

// ListMyOrders 自己的訂單列表
//
// GET /orders
func (o *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	offset, limit := paging(r)

	orders, total, err := o.orderService.ListUserOrders(r.Context(), payload.UserID, offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.PagedJSON(w, orders, offset, limit, total)
}

// GetOrder 訂單明細，一般使用者只能看自己的
//
// GET /orders/{id}
func (o *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := o.orderService.GetOrder(r.Context(), id, payload.UserID, payload.IsAdmin)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, order)
}

// PayOrder 模擬付款
//
// POST /orders/{id}/pay
func (o *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := o.orderService.Pay(r.Context(), id, payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, order)
}

// CancelOrder 取消訂單，僅限 created 狀態
//
// POST /orders/{id}/cancel
func (o *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := o.checkoutService.CancelOrder(r.Context(), id, payload.UserID); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"message": "order cancelled"})
}

// ListAllOrders 管理端訂單列表
//
// GET /admin/orders
func (o *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	offset, limit := paging(r)
	orders, total, err := o.orderService.ListAllOrders(r.Context(), offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.PagedJSON(w, orders, offset, limit, total)
}

// ShipOrder 出貨，管理端操作
//
// POST /admin/orders/{id}/ship
func (o *OrderHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var shipDTO dto.ShipOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&shipDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := o.orderService.Ship(r.Context(), id, shipDTO.TrackingNumber)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	o.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "ship_order",
		TableName: "orders",
		RecordID:  id,
		NewValues: order,
	})
	api.SuccessJSON(w, order)
}

// FailPayment 待付款記錄標記失敗，管理端操作
//
// POST /admin/orders/{id}/fail-payment
func (o *OrderHandler) FailPayment(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := o.orderService.FailPayment(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	o.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "fail_payment",
		TableName: "payments",
		RecordID:  id,
		NewValues: order.Payment,
	})
	api.SuccessJSON(w, order)
}

// DeliverOrder 標記送達，管理端操作
//
// POST /admin/orders/{id}/deliver
func (o *OrderHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := o.orderService.Deliver(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	o.auditService.Record(r.Context(), service.RecordAuditParams{
		AdminID:   &payload.UserID,
		Action:    "deliver_order",
		TableName: "orders",
		RecordID:  id,
		NewValues: order,
	})
	api.SuccessJSON(w, order)
}
