package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

// GetCart 取得購物車與即時小計
//
// GET /cart
func (c *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	summary, err := c.cartService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, summary)
}

// AddItem 加入商品
//
// POST /cart/items
func (c *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var addDTO dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := c.cartService.AddItem(r.Context(), payload.UserID, addDTO.ProductID, addDTO.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, summary)
}

// UpdateItem 改數量，0 代表移除
//
// PUT /cart/items/{productID}
func (c *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	productID, err := uintURLParam(r, "productID")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var updateDTO dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := c.cartService.UpdateItemQuantity(r.Context(), payload.UserID, productID, updateDTO.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, summary)
}

// RemoveItem 移除商品
//
// DELETE /cart/items/{productID}
func (c *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	productID, err := uintURLParam(r, "productID")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := c.cartService.RemoveItem(r.Context(), payload.UserID, productID); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"message": "item removed"})
}

// ClearCart 清空購物車
//
// DELETE /cart
func (c *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	if err := c.cartService.ClearCart(r.Context(), payload.UserID); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"message": "cart cleared"})
}
