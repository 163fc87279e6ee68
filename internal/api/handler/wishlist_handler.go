package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type WishlistHandler struct {
	wishlistService service.IWishlistService
}

func NewWishlistHandler(wishlistService service.IWishlistService) *WishlistHandler {
	if wishlistService == nil {
		panic("wishlistService cannot be nil")
	}
	return &WishlistHandler{wishlistService: wishlistService}
}

// AddItem 加入願望清單
//
// POST /wishlist
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var addDTO dto.AddWishlistItemDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.wishlistService.AddItem(r.Context(), payload.UserID, addDTO.ProductID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.CreatedJSON(w, item)
}

// ListItems 自己的願望清單
//
// GET /wishlist
func (h *WishlistHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	items, err := h.wishlistService.ListItems(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, items)
}

// RemoveItem 移出願望清單
//
// DELETE /wishlist/{productID}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	productID, err := uintURLParam(r, "productID")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.wishlistService.RemoveItem(r.Context(), payload.UserID, productID); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"message": "item removed"})
}
