package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview 對已購買商品留評
//
// POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var createDTO dto.CreateReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), payload.UserID, createDTO.ProductID, createDTO.Rating, createDTO.Comment)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.CreatedJSON(w, review)
}

// ListProductReviews 商品評論列表
//
// GET /products/{id}/reviews
func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	offset, limit := paging(r)
	reviews, err := h.reviewService.ListProductReviews(r.Context(), productID, offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, reviews)
}

// UpdateReview 修改自己的評論
//
// PUT /reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid review id")
		return
	}

	var updateDTO dto.UpdateReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.UpdateReview(r.Context(), id, payload.UserID, updateDTO.Rating, updateDTO.Comment)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, review)
}

// DeleteReview 刪除評論，作者或管理員
//
// DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, err := uintURLParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid review id")
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), id, payload.UserID, payload.IsAdmin); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"message": "review deleted"})
}
