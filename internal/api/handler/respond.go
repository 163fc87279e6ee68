package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/go-chi/chi/v5"
)

// currentPayload 認證中介層保證 payload 存在，取不到時回 nil 由呼叫端擋
func currentPayload(r *http.Request) *token.Payload {
	return util.GetTokenPayloadFromContext(r.Context())
}

// handleServiceError service 層 sentinel 錯誤對應 HTTP 狀態碼
// 400: 參數、空購物車、優惠券停用/效期外/未達低消
// 401: 帳密錯誤、會話失效
// 403: 越權操作、帳號停用
// 404: 各種 not found，含優惠券代碼不存在
// 409: 重複資料、庫存不足、優惠券用罄、狀態衝突、並發衝突重試耗盡
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParam),
		errors.Is(err, db.ErrEmptyCart),
		errors.Is(err, db.ErrInvalidCoupon):
		api.ErrorJSON(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrWrongCredentials),
		errors.Is(err, redis_repo.ErrSessionNotFound),
		errors.Is(err, redis_repo.ErrSessionBlocked):
		api.ErrorJSON(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrUserInactive),
		errors.Is(err, service.ErrNotPurchased):
		api.ErrorJSON(w, http.StatusForbidden, err.Error())

	case errors.Is(err, db.ErrUserNotFound),
		errors.Is(err, db.ErrAdminNotFound),
		errors.Is(err, db.ErrCategoryNotFound),
		errors.Is(err, db.ErrProductNotFound),
		errors.Is(err, db.ErrCartNotExist),
		errors.Is(err, db.ErrCartItemNotFound),
		errors.Is(err, db.ErrOrderNotExist),
		errors.Is(err, db.ErrCouponNotFound),
		errors.Is(err, db.ErrReviewNotFound),
		errors.Is(err, db.ErrWishlistItemNotFound):
		api.ErrorJSON(w, http.StatusNotFound, err.Error())

	case errors.Is(err, db.ErrEmailTaken),
		errors.Is(err, db.ErrCouponExhausted),
		errors.Is(err, db.ErrProductStockNotEnough),
		errors.Is(err, db.ErrProductInactive),
		errors.Is(err, db.ErrOrderStateInvalid),
		errors.Is(err, db.ErrReviewDuplicated),
		errors.Is(err, db.ErrWishlistDuplicated),
		errors.Is(err, db.ErrCheckoutConflict):
		api.ErrorJSON(w, http.StatusConflict, err.Error())

	default:
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}

// uintURLParam 解析路徑參數為 uint
func uintURLParam(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// paging 取 query string 的 offset/limit，套預設與上限
func paging(r *http.Request) (offset, limit int) {
	limit = constants.DefaultPagingSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > constants.MaxPagingSize {
		limit = constants.MaxPagingSize
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return offset, limit
}
