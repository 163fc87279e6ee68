package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"參數錯誤", service.ErrInvalidParam, http.StatusBadRequest},
		{"空購物車", db.ErrEmptyCart, http.StatusBadRequest},
		{"優惠券效期外", fmt.Errorf("%w: code X out of valid window", db.ErrInvalidCoupon), http.StatusBadRequest},
		{"帳密錯誤", service.ErrWrongCredentials, http.StatusUnauthorized},
		{"會話失效", redis_repo.ErrSessionNotFound, http.StatusUnauthorized},
		{"越權", service.ErrForbidden, http.StatusForbidden},
		{"未購買", service.ErrNotPurchased, http.StatusForbidden},
		{"商品不存在", db.ErrProductNotFound, http.StatusNotFound},
		{"優惠券代碼不存在", fmt.Errorf("%w: code X", db.ErrCouponNotFound), http.StatusNotFound},
		{"訂單不存在", db.ErrOrderNotExist, http.StatusNotFound},
		{"信箱重複", db.ErrEmailTaken, http.StatusConflict},
		{"庫存不足", fmt.Errorf("%w: product 1", db.ErrProductStockNotEnough), http.StatusConflict},
		{"優惠券用罄", fmt.Errorf("%w: code X", db.ErrCouponExhausted), http.StatusConflict},
		{"訂單狀態衝突", db.ErrOrderStateInvalid, http.StatusConflict},
		{"並發衝突重試耗盡", db.ErrCheckoutConflict, http.StatusConflict},
		{"未知錯誤", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tc.err)
			require.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
