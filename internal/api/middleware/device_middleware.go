package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
)

// DeviceInfoMiddleware 將user agent與來源IP存入上下文，會話與稽核記錄用
func DeviceInfoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = context.WithValue(ctx, constants.AuthorizationUserAgentKey, r.UserAgent())
		ctx = context.WithValue(ctx, constants.AuthorizationIPKey, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
