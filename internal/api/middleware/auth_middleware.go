package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

// AuthMiddleware 驗證ctx有token payload且對應的redis會話仍有效
func AuthMiddleware(authService service.IAuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload := util.GetTokenPayloadFromContext(r.Context())
			if payload == nil {
				api.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			if err := authService.ValidateSession(r.Context(), payload); err != nil {
				api.ErrorJSON(w, http.StatusUnauthorized, "session is no longer valid")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminMiddleware 僅限管理員會話，需掛在 AuthMiddleware 之後
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := util.GetTokenPayloadFromContext(r.Context())
		if payload == nil || !payload.IsAdmin {
			api.ErrorJSON(w, http.StatusForbidden, "admin privilege required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
