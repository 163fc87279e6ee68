package util

import (
	"context"
	"net"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
)

// GetTokenPayloadFromContext 從請求上下文取出 token 負載
// 未經過認證中介層時回傳 nil
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload {
	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		return v.(*token.Payload)
	}
	return nil
}

func GetUserAgentFromContext(ctx context.Context) string {
	if ua := ctx.Value(constants.AuthorizationUserAgentKey); ua != nil {
		return ua.(string)
	}
	return ""
}

// GetClientIPFromContext 取出客戶端IP，有端口時移除端口部分
func GetClientIPFromContext(ctx context.Context) string {
	if ip := ctx.Value(constants.AuthorizationIPKey); ip != nil {
		ipStr := ip.(string)
		if host, _, err := net.SplitHostPort(ipStr); err == nil {
			return host
		}
		return ipStr
	}
	return ""
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}
