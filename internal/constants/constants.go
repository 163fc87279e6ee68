package constants

const (
	//分頁
	DefaultPagingSize int = 10
	MaxPagingSize     int = 100

	//下單並發衝突重試上限
	CheckoutMaxRetries int = 3

	//庫存低於此值列入低庫存統計
	LowStockThreshold int = 10
)

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey    ContextKey = "authorization"
	AuthorizationTypeBearer   ContextKey = "bearer"
	AuthorizationPayloadKey   ContextKey = "authorization_payload"
	AuthorizationUserAgentKey ContextKey = "user_agent"
	AuthorizationIPKey        ContextKey = "ip_address"
)

type TokenDurationHour int

const (
	AccessTokenDuration TokenDurationHour = 24
	SessionDuration     TokenDurationHour = 72
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
