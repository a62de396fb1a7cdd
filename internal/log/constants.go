package log

const (
	KeyAppName       = "app"
	KeyRequestID     = "requestId"
	KeyProcess       = "process"
	KeyTag           = "tag"
	KeyConfig        = "config"
	KeyRequestBody   = "requestBody"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyDbURL         = "dbUrl"
	KeySessionID     = "sessionId"
	KeyProductID     = "productId"
	KeyOrderID       = "orderId"
	KeyOrderNumber   = "orderNumber"
	KeyOrderItems    = "orderItems"
	KeyCartItems     = "cartItems"
	KeyQuantity      = "quantity"
	KeyTotal         = "total"
	KeyCacheKey      = "cacheKey"
	KeyEmail         = "email"
)
