package constants

const (
	AppName = "freshcart"

	// SessionCookie identifies the browser session that owns a cart. The
	// cart has no server-side user identity behind it.
	SessionCookie = "freshcart_session"

	// HeaderSeedSecret gates the admin seeding endpoint.
	HeaderSeedSecret = "X-Seed-Secret"
)
