package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "hb_access_token"
	COOKIE_REDIRECT_NAME     = "hb_redirect"
)
