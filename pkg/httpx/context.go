package httpx

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims when the handler needs more
)
