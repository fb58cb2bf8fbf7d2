package contractsapi

import "context"

type sessionKey struct{}

// WithSessionCookie stores the caller's Cookie header so requests made with ctx
// act on behalf of the same backend session.
func WithSessionCookie(ctx context.Context, cookie string) context.Context {
	if cookie == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, cookie)
}

// SessionCookieFrom returns the Cookie header stored by WithSessionCookie.
func SessionCookieFrom(ctx context.Context) string {
	cookie, _ := ctx.Value(sessionKey{}).(string)
	return cookie
}
