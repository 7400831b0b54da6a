package middleware

import "context"

// GetToken returns the bearer token stored by RequireToken, or "".
func GetToken(ctx context.Context) string {
	if v := ctx.Value(tokenKey); v != nil {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
