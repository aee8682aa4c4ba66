package utils

import "context"

// GetString pulls a string value out of the request context, tolerating
// absent or mistyped entries.
func GetString(ctx context.Context, key any) (string, bool) {
	s, ok := ctx.Value(key).(string)
	return s, ok
}
