// Package settings stores the client's persisted key-value state: auth
// token, user identity, remembered email, avatar, and language selection.
package settings

import "context"

// Repository is a flat string key-value store. Get returns ("", nil) for a
// missing key; absence is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
}
