package ratelimit

// Limiter decides whether a client identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}
