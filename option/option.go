// Package option provides generic functional options pattern utilities.
package option

// Option represents a functional option that configures a value of type T.
type Option[T any] func(*T)

// Apply runs every non-nil option against cfg and returns cfg for chaining.
func Apply[T any](cfg *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}
