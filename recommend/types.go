// Package recommend provides options and error definitions for the
// friend-recommendation builder.
package recommend

import (
	"context"
	"errors"
)

// Sentinel errors for recommendation building.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("recommend: graph is nil")

	// ErrUserNotFound is returned when the requested user is absent.
	ErrUserNotFound = errors.New("recommend: user not found")

	// ErrBadMaxDepth is returned when maxDepth is not positive: a
	// recommendation walk without a positive ceiling is meaningless.
	ErrBadMaxDepth = errors.New("recommend: max depth must be positive")
)

// Option configures recommendation building via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for recommendation building.
type Options struct {
	// Ctx allows cancellation and deadlines across the per-user walks.
	Ctx context.Context

	// OnUser is called after each user's walk completes, with the user ID
	// and the number of candidates discovered. Intended for progress
	// reporting; it must not mutate the graphs.
	OnUser func(id string, candidates int)
}

// DefaultOptions returns Options with a background context and a no-op
// progress hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnUser: func(string, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnUser registers a progress callback invoked once per source user.
func WithOnUser(fn func(id string, candidates int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUser = fn
		}
	}
}
