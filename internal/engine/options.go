package engine

import "github.com/easelhq/easel/internal/engine/scene"

// DefaultMaxActions bounds the timeline when no option overrides it.
const DefaultMaxActions = 200

type options struct {
	maxActions int
	scene      *scene.Scene
}

// Option configures an Engine.
type Option func(*options)

// WithMaxActions bounds the committed timeline. Values below 1 are rejected
// by New.
func WithMaxActions(n int) Option {
	return func(o *options) { o.maxActions = n }
}

// WithScene starts the engine on an existing drawing instead of an empty one.
func WithScene(sc *scene.Scene) Option {
	return func(o *options) { o.scene = sc }
}

func defaultOptions() options {
	return options{maxActions: DefaultMaxActions}
}
