package alloc

// Option configures a fixed-capacity strategy's backing arena.
type Option func(*arenaConfig)

type arenaConfig struct {
	mapped bool
}

// WithMmap backs the strategy's arena with an anonymous memory mapping
// instead of the Go heap, on platforms that support it. Close unmaps it.
func WithMmap() Option {
	return func(c *arenaConfig) { c.mapped = true }
}

func buildArena(objectSize uintptr, capacity int, opts []Option) (*arena, error) {
	if objectSize == 0 {
		return nil, ErrBadObjectSize
	}
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	var cfg arenaConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return newArena(objectSize, capacity, cfg.mapped)
}
