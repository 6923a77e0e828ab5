package ecs

import (
	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger routes the registry's debug events (pool creation, clears,
// deferred-queue flushes) to the given logger. The default is a no-op
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// WithCapacity pre-sizes the slot table and alive list for roughly n
// entities, avoiding growth reallocations during world load.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		r.generations = make([]uint32, 0, n)
		r.masks = make([]mask.Mask, 0, n)
		r.alive = make([]Entity, 0, n)
	}
}
