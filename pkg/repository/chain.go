package repository

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
)

// Chain reads cache tiers in order and writes to all of them. A hit in a later
// tier is copied into the earlier ones with the chain's ttl.
type Chain struct {
	ttl   time.Duration
	tiers []interfaces.Cache
}

// NewChain creates a chain of tiers, skipping nil ones
func NewChain(ttl time.Duration, tiers ...interfaces.Cache) *Chain {
	c := &Chain{ttl: ttl}
	for _, tier := range tiers {
		if tier != nil {
			c.tiers = append(c.tiers, tier)
		}
	}
	return c
}

var _ interfaces.Cache = (*Chain)(nil)

// Get returns the first hit. A failing tier is logged and skipped.
func (c *Chain) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var errs []error
	for i, tier := range c.tiers {
		value, ok, err := tier.Get(ctx, key)
		if err != nil {
			ctxlog.From(ctx).Warn("cache tier lookup failed", "tier", i, "error", err)
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}

		for _, earlier := range c.tiers[:i] {
			if err := earlier.Put(ctx, key, value, c.ttl); err != nil {
				ctxlog.From(ctx).Warn("failed to back-fill cache tier", "error", err)
			}
		}
		return value, true, nil
	}

	if len(errs) == len(c.tiers) && len(errs) > 0 {
		return nil, false, errors.Join(errs...)
	}
	return nil, false, nil
}

// Put writes value to every tier
func (c *Chain) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var errs []error
	for _, tier := range c.tiers {
		if err := tier.Put(ctx, key, value, ttl); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every tier
func (c *Chain) Close() error {
	var errs []error
	for _, tier := range c.tiers {
		if err := tier.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
