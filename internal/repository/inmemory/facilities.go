package inmemory

import (
	"context"
	"sync"
	"time"

	reservationdomain "church-office-go/internal/domain/reservation"
)

// FacilityCache keeps the facility list in process until its TTL passes.
type FacilityCache struct {
	mu        sync.RWMutex
	items     []reservationdomain.Facility
	expiresAt time.Time
	now       func() time.Time
}

func NewFacilityCache() *FacilityCache {
	return &FacilityCache{now: time.Now}
}

func (c *FacilityCache) GetFacilities(ctx context.Context) ([]reservationdomain.Facility, bool) {
	now := c.now()

	c.mu.RLock()
	items, expiresAt := c.items, c.expiresAt
	c.mu.RUnlock()
	if items == nil {
		return nil, false
	}

	if !expiresAt.After(now) {
		c.mu.Lock()
		if c.items != nil && !c.expiresAt.After(now) {
			c.items = nil
		}
		c.mu.Unlock()
		return nil, false
	}

	return append([]reservationdomain.Facility(nil), items...), true
}

func (c *FacilityCache) SetFacilities(ctx context.Context, facilities []reservationdomain.Facility, ttl time.Duration) {
	if facilities == nil || ttl <= 0 {
		c.Clear(ctx)
		return
	}

	c.mu.Lock()
	c.items = append([]reservationdomain.Facility{}, facilities...)
	c.expiresAt = c.now().Add(ttl)
	c.mu.Unlock()
}

func (c *FacilityCache) Clear(ctx context.Context) {
	c.mu.Lock()
	c.items = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}
