package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	reservationdomain "church-office-go/internal/domain/reservation"
	"church-office-go/pkg/logger"
	goredis "github.com/go-redis/redis/v8"
)

const facilitiesKey = "church-office:facilities"

// FacilityCache stores the facility list as JSON so every API instance
// shares one copy. Redis failures degrade to cache misses.
type FacilityCache struct {
	client *goredis.Client
	log    logger.Logger
}

func NewFacilityCache(client *goredis.Client, log logger.Logger) *FacilityCache {
	return &FacilityCache{client: client, log: log}
}

func (c *FacilityCache) GetFacilities(ctx context.Context) ([]reservationdomain.Facility, bool) {
	raw, err := c.client.Get(ctx, facilitiesKey).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn("facility cache: get failed", "err", err)
		}
		return nil, false
	}

	var facilities []reservationdomain.Facility
	if err := json.Unmarshal(raw, &facilities); err != nil {
		c.log.Warn("facility cache: decode failed", "err", err)
		return nil, false
	}
	return facilities, true
}

func (c *FacilityCache) SetFacilities(ctx context.Context, facilities []reservationdomain.Facility, ttl time.Duration) {
	if facilities == nil || ttl <= 0 {
		c.Clear(ctx)
		return
	}
	raw, err := json.Marshal(facilities)
	if err != nil {
		c.log.Warn("facility cache: encode failed", "err", err)
		return
	}
	if err := c.client.Set(ctx, facilitiesKey, raw, ttl).Err(); err != nil {
		c.log.Warn("facility cache: set failed", "err", err)
	}
}

func (c *FacilityCache) Clear(ctx context.Context) {
	if err := c.client.Del(ctx, facilitiesKey).Err(); err != nil {
		c.log.Warn("facility cache: delete failed", "err", err)
	}
}
