package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"storefront/internal/models"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis with the pool settings we use
// everywhere. Returns nil when the server is unreachable; the cache is
// an optimization, not a dependency.
func NewRedisClient(addr, password string, db int) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable at %s, product cache disabled: %v", addr, err)
		return nil
	}
	return rdb
}

// ProductCache is a read-through cache for product detail lookups.
// All methods are safe on a nil receiver, so callers never branch on
// whether caching is configured.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProductCache creates a ProductCache. A nil client yields a nil
// cache, which is valid and simply never hits.
func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	if rdb == nil {
		return nil
	}
	return &ProductCache{rdb: rdb, ttl: ttl}
}

func key(id string) string { return "product:" + id }

// Get returns the cached product and whether it was present.
func (c *ProductCache) Get(id string) (*models.Product, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(context.Background(), key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false
	}
	return &product, true
}

// Set stores a product under its ID for the configured TTL.
func (c *ProductCache) Set(product *models.Product) {
	if c == nil || product == nil {
		return
	}
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := c.rdb.Set(context.Background(), key(product.ID), data, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache product %s: %v", product.ID, err)
	}
}

// Invalidate drops the cached entry for a product.
func (c *ProductCache) Invalidate(id string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(context.Background(), key(id)).Err(); err != nil {
		log.Printf("Failed to invalidate cached product %s: %v", id, err)
	}
}
