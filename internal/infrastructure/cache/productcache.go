// Package cache provides Redis-backed read caches.
package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/mappers"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

const (
	productKeyPrefix = "product:sid:"
	productTTL       = 10 * time.Minute
)

// CachedProductRepository is a read-through cache in front of the product
// repository. Writes invalidate, reads populate. Redis failures degrade to
// the underlying repository, never to an error.
type CachedProductRepository struct {
	inner  product.Repository
	client *redis.Client
	logger logger.Interface
}

func NewCachedProductRepository(inner product.Repository, client *redis.Client, logger logger.Interface) *CachedProductRepository {
	return &CachedProductRepository{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

func (c *CachedProductRepository) key(sid string) string {
	return productKeyPrefix + sid
}

func (c *CachedProductRepository) Create(ctx context.Context, p *product.Product) error {
	return c.inner.Create(ctx, p)
}

func (c *CachedProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.key(p.SID())).Err(); err != nil {
		c.logger.Warnw("failed to invalidate product cache", "error", err, "product_sid", p.SID())
	}
	return nil
}

func (c *CachedProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *CachedProductRepository) GetBySID(ctx context.Context, sid string) (*product.Product, error) {
	data, err := c.client.Get(ctx, c.key(sid)).Bytes()
	if err == nil {
		var model models.ProductModel
		if unmarshalErr := json.Unmarshal(data, &model); unmarshalErr == nil {
			return mappers.ProductToDomain(&model), nil
		}
		c.logger.Warnw("corrupt product cache entry, falling through", "product_sid", sid)
	} else if !stderrors.Is(err, redis.Nil) {
		c.logger.Warnw("product cache read failed", "error", err, "product_sid", sid)
	}

	p, err := c.inner.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	c.populate(ctx, p)
	return p, nil
}

func (c *CachedProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	return c.inner.List(ctx, filter)
}

func (c *CachedProductRepository) populate(ctx context.Context, p *product.Product) {
	data, err := json.Marshal(mappers.ProductToModel(p))
	if err != nil {
		c.logger.Warnw("failed to marshal product for cache", "error", err, "product_sid", p.SID())
		return
	}
	if err := c.client.Set(ctx, c.key(p.SID()), data, productTTL).Err(); err != nil {
		c.logger.Warnw("failed to populate product cache", "error", err, "product_sid", p.SID())
	}
}

var _ product.Repository = (*CachedProductRepository)(nil)

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
