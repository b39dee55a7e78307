// Package catalog provides caching decorators for the external
// exercise and ingredient catalogs
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fitforge/api/internal/ports/outbound"
)

// CachedExerciseCatalog caches catalog lookups. The upstream catalogs
// change rarely, so responses are cached aggressively.
type CachedExerciseCatalog struct {
	inner  outbound.ExerciseCatalog
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedExerciseCatalog(inner outbound.ExerciseCatalog, cache outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) outbound.ExerciseCatalog {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedExerciseCatalog{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("exercise-catalog-cache"),
	}
}

func (c *CachedExerciseCatalog) ByMuscleGroup(ctx context.Context, muscleGroup string, limit int) ([]outbound.CatalogExercise, error) {
	key := cacheKey("catalog:exercises:muscle", muscleGroup, limit)
	if cached, ok := getCached[[]outbound.CatalogExercise](ctx, c.cache, key); ok {
		return cached, nil
	}

	items, err := c.inner.ByMuscleGroup(ctx, muscleGroup, limit)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, items)
	return items, nil
}

func (c *CachedExerciseCatalog) ByEquipment(ctx context.Context, equipment string, limit int) ([]outbound.CatalogExercise, error) {
	key := cacheKey("catalog:exercises:equipment", equipment, limit)
	if cached, ok := getCached[[]outbound.CatalogExercise](ctx, c.cache, key); ok {
		return cached, nil
	}

	items, err := c.inner.ByEquipment(ctx, equipment, limit)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, items)
	return items, nil
}

func (c *CachedExerciseCatalog) ByID(ctx context.Context, id string) (*outbound.CatalogExercise, error) {
	key := "catalog:exercises:id:" + id
	if cached, ok := getCached[*outbound.CatalogExercise](ctx, c.cache, key); ok {
		return cached, nil
	}

	exercise, err := c.inner.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setCached(ctx, c.cache, key, c.ttl, exercise, c.logger)
	return exercise, nil
}

func (c *CachedExerciseCatalog) BodyParts(ctx context.Context) ([]string, error) {
	key := "catalog:exercises:bodyparts"
	if cached, ok := getCached[[]string](ctx, c.cache, key); ok {
		return cached, nil
	}

	parts, err := c.inner.BodyParts(ctx)
	if err != nil {
		return nil, err
	}
	setCached(ctx, c.cache, key, c.ttl, parts, c.logger)
	return parts, nil
}

func (c *CachedExerciseCatalog) EquipmentTypes(ctx context.Context) ([]string, error) {
	key := "catalog:exercises:equipment-types"
	if cached, ok := getCached[[]string](ctx, c.cache, key); ok {
		return cached, nil
	}

	equipment, err := c.inner.EquipmentTypes(ctx)
	if err != nil {
		return nil, err
	}
	setCached(ctx, c.cache, key, c.ttl, equipment, c.logger)
	return equipment, nil
}

func (c *CachedExerciseCatalog) store(ctx context.Context, key string, items []outbound.CatalogExercise) {
	setCached(ctx, c.cache, key, c.ttl, items, c.logger)
}

// CachedFoodCatalog caches ingredient lookups
type CachedFoodCatalog struct {
	inner  outbound.FoodCatalog
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedFoodCatalog(inner outbound.FoodCatalog, cache outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) outbound.FoodCatalog {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedFoodCatalog{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("food-catalog-cache"),
	}
}

func (c *CachedFoodCatalog) SearchIngredient(ctx context.Context, query string, limit int) ([]outbound.CatalogFood, error) {
	key := cacheKey("catalog:foods:search", strings.ToLower(query), limit)
	if cached, ok := getCached[[]outbound.CatalogFood](ctx, c.cache, key); ok {
		return cached, nil
	}

	items, err := c.inner.SearchIngredient(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	setCached(ctx, c.cache, key, c.ttl, items, c.logger)
	return items, nil
}

func (c *CachedFoodCatalog) IngredientByID(ctx context.Context, id int64) (*outbound.CatalogFood, error) {
	key := fmt.Sprintf("catalog:foods:id:%d", id)
	if cached, ok := getCached[*outbound.CatalogFood](ctx, c.cache, key); ok {
		return cached, nil
	}

	food, err := c.inner.IngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setCached(ctx, c.cache, key, c.ttl, food, c.logger)
	return food, nil
}

func cacheKey(prefix, term string, limit int) string {
	return fmt.Sprintf("%s:%s:%d", prefix, strings.ToLower(strings.TrimSpace(term)), limit)
}

// getCached reads and decodes a cached value. Cache failures are
// treated as misses.
func getCached[T any](ctx context.Context, cache outbound.CacheRepository, key string) (T, bool) {
	var value T
	raw, err := cache.Get(ctx, key)
	if err != nil || len(raw) == 0 {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false
	}
	return value, true
}

func setCached(ctx context.Context, cache outbound.CacheRepository, key string, ttl time.Duration, value interface{}, logger *zap.Logger) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, raw, ttl); err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
