package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/infrastructure/persistence/memory"
	"github.com/fitforge/api/internal/ports/outbound"
)

type countingExerciseCatalog struct {
	calls int
}

func (c *countingExerciseCatalog) ByMuscleGroup(ctx context.Context, muscleGroup string, limit int) ([]outbound.CatalogExercise, error) {
	c.calls++
	return []outbound.CatalogExercise{{ID: "1", Name: "Bench press", BodyPart: muscleGroup}}, nil
}

func (c *countingExerciseCatalog) ByEquipment(ctx context.Context, equipment string, limit int) ([]outbound.CatalogExercise, error) {
	c.calls++
	return []outbound.CatalogExercise{{ID: "2", Name: "Dumbbell curl", Equipment: equipment}}, nil
}

func (c *countingExerciseCatalog) ByID(ctx context.Context, id string) (*outbound.CatalogExercise, error) {
	c.calls++
	return &outbound.CatalogExercise{ID: id, Name: "Barbell squat"}, nil
}

func (c *countingExerciseCatalog) BodyParts(ctx context.Context) ([]string, error) {
	c.calls++
	return []string{"back", "chest"}, nil
}

func (c *countingExerciseCatalog) EquipmentTypes(ctx context.Context) ([]string, error) {
	c.calls++
	return []string{"barbell", "dumbbell"}, nil
}

type countingFoodCatalog struct {
	calls int
}

func (c *countingFoodCatalog) SearchIngredient(ctx context.Context, query string, limit int) ([]outbound.CatalogFood, error) {
	c.calls++
	return []outbound.CatalogFood{{ID: 10, Name: query, EnergyKcal: 120, PerGrams: 100}}, nil
}

func (c *countingFoodCatalog) IngredientByID(ctx context.Context, id int64) (*outbound.CatalogFood, error) {
	c.calls++
	return &outbound.CatalogFood{ID: id, Name: "Chicken breast", EnergyKcal: 165, PerGrams: 100}, nil
}

func TestCachedExerciseCatalog_SecondLookupHitsCache(t *testing.T) {
	inner := &countingExerciseCatalog{}
	cached := NewCachedExerciseCatalog(inner, memory.NewCacheRepository(), time.Minute, zap.NewNop())

	first, err := cached.ByMuscleGroup(context.Background(), "chest", 10)
	require.NoError(t, err)
	second, err := cached.ByMuscleGroup(context.Background(), "chest", 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedExerciseCatalog_DistinctQueriesMiss(t *testing.T) {
	inner := &countingExerciseCatalog{}
	cached := NewCachedExerciseCatalog(inner, memory.NewCacheRepository(), time.Minute, zap.NewNop())

	_, err := cached.ByMuscleGroup(context.Background(), "chest", 10)
	require.NoError(t, err)
	_, err = cached.ByMuscleGroup(context.Background(), "back", 10)
	require.NoError(t, err)
	_, err = cached.ByEquipment(context.Background(), "dumbbell", 10)
	require.NoError(t, err)

	assert.Equal(t, 3, inner.calls)
}

func TestCachedFoodCatalog_CachesSearchAndLookup(t *testing.T) {
	inner := &countingFoodCatalog{}
	cached := NewCachedFoodCatalog(inner, memory.NewCacheRepository(), time.Minute, zap.NewNop())

	_, err := cached.SearchIngredient(context.Background(), "Chicken", 5)
	require.NoError(t, err)
	// case-insensitive keying
	_, err = cached.SearchIngredient(context.Background(), "chicken", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	food, err := cached.IngredientByID(context.Background(), 10)
	require.NoError(t, err)
	again, err := cached.IngredientByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, food, again)
	assert.Equal(t, 2, inner.calls)
}
