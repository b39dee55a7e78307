package outbound

import "context"

// CatalogExercise is an exercise entry from the external exercise catalog
type CatalogExercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Equipment        string   `json:"equipment"`
	Target           string   `json:"target"`
	GifURL           string   `json:"gifUrl"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
}

// ExerciseCatalog defines the interface to the external exercise
// database. Implementations may serve a built-in sample set when the
// upstream API is unreachable or unconfigured; when they do, they log
// the degradation.
type ExerciseCatalog interface {
	ByMuscleGroup(ctx context.Context, muscleGroup string, limit int) ([]CatalogExercise, error)
	ByEquipment(ctx context.Context, equipment string, limit int) ([]CatalogExercise, error)
	ByID(ctx context.Context, id string) (*CatalogExercise, error)
	BodyParts(ctx context.Context) ([]string, error)
	EquipmentTypes(ctx context.Context) ([]string, error)
}

// CatalogFood is an ingredient entry from the external nutrition catalog
type CatalogFood struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	EnergyKcal   float64 `json:"energyKcal"`
	ProteinGrams float64 `json:"proteinGrams"`
	CarbsGrams   float64 `json:"carbsGrams"`
	FatGrams     float64 `json:"fatGrams"`
	FiberGrams   float64 `json:"fiberGrams"`
	PerGrams     float64 `json:"perGrams"`
}

// FoodCatalog defines the interface to the external ingredient
// database, with the same mock fallback contract as ExerciseCatalog.
type FoodCatalog interface {
	SearchIngredient(ctx context.Context, query string, limit int) ([]CatalogFood, error)
	IngredientByID(ctx context.Context, id int64) (*CatalogFood, error)
}
