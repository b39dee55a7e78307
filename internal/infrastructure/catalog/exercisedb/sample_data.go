package exercisedb

import (
	"sort"
	"strings"

	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

// Built-in sample set served when the upstream API is unreachable or
// unconfigured. Small on purpose: enough for development and for the
// mobile app to render something meaningful.
var sampleExercises = []outbound.CatalogExercise{
	{ID: "0001", Name: "barbell bench press", BodyPart: "chest", Equipment: "barbell", Target: "pectorals"},
	{ID: "0002", Name: "push-up", BodyPart: "chest", Equipment: "body weight", Target: "pectorals"},
	{ID: "0003", Name: "lat pulldown", BodyPart: "back", Equipment: "cable", Target: "lats"},
	{ID: "0004", Name: "bent over row", BodyPart: "back", Equipment: "barbell", Target: "upper back"},
	{ID: "0005", Name: "overhead press", BodyPart: "shoulders", Equipment: "barbell", Target: "delts"},
	{ID: "0006", Name: "lateral raise", BodyPart: "shoulders", Equipment: "dumbbell", Target: "delts"},
	{ID: "0007", Name: "barbell curl", BodyPart: "upper arms", Equipment: "barbell", Target: "biceps"},
	{ID: "0008", Name: "triceps pushdown", BodyPart: "upper arms", Equipment: "cable", Target: "triceps"},
	{ID: "0009", Name: "barbell squat", BodyPart: "upper legs", Equipment: "barbell", Target: "quads"},
	{ID: "0010", Name: "leg press", BodyPart: "upper legs", Equipment: "leverage machine", Target: "quads"},
	{ID: "0011", Name: "hip thrust", BodyPart: "glutes", Equipment: "barbell", Target: "glutes"},
	{ID: "0012", Name: "plank", BodyPart: "waist", Equipment: "body weight", Target: "abs"},
	{ID: "0013", Name: "crunch", BodyPart: "waist", Equipment: "body weight", Target: "abs"},
	{ID: "0014", Name: "dumbbell lunge", BodyPart: "upper legs", Equipment: "dumbbell", Target: "quads"},
}

func sampleByBodyPart(bodyPart string, limit int) []outbound.CatalogExercise {
	var out []outbound.CatalogExercise
	for _, ex := range sampleExercises {
		if ex.BodyPart == bodyPart {
			out = append(out, ex)
		}
	}
	return capSample(out, limit)
}

func sampleByEquipment(equipment string, limit int) []outbound.CatalogExercise {
	needle := strings.ToLower(strings.TrimSpace(equipment))
	var out []outbound.CatalogExercise
	for _, ex := range sampleExercises {
		if ex.Equipment == needle {
			out = append(out, ex)
		}
	}
	return capSample(out, limit)
}

func sampleByID(id string) (*outbound.CatalogExercise, error) {
	for _, ex := range sampleExercises {
		if ex.ID == id {
			found := ex
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError("Exercise")
}

func sampleBodyParts() []string {
	return distinct(func(ex outbound.CatalogExercise) string { return ex.BodyPart })
}

func sampleEquipmentTypes() []string {
	return distinct(func(ex outbound.CatalogExercise) string { return ex.Equipment })
}

func distinct(field func(outbound.CatalogExercise) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ex := range sampleExercises {
		v := field(ex)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func capSample(exercises []outbound.CatalogExercise, limit int) []outbound.CatalogExercise {
	if limit > 0 && len(exercises) > limit {
		return exercises[:limit]
	}
	return exercises
}
