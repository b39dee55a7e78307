package wger

import (
	"strings"

	"github.com/fitforge/api/internal/ports/outbound"
)

// Built-in sample ingredients, macros per 100g. Served when the
// upstream API is unreachable.
var sampleFoods = []outbound.CatalogFood{
	{ID: 1, Name: "Peito de frango grelhado", EnergyKcal: 165, ProteinGrams: 31, CarbsGrams: 0, FatGrams: 3.6, PerGrams: 100},
	{ID: 2, Name: "Arroz branco cozido", EnergyKcal: 130, ProteinGrams: 2.7, CarbsGrams: 28, FatGrams: 0.3, PerGrams: 100},
	{ID: 3, Name: "Feijão preto cozido", EnergyKcal: 77, ProteinGrams: 4.5, CarbsGrams: 14, FatGrams: 0.5, FiberGrams: 8.4, PerGrams: 100},
	{ID: 4, Name: "Ovo cozido", EnergyKcal: 155, ProteinGrams: 13, CarbsGrams: 1.1, FatGrams: 11, PerGrams: 100},
	{ID: 5, Name: "Batata doce cozida", EnergyKcal: 86, ProteinGrams: 1.6, CarbsGrams: 20, FatGrams: 0.1, FiberGrams: 3, PerGrams: 100},
	{ID: 6, Name: "Aveia em flocos", EnergyKcal: 389, ProteinGrams: 16.9, CarbsGrams: 66, FatGrams: 6.9, FiberGrams: 10.6, PerGrams: 100},
	{ID: 7, Name: "Banana", EnergyKcal: 89, ProteinGrams: 1.1, CarbsGrams: 23, FatGrams: 0.3, FiberGrams: 2.6, PerGrams: 100},
	{ID: 8, Name: "Whey protein", EnergyKcal: 400, ProteinGrams: 80, CarbsGrams: 8, FatGrams: 6, PerGrams: 100},
}

func sampleSearch(query string, limit int) []outbound.CatalogFood {
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []outbound.CatalogFood
	for _, food := range sampleFoods {
		if needle == "" || strings.Contains(strings.ToLower(food.Name), needle) {
			out = append(out, food)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sampleByID(id int64) *outbound.CatalogFood {
	for _, food := range sampleFoods {
		if food.ID == id {
			f := food
			return &f
		}
	}
	return nil
}
