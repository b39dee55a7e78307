// Package wger proxies the wger ingredient database for nutrition
// lookups, with the same sample-data fallback contract as the exercise
// catalog.
package wger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fitforge/api/internal/infrastructure/config"
	"github.com/fitforge/api/internal/ports/outbound"
)

// Client implements outbound.FoodCatalog
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new wger client
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	timeout := cfg.Catalog.Wger.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Catalog.Wger.BaseURL, "/"),
		apiKey:  cfg.Catalog.Wger.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("wger-client"),
	}
}

// wger API structures

type ingredientPayload struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Energy   float64 `json:"energy"`
	Protein  string  `json:"protein"`
	Carbs    string  `json:"carbohydrates"`
	Fat      string  `json:"fat"`
	Fiber    *string `json:"fibres"`
}

type ingredientListResponse struct {
	Results []ingredientPayload `json:"results"`
}

func (p ingredientPayload) toCatalogFood() outbound.CatalogFood {
	return outbound.CatalogFood{
		ID:           p.ID,
		Name:         p.Name,
		EnergyKcal:   p.Energy,
		ProteinGrams: parseGrams(p.Protein),
		CarbsGrams:   parseGrams(p.Carbs),
		FatGrams:     parseGrams(p.Fat),
		FiberGrams:   parseOptionalGrams(p.Fiber),
		PerGrams:     100,
	}
}

// wger serializes decimal fields as strings
func parseGrams(s string) float64 {
	var f float64
	fmt.Sscanf(strings.TrimSpace(s), "%f", &f)
	return f
}

func parseOptionalGrams(s *string) float64 {
	if s == nil {
		return 0
	}
	return parseGrams(*s)
}

// SearchIngredient looks up ingredients by name
func (c *Client) SearchIngredient(ctx context.Context, query string, limit int) ([]outbound.CatalogFood, error) {
	if limit <= 0 {
		limit = 20
	}
	endpoint := fmt.Sprintf("%s/ingredient/?name=%s&language=7&limit=%d",
		c.baseURL, url.QueryEscape(strings.TrimSpace(query)), limit)

	var list ingredientListResponse
	if err := c.get(ctx, endpoint, &list); err != nil {
		c.logger.Warn("food catalog unavailable, serving sample data",
			zap.String("query", query),
			zap.Error(err))
		return sampleSearch(query, limit), nil
	}

	foods := make([]outbound.CatalogFood, 0, len(list.Results))
	for _, p := range list.Results {
		foods = append(foods, p.toCatalogFood())
	}
	return foods, nil
}

// IngredientByID fetches a single ingredient
func (c *Client) IngredientByID(ctx context.Context, id int64) (*outbound.CatalogFood, error) {
	endpoint := fmt.Sprintf("%s/ingredient/%d/", c.baseURL, id)

	var payload ingredientPayload
	if err := c.get(ctx, endpoint, &payload); err != nil {
		c.logger.Warn("food catalog unavailable, serving sample data",
			zap.Int64("ingredient_id", id),
			zap.Error(err))
		if food := sampleByID(id); food != nil {
			return food, nil
		}
		return nil, err
	}

	food := payload.toCatalogFood()
	return &food, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Token "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wger returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}
