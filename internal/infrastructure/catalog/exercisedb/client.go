// Package exercisedb proxies the ExerciseDB API on RapidAPI. When no
// API key is configured or the upstream call fails, it serves a
// built-in sample set and logs the degradation so operators notice.
package exercisedb

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

// Client implements outbound.ExerciseCatalog
type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new ExerciseDB client
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	timeout := cfg.Catalog.ExerciseDB.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Catalog.ExerciseDB.BaseURL, "/"),
		apiKey:  cfg.Catalog.ExerciseDB.APIKey,
		apiHost: cfg.Catalog.ExerciseDB.APIHost,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("exercisedb-client"),
	}
}

// bodyPartAliases maps the muscle group names used throughout the app
// (and their Portuguese labels, which mobile clients still send) onto
// ExerciseDB body part identifiers.
var bodyPartAliases = map[string]string{
	"chest":    "chest",
	"peito":    "chest",
	"back":     "back",
	"costas":   "back",
	"shoulder": "shoulders",
	"ombro":    "shoulders",
	"biceps":   "upper arms",
	"bíceps":   "upper arms",
	"triceps":  "upper arms",
	"tríceps":  "upper arms",
	"leg":      "upper legs",
	"perna":    "upper legs",
	"glute":    "glutes",
	"glúteo":   "glutes",
	"abdomen":  "waist",
	"abdômen":  "waist",
}

func resolveBodyPart(muscleGroup string) string {
	key := strings.ToLower(strings.TrimSpace(muscleGroup))
	if part, ok := bodyPartAliases[key]; ok {
		return part
	}
	return key
}

// ByMuscleGroup lists exercises targeting a muscle group
func (c *Client) ByMuscleGroup(ctx context.Context, muscleGroup string, limit int) ([]outbound.CatalogExercise, error) {
	bodyPart := resolveBodyPart(muscleGroup)
	path := fmt.Sprintf("/exercises/bodyPart/%s", url.PathEscape(bodyPart))

	exercises, err := c.fetch(ctx, path, limit)
	if err != nil {
		c.logger.Warn("exercise catalog unavailable, serving sample data",
			zap.String("muscle_group", muscleGroup),
			zap.Error(err))
		return sampleByBodyPart(bodyPart, limit), nil
	}
	return exercises, nil
}

// ByEquipment lists exercises using a piece of equipment
func (c *Client) ByEquipment(ctx context.Context, equipment string, limit int) ([]outbound.CatalogExercise, error) {
	path := fmt.Sprintf("/exercises/equipment/%s", url.PathEscape(strings.ToLower(strings.TrimSpace(equipment))))

	exercises, err := c.fetch(ctx, path, limit)
	if err != nil {
		c.logger.Warn("exercise catalog unavailable, serving sample data",
			zap.String("equipment", equipment),
			zap.Error(err))
		return sampleByEquipment(equipment, limit), nil
	}
	return exercises, nil
}

// ByID fetches a single exercise
func (c *Client) ByID(ctx context.Context, id string) (*outbound.CatalogExercise, error) {
	path := fmt.Sprintf("/exercises/exercise/%s", url.PathEscape(id))

	var exercise outbound.CatalogExercise
	if err := c.get(ctx, path, &exercise); err != nil {
		c.logger.Warn("exercise catalog unavailable, serving sample data",
			zap.String("exercise_id", id),
			zap.Error(err))
		return sampleByID(id)
	}
	return &exercise, nil
}

// BodyParts lists the catalog's body part identifiers
func (c *Client) BodyParts(ctx context.Context) ([]string, error) {
	var parts []string
	if err := c.get(ctx, "/exercises/bodyPartList", &parts); err != nil {
		c.logger.Warn("exercise catalog unavailable, serving sample data", zap.Error(err))
		return sampleBodyParts(), nil
	}
	return parts, nil
}

// EquipmentTypes lists the catalog's equipment identifiers
func (c *Client) EquipmentTypes(ctx context.Context) ([]string, error) {
	var equipment []string
	if err := c.get(ctx, "/exercises/equipmentList", &equipment); err != nil {
		c.logger.Warn("exercise catalog unavailable, serving sample data", zap.Error(err))
		return sampleEquipmentTypes(), nil
	}
	return equipment, nil
}

func (c *Client) fetch(ctx context.Context, path string, limit int) ([]outbound.CatalogExercise, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("exercisedb api key not configured")
	}

	endpoint := c.baseURL + path
	if limit > 0 {
		endpoint += fmt.Sprintf("?limit=%d", limit)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exercisedb returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var exercises []outbound.CatalogExercise
	if err := json.Unmarshal(payload, &exercises); err != nil {
		return nil, fmt.Errorf("failed to decode exercisedb response: %w", err)
	}

	if limit > 0 && len(exercises) > limit {
		exercises = exercises[:limit]
	}
	return exercises, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("exercisedb api key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("exercisedb returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode exercisedb response: %w", err)
	}
	return nil
}
