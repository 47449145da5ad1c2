package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fitcoach-backend/domain"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov"

var (
	ErrMissingAPIKey = errors.New("missing USDA API key")
	ErrNoMatch       = errors.New("no USDA food matches the query")
)

// Client searches FoodData Central. Foundation and SR Legacy foods report
// nutrients per 100 g, which is what ingredients store.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

func (c *Client) Search(ctx context.Context, query string) (domain.NutritionLookupResult, error) {
	query = strings.TrimSpace(query)
	if strings.TrimSpace(c.APIKey) == "" {
		return domain.NutritionLookupResult{}, ErrMissingAPIKey
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	payload, err := json.Marshal(map[string]any{
		"query":    query,
		"dataType": []string{"Foundation", "SR Legacy"},
		"pageSize": 10,
	})
	if err != nil {
		return domain.NutritionLookupResult{}, fmt.Errorf("marshal USDA search payload: %w", err)
	}

	url := fmt.Sprintf("%s/fdc/v1/foods/search?api_key=%s", baseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.NutritionLookupResult{}, fmt.Errorf("create USDA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return domain.NutritionLookupResult{}, fmt.Errorf("execute USDA request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NutritionLookupResult{}, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NutritionLookupResult{}, fmt.Errorf("USDA request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.NutritionLookupResult{}, fmt.Errorf("decode USDA response: %w", err)
	}

	food, ok := selectMatch(parsed.Foods, query)
	if !ok {
		return domain.NutritionLookupResult{}, ErrNoMatch
	}
	return toResult(food), nil
}

// selectMatch prefers a food whose description starts with the query, so
// "egg" picks "Egg, whole, raw" over "Noodles, egg".
func selectMatch(foods []usdaFood, query string) (usdaFood, bool) {
	q := strings.ToLower(query)
	for _, f := range foods {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.Description)), q) {
			return f, true
		}
	}
	if len(foods) > 0 {
		return foods[0], true
	}
	return usdaFood{}, false
}

func toResult(food usdaFood) domain.NutritionLookupResult {
	out := domain.NutritionLookupResult{
		ExternalID:  strconv.FormatInt(food.FDCID, 10),
		Description: strings.TrimSpace(food.Description),
	}
	for _, n := range food.FoodNutrients {
		name := strings.ToLower(strings.TrimSpace(n.NutrientName))
		unit := strings.ToLower(strings.TrimSpace(n.UnitName))
		switch {
		case strings.HasPrefix(name, "energy"):
			// kJ rows sit next to kcal rows
			if unit == "" || unit == "kcal" {
				if out.Calories == 0 {
					out.Calories = n.Value
				}
			}
		case name == "protein":
			out.Protein = n.Value
		case name == "carbohydrate, by difference":
			out.Carbs = n.Value
		case name == "total lipid (fat)":
			out.Fat = n.Value
		case name == "fiber, total dietary":
			out.Fiber = n.Value
		}
	}
	return out
}

type searchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FDCID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	DataType      string         `json:"dataType"`
	FoodNutrients []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}
