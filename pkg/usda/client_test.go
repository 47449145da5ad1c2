package usda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `{
  "foods": [
    {
      "fdcId": 1001,
      "description": "Noodles, egg, cooked",
      "foodNutrients": [{"nutrientName": "Energy", "unitName": "KCAL", "value": 138}]
    },
    {
      "fdcId": 748967,
      "description": "Eggs, Grade A, Large, egg whole",
      "dataType": "Foundation",
      "foodNutrients": [
        {"nutrientName": "Energy", "unitName": "kJ", "value": 599},
        {"nutrientName": "Energy", "unitName": "KCAL", "value": 143},
        {"nutrientName": "Protein", "unitName": "G", "value": 12.6},
        {"nutrientName": "Carbohydrate, by difference", "unitName": "G", "value": 0.7},
        {"nutrientName": "Total lipid (fat)", "unitName": "G", "value": 9.5},
        {"nutrientName": "Fiber, total dietary", "unitName": "G", "value": 0}
      ]
    }
  ]
}`

func TestSearchParsesFoundationFood(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fdc/v1/foods/search", r.URL.Path)
		assert.Equal(t, "demo", r.URL.Query().Get("api_key"))
		_ = json.NewDecoder(r.Body).Decode(&gotQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer ts.Close()

	c := &Client{APIKey: "demo", BaseURL: ts.URL, HTTPClient: ts.Client()}

	res, err := c.Search(context.Background(), " eggs ")
	require.NoError(t, err)
	assert.Equal(t, "eggs", gotQuery["query"])
	assert.Equal(t, "748967", res.ExternalID)
	assert.Equal(t, 143.0, res.Calories)
	assert.Equal(t, 12.6, res.Protein)
	assert.Equal(t, 0.7, res.Carbs)
	assert.Equal(t, 9.5, res.Fat)
}

func TestSearchFallsBackToFirstFood(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchBody))
	}))
	defer ts.Close()

	c := &Client{APIKey: "demo", BaseURL: ts.URL, HTTPClient: ts.Client()}

	res, err := c.Search(context.Background(), "quail")
	require.NoError(t, err)
	assert.Equal(t, "1001", res.ExternalID)
	assert.Equal(t, 138.0, res.Calories)
}

func TestSearchErrors(t *testing.T) {
	t.Parallel()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"foods": []}`))
	}))
	defer empty.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer failing.Close()

	_, err := (&Client{}).Search(context.Background(), "egg")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = (&Client{APIKey: "demo", BaseURL: empty.URL}).Search(context.Background(), "egg")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = (&Client{APIKey: "demo", BaseURL: failing.URL}).Search(context.Background(), "egg")
	assert.ErrorContains(t, err, "status 403")
}
