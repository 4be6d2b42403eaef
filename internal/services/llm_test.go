package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-backend/internal/models"
)

// newTestGeminiServer returns a server that replies with the given candidate
// text for any generateContent call, and a client pointed at it.
func newTestGeminiServer(t *testing.T, candidateText string) (*httptest.Server, *GeminiClient) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := geminiResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content geminiContent `json:"content"`
		}{
			Content: geminiContent{Parts: []geminiPart{{Text: candidateText}}},
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	client := &GeminiClient{
		apiKey:     "test-key",
		model:      geminiModel,
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
	return srv, client
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n ", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFences(tc.in))
		})
	}
}

func TestAnalyzeFoodImage(t *testing.T) {
	srv, client := newTestGeminiServer(t, "```json\n"+`{
		"food_name": "Grilled Chicken Salad",
		"calories": 420,
		"protein": 38,
		"carbs": 18,
		"fat": 22,
		"fiber": 6,
		"sugar": 4,
		"confidence": "85%"
	}`+"\n```")
	defer srv.Close()

	analysis, err := client.AnalyzeFoodImage(context.Background(), []byte("fake-image"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "Grilled Chicken Salad", analysis.FoodName)
	assert.Equal(t, 420.0, analysis.Calories)
	assert.Equal(t, 38.0, analysis.Protein)
	assert.Equal(t, "85%", analysis.Confidence)
	assert.False(t, analysis.Timestamp.IsZero())
}

func TestAnalyzeFoodImage_MissingFieldsDefaulted(t *testing.T) {
	srv, client := newTestGeminiServer(t, `{"calories": 300}`)
	defer srv.Close()

	analysis, err := client.AnalyzeFoodImage(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "Unknown Food", analysis.FoodName)
	assert.Equal(t, "N/A", analysis.Confidence)
	assert.Equal(t, 300.0, analysis.Calories)
	assert.Zero(t, analysis.Protein)
}

func TestAnalyzeFoodImage_NonJSONResponse(t *testing.T) {
	srv, client := newTestGeminiServer(t, "Sorry, I cannot analyze this image.")
	defer srv.Close()

	_, err := client.AnalyzeFoodImage(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected model response")
}

func TestGenerateDietPlan(t *testing.T) {
	srv, client := newTestGeminiServer(t, `{
		"daily_calories": 2400,
		"protein_percentage": 35,
		"carbs_percentage": 40,
		"fat_percentage": 25,
		"meal_suggestions": ["Oatmeal with berries", "Chicken and rice"],
		"advice": "Eat in a small surplus and lift heavy."
	}`)
	defer srv.Close()

	plan, err := client.GenerateDietPlan(context.Background(), models.DietPlanRequest{
		Goal:          "muscle_gain",
		CurrentWeight: 70,
		GoalWeight:    78,
		ActivityLevel: "active",
	})
	require.NoError(t, err)

	assert.Equal(t, 2400, plan.DailyCalories)
	assert.Equal(t, 35.0, plan.MacroSplit["protein"])
	assert.Equal(t, 25.0, plan.MacroSplit["fat"])
	assert.Len(t, plan.MealSuggestions, 2)
	assert.Equal(t, "Eat in a small surplus and lift heavy.", plan.Plan)
}

func TestGenerateDietPlan_Defaults(t *testing.T) {
	srv, client := newTestGeminiServer(t, `{"advice": "Stay consistent."}`)
	defer srv.Close()

	plan, err := client.GenerateDietPlan(context.Background(), models.DietPlanRequest{Goal: "maintenance"})
	require.NoError(t, err)

	assert.Equal(t, 2000, plan.DailyCalories)
	assert.Equal(t, 30.0, plan.MacroSplit["protein"])
	assert.Equal(t, 40.0, plan.MacroSplit["carbs"])
	assert.Equal(t, 30.0, plan.MacroSplit["fat"])
	assert.NotNil(t, plan.MealSuggestions)
	assert.Empty(t, plan.MealSuggestions)
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &GeminiClient{
		apiKey:     "test-key",
		model:      geminiModel,
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	_, err := client.GenerateDietPlan(context.Background(), models.DietPlanRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
