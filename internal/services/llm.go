package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fittrack/fittrack-backend/internal/models"
)

// NutritionAnalyzer estimates nutrition facts from a food photo.
type NutritionAnalyzer interface {
	AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (*models.FoodAnalysis, error)
}

// DietPlanner generates a personalized diet plan.
type DietPlanner interface {
	GenerateDietPlan(ctx context.Context, req models.DietPlanRequest) (*models.DietPlan, error)
}

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.0-flash"

	nutritionSystemPrompt = "You are a nutrition expert. Analyze food images and provide detailed nutritional information."
	dietSystemPrompt      = "You are a professional nutritionist and diet coach."

	foodAnalysisPrompt = `Analyze this food image and provide nutritional information in the following JSON format:
{
  "food_name": "name of the dish",
  "calories": estimated calories (number),
  "protein": grams of protein (number),
  "carbs": grams of carbohydrates (number),
  "fat": grams of fat (number),
  "fiber": grams of fiber (number),
  "sugar": grams of sugar (number),
  "confidence": percentage confidence (e.g., "85%")
}

Provide ONLY the JSON response, no additional text.`
)

// GeminiClient calls the Gemini generateContent API. It implements both
// NutritionAnalyzer and DietPlanner. No retries and no timeout override: a
// slow upstream stalls the calling request.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      geminiModel,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{},
	}
}

// Request/response shapes for the generateContent endpoint.

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// AnalyzeFoodImage sends the image to the model and parses its JSON answer.
// Missing fields in the model output fall back to zero values.
func (c *GeminiClient) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (*models.FoodAnalysis, error) {
	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: nutritionSystemPrompt}}},
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
				{Text: foodAnalysisPrompt},
			},
		}},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		FoodName   string  `json:"food_name"`
		Calories   float64 `json:"calories"`
		Protein    float64 `json:"protein"`
		Carbs      float64 `json:"carbs"`
		Fat        float64 `json:"fat"`
		Fiber      float64 `json:"fiber"`
		Sugar      float64 `json:"sugar"`
		Confidence string  `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &payload); err != nil {
		return nil, fmt.Errorf("unexpected model response: %w", err)
	}

	if payload.FoodName == "" {
		payload.FoodName = "Unknown Food"
	}
	if payload.Confidence == "" {
		payload.Confidence = "N/A"
	}

	return &models.FoodAnalysis{
		FoodName:   payload.FoodName,
		Calories:   payload.Calories,
		Protein:    payload.Protein,
		Carbs:      payload.Carbs,
		Fat:        payload.Fat,
		Fiber:      payload.Fiber,
		Sugar:      payload.Sugar,
		Confidence: payload.Confidence,
		Timestamp:  time.Now().UTC(),
	}, nil
}

// GenerateDietPlan asks the model for a plan and parses its JSON answer.
func (c *GeminiClient) GenerateDietPlan(ctx context.Context, planReq models.DietPlanRequest) (*models.DietPlan, error) {
	preferences := planReq.DietaryPreferences
	if preferences == "" {
		preferences = "None"
	}

	prompt := fmt.Sprintf(`Create a personalized diet plan for a user with the following details:
- Goal: %s
- Current Weight: %g kg
- Goal Weight: %g kg
- Activity Level: %s
- Dietary Preferences: %s

Provide:
1. Recommended daily calorie intake
2. Macro split (protein, carbs, fat percentages)
3. 5 specific meal suggestions
4. General dietary advice

Format your response as JSON:
{
  "daily_calories": number,
  "protein_percentage": number,
  "carbs_percentage": number,
  "fat_percentage": number,
  "meal_suggestions": ["meal 1", "meal 2", ...],
  "advice": "general advice text"
}
`, planReq.Goal, planReq.CurrentWeight, planReq.GoalWeight, planReq.ActivityLevel, preferences)

	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: dietSystemPrompt}}},
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		DailyCalories     *int     `json:"daily_calories"`
		ProteinPercentage *float64 `json:"protein_percentage"`
		CarbsPercentage   *float64 `json:"carbs_percentage"`
		FatPercentage     *float64 `json:"fat_percentage"`
		MealSuggestions   []string `json:"meal_suggestions"`
		Advice            string   `json:"advice"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &payload); err != nil {
		return nil, fmt.Errorf("unexpected model response: %w", err)
	}

	plan := &models.DietPlan{
		Plan:          payload.Advice,
		DailyCalories: 2000,
		MacroSplit: map[string]float64{
			"protein": 30,
			"carbs":   40,
			"fat":     30,
		},
		MealSuggestions: payload.MealSuggestions,
	}
	if payload.DailyCalories != nil {
		plan.DailyCalories = *payload.DailyCalories
	}
	if payload.ProteinPercentage != nil {
		plan.MacroSplit["protein"] = *payload.ProteinPercentage
	}
	if payload.CarbsPercentage != nil {
		plan.MacroSplit["carbs"] = *payload.CarbsPercentage
	}
	if payload.FatPercentage != nil {
		plan.MacroSplit["fat"] = *payload.FatPercentage
	}
	if plan.MealSuggestions == nil {
		plan.MealSuggestions = []string{}
	}

	return plan, nil
}

// generate performs one blocking round trip and returns the first candidate's
// text.
func (c *GeminiClient) generate(ctx context.Context, req geminiRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model API returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFences removes markdown code-block wrappers the model sometimes
// puts around its JSON output.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	}
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
