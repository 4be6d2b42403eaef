package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCalculateBMIHandler(t *testing.T) {
	rec := postJSON(t, CalculateBMI, `{"weight": 70, "height": 175}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		BMI      float64 `json:"bmi"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 22.86, resp.BMI, 0.01)
	assert.Equal(t, "Normal", resp.Category)
}

func TestCalculateBMIHandler_Invalid(t *testing.T) {
	rec := postJSON(t, CalculateBMI, `{"weight": 0, "height": 175}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, CalculateBMI, `{"weight": 70, "height": -1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, CalculateBMI, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateBMRHandler(t *testing.T) {
	rec := postJSON(t, CalculateBMR, `{"weight": 70, "height": 175, "age": 25, "gender": "male"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		BMR float64 `json:"bmr"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 1773.75, resp.BMR, 0.01)
}

func TestCalculateBMRHandler_MissingFields(t *testing.T) {
	rec := postJSON(t, CalculateBMR, `{"weight": 70, "height": 175}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Age and gender required")
}

func TestCalculateTDEEHandler(t *testing.T) {
	rec := postJSON(t, CalculateTDEE, `{"weight": 70, "height": 175, "age": 25, "gender": "male", "activity_level": "active"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TDEE float64 `json:"tdee"`
		BMR  float64 `json:"bmr"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 3059.72, resp.TDEE, 0.01)
	assert.InDelta(t, 1773.75, resp.BMR, 0.01)
}

func TestCalculateTDEEHandler_MissingActivity(t *testing.T) {
	rec := postJSON(t, CalculateTDEE, `{"weight": 70, "height": 175, "age": 25, "gender": "male"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "activity level required")
}
