package services

import (
	"fmt"

	"github.com/fittrack/fittrack-backend/internal/models"
)

const (
	// insightsWindowDays is the fixed window for health insights. Averages
	// divide by this regardless of how many days actually have data.
	insightsWindowDays = 7

	proteinThresholdGrams = 80
	waterThresholdML      = 2000
)

// DailyNutrition is the per-calendar-date macro total for one user.
type DailyNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ProgressReport aggregates raw logs over a rolling window.
type ProgressReport struct {
	WeightTrend      []models.WeightLog         `json:"weight_trend"`
	DailyNutrition   map[string]*DailyNutrition `json:"daily_nutrition"`
	TotalWorkouts    int                        `json:"total_workouts"`
	AvgDailyCalories float64                    `json:"avg_daily_calories"`
}

// Insight is a warning-or-success classification with a human-readable message.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type WeeklySummary struct {
	AvgProtein float64 `json:"avg_protein"`
	AvgWater   float64 `json:"avg_water"`
}

type InsightsReport struct {
	Insights      []Insight     `json:"insights"`
	WeeklySummary WeeklySummary `json:"weekly_summary"`
}

// BucketDailyNutrition sums calories and macros per UTC calendar date.
func BucketDailyNutrition(foodLogs []models.FoodLog) map[string]*DailyNutrition {
	daily := make(map[string]*DailyNutrition)
	for _, log := range foodLogs {
		date := log.Timestamp.UTC().Format("2006-01-02")
		day, ok := daily[date]
		if !ok {
			day = &DailyNutrition{}
			daily[date] = day
		}
		day.Calories += log.Calories
		day.Protein += log.Protein
		day.Carbs += log.Carbs
		day.Fat += log.Fat
	}
	return daily
}

// BuildProgress derives the progress report from logs already restricted to
// the caller's window and user. weightLogs must be ascending by timestamp.
// Average daily calories divides by the number of distinct dates with food
// logs, treated as 1 when there are none so an empty window averages to 0.
func BuildProgress(weightLogs []models.WeightLog, foodLogs []models.FoodLog, workoutLogs []models.WorkoutLog) ProgressReport {
	daily := BucketDailyNutrition(foodLogs)

	var totalCalories float64
	for _, day := range daily {
		totalCalories += day.Calories
	}
	activeDays := len(daily)
	if activeDays == 0 {
		activeDays = 1
	}

	if weightLogs == nil {
		weightLogs = []models.WeightLog{}
	}

	return ProgressReport{
		WeightTrend:      weightLogs,
		DailyNutrition:   daily,
		TotalWorkouts:    len(workoutLogs),
		AvgDailyCalories: totalCalories / float64(activeDays),
	}
}

// BuildInsights classifies the last week's protein and hydration. Both
// averages divide by the fixed 7-day window, not by distinct active days.
func BuildInsights(foodLogs []models.FoodLog, waterLogs []models.WaterLog) InsightsReport {
	var totalProtein, totalWater float64
	for _, log := range foodLogs {
		totalProtein += log.Protein
	}
	for _, log := range waterLogs {
		totalWater += log.AmountML
	}

	avgProtein := totalProtein / insightsWindowDays
	avgWater := totalWater / insightsWindowDays

	insights := make([]Insight, 0, 2)

	if avgProtein < proteinThresholdGrams {
		insights = append(insights, Insight{
			Type:    "warning",
			Message: fmt.Sprintf("Your protein intake is low at %.1fg/day. Aim for at least 80-100g for optimal muscle recovery.", avgProtein),
		})
	} else {
		insights = append(insights, Insight{
			Type:    "success",
			Message: fmt.Sprintf("Great job! Your protein intake of %.1fg/day is on track.", avgProtein),
		})
	}

	if avgWater < waterThresholdML {
		insights = append(insights, Insight{
			Type:    "warning",
			Message: fmt.Sprintf("You're drinking only %.0fml/day. Try to reach 2500-3000ml for optimal hydration.", avgWater),
		})
	} else {
		insights = append(insights, Insight{
			Type:    "success",
			Message: fmt.Sprintf("Excellent hydration at %.0fml/day!", avgWater),
		})
	}

	return InsightsReport{
		Insights:      insights,
		WeeklySummary: WeeklySummary{AvgProtein: avgProtein, AvgWater: avgWater},
	}
}
