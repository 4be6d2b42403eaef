package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWorkoutLibrary_NoFilters(t *testing.T) {
	videos := FilterWorkoutLibrary("", "")
	assert.Len(t, videos, len(workoutLibrary))
}

func TestFilterWorkoutLibrary_ByMuscleGroup(t *testing.T) {
	videos := FilterWorkoutLibrary("chest", "")
	require.Len(t, videos, 1)
	assert.Equal(t, "Chest & Triceps Blast", videos[0].Title)
}

func TestFilterWorkoutLibrary_ByDifficulty(t *testing.T) {
	videos := FilterWorkoutLibrary("", "intermediate")
	require.NotEmpty(t, videos)
	for _, v := range videos {
		assert.Equal(t, "intermediate", v.Difficulty)
	}
}

func TestFilterWorkoutLibrary_Combined(t *testing.T) {
	videos := FilterWorkoutLibrary("legs", "intermediate")
	require.Len(t, videos, 1)
	assert.Equal(t, "Leg Day Power", videos[0].Title)
}

func TestFilterWorkoutLibrary_NoMatch(t *testing.T) {
	videos := FilterWorkoutLibrary("chest", "beginner")
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}
