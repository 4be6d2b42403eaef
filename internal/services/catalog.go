package services

import "github.com/fittrack/fittrack-backend/internal/models"

// workoutLibrary is the static workout-video catalog. Reference data only,
// never mutated by this service.
var workoutLibrary = []models.WorkoutVideo{
	{
		ID:              "1",
		Title:           "Full Body HIIT Workout",
		Description:     "High-intensity interval training for fat loss",
		DurationMinutes: 30,
		Difficulty:      "intermediate",
		MuscleGroup:     "full_body",
		Equipment:       "none",
		VideoURL:        "https://www.youtube.com/watch?v=ml6cT4AZdqI",
		ThumbnailURL:    "https://images.unsplash.com/photo-1517838277536-f5f99be501cd?w=400",
	},
	{
		ID:              "2",
		Title:           "Chest & Triceps Blast",
		Description:     "Build upper body strength and size",
		DurationMinutes: 45,
		Difficulty:      "advanced",
		MuscleGroup:     "chest",
		Equipment:       "dumbbells",
		VideoURL:        "https://www.youtube.com/watch?v=IODxDxX7oi4",
		ThumbnailURL:    "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400",
	},
	{
		ID:              "3",
		Title:           "Leg Day Power",
		Description:     "Build strong and powerful legs",
		DurationMinutes: 50,
		Difficulty:      "intermediate",
		MuscleGroup:     "legs",
		Equipment:       "barbell",
		VideoURL:        "https://www.youtube.com/watch?v=BS8Y7Q3gHjY",
		ThumbnailURL:    "https://images.pexels.com/photos/136404/pexels-photo-136404.jpeg?w=400",
	},
	{
		ID:              "4",
		Title:           "Back & Biceps",
		Description:     "Sculpt a strong back and arms",
		DurationMinutes: 40,
		Difficulty:      "intermediate",
		MuscleGroup:     "back",
		Equipment:       "dumbbells",
		VideoURL:        "https://www.youtube.com/watch?v=eE7dzZEMwfg",
		ThumbnailURL:    "https://images.unsplash.com/photo-1605296867304-46d5465a13f1?w=400",
	},
	{
		ID:              "5",
		Title:           "Yoga Flow for Recovery",
		Description:     "Stretch and recover with gentle yoga",
		DurationMinutes: 25,
		Difficulty:      "beginner",
		MuscleGroup:     "mobility",
		Equipment:       "mat",
		VideoURL:        "https://www.youtube.com/watch?v=v7AYKMP6rOE",
		ThumbnailURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
	},
	{
		ID:              "6",
		Title:           "Core Shredder",
		Description:     "Intense ab workout for a strong core",
		DurationMinutes: 20,
		Difficulty:      "intermediate",
		MuscleGroup:     "abs",
		Equipment:       "none",
		VideoURL:        "https://www.youtube.com/watch?v=DHD1-2P94DI",
		ThumbnailURL:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
	},
}

// FilterWorkoutLibrary returns catalog entries matching the optional
// muscle-group and difficulty filters. Empty filter values match everything.
func FilterWorkoutLibrary(muscleGroup, difficulty string) []models.WorkoutVideo {
	filtered := make([]models.WorkoutVideo, 0, len(workoutLibrary))
	for _, v := range workoutLibrary {
		if muscleGroup != "" && v.MuscleGroup != muscleGroup {
			continue
		}
		if difficulty != "" && v.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}
