package models

// WorkoutVideo is a static, read-only catalog entry. Never user data.
type WorkoutVideo struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Difficulty      string `json:"difficulty"`
	MuscleGroup     string `json:"muscle_group"`
	Equipment       string `json:"equipment"`
	VideoURL        string `json:"video_url"`
	ThumbnailURL    string `json:"thumbnail_url"`
}
