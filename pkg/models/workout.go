package models

// Ride carries the class metadata attached to a workout or listing entry.
type Ride struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Duration            int     `json:"duration"`
	DifficultyRatingAvg float64 `json:"difficulty_rating_avg"`
	InstructorID        string  `json:"instructor_id"`
	FitnessDiscipline   string  `json:"fitness_discipline"`
	OriginalAirTime     int64   `json:"original_air_time"`
	ImageURL            string  `json:"image_url"`
}

// Workout is one entry of a user's workout history. Depending on the
// workout kind the class metadata arrives either as `ride` or nested
// under `peloton.ride`.
type Workout struct {
	ID        string   `json:"id"`
	CreatedAt int64    `json:"created_at"`
	Status    string   `json:"status"`
	Ride      *Ride    `json:"ride,omitempty"`
	Peloton   *Peloton `json:"peloton,omitempty"`
}

// Peloton wraps the ride for live-session workouts.
type Peloton struct {
	Ride *Ride `json:"ride"`
}

// WorkoutList is the paginated workout history response.
type WorkoutList struct {
	Data      []Workout `json:"data"`
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Total     int       `json:"total"`
}

// ClassList is the archived-ride listing response, returned unmodified.
type ClassList struct {
	Data  []Ride `json:"data"`
	Total int    `json:"total"`
}

// RideDetail is the ride-details response; only the join tokens are read.
type RideDetail struct {
	Ride *struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		JoinTokens *struct {
			OnDemand string `json:"on_demand"`
		} `json:"join_tokens"`
	} `json:"ride"`
}

// Category is one browse category (fitness discipline).
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	ListOrder   int    `json:"list_order"`
	PortalImage string `json:"portal_image_url"`
}

// CategoryList is the browse-category response, returned unmodified.
type CategoryList struct {
	BrowseCategories []Category `json:"browse_categories"`
}

// AuthResponse is the login response. The user id is needed by the
// workout-history calls.
type AuthResponse struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}
