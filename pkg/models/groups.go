package models

// WorkoutGroups maps a calendar date to the workout labels recorded on it,
// keeping dates in the order they were first seen (the server returns
// workouts newest-first, so the order is descending by date).
type WorkoutGroups struct {
	dates  []string
	labels map[string][]string
}

func NewWorkoutGroups() *WorkoutGroups {
	return &WorkoutGroups{labels: make(map[string][]string)}
}

// Add appends a label under the given date, registering the date on first
// encounter.
func (g *WorkoutGroups) Add(date, label string) {
	if _, ok := g.labels[date]; !ok {
		g.dates = append(g.dates, date)
	}
	g.labels[date] = append(g.labels[date], label)
}

// Dates returns the dates in encounter order.
func (g *WorkoutGroups) Dates() []string {
	return g.dates
}

// Labels returns the labels recorded for a date.
func (g *WorkoutGroups) Labels(date string) []string {
	return g.labels[date]
}

// Len returns the number of distinct dates.
func (g *WorkoutGroups) Len() int {
	return len(g.dates)
}
