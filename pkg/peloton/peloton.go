package peloton

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/peloctl/peloctl/pkg/config"
	"github.com/peloctl/peloctl/pkg/models"
)

// workoutWindowDays is the trailing window applied to the workout history.
const workoutWindowDays = 7

// Client talks to the Peloton REST and GraphQL endpoints through one
// session. The cookie jar carries the auth state set by Authenticate, so a
// single Client is meant to be constructed once and reused for every call.
type Client struct {
	http     *http.Client
	apiRoot  string
	gqlRoot  string
	username string
	password string
	logger   *log.Logger
}

// New creates a client from the given configuration. Credentials come from
// the config, never from the ambient environment.
func New(cfg *config.Config, logger *log.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		http:     &http.Client{Jar: jar},
		apiRoot:  cfg.APIRoot,
		gqlRoot:  cfg.GraphQLRoot,
		username: cfg.Username,
		password: cfg.Password,
		logger:   logger,
	}
}

// Authenticate logs in and stores the session cookie in the client's jar.
// The returned user id is needed by the workout-history calls.
func (c *Client) Authenticate() (*models.AuthResponse, error) {
	payload := map[string]string{
		"username_or_email": c.username,
		"password":          c.password,
	}

	var auth models.AuthResponse
	if err := c.postJSON(c.apiRoot+"/auth/login", payload, &auth); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &auth, nil
}

// RecentClasses retrieves the 50 most recently aired classes, optionally
// filtered by fitness discipline. The response body is returned unmodified.
func (c *Client) RecentClasses(discipline string) (*models.ClassList, error) {
	params := url.Values{}
	params.Set("limit", "50")
	params.Set("sort_by", "original_air_time")
	params.Set("desc", "true")
	if discipline != "" {
		params.Set("browse_category", discipline)
	}

	var list models.ClassList
	if err := c.getJSON(c.apiRoot+"/api/v2/ride/archived", params, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch recent classes: %w", err)
	}
	return &list, nil
}

// UserWorkouts fetches one page of the user's workout history and reduces
// it to display labels grouped by calendar date, covering the trailing
// seven days. The server returns entries newest-first; the scan stops at
// the first entry outside the window and entries are not re-sorted locally.
func (c *Client) UserWorkouts(userID string, page int) (*models.WorkoutGroups, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("limit", "50")
	params.Set("joins", "peloton.ride")
	params.Set("sort_by", "-created")

	var list models.WorkoutList
	if err := c.getJSON(c.apiRoot+"/api/user/"+userID+"/workouts", params, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch workouts: %w", err)
	}

	today := midnight(time.Now())
	groups := models.NewWorkoutGroups()
	for _, w := range list.Data {
		day := midnight(time.Unix(w.CreatedAt, 0))
		if daysBetween(day, today) > workoutWindowDays {
			break
		}

		title := "Unknown"
		var difficulty float64
		switch {
		case w.Ride != nil:
			title = w.Ride.Title
			difficulty = w.Ride.DifficultyRatingAvg
		case w.Peloton != nil && w.Peloton.Ride != nil:
			title = w.Peloton.Ride.Title
			difficulty = w.Peloton.Ride.DifficultyRatingAvg
		}

		date := day.Format("2006-01-02")
		label := fmt.Sprintf("%s: %s", date, title)
		if difficulty != 0 {
			// The trailing double parenthesis matches the label format the
			// rest of the tooling expects.
			label = fmt.Sprintf("%s: %s (Difficulty: %v))", date, title, difficulty)
		}
		groups.Add(date, label)
	}

	return groups, nil
}

// RideToClassID resolves a ride id to the on-demand join token used to
// start the class.
func (c *Client) RideToClassID(rideID string) (string, error) {
	var detail models.RideDetail
	if err := c.getJSON(c.apiRoot+"/api/ride/"+rideID+"/details", nil, &detail); err != nil {
		return "", fmt.Errorf("failed to fetch ride detail: %w", err)
	}
	if detail.Ride == nil || detail.Ride.JoinTokens == nil {
		return "", fmt.Errorf("ride %s detail has no join token", rideID)
	}
	return detail.Ride.JoinTokens.OnDemand, nil
}

// Favorite marks a ride as a favorite on the user's account.
func (c *Client) Favorite(rideID string) error {
	payload := map[string]string{"ride_id": rideID}
	if err := c.postJSON(c.apiRoot+"/api/favorites/create", payload, nil); err != nil {
		return fmt.Errorf("failed to favorite ride %s: %w", rideID, err)
	}
	return nil
}

// Categories lists the on-demand browse categories (fitness disciplines).
func (c *Client) Categories() (*models.CategoryList, error) {
	params := url.Values{}
	params.Set("library_type", "on_demand")

	var list models.CategoryList
	if err := c.getJSON(c.apiRoot+"/api/browse_categories", params, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return &list, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	// Both arguments are midnight-truncated; rounding absorbs DST offsets.
	return int(to.Sub(from).Hours()/24 + 0.5)
}

func (c *Client) getJSON(rawURL string, params url.Values, out interface{}) error {
	if params != nil {
		rawURL = rawURL + "?" + params.Encode()
	}

	resp, err := c.http.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) postJSON(rawURL string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := c.http.Post(rawURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
