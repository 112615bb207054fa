package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/peloctl/peloctl/pkg/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	now := time.Now()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/u123/workouts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"created_at": now.Unix(),
					"ride":       map[string]interface{}{"title": "Power Zone"},
				},
			},
		})
	})
	mux.HandleFunc("/api/browse_categories", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"browse_categories": [{"slug": "yoga", "name": "Yoga"}]}`)
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"viewUserStack": {
			"__typename": "StackResponseSuccess",
			"userStack": {"stackedClassList": [
				{"playOrder": 1, "pelotonClass": {"title": "A"}},
				{"playOrder": 2, "pelotonClass": {"title": "B"}}
			]}
		}}}`)
	})

	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Username:    "rider@example.com",
		Password:    "secret",
		APIRoot:     upstream.URL,
		GraphQLRoot: upstream.URL + "/graphql",
	}

	srv := New(cfg, log.Default())
	srv.userID = "u123"
	srv.setupRoutes()
	return srv
}

func get(t *testing.T, srv *Server, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return rec.Code, body
}

func TestHandleWorkouts(t *testing.T) {
	srv := newTestServer(t)

	code, body := get(t, srv, "/api/workouts")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["status"] != "success" {
		t.Errorf("expected success status, got %v", body["status"])
	}

	days, _ := body["days"].([]interface{})
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %v", body["days"])
	}
	day, _ := days[0].(map[string]interface{})
	labels, _ := day["labels"].([]interface{})
	today := time.Now().Format("2006-01-02")
	if len(labels) != 1 || labels[0] != today+": Power Zone" {
		t.Errorf("unexpected labels: %v", labels)
	}
}

func TestHandleStack(t *testing.T) {
	srv := newTestServer(t)

	code, body := get(t, srv, "/api/stack")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	classes, _ := body["classes"].([]interface{})
	if len(classes) != 2 || classes[0] != "A" || classes[1] != "B" {
		t.Errorf("unexpected classes: %v", body["classes"])
	}
}

func TestHandleCategories(t *testing.T) {
	srv := newTestServer(t)

	code, body := get(t, srv, "/api/categories")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	categories, _ := body["categories"].([]interface{})
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %v", body["categories"])
	}
	cat, _ := categories[0].(map[string]interface{})
	if cat["slug"] != "yoga" {
		t.Errorf("unexpected category: %v", cat)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/stack", nil)
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
