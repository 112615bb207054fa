package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peloctl/peloctl/pkg/config"
	"github.com/peloctl/peloctl/pkg/peloton"
)

// Server exposes a read-only JSON view of the authenticated user's workout
// history and stack.
type Server struct {
	config *config.Config
	logger *log.Logger
	mux    *http.ServeMux
	client *peloton.Client
	userID string
}

// New creates a new HTTP server backed by a fresh API client.
func New(config *config.Config, logger *log.Logger) *Server {
	return &Server{
		config: config,
		logger: logger,
		mux:    http.NewServeMux(),
		client: peloton.New(config, logger),
	}
}

// Start authenticates once, then serves until the listener fails.
func (s *Server) Start(addr string) error {
	auth, err := s.client.Authenticate()
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}
	s.userID = auth.UserID

	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/workouts", s.withLogging(s.handleWorkouts))
	s.mux.HandleFunc("/api/stack", s.withLogging(s.handleStack))
	s.mux.HandleFunc("/api/categories", s.withLogging(s.handleCategories))
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	groups, err := s.client.UserWorkouts(s.userID, 0)
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch workouts", err)
		return
	}

	// Flatten the ordered grouping for JSON, keeping date order.
	type dateGroup struct {
		Date   string   `json:"date"`
		Labels []string `json:"labels"`
	}
	days := make([]dateGroup, 0, groups.Len())
	for _, date := range groups.Dates() {
		days = append(days, dateGroup{Date: date, Labels: groups.Labels(date)})
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"days":   days,
	})
}

func (s *Server) handleStack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	titles, ok, err := s.client.Stack()
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch stack", err)
		return
	}
	if !ok {
		s.respondError(w, r, http.StatusBadGateway, "stack response was not a success", nil)
		return
	}

	var classes []string
	if titles != "" {
		classes = strings.Split(titles, "\n")
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"classes": classes,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	list, err := s.client.Categories()
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch categories", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"categories": list.BrowseCategories,
	})
}

func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path)
		next(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	s.logger.Error(msg, "method", r.Method, "path", r.URL.Path, "err", err)
	s.writeJSON(w, status, map[string]interface{}{
		"status": "error",
		"error":  msg,
	})
}
