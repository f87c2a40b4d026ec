package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/agentpress/agentpress/pkg/domain"
)

// editionsHandler lists a profile's editions, newest first
func (s *Server) editionsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := r.PathValue("id")

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			RenderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = l
	}

	if _, err := s.db.GetProfile(ctx, profileID); err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}

	editions, err := s.db.ListEditions(ctx, profileID, limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list editions for profile %s: %v", profileID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	views := make([]editionView, 0, len(editions))
	for _, e := range editions {
		views = append(views, newEditionView(e))
	}
	RenderJSON(w, r, http.StatusOK, views)
}

// generateHandler triggers edition generation for a profile
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := r.PathValue("id")

	if _, err := s.db.GetProfile(ctx, profileID); err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}

	if err := s.scheduler.GenerateNow(ctx, profileID); err != nil {
		lgr.Printf("[ERROR] failed to generate edition for profile %s: %v", profileID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]string{"result": "generated"})
}

// storyRequest is the saved-story creation payload
type storyRequest struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// createStoryHandler saves an agent-pinned story for the next edition
func (s *Server) createStoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := r.PathValue("id")

	var req storyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Headline) == "" {
		RenderError(w, r, fmt.Errorf("headline is required"), http.StatusBadRequest)
		return
	}

	if _, err := s.db.GetProfile(ctx, profileID); err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}

	story := &domain.SavedStory{
		ProfileID: profileID,
		Headline:  strings.TrimSpace(req.Headline),
		Summary:   strings.TrimSpace(req.Summary),
		URL:       strings.TrimSpace(req.URL),
		Category:  domain.NormalizeCategory(req.Category),
	}
	if err := s.db.CreateSavedStory(ctx, story); err != nil {
		lgr.Printf("[ERROR] failed to save story for profile %s: %v", profileID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusCreated, story)
}

// listStoriesHandler lists a profile's saved stories
func (s *Server) listStoriesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := r.PathValue("id")

	if _, err := s.db.GetProfile(ctx, profileID); err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}

	stories, err := s.db.ListSavedStories(ctx, profileID)
	if err != nil {
		lgr.Printf("[ERROR] failed to list saved stories for profile %s: %v", profileID, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, stories)
}

// cycleHandler runs one scheduler cycle and reports the summary
func (s *Server) cycleHandler(w http.ResponseWriter, r *http.Request) {
	summary := s.scheduler.RunCycle(r.Context())
	RenderJSON(w, r, http.StatusOK, summary)
}

// sweepHandler resolves due sends and reports the counts
func (s *Server) sweepHandler(w http.ResponseWriter, r *http.Request) {
	sent, failed := s.scheduler.SweepDueSends(r.Context())
	RenderJSON(w, r, http.StatusOK, map[string]int{"sent": sent, "failed": failed})
}
