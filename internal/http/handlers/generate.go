package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"animagen/internal/domain"
)

type generateRequest struct {
	Prompt      string `json:"prompt"`
	Orientation string `json:"orientation"`
	Quality     string `json:"quality"`
}

type generateResponse struct {
	Code      string      `json:"code"`
	Meta      domain.Meta `json:"meta"`
	VideoPath string      `json:"video_path"`
}

// Generate runs the full idea-to-video pipeline for one request.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	idea := strings.TrimSpace(req.Prompt)
	if idea == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt is required")
		return
	}

	genReq := domain.GenerationRequest{
		Idea:        idea,
		Orientation: domain.ParseOrientation(req.Orientation),
		Quality:     domain.ParseQuality(req.Quality),
	}
	res, err := a.Pipeline.Generate(r.Context(), genReq)
	if err != nil {
		a.Log.Error().Err(err).Str("idea", idea).Msg("generation failed")
		a.pipelineError(w, err)
		return
	}

	id := uuid.NewString()
	key, err := a.Store.Write(r.Context(), "videos/"+id+".mp4", res.Video)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to persist video")
		a.error(w, http.StatusInternalServerError, "internal", "failed to persist video")
		return
	}

	if a.History != nil {
		entry := domain.HistoryEntry{
			ID:          id,
			Idea:        idea,
			Title:       res.Meta.Title,
			Description: res.Meta.Description,
			VideoKey:    key,
		}
		// history is an audit trail; failures never fail the request
		if err := a.History.Insert(r.Context(), entry); err != nil {
			a.Log.Warn().Err(err).Msg("failed to record generation history")
		}
	}

	a.json(w, http.StatusOK, generateResponse{
		Code:      res.Code,
		Meta:      res.Meta,
		VideoPath: "/static/" + key,
	})
}
