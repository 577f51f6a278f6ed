package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"animagen/internal/domain"
	"animagen/internal/pipeline"
)

type errorResponse struct {
	Error   string `json:"error"`
	Stage   string `json:"stage,omitempty"`
	Details string `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg, details string) {
	a.json(w, code, errorResponse{Error: msg, Details: details})
}

// pipelineError maps a pipeline failure onto an HTTP status, preserving the
// stage name and diagnostic detail. Render diagnostics (including captured
// renderer stderr) are returned verbatim, matching the current exposure
// policy; tightening that for untrusted callers is a deployment decision.
func (a *App) pipelineError(w http.ResponseWriter, err error) {
	stage := ""
	var se *pipeline.StageError
	if errors.As(err, &se) {
		stage = se.Stage
	}

	code := http.StatusInternalServerError
	msg := "generation failed"
	switch {
	case errors.Is(err, domain.ErrModelUnavailable):
		code = http.StatusServiceUnavailable
		msg = "generation is not configured"
	case errors.Is(err, domain.ErrGenerationBlocked):
		code = http.StatusUnprocessableEntity
		msg = "generation blocked"
	case errors.Is(err, domain.ErrMalformedResponse):
		code = http.StatusBadGateway
		msg = "malformed model response"
	case errors.Is(err, domain.ErrRenderTimeout):
		code = http.StatusGatewayTimeout
		msg = "render timeout"
	case errors.Is(err, domain.ErrRenderFailed), errors.Is(err, domain.ErrArtifactNotFound):
		code = http.StatusInternalServerError
		msg = "render failed"
	case errors.Is(err, domain.ErrGenerationFailed):
		code = http.StatusBadGateway
		msg = "generation failed"
	}

	a.json(w, code, errorResponse{Error: msg, Stage: stage, Details: err.Error()})
}
