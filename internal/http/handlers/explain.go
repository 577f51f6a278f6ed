package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type explainRequest struct {
	Code string `json:"code"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

// Explain returns a beginner-friendly markdown explanation of animation code.
func (a *App) Explain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "code is required")
		return
	}

	explanation, err := a.Pipeline.ExplainCode(r.Context(), req.Code)
	if err != nil {
		a.Log.Error().Err(err).Msg("code explanation failed")
		a.pipelineError(w, err)
		return
	}
	a.json(w, http.StatusOK, explainResponse{Explanation: explanation})
}
