package handlers

import (
	"net/http"

	"github.com/patrickmn/go-cache"
)

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// SuggestPrompts returns a short list of animation ideas. Results are cached
// so repeated visits do not burn model quota.
func (a *App) SuggestPrompts(w http.ResponseWriter, r *http.Request) {
	if cached, ok := a.suggestions.Get(suggestionCacheKey); ok {
		if ideas, ok := cached.([]string); ok {
			a.json(w, http.StatusOK, suggestResponse{Suggestions: ideas})
			return
		}
	}

	ideas, err := a.Pipeline.SuggestIdeas(r.Context())
	if err != nil {
		a.Log.Error().Err(err).Msg("suggestion generation failed")
		a.pipelineError(w, err)
		return
	}
	a.suggestions.Set(suggestionCacheKey, ideas, cache.DefaultExpiration)
	a.json(w, http.StatusOK, suggestResponse{Suggestions: ideas})
}
