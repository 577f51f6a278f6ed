package handlers

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"animagen/internal/domain"
	"animagen/internal/infra"
	"animagen/internal/pipeline"
	"animagen/internal/storage"
)

// Pipeline is the generation capability the handlers depend on.
type Pipeline interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*pipeline.Result, error)
	SuggestIdeas(ctx context.Context) ([]string, error)
	ExplainCode(ctx context.Context, code string) (string, error)
}

// HistoryRepository records completed generations. May be absent.
type HistoryRepository interface {
	Insert(ctx context.Context, entry domain.HistoryEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}

// App bundles the dependencies the HTTP handlers need.
type App struct {
	Log      infra.Logger
	Pipeline Pipeline
	Store    *storage.FileStore
	History  HistoryRepository

	suggestions *cache.Cache
}

const suggestionCacheKey = "prompt_suggestions"

// NewApp constructs the handler container. history may be nil, which disables
// the history endpoint.
func NewApp(log infra.Logger, p Pipeline, store *storage.FileStore, history HistoryRepository) *App {
	return &App{
		Log:         log,
		Pipeline:    p,
		Store:       store,
		History:     history,
		suggestions: cache.New(10*time.Minute, 30*time.Minute),
	}
}
