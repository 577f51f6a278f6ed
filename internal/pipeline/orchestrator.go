package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"animagen/internal/domain"
	"animagen/internal/infra"
)

// TextGenerator is the capability to turn a prompt into generated text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Renderer turns generated animation code into video bytes.
type Renderer interface {
	Render(ctx context.Context, code string, quality domain.Quality) ([]byte, error)
}

// StageError reports which stage a pipeline failure occurred in. The wrapped
// error carries the failure classification.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Result is the terminal output of a completed generation run.
type Result struct {
	Code  string
	Theme string
	Meta  domain.Meta
	Video []byte
}

// Orchestrator sequences the generation stages and hands the final code to
// the renderer. Transitions are strictly sequential and fail fast: each stage
// runs exactly once and the first failure aborts the run.
type Orchestrator struct {
	model    TextGenerator
	renderer Renderer
	log      infra.Logger
}

// New constructs an orchestrator. A nil model is allowed and makes every
// operation fail with domain.ErrModelUnavailable, which is how a missing
// credential surfaces per request without crashing the process.
func New(model TextGenerator, renderer Renderer, log infra.Logger) *Orchestrator {
	return &Orchestrator{model: model, renderer: renderer, log: log}
}

// Generate runs Enhance → Design → Title → Code → Render for one request.
// Each stage's output feeds the next; no stage reads state produced after it.
func (o *Orchestrator) Generate(ctx context.Context, req domain.GenerationRequest) (*Result, error) {
	if o.model == nil {
		return nil, &StageError{Stage: StageEnhance, Err: domain.ErrModelUnavailable}
	}

	var pctx domain.PipelineContext

	description, err := o.runStage(ctx, &pctx, stageEnhance, map[string]string{
		"idea": req.Idea,
	})
	if err != nil {
		return nil, err
	}

	theme, err := o.runStage(ctx, &pctx, stageDesign, map[string]string{
		"description": description,
	})
	if err != nil {
		return nil, err
	}

	metaRaw, err := o.runStage(ctx, &pctx, stageTitle, map[string]string{
		"description": description,
	})
	if err != nil {
		return nil, err
	}
	var meta domain.Meta
	if err := json.Unmarshal([]byte(metaRaw), &meta); err != nil {
		return nil, &StageError{Stage: StageTitle, Err: fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)}
	}
	if strings.TrimSpace(meta.Title) == "" {
		meta.Title = cases.Title(language.English).String(req.Idea)
	}

	code, err := o.runStage(ctx, &pctx, stageCode, map[string]string{
		"description":  description,
		"theme":        theme,
		"aspect_ratio": req.Orientation.AspectRatio(),
	})
	if err != nil {
		return nil, err
	}

	video, err := o.renderer.Render(ctx, code, req.Quality)
	if err != nil {
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	o.log.Info().
		Str("title", meta.Title).
		Int("video_bytes", len(video)).
		Msg("generation completed")

	return &Result{Code: code, Theme: theme, Meta: meta, Video: video}, nil
}

// SuggestIdeas asks the model for a short list of animation ideas.
func (o *Orchestrator) SuggestIdeas(ctx context.Context) ([]string, error) {
	if o.model == nil {
		return nil, &StageError{Stage: StageSuggest, Err: domain.ErrModelUnavailable}
	}
	var pctx domain.PipelineContext
	raw, err := o.runStage(ctx, &pctx, stageSuggest, nil)
	if err != nil {
		return nil, err
	}
	var ideas []string
	if err := json.Unmarshal([]byte(raw), &ideas); err != nil {
		return nil, &StageError{Stage: StageSuggest, Err: fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)}
	}
	return ideas, nil
}

// ExplainCode returns a markdown explanation of the given animation code.
func (o *Orchestrator) ExplainCode(ctx context.Context, code string) (string, error) {
	if o.model == nil {
		return "", &StageError{Stage: StageExplain, Err: domain.ErrModelUnavailable}
	}
	var pctx domain.PipelineContext
	return o.runStage(ctx, &pctx, stageExplain, map[string]string{
		"code": code,
	})
}

func (o *Orchestrator) runStage(ctx context.Context, pctx *domain.PipelineContext, stage Stage, vars map[string]string) (string, error) {
	o.log.Debug().Str("stage", stage.Name).Msg("running stage")

	raw, err := o.model.GenerateText(ctx, stage.Prompt(vars))
	if err != nil {
		return "", &StageError{Stage: stage.Name, Err: err}
	}

	out := strings.TrimSpace(raw)
	sanitized := ""
	switch stage.Sanitize {
	case SanitizeJSON:
		out, err = ExtractJSON(raw)
		if err != nil {
			return "", &StageError{Stage: stage.Name, Err: err}
		}
		sanitized = out
	case SanitizeFence:
		out = StripCodeFence(raw)
		sanitized = out
	}

	pctx.Append(domain.StageResult{Stage: stage.Name, RawText: raw, Sanitized: sanitized})
	return out, nil
}
