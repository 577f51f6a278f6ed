package domain

import "errors"

var (
	ErrModelUnavailable  = errors.New("model unavailable")
	ErrGenerationBlocked = errors.New("generation blocked")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrRenderFailed      = errors.New("render failed")
	ErrRenderTimeout     = errors.New("render timeout")
	ErrArtifactNotFound  = errors.New("artifact not found")
)
