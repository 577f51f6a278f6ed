package domain

import (
	"strings"
	"time"
)

// Orientation selects the aspect ratio the generated animation is designed for.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// ParseOrientation normalizes a user-supplied orientation, defaulting to landscape.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(OrientationPortrait)) {
		return OrientationPortrait
	}
	return OrientationLandscape
}

// AspectRatio returns the ratio string handed to the code-generation prompt.
func (o Orientation) AspectRatio() string {
	if o == OrientationPortrait {
		return "9:16"
	}
	return "16:9"
}

// Quality selects one of the renderer's three preset tiers.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// ParseQuality normalizes a user-supplied quality. Unknown values map to the
// lowest tier.
func ParseQuality(s string) Quality {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(QualityMedium):
		return QualityMedium
	case string(QualityHigh):
		return QualityHigh
	default:
		return QualityLow
	}
}

// GenerationRequest is an accepted animation request. Immutable once built.
type GenerationRequest struct {
	Idea        string
	Orientation Orientation
	Quality     Quality
}

// StageResult is the output of a single pipeline stage invocation.
type StageResult struct {
	Stage     string
	RawText   string
	Sanitized string
}

// PipelineContext accumulates stage results in stage order. Append-only; it
// lives for one request and is never shared between requests.
type PipelineContext struct {
	Results []StageResult
}

// Append records a completed stage result.
func (c *PipelineContext) Append(res StageResult) {
	c.Results = append(c.Results, res)
}

// Lookup returns the sanitized output of a named stage, falling back to the
// raw text when no sanitization applied.
func (c *PipelineContext) Lookup(stage string) (string, bool) {
	for _, res := range c.Results {
		if res.Stage != stage {
			continue
		}
		if res.Sanitized != "" {
			return res.Sanitized, true
		}
		return res.RawText, true
	}
	return "", false
}

// Meta is the generated title and description for a finished animation.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HistoryEntry is one persisted generation record.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Idea        string    `json:"idea"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoKey    string    `json:"video_key"`
	CreatedAt   time.Time `json:"created_at"`
}
