package pipeline

import "strings"

// SanitizePolicy selects how a stage's raw model output is cleaned before it
// is handed to the next stage.
type SanitizePolicy int

const (
	SanitizeNone SanitizePolicy = iota
	SanitizeJSON
	SanitizeFence
)

// Stage pairs a fixed instruction template with its sanitization policy. The
// set of stages is closed; behavior differences between them live here as
// data, not as divergent code paths.
type Stage struct {
	Name     string
	Template string
	Sanitize SanitizePolicy
}

// Prompt interpolates named {variable} placeholders into the stage template.
func (s Stage) Prompt(vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(s.Template)
}

const (
	StageEnhance = "enhance"
	StageDesign  = "design"
	StageTitle   = "title"
	StageCode    = "code"
	StageRender  = "render"
	StageSuggest = "suggest"
	StageExplain = "explain"
)

var stageEnhance = Stage{
	Name:     StageEnhance,
	Sanitize: SanitizeNone,
	Template: `You are a creative director for a motion graphics studio specializing in Manim animations.
A client has given you a simple idea. Expand it into a detailed, scene-by-scene storyboard.
Focus on visual storytelling: describe the objects, their transformations, the camera movements, and the narrative flow.
Respond with a single rich, descriptive paragraph that will guide a designer and a programmer.
Client's idea: "{idea}"`,
}

var stageDesign = Stage{
	Name:     StageDesign,
	Sanitize: SanitizeJSON,
	Template: `You are a senior visual designer with a keen eye for aesthetics and color theory.
Based on the storyboard below, develop a cohesive visual theme for a Manim animation.
Respond with a JSON object holding exactly these keys:
- "palette": a list of 5-7 complementary hex color codes.
- "background_color": a single hex color code for the scene background.
- "font": a common font family suggestion (e.g. "Inter", "Lato", "Roboto").
- "animation_style": a brief description of the animation's feel.

Storyboard: "{description}"`,
}

var stageTitle = Stage{
	Name:     StageTitle,
	Sanitize: SanitizeJSON,
	Template: `You are a copywriter specializing in catchy titles for video content.
Based on the animation storyboard below, produce a title and a short, engaging description (1-2 sentences)
suitable for platforms like YouTube. Respond with a single JSON object with two keys: "title" and "description".
Storyboard: {description}`,
}

var stageCode = Stage{
	Name:     StageCode,
	Sanitize: SanitizeFence,
	Template: `You are a lead Manim developer writing clean, correct animation code.
Write a complete, runnable Python script for a Manim animation from the storyboard and design brief below.
Requirements:
1. The script must be a single, complete Python file importing everything it needs from manim.
2. The main animation class must inherit from Scene, with all logic inside its construct method.
3. Strictly follow the design brief: use the provided palette, background_color and font, and set the background via config.background_color.
4. Design the animation for a {aspect_ratio} aspect ratio.
5. Output only the raw Python code, with no markdown wrapping.
Storyboard: {description}
Design brief (JSON): {theme}`,
}

var stageSuggest = Stage{
	Name:     StageSuggest,
	Sanitize: SanitizeJSON,
	Template: `Brainstorm 3 diverse and visually interesting ideas for a short Manim animation.
The ideas should range from mathematical concepts to abstract data visualizations.
Respond with a perfectly formatted JSON array of strings, e.g. ["idea 1", "idea 2", "idea 3"].`,
}

var stageExplain = Stage{
	Name:     StageExplain,
	Sanitize: SanitizeNone,
	Template: `You are a friendly Manim teaching assistant.
Explain the following Manim code clearly and concisely for a beginner.
Break the explanation into logical sections using markdown headings, covering what the code does and why.
Manim code to explain:
{code}`,
}
