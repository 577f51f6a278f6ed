package domain

import "testing"

func TestParseQuality(t *testing.T) {
	cases := map[string]Quality{
		"low":    QualityLow,
		"medium": QualityMedium,
		"HIGH":   QualityHigh,
		" high ": QualityHigh,
		"best":   QualityLow,
		"":       QualityLow,
	}
	for in, want := range cases {
		if got := ParseQuality(in); got != want {
			t.Errorf("ParseQuality(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	if got := ParseOrientation("portrait"); got != OrientationPortrait {
		t.Fatalf("ParseOrientation(portrait) = %q", got)
	}
	if got := ParseOrientation("sideways"); got != OrientationLandscape {
		t.Fatalf("ParseOrientation(sideways) = %q", got)
	}
	if got := OrientationPortrait.AspectRatio(); got != "9:16" {
		t.Fatalf("portrait aspect ratio = %q", got)
	}
	if got := OrientationLandscape.AspectRatio(); got != "16:9" {
		t.Fatalf("landscape aspect ratio = %q", got)
	}
}

func TestPipelineContextLookup(t *testing.T) {
	var ctx PipelineContext
	ctx.Append(StageResult{Stage: "enhance", RawText: "a storyboard"})
	ctx.Append(StageResult{Stage: "design", RawText: "```json\n{}\n```", Sanitized: `{"palette":[]}`})

	if v, ok := ctx.Lookup("enhance"); !ok || v != "a storyboard" {
		t.Fatalf("Lookup(enhance) = %q, %v", v, ok)
	}
	if v, ok := ctx.Lookup("design"); !ok || v != `{"palette":[]}` {
		t.Fatalf("Lookup(design) = %q, %v", v, ok)
	}
	if _, ok := ctx.Lookup("code"); ok {
		t.Fatal("Lookup(code) should miss")
	}
}
