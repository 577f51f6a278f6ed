package pipeline

import (
	"encoding/json"
	"errors"
	"testing"

	"animagen/internal/domain"
)

func TestExtractJSONObject(t *testing.T) {
	in := "Sure! Here is the theme:\n{\"palette\": [\"#fff\"], \"font\": \"Inter\"}\nHope it helps."
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON returned error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("extracted payload does not parse: %v\npayload: %s", err, got)
	}
	if decoded["font"] != "Inter" {
		t.Fatalf("font = %v, want Inter", decoded["font"])
	}
}

func TestExtractJSONArray(t *testing.T) {
	in := "ideas below\n[\"a\", \"b\", \"c\"]"
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON returned error: %v", err)
	}
	var items []string
	if err := json.Unmarshal([]byte(got), &items); err != nil {
		t.Fatalf("extracted payload does not parse: %v", err)
	}
	if len(items) != 3 || items[2] != "c" {
		t.Fatalf("items = %#v", items)
	}
}

func TestExtractJSONPicksEarlierOpener(t *testing.T) {
	in := `[{"title": "x"}]`
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON returned error: %v", err)
	}
	if got != `[{"title": "x"}]` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractJSONNoBraces(t *testing.T) {
	_, err := ExtractJSON("just prose, nothing structured")
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestExtractJSONUnterminated(t *testing.T) {
	_, err := ExtractJSON(`{"title": "x"`)
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	in := "```python\nfrom manim import *\n\nclass Demo(Scene):\n    pass\n```"
	want := "from manim import *\n\nclass Demo(Scene):\n    pass"
	if got := StripCodeFence(in); got != want {
		t.Fatalf("StripCodeFence() = %q, want %q", got, want)
	}
}

func TestStripCodeFenceUnfenced(t *testing.T) {
	in := "from manim import *"
	if got := StripCodeFence(in); got != in {
		t.Fatalf("StripCodeFence() = %q, want unchanged", got)
	}
}

func TestStripCodeFenceIdempotent(t *testing.T) {
	inputs := []string{
		"```python\nprint(1)\n```",
		"```\nprint(1)\n```",
		"print(1)",
		"```json",
		"",
		"   padded   ",
	}
	for _, in := range inputs {
		once := StripCodeFence(in)
		twice := StripCodeFence(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
