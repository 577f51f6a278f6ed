package genai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"animagen/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := NewClient(Options{
		APIKey:     "test-key",
		HTTPClient: &http.Client{Transport: rt},
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestGenerateTextSuccess(t *testing.T) {
	var captured *http.Request
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		captured = r
		return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"a storyboard"}]}}]}`), nil
	})

	text, err := client.GenerateText(context.Background(), "expand this idea")
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}
	if text != "a storyboard" {
		t.Fatalf("text = %q", text)
	}
	if captured.Header.Get("x-goog-api-key") != "test-key" {
		t.Fatal("api key header missing")
	}
	if !strings.Contains(captured.URL.Path, "gemini-1.5-flash:generateContent") {
		t.Fatalf("unexpected path %q", captured.URL.Path)
	}
}

func TestGenerateTextSafetyBlock(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"candidates":[{"finishReason":"SAFETY","content":{"parts":[]}}]}`), nil
	})
	_, err := client.GenerateText(context.Background(), "p")
	if !errors.Is(err, domain.ErrGenerationBlocked) {
		t.Fatalf("err = %v, want ErrGenerationBlocked", err)
	}
}

func TestGenerateTextPromptFeedbackBlock(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"promptFeedback":{"blockReason":"SAFETY"}}`), nil
	})
	_, err := client.GenerateText(context.Background(), "p")
	if !errors.Is(err, domain.ErrGenerationBlocked) {
		t.Fatalf("err = %v, want ErrGenerationBlocked", err)
	}
}

func TestGenerateTextNoCandidates(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"candidates":[]}`), nil
	})
	_, err := client.GenerateText(context.Background(), "p")
	if !errors.Is(err, domain.ErrGenerationBlocked) {
		t.Fatalf("err = %v, want ErrGenerationBlocked", err)
	}
}

func TestGenerateTextQuotaError(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, `{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"quota exceeded"}}`), nil
	})
	_, err := client.GenerateText(context.Background(), "p")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("err = %v, want provider message preserved", err)
	}
}

func TestGenerateTextTransportError(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	_, err := client.GenerateText(context.Background(), "p")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(Options{APIKey: "  "}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}
