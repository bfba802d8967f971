package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"FoodTechScanner/internal/config"
)

func testConfig(endpoint string) config.ChatGPTConfig {
	return config.ChatGPTConfig{
		Endpoint:     endpoint,
		Model:        "gpt-4o-mini",
		APIKey:       "test-key",
		SystemPrompt: "You curate food-tech articles.",
		MaxTokens:    2000,
		Completions:  1,
		Temperature:  0.5,
	}
}

func TestCompleteSendsConfiguredRequest(t *testing.T) {
	t.Parallel()

	var (
		gotAuth        string
		gotContentType string
		gotBody        struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			MaxTokens   int     `json:"max_tokens"`
			N           int     `json:"n"`
			Temperature float64 `json:"temperature"`
		}
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"ranked digest"}}]}`)
	}))
	defer server.Close()

	client := NewChatGPTClient(testConfig(server.URL))

	reply, err := client.Complete(context.Background(), "user message body")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if reply != "ranked digest" {
		t.Fatalf("reply = %q, want raw passthrough", reply)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if gotBody.Model != "gpt-4o-mini" {
		t.Fatalf("model = %q", gotBody.Model)
	}
	if gotBody.MaxTokens != 2000 || gotBody.N != 1 || gotBody.Temperature != 0.5 {
		t.Fatalf("sampling params = %d/%d/%v", gotBody.MaxTokens, gotBody.N, gotBody.Temperature)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" || gotBody.Messages[0].Content != "You curate food-tech articles." {
		t.Fatalf("system message = %+v", gotBody.Messages[0])
	}
	if gotBody.Messages[1].Role != "user" || gotBody.Messages[1].Content != "user message body" {
		t.Fatalf("user message = %+v", gotBody.Messages[1])
	}
}

func TestCompleteErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "rate limited")
	}))
	defer server.Close()

	client := NewChatGPTClient(testConfig(server.URL))

	_, err := client.Complete(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("error lacks status and body: %v", err)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	client := NewChatGPTClient(testConfig(server.URL))

	_, err := client.Complete(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("expected no-choices error, got %v", err)
	}
}

func TestCompleteMisconfigured(t *testing.T) {
	t.Parallel()

	cfg := testConfig("https://api.openai.com/v1/chat/completions")
	cfg.APIKey = ""
	client := NewChatGPTClient(cfg)

	_, err := client.Complete(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "misconfigured") {
		t.Fatalf("expected misconfiguration error, got %v", err)
	}
}
