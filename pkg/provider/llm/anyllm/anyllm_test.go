package anyllm

import (
	"strings"
	"testing"

	anyllmlib "github.com/mozilla-ai/any-llm-go"

	"github.com/MrWong99/lexirank/pkg/provider/llm"
)

// ── buildParams ───────────────────────────────────────────────────────────────

// TestBuildParams_SystemPromptFirst checks that the system prompt is prepended
// as the first message.
func TestBuildParams_SystemPromptFirst(t *testing.T) {
	p := &Provider{model: "gpt-4o-mini"}
	params := p.buildParams(llm.CompletionRequest{
		SystemPrompt: "You produce vocabulary lists.",
		Messages: []llm.Message{
			{Role: "user", Content: "a day at the beach"},
		},
	})
	if len(params.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(params.Messages))
	}
	if params.Messages[0].Role != anyllmlib.RoleSystem {
		t.Errorf("expected first role system, got %q", params.Messages[0].Role)
	}
	if params.Messages[0].Content != "You produce vocabulary lists." {
		t.Errorf("unexpected system content: %q", params.Messages[0].Content)
	}
	if params.Messages[1].Role != "user" || params.Messages[1].Content != "a day at the beach" {
		t.Errorf("unexpected user message: %+v", params.Messages[1])
	}
}

// TestBuildParams_PreservesMessageOrder checks role and content pass-through.
func TestBuildParams_PreservesMessageOrder(t *testing.T) {
	p := &Provider{model: "gpt-4o-mini"}
	params := p.buildParams(llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "second"},
			{Role: "user", Content: "third"},
		},
	})
	if len(params.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(params.Messages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if params.Messages[i].Content != want {
			t.Errorf("message %d: got %q, want %q", i, params.Messages[i].Content, want)
		}
	}
}

// TestBuildParams_Model checks that the configured model is set on the params.
func TestBuildParams_Model(t *testing.T) {
	p := &Provider{model: "claude-sonnet-4-5"}
	params := p.buildParams(llm.CompletionRequest{
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	if params.Model != "claude-sonnet-4-5" {
		t.Errorf("expected model claude-sonnet-4-5, got %q", params.Model)
	}
}

// TestBuildParams_Tuning checks temperature and max token mapping.
func TestBuildParams_Tuning(t *testing.T) {
	p := &Provider{model: "gpt-4o-mini"}
	params := p.buildParams(llm.CompletionRequest{
		Messages:    []llm.Message{{Role: "user", Content: "hi"}},
		Temperature: 0.7,
		MaxTokens:   3000,
	})
	if params.Temperature == nil || *params.Temperature != 0.7 {
		t.Errorf("temperature not set: %v", params.Temperature)
	}
	if params.MaxTokens == nil || *params.MaxTokens != 3000 {
		t.Errorf("max tokens not set: %v", params.MaxTokens)
	}
}

// TestBuildParams_DefaultsOmitted checks that zero tuning values stay nil so
// the backend uses its own defaults.
func TestBuildParams_DefaultsOmitted(t *testing.T) {
	p := &Provider{model: "gpt-4o-mini"}
	params := p.buildParams(llm.CompletionRequest{
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	if params.Temperature != nil {
		t.Errorf("expected nil temperature, got %v", *params.Temperature)
	}
	if params.MaxTokens != nil {
		t.Errorf("expected nil max tokens, got %v", *params.MaxTokens)
	}
}

// ── New ───────────────────────────────────────────────────────────────────────

// TestNew_EmptyProviderName checks that an empty provider name is rejected.
func TestNew_EmptyProviderName(t *testing.T) {
	_, err := New("", "gpt-4o")
	if err == nil {
		t.Fatal("expected error for empty provider name")
	}
}

// TestNew_EmptyModel checks that an empty model is rejected.
func TestNew_EmptyModel(t *testing.T) {
	_, err := New("openai", "")
	if err == nil {
		t.Fatal("expected error for empty model")
	}
}

// TestNew_UnsupportedProvider checks the error message lists supported names.
func TestNew_UnsupportedProvider(t *testing.T) {
	_, err := New("carrier-pigeon", "rfc1149", anyllmlib.WithAPIKey("key"))
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("error should name the provider: %v", err)
	}
}

// TestNew_CaseInsensitiveProviderName checks name matching ignores case.
func TestNew_CaseInsensitiveProviderName(t *testing.T) {
	p, err := New("OpenAI", "gpt-4o", anyllmlib.WithAPIKey("sk-test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Errorf("ModelID() = %q, want gpt-4o", p.ModelID())
	}
}

// TestNewOllama_NoAPIKeyRequired checks local backends construct without keys.
func TestNewOllama_NoAPIKeyRequired(t *testing.T) {
	p, err := NewOllama("llama3.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama3.1" {
		t.Errorf("ModelID() = %q, want llama3.1", p.ModelID())
	}
}
