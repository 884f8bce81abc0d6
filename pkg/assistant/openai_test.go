package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/domain/shopping"
	"github.com/hugohenrick/liora/pkg/assistant/intent"
	"github.com/hugohenrick/liora/pkg/chat"
	"github.com/hugohenrick/liora/pkg/logger"
)

func testContext() *Context {
	return &Context{
		UserProfile:  &profile.Profile{FullName: "Ana", DietaryRestrictions: []string{"sin gluten"}},
		Favorites:    []*recipe.Recipe{{ID: "r1", Name: "Tortilla"}},
		WeeklyMenu:   []*menu.WeeklyMenu{},
		ShoppingList: []*shopping.Item{},
		Categories:   intent.NewCategorySet(intent.Recipes),
	}
}

func TestSystemPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := SystemPrompt(testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Liora", "Temas detectados: recipes", "sin gluten", `"Tortilla"`, `"shoppingList": []`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newCompletionServer(t *testing.T, content string, captured *completionRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   captured.Model,
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
}

func TestOpenAIGenerator(t *testing.T) {
	t.Parallel()

	var captured completionRequest
	server := newCompletionServer(t, "  ¡Claro! Prueba la tortilla.  ", &captured)
	defer server.Close()

	gen, err := NewOpenAIGenerator(GeneratorOptions{APIKey: "test", BaseURL: server.URL + "/v1"}, logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history := []chat.Message{
		{Role: chat.RoleUser, Content: "hola"},
		{Role: chat.RoleAssistant, Content: "¡Hola!"},
		{Role: chat.RoleUser, Content: "¿una receta?"},
	}

	text, err := gen.Generate(context.Background(), history, testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "¡Claro! Prueba la tortilla." {
		t.Errorf("unexpected text %q", text)
	}

	if captured.Model != defaultModel {
		t.Errorf("expected default model %s, got %s", defaultModel, captured.Model)
	}
	if len(captured.Messages) != 4 {
		t.Fatalf("expected system prompt plus 3 messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || !strings.Contains(captured.Messages[0].Content, "Tortilla") {
		t.Errorf("unexpected system message: %+v", captured.Messages[0])
	}
	if captured.Messages[2].Role != "assistant" || captured.Messages[3].Content != "¿una receta?" {
		t.Errorf("unexpected history mapping: %+v", captured.Messages)
	}
}

func TestOpenAIGeneratorEmptyResponse(t *testing.T) {
	t.Parallel()

	var captured completionRequest
	server := newCompletionServer(t, "   ", &captured)
	defer server.Close()

	gen, err := NewOpenAIGenerator(GeneratorOptions{APIKey: "test", BaseURL: server.URL + "/v1"}, logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = gen.Generate(context.Background(), nil, testContext())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestNewOpenAIGeneratorRequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := NewOpenAIGenerator(GeneratorOptions{}, logger.NewNop()); err == nil {
		t.Fatal("expected error without api key")
	}
}
