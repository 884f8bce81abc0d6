package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/liora/pkg/chat"
	"github.com/hugohenrick/liora/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

const defaultModel = openai.GPT4oMini

// GeneratorOptions configura o gerador baseado na API da OpenAI
type GeneratorOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// OpenAIGenerator implementa Generator com chat completions
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	logger      logger.Logger
}

// NewOpenAIGenerator cria um novo gerador
func NewOpenAIGenerator(opts GeneratorOptions, log logger.Logger) (*OpenAIGenerator, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY não configurada")
	}

	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		timeout:     opts.Timeout,
		logger:      log,
	}, nil
}

// Generate envia o prompt de sistema, com o contexto serializado, seguido do histórico
func (g *OpenAIGenerator) Generate(ctx context.Context, history []chat.Message, c *Context) (string, error) {
	systemPrompt, err := SystemPrompt(c)
	if err != nil {
		return "", err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == chat.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("erro na chamada da API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	g.logger.Info("Resposta gerada com sucesso",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration", time.Since(start).String())

	return text, nil
}

const systemInstruction = `Eres Liora, una asistente culinaria que ayuda a planificar menús semanales, ` +
	`sugerir recetas, organizar la lista de la compra y resolver dudas de nutrición. ` +
	`Responde siempre en español, de forma breve y práctica. ` +
	`Respeta las restricciones alimentarias del perfil del usuario. ` +
	`Usa únicamente los datos del contexto cuando hables de sus favoritos, su menú o su lista de compra.`

// SystemPrompt monta o prompt de sistema com o contexto do usuário em JSON
func SystemPrompt(c *Context) (string, error) {
	if c == nil {
		return systemInstruction, nil
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao serializar contexto: %w", err)
	}

	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\nTemas detectados: ")
	b.WriteString(strings.Join(c.Categories.Strings(), ", "))
	if c.UserProfile != nil && len(c.UserProfile.DietaryRestrictions) > 0 {
		b.WriteString("\nRestricciones alimentarias: ")
		b.WriteString(strings.Join(c.UserProfile.DietaryRestrictions, ", "))
	}
	b.WriteString("\n\nContexto:\n")
	b.Write(data)
	return b.String(), nil
}
