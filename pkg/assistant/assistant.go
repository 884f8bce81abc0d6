package assistant

import (
	"context"
	"fmt"

	"github.com/hugohenrick/liora/internal/domain/user"
	"github.com/hugohenrick/liora/pkg/assistant/intent"
	"github.com/hugohenrick/liora/pkg/chat"
	"github.com/hugohenrick/liora/pkg/logger"
)

const defaultHistoryWindow = 20

// Generator produz o texto de resposta a partir do histórico e do contexto montado
type Generator interface {
	Generate(ctx context.Context, history []chat.Message, c *Context) (string, error)
}

// Reply é o resultado de uma mensagem processada pelo assistente
type Reply struct {
	Response   string
	Categories intent.CategorySet
	History    []chat.Message // Ordem cronológica, incluindo a resposta
}

// Assistant conduz uma mensagem pelo pipeline:
// gravar mensagem -> classificar -> montar contexto -> gerar -> gravar resposta
type Assistant struct {
	assembler     *Assembler
	generator     Generator
	repository    chat.Repository
	logger        logger.Logger
	historyWindow int
}

// New cria um novo assistente
func New(assembler *Assembler, generator Generator, repository chat.Repository, log logger.Logger, historyWindow int) *Assistant {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	return &Assistant{
		assembler:     assembler,
		generator:     generator,
		repository:    repository,
		logger:        log,
		historyWindow: historyWindow,
	}
}

// SendMessage processa uma mensagem do usuário e devolve a resposta do assistente
func (a *Assistant) SendMessage(ctx context.Context, u *user.User, content string) (*Reply, error) {
	if !u.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	userMessage, err := chat.NewMessage(u.ID, chat.RoleUser, content)
	if err != nil {
		return nil, err
	}
	if err := a.repository.SaveMessage(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("erro ao salvar mensagem do usuário: %w", err)
	}

	categories := intent.Classify(content)
	a.logger.Info("Processando mensagem do assistente",
		"user_id", u.ID,
		"categories", categories.String())

	aiContext, err := a.assembler.Assemble(ctx, categories, u)
	if err != nil {
		return nil, err
	}

	history := a.recentHistory(ctx, u.ID, *userMessage)

	response, err := a.generator.Generate(ctx, history, aiContext)
	if err != nil {
		a.logger.Error("Erro ao gerar resposta", "user_id", u.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	assistantMessage, err := chat.NewMessage(u.ID, chat.RoleAssistant, response)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if err := a.repository.SaveMessage(ctx, assistantMessage); err != nil {
		// A resposta ainda é entregue ao usuário
		a.logger.Error("Erro ao salvar mensagem do assistente", "user_id", u.ID, "error", err)
	}

	return &Reply{
		Response:   response,
		Categories: aiContext.Categories,
		History:    append(history, *assistantMessage),
	}, nil
}

// recentHistory retorna a janela recente do histórico em ordem cronológica,
// garantindo que a mensagem atual esteja no final
func (a *Assistant) recentHistory(ctx context.Context, userID string, current chat.Message) []chat.Message {
	stored, err := a.repository.GetUserHistory(ctx, userID, a.historyWindow, 0)
	if err != nil {
		a.logger.Error("Erro ao recuperar histórico de mensagens", "user_id", userID, "error", err)
		return []chat.Message{current}
	}

	history := make([]chat.Message, 0, len(stored)+1)
	for _, msg := range chat.Chronological(stored) {
		if msg.ID == current.ID {
			continue
		}
		history = append(history, msg)
	}
	return append(history, current)
}

// History retorna o histórico do usuário em ordem cronológica
func (a *Assistant) History(ctx context.Context, u *user.User, limit int) ([]chat.Message, error) {
	if !u.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if limit <= 0 {
		limit = a.historyWindow
	}
	messages, err := a.repository.GetUserHistory(ctx, u.ID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	return chat.Chronological(messages), nil
}

// CountMessages retorna o total de mensagens armazenadas do usuário
func (a *Assistant) CountMessages(ctx context.Context, u *user.User) (int, error) {
	if !u.IsAuthenticated() {
		return 0, ErrNotAuthenticated
	}
	total, err := a.repository.CountUserMessages(ctx, u.ID)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}
	return total, nil
}

// ClearHistory remove todo o histórico do usuário
func (a *Assistant) ClearHistory(ctx context.Context, u *user.User) error {
	if !u.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if err := a.repository.DeleteUserHistory(ctx, u.ID); err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}
