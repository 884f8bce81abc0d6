package dto

import (
	"github.com/hugohenrick/liora/pkg/chat"
)

// AssistantMessageRequest representa uma mensagem enviada ao assistente
type AssistantMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// AssistantMessageResponse representa a resposta do assistente
type AssistantMessageResponse struct {
	Response   string         `json:"response"`
	Categories []string       `json:"categories"`
	History    []chat.Message `json:"history"`
}

// AssistantHistoryResponse representa o histórico da conversa
type AssistantHistoryResponse struct {
	History []chat.Message `json:"history"`
	Total   int            `json:"total"`
}

// NewAssistantMessageResponse cria uma nova resposta do assistente com histórico
func NewAssistantMessageResponse(response string, categories []string, history []chat.Message) AssistantMessageResponse {
	if history == nil {
		history = []chat.Message{}
	}
	return AssistantMessageResponse{
		Response:   response,
		Categories: categories,
		History:    history,
	}
}
