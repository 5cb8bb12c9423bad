package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful voice assistant. Keep your responses concise and conversational."

type AiService struct {
	groqClient *GroqClient
}

func NewAiService(client *GroqClient) *AiService {
	return &AiService{groqClient: client}
}

func (s *AiService) GetReply(ctx context.Context, message string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	}

	return s.groqClient.GetCompletion(ctx, messages)
}
