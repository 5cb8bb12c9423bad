package ai

import "context"

type Service interface {
	// GetReply отправляет одно сообщение пользователя модели и возвращает
	// сгенерированный ответ. Без истории, без стриминга, без ретраев.
	GetReply(ctx context.Context, message string) (string, error)
}
