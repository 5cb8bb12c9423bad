package transcribe

import "context"

type Transcriber interface {
	// Transcribe загружает сырое аудио провайдеру и ждёт завершения
	// удалённой задачи распознавания.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
