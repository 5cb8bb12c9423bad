package speech

import "context"

type Synthesizer interface {
	// Synthesize рендерит текст в mp3 на диске и возвращает путь к файлу.
	Synthesize(ctx context.Context, text string) (string, error)
}
