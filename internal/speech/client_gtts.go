package speech

import (
	"context"

	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/voices"
)

// TEXT → SPEECH через Google Translate TTS.
type GoogleTTSClient struct {
	speech htgotts.Speech
	store  *AudioStore
}

func NewGoogleTTSClient(store *AudioStore) *GoogleTTSClient {
	return &GoogleTTSClient{
		speech: htgotts.Speech{Folder: store.Dir(), Language: voices.English},
		store:  store,
	}
}

func (c *GoogleTTSClient) Synthesize(_ context.Context, text string) (string, error) {
	// имя всегда свежее, параллельные запросы не пересекаются
	return c.speech.CreateSpeechFile(text, c.store.NewFileName())
}
