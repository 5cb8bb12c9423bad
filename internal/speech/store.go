package speech

import (
	"os"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"
)

// AudioStore владеет каталогом синтезированного аудио. Файлы пишутся по
// одному на запрос под уникальным именем и удаляются только при Sweep.
type AudioStore struct {
	dir string
	log *logger.ZapLogger
}

func NewAudioStore(dir string, log *logger.ZapLogger) *AudioStore {
	return &AudioStore{dir: dir, log: log}
}

func (s *AudioStore) Dir() string {
	return s.dir
}

func (s *AudioStore) EnsureDir() error {
	return os.MkdirAll(s.dir, 0755)
}

// NewFileName возвращает свежее базовое имя без расширения,
// ".mp3" добавляет движок синтеза.
func (s *AudioStore) NewFileName() string {
	return uuid.NewString()
}

// Sweep удаляет mp3, оставшиеся от прошлых запусков. Ошибка по отдельному
// файлу логируется и не прерывает обход.
func (s *AudioStore) Sweep() int {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.mp3"))
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "audio sweep glob failed", Error: err})
		return 0
	}

	removed := 0
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			s.log.Log(logger.LogEntry{Level: "warn", Message: "failed to remove " + path, Error: err})
			continue
		}
		removed++
	}
	return removed
}
