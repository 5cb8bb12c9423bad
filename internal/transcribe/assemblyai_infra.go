package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const defaultBaseURL = "https://api.assemblyai.com/v2"

var (
	ErrUploadFailed         = errors.New("Failed to upload audio")
	ErrSubmissionFailed     = errors.New("Failed to request transcription")
	ErrTranscriptionFailed  = errors.New("Transcription failed")
	ErrTranscriptionTimeout = errors.New("Transcription timeout")
)

// AssemblyAI работает асинхронно: upload → submit → poll по статусу.
// Интервал и лимит опроса — поля, чтобы тесты не ждали реальные секунды.
type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	httpCli      *http.Client
	pollInterval time.Duration
	maxAttempts  int
}

func NewAssemblyAIClient(apiKey string) *AssemblyAIClient {
	return &AssemblyAIClient{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		httpCli:      &http.Client{Timeout: 60 * time.Second},
		pollInterval: time.Second,
		maxAttempts:  60,
	}
}

func NewAssemblyAIClientWithURL(apiKey, baseURL string, pollInterval time.Duration, maxAttempts int) *AssemblyAIClient {
	c := NewAssemblyAIClient(apiKey)
	c.baseURL = baseURL
	c.pollInterval = pollInterval
	c.maxAttempts = maxAttempts
	return c
}

func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio []byte) (string, error) {
	audioURL, err := c.upload(ctx, audio)
	if err != nil {
		return "", err
	}

	id, err := c.submit(ctx, audioURL)
	if err != nil {
		return "", err
	}

	return c.poll(ctx, id)
}

func (c *AssemblyAIClient) upload(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("assemblyai upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrUploadFailed
	}

	var parsed struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return parsed.UploadURL, nil
}

func (c *AssemblyAIClient) submit(ctx context.Context, audioURL string) (string, error) {
	b, _ := json.Marshal(map[string]string{"audio_url": audioURL})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("assemblyai submit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrSubmissionFailed
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode transcript response: %w", err)
	}
	return parsed.ID, nil
}

type transcriptStatus struct {
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

func (c *AssemblyAIClient) poll(ctx context.Context, id string) (string, error) {
	pollingURL := fmt.Sprintf("%s/transcript/%s", c.baseURL, id)

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		status, err := c.fetchStatus(ctx, pollingURL)
		if err != nil {
			return "", err
		}

		switch status.Status {
		case "completed":
			return status.Text, nil
		case "error":
			if status.Error == "" {
				return "", ErrTranscriptionFailed
			}
			return "", errors.New(status.Error)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}

	return "", ErrTranscriptionTimeout
}

func (c *AssemblyAIClient) fetchStatus(ctx context.Context, url string) (*transcriptStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assemblyai poll: %w", err)
	}
	defer resp.Body.Close()

	var parsed transcriptStatus
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode poll response: %w", err)
	}
	return &parsed, nil
}
