// Package transcribe converts recorded speech into text via an
// external transcription service. The service is an OpenAI-style
// audio transcription HTTP API; the endpoint and model are
// configurable so self-hosted servers (e.g., a local whisper server)
// work the same way.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// APIKeyEnv is the environment variable holding the service API key.
const APIKeyEnv = "DAYLOG_TRANSCRIBER_API_KEY"

// Sentinel errors for the two user-facing failure modes of speech
// input. Neither is retried; the user retries manually.
var (
	// ErrAmbiguous indicates the service could not produce a confident
	// transcript from the audio.
	ErrAmbiguous = errors.New("could not understand audio")
	// ErrUnavailable indicates the transcription service could not be
	// reached or failed internally.
	ErrUnavailable = errors.New("transcription service unavailable")
)

// Client calls the transcription service. The zero value is not
// usable; construct with New or NewFromEnv.
type Client struct {
	endpoint   string
	model      string
	language   string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client for the given endpoint, model, and language.
func New(endpoint, model, language, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		model:      model,
		language:   language,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// NewFromEnv creates a Client reading the API key from APIKeyEnv.
func NewFromEnv(endpoint, model, language string) (*Client, error) {
	apiKey := os.Getenv(APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable not set", APIKeyEnv)
	}
	return New(endpoint, model, language, apiKey), nil
}

// transcriptionResponse is the service's JSON response body.
type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio file at audioPath and returns the
// transcript text. This is a blocking call with no internal timeout;
// cancellation comes from ctx. Callers that must stay responsive
// should use TranscribeAsync instead of calling this on their own
// execution unit.
//
// Failure modes: ErrAmbiguous when the service returns an empty
// transcript, ErrUnavailable when the service cannot be reached or
// answers with a server error. No retries are attempted.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := writer.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if c.language != "" {
		if err := writer.WriteField("language", c.language); err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp transcriptionResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	text := strings.TrimSpace(apiResp.Text)
	if text == "" {
		return "", ErrAmbiguous
	}

	return text, nil
}

// Result is the outcome of an asynchronous transcription.
type Result struct {
	Text string
	Err  error
}

// TranscribeAsync runs Transcribe on a dedicated goroutine and
// delivers the result on the returned channel. The channel is
// buffered, so the worker never blocks on a caller that went away.
// Interactive surfaces should wait on the channel instead of owning
// the blocking call themselves.
func (c *Client) TranscribeAsync(ctx context.Context, audioPath string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		text, err := c.Transcribe(ctx, audioPath)
		ch <- Result{Text: text, Err: err}
	}()
	return ch
}
