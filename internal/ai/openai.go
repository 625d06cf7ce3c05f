package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"go-linkedin-job-source/internal/models"

	"github.com/google/uuid"
)

const (
	openAIURL = "https://api.openai.com/v1/chat/completions"
	maxTokens = 150
)

// APIError is returned when the completion endpoint does not answer 200 with choices.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion API returned status %d: %s", e.Status, e.Body)
}

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// NewOpenAIClient creates a chat-completions client authenticated with apiKey.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		url:        openAIURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithURL points the client at another OpenAI-compatible endpoint.
func (c *OpenAIClient) WithURL(url string) *OpenAIClient {
	c.url = url
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Completion is a successful reply: the trimmed text and the full payload.
type Completion struct {
	Text string
	Raw  json.RawMessage
}

// Complete sends prompt as a single user message with deterministic sampling.
func (c *OpenAIClient) Complete(ctx context.Context, model, prompt string) (*Completion, error) {
	reqBody := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	reqID := uuid.New().String()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	log.Printf("      🤖 [%s] %s answered %d in %dms", reqID[:8], model, resp.StatusCode, time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil || len(parsed.Choices) == 0 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	return &Completion{
		Text: strings.TrimSpace(parsed.Choices[0].Message.Content),
		Raw:  json.RawMessage(bodyBytes),
	}, nil
}

// Enrich builds the extraction prompt for description and parses the reply strictly.
func (c *OpenAIClient) Enrich(ctx context.Context, description, model string) (*models.Enrichment, error) {
	completion, err := c.Complete(ctx, model, buildPrompt(description))
	if err != nil {
		return nil, err
	}
	return ParseEnrichment(completion.Text)
}
