package content

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// LLMClient is the interface both refresher backends satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// NewClient picks the refresher backend from the environment. Set
// MOCK_REFRESHER=true for local development without an API key.
func NewClient() (LLMClient, string) {
	if os.Getenv("MOCK_REFRESHER") == "true" {
		log.Println("[content] refresher using mock data")
		return NewMockClient(), "mock"
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	log.Println("[content] refresher using Anthropic API:", model)
	return NewAPIClient(model), model
}

// ── APIClient ───────────────────────────────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 4096,
		// Factual lookup; no creativity wanted.
		Temperature: param.NewOpt(0.0),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("[content] retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("[content] Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient ──────────────────────────────────────────

// MockClient answers with placeholder officeholders for every question
// number it finds in the prompt.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	var entries []string
	for _, line := range strings.Split(userPrompt, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Question ") {
			continue
		}
		rest := strings.TrimPrefix(line, "Question ")
		end := strings.IndexAny(rest, ": ")
		if end < 0 {
			continue
		}
		if _, err := strconv.Atoi(rest[:end]); err != nil {
			continue
		}
		entries = append(entries, fmt.Sprintf(
			`{"question_number":%s,"answers_en":["[Mock] Current officeholder"],"answers_vi":["[Mock] Người đương nhiệm"]}`,
			rest[:end]))
	}

	return &LLMResponse{
		Content:      fmt.Sprintf(`{"answers":[%s]}`, strings.Join(entries, ",")),
		PromptTokens: 500,
		OutputTokens: 200,
	}, nil
}
