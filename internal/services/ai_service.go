package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/glucoach/glucoach/internal/config"
	apperrors "github.com/glucoach/glucoach/internal/errors"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	openAIModel = "gpt-4o-mini"
	geminiModel = "gemini-1.5-flash"
)

// AIService submits prompts to the configured text-generation provider.
// Every call is a single attempt with a bounded timeout; there is no
// retry, streaming or caching.
type AIService struct {
	provider     string
	openaiClient *openai.Client
	geminiClient *genai.Client
	timeout      time.Duration
}

func NewAIService(ctx context.Context, cfg config.AIConfig) (*AIService, error) {
	s := &AIService{
		provider: cfg.Provider,
		timeout:  cfg.Timeout,
	}
	if s.timeout <= 0 {
		s.timeout = 30 * time.Second
	}

	switch cfg.Provider {
	case ProviderGemini:
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
	default:
		s.provider = ProviderOpenAI
		s.openaiClient = openai.NewClient(cfg.OpenAIAPIKey)
	}

	return s, nil
}

// Generate submits the prompt and returns the trimmed response text. An
// empty string with a nil error means the provider answered with nothing
// usable; callers substitute their own fallback.
func (s *AIService) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var text string
	var err error
	if s.provider == ProviderGemini {
		text, err = s.generateWithGemini(ctx, prompt, temperature)
	} else {
		text, err = s.generateWithOpenAI(ctx, prompt, temperature)
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperrors.NewTimeoutError(s.provider + " generation")
		}
		return "", apperrors.NewExternalAPIError(err, s.provider)
	}

	return strings.TrimSpace(text), nil
}

func (s *AIService) generateWithOpenAI(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := s.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *AIService) generateWithGemini(ctx context.Context, prompt string, temperature float32) (string, error) {
	model := s.geminiClient.GenerativeModel(geminiModel)
	model.SetTemperature(temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	if text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(text), nil
	}
	return "", nil
}
