package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"sitegen_server/internal/prompts"
	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
)

const systemMessage = "You are a website content generator. You respond with valid JSON only, never prose."

// ModelProvider serves content from an OpenAI-compatible chat-completion
// endpoint. Both the hosted remote API and a locally hosted model (anything
// speaking the same protocol, e.g. Ollama) use this implementation; only the
// client configuration differs.
type ModelProvider struct {
	name   string
	client *openai.Client
	model  string
	log    *zap.Logger
}

// NewRemoteProvider builds the provider for the hosted model API.
func NewRemoteProvider(apiKey, model string, log *zap.Logger) *ModelProvider {
	return &ModelProvider{
		name:   string(types.ProviderRemoteLLM),
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log,
	}
}

// NewLocalProvider builds the provider for a locally hosted endpoint.
func NewLocalProvider(baseURL, model string, log *zap.Logger) *ModelProvider {
	cfg := openai.DefaultConfig("")
	cfg.BaseURL = baseURL
	return &ModelProvider{
		name:   string(types.ProviderLocalLLM),
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log,
	}
}

func (p *ModelProvider) Name() string { return p.name }

func (p *ModelProvider) GenerateStrategy(ctx context.Context, req types.GenerationRequest) (string, error) {
	prompt := fmt.Sprintf(prompts.StrategyPrompt(),
		req.Description,
		req.Industry,
		orDefault(req.Style, "no preference"),
		orDefault(req.TargetAudience, "general public"),
		orDefault(strings.Join(req.BusinessGoals, "; "), "none stated"),
		orDefault(strings.Join(req.UniqueSellingPoints, "; "), "none stated"),
	)
	return p.complete(ctx, prompt)
}

func (p *ModelProvider) FillProps(ctx context.Context, creq ContentRequest) (string, error) {
	schemaJSON, err := json.Marshal(creq.PropsSchema)
	if err != nil {
		return "", fmt.Errorf("marshal props schema: %w", err)
	}
	prompt := fmt.Sprintf(prompts.SectionPrompt(),
		creq.SectionType,
		creq.VariantName,
		creq.VariantDescription,
		orDefault(creq.ToneOfVoice, "friendly and professional"),
		creq.BusinessName,
		creq.Industry,
		creq.Description,
		string(schemaJSON),
	)
	return p.complete(ctx, prompt)
}

// complete sends one chat completion, retrying once on transient failure.
// Unreachable or unauthorized endpoints surface as *UnavailableError so the
// failover policy can take over.
func (p *ModelProvider) complete(ctx context.Context, prompt string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	}

	resp, err := p.client.CreateChatCompletion(ctx, request)
	if err != nil && utils.IsTransient(err) && ctx.Err() == nil {
		p.log.Warn("model call failed, retrying once",
			zap.String("provider", p.name), zap.Error(err))
		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return "", &UnavailableError{Provider: p.name, Err: ctx.Err()}
		}
		resp, err = p.client.CreateChatCompletion(ctx, request)
	}

	if err != nil {
		if utils.IsTransient(err) || utils.IsAuthError(err) || errors.Is(err, context.DeadlineExceeded) {
			return "", &UnavailableError{Provider: p.name, Err: err}
		}
		return "", fmt.Errorf("%s chat completion failed: %w", p.name, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s returned an empty response", p.name)
	}
	return resp.Choices[0].Message.Content, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
