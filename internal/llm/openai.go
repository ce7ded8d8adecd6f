package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider polishes markdown with the OpenAI Chat Completions API.
type OpenAIProvider struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAI creates an OpenAI provider.
func NewOpenAI(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		apiKey: apiKey,
		model:  model,
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Validate implements Provider.
func (p *OpenAIProvider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("openai: API 키가 설정되지 않았습니다")
	}
	return nil
}

// Polish implements Provider.
func (p *OpenAIProvider) Polish(ctx context.Context, markdown string, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultOptions().MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: float32(opts.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(opts)},
			{Role: openai.ChatMessageRoleUser, Content: markdown},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai 요청 실패: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai 응답에 결과가 없습니다")
	}

	return &Result{
		Markdown: resp.Choices[0].Message.Content,
		Usage: TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model: model,
	}, nil
}
