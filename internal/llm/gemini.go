package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider polishes markdown with the Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini provider.
func NewGemini(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiProvider{apiKey: apiKey, model: model}
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "gemini" }

// Validate implements Provider.
func (p *GeminiProvider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("gemini: API 키가 설정되지 않았습니다")
	}
	return nil
}

// Polish implements Provider.
func (p *GeminiProvider) Polish(ctx context.Context, markdown string, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// genai 클라이언트는 생성 시 컨텍스트가 필요해서 호출 시점에 만든다.
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini 클라이언트 생성 실패: %w", err)
	}

	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultOptions().MaxTokens
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(opts.Temperature)),
		MaxOutputTokens: int32(maxTokens),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemPrompt(opts))},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(markdown), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini 요청 실패: %w", err)
	}

	result := &Result{
		Markdown: resp.Text(),
		Model:    model,
	}
	if resp.UsageMetadata != nil {
		result.Usage = TokenUsage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return result, nil
}
