// Package llm provides the markdown polish providers: 파싱 결과 마크다운을
// LLM에 보내 구조를 다듬는 후처리 단계다.
package llm

import (
	"context"
	"fmt"
)

// Provider is the interface every polish backend implements.
type Provider interface {
	// Name returns the provider identifier (e.g., "openai", "anthropic").
	Name() string

	// Polish rewrites parsed markdown into clean, well-structured markdown.
	Polish(ctx context.Context, markdown string, opts Options) (*Result, error)

	// Validate checks if the provider is properly configured.
	Validate() error
}

// Options contains polish request options.
type Options struct {
	Model       string  `json:"model,omitempty"`       // override the provider default model
	Language    string  `json:"language,omitempty"`    // output language (e.g., "ko", "en")
	MaxTokens   int     `json:"max_tokens,omitempty"`  // maximum tokens for the response
	Temperature float64 `json:"temperature,omitempty"` // creativity level (0.0 - 1.0)
	Prompt      string  `json:"prompt,omitempty"`      // custom system prompt
}

// Result contains the polished markdown and usage accounting.
type Result struct {
	Markdown string     `json:"markdown"`
	Usage    TokenUsage `json:"usage"`
	Model    string     `json:"model"`
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// DefaultOptions returns the default polish options.
func DefaultOptions() Options {
	return Options{
		Language:    "ko",
		MaxTokens:   4096,
		Temperature: 0.3,
	}
}

// Build constructs a named provider from its configuration values.
func Build(name, apiKey, model, endpoint string) (Provider, error) {
	switch name {
	case "anthropic":
		return NewAnthropic(apiKey, model), nil
	case "openai":
		return NewOpenAI(apiKey, model), nil
	case "gemini":
		return NewGemini(apiKey, model), nil
	case "ollama":
		return NewOllama(endpoint, model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}

// systemPrompt builds the instruction shared by every backend.
func systemPrompt(opts Options) string {
	if opts.Prompt != "" {
		return opts.Prompt
	}
	lang := opts.Language
	if lang == "" {
		lang = "ko"
	}
	return fmt.Sprintf(`당신은 HWP 문서에서 추출한 마크다운을 다듬는 편집자입니다.
- 제목 계층과 목록, 표를 올바른 마크다운 문법으로 정리하세요.
- 내용을 추가하거나 삭제하지 말고 구조만 고치세요.
- 마크다운 본문만 출력하세요. 출력 언어: %s`, lang)
}
