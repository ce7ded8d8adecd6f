package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OllamaProvider polishes markdown with a local Ollama server.
type OllamaProvider struct {
	endpoint string
	model    string
	httpc    *http.Client
}

// NewOllama creates an Ollama provider. An empty endpoint falls back to the
// local default server.
func NewOllama(endpoint, model string) *OllamaProvider {
	if endpoint == "" {
		endpoint = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &OllamaProvider{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		// 로컬 모델 추론은 느릴 수 있어 넉넉하게 잡는다.
		httpc: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Name implements Provider.
func (p *OllamaProvider) Name() string { return "ollama" }

// Validate implements Provider.
func (p *OllamaProvider) Validate() error {
	if p.endpoint == "" {
		return fmt.Errorf("ollama: 엔드포인트가 설정되지 않았습니다")
	}
	return nil
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  map[string]any  `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message         ollamaMessage `json:"message"`
	PromptEvalCount int           `json:"prompt_eval_count"`
	EvalCount       int           `json:"eval_count"`
}

// Polish implements Provider.
func (p *OllamaProvider) Polish(ctx context.Context, markdown string, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	modelOpts := map[string]any{
		"temperature": opts.Temperature,
	}
	if opts.MaxTokens > 0 {
		modelOpts["num_predict"] = opts.MaxTokens
	}

	payload, err := json.Marshal(ollamaChatRequest{
		Model: model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt(opts)},
			{Role: "user", Content: markdown},
		},
		Stream:  false,
		Options: modelOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama 요청 직렬화 실패: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ollama 응답 오류 (status %d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ollama 응답 해석 실패: %w", err)
	}

	return &Result{
		Markdown: out.Message.Content,
		Usage: TokenUsage{
			InputTokens:  out.PromptEvalCount,
			OutputTokens: out.EvalCount,
			TotalTokens:  out.PromptEvalCount + out.EvalCount,
		},
		Model: model,
	}, nil
}
