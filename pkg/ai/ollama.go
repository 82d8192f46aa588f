package ai

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// 可用性检查超时时间
const ollamaProbeTimeout = 3 * time.Second

// Ollama 本地运行的 Ollama 服务
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllama ...
func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	return &Ollama{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Name ...
func (o *Ollama) Name() string {
	return SourceOllama
}

// Available 通过 /api/tags 检查服务是否可访问
func (o *Ollama) Available(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ollamaProbeTimeout)
	defer cancel()

	var tags ollamaTagsResponse
	if err := doJSON(ctx, o.client, http.MethodGet, o.baseURL+"/api/tags", nil, nil, &tags); err != nil {
		return errors.WithMessage(ErrUnavailable, err.Error())
	}
	return nil
}

// Generate 调用 /api/generate（非流式）
func (o *Ollama) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body := ollamaGenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
		Options: map[string]any{
			"temperature": 0.7,
			"top_p":       0.9,
			"num_predict": maxTokens,
			"num_ctx":     2048,
		},
	}
	var resp ollamaGenerateResponse
	if err := doJSON(ctx, o.client, http.MethodPost, o.baseURL+"/api/generate", nil, body, &resp); err != nil {
		return "", errors.Wrap(err, "ollama generate")
	}
	if strings.TrimSpace(resp.Response) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Response, nil
}
