package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	geminiProbeTimeout = 5 * time.Second
	geminiAPIKeyHeader = "x-goog-api-key"
)

// Gemini Google Gemini（REST generateContent 接口）
type Gemini struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewGemini ...
func NewGemini(baseURL, apiKey, model string, timeout time.Duration) *Gemini {
	return &Gemini{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerateRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Name ...
func (g *Gemini) Name() string {
	return SourceGemini
}

func (g *Gemini) header() http.Header {
	return http.Header{http.CanonicalHeaderKey(geminiAPIKeyHeader): []string{g.apiKey}}
}

func (g *Gemini) modelURL() string {
	return fmt.Sprintf("%s/models/%s", g.baseURL, strings.TrimPrefix(g.model, "models/"))
}

// Available 未配置 API Key 时不可用，否则查询模型信息确认 Key 与模型有效
func (g *Gemini) Available(ctx context.Context) error {
	if g.apiKey == "" {
		return errors.WithMessage(ErrUnavailable, "gemini api key not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, geminiProbeTimeout)
	defer cancel()

	if err := doJSON(ctx, g.client, http.MethodGet, g.modelURL(), g.header(), nil, nil); err != nil {
		return errors.WithMessage(ErrUnavailable, err.Error())
	}
	return nil
}

// Generate 调用 models/{model}:generateContent
func (g *Gemini) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body := geminiGenerateRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	body.GenerationConfig.Temperature = 0.7
	body.GenerationConfig.MaxOutputTokens = maxTokens

	var resp geminiGenerateResponse
	if err := doJSON(ctx, g.client, http.MethodPost, g.modelURL()+":generateContent", g.header(), body, &resp); err != nil {
		return "", errors.Wrap(err, "gemini generate")
	}
	// 被安全策略拦截
	if resp.PromptFeedback.BlockReason != "" {
		return "", errors.Errorf("gemini blocked prompt: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
