package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/pkg/errors"

	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/logging"
)

// Provider 文本生成服务
type Provider interface {
	// Name 作为解释来源返回给调用方
	Name() string
	// Available 检查服务是否可用，不可用时返回原因
	Available(ctx context.Context) error
	// Generate 根据提示词生成回答，maxTokens 为最大生成 token 数
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

var (
	// ErrUnavailable Provider 未配置或无法访问
	ErrUnavailable = errors.New("provider unavailable")
	// ErrEmptyResponse Provider 返回了空回答
	ErrEmptyResponse = errors.New("empty response")
)

// NewProviders 按配置顺序创建 Provider，未知名称会被忽略
func NewProviders(cfg envs.AIConfig) []Provider {
	providers := []Provider{}
	for _, name := range cfg.Providers {
		switch name {
		case SourceOllama:
			providers = append(providers, NewOllama(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.OllamaTimeout))
		case SourceGemini:
			providers = append(providers, NewGemini(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout))
		default:
			logging.GetAILogger().Warnf("unknown ai provider %q, skip", name)
		}
	}
	return providers
}

// 发送 JSON 请求并解析 JSON 响应，非 2xx 时返回包含响应体片段的错误
func doJSON(ctx context.Context, client *http.Client, method, url string, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	for key, values := range header {
		req.Header[key] = values
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, req.URL.Path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf(
			"%s %s: status %d: %s", method, req.URL.Path, resp.StatusCode, stringx.Truncate(string(respBody), 256),
		)
	}
	if out == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(respBody, out), "unmarshal response body")
}
