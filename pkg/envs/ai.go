package envs

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// AIConfig AI Provider 配置
type AIConfig struct {
	// Providers 按顺序尝试的 Provider，本地模板始终作为兜底
	Providers []string `env:"AI_PROVIDERS" envDefault:"ollama,gemini" envSeparator:","`
	// AvailabilityTTL Provider 可用性检查结果缓存时长
	AvailabilityTTL time.Duration `env:"AI_AVAILABILITY_TTL" envDefault:"60s"`

	OllamaBaseURL string        `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaModel   string        `env:"OLLAMA_MODEL" envDefault:"llama3.2:latest"`
	OllamaTimeout time.Duration `env:"OLLAMA_TIMEOUT" envDefault:"120s"`

	GeminiBaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`
}

// TracingConfig 链路追踪配置，未配置 endpoint 时不启用
type TracingConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint    string `env:"OTEL_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"chemreact"`
}

// LoadAIConfig 从环境变量中加载 AI 配置
func LoadAIConfig() (AIConfig, error) {
	cfg, err := env.ParseAs[AIConfig]()
	if err != nil {
		return cfg, errors.Wrap(err, "parse ai config")
	}
	return cfg, nil
}

// LoadTracingConfig 从环境变量中加载链路追踪配置
func LoadTracingConfig() (TracingConfig, error) {
	cfg, err := env.ParseAs[TracingConfig]()
	if err != nil {
		return cfg, errors.Wrap(err, "parse tracing config")
	}
	return cfg, nil
}
