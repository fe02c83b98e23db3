package gemini

import (
	"time"

	"pricecheck_backend/internal/platform/config"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// DefaultTimeout はGemini API呼び出しのタイムアウトです。
	DefaultTimeout = 10 * time.Second
)

// Config はGeminiクライアントの設定です。
type Config struct {
	APIKey      string        // GEMINI_API_KEY（Gemini Developer API）
	UseVertexAI bool          // GOOGLE_GENAI_USE_VERTEXAI。GOOGLE_CLOUD_PROJECT / GOOGLE_CLOUD_LOCATION とADCを使用
	Model       string        // GEMINI_MODEL
	Timeout     time.Duration // GEMINI_TIMEOUT
}

// LoadConfig は環境変数からGeminiの設定を読み込みます。
func LoadConfig() Config {
	return Config{
		APIKey:      config.String("GEMINI_API_KEY", ""),
		UseVertexAI: config.Bool("GOOGLE_GENAI_USE_VERTEXAI", false),
		Model:       config.String("GEMINI_MODEL", DefaultModel),
		Timeout:     config.Duration("GEMINI_TIMEOUT", DefaultTimeout),
	}
}

// Enabled は認証情報が設定されているかを返します。
func (c Config) Enabled() bool {
	return c.APIKey != "" || c.UseVertexAI
}
