package vision

import (
	"time"

	"pricecheck_backend/internal/platform/config"
)

const (
	// DefaultTimeout はVision API呼び出しのタイムアウトです。
	DefaultTimeout = 10 * time.Second
	// DefaultMaxResults は各検出機能で要求する最大件数です。
	DefaultMaxResults = 10
)

// Config はVision APIクライアントの設定です。
type Config struct {
	APIKey     string        // GOOGLE_VISION_API_KEY。空かつUseADCがfalseなら無効
	UseADC     bool          // GOOGLE_VISION_USE_ADC。Application Default Credentialsで認証する
	Timeout    time.Duration // 1回の呼び出しの上限時間
	MaxResults int32         // LABEL_DETECTION / OBJECT_LOCALIZATION の maxResults
}

// LoadConfig は環境変数からVision APIの設定を読み込みます。
func LoadConfig() Config {
	return Config{
		APIKey:     config.String("GOOGLE_VISION_API_KEY", ""),
		UseADC:     config.Bool("GOOGLE_VISION_USE_ADC", false),
		Timeout:    config.Duration("VISION_TIMEOUT", DefaultTimeout),
		MaxResults: int32(config.Int("VISION_MAX_RESULTS", DefaultMaxResults)),
	}
}

// Enabled は認証情報が設定されているかを返します。
func (c Config) Enabled() bool {
	return c.APIKey != "" || c.UseADC
}
