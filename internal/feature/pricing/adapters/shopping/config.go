// Package shopping はショッピング検索ページから生のHTMLを取得する価格ソースを提供します。
package shopping

import (
	"time"

	"pricecheck_backend/internal/platform/config"
)

const (
	// DefaultUserAgent は一般的なデスクトップChromeのUser-Agentです。
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	// DefaultAcceptLanguage はリクエストに付与するAccept-Languageです。
	DefaultAcceptLanguage = "en-US,en;q=0.5"
	// DefaultMaxResponseBytes は読み込むレスポンスボディの上限（5MB）です。
	DefaultMaxResponseBytes = 5 * 1024 * 1024
)

// Config は価格ソースの設定です。
type Config struct {
	GoogleShoppingURL string        // GOOGLE_SHOPPING_URL
	GoogleTimeout     time.Duration // GOOGLE_SHOPPING_TIMEOUT
	AmazonSearchURL   string        // AMAZON_SEARCH_URL
	AmazonTimeout     time.Duration // AMAZON_SEARCH_TIMEOUT
	UserAgent         string        // SCRAPER_USER_AGENT
	AcceptLanguage    string        // SCRAPER_ACCEPT_LANGUAGE
	MaxResponseBytes  int64         // MAX_RESPONSE_BYTES
}

// LoadConfig は環境変数から価格ソースの設定を読み込みます。
func LoadConfig() Config {
	return Config{
		GoogleShoppingURL: config.String("GOOGLE_SHOPPING_URL", "https://www.google.com/search"),
		GoogleTimeout:     config.Duration("GOOGLE_SHOPPING_TIMEOUT", 15*time.Second),
		AmazonSearchURL:   config.String("AMAZON_SEARCH_URL", "https://www.amazon.com/s"),
		AmazonTimeout:     config.Duration("AMAZON_SEARCH_TIMEOUT", 10*time.Second),
		UserAgent:         config.String("SCRAPER_USER_AGENT", DefaultUserAgent),
		AcceptLanguage:    config.String("SCRAPER_ACCEPT_LANGUAGE", DefaultAcceptLanguage),
		MaxResponseBytes:  int64(config.Int("MAX_RESPONSE_BYTES", DefaultMaxResponseBytes)),
	}
}
