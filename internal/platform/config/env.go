// Package config は環境変数から設定値を読み込むためのヘルパーを提供します。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// String は環境変数の値を返します。未設定または空の場合はdefを返します。
func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Int は環境変数を整数として読み込みます。パースに失敗した場合はdefを返します。
func Int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// Bool は環境変数を真偽値として読み込みます。
// "1", "true", "yes", "on" をtrue、"0", "false", "no", "off" をfalseとして扱います。
func Bool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

// Duration は環境変数を time.ParseDuration 形式（例: "10s"）で読み込みます。
// 単位なしの数値はミリ秒として解釈します。
func Duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var d time.Duration
	ms, err := strconv.Atoi(v)
	if err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else {
		d, err = time.ParseDuration(v)
	}
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// List はカンマ区切りの環境変数をスライスとして返します。空要素は除外します。
func List(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
