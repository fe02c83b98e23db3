// Package logging はslogのデフォルトロガーを初期化します。
// LOG_FILE が指定された場合はlumberjackでローテーションしながらファイルへ出力します。
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"pricecheck_backend/internal/platform/config"
)

// Config はロガーの設定値です。
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // text または json
	FilePath   string // 空の場合は標準エラー出力のみ
	MaxSizeMB  int    // ローテーションするファイルサイズ（MB）
	MaxBackups int    // 保持する旧ファイル数
	MaxAgeDays int    // 旧ファイルの保持日数
	Compress   bool   // ローテーション済みファイルを圧縮するか
}

// LoadConfig は環境変数からロガー設定を読み込みます。
func LoadConfig() Config {
	return Config{
		Level:      config.String("LOG_LEVEL", "info"),
		Format:     config.String("LOG_FORMAT", "text"),
		FilePath:   config.String("LOG_FILE", ""),
		MaxSizeMB:  config.Int("LOG_MAX_SIZE_MB", 100),
		MaxBackups: config.Int("LOG_MAX_BACKUPS", 3),
		MaxAgeDays: config.Int("LOG_MAX_AGE_DAYS", 28),
		Compress:   config.Bool("LOG_COMPRESS", true),
	}
}

// Setup はデフォルトのslogロガーを設定し、終了時に呼ぶクリーンアップ関数を返します。
func Setup(cfg Config) (func() error, error) {
	writer, cleanup, err := newWriter(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(newHandler(writer, cfg)))
	return cleanup, nil
}

func newWriter(cfg Config) (io.Writer, func() error, error) {
	if cfg.FilePath == "" {
		return os.Stderr, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, nil, err
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
	// ファイルとコンソールの両方に出す
	return io.MultiWriter(os.Stderr, lj), lj.Close, nil
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
