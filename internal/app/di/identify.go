// Package di はアプリケーションのコンポーネントを組み立てるファクトリーを提供します。
package di

import (
	"context"
	"fmt"
	"log/slog"

	"pricecheck_backend/internal/feature/identify/adapters/gemini"
	"pricecheck_backend/internal/feature/identify/adapters/vision"
	identifyusecase "pricecheck_backend/internal/feature/identify/usecase"
	pricingusecase "pricecheck_backend/internal/feature/pricing/usecase"
	"pricecheck_backend/internal/platform/config"
)

// NewLabelDetectors は認証情報が設定されているプロバイダーを優先順（Vision → Gemini）に生成します。
// 返されるクリーンアップ関数でクライアントを解放します。
func NewLabelDetectors(ctx context.Context) ([]identifyusecase.LabelDetector, func(), error) {
	var (
		detectors []identifyusecase.LabelDetector
		closers   []func() error
	)
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				slog.Warn("failed to close label detector", "error", err)
			}
		}
	}

	if vcfg := vision.LoadConfig(); vcfg.Enabled() {
		v, err := vision.NewVisionLabelDetector(ctx, vcfg)
		if err != nil {
			return nil, nil, fmt.Errorf("vision detector: %w", err)
		}
		detectors = append(detectors, v)
		closers = append(closers, v.Close)
	}

	if gcfg := gemini.LoadConfig(); gcfg.Enabled() {
		g, err := gemini.NewGeminiLabelDetector(ctx, gcfg)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("gemini detector: %w", err)
		}
		detectors = append(detectors, g)
	}

	if len(detectors) == 0 {
		slog.Warn("no label detection credential configured; image scans will require manual input")
	}
	for _, d := range detectors {
		slog.Info("label detector enabled", "provider", d.Name())
	}
	return detectors, cleanup, nil
}

// NewItemIdentifier は画像から商品名を特定するItemIdentifierを生成します。
func NewItemIdentifier(detectors ...identifyusecase.LabelDetector) pricingusecase.ItemIdentifier {
	maxBytes := config.Int("MAX_IMAGE_BYTES", identifyusecase.MaxImageSize)
	return identifyusecase.NewIdentifyUsecase(maxBytes, detectors...)
}
