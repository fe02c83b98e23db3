package di

import (
	"context"

	"pricecheck_backend/internal/feature/pricing/adapters/shopping"
	pricehandler "pricecheck_backend/internal/feature/pricing/transport/handler"
	"pricecheck_backend/internal/feature/pricing/usecase"
	infrahttp "pricecheck_backend/internal/platform/http"
)

// NewPriceSources は価格ソースをフォールバック順（Googleショッピング → Amazon）に生成します。
// ソースを追加する場合はこのリストに追加するだけでよい。
func NewPriceSources(cfg shopping.Config) []usecase.PriceSource {
	// 各ソースはリクエストごとのタイムアウトを持つため、クライアントには長い方を設定する
	client := infrahttp.NewHTTPClient(max(cfg.GoogleTimeout, cfg.AmazonTimeout))
	return []usecase.PriceSource{
		shopping.NewGoogleShopping(cfg, client),
		shopping.NewAmazon(cfg, client),
	}
}

// NewSearchUsecase は環境変数の設定から検索パイプライン全体を組み立てます。
func NewSearchUsecase(ctx context.Context) (pricehandler.SearchUsecase, func(), error) {
	detectors, cleanup, err := NewLabelDetectors(ctx)
	if err != nil {
		return nil, nil, err
	}
	uc := usecase.NewSearchUsecase(
		NewItemIdentifier(detectors...),
		NewPriceSources(shopping.LoadConfig())...,
	)
	return uc, cleanup, nil
}
