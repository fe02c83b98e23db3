// Package usecase は商品名の解決から価格サマリーの作成までのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	identifyentity "pricecheck_backend/internal/feature/identify/domain/entity"
	"pricecheck_backend/internal/feature/pricing/domain"
	"pricecheck_backend/internal/feature/pricing/domain/entity"
)

// ItemIdentifier は画像ペイロードから商品名を特定するインターフェースです。
type ItemIdentifier interface {
	IdentifyPayload(ctx context.Context, payload string) identifyentity.Outcome
}

// PriceSource は商品名で検索したページの生テキストを返す価格ソースです。
// 取得に失敗した場合は ok=false を返し、エラーは呼び出し元へ伝播しません。
type PriceSource interface {
	Name() string
	FetchPriceText(ctx context.Context, query string) (text string, ok bool)
}

// ScanRequest は画像または商品名による検索リクエストです。
// 両方が指定された場合は ItemName を優先します。
type ScanRequest struct {
	Image    string
	ItemName string
}

// searchUsecase は価格ソースを登録順に試し、最初にサマリーが得られた時点で終了します。
type searchUsecase struct {
	identifier ItemIdentifier
	sources    []PriceSource
}

// NewSearchUsecase はsearchUsecaseの新しいインスタンスを生成します。
// sources の順序がフォールバックの順序になります。
func NewSearchUsecase(identifier ItemIdentifier, sources ...PriceSource) *searchUsecase {
	ss := make([]PriceSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			ss = append(ss, s)
		}
	}
	return &searchUsecase{identifier: identifier, sources: ss}
}

// Scan は画像または商品名から価格サマリーを作成します。
func (u *searchUsecase) Scan(ctx context.Context, req ScanRequest) (out entity.SearchOutcome) {
	defer recoverInternal(&out)

	if req.ItemName != "" {
		return u.search(ctx, req.ItemName)
	}
	if req.Image == "" {
		return invalid(domain.MsgNoImageOrItemName)
	}
	if u.identifier == nil {
		return entity.SearchOutcome{Status: entity.StatusRecognitionFailed}
	}

	res := u.identifier.IdentifyPayload(ctx, req.Image)
	switch res.Kind {
	case identifyentity.OutcomeIdentified:
		slog.Info("item identified from image", "item", res.Name, "confidence", res.Detection.Confidence)
		return u.search(ctx, res.Name)
	case identifyentity.OutcomeFailed:
		return internalError(res.Err)
	default:
		return entity.SearchOutcome{Status: entity.StatusRecognitionFailed}
	}
}

// Search は商品名から価格サマリーを作成します。
func (u *searchUsecase) Search(ctx context.Context, itemName string) (out entity.SearchOutcome) {
	defer recoverInternal(&out)

	if itemName == "" {
		return invalid(domain.MsgNoItemName)
	}
	return u.search(ctx, itemName)
}

func (u *searchUsecase) search(ctx context.Context, itemName string) entity.SearchOutcome {
	query := strings.TrimSpace(itemName)
	for _, src := range u.sources {
		text, ok := src.FetchPriceText(ctx, query)
		if !ok {
			continue
		}
		summary := AggregatePrices(ExtractPrices(text))
		if summary == nil {
			slog.Info("no prices extracted", "source", src.Name(), "item", itemName)
			continue
		}
		return entity.SearchOutcome{
			Status:   entity.StatusSuccess,
			ItemName: itemName,
			Summary:  summary,
			Source:   src.Name(),
		}
	}
	return entity.SearchOutcome{Status: entity.StatusNoPricesFound, ItemName: itemName}
}

func invalid(reason string) entity.SearchOutcome {
	return entity.SearchOutcome{Status: entity.StatusInvalidRequest, Reason: reason}
}

func internalError(err error) entity.SearchOutcome {
	slog.Error("search pipeline failed", "error", err)
	return entity.SearchOutcome{Status: entity.StatusInternalError, Reason: err.Error()}
}

// recoverInternal はパイプライン内のpanicを InternalError に変換します。
func recoverInternal(out *entity.SearchOutcome) {
	if r := recover(); r != nil {
		*out = internalError(fmt.Errorf("%v", r))
	}
}
