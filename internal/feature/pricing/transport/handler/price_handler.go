// Package handler はpricingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricecheck_backend/internal/feature/pricing/domain"
	"pricecheck_backend/internal/feature/pricing/domain/entity"
	"pricecheck_backend/internal/feature/pricing/transport/http/dto"
	"pricecheck_backend/internal/feature/pricing/usecase"
)

// SearchUsecase は価格検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SearchUsecase interface {
	Scan(ctx context.Context, req usecase.ScanRequest) entity.SearchOutcome
	Search(ctx context.Context, itemName string) entity.SearchOutcome
}

// PriceHandler は価格検索のHTTPリクエストを処理します。
type PriceHandler struct {
	uc SearchUsecase
}

// NewPriceHandler はPriceHandlerの新しいインスタンスを生成します。
func NewPriceHandler(uc SearchUsecase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// Scan は画像または商品名から価格サマリーを返します。
//
// エンドポイント: POST /api/scan
// リクエスト: {"image": "data:image/jpeg;base64,...", "item_name": "..."}
// 不正なJSONはフィールド未指定として扱います。
func (h *PriceHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("scan request bind failed", "error", err, "remote_addr", c.ClientIP())
		req = dto.ScanRequest{}
	}

	out := h.uc.Scan(c.Request.Context(), usecase.ScanRequest{
		Image:    req.Image,
		ItemName: req.ItemName,
	})
	logOutcome("scan", c, out)

	switch out.Status {
	case entity.StatusRecognitionFailed:
		c.JSON(http.StatusOK, dto.RecognitionFailedResponse{
			Status:  out.Status.String(),
			Message: domain.MsgRecognitionFailed,
		})
	case entity.StatusNoPricesFound:
		c.JSON(http.StatusOK, dto.PriceResponse{
			ItemName: out.ItemName,
			Status:   out.Status.String(),
			Message:  domain.MsgNoPricesFound,
		})
	default:
		writeOutcome(c, out)
	}
}

// Search は商品名から価格サマリーを返します。
//
// エンドポイント: POST /api/search
// リクエスト: {"item_name": "..."}
func (h *PriceHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("search request bind failed", "error", err, "remote_addr", c.ClientIP())
		req = dto.SearchRequest{}
	}

	out := h.uc.Search(c.Request.Context(), req.ItemName)
	logOutcome("search", c, out)

	if out.Status == entity.StatusNoPricesFound {
		c.JSON(http.StatusOK, dto.PriceResponse{
			ItemName: out.ItemName,
			Status:   out.Status.String(),
		})
		return
	}
	writeOutcome(c, out)
}

// writeOutcome は両エンドポイントで共通の結果（成功・入力不備・内部エラー）を書き込みます。
func writeOutcome(c *gin.Context, out entity.SearchOutcome) {
	switch out.Status {
	case entity.StatusSuccess:
		c.JSON(http.StatusOK, dto.PriceResponse{
			ItemName:  out.ItemName,
			PriceInfo: ToPriceInfo(out.Summary),
			Status:    out.Status.String(),
		})
	case entity.StatusInvalidRequest:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: out.Reason})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: out.Reason})
	}
}

// ToPriceInfo はドメインの価格サマリーをレスポンスDTOに変換します。
func ToPriceInfo(s *entity.PriceSummary) *dto.PriceInfo {
	if s == nil {
		return nil
	}
	prices := make([]float64, len(s.Sample))
	copy(prices, s.Sample)
	return &dto.PriceInfo{
		AveragePrice: s.Average,
		MinPrice:     s.Min,
		MaxPrice:     s.Max,
		PriceCount:   s.Count,
		Prices:       prices,
	}
}

func logOutcome(op string, c *gin.Context, out entity.SearchOutcome) {
	slog.Info("price lookup finished",
		"op", op,
		"status", out.Status.String(),
		"item", out.ItemName,
		"source", out.Source,
		"remote_addr", c.ClientIP(),
	)
}
