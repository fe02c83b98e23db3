// Package dto はpricingフィーチャーのHTTPリクエスト/レスポンスDTOを定義します。
// フィールド名とJSONキーは既存クライアントとの互換性のため変更しないこと。
package dto

// ScanRequest は POST /api/scan のリクエストDTOです。
type ScanRequest struct {
	Image    string `json:"image"`     // data URL 形式またはbase64文字列
	ItemName string `json:"item_name"` // 指定時は画像より優先
}

// SearchRequest は POST /api/search のリクエストDTOです。
type SearchRequest struct {
	ItemName string `json:"item_name"`
}

// PriceInfo は価格サマリーのレスポンスDTOです。
type PriceInfo struct {
	AveragePrice float64   `json:"average_price"`
	MinPrice     float64   `json:"min_price"`
	MaxPrice     float64   `json:"max_price"`
	PriceCount   int       `json:"price_count"`
	Prices       []float64 `json:"prices"`
}

// PriceResponse は価格検索結果のレスポンスDTOです。
// 価格が見つからなかった場合 PriceInfo は null として出力されます。
type PriceResponse struct {
	ItemName  string     `json:"item_name"`
	PriceInfo *PriceInfo `json:"price_info"`
	Status    string     `json:"status"`
	Message   string     `json:"message,omitempty"`
}

// RecognitionFailedResponse は画像から商品を特定できなかった場合のレスポンスDTOです。
type RecognitionFailedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
