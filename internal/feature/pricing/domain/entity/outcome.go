package entity

// Status は検索パイプライン1回分の結果種別です。
type Status int

const (
	// StatusSuccess は価格が見つかったことを示します。
	StatusSuccess Status = iota
	// StatusNoPricesFound はどの価格ソースからも価格が得られなかったことを示します。
	StatusNoPricesFound
	// StatusRecognitionFailed は画像から商品を特定できず、手動入力が必要なことを示します。
	StatusRecognitionFailed
	// StatusInvalidRequest は必須の入力が欠けていることを示します。
	StatusInvalidRequest
	// StatusInternalError はそれ以外の失敗を示します。
	StatusInternalError
)

// String はログ出力用の名前を返します。
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNoPricesFound:
		return "no_prices_found"
	case StatusRecognitionFailed:
		return "recognition_failed"
	case StatusInvalidRequest:
		return "invalid_request"
	default:
		return "internal_error"
	}
}

// SearchOutcome は検索パイプラインの唯一の外部から観測できる結果です。
type SearchOutcome struct {
	Status   Status
	ItemName string        // Success / NoPricesFound のとき設定
	Summary  *PriceSummary // Success のときのみ設定
	Source   string        // 価格を取得できたソース名
	Reason   string        // InvalidRequest / InternalError のとき設定
}
