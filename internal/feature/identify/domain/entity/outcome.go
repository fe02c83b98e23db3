package entity

// OutcomeKind は商品特定の結果種別です。
type OutcomeKind int

const (
	// OutcomeManualInputRequired は自動認識できず、利用者による商品名入力が必要なことを示します。
	OutcomeManualInputRequired OutcomeKind = iota
	// OutcomeIdentified は商品名が特定できたことを示します。
	OutcomeIdentified
	// OutcomeFailed は画像ペイロードの解析に失敗したことを示します。
	OutcomeFailed
)

// String はログ出力用の名前を返します。
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIdentified:
		return "identified"
	case OutcomeFailed:
		return "failed"
	default:
		return "manual_input_required"
	}
}

// Outcome は ItemIdentifier の結果です。
type Outcome struct {
	Kind      OutcomeKind
	Name      string          // Kind == OutcomeIdentified のときのみ設定
	Detection DetectionResult // 判定の根拠となった検出結果
	Err       error           // Kind == OutcomeFailed のときのみ設定
}

// Identified は商品名が特定できた結果を生成します。
func Identified(d DetectionResult) Outcome {
	return Outcome{Kind: OutcomeIdentified, Name: d.Labels[0], Detection: d}
}

// ManualInputRequired は手動入力が必要な結果を生成します。
func ManualInputRequired() Outcome {
	return Outcome{Kind: OutcomeManualInputRequired, Detection: NewDetectionResult(nil, 0)}
}

// Failed は失敗結果を生成します。
func Failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err, Detection: NewDetectionResult(nil, 0)}
}
