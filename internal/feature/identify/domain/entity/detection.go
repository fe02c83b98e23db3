// Package entity はidentifyフィーチャーのドメインモデルを定義します。
package entity

// Annotation はラベル検出プロバイダーが返す1件の注釈です。
type Annotation struct {
	Name  string  // 物体名またはラベル名
	Score float32 // 信頼度スコア（0.0 ~ 1.0）
}

// Annotations はプロバイダーが返す2種類のランク付きリストです。
// どちらもプロバイダーが返した順（信頼度の高い順）に並んでいます。
type Annotations struct {
	Objects []Annotation // 物体検出（localized objects）
	Labels  []Annotation // ラベル検出
}

// DetectionResult は1回の認識試行の結果です。
// RequiresManualInput は Labels が空の場合に限りtrueになります。
type DetectionResult struct {
	Labels              []string
	Confidence          float64
	RequiresManualInput bool
}

// NewDetectionResult は不変条件を満たすDetectionResultを生成します。
func NewDetectionResult(labels []string, confidence float64) DetectionResult {
	if len(labels) == 0 {
		return DetectionResult{Labels: []string{}, Confidence: 0, RequiresManualInput: true}
	}
	return DetectionResult{Labels: labels, Confidence: confidence}
}
