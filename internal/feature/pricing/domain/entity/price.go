// Package entity はpricingフィーチャーのドメインモデルを定義します。
package entity

import "sort"

const (
	// MinPrice は価格サンプルとして採用する値の下限（この値を含まない）です。
	MinPrice = 0.01
	// MaxPrice は価格サンプルとして採用する値の上限（この値を含まない）です。
	MaxPrice = 1_000_000
)

// ValidPrice はvが価格サンプルの範囲 (0.01, 1000000) に収まるかを返します。
func ValidPrice(v float64) bool {
	return v > MinPrice && v < MaxPrice
}

// PriceSet は重複のない価格サンプルの集合です。通貨記号は保持しません。
type PriceSet map[float64]struct{}

// Add は範囲内の値のみを集合に追加し、追加したかどうかを返します。
func (s PriceSet) Add(v float64) bool {
	if !ValidPrice(v) {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Union はotherの要素をsに加えます。
func (s PriceSet) Union(other PriceSet) PriceSet {
	for v := range other {
		s[v] = struct{}{}
	}
	return s
}

// Sorted は集合を昇順のスライスとして返します。
func (s PriceSet) Sorted() []float64 {
	out := make([]float64, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// PriceSummary は価格サンプルの集計結果です。
// Average/Min/Max は外れ値除去後の値、Count と Sample は除去前の値です。
type PriceSummary struct {
	Average float64   // 平均価格（小数第2位で丸め）
	Min     float64   // 最小価格（小数第2位で丸め）
	Max     float64   // 最大価格（小数第2位で丸め）
	Count   int       // 除去前のサンプル総数
	Sample  []float64 // 昇順・重複なしの先頭最大10件
}
