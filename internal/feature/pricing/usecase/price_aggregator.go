package usecase

import (
	"math"

	"pricecheck_backend/internal/feature/pricing/domain/entity"
)

const (
	// MaxSampleSize はサマリーに含める価格サンプルの最大件数です。
	MaxSampleSize = 10
	// MinSamplesForTrim は外れ値除去を行う最小サンプル数です。
	MinSamplesForTrim = 3
	// TrimLower / TrimUpper は統計に使う範囲（10〜90パーセンタイル）です。
	TrimLower = 0.1
	TrimUpper = 0.9
)

// AggregatePrices は価格サンプルの集合を集計します。サンプルが空の場合はnilを返します。
//
// サンプルが3件以上ある場合は昇順に並べた S の S[floor(0.1n):floor(0.9n)] だけで
// 平均・最小・最大を計算します。Count と Sample は除去前の S から作ります。
func AggregatePrices(samples entity.PriceSet) *entity.PriceSummary {
	if len(samples) == 0 {
		return nil
	}

	s := samples.Sorted()
	w := trimmedWindow(s)

	var sum float64
	for _, v := range w {
		sum += v
	}

	sample := make([]float64, min(len(s), MaxSampleSize))
	copy(sample, s)

	return &entity.PriceSummary{
		Average: round2(sum / float64(len(w))),
		Min:     round2(w[0]),
		Max:     round2(w[len(w)-1]),
		Count:   len(s),
		Sample:  sample,
	}
}

// trimmedWindow は昇順スライスから外れ値を除いた範囲を返します。
func trimmedWindow(s []float64) []float64 {
	n := len(s)
	if n < MinSamplesForTrim {
		return s
	}
	start := int(math.Floor(float64(n) * TrimLower))
	end := int(math.Floor(float64(n) * TrimUpper))
	if end <= start {
		return s
	}
	return s[start:end]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
