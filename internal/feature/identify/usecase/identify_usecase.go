// Package usecase は画像から商品名を特定するビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"

	"pricecheck_backend/internal/feature/identify/domain/entity"
)

const (
	// MaxObjectCandidates は候補に採用する物体検出の最大件数です。
	MaxObjectCandidates = 3
	// MaxLabelCandidates は候補として評価するラベルの最大件数です。
	MaxLabelCandidates = 5
	// LabelScoreThreshold はラベルを候補に採用するスコアの下限（この値を含まない）です。
	LabelScoreThreshold = 0.7
	// MaxCandidates は重複排除後に保持する候補の最大件数です。
	MaxCandidates = 3
	// IdentifiedConfidence は候補が得られたときに報告する信頼度です。
	IdentifiedConfidence = 0.9
)

// LabelDetector は画像から物体・ラベルを検出する外部プロバイダーのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LabelDetector interface {
	// Name はログ出力用のプロバイダー名を返します。
	Name() string
	// DetectLabels は画像バイト列から物体とラベルのランク付きリストを返します。
	DetectLabels(ctx context.Context, imageData []byte, mimeType string) (*entity.Annotations, error)
}

// identifyUsecase は登録順にプロバイダーを試し、最初に候補が得られた結果を採用します。
type identifyUsecase struct {
	detectors     []LabelDetector
	maxImageBytes int
}

// NewIdentifyUsecase はidentifyUsecaseの新しいインスタンスを生成します。
// detectors が空の場合、画像からの特定は常に手動入力要求になります。
func NewIdentifyUsecase(maxImageBytes int, detectors ...LabelDetector) *identifyUsecase {
	ds := make([]LabelDetector, 0, len(detectors))
	for _, d := range detectors {
		if d != nil {
			ds = append(ds, d)
		}
	}
	return &identifyUsecase{detectors: ds, maxImageBytes: maxImageBytes}
}

// IdentifyPayload はトランスポート形式の画像文字列をデコードしてから商品名を特定します。
// デコードに失敗した場合は entity.OutcomeFailed を返します。
func (u *identifyUsecase) IdentifyPayload(ctx context.Context, payload string) entity.Outcome {
	img, err := DecodeImagePayload(payload, u.maxImageBytes)
	if err != nil {
		slog.Warn("image payload decode failed", "error", err)
		return entity.Failed(err)
	}
	return u.Identify(ctx, img)
}

// Identify はデコード済み画像から商品名を特定します。
func (u *identifyUsecase) Identify(ctx context.Context, img *Image) entity.Outcome {
	d := u.Detect(ctx, img)
	if d.RequiresManualInput {
		return entity.ManualInputRequired()
	}
	return entity.Identified(d)
}

// Detect はプロバイダーを順に呼び出し、最初に空でない候補リストが得られた時点で返します。
// プロバイダーのエラーはログに記録して次のプロバイダーへ進みます。
func (u *identifyUsecase) Detect(ctx context.Context, img *Image) entity.DetectionResult {
	for _, d := range u.detectors {
		ann, err := d.DetectLabels(ctx, img.Data, img.MIMEType)
		if err != nil {
			slog.Warn("label detection failed", "provider", d.Name(), "error", err)
			continue
		}
		candidates := BuildCandidates(ann)
		if len(candidates) == 0 {
			slog.Info("label detection returned no usable candidates", "provider", d.Name())
			continue
		}
		slog.Info("item identified", "provider", d.Name(), "candidates", candidates)
		return entity.NewDetectionResult(candidates, IdentifiedConfidence)
	}
	return entity.NewDetectionResult(nil, 0)
}

// BuildCandidates はプロバイダーの注釈から候補名のランク付きリストを作ります。
//
// 物体名を最大3件、続いてスコアが0.7を超えるラベルを上位5件の中から追加し、
// 最初の出現を残して重複を除いたうえで先頭3件を返します。
func BuildCandidates(ann *entity.Annotations) []string {
	if ann == nil {
		return nil
	}

	names := make([]string, 0, MaxObjectCandidates+MaxLabelCandidates)
	for _, o := range head(ann.Objects, MaxObjectCandidates) {
		if o.Name != "" {
			names = append(names, o.Name)
		}
	}
	for _, l := range head(ann.Labels, MaxLabelCandidates) {
		if l.Name != "" && l.Score > LabelScoreThreshold {
			names = append(names, l.Name)
		}
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, MaxCandidates)
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
		if len(out) == MaxCandidates {
			break
		}
	}
	return out
}

func head(a []entity.Annotation, n int) []entity.Annotation {
	if len(a) > n {
		return a[:n]
	}
	return a
}
