// Package vision はGoogle Cloud Vision APIを使用したラベル検出クライアントを提供します。
package vision

import (
	"context"
	"errors"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"pricecheck_backend/internal/feature/identify/domain/entity"
	"pricecheck_backend/internal/feature/identify/usecase"
)

// ImageAnnotator はVision APIクライアントのうち本パッケージが使用するメソッドです。
type ImageAnnotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	Close() error
}

// VisionLabelDetector はGoogle Cloud Vision APIで物体とラベルを検出します。
type VisionLabelDetector struct {
	client ImageAnnotator
	cfg    Config
}

// VisionLabelDetectorがLabelDetectorを実装していることをコンパイル時に検証します。
var _ usecase.LabelDetector = (*VisionLabelDetector)(nil)

// NewVisionLabelDetector は設定に応じてVisionLabelDetectorを生成します。
// APIキーが設定されていればREST+APIキー、UseADCならADCのgRPCクライアントを使用します。
func NewVisionLabelDetector(ctx context.Context, cfg Config) (*VisionLabelDetector, error) {
	var (
		client *gvision.ImageAnnotatorClient
		err    error
	)
	switch {
	case cfg.APIKey != "":
		client, err = gvision.NewImageAnnotatorRESTClient(ctx, option.WithAPIKey(cfg.APIKey))
	case cfg.UseADC:
		client, err = gvision.NewImageAnnotatorClient(ctx)
	default:
		return nil, errors.New("vision credentials are not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return NewVisionLabelDetectorWithClient(client, cfg), nil
}

// NewVisionLabelDetectorWithClient は既存のクライアントを使ってVisionLabelDetectorを生成します。
func NewVisionLabelDetectorWithClient(client ImageAnnotator, cfg Config) *VisionLabelDetector {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return &VisionLabelDetector{client: client, cfg: cfg}
}

// Name はプロバイダー名を返します。
func (v *VisionLabelDetector) Name() string { return "google-vision" }

// Close はVision APIクライアントを解放します。
func (v *VisionLabelDetector) Close() error {
	return v.client.Close()
}

// DetectLabels は画像バイト列から物体（OBJECT_LOCALIZATION）とラベル（LABEL_DETECTION）を検出します。
// 呼び出し元のキャンセルは伝播させず、設定したタイムアウトでのみ打ち切ります。
func (v *VisionLabelDetector) DetectLabels(ctx context.Context, imageData []byte, _ string) (*entity.Annotations, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), v.cfg.Timeout)
	defer cancel()

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: v.cfg.MaxResults},
					{Type: visionpb.Feature_OBJECT_LOCALIZATION, MaxResults: v.cfg.MaxResults},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.GetResponses()) == 0 {
		return &entity.Annotations{}, nil
	}

	r := resp.GetResponses()[0]
	if r.GetError() != nil {
		return nil, fmt.Errorf("vision API error: %s", r.GetError().GetMessage())
	}

	out := &entity.Annotations{
		Objects: make([]entity.Annotation, 0, len(r.GetLocalizedObjectAnnotations())),
		Labels:  make([]entity.Annotation, 0, len(r.GetLabelAnnotations())),
	}
	for _, o := range r.GetLocalizedObjectAnnotations() {
		out.Objects = append(out.Objects, entity.Annotation{Name: o.GetName(), Score: o.GetScore()})
	}
	for _, l := range r.GetLabelAnnotations() {
		out.Labels = append(out.Labels, entity.Annotation{Name: l.GetDescription(), Score: l.GetScore()})
	}
	return out, nil
}
