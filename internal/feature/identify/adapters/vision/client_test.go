package vision

import (
	"context"
	"errors"
	"testing"
	"time"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"

	"pricecheck_backend/internal/feature/identify/domain/entity"
)

// fakeAnnotator はImageAnnotatorのテスト用実装です。
type fakeAnnotator struct {
	BatchAnnotateImagesFunc func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error)
	lastRequest             *visionpb.BatchAnnotateImagesRequest
	hadDeadline             bool
	closed                  bool
}

func (f *fakeAnnotator) BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, _ ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error) {
	f.lastRequest = req
	_, f.hadDeadline = ctx.Deadline()
	return f.BatchAnnotateImagesFunc(ctx, req)
}

func (f *fakeAnnotator) Close() error {
	f.closed = true
	return nil
}

func TestVisionLabelDetector_DetectLabels_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeAnnotator{
		BatchAnnotateImagesFunc: func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			return &visionpb.BatchAnnotateImagesResponse{
				Responses: []*visionpb.AnnotateImageResponse{
					{
						LocalizedObjectAnnotations: []*visionpb.LocalizedObjectAnnotation{
							{Name: "Laptop", Score: 0.91},
						},
						LabelAnnotations: []*visionpb.EntityAnnotation{
							{Description: "Computer", Score: 0.97},
							{Description: "Netbook", Score: 0.65},
						},
					},
				},
			}, nil
		},
	}
	detector := NewVisionLabelDetectorWithClient(fake, Config{APIKey: "test-key"})

	ann, err := detector.DetectLabels(context.Background(), []byte("fake-image"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, []entity.Annotation{{Name: "Laptop", Score: 0.91}}, ann.Objects)
	assert.Equal(t, []entity.Annotation{{Name: "Computer", Score: 0.97}, {Name: "Netbook", Score: 0.65}}, ann.Labels)

	// リクエスト内容の検証
	require.Len(t, fake.lastRequest.GetRequests(), 1)
	r := fake.lastRequest.GetRequests()[0]
	assert.Equal(t, []byte("fake-image"), r.GetImage().GetContent())
	require.Len(t, r.GetFeatures(), 2)
	assert.Equal(t, visionpb.Feature_LABEL_DETECTION, r.GetFeatures()[0].GetType())
	assert.Equal(t, visionpb.Feature_OBJECT_LOCALIZATION, r.GetFeatures()[1].GetType())
	assert.Equal(t, int32(DefaultMaxResults), r.GetFeatures()[0].GetMaxResults())
	assert.True(t, fake.hadDeadline, "call should be bounded by a timeout")
}

func TestVisionLabelDetector_DetectLabels_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resp        *visionpb.BatchAnnotateImagesResponse
		err         error
		expectedErr string
	}{
		{
			name:        "transport error",
			err:         errors.New("connection refused"),
			expectedErr: "vision API request failed",
		},
		{
			name: "per-image error status",
			resp: &visionpb.BatchAnnotateImagesResponse{
				Responses: []*visionpb.AnnotateImageResponse{
					{Error: &statuspb.Status{Code: 3, Message: "Bad image data."}},
				},
			},
			expectedErr: "Bad image data.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := &fakeAnnotator{
				BatchAnnotateImagesFunc: func(context.Context, *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
					return tt.resp, tt.err
				},
			}
			detector := NewVisionLabelDetectorWithClient(fake, Config{})

			_, err := detector.DetectLabels(context.Background(), []byte("x"), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestVisionLabelDetector_DetectLabels_EmptyResponse(t *testing.T) {
	t.Parallel()

	fake := &fakeAnnotator{
		BatchAnnotateImagesFunc: func(context.Context, *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			return &visionpb.BatchAnnotateImagesResponse{}, nil
		},
	}
	detector := NewVisionLabelDetectorWithClient(fake, Config{})

	ann, err := detector.DetectLabels(context.Background(), []byte("x"), "")
	require.NoError(t, err)
	assert.Empty(t, ann.Objects)
	assert.Empty(t, ann.Labels)
}

func TestVisionLabelDetector_IgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	fake := &fakeAnnotator{
		BatchAnnotateImagesFunc: func(ctx context.Context, _ *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &visionpb.BatchAnnotateImagesResponse{}, nil
		},
	}
	detector := NewVisionLabelDetectorWithClient(fake, Config{Timeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := detector.DetectLabels(ctx, []byte("x"), "")
	assert.NoError(t, err)
}

func TestNewVisionLabelDetectorWithClient_Defaults(t *testing.T) {
	t.Parallel()

	fake := &fakeAnnotator{}
	detector := NewVisionLabelDetectorWithClient(fake, Config{})

	assert.Equal(t, DefaultTimeout, detector.cfg.Timeout)
	assert.Equal(t, int32(DefaultMaxResults), detector.cfg.MaxResults)
	assert.Equal(t, "google-vision", detector.Name())
	require.NoError(t, detector.Close())
	assert.True(t, fake.closed)
}

func TestNewVisionLabelDetector_NoCredentials(t *testing.T) {
	t.Parallel()

	_, err := NewVisionLabelDetector(context.Background(), Config{})
	require.Error(t, err)
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{APIKey: "k"}.Enabled())
	assert.True(t, Config{UseADC: true}.Enabled())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GOOGLE_VISION_API_KEY", "abc")
	t.Setenv("VISION_TIMEOUT", "")

	cfg := LoadConfig()
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.Enabled())
}
