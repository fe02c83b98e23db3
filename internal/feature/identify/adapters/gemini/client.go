// Package gemini はGoogle Gemini APIを使用した商品名推定クライアントを提供します。
// Vision APIで候補が得られなかった場合の2番目のラベル検出プロバイダーとして使います。
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"

	"pricecheck_backend/internal/feature/identify/domain/entity"
	"pricecheck_backend/internal/feature/identify/usecase"
)

const (
	// IdentifyPrompt は画像内の商品名を1行で答えさせるプロンプトです。
	IdentifyPrompt = "Identify the main physical item in this photo so it can be searched for in an online shop. " +
		"Reply with only the product name on a single line (include brand and model if visible). " +
		"If no item can be recognized, reply with UNKNOWN."
	// unknownAnswer はモデルが認識できなかった場合の応答です。
	unknownAnswer = "UNKNOWN"
	// maxNameLength は検索クエリとして採用する商品名の最大文字数（rune数）です。
	maxNameLength = 100
)

// ContentGenerator はGemini APIのうち本パッケージが使用するメソッドです。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiLabelDetector は画像をGeminiに渡して商品名を1件推定します。
type GeminiLabelDetector struct {
	models ContentGenerator
	cfg    Config
}

// GeminiLabelDetectorがLabelDetectorを実装していることをコンパイル時に検証します。
var _ usecase.LabelDetector = (*GeminiLabelDetector)(nil)

// NewGeminiLabelDetector は設定に応じてGeminiLabelDetectorを生成します。
func NewGeminiLabelDetector(ctx context.Context, cfg Config) (*GeminiLabelDetector, error) {
	var cc *genai.ClientConfig
	switch {
	case cfg.APIKey != "":
		cc = &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	case cfg.UseVertexAI:
		// プロジェクトとロケーションは環境変数 GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION から読み込まれる
		cc = &genai.ClientConfig{Backend: genai.BackendVertexAI}
	default:
		return nil, errors.New("gemini credentials are not configured")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return NewGeminiLabelDetectorWithModels(client.Models, cfg), nil
}

// NewGeminiLabelDetectorWithModels は既存のContentGeneratorを使ってGeminiLabelDetectorを生成します。
func NewGeminiLabelDetectorWithModels(models ContentGenerator, cfg Config) *GeminiLabelDetector {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &GeminiLabelDetector{models: models, cfg: cfg}
}

// Name はプロバイダー名を返します。
func (g *GeminiLabelDetector) Name() string { return "gemini" }

// DetectLabels は画像から商品名を推定し、1件の物体注釈として返します。
// モデルが認識できなかった場合は空の注釈を返します。
func (g *GeminiLabelDetector) DetectLabels(ctx context.Context, imageData []byte, mimeType string) (*entity.Annotations, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.cfg.Timeout)
	defer cancel()

	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(imageData, mimeType),
			genai.NewPartFromText(IdentifyPrompt),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.cfg.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	name := parseItemName(resp.Text())
	if name == "" {
		return &entity.Annotations{}, nil
	}
	return &entity.Annotations{
		Objects: []entity.Annotation{{Name: name, Score: 1}},
	}, nil
}

// parseItemName はモデルの応答から1行目を取り出し、検索クエリとして使える形に整えます。
func parseItemName(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	line = strings.TrimSpace(line)
	line = strings.Trim(line, "\"'`*")
	line = strings.TrimSuffix(line, ".")
	line = strings.TrimSpace(line)
	if line == "" || strings.EqualFold(line, unknownAnswer) {
		return ""
	}
	if utf8.RuneCountInString(line) > maxNameLength {
		line = string([]rune(line)[:maxNameLength])
	}
	return line
}
