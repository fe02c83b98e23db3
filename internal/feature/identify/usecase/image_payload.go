package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"pricecheck_backend/internal/feature/identify/domain"
)

// MaxImageSize は画像ペイロードのデフォルト上限（10MB）です。
const MaxImageSize = 10 * 1024 * 1024

// stdlibDecodable は標準ライブラリでヘッダー検証できる画像形式です。
var stdlibDecodable = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// Image はデコード済みの画像データです。
type Image struct {
	Data     []byte
	MIMEType string
}

// DecodeImagePayload は "data:image/jpeg;base64,..." 形式（またはプレフィックスなしのbase64）の
// 文字列をデコードし、画像として解釈できることを確認します。
// 失敗した場合は domain.ErrDecode をラップしたエラーを返します。
func DecodeImagePayload(payload string, maxBytes int) (*Image, error) {
	if maxBytes <= 0 {
		maxBytes = MaxImageSize
	}

	encoded := payload
	if _, after, found := strings.Cut(payload, ","); found {
		encoded = after
	}
	encoded = strings.Join(strings.Fields(encoded), "")
	if encoded == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, domain.ErrEmptyImage)
	}
	if base64.StdEncoding.DecodedLen(len(encoded)) > maxBytes {
		return nil, fmt.Errorf("%w: %w (%d bytes)", domain.ErrDecode, domain.ErrImageTooLarge, maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// パディングなしのbase64も受け付ける
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
		}
		data = raw
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, domain.ErrEmptyImage)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: cannot identify image file (detected %s)", domain.ErrDecode, mt.String())
	}
	if stdlibDecodable[mt.String()] {
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
		}
	}

	return &Image{Data: data, MIMEType: mt.String()}, nil
}
