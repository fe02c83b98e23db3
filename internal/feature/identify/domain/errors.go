// Package domain はidentifyフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrDecode は画像ペイロードがデコードできないことを示します。
	ErrDecode = errors.New("invalid image payload")

	// ErrEmptyImage は画像データが空であることを示します。
	ErrEmptyImage = errors.New("image data is empty")

	// ErrImageTooLarge は画像サイズが上限を超えていることを示します。
	ErrImageTooLarge = errors.New("image size exceeds maximum")
)
