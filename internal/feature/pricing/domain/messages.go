// Package domain はpricingフィーチャーで利用者に返すメッセージを定義します。
// 既存クライアントとの互換性のため、文言は変更しないこと。
package domain

const (
	// MsgNoImageOrItemName は /api/scan で画像も商品名も無い場合のメッセージです。
	MsgNoImageOrItemName = "No image or item name provided"
	// MsgNoItemName は /api/search で商品名が無い場合のメッセージです。
	MsgNoItemName = "No item name provided"
	// MsgRecognitionFailed は画像から商品を特定できなかった場合のメッセージです。
	MsgRecognitionFailed = "Could not automatically recognize item. Please enter the item name manually."
	// MsgNoPricesFound は /api/scan で価格が見つからなかった場合のメッセージです。
	MsgNoPricesFound = "Could not find pricing information for this item"
)
