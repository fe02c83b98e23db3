// Package http は外部サービス呼び出し用のHTTPクライアントを提供します。
package http

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// maxRedirects はショッピング検索ページが返すリダイレクトを追従する上限です。
const maxRedirects = 5

// NewHTTPClient は外部ページ取得用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト
//   - MaxIdleConns / IdleConnTimeout: 接続の再利用
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: t,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.New("stopped after too many redirects")
			}
			return nil
		},
	}
}

// ReadBody はレスポンスボディを最大limitバイトまで読み込み、ボディをクローズします。
// limit が0以下の場合は上限なしで読み込みます。
func ReadBody(res *http.Response, limit int64) ([]byte, error) {
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()
	var r io.Reader = res.Body
	if limit > 0 {
		r = io.LimitReader(res.Body, limit)
	}
	return io.ReadAll(r)
}
