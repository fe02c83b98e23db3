package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"pricecheck_backend/internal/feature/pricing/usecase"
	infrahttp "pricecheck_backend/internal/platform/http"
)

// SearchSource は1つのショッピング検索エンドポイントに対するGETクライアントです。
type SearchSource struct {
	name       string
	endpoint   string
	queryParam string
	fixed      url.Values
	headers    http.Header
	timeout    time.Duration
	maxBytes   int64
	client     *http.Client
}

// SearchSourceがPriceSourceを実装していることをコンパイル時に検証します。
var _ usecase.PriceSource = (*SearchSource)(nil)

// NewGoogleShopping はGoogleショッピング検索（tbm=shop）の価格ソースを生成します。
func NewGoogleShopping(cfg Config, client *http.Client) *SearchSource {
	return &SearchSource{
		name:       "google-shopping",
		endpoint:   cfg.GoogleShoppingURL,
		queryParam: "q",
		fixed:      url.Values{"tbm": {"shop"}},
		headers:    browserHeaders(cfg),
		timeout:    cfg.GoogleTimeout,
		maxBytes:   cfg.MaxResponseBytes,
		client:     client,
	}
}

// NewAmazon はAmazon検索の価格ソースを生成します。
func NewAmazon(cfg Config, client *http.Client) *SearchSource {
	return &SearchSource{
		name:       "amazon",
		endpoint:   cfg.AmazonSearchURL,
		queryParam: "k",
		headers:    browserHeaders(cfg),
		timeout:    cfg.AmazonTimeout,
		maxBytes:   cfg.MaxResponseBytes,
		client:     client,
	}
}

// Name はソース名を返します。
func (s *SearchSource) Name() string { return s.name }

// FetchPriceText は商品名で検索したページの生テキストを返します。
// 通信エラー、2xx以外のステータス、タイムアウトの場合はログに記録して ok=false を返します。
func (s *SearchSource) FetchPriceText(ctx context.Context, query string) (string, bool) {
	body, err := s.fetch(ctx, query)
	if err != nil {
		slog.Warn("price source fetch failed", "source", s.name, "query", query, "error", err)
		return "", false
	}
	return body, true
}

func (s *SearchSource) fetch(ctx context.Context, query string) (string, error) {
	// 呼び出し元のキャンセルは伝播させず、ソースごとのタイムアウトのみで打ち切る
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	u, err := s.searchURL(query)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header = s.headers.Clone()

	res, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	b, err := infrahttp.ReadBody(res, s.maxBytes)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%s http %d", s.name, res.StatusCode)
	}
	return string(b), nil
}

func (s *SearchSource) searchURL(query string) (string, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", s.endpoint, err)
	}
	q := u.Query()
	for k, vs := range s.fixed {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set(s.queryParam, NormalizeQuery(query))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NormalizeQuery は全角英数字などをNFKCで正規化し、連続する空白を1つにまとめます。
func NormalizeQuery(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

func browserHeaders(cfg Config) http.Header {
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	lang := cfg.AcceptLanguage
	if lang == "" {
		lang = DefaultAcceptLanguage
	}
	h := http.Header{}
	h.Set("User-Agent", ua)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	h.Set("Accept-Language", lang)
	return h
}
