package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pricecheck_backend/internal/feature/pricing/domain/entity"
)

var (
	// freeTextPattern は通貨記号付きの数値（例: "$1,299.99", "€ 45"）にマッチします。
	freeTextPattern = regexp.MustCompile(`[$£€¥][\s\p{Zs}]*([\d,]+\.?\d*)`)
	// markupPattern は価格要素内の数値にマッチします。通貨記号は任意です。
	markupPattern = regexp.MustCompile(`[$£€¥]?[\s\p{Zs}]*([\d,]+\.?\d*)`)
	// priceClass は価格要素とみなすclass属性のパターンです。
	priceClass = regexp.MustCompile(`(?i)price`)
)

// priceElements はマークアップ走査の対象となる要素です。
const priceElements = "span, div"

// ExtractPrices は検索結果ページの生テキスト（HTML）から価格サンプルを抽出します。
//
// ページ全体のテキストに対する走査と、class名に "price" を含む要素に対する走査を
// それぞれ独立に行い、結果を和集合として返します。
// 範囲外の値（0.01以下、1000000以上）は含まれません。
func ExtractPrices(raw string) entity.PriceSet {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ScanFreeText(raw)
	}
	return ScanFreeText(doc.Text()).Union(ScanMarkup(doc))
}

// ScanFreeText はテキスト中の「通貨記号 + 数値」をすべて抽出します。
func ScanFreeText(text string) entity.PriceSet {
	out := entity.PriceSet{}
	for _, m := range freeTextPattern.FindAllStringSubmatch(text, -1) {
		if v, ok := parsePrice(m[1]); ok {
			out.Add(v)
		}
	}
	return out
}

// ScanMarkup はclass名に "price"（大文字小文字を区別しない）を含むspan/div要素について、
// 要素テキスト中の最初の数値を抽出します。
func ScanMarkup(doc *goquery.Document) entity.PriceSet {
	out := entity.PriceSet{}
	doc.Find(priceElements).Each(func(_ int, s *goquery.Selection) {
		class, ok := s.Attr("class")
		if !ok || !priceClass.MatchString(class) {
			return
		}
		m := markupPattern.FindStringSubmatch(s.Text())
		if m == nil {
			return
		}
		if v, ok := parsePrice(m[1]); ok {
			out.Add(v)
		}
	})
	return out
}

// parsePrice は桁区切りのカンマを取り除いて数値に変換します。
func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
