package infra

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// normalizeText は文字列の正規化を行うヘルパー関数です。
// 全角英数字・記号を半角へ、半角カナを全角へ折りたたみ（width.Fold）、
// 制御文字を削除し、全角スペースを含む前後の空白をトリムします。
// スプレッドシートは全角・半角が混在した状態で入力されるため、
// ヘッダー照合と金額抽出は必ずこの正規化を通した文字列に対して行います。
func normalizeText(s string) string {
	s = width.Fold.String(s)

	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimFunc(s, unicode.IsSpace)
}
