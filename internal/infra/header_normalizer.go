package infra

import (
	"strings"
)

// HeaderNormalizer は、任意のカラムヘッダーを正規フィールドキーに変換するインターフェースです。
type HeaderNormalizer interface {
	Normalize(raw string) string
}

// headerRule は、ヘッダー文字列に対する変換ルールです。
// マッチした場合は正規キーとtrueを返します。
// ルールは優先度順に評価され、新しいスプレッドシートの記法への対応は
// ルールの追加のみで行います。
type headerRule func(s string) (string, bool)

type headerNormalizer struct {
	rules []headerRule
}

// NewHeaderNormalizer は、同義語テーブルを使ってheaderNormalizerを生成します。
// テーブルは正規キー自身・snake_caseエイリアス・日本語ラベルを
// すべて正規キーに対応付けます。
func NewHeaderNormalizer(synonyms map[string]string) *headerNormalizer {
	lookup := func(s string) (string, bool) {
		key, ok := synonyms[s]
		return key, ok
	}

	return &headerNormalizer{
		rules: []headerRule{
			// 完全一致
			lookup,
			// "id 管理ID" のような複合ヘッダーは先頭トークンで再照合する
			func(s string) (string, bool) {
				token := firstToken(s)
				if token == s {
					return "", false
				}
				return lookup(token)
			},
			// 未知のヘッダーは先頭トークンをそのまま通す。
			// 新しい列が追加されてもレコードから落とさないための措置。
			func(s string) (string, bool) {
				return firstToken(s), true
			},
		},
	}
}

// Normalize は、ヘッダー文字列を正規フィールドキーに変換します。
// 埋め込まれたダブルクォートを除去し正規化したうえで、
// ルールを順に評価して最初にマッチした結果を返します。
func (n *headerNormalizer) Normalize(raw string) string {
	s := normalizeText(strings.ReplaceAll(raw, `"`, ""))
	for _, rule := range n.rules {
		if key, ok := rule(s); ok {
			return key
		}
	}
	return s
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
