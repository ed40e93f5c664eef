package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	normalizer := NewHeaderNormalizer(testSynonyms())

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "正規キー自身はそのまま返る",
			raw:      "companyDomain",
			expected: "companyDomain",
		},
		{
			name:     "日本語ラベル",
			raw:      "会社ドメイン",
			expected: "companyDomain",
		},
		{
			name:     "前後の空白をトリムして照合する",
			raw:      "  会社名  ",
			expected: "company",
		},
		{
			name:     "埋め込まれたダブルクォートを除去する",
			raw:      `"管理シート"`,
			expected: "jobsSheet",
		},
		{
			name:     "複合ヘッダーは先頭トークンで再照合する",
			raw:      "id 管理ID",
			expected: "id",
		},
		{
			name:     "日本語の複合ヘッダー",
			raw:      "タイトル (必須)",
			expected: "title",
		},
		{
			name:     "未知のヘッダーは先頭トークンをそのまま通す",
			raw:      "specialCampaign 特別キャンペーン",
			expected: "specialCampaign",
		},
		{
			name:     "未知の単独ヘッダーもそのまま通す",
			raw:      "unknownColumn",
			expected: "unknownColumn",
		},
		{
			name:     "全角英数字は半角に折りたたんで照合する",
			raw:      "ｉｄ",
			expected: "id",
		},
		{
			name:     "全角スペース区切りの複合ヘッダー",
			raw:      "勤務地　都道府県",
			expected: "location",
		},
		{
			name:     "空ヘッダーは空文字列",
			raw:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.Normalize(tt.raw))
		})
	}
}

// 正規化の出力をもう一度正規化しても変わらないこと
func TestNormalizeHeaderIdempotent(t *testing.T) {
	normalizer := NewHeaderNormalizer(testSynonyms())

	for _, raw := range []string{"会社ドメイン", "companyDomain", "タイトル", "unknownColumn"} {
		once := normalizer.Normalize(raw)
		assert.Equal(t, once, normalizer.Normalize(once), "raw=%s", raw)
	}
}
