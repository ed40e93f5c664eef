package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrad-K/go-jobfeed/internal/infra"
)

func TestGetHeaderSynonyms(t *testing.T) {
	normalizer := infra.NewHeaderNormalizer(GetHeaderSynonyms())

	t.Run("英語キーと日本語ラベルが同じ正規キーに揃う", func(t *testing.T) {
		tests := []struct {
			header   string
			expected string
		}{
			{header: "companyDomain", expected: "companyDomain"},
			{header: "company_domain", expected: "companyDomain"},
			{header: "会社ドメイン", expected: "companyDomain"},
			{header: "会社名", expected: "company"},
			{header: "管理シート", expected: "jobsSheet"},
			{header: "求人シート", expected: "jobsSheet"},
			{header: "掲載フラグ", expected: "showCompany"},
			{header: "管理ID", expected: "id"},
			{header: "タイトル", expected: "title"},
			{header: "勤務地", expected: "location"},
			{header: "月収", expected: "monthlySalary"},
			{header: "月給", expected: "monthlySalary"},
			{header: "特典総額", expected: "totalBonus"},
			{header: "公開", expected: "visible"},
			{header: "掲載開始日", expected: "publishStartDate"},
			{header: "掲載終了日", expected: "publishEndDate"},
			{header: "表示順", expected: "order"},
			{header: "並び順", expected: "order"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, normalizer.Normalize(tt.header), "header=%s", tt.header)
		}
	})

	t.Run("正規キーは正規化しても変わらない", func(t *testing.T) {
		seen := map[string]struct{}{}
		for _, canonical := range GetHeaderSynonyms() {
			if _, ok := seen[canonical]; ok {
				continue
			}
			seen[canonical] = struct{}{}

			assert.Equal(t, canonical, normalizer.Normalize(canonical))
		}
	})

	t.Run("注記つきの日本語ラベルは先頭トークンで揃う", func(t *testing.T) {
		assert.Equal(t, "title", normalizer.Normalize("タイトル (必須)"))
		assert.Equal(t, "publishStartDate", normalizer.Normalize("掲載開始日 YYYY/MM/DD"))
	})
}

func TestGetSalaryPatterns(t *testing.T) {
	parser := infra.NewSalaryParser(GetSalaryPatterns())

	tests := []struct {
		text     string
		expected int
	}{
		{text: "35万円", expected: 350000},
		{text: "35.5万", expected: 355000},
		{text: "¥355,000", expected: 355000},
		{text: "350,000円", expected: 350000},
		{text: "300000", expected: 300000},
		{text: "abc", expected: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parser.ParseSalaryToNumber(tt.text), "text=%s", tt.text)
	}
}

func TestGetJobExportHeaders(t *testing.T) {
	headers := GetJobExportHeaders()

	assert.Len(t, headers, 21)
	assert.Equal(t, "会社名", headers[0])
	assert.Equal(t, "職種", headers[20])
}
