package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "数値はそのまま", input: "5", expected: 5},
		{name: "前後の空白は無視する", input: " 12 ", expected: 12},
		{name: "空文字列はデフォルト順", input: "", expected: DefaultOrder},
		{name: "数値でない値はデフォルト順", input: "先頭", expected: DefaultOrder},
		{name: "小数はデフォルト順", input: "1.5", expected: DefaultOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseOrder(tt.input))
		})
	}
}

func TestFlagBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "false", expected: false},
		{input: "FALSE", expected: false},
		{input: "False", expected: true},
		{input: "", expected: true},
		{input: "true", expected: true},
		{input: "非公開", expected: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FlagBool(tt.input), "input=%q", tt.input)
	}
}

func TestParseFeedDate(t *testing.T) {
	t.Run("ハイフン区切り", func(t *testing.T) {
		parsed, ok := ParseFeedDate("2026-04-01")

		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local), parsed)
	})

	t.Run("スラッシュ区切り", func(t *testing.T) {
		parsed, ok := ParseFeedDate("2026/04/01")

		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local), parsed)
	})

	t.Run("ゼロ埋めなしの月日", func(t *testing.T) {
		parsed, ok := ParseFeedDate("2026/4/1")

		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local), parsed)
	})

	t.Run("空文字列は制約なし", func(t *testing.T) {
		_, ok := ParseFeedDate("")

		assert.False(t, ok)
	})

	t.Run("解釈できない文字列は制約なし", func(t *testing.T) {
		_, ok := ParseFeedDate("4月1日から")

		assert.False(t, ok)
	})
}

func TestSplitFeatures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "カンマ区切りをトリムして分割する", input: "寮あり, 未経験OK ,日払い", expected: []string{"寮あり", "未経験OK", "日払い"}},
		{name: "空要素は捨てる", input: "寮あり,,日払い,", expected: []string{"寮あり", "日払い"}},
		{name: "空文字列は空配列", input: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitFeatures(tt.input))
		})
	}
}

func TestSortJobsByOrder(t *testing.T) {
	t.Run("order昇順でデフォルト順は末尾", func(t *testing.T) {
		jobs := []Job{
			{ID: "a", Order: DefaultOrder},
			{ID: "b", Order: 2},
			{ID: "c", Order: 1},
		}

		SortJobsByOrder(jobs)

		assert.Equal(t, "c", jobs[0].ID)
		assert.Equal(t, "b", jobs[1].ID)
		assert.Equal(t, "a", jobs[2].ID)
	})

	t.Run("同値はフィード順を保つ", func(t *testing.T) {
		jobs := []Job{
			{ID: "a", Order: DefaultOrder},
			{ID: "b", Order: DefaultOrder},
			{ID: "c", Order: DefaultOrder},
		}

		SortJobsByOrder(jobs)

		assert.Equal(t, "a", jobs[0].ID)
		assert.Equal(t, "b", jobs[1].ID)
		assert.Equal(t, "c", jobs[2].ID)
	})
}

func TestSortCompaniesByOrder(t *testing.T) {
	companies := []Company{
		{CompanyDomain: "a", Order: DefaultOrder},
		{CompanyDomain: "b", Order: 1},
		{CompanyDomain: "c", Order: DefaultOrder},
	}

	SortCompaniesByOrder(companies)

	assert.Equal(t, "b", companies[0].CompanyDomain)
	assert.Equal(t, "a", companies[1].CompanyDomain)
	assert.Equal(t, "c", companies[2].CompanyDomain)
}
