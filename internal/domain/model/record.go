package model

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultOrder は、orderが欠損または数値でないレコードに割り当てるソート順です。
// 明示的に順序付けされたレコードの後ろに並びます。
const DefaultOrder = 999

// ParseOrder は、order文字列を整数のソート順に変換します。
// 空または数値として解釈できない場合はDefaultOrderを返します（除外はしません）。
func ParseOrder(s string) int {
	order, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultOrder
	}
	return order
}

// FlagBool は、スプレッドシート由来の文字列型ブール値を変換します。
// リテラルの「false」「FALSE」のみをfalseとし、空文字列を含む
// それ以外の値はすべてtrueです（表示はデフォルトで有効）。
// 文字列比較はこの1関数に集約し、業務ロジック側では繰り返さないこと。
func FlagBool(s string) bool {
	return s != "false" && s != "FALSE"
}

// feedDateFormats は、掲載期間フィールドで受け付ける日付形式です。
// YYYY/MM/DD はセパレーターを統一してからパースします。
var feedDateFormats = []string{
	"2006-01-02",
	"2006-1-2",
}

// ParseFeedDate は、掲載期間の日付文字列をローカルタイムの0時として解釈します。
// 解釈できない場合はfalseを返します。呼び出し側は「制約なし」として扱います。
func ParseFeedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "/", "-"))
	if s == "" {
		return time.Time{}, false
	}

	for _, format := range feedDateFormats {
		t, err := time.ParseInLocation(format, s, time.Local)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
		}
	}
	return time.Time{}, false
}

// Today は、ローカルタイムの今日0時を返します。掲載期間判定の基準時刻です。
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// SplitFeatures は、カンマ区切りのfeatures値をトリム済みの空でない文字列の
// 配列に変換します。
func SplitFeatures(s string) []string {
	features := make([]string, 0, 8)
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			features = append(features, piece)
		}
	}
	return features
}

// SortCompaniesByOrder は、会社レコードをorder昇順で安定ソートします。
// orderが同値の場合は元のフィード順を保ちます。
func SortCompaniesByOrder(companies []Company) {
	sort.SliceStable(companies, func(i, j int) bool {
		return companies[i].Order < companies[j].Order
	})
}

// SortJobsByOrder は、求人レコードをorder昇順で安定ソートします。
// orderが同値の場合は元のフィード順を保ちます。
func SortJobsByOrder(jobs []Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Order < jobs[j].Order
	})
}
