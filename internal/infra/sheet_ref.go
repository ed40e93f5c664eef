package infra

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// スプレッドシートURLからIDを取り出すパターン
	sheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	// 裸のスプレッドシートIDとして受け付けるパターン
	sheetIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractSheetID は、会社レコードのjobsSheet参照からスプレッドシートIDを
// 取り出します。完全なURLと裸のIDのどちらも受け付けます。
func ExtractSheetID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	if matches := sheetURLPattern.FindStringSubmatch(ref); len(matches) == 2 {
		return matches[1], true
	}
	if sheetIDPattern.MatchString(ref) {
		return ref, true
	}
	return "", false
}

// SheetCSVExportURL は、スプレッドシートIDからCSVエクスポートURLを組み立てます。
// format には「%s」を1つ含むURLテンプレートを渡します。
func SheetCSVExportURL(format, sheetID string) string {
	return fmt.Sprintf(format, sheetID)
}
