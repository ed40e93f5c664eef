package infra

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TableToCSV は、「ウェブに公開」されたスプレッドシートのHTMLページから
// 最初の<table>のセルグリッドを取り出し、CSVテキストに復元します。
// CSVエクスポートの代わりにpubhtml形式のURLが貼られたシートでも、
// 以降を通常のCSVと同じレコード構築経路に乗せるためのフォールバックです。
//
// Googleスプレッドシートのpubhtmlが出力する行番号列（th要素）は
// シートのデータではないため読み飛ばします。
func TableToCSV(html string) (string, error) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("HTMLの解析に失敗しました: %w", err)
	}

	table := document.Find("table").First()
	if table.Length() == 0 {
		return "", fmt.Errorf("HTML内にtable要素が見つかりませんでした")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	var writeErr error
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		record := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			record = append(record, strings.TrimSpace(cell.Text()))
		})

		if err := writer.Write(record); err != nil && writeErr == nil {
			writeErr = err
		}
	})
	if writeErr != nil {
		return "", fmt.Errorf("CSVへの復元に失敗しました: %w", writeErr)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("CSVへの復元に失敗しました: %w", err)
	}

	return buf.String(), nil
}
