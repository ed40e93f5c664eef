package infra

import (
	"strings"
)

// RecordParser は、CSVドキュメントを意味レコードの列に変換するインターフェースです。
type RecordParser interface {
	Tokenize(line string) []string
	ParseRecords(text string, headerRow, dataStart int) []map[string]string
}

// recordParser は、トークナイザーとヘッダー正規化を組み合わせて
// CSVテキストをレコード列に変換します。
type recordParser struct {
	normalizer HeaderNormalizer
}

// NewRecordParser は、recordParserの新しいインスタンスを生成します。
func NewRecordParser(normalizer HeaderNormalizer) *recordParser {
	return &recordParser{
		normalizer: normalizer,
	}
}

// Tokenize は、CSVの1行をフィールド値の列に分解します。
//
// ルール:
//   - フィールドはカンマ区切り
//   - ダブルクォートで囲まれたフィールド内のカンマは区切り文字として扱わない
//   - クォート内の連続する2つのダブルクォートは1つのダブルクォート文字
//   - 各フィールドは前後の空白をトリムして返す
//
// 閉じられていないクォートは行末まで読み進めます。スプレッドシートの
// エクスポートにはクォートの崩れた行が混ざるため、エラーにはしません。
func (p *recordParser) Tokenize(line string) []string {
	fields := make([]string, 0, 16)
	var sb strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case inQuotes && r == '"':
			// "" はエスケープされたダブルクォート
			if i+1 < len(runes) && runes[i+1] == '"' {
				sb.WriteRune('"')
				i++
				continue
			}
			inQuotes = false

		case !inQuotes && r == '"':
			inQuotes = true

		case !inQuotes && r == ',':
			fields = append(fields, strings.TrimSpace(sb.String()))
			sb.Reset()

		default:
			sb.WriteRune(r)
		}
	}

	fields = append(fields, strings.TrimSpace(sb.String()))
	return fields
}

// ParseRecords は、CSVドキュメント全体をレコード列に変換します。
//
// headerRow行目をトークナイズしてヘッダーを正規化し、
// 列インデックス→正規フィールドキーの対応表を作ります。
// dataStart行目以降の空行でない各行をトークナイズし、
// 値を正規キーにひも付けたレコードを生成します。
// 末尾のセルが欠けている場合は空文字列を割り当てます。
// 空白のみの行はレコードを生成せずスキップします。
func (p *recordParser) ParseRecords(text string, headerRow, dataStart int) []map[string]string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if headerRow < 0 || headerRow >= len(lines) {
		return nil
	}

	rawHeaders := p.Tokenize(lines[headerRow])
	keys := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		keys[i] = p.normalizer.Normalize(h)
	}

	records := make([]map[string]string, 0, len(lines))
	for i := dataStart; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		cells := p.Tokenize(lines[i])
		record := make(map[string]string, len(keys))
		for j, key := range keys {
			if key == "" {
				continue
			}
			if j < len(cells) {
				record[key] = cells[j]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}

	return records
}
