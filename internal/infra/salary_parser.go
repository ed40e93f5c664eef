package infra

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nrad-K/go-jobfeed/internal/domain/model"
)

// SalaryParser は、人手で書かれた給与文字列を比較可能な金額に変換するインターフェースです。
type SalaryParser interface {
	ParseSalaryToNumber(text string) int
	MaxMonthlySalary(jobs []model.Job) string
}

// SalaryPatterns は、給与抽出で使用するコンパイル済みの正規表現パターンです。
type SalaryPatterns struct {
	ManYen     *regexp.Regexp // 「35万」「35.5万」のような万円表記
	YenSuffix  *regexp.Regexp // 「350,000円」のような円サフィックス表記
	YenPrefix  *regexp.Regexp // 「¥355,000」のような円記号プレフィックス表記
	BareAmount *regexp.Regexp // 裸の整数（カンマ区切り可）
}

// salaryRule は、給与パターンと円換算の倍率のペアです。
// ルールは具体的（信頼できる）な記法から順に評価されます。
type salaryRule struct {
	pattern    *regexp.Regexp
	multiplier float64
}

type salaryParser struct {
	rules []salaryRule
}

// NewSalaryParser は、salaryParserの新しいインスタンスを生成します。
func NewSalaryParser(patterns SalaryPatterns) *salaryParser {
	return &salaryParser{
		rules: []salaryRule{
			{pattern: patterns.ManYen, multiplier: 1e4},
			{pattern: patterns.YenSuffix, multiplier: 1},
			{pattern: patterns.YenPrefix, multiplier: 1},
			{pattern: patterns.BareAmount, multiplier: 1},
		},
	}
}

// ParseSalaryToNumber は、給与文字列を円単位の整数に変換します。
// ルールを優先度順に評価し、最初にマッチしたパターンで金額を決定します。
// どのパターンにもマッチしない場合は0を返します（レコードの除外はしません）。
func (p *salaryParser) ParseSalaryToNumber(text string) int {
	text = normalizeText(text)
	if text == "" {
		return 0
	}

	for _, rule := range p.rules {
		matches := rule.pattern.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}

		amount, err := strconv.ParseFloat(strings.ReplaceAll(matches[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return int(amount * rule.multiplier)
	}

	return 0
}

// MaxMonthlySalary は、求人集合のmonthlySalaryのうち最も高額に解釈できたものを
// 「元の文字列のまま」返します。表示側が整形済みの数値ではなく
// 記入者の書いた文字列を出せるようにするためです。
// 同額の場合は先に現れたものを採用し、使える金額が1件もない場合は空文字列を返します。
func (p *salaryParser) MaxMonthlySalary(jobs []model.Job) string {
	best := 0
	bestText := ""

	for _, job := range jobs {
		amount := p.ParseSalaryToNumber(job.MonthlySalary)
		if amount > best {
			best = amount
			bestText = job.MonthlySalary
		}
	}

	return bestText
}
