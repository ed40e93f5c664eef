package constants

import (
	"regexp"

	"github.com/nrad-K/go-jobfeed/internal/infra"
)

// GetSalaryPatternsは、給与抽出で使用するコンパイル済みの正規表現パターンを返します。
// 記法として具体的なものから順に並べてあり、infra.NewSalaryParserが
// この順序のまま評価します。
func GetSalaryPatterns() infra.SalaryPatterns {
	return infra.SalaryPatterns{
		ManYen:     regexp.MustCompile(`([0-9][0-9,]*(?:\.[0-9]+)?)万`),
		YenSuffix:  regexp.MustCompile(`([0-9][0-9,]*)円`),
		YenPrefix:  regexp.MustCompile(`[¥￥]([0-9][0-9,]*)`),
		BareAmount: regexp.MustCompile(`([0-9][0-9,]*)`),
	}
}

// GetHeaderSynonymsは、スプレッドシートのカラムヘッダーを正規フィールドキーへ
// 対応付ける同義語テーブルを返します。英語の正規キー自身・snake_caseエイリアス・
// 日本語ラベルをカバーします。
//
// このテーブルはコア全体のフィールド名の唯一の情報源です。追加のみ可とし、
// 既存の対応はデータ移行計画なしに変更しないこと。シートは非エンジニアが
// 編集するため、対応を変えると過去のシートが読めなくなります。
func GetHeaderSynonyms() map[string]string {
	return map[string]string{
		// 会社レコード
		"company":        "company",
		"company_name":   "company",
		"会社名":            "company",
		"companyDomain":  "companyDomain",
		"company_domain": "companyDomain",
		"会社ドメイン":         "companyDomain",
		"jobsSheet":      "jobsSheet",
		"jobs_sheet":     "jobsSheet",
		"管理シート":          "jobsSheet",
		"求人シート":          "jobsSheet",
		"showCompany":    "showCompany",
		"show_company":   "showCompany",
		"掲載":             "showCompany",
		"掲載フラグ":          "showCompany",
		"designPattern":  "designPattern",
		"design_pattern": "designPattern",
		"デザイン":           "designPattern",
		"imageUrl":       "imageUrl",
		"image_url":      "imageUrl",
		"画像URL":          "imageUrl",
		"logoUrl":        "logoUrl",
		"logo_url":       "logoUrl",
		"ロゴURL":          "logoUrl",
		"description":    "description",
		"会社紹介":           "description",
		"紹介文":            "description",
		"workLocation":   "workLocation",
		"work_location":  "workLocation",
		"勤務場所":           "workLocation",
		"companyAddress": "companyAddress",
		"company_address": "companyAddress",
		"所在地":  "companyAddress",
		"会社住所": "companyAddress",

		// 求人レコード
		"id":                 "id",
		"ID":                 "id",
		"管理ID":               "id",
		"title":              "title",
		"タイトル":               "title",
		"求人タイトル":             "title",
		"location":           "location",
		"勤務地":                "location",
		"totalBonus":         "totalBonus",
		"total_bonus":        "totalBonus",
		"特典総額":               "totalBonus",
		"入社特典":               "totalBonus",
		"monthlySalary":      "monthlySalary",
		"monthly_salary":     "monthlySalary",
		"月収":                 "monthlySalary",
		"月給":                 "monthlySalary",
		"salary":             "salary",
		"給与":                 "salary",
		"features":           "features",
		"特徴":                 "features",
		"badges":             "badges",
		"バッジ":                "badges",
		"visible":            "visible",
		"公開":                 "visible",
		"表示":                 "visible",
		"publishStartDate":   "publishStartDate",
		"publish_start_date": "publishStartDate",
		"掲載開始日":              "publishStartDate",
		"publishEndDate":     "publishEndDate",
		"publish_end_date":   "publishEndDate",
		"掲載終了日":              "publishEndDate",
		"requirements":       "requirements",
		"応募資格":               "requirements",
		"応募要件":               "requirements",
		"benefits":           "benefits",
		"福利厚生":               "benefits",
		"待遇・福利厚生":            "benefits",
		"holidays":           "holidays",
		"休日":                 "holidays",
		"休日・休暇":              "holidays",
		"employmentType":     "employmentType",
		"employment_type":    "employmentType",
		"雇用形態":               "employmentType",
		"skills":             "skills",
		"スキル":                "skills",
		"必要スキル":              "skills",
		"jobType":            "jobType",
		"job_type":           "jobType",
		"職種":                 "jobType",

		// 両レコード共通
		"order":          "order",
		"表示順":            "order",
		"並び順":            "order",
		"jobDescription": "jobDescription",
		"job_description": "jobDescription",
		"仕事内容":  "jobDescription",
		"workingHours":  "workingHours",
		"working_hours": "workingHours",
		"勤務時間":          "workingHours",
	}
}

// GetJobExportHeadersは、exportコマンドが出力するCSVファイルのヘッダーを返します。
func GetJobExportHeaders() []string {
	return []string{
		"会社名", "会社ドメイン", "管理ID", "タイトル", "勤務地",
		"特典総額", "月収", "給与", "特徴", "バッジ",
		"表示順", "掲載開始日", "掲載終了日",
		"仕事内容", "応募資格", "福利厚生", "勤務時間", "休日", "雇用形態", "スキル", "職種",
	}
}
