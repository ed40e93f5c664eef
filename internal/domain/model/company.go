package model

import (
	"strings"
)

// showCompanyMarks は、会社を掲載対象とする掲載フラグの値です。
// 全角の「○」（漢数字ゼロ系の丸）と「◯」（大きな丸）はどちらも
// シート上で実際に使われているため、両方を受け付けます。
var showCompanyMarks = []string{"○", "◯"}

// Company は、1つの雇用主を表す会社レコードです。
// フィードを取得するたびに新しく構築され、構築後に書き換えられることはありません。
// CompanyDomainはフィード全体で一意であり、求人ソースとの結合キーになります。
type Company struct {
	Company        string `json:"company"`
	CompanyDomain  string `json:"companyDomain"`
	JobsSheet      string `json:"jobsSheet"`
	ShowCompany    string `json:"showCompany"`
	Order          int    `json:"order"`
	DesignPattern  string `json:"designPattern"`
	ImageURL       string `json:"imageUrl"`
	LogoURL        string `json:"logoUrl"`
	Description    string `json:"description"`
	JobDescription string `json:"jobDescription"`
	WorkingHours   string `json:"workingHours"`
	WorkLocation   string `json:"workLocation"`
	CompanyAddress string `json:"companyAddress"`
	MonthlySalary  string `json:"monthlySalary"`
	TotalBonus     string `json:"totalBonus"`

	// 一覧・ホーム表示用の代表値。アグリゲーターが
	// その会社の掲載中求人から導出して設定します。
	DisplayTotalBonus    string `json:"_displayTotalBonus,omitempty"`
	DisplayMonthlySalary string `json:"_displayMonthlySalary,omitempty"`
}

// BuildCompany は、正規キーのレコードから会社レコードを構築します。
// 数値への変換はここで1回だけ行い、以降の業務ロジックは型付きの値だけを見ます。
func BuildCompany(record map[string]string) Company {
	return Company{
		Company:        strings.TrimSpace(record["company"]),
		CompanyDomain:  strings.TrimSpace(record["companyDomain"]),
		JobsSheet:      strings.TrimSpace(record["jobsSheet"]),
		ShowCompany:    strings.TrimSpace(record["showCompany"]),
		Order:          ParseOrder(record["order"]),
		DesignPattern:  record["designPattern"],
		ImageURL:       strings.TrimSpace(record["imageUrl"]),
		LogoURL:        strings.TrimSpace(record["logoUrl"]),
		Description:    record["description"],
		JobDescription: record["jobDescription"],
		WorkingHours:   record["workingHours"],
		WorkLocation:   record["workLocation"],
		CompanyAddress: record["companyAddress"],
		MonthlySalary:  strings.TrimSpace(record["monthlySalary"]),
		TotalBonus:     strings.TrimSpace(record["totalBonus"]),
	}
}

// IsVisible は、会社が公開表示の対象かどうかを判定します。
// jobsSheetが空でなく、かつ掲載フラグが丸印であることが条件です。
// 求人ソースのない会社はリンク先がないため、フラグに関わらず非表示になります。
func (c Company) IsVisible() bool {
	if c.JobsSheet == "" {
		return false
	}
	for _, mark := range showCompanyMarks {
		if c.ShowCompany == mark {
			return true
		}
	}
	return false
}

// PseudoJob は、会社自身のフィールドから擬似的な求人レコードを作ります。
// 求人ソースが解決できない、または求人がすべてフィルタされた会社でも、
// 会社単体で表示を続けるためのフォールバックです。
func (c Company) PseudoJob() Job {
	return Job{
		Title:          c.Company,
		Location:       c.WorkLocation,
		TotalBonus:     c.TotalBonus,
		MonthlySalary:  c.MonthlySalary,
		Visible:        true,
		Order:          c.Order,
		JobDescription: c.JobDescription,
		WorkingHours:   c.WorkingHours,
		Company:        c.Company,
		CompanyDomain:  c.CompanyDomain,
	}
}
