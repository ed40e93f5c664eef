package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job は、1件の求人を表すレコードです。常にちょうど1つの会社レコードに
// CompanyDomainでひも付きます（ひも付けは求人シート側ではなく
// アグリゲーターが行います）。
// フィードを取得するたびに新しく構築され、キャッシュや書き換えはされません。
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	TotalBonus       string   `json:"totalBonus"`
	MonthlySalary    string   `json:"monthlySalary"`
	Salary           string   `json:"salary"`
	Features         []string `json:"features"`
	Badges           string   `json:"badges"`
	Visible          bool     `json:"visible"`
	Order            int      `json:"order"`
	PublishStartDate string   `json:"publishStartDate"`
	PublishEndDate   string   `json:"publishEndDate"`
	JobDescription   string   `json:"jobDescription"`
	Requirements     string   `json:"requirements"`
	Benefits         string   `json:"benefits"`
	WorkingHours     string   `json:"workingHours"`
	Holidays         string   `json:"holidays"`
	EmploymentType   string   `json:"employmentType"`
	Skills           string   `json:"skills"`
	JobType          string   `json:"jobType"`

	// アグリゲーターが親会社からスタンプするフィールド
	Company       string `json:"company"`
	CompanyDomain string `json:"companyDomain"`

	// 掲載期間の解釈結果。nilは「制約なし」（欠損または解釈不能）。
	publishStart *time.Time
	publishEnd   *time.Time
}

// BuildJob は、正規キーのレコードから求人レコードを構築します。
// 文字列型ブールの変換・features分割・order/日付の解釈はここで1回だけ行います。
// idカラムのないシートにはUUIDを採番します。
func BuildJob(record map[string]string) Job {
	id := strings.TrimSpace(record["id"])
	if id == "" {
		id = uuid.NewString()
	}

	job := Job{
		ID:               id,
		Title:            strings.TrimSpace(record["title"]),
		Location:         record["location"],
		TotalBonus:       strings.TrimSpace(record["totalBonus"]),
		MonthlySalary:    strings.TrimSpace(record["monthlySalary"]),
		Salary:           strings.TrimSpace(record["salary"]),
		Features:         SplitFeatures(record["features"]),
		Badges:           record["badges"],
		Visible:          FlagBool(strings.TrimSpace(record["visible"])),
		Order:            ParseOrder(record["order"]),
		PublishStartDate: strings.TrimSpace(record["publishStartDate"]),
		PublishEndDate:   strings.TrimSpace(record["publishEndDate"]),
		JobDescription:   record["jobDescription"],
		Requirements:     record["requirements"],
		Benefits:         record["benefits"],
		WorkingHours:     record["workingHours"],
		Holidays:         record["holidays"],
		EmploymentType:   record["employmentType"],
		Skills:           record["skills"],
		JobType:          record["jobType"],
	}

	if t, ok := ParseFeedDate(job.PublishStartDate); ok {
		job.publishStart = &t
	}
	if t, ok := ParseFeedDate(job.PublishEndDate); ok {
		job.publishEnd = &t
	}

	return job
}

// InPublishPeriod は、基準日（ローカルタイムの0時）が掲載期間内かどうかを
// 判定します。開始日・終了日とも当日を含みます。
// 解釈できない日付は制約として扱いません（掲載を続けることが業務上の優先事項）。
func (j Job) InPublishPeriod(today time.Time) bool {
	if j.publishStart != nil && j.publishStart.After(today) {
		return false
	}
	if j.publishEnd != nil && j.publishEnd.Before(today) {
		return false
	}
	return true
}

// HasBrokenPublishDate は、掲載期間フィールドに値があるのに日付として
// 解釈できなかったかどうかを返します。フェイルオープンの挙動は維持しつつ、
// 呼び出し側が警告ログで可観測性を確保するために使います。
func (j Job) HasBrokenPublishDate() bool {
	brokenStart := j.PublishStartDate != "" && j.publishStart == nil
	brokenEnd := j.PublishEndDate != "" && j.publishEnd == nil
	return brokenStart || brokenEnd
}

// IsLive は、求人が公開表示の対象かどうかを判定します。
// visibleフラグと掲載期間チェックの両方を満たす必要があります。
func (j Job) IsLive(today time.Time) bool {
	return j.Visible && j.InPublishPeriod(today)
}

// FilterLiveJobs は、公開対象の求人だけを抽出しorder昇順で安定ソートして返します。
func FilterLiveJobs(jobs []Job, today time.Time) []Job {
	live := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if job.IsLive(today) {
			live = append(live, job)
		}
	}
	SortJobsByOrder(live)
	return live
}
