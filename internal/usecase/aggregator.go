package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nrad-K/go-jobfeed/internal/config"
	"github.com/nrad-K/go-jobfeed/internal/domain/model"
	"github.com/nrad-K/go-jobfeed/internal/domain/repository"
	"github.com/nrad-K/go-jobfeed/internal/infra"
	"github.com/nrad-K/go-jobfeed/internal/logger"
	"github.com/nrad-K/go-jobfeed/internal/metrics"
)

// FeedAggregator は、複数のスプレッドシートフィードを統合して
// すべてのページが消費する会社・求人ビューを作るインターフェースです。
//
// 失敗の扱い: 取得・解析の失敗はこの境界でエラー値として返します
// （パニックは起こしません）。呼び出し側はnilの結果を
// 「リトライ導線を表示する」合図として扱います。
type FeedAggregator interface {
	FetchCompanies(ctx context.Context) ([]model.Company, error)
	FetchCompanyJobs(ctx context.Context, sheetRef string) ([]model.Job, error)
	FetchAllJobs(ctx context.Context) ([]model.Job, error)
	FetchCompaniesWithDisplayFields(ctx context.Context) ([]model.Company, error)
}

// AggregatorArgsは、アグリゲーターユースケースを構築するための引数を保持します。
//
// フィールド:
//
//	Cfg     : フィードパイプラインの設定情報
//	Repo    : フィードドキュメントのリポジトリ
//	Parser  : CSVレコードパーサー
//	Salary  : 給与抽出パーサー
//	Logger  : ロガー
//	Metrics : メトリクスコレクター
type AggregatorArgs struct {
	Cfg     config.FeedConfig
	Repo    repository.FeedRepository
	Parser  infra.RecordParser
	Salary  infra.SalaryParser
	Logger  logger.AppLogger
	Metrics metrics.Collector
}

type feedAggregator struct {
	cfg     config.FeedConfig
	repo    repository.FeedRepository
	parser  infra.RecordParser
	salary  infra.SalaryParser
	logger  logger.AppLogger
	metrics metrics.Collector
}

// NewFeedAggregatorは、feedAggregatorの新しいインスタンスを生成します。
func NewFeedAggregator(args AggregatorArgs) *feedAggregator {
	return &feedAggregator{
		cfg:     args.Cfg,
		repo:    args.Repo,
		parser:  args.Parser,
		salary:  args.Salary,
		logger:  args.Logger,
		metrics: args.Metrics,
	}
}

// FetchCompaniesは、会社一覧フィードを取得・解析し、order昇順の
// 会社レコード列を返します。取得に失敗した場合はnilとエラーを返します。
// レコードは毎回新しく構築され、キャッシュはリポジトリ層に委ねます。
func (a *feedAggregator) FetchCompanies(ctx context.Context) ([]model.Company, error) {
	doc, err := a.repo.FetchDocument(ctx, a.cfg.CompanyFeedURL)
	if err != nil {
		a.metrics.RecordFetchFailure()
		a.logger.Error("会社フィードの取得に失敗しました", "url", a.cfg.CompanyFeedURL, "error", err)
		return nil, fmt.Errorf("会社フィードの取得に失敗しました: %w", err)
	}
	a.metrics.RecordFetchSuccess()

	records := a.parser.ParseRecords(doc, a.cfg.CompanyHeaderRow, a.cfg.CompanyDataStartRow)
	companies := make([]model.Company, 0, len(records))
	for _, record := range records {
		company := model.BuildCompany(record)
		if company.ImageURL == "" {
			company.ImageURL = a.cfg.DefaultImagePath
		}
		companies = append(companies, company)
	}

	model.SortCompaniesByOrder(companies)
	return companies, nil
}

// FetchCompanyJobsは、会社レコードのjobsSheet参照を解決して求人シートを
// 取得・解析し、order昇順の求人レコード列を返します。
// 参照は裸のスプレッドシートIDと完全なURLのどちらも受け付けます。
// 可視性・掲載期間のフィルタはここでは行いません（呼び出し側の責務）。
func (a *feedAggregator) FetchCompanyJobs(ctx context.Context, sheetRef string) ([]model.Job, error) {
	sheetID, ok := infra.ExtractSheetID(sheetRef)
	if !ok {
		return nil, fmt.Errorf("求人シートの参照を解決できませんでした: %q", sheetRef)
	}

	url := infra.SheetCSVExportURL(a.cfg.SheetExportURLFormat, sheetID)
	doc, err := a.repo.FetchDocument(ctx, url)
	if err != nil {
		a.metrics.RecordFetchFailure()
		return nil, fmt.Errorf("求人シートの取得に失敗しました: %w", err)
	}
	a.metrics.RecordFetchSuccess()

	records := a.parser.ParseRecords(doc, a.cfg.JobHeaderRow, a.cfg.JobDataStartRow)
	jobs := make([]model.Job, 0, len(records))
	for _, record := range records {
		job := model.BuildJob(record)
		if job.HasBrokenPublishDate() {
			// フェイルオープン: 壊れた日付は制約なしとして掲載を続ける
			a.metrics.RecordBrokenDate()
			a.logger.Warn("掲載期間の日付を解釈できないため期間制約なしとして扱います",
				"job_id", job.ID,
				"publish_start_date", job.PublishStartDate,
				"publish_end_date", job.PublishEndDate,
			)
		}
		jobs = append(jobs, job)
	}

	model.SortJobsByOrder(jobs)
	return jobs, nil
}

// FetchAllJobsは、掲載対象のすべての会社の掲載中求人を1つの列に統合します。
// 各求人には親会社のcompany/companyDomainがスタンプされます。
// 1社の求人フィードの失敗は他の会社を中断させません（部分的な結果を返します）。
// 結果は会社のorder→求人のorderの順で決定的に並びます。
func (a *feedAggregator) FetchAllJobs(ctx context.Context) ([]model.Job, error) {
	visible, err := a.fetchVisibleCompanies(ctx)
	if err != nil {
		return nil, err
	}

	results := a.fetchJobsPerCompany(ctx, visible)

	today := model.Today()
	all := make([]model.Job, 0, 64)
	for i, company := range visible {
		live := model.FilterLiveJobs(stampJobs(results[i], company), today)
		all = append(all, live...)
	}

	a.logger.Info("全求人ビューを構築しました", "companies", len(visible), "jobs", len(all))
	return all, nil
}

// FetchCompaniesWithDisplayFieldsは、掲載対象の会社に一覧・ホーム表示用の
// 代表値を付与して返します。
//
//	_displayTotalBonus    : その会社の先頭（order最小）の掲載中求人のtotalBonus
//	_displayMonthlySalary : 掲載中求人のmonthlySalaryの最大値（元の文字列）。
//	                        使える金額がない場合は会社自身のmonthlySalary。
//
// 求人ソースが解決できない、または求人がすべてフィルタされた会社は、
// 会社自身のフィールドから作った擬似求人1件で表示を続けます。
func (a *feedAggregator) FetchCompaniesWithDisplayFields(ctx context.Context) ([]model.Company, error) {
	visible, err := a.fetchVisibleCompanies(ctx)
	if err != nil {
		return nil, err
	}

	results := a.fetchJobsPerCompany(ctx, visible)

	today := model.Today()
	for i := range visible {
		jobs := model.FilterLiveJobs(stampJobs(results[i], visible[i]), today)
		if len(jobs) == 0 {
			jobs = []model.Job{visible[i].PseudoJob()}
		}

		visible[i].DisplayTotalBonus = jobs[0].TotalBonus
		if salary := a.salary.MaxMonthlySalary(jobs); salary != "" {
			visible[i].DisplayMonthlySalary = salary
		} else {
			visible[i].DisplayMonthlySalary = visible[i].MonthlySalary
		}
	}

	return visible, nil
}

// fetchVisibleCompaniesは、会社フィードを取得して掲載対象の会社だけを返します。
// 返り値はorder昇順です。
func (a *feedAggregator) fetchVisibleCompanies(ctx context.Context) ([]model.Company, error) {
	companies, err := a.FetchCompanies(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]model.Company, 0, len(companies))
	for _, company := range companies {
		if company.IsVisible() {
			visible = append(visible, company)
		}
	}
	return visible, nil
}

// fetchJobsPerCompanyは、各会社の求人シートを並列に取得します。
// 結果は会社のインデックスで返すため、フェッチの完了順に関わらず
// 呼び出し側は会社のorder順で決定的に再結合できます。
// 取得に失敗した会社のスロットはnilのままです。
func (a *feedAggregator) fetchJobsPerCompany(ctx context.Context, companies []model.Company) [][]model.Job {
	results := make([][]model.Job, len(companies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.MaxWorkers)

	for i, company := range companies {
		g.Go(func() error {
			jobs, err := a.FetchCompanyJobs(gctx, company.JobsSheet)
			if err != nil {
				// 1社の失敗で全体を止めない
				a.logger.Warn("会社の求人フィードの取得に失敗したためスキップします",
					"company_domain", company.CompanyDomain,
					"error", err,
				)
				return nil
			}
			results[i] = jobs
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// stampJobsは、求人レコードに親会社のcompany/companyDomainを付与します。
func stampJobs(jobs []model.Job, company model.Company) []model.Job {
	stamped := make([]model.Job, len(jobs))
	for i, job := range jobs {
		job.Company = company.Company
		job.CompanyDomain = company.CompanyDomain
		stamped[i] = job
	}
	return stamped
}
