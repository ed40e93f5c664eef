package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nrad-K/go-jobfeed/internal/domain/model"
	"github.com/nrad-K/go-jobfeed/internal/logger"
	"github.com/nrad-K/go-jobfeed/internal/usecase"
)

// FeedHandler は、集約済みの会社・求人ビューを返すHTTPハンドラーです。
// フィードの取得に失敗した場合は502とリトライ可能を示すボディを返し、
// 表示側がリロード導線を出せるようにします。
type FeedHandler struct {
	aggregator usecase.FeedAggregator
	logger     logger.AppLogger
}

// NewFeedHandler は、FeedHandlerを生成します。
func NewFeedHandler(aggregator usecase.FeedAggregator, appLogger logger.AppLogger) *FeedHandler {
	return &FeedHandler{
		aggregator: aggregator,
		logger:     appLogger,
	}
}

// apiErrorResponse は、エラーレスポンスのボディです。
type apiErrorResponse struct {
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

// Companies は、掲載対象の会社一覧を表示用の代表値付きで返します。
//
//	GET /api/companies
func (h *FeedHandler) Companies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.aggregator.FetchCompaniesWithDisplayFields(r.Context())
	if err != nil {
		h.writeFetchError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, companies)
}

// AllJobs は、全会社の掲載中求人の統合ビューを返します。
//
//	GET /api/jobs
func (h *FeedHandler) AllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.aggregator.FetchAllJobs(r.Context())
	if err != nil {
		h.writeFetchError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, jobs)
}

// CompanyJobs は、指定ドメインの会社の掲載中求人を返します。
// 会社が存在しない、または掲載対象でない場合は404です。
//
//	GET /api/companies/{companyDomain}/jobs
func (h *FeedHandler) CompanyJobs(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "companyDomain")

	companies, err := h.aggregator.FetchCompanies(r.Context())
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	var found *model.Company
	for i := range companies {
		if companies[i].CompanyDomain == domain && companies[i].IsVisible() {
			found = &companies[i]
			break
		}
	}
	if found == nil {
		h.writeJSON(w, http.StatusNotFound, apiErrorResponse{Message: "会社が見つかりません", Retry: false})
		return
	}

	jobs, err := h.aggregator.FetchCompanyJobs(r.Context(), found.JobsSheet)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	live := model.FilterLiveJobs(jobs, model.Today())
	for i := range live {
		live[i].Company = found.Company
		live[i].CompanyDomain = found.CompanyDomain
	}

	// 求人がすべてフィルタされた会社でも擬似求人1件で表示を続ける
	if len(live) == 0 {
		live = []model.Job{found.PseudoJob()}
	}

	h.writeJSON(w, http.StatusOK, live)
}

// Healthz は、死活監視用のエンドポイントです。
//
//	GET /healthz
func (h *FeedHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *FeedHandler) writeFetchError(w http.ResponseWriter, err error) {
	h.logger.Error("フィードビューの構築に失敗しました", "error", err)
	h.writeJSON(w, http.StatusBadGateway, apiErrorResponse{
		Message: "フィードを取得できませんでした。時間をおいて再読み込みしてください。",
		Retry:   true,
	})
}

func (h *FeedHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("レスポンスの書き込みに失敗しました", "error", err)
	}
}
