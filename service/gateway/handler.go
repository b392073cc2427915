package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
	"github.com/rs/zerolog"
)

type handler struct {
	svc    GatewayService
	logger zerolog.Logger
}

// NewHandler returns the HTTP adapter for the finance query endpoint
func NewHandler(svc GatewayService) http.Handler {
	return &handler{svc: svc, logger: svc.Logger()}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := h.svc.Localizer().Printer(q.Get("lang"), r.Header.Get("Accept-Language"))

	if r.Method != http.MethodGet {
		methodNotAllowed(w, p, h.logger)
		return
	}

	req := model.QueryRequest{
		Action:    q.Get("action"),
		BeginTime: q.Get("beginTime"),
		EndTime:   q.Get("endTime"),
		PayMode:   q.Get("payMode"),
	}

	result := h.svc.Respond(r.Context(), req, p)
	jsonResponse(w, h.logger, result.Status, result.Body())
}

type analysisHandler struct {
	svc      GatewayService
	analysis model.Analysis
	logger   zerolog.Logger
}

// NewAnalysisHandler returns the HTTP adapter for one cost report
func NewAnalysisHandler(svc GatewayService, analysis model.Analysis) http.Handler {
	return &analysisHandler{svc: svc, analysis: analysis, logger: svc.Logger()}
}

func (h *analysisHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := h.svc.Localizer().Printer(q.Get("lang"), r.Header.Get("Accept-Language"))

	if r.Method != http.MethodGet {
		methodNotAllowed(w, p, h.logger)
		return
	}

	req := model.AnalysisRequest{
		Analysis:    h.analysis.String(),
		BeginTime:   firstOf(q.Get("beginTime"), q.Get("start_date")),
		EndTime:     firstOf(q.Get("endTime"), q.Get("end_date")),
		Threshold:   q.Get("threshold"),
		DailyBudget: firstOf(q.Get("dailyBudget"), q.Get("daily_budget")),
	}

	result := h.svc.RespondAnalysis(r.Context(), req, p)
	jsonResponse(w, h.logger, result.Status, result.Body())
}

func methodNotAllowed(w http.ResponseWriter, p *Printer, logger zerolog.Logger) {
	w.Header().Set("Allow", http.MethodGet)
	jsonResponse(w, logger, http.StatusMethodNotAllowed, response.ErrorBody{
		Error: ErrorMessage(p, &model.QueryError{Kind: model.KindMethodNotAllowed}),
	})
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func jsonResponse(w http.ResponseWriter, logger zerolog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Debug().Err(err).Int("status", status).Msg("failed to encode response")
	}
}
