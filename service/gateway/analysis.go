package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
	"github.com/elC0mpa/cloud-finance/service/analysis"
)

const (
	paramAnalysis    = "analysis"
	paramBeginTime   = "beginTime"
	paramEndTime     = "endTime"
	paramThreshold   = "threshold"
	paramDailyBudget = "dailyBudget"

	dateLayout = "2006-01-02"

	// DefaultLookbackDays is the range analyses cover when no dates are given
	DefaultLookbackDays = 30
)

// analysisParams is an AnalysisRequest after validation
type analysisParams struct {
	analysis    model.Analysis
	beginDate   string
	endDate     string
	threshold   float64
	dailyBudget float64
}

// Analyze runs one cost report with descriptions in the default language
func (s *gatewayService) Analyze(ctx context.Context, req model.AnalysisRequest) (any, error) {
	return s.analyze(ctx, req, s.localizer.Default())
}

// RespondAnalysis runs the cost report and maps its outcome like Respond
func (s *gatewayService) RespondAnalysis(ctx context.Context, req model.AnalysisRequest, p *Printer) Result {
	if p == nil {
		p = s.localizer.Default()
	}

	report, err := s.analyze(ctx, req, p)
	if err != nil {
		return s.failure(err, p)
	}

	data, err := json.Marshal(report)
	if err != nil {
		s.logger.Error().Err(err).Str("analysis", req.Analysis).Msg("failed to encode analysis")
		return s.failure(err, p)
	}
	return Result{Status: http.StatusOK, Envelope: response.Success(data, s.now())}
}

func (s *gatewayService) analyze(ctx context.Context, req model.AnalysisRequest, p *Printer) (any, error) {
	if !s.cfg.HasCredentials() || s.analysis == nil {
		return nil, s.reject(&model.QueryError{Kind: model.KindConfiguration})
	}

	params, qe := s.analysisParams(req)
	if qe != nil {
		return nil, s.reject(qe)
	}

	report, err := s.runAnalysis(ctx, params)
	if errors.Is(err, analysis.ErrNoData) {
		return nil, s.reject(&model.QueryError{Kind: model.KindNoData, Err: err})
	}
	if err != nil {
		s.logger.Error().Err(err).Str("analysis", params.analysis.String()).Msg("upstream billing fetch failed")
		return nil, &model.QueryError{Kind: model.KindUpstream, Err: err}
	}

	describe(report, p)
	s.logger.Debug().
		Str("analysis", params.analysis.String()).
		Str("begin", params.beginDate).
		Str("end", params.endDate).
		Msg("analysis succeeded")
	return report, nil
}

// analysisParams validates req. Dates default to the lookback window ending
// today when either is missing.
func (s *gatewayService) analysisParams(req model.AnalysisRequest) (*analysisParams, *model.QueryError) {
	kind, ok := model.ParseAnalysis(req.Analysis)
	if !ok {
		return nil, &model.QueryError{Kind: model.KindInvalidArgument, Param: paramAnalysis}
	}
	params := &analysisParams{analysis: kind, threshold: analysis.DefaultThreshold}

	begin, end := strings.TrimSpace(req.BeginTime), strings.TrimSpace(req.EndTime)
	if begin == "" || end == "" {
		today := s.now()
		end = today.Format(dateLayout)
		begin = today.AddDate(0, 0, -DefaultLookbackDays).Format(dateLayout)
	}
	beginDate, err := time.Parse(dateLayout, begin)
	if err != nil {
		return nil, &model.QueryError{Kind: model.KindInvalidArgument, Param: paramBeginTime, Err: err}
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, &model.QueryError{Kind: model.KindInvalidArgument, Param: paramEndTime, Err: err}
	}
	if beginDate.After(endDate) {
		return nil, &model.QueryError{Kind: model.KindInvalidArgument, Param: paramBeginTime}
	}
	params.beginDate, params.endDate = begin, end

	if t := strings.TrimSpace(req.Threshold); t != "" {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil || !(v > 0) || v > maxParam {
			return nil, &model.QueryError{Kind: model.KindInvalidArgument, Param: paramThreshold, Err: err}
		}
		params.threshold = v
	}

	if kind == model.AnalysisBudgetComparison {
		b := strings.TrimSpace(req.DailyBudget)
		if b == "" {
			return nil, &model.QueryError{Kind: model.KindMissingParameter, Param: paramDailyBudget}
		}
		v, err := strconv.ParseFloat(b, 64)
		if err != nil || !(v >= 0) || v > maxParam {
			return nil, &model.QueryError{Kind: model.KindInvalidArgument, Param: paramDailyBudget, Err: err}
		}
		params.dailyBudget = v
	}

	return params, nil
}

// maxParam keeps numeric parameters finite
const maxParam = 1e15

func (s *gatewayService) runAnalysis(ctx context.Context, params *analysisParams) (any, error) {
	begin, end := params.beginDate, params.endDate
	switch params.analysis {
	case model.AnalysisBillingData:
		return s.analysis.GetBillingData(ctx, begin, end)
	case model.AnalysisDailyCosts:
		return s.analysis.GetDailyCosts(ctx, begin, end)
	case model.AnalysisCostLevels:
		return s.analysis.AnalyzeDailyCosts(ctx, begin, end)
	case model.AnalysisAnomalies:
		return s.analysis.DetectAnomalies(ctx, begin, end, params.threshold)
	case model.AnalysisBudgetComparison:
		return s.analysis.CompareWithBudget(ctx, begin, end, params.dailyBudget)
	case model.AnalysisFull:
		return s.analysis.FullAnalysis(ctx, begin, end)
	}
	return nil, &model.QueryError{Kind: model.KindInvalidArgument, Param: paramAnalysis}
}

// describe fills the localized level descriptions of a report
func describe(report any, p *Printer) {
	var levels *model.DailyAnalysis
	switch r := report.(type) {
	case *model.DailyAnalysis:
		levels = r
	case *model.FullAnalysis:
		levels = r.DailyAnalysis
	}
	if levels == nil {
		return
	}
	for i := range levels.Days {
		levels.Days[i].Description = p.levelDescription(levels.Days[i].Level)
	}
}
