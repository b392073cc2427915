package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/elC0mpa/cloud-finance/config"
	"github.com/elC0mpa/cloud-finance/model"
	"github.com/rs/zerolog"
)

var fixedTime = time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)

type call struct {
	op        string
	beginTime string
	endTime   string
	payMode   string
}

type fakeFinance struct {
	data  json.RawMessage
	err   error
	calls []call
}

func (f *fakeFinance) result(c call) (json.RawMessage, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func (f *fakeFinance) GetBillOverview(ctx context.Context, beginTime, endTime string) (json.RawMessage, error) {
	return f.result(call{op: "overview", beginTime: beginTime, endTime: endTime})
}

func (f *fakeFinance) GetBillDetails(ctx context.Context, beginTime, endTime, payMode string) (json.RawMessage, error) {
	return f.result(call{op: "details", beginTime: beginTime, endTime: endTime, payMode: payMode})
}

func (f *fakeFinance) GetCostStatistics(ctx context.Context, beginTime, endTime string) (json.RawMessage, error) {
	return f.result(call{op: "statistics", beginTime: beginTime, endTime: endTime})
}

func (f *fakeFinance) GetAccountBalance(ctx context.Context) (json.RawMessage, error) {
	return f.result(call{op: "balance"})
}

func (f *fakeFinance) GetConsumptionTrend(ctx context.Context, beginTime, endTime string) (json.RawMessage, error) {
	return f.result(call{op: "trend", beginTime: beginTime, endTime: endTime})
}

func testConfig(withCredentials bool, lang string) *config.Config {
	cfg := &config.Config{
		Credentials:     model.Credentials{Region: config.DefaultRegion},
		DefaultLanguage: lang,
	}
	if withCredentials {
		cfg.Credentials.SecretID = "test-id"
		cfg.Credentials.SecretKey = "test-key"
	}
	return cfg
}

func newTestService(t *testing.T, finance *fakeFinance, withCredentials bool) *gatewayService {
	t.Helper()
	return NewService(testConfig(withCredentials, "en"), finance, zerolog.Nop(), WithClock(func() time.Time { return fixedTime }))
}

type analysisCall struct {
	op        string
	beginDate string
	endDate   string
	threshold float64
	budget    float64
}

type fakeAnalysis struct {
	err   error
	calls []analysisCall
}

func (f *fakeAnalysis) record(c analysisCall) error {
	f.calls = append(f.calls, c)
	return f.err
}

func (f *fakeAnalysis) levels() *model.DailyAnalysis {
	return &model.DailyAnalysis{
		Days: []model.DailyLevel{
			{Date: "2024-03-01", Cost: 30, Level: model.LevelHigh},
			{Date: "2024-03-02", Cost: 20, Level: model.LevelNormal},
			{Date: "2024-03-03", Cost: 10, Level: model.LevelLow},
		},
		Statistics: model.CostStatistics{Mean: 20, Median: 20, Std: 10, Min: 10, Max: 30, TotalDays: 3},
	}
}

func (f *fakeAnalysis) GetBillingData(ctx context.Context, beginDate, endDate string) (*model.BillingData, error) {
	if err := f.record(analysisCall{op: "billing", beginDate: beginDate, endDate: endDate}); err != nil {
		return nil, err
	}
	return &model.BillingData{StartDate: beginDate, EndDate: endDate, Items: []model.BillingItem{}, DailyCosts: model.DailyCosts{}}, nil
}

func (f *fakeAnalysis) GetDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyCostSummary, error) {
	if err := f.record(analysisCall{op: "daily", beginDate: beginDate, endDate: endDate}); err != nil {
		return nil, err
	}
	return &model.DailyCostSummary{StartDate: beginDate, EndDate: endDate, DailyCosts: model.DailyCosts{"2024-03-01": 12.5}, TotalCost: 12.5, DaysCount: 1}, nil
}

func (f *fakeAnalysis) AnalyzeDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyAnalysis, error) {
	if err := f.record(analysisCall{op: "analyze", beginDate: beginDate, endDate: endDate}); err != nil {
		return nil, err
	}
	return f.levels(), nil
}

func (f *fakeAnalysis) DetectAnomalies(ctx context.Context, beginDate, endDate string, threshold float64) (*model.AnomalyReport, error) {
	if err := f.record(analysisCall{op: "anomalies", beginDate: beginDate, endDate: endDate, threshold: threshold}); err != nil {
		return nil, err
	}
	return &model.AnomalyReport{StartDate: beginDate, EndDate: endDate, Threshold: threshold, Anomalies: []model.Anomaly{}}, nil
}

func (f *fakeAnalysis) CompareWithBudget(ctx context.Context, beginDate, endDate string, dailyBudget float64) (*model.BudgetComparison, error) {
	if err := f.record(analysisCall{op: "budget", beginDate: beginDate, endDate: endDate, budget: dailyBudget}); err != nil {
		return nil, err
	}
	return &model.BudgetComparison{Days: []model.BudgetDay{}}, nil
}

func (f *fakeAnalysis) FullAnalysis(ctx context.Context, beginDate, endDate string) (*model.FullAnalysis, error) {
	if err := f.record(analysisCall{op: "full", beginDate: beginDate, endDate: endDate}); err != nil {
		return nil, err
	}
	return &model.FullAnalysis{
		DateRange:     model.DateRange{Start: beginDate, End: endDate},
		DailyAnalysis: f.levels(),
		Anomalies:     []model.Anomaly{},
	}, nil
}

func newAnalysisTestService(t *testing.T, reports *fakeAnalysis, withCredentials bool, lang string) *gatewayService {
	t.Helper()
	return NewService(testConfig(withCredentials, lang), &fakeFinance{}, zerolog.Nop(),
		WithClock(func() time.Time { return fixedTime }),
		WithAnalysis(reports),
	)
}
