package service

import (
	"context"
	"encoding/json"

	"github.com/elC0mpa/cloud-finance/model"
)

// FinanceService runs the upstream finance operations. Results are the
// provider's raw JSON and errors are returned unchanged.
type FinanceService interface {
	GetBillOverview(ctx context.Context, beginTime, endTime string) (json.RawMessage, error)
	GetBillDetails(ctx context.Context, beginTime, endTime, payMode string) (json.RawMessage, error)
	GetCostStatistics(ctx context.Context, beginTime, endTime string) (json.RawMessage, error)
	GetAccountBalance(ctx context.Context) (json.RawMessage, error)
	GetConsumptionTrend(ctx context.Context, beginTime, endTime string) (json.RawMessage, error)
}

// AnalysisService computes cost reports from bill line items
type AnalysisService interface {
	GetBillingData(ctx context.Context, beginDate, endDate string) (*model.BillingData, error)
	GetDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyCostSummary, error)
	AnalyzeDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyAnalysis, error)
	DetectAnomalies(ctx context.Context, beginDate, endDate string, threshold float64) (*model.AnomalyReport, error)
	CompareWithBudget(ctx context.Context, beginDate, endDate string, dailyBudget float64) (*model.BudgetComparison, error)
	FullAnalysis(ctx context.Context, beginDate, endDate string) (*model.FullAnalysis, error)
}
