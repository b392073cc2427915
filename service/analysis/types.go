package analysis

import (
	"context"
	"errors"

	"github.com/elC0mpa/cloud-finance/model"
)

// ErrNoData is returned when a report needs at least one day of costs
var ErrNoData = errors.New("no billing data in range")

// CostSource returns bill line items for an inclusive date range
type CostSource interface {
	GetBillingItems(ctx context.Context, beginDate, endDate string) ([]model.BillingItem, error)
}

type service struct {
	source CostSource
}

type AnalysisService interface {
	GetBillingData(ctx context.Context, beginDate, endDate string) (*model.BillingData, error)
	GetDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyCostSummary, error)
	AnalyzeDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyAnalysis, error)
	DetectAnomalies(ctx context.Context, beginDate, endDate string, threshold float64) (*model.AnomalyReport, error)
	CompareWithBudget(ctx context.Context, beginDate, endDate string, dailyBudget float64) (*model.BudgetComparison, error)
	FullAnalysis(ctx context.Context, beginDate, endDate string) (*model.FullAnalysis, error)
}
