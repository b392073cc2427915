package analysis

import (
	"context"

	"github.com/elC0mpa/cloud-finance/model"
)

func NewService(source CostSource) *service {
	return &service{source: source}
}

// GetBillingData returns the line items of the range with their daily totals
func (s *service) GetBillingData(ctx context.Context, beginDate, endDate string) (*model.BillingData, error) {
	items, err := s.source.GetBillingItems(ctx, beginDate, endDate)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.BillingItem{}
	}

	daily := SumDaily(items)
	return &model.BillingData{
		StartDate:  beginDate,
		EndDate:    endDate,
		Items:      items,
		DailyCosts: daily,
		TotalCost:  Total(daily),
	}, nil
}

// GetDailyCosts returns only the daily totals of the range
func (s *service) GetDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyCostSummary, error) {
	daily, err := s.dailyCosts(ctx, beginDate, endDate)
	if err != nil {
		return nil, err
	}

	return &model.DailyCostSummary{
		StartDate:  beginDate,
		EndDate:    endDate,
		DailyCosts: daily,
		TotalCost:  Total(daily),
		DaysCount:  len(daily),
	}, nil
}

func (s *service) AnalyzeDailyCosts(ctx context.Context, beginDate, endDate string) (*model.DailyAnalysis, error) {
	daily, err := s.dailyCosts(ctx, beginDate, endDate)
	if err != nil {
		return nil, err
	}
	return AnalyzeDaily(daily)
}

func (s *service) DetectAnomalies(ctx context.Context, beginDate, endDate string, threshold float64) (*model.AnomalyReport, error) {
	daily, err := s.dailyCosts(ctx, beginDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(daily) == 0 {
		return nil, ErrNoData
	}

	anomalies := DetectAnomalies(daily, threshold)
	return &model.AnomalyReport{
		StartDate:    beginDate,
		EndDate:      endDate,
		Threshold:    threshold,
		Anomalies:    anomalies,
		AnomalyCount: len(anomalies),
	}, nil
}

func (s *service) CompareWithBudget(ctx context.Context, beginDate, endDate string, dailyBudget float64) (*model.BudgetComparison, error) {
	daily, err := s.dailyCosts(ctx, beginDate, endDate)
	if err != nil {
		return nil, err
	}
	return CompareWithBaseline(daily, dailyBudget)
}

// FullAnalysis runs the cost levels and the anomaly scan with the default threshold
func (s *service) FullAnalysis(ctx context.Context, beginDate, endDate string) (*model.FullAnalysis, error) {
	daily, err := s.dailyCosts(ctx, beginDate, endDate)
	if err != nil {
		return nil, err
	}

	levels, err := AnalyzeDaily(daily)
	if err != nil {
		return nil, err
	}

	return &model.FullAnalysis{
		DateRange: model.DateRange{Start: beginDate, End: endDate},
		BillingSummary: model.BillingSummary{
			TotalCost: Total(daily),
			DaysCount: len(daily),
		},
		DailyAnalysis: levels,
		Anomalies:     DetectAnomalies(daily, DefaultThreshold),
	}, nil
}

func (s *service) dailyCosts(ctx context.Context, beginDate, endDate string) (model.DailyCosts, error) {
	items, err := s.source.GetBillingItems(ctx, beginDate, endDate)
	if err != nil {
		return nil, err
	}
	return SumDaily(items), nil
}
