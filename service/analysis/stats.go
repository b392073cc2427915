package analysis

import (
	"math"
	"sort"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/shopspring/decimal"
)

// DefaultThreshold is the z-score above which a day counts as an anomaly
const DefaultThreshold = 2.0

// minAnomalyDays is the shortest history anomaly detection runs on
const minAnomalyDays = 7

// SumDaily totals the item costs per day
func SumDaily(items []model.BillingItem) model.DailyCosts {
	sums := map[string]decimal.Decimal{}
	for _, item := range items {
		sums[item.Date] = sums[item.Date].Add(decimalOf(item.Cost))
	}

	daily := make(model.DailyCosts, len(sums))
	for date, sum := range sums {
		daily[date] = sum.Round(2).InexactFloat64()
	}
	return daily
}

// Total sums the daily costs rounded to cents
func Total(daily model.DailyCosts) float64 {
	total := decimal.Zero
	for _, cost := range daily {
		total = total.Add(decimalOf(cost))
	}
	return total.Round(2).InexactFloat64()
}

// AnalyzeDaily levels each day against mean plus or minus one standard deviation
func AnalyzeDaily(daily model.DailyCosts) (*model.DailyAnalysis, error) {
	if len(daily) == 0 {
		return nil, ErrNoData
	}

	dates := daily.Dates()
	costs := valuesOf(daily, dates)
	mean, std := meanStd(costs)

	days := make([]model.DailyLevel, 0, len(dates))
	for i, date := range dates {
		cost := costs[i]
		level := model.LevelNormal
		switch {
		case cost > mean+std:
			level = model.LevelHigh
		case cost < mean-std:
			level = model.LevelLow
		}

		deviation := 0.0
		if mean != 0 {
			deviation = (cost - mean) / mean * 100
		}

		days = append(days, model.DailyLevel{
			Date:         date,
			Cost:         round2(cost),
			Level:        level,
			DeviationPct: round2(deviation),
		})
	}

	return &model.DailyAnalysis{
		Days: days,
		Statistics: model.CostStatistics{
			Mean:      round2(mean),
			Median:    round2(median(costs)),
			Std:       round2(std),
			Min:       round2(minOf(costs)),
			Max:       round2(maxOf(costs)),
			TotalDays: len(costs),
		},
	}, nil
}

// DetectAnomalies returns the days whose z-score magnitude exceeds threshold.
// Histories shorter than a week and flat histories have no anomalies.
func DetectAnomalies(daily model.DailyCosts, threshold float64) []model.Anomaly {
	anomalies := []model.Anomaly{}
	if len(daily) < minAnomalyDays {
		return anomalies
	}

	dates := daily.Dates()
	costs := valuesOf(daily, dates)
	mean, std := meanStd(costs)
	if std == 0 {
		return anomalies
	}

	for i, date := range dates {
		z := (costs[i] - mean) / std
		if math.Abs(z) <= threshold {
			continue
		}
		status := model.LevelLow
		if z > 0 {
			status = model.LevelHigh
		}
		anomalies = append(anomalies, model.Anomaly{
			Date:   date,
			Cost:   round2(costs[i]),
			ZScore: round2(z),
			Status: status,
		})
	}
	return anomalies
}

// CompareWithBaseline compares each day with a fixed daily budget
func CompareWithBaseline(daily model.DailyCosts, baseline float64) (*model.BudgetComparison, error) {
	if len(daily) == 0 {
		return nil, ErrNoData
	}

	dates := daily.Dates()
	days := make([]model.BudgetDay, 0, len(dates))
	overBudget := 0
	for _, date := range dates {
		cost := daily[date]
		diff := cost - baseline
		diffPct := 0.0
		if baseline > 0 {
			diffPct = diff / baseline * 100
		}

		status := model.StatusWithinBudget
		if cost > baseline {
			status = model.StatusOverBudget
			overBudget++
		}

		days = append(days, model.BudgetDay{
			Date:          date,
			Cost:          round2(cost),
			Baseline:      baseline,
			Difference:    round2(diff),
			DifferencePct: round2(diffPct),
			Status:        status,
		})
	}

	total := Total(daily)
	totalBaseline := baseline * float64(len(dates))
	return &model.BudgetComparison{
		Days: days,
		Summary: model.BudgetSummary{
			TotalCost:       total,
			TotalBaseline:   round2(totalBaseline),
			TotalDifference: round2(total - totalBaseline),
			OverBudgetDays:  overBudget,
			TotalDays:       len(dates),
			OverBudgetRate:  round2(float64(overBudget) / float64(len(dates)) * 100),
		},
	}, nil
}

func valuesOf(daily model.DailyCosts, dates []string) []float64 {
	values := make([]float64, len(dates))
	for i, date := range dates {
		values[i] = daily[date]
	}
	return values
}

// meanStd returns the mean and the sample standard deviation.
// A single value has zero deviation.
func meanStd(values []float64) (float64, float64) {
	n := float64(len(values))
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / n
	if len(values) < 2 {
		return mean, 0
	}

	sq := 0.0
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / (n - 1))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = math.Max(m, v)
	}
	return m
}

func round2(v float64) float64 {
	return decimalOf(v).Round(2).InexactFloat64()
}

func decimalOf(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
