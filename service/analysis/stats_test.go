package analysis

import (
	"errors"
	"testing"

	"github.com/elC0mpa/cloud-finance/model"
)

func week(costs ...float64) model.DailyCosts {
	daily := model.DailyCosts{}
	for i, c := range costs {
		daily["2024-01-0"+string(rune('1'+i))] = c
	}
	return daily
}

func TestSumDaily(t *testing.T) {
	items := []model.BillingItem{
		{Date: "2024-01-01", Cost: 0.1},
		{Date: "2024-01-01", Cost: 0.2},
		{Date: "2024-01-02", Cost: 1.005},
	}

	daily := SumDaily(items)
	if len(daily) != 2 {
		t.Fatalf("expected 2 days, got %d", len(daily))
	}
	if daily["2024-01-01"] != 0.3 {
		t.Errorf("expected exact cent sum 0.3, got %v", daily["2024-01-01"])
	}
	if daily["2024-01-02"] != 1.01 {
		t.Errorf("expected rounded 1.01, got %v", daily["2024-01-02"])
	}
	if total := Total(daily); total != 1.31 {
		t.Errorf("expected total 1.31, got %v", total)
	}
	if got := SumDaily(nil); len(got) != 0 {
		t.Errorf("expected no days for no items, got %v", got)
	}
}

func TestAnalyzeDaily(t *testing.T) {
	tests := []struct {
		name       string
		daily      model.DailyCosts
		wantErr    error
		wantLevels []model.CostLevel
		wantDev    []float64
		wantStats  model.CostStatistics
	}{
		{
			name:    "empty",
			daily:   model.DailyCosts{},
			wantErr: ErrNoData,
		},
		{
			name:       "high and low days",
			daily:      week(1, 20, 20, 20, 39),
			wantLevels: []model.CostLevel{model.LevelLow, model.LevelNormal, model.LevelNormal, model.LevelNormal, model.LevelHigh},
			wantDev:    []float64{-95, 0, 0, 0, 95},
			wantStats:  model.CostStatistics{Mean: 20, Median: 20, Std: 13.44, Min: 1, Max: 39, TotalDays: 5},
		},
		{
			name:       "single day",
			daily:      week(5),
			wantLevels: []model.CostLevel{model.LevelNormal},
			wantDev:    []float64{0},
			wantStats:  model.CostStatistics{Mean: 5, Median: 5, Std: 0, Min: 5, Max: 5, TotalDays: 1},
		},
		{
			name:       "zero mean",
			daily:      week(0, 0),
			wantLevels: []model.CostLevel{model.LevelNormal, model.LevelNormal},
			wantDev:    []float64{0, 0},
			wantStats:  model.CostStatistics{TotalDays: 2},
		},
		{
			name:       "even count median",
			daily:      week(1, 2, 3, 4),
			wantLevels: []model.CostLevel{model.LevelLow, model.LevelNormal, model.LevelNormal, model.LevelHigh},
			wantDev:    []float64{-60, -20, 20, 60},
			wantStats:  model.CostStatistics{Mean: 2.5, Median: 2.5, Std: 1.29, Min: 1, Max: 4, TotalDays: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnalyzeDaily(tt.daily)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AnalyzeDaily failed: %v", err)
			}

			if len(got.Days) != len(tt.wantLevels) {
				t.Fatalf("expected %d days, got %d", len(tt.wantLevels), len(got.Days))
			}
			for i, day := range got.Days {
				if day.Level != tt.wantLevels[i] {
					t.Errorf("day %s: expected level %s, got %s", day.Date, tt.wantLevels[i], day.Level)
				}
				if day.DeviationPct != tt.wantDev[i] {
					t.Errorf("day %s: expected deviation %v, got %v", day.Date, tt.wantDev[i], day.DeviationPct)
				}
			}
			if got.Statistics != tt.wantStats {
				t.Errorf("expected statistics %+v, got %+v", tt.wantStats, got.Statistics)
			}
		})
	}
}

func TestDetectAnomalies(t *testing.T) {
	tests := []struct {
		name      string
		daily     model.DailyCosts
		threshold float64
		want      []model.Anomaly
	}{
		{name: "empty", daily: model.DailyCosts{}, threshold: 2, want: nil},
		{name: "fewer than 7 days", daily: week(10, 10, 10, 10, 10, 100), threshold: 2, want: nil},
		{name: "flat costs", daily: week(10, 10, 10, 10, 10, 10, 10), threshold: 2, want: nil},
		{
			name:      "high spike",
			daily:     week(10, 10, 10, 10, 10, 10, 100),
			threshold: 2,
			want:      []model.Anomaly{{Date: "2024-01-07", Cost: 100, ZScore: 2.27, Status: model.LevelHigh}},
		},
		{
			name:      "low dip",
			daily:     week(100, 100, 10, 100, 100, 100, 100),
			threshold: 2,
			want:      []model.Anomaly{{Date: "2024-01-03", Cost: 10, ZScore: -2.27, Status: model.LevelLow}},
		},
		{name: "spike under threshold", daily: week(10, 10, 10, 10, 10, 10, 100), threshold: 2.5, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAnomalies(tt.daily, tt.threshold)
			if got == nil {
				t.Fatal("expected a non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d anomalies, got %+v", len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %+v, got %+v", tt.want[i], got[i])
				}
			}
		})
	}
}

func TestCompareWithBaseline(t *testing.T) {
	tests := []struct {
		name        string
		daily       model.DailyCosts
		baseline    float64
		wantErr     error
		wantDays    []model.BudgetDay
		wantSummary model.BudgetSummary
	}{
		{name: "empty", daily: model.DailyCosts{}, baseline: 100, wantErr: ErrNoData},
		{
			name:     "over and within",
			daily:    week(120, 80),
			baseline: 100,
			wantDays: []model.BudgetDay{
				{Date: "2024-01-01", Cost: 120, Baseline: 100, Difference: 20, DifferencePct: 20, Status: model.StatusOverBudget},
				{Date: "2024-01-02", Cost: 80, Baseline: 100, Difference: -20, DifferencePct: -20, Status: model.StatusWithinBudget},
			},
			wantSummary: model.BudgetSummary{TotalCost: 200, TotalBaseline: 200, TotalDifference: 0, OverBudgetDays: 1, TotalDays: 2, OverBudgetRate: 50},
		},
		{
			name:     "zero baseline",
			daily:    week(5, 0),
			baseline: 0,
			wantDays: []model.BudgetDay{
				{Date: "2024-01-01", Cost: 5, Baseline: 0, Difference: 5, DifferencePct: 0, Status: model.StatusOverBudget},
				{Date: "2024-01-02", Cost: 0, Baseline: 0, Difference: 0, DifferencePct: 0, Status: model.StatusWithinBudget},
			},
			wantSummary: model.BudgetSummary{TotalCost: 5, TotalBaseline: 0, TotalDifference: 5, OverBudgetDays: 1, TotalDays: 2, OverBudgetRate: 50},
		},
		{
			name:     "cost equal to budget",
			daily:    week(50, 50, 50),
			baseline: 50,
			wantDays: []model.BudgetDay{
				{Date: "2024-01-01", Cost: 50, Baseline: 50, Status: model.StatusWithinBudget},
				{Date: "2024-01-02", Cost: 50, Baseline: 50, Status: model.StatusWithinBudget},
				{Date: "2024-01-03", Cost: 50, Baseline: 50, Status: model.StatusWithinBudget},
			},
			wantSummary: model.BudgetSummary{TotalCost: 150, TotalBaseline: 150, TotalDays: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareWithBaseline(tt.daily, tt.baseline)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompareWithBaseline failed: %v", err)
			}

			if len(got.Days) != len(tt.wantDays) {
				t.Fatalf("expected %d days, got %d", len(tt.wantDays), len(got.Days))
			}
			for i := range got.Days {
				if got.Days[i] != tt.wantDays[i] {
					t.Errorf("expected %+v, got %+v", tt.wantDays[i], got.Days[i])
				}
			}
			if got.Summary != tt.wantSummary {
				t.Errorf("expected summary %+v, got %+v", tt.wantSummary, got.Summary)
			}
		})
	}
}
