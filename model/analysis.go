package model

import "sort"

// Analysis selects a derived cost report computed from bill line items
type Analysis string

const (
	AnalysisBillingData      Analysis = "billing-data"
	AnalysisDailyCosts       Analysis = "daily-costs"
	AnalysisCostLevels       Analysis = "analyze"
	AnalysisAnomalies        Analysis = "anomalies"
	AnalysisBudgetComparison Analysis = "budget-comparison"
	AnalysisFull             Analysis = "full-analysis"
)

// Analyses returns every supported analysis in route order
func Analyses() []Analysis {
	return []Analysis{
		AnalysisBillingData,
		AnalysisDailyCosts,
		AnalysisCostLevels,
		AnalysisAnomalies,
		AnalysisBudgetComparison,
		AnalysisFull,
	}
}

// ParseAnalysis returns the analysis named by s and whether it is supported
func ParseAnalysis(s string) (Analysis, bool) {
	for _, a := range Analyses() {
		if string(a) == s {
			return a, true
		}
	}
	return Analysis(s), false
}

func (a Analysis) String() string {
	return string(a)
}

// AnalysisRequest carries the raw parameters of an analysis query.
// Empty dates mean the default look-back window.
type AnalysisRequest struct {
	Analysis    string
	BeginTime   string
	EndTime     string
	Threshold   string
	DailyBudget string
}

// BillingItem is one bill line item reduced to the fields the reports use.
// Cost is in yuan.
type BillingItem struct {
	Date        string  `json:"date"`
	ProductName string  `json:"product_name"`
	Cost        float64 `json:"cost"`
	Currency    string  `json:"currency"`
	ResourceID  string  `json:"resource_id"`
	Region      string  `json:"region"`
}

// DailyCosts maps a YYYY-MM-DD date to the total cost billed on it
type DailyCosts map[string]float64

// Dates returns the dates in ascending order
func (d DailyCosts) Dates() []string {
	dates := make([]string, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

type CostLevel string

const (
	LevelHigh   CostLevel = "high"
	LevelNormal CostLevel = "normal"
	LevelLow    CostLevel = "low"
)

type BudgetStatus string

const (
	StatusOverBudget   BudgetStatus = "over_budget"
	StatusWithinBudget BudgetStatus = "within_budget"
)

type BillingData struct {
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Items      []BillingItem `json:"billing_data"`
	DailyCosts DailyCosts    `json:"daily_costs"`
	TotalCost  float64       `json:"total_cost"`
}

type DailyCostSummary struct {
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	DailyCosts DailyCosts `json:"daily_costs"`
	TotalCost  float64    `json:"total_cost"`
	DaysCount  int        `json:"days_count"`
}

type CostStatistics struct {
	Mean      float64 `json:"mean_cost"`
	Median    float64 `json:"median_cost"`
	Std       float64 `json:"std_cost"`
	Min       float64 `json:"min_cost"`
	Max       float64 `json:"max_cost"`
	TotalDays int     `json:"total_days"`
}

// DailyLevel classifies one day against the mean plus or minus one standard deviation
type DailyLevel struct {
	Date         string    `json:"date"`
	Cost         float64   `json:"cost"`
	Level        CostLevel `json:"level"`
	Description  string    `json:"description"`
	DeviationPct float64   `json:"deviation_pct"`
}

type DailyAnalysis struct {
	Days       []DailyLevel   `json:"daily_analysis"`
	Statistics CostStatistics `json:"statistics"`
}

type Anomaly struct {
	Date   string    `json:"date"`
	Cost   float64   `json:"cost"`
	ZScore float64   `json:"z_score"`
	Status CostLevel `json:"status"`
}

type AnomalyReport struct {
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Threshold    float64   `json:"threshold"`
	Anomalies    []Anomaly `json:"anomalies"`
	AnomalyCount int       `json:"anomaly_count"`
}

type BudgetDay struct {
	Date          string       `json:"date"`
	Cost          float64      `json:"cost"`
	Baseline      float64      `json:"baseline"`
	Difference    float64      `json:"difference"`
	DifferencePct float64      `json:"difference_pct"`
	Status        BudgetStatus `json:"status"`
}

type BudgetSummary struct {
	TotalCost       float64 `json:"total_cost"`
	TotalBaseline   float64 `json:"total_baseline"`
	TotalDifference float64 `json:"total_difference"`
	OverBudgetDays  int     `json:"over_budget_days"`
	TotalDays       int     `json:"total_days"`
	OverBudgetRate  float64 `json:"over_budget_rate"`
}

type BudgetComparison struct {
	Days    []BudgetDay   `json:"comparison"`
	Summary BudgetSummary `json:"summary"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BillingSummary struct {
	TotalCost float64 `json:"total_cost"`
	DaysCount int     `json:"days_count"`
}

// FullAnalysis combines the cost levels and anomalies for one range
type FullAnalysis struct {
	DateRange      DateRange      `json:"date_range"`
	BillingSummary BillingSummary `json:"billing_summary"`
	DailyAnalysis  *DailyAnalysis `json:"daily_analysis"`
	Anomalies      []Anomaly      `json:"anomalies"`
}
