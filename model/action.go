package model

// Action selects which upstream finance operation a query runs
type Action string

const (
	ActionBillOverview     Action = "bill-overview"
	ActionBillDetails      Action = "bill-details"
	ActionCostStatistics   Action = "cost-statistics"
	ActionAccountBalance   Action = "account-balance"
	ActionConsumptionTrend Action = "consumption-trend"
)

// Actions returns every supported action in canonical order
func Actions() []Action {
	return []Action{
		ActionBillOverview,
		ActionBillDetails,
		ActionCostStatistics,
		ActionAccountBalance,
		ActionConsumptionTrend,
	}
}

// ParseAction returns the action named by s and whether it is supported
func ParseAction(s string) (Action, bool) {
	for _, a := range Actions() {
		if string(a) == s {
			return a, true
		}
	}
	return Action(s), false
}

// RequiresTimeRange reports whether beginTime and endTime must be present
func (a Action) RequiresTimeRange() bool {
	return a != ActionAccountBalance
}

func (a Action) String() string {
	return string(a)
}
