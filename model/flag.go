package model

type Flags struct {
	ConfigFile string

	Action    string
	BeginTime string
	EndTime   string
	PayMode   string

	// Analysis selects a cost report instead of an action
	Analysis    string
	Threshold   string
	DailyBudget string

	// Days is the look-back window used when a time range is needed but not given
	Days int
}
