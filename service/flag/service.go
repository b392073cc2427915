package flag

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/spf13/pflag"
)

// DefaultDays is the look-back window used when no time range is given
const DefaultDays = 30

func NewService() *service {
	return &service{
		name: "cloud-finance",
	}
}

func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	fs := pflag.NewFlagSet(s.name, pflag.ContinueOnError)

	configFile := fs.String("config", "", "Config file (YAML)")
	action := fs.StringP("action", "a", "", "Finance action: "+actionList())
	begin := fs.String("begin", "", "Start date, YYYY-MM-DD")
	end := fs.String("end", "", "End date, YYYY-MM-DD")
	payMode := fs.String("pay-mode", "", "Pay mode filter for bill-details: prePay or postPay")
	days := fs.Int("days", DefaultDays, "Look-back window in days when --begin and --end are omitted")
	analysis := fs.String("analysis", "", "Cost report: "+analysisList())
	threshold := fs.String("threshold", "", "Z-score threshold for the anomalies report")
	dailyBudget := fs.String("daily-budget", "", "Daily budget in CNY for the budget-comparison report")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}

	switch {
	case *action != "" && *analysis != "":
		return model.Flags{}, fmt.Errorf("--action and --analysis cannot be combined")
	case *action == "" && *analysis == "":
		return model.Flags{}, fmt.Errorf("--action or --analysis is required, supported actions: %s", actionList())
	}
	if *days <= 0 {
		return model.Flags{}, fmt.Errorf("--days must be positive, got %d", *days)
	}

	return model.Flags{
		ConfigFile: *configFile,
		Action:     *action,
		BeginTime:  *begin,
		EndTime:    *end,
		PayMode:    *payMode,
		Days:       *days,

		Analysis:    *analysis,
		Threshold:   *threshold,
		DailyBudget: *dailyBudget,
	}, nil
}

func actionList() string {
	names := make([]string, 0, len(model.Actions()))
	for _, a := range model.Actions() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func analysisList() string {
	names := make([]string, 0, len(model.Analyses()))
	for _, a := range model.Analyses() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
