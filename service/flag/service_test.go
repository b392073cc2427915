package flag

import (
	"testing"

	"github.com/elC0mpa/cloud-finance/model"
)

func TestGetParsedFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    model.Flags
		wantErr bool
	}{
		{
			name: "action only",
			args: []string{"--action", "account-balance"},
			want: model.Flags{Action: "account-balance", Days: DefaultDays},
		},
		{
			name: "all flags",
			args: []string{"-a", "bill-details", "--begin", "2024-01-01", "--end", "2024-01-31", "--pay-mode", "prePay", "--config", "finance.yaml", "--days", "7"},
			want: model.Flags{
				ConfigFile: "finance.yaml",
				Action:     "bill-details",
				BeginTime:  "2024-01-01",
				EndTime:    "2024-01-31",
				PayMode:    "prePay",
				Days:       7,
			},
		},
		{
			name: "analysis",
			args: []string{"--analysis", "budget-comparison", "--daily-budget", "80", "--days", "14"},
			want: model.Flags{Analysis: "budget-comparison", DailyBudget: "80", Days: 14},
		},
		{
			name: "anomalies threshold",
			args: []string{"--analysis", "anomalies", "--threshold", "2.5"},
			want: model.Flags{Analysis: "anomalies", Threshold: "2.5", Days: DefaultDays},
		},
		{name: "missing action", args: []string{"--begin", "2024-01-01"}, wantErr: true},
		{name: "action and analysis", args: []string{"--action", "account-balance", "--analysis", "analyze"}, wantErr: true},
		{name: "unknown flag", args: []string{"--action", "account-balance", "--region", "x"}, wantErr: true},
		{name: "negative days", args: []string{"--action", "bill-overview", "--days", "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewService().GetParsedFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got flags %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
