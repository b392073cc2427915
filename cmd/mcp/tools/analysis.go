package tools

import (
	"context"
	"strconv"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
	"github.com/elC0mpa/cloud-finance/service/gateway"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type analysisTool struct {
	name        string
	description string
	analysis    model.Analysis
}

var analysisTools = []analysisTool{
	{
		name:        "tencent_get_billing_data",
		description: "Get every Tencent Cloud bill line item for a date range with daily totals in CNY",
		analysis:    model.AnalysisBillingData,
	},
	{
		name:        "tencent_get_daily_costs",
		description: "Get Tencent Cloud total cost per day for a date range",
		analysis:    model.AnalysisDailyCosts,
	},
	{
		name:        "tencent_analyze_daily_costs",
		description: "Classify each day's Tencent Cloud cost as high, normal or low against the range mean and standard deviation",
		analysis:    model.AnalysisCostLevels,
	},
	{
		name:        "tencent_detect_cost_anomalies",
		description: "Find days whose Tencent Cloud cost z-score exceeds a threshold. Needs at least 7 days of data",
		analysis:    model.AnalysisAnomalies,
	},
	{
		name:        "tencent_compare_with_budget",
		description: "Compare each day's Tencent Cloud cost with a daily budget",
		analysis:    model.AnalysisBudgetComparison,
	},
	{
		name:        "tencent_get_full_analysis",
		description: "Get the daily cost levels and anomalies of a date range in one report",
		analysis:    model.AnalysisFull,
	},
}

// RegisterAnalysisTools registers one tool per cost report with the MCP server
func RegisterAnalysisTools(s *server.MCPServer, svc gateway.GatewayService) {
	for _, t := range analysisTools {
		s.AddTool(newAnalysisTool(t), makeAnalysisHandler(svc, t.analysis))
	}
}

func newAnalysisTool(t analysisTool) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(t.description),
		mcp.WithString("beginTime", mcp.Description("Start date, YYYY-MM-DD. Defaults to 30 days ago")),
		mcp.WithString("endTime", mcp.Description("End date, YYYY-MM-DD. Defaults to today")),
	}

	switch t.analysis {
	case model.AnalysisAnomalies:
		opts = append(opts, mcp.WithNumber("threshold", mcp.Description("Z-score threshold, defaults to 2.0")))
	case model.AnalysisBudgetComparison:
		opts = append(opts, mcp.WithNumber("dailyBudget", mcp.Required(), mcp.Description("Daily budget in CNY")))
	}

	return mcp.NewTool(t.name, opts...)
}

func makeAnalysisHandler(svc gateway.GatewayService, analysis model.Analysis) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		req := model.AnalysisRequest{
			Analysis:    analysis.String(),
			BeginTime:   argString(args, "beginTime"),
			EndTime:     argString(args, "endTime"),
			Threshold:   argString(args, "threshold"),
			DailyBudget: argString(args, "dailyBudget"),
		}

		result := svc.RespondAnalysis(ctx, req, nil)
		if !result.OK() {
			return mcp.NewToolResultError(failureMessage(result)), nil
		}

		return mcp.NewToolResultText(response.Marshal(result.Envelope)), nil
	}
}

// argString renders a string or numeric argument as text
func argString(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}
