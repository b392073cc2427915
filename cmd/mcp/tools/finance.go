package tools

import (
	"context"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
	"github.com/elC0mpa/cloud-finance/service/gateway"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type financeTool struct {
	name        string
	description string
	action      model.Action
}

var financeTools = []financeTool{
	{
		name:        "tencent_get_bill_overview",
		description: "Get the Tencent Cloud bill summary grouped by product for a date range",
		action:      model.ActionBillOverview,
	},
	{
		name:        "tencent_get_bill_details",
		description: "Get Tencent Cloud bill line items for a date range, optionally filtered by pay mode (prePay or postPay)",
		action:      model.ActionBillDetails,
	},
	{
		name:        "tencent_get_cost_statistics",
		description: "Get Tencent Cloud costs grouped by pay mode for a date range",
		action:      model.ActionCostStatistics,
	},
	{
		name:        "tencent_get_account_balance",
		description: "Get the current Tencent Cloud account balance. Amounts are in cents",
		action:      model.ActionAccountBalance,
	},
	{
		name:        "tencent_get_consumption_trend",
		description: "Get Tencent Cloud consumption by product for a date range",
		action:      model.ActionConsumptionTrend,
	},
}

// RegisterFinanceTools registers one tool per finance action with the MCP server
func RegisterFinanceTools(s *server.MCPServer, svc gateway.GatewayService) {
	for _, t := range financeTools {
		s.AddTool(newTool(t), makeFinanceHandler(svc, t.action))
	}
}

func newTool(t financeTool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.description)}

	if t.action.RequiresTimeRange() {
		opts = append(opts,
			mcp.WithString("beginTime", mcp.Required(), mcp.Description("Start date, YYYY-MM-DD")),
			mcp.WithString("endTime", mcp.Required(), mcp.Description("End date, YYYY-MM-DD")),
		)
	}
	if t.action == model.ActionBillDetails {
		opts = append(opts, mcp.WithString("payMode", mcp.Description("Pay mode filter: prePay or postPay")))
	}

	return mcp.NewTool(t.name, opts...)
}

func makeFinanceHandler(svc gateway.GatewayService, action model.Action) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req := model.QueryRequest{
			Action:    action.String(),
			BeginTime: request.GetString("beginTime", ""),
			EndTime:   request.GetString("endTime", ""),
			PayMode:   request.GetString("payMode", ""),
		}

		result := svc.Respond(ctx, req, nil)
		if !result.OK() {
			return mcp.NewToolResultError(failureMessage(result)), nil
		}

		return mcp.NewToolResultText(response.Marshal(result.Envelope)), nil
	}
}

func failureMessage(result gateway.Result) string {
	if result.Rejected != nil {
		return result.Rejected.Error
	}
	if result.Envelope != nil {
		return result.Envelope.Error
	}
	return ""
}
