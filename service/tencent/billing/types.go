package tencentbilling

import (
	"context"
	"encoding/json"

	"github.com/elC0mpa/cloud-finance/model"

	tcbilling "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/billing/v20180709"
)

// API is the subset of the Tencent Cloud billing client used here.
// *tcbilling.Client satisfies it.
type API interface {
	DescribeBillSummaryByProductWithContext(ctx context.Context, request *tcbilling.DescribeBillSummaryByProductRequest) (*tcbilling.DescribeBillSummaryByProductResponse, error)
	DescribeBillDetailWithContext(ctx context.Context, request *tcbilling.DescribeBillDetailRequest) (*tcbilling.DescribeBillDetailResponse, error)
	DescribeBillSummaryByPayModeWithContext(ctx context.Context, request *tcbilling.DescribeBillSummaryByPayModeRequest) (*tcbilling.DescribeBillSummaryByPayModeResponse, error)
	DescribeAccountBalanceWithContext(ctx context.Context, request *tcbilling.DescribeAccountBalanceRequest) (*tcbilling.DescribeAccountBalanceResponse, error)
	DescribeCostSummaryByProductWithContext(ctx context.Context, request *tcbilling.DescribeCostSummaryByProductRequest) (*tcbilling.DescribeCostSummaryByProductResponse, error)
}

type service struct {
	api      API
	pageSize uint64
}

// FinanceService exposes one method per finance action. Every method returns
// the provider's response object unchanged.
type FinanceService interface {
	GetBillOverview(ctx context.Context, beginTime, endTime string) (json.RawMessage, error)
	GetBillDetails(ctx context.Context, beginTime, endTime, payMode string) (json.RawMessage, error)
	GetCostStatistics(ctx context.Context, beginTime, endTime string) (json.RawMessage, error)
	GetAccountBalance(ctx context.Context) (json.RawMessage, error)
	GetConsumptionTrend(ctx context.Context, beginTime, endTime string) (json.RawMessage, error)
}

// CostService returns bill line items flattened for the cost reports
type CostService interface {
	GetBillingItems(ctx context.Context, beginDate, endDate string) ([]model.BillingItem, error)
}
