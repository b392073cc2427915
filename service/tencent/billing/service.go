package tencentbilling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tcbilling "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/billing/v20180709"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
)

const (
	defaultPageSize uint64 = 100
	dateLayout             = "2006-01-02"
	monthLayout            = "2006-01"
)

func NewService(api API, pageSize uint64) *service {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return &service{
		api:      api,
		pageSize: pageSize,
	}
}

// GetBillOverview returns the bill summary grouped by product
func (s *service) GetBillOverview(ctx context.Context, beginTime, endTime string) (json.RawMessage, error) {
	req := tcbilling.NewDescribeBillSummaryByProductRequest()
	req.BeginTime = common.StringPtr(startOfDay(beginTime))
	req.EndTime = common.StringPtr(endOfDay(endTime))

	resp, err := s.api.DescribeBillSummaryByProductWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	return rawResponse(resp.Response)
}

// GetBillDetails returns the first page of bill line items, optionally
// filtered by payment mode
func (s *service) GetBillDetails(ctx context.Context, beginTime, endTime, payMode string) (json.RawMessage, error) {
	req := tcbilling.NewDescribeBillDetailRequest()
	req.BeginTime = common.StringPtr(startOfDay(beginTime))
	req.EndTime = common.StringPtr(endOfDay(endTime))
	req.Offset = common.Uint64Ptr(0)
	req.Limit = common.Uint64Ptr(s.pageSize)
	if payMode != "" {
		req.PayMode = common.StringPtr(payMode)
	}

	resp, err := s.api.DescribeBillDetailWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	return rawResponse(resp.Response)
}

// GetCostStatistics returns the bill summary grouped by payment mode
func (s *service) GetCostStatistics(ctx context.Context, beginTime, endTime string) (json.RawMessage, error) {
	req := tcbilling.NewDescribeBillSummaryByPayModeRequest()
	req.BeginTime = common.StringPtr(startOfDay(beginTime))
	req.EndTime = common.StringPtr(endOfDay(endTime))

	resp, err := s.api.DescribeBillSummaryByPayModeWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	return rawResponse(resp.Response)
}

// GetAccountBalance returns the account balance. Amounts are in cents.
func (s *service) GetAccountBalance(ctx context.Context) (json.RawMessage, error) {
	req := tcbilling.NewDescribeAccountBalanceRequest()

	resp, err := s.api.DescribeAccountBalanceWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	return rawResponse(resp.Response)
}

// GetConsumptionTrend returns consumption grouped by product. The cost
// summary API takes plain dates, so the range is passed through as given.
func (s *service) GetConsumptionTrend(ctx context.Context, beginTime, endTime string) (json.RawMessage, error) {
	req := tcbilling.NewDescribeCostSummaryByProductRequest()
	req.BeginTime = common.StringPtr(beginTime)
	req.EndTime = common.StringPtr(endTime)
	req.Offset = common.Uint64Ptr(0)
	req.Limit = common.Uint64Ptr(s.pageSize)
	req.NeedRecordNum = common.Int64Ptr(1)

	resp, err := s.api.DescribeCostSummaryByProductWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	return rawResponse(resp.Response)
}

func rawResponse(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode billing response: %w", err)
	}
	return data, nil
}

// startOfDay and endOfDay expand a YYYY-MM-DD date into the datetime form the
// bill summary APIs expect. Values that already carry a time are kept.
func startOfDay(date string) string {
	if isPlainDate(date) {
		return date + " 00:00:00"
	}
	return date
}

func endOfDay(date string) string {
	if isPlainDate(date) {
		return date + " 23:59:59"
	}
	return date
}

func isPlainDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
