package tencentbilling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/shopspring/decimal"
	tcbilling "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/billing/v20180709"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
)

const currencyCNY = "CNY"

// billDetailPage holds the DescribeBillDetail fields the cost reports read
type billDetailPage struct {
	DetailSet []struct {
		PayTime          string `json:"PayTime"`
		ProductCodeName  string `json:"ProductCodeName"`
		BusinessCodeName string `json:"BusinessCodeName"`
		ResourceID       string `json:"ResourceId"`
		RegionName       string `json:"RegionName"`
		ComponentSet     []struct {
			RealCost string `json:"RealCost"`
		} `json:"ComponentSet"`
	} `json:"DetailSet"`
}

// GetBillingItems pages through every bill line item paid between beginDate
// and endDate inclusive. The detail API only accepts ranges inside one
// month, so the range is queried month by month.
func (s *service) GetBillingItems(ctx context.Context, beginDate, endDate string) ([]model.BillingItem, error) {
	begin, err := time.Parse(dateLayout, beginDate)
	if err != nil {
		return nil, fmt.Errorf("invalid begin date %q: %w", beginDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	items := []model.BillingItem{}
	for month := time.Date(begin.Year(), begin.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
		windowBegin := laterOf(begin, month)
		windowEnd := earlierOf(end, month.AddDate(0, 1, -1))

		monthItems, err := s.monthItems(ctx, month, windowBegin, windowEnd, beginDate, endDate)
		if err != nil {
			return nil, err
		}
		items = append(items, monthItems...)
	}

	return items, nil
}

func (s *service) monthItems(ctx context.Context, month, windowBegin, windowEnd time.Time, beginDate, endDate string) ([]model.BillingItem, error) {
	var items []model.BillingItem

	for offset := uint64(0); ; offset += s.pageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req := tcbilling.NewDescribeBillDetailRequest()
		req.BeginTime = common.StringPtr(windowBegin.Format(dateLayout) + " 00:00:00")
		req.EndTime = common.StringPtr(windowEnd.Format(dateLayout) + " 23:59:59")
		req.Offset = common.Uint64Ptr(offset)
		req.Limit = common.Uint64Ptr(s.pageSize)

		resp, err := s.api.DescribeBillDetailWithContext(ctx, req)
		if err != nil {
			return nil, err
		}

		page, err := decodeDetailPage(resp)
		if err != nil {
			return nil, err
		}
		if len(page.DetailSet) == 0 {
			break
		}

		for _, d := range page.DetailSet {
			date := month.Format(monthLayout) + "-01"
			if len(d.PayTime) >= len(dateLayout) {
				date = d.PayTime[:len(dateLayout)]
			}
			if date < beginDate || date > endDate {
				continue
			}

			cost := decimal.Zero
			for _, c := range d.ComponentSet {
				if c.RealCost == "" {
					continue
				}
				v, err := decimal.NewFromString(c.RealCost)
				if err != nil {
					return nil, fmt.Errorf("invalid cost %q for resource %s: %w", c.RealCost, d.ResourceID, err)
				}
				cost = cost.Add(v)
			}

			product := d.ProductCodeName
			if product == "" {
				product = d.BusinessCodeName
			}

			items = append(items, model.BillingItem{
				Date:        date,
				ProductName: product,
				Cost:        cost.InexactFloat64(),
				Currency:    currencyCNY,
				ResourceID:  d.ResourceID,
				Region:      d.RegionName,
			})
		}

		if uint64(len(page.DetailSet)) < s.pageSize {
			break
		}
	}

	return items, nil
}

func decodeDetailPage(resp *tcbilling.DescribeBillDetailResponse) (*billDetailPage, error) {
	page := &billDetailPage{}
	if resp == nil || resp.Response == nil {
		return page, nil
	}

	data, err := json.Marshal(resp.Response)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bill detail page: %w", err)
	}
	if err := json.Unmarshal(data, page); err != nil {
		return nil, fmt.Errorf("failed to decode bill detail page: %w", err)
	}
	return page, nil
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
