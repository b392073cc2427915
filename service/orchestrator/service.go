package orchestrator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
	"github.com/elC0mpa/cloud-finance/service/gateway"
	"github.com/elC0mpa/cloud-finance/utils"
)

const dateLayout = "2006-01-02"

// NewService writes envelopes to out and the status table to status
func NewService(gw gateway.GatewayService, out, status io.Writer) *service {
	return &service{
		gateway: gw,
		out:     out,
		status:  status,
		now:     time.Now,
	}
}

func (s *service) Orchestrate(ctx context.Context, flags model.Flags) (bool, error) {
	if flags.Analysis != "" {
		return s.orchestrateAnalysis(ctx, flags)
	}

	req := s.buildRequest(flags)

	utils.StartSpinner(s.status, "Querying "+req.Action)
	result := s.gateway.Respond(ctx, req, nil)
	utils.StopSpinner()

	return s.report(req, result)
}

func (s *service) orchestrateAnalysis(ctx context.Context, flags model.Flags) (bool, error) {
	req := model.AnalysisRequest{
		Analysis:    flags.Analysis,
		Threshold:   flags.Threshold,
		DailyBudget: flags.DailyBudget,
	}
	req.BeginTime, req.EndTime = s.window(flags.BeginTime, flags.EndTime, flags.Days)

	utils.StartSpinner(s.status, "Analyzing "+req.Analysis)
	result := s.gateway.RespondAnalysis(ctx, req, nil)
	utils.StopSpinner()

	return s.report(model.QueryRequest{Action: req.Analysis, BeginTime: req.BeginTime, EndTime: req.EndTime}, result)
}

func (s *service) report(req model.QueryRequest, result gateway.Result) (bool, error) {
	if _, err := fmt.Fprintln(s.out, response.Marshal(result.Body())); err != nil {
		return false, err
	}

	fmt.Fprintln(s.status, utils.RenderStatusTable(utils.StatusRow{
		Request:  req,
		Envelope: result.Envelope,
		Message:  message(result),
	}))

	return result.OK(), nil
}

// buildRequest fills in the look-back window when a time range action is
// run without explicit dates
func (s *service) buildRequest(flags model.Flags) model.QueryRequest {
	req := model.QueryRequest{
		Action:    flags.Action,
		BeginTime: flags.BeginTime,
		EndTime:   flags.EndTime,
		PayMode:   flags.PayMode,
	}

	action, ok := model.ParseAction(flags.Action)
	if !ok || !action.RequiresTimeRange() {
		return req
	}

	req.BeginTime, req.EndTime = s.window(req.BeginTime, req.EndTime, flags.Days)
	return req
}

// window fills a missing end with today and a missing begin with the day
// that lies days before the end
func (s *service) window(begin, end string, days int) (string, string) {
	if days <= 0 {
		days = 30
	}

	last := s.now()
	if end == "" {
		end = last.Format(dateLayout)
	} else if t, err := time.Parse(dateLayout, end); err == nil {
		last = t
	}
	if begin == "" {
		begin = last.AddDate(0, 0, -days).Format(dateLayout)
	}
	return begin, end
}

func message(result gateway.Result) string {
	switch {
	case result.Rejected != nil:
		return result.Rejected.Error
	case result.Envelope != nil:
		return result.Envelope.Error
	}
	return ""
}
