package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/elC0mpa/cloud-finance/config"
	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/service"
	"github.com/rs/zerolog"
	tcerr "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/errors"
)

func NewService(cfg *config.Config, finance service.FinanceService, logger zerolog.Logger, opts ...Option) *gatewayService {
	s := &gatewayService{
		cfg:       cfg,
		finance:   finance,
		logger:    logger.With().Str("component", "gateway").Logger(),
		localizer: NewLocalizer(cfg.DefaultLanguage),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *gatewayService) Configured() bool {
	return s.cfg.HasCredentials() && s.finance != nil
}

func (s *gatewayService) Localizer() *Localizer {
	return s.localizer
}

func (s *gatewayService) Logger() zerolog.Logger {
	return s.logger
}

// Query runs one finance query. Credentials are checked before the action and
// the action before the time range. The upstream client is only called once
// every check passes.
func (s *gatewayService) Query(ctx context.Context, req model.QueryRequest) (json.RawMessage, error) {
	if !s.Configured() {
		return nil, s.reject(&model.QueryError{Kind: model.KindConfiguration})
	}

	action, ok := model.ParseAction(req.Action)
	if !ok {
		s.logger.Warn().Str("action", req.Action).Msg("unknown action")
		return nil, &model.QueryError{Kind: model.KindInvalidArgument}
	}

	if action.RequiresTimeRange() && !req.HasTimeRange() {
		return nil, s.reject(&model.QueryError{Kind: model.KindMissingParameter, Action: action})
	}

	data, err := s.dispatch(ctx, action, req)
	if err != nil {
		s.logUpstream(action, err)
		return nil, &model.QueryError{Kind: model.KindUpstream, Action: action, Err: err}
	}

	s.logger.Debug().Str("action", action.String()).Int("bytes", len(data)).Msg("query succeeded")
	return data, nil
}

func (s *gatewayService) dispatch(ctx context.Context, action model.Action, req model.QueryRequest) (json.RawMessage, error) {
	switch action {
	case model.ActionBillOverview:
		return s.finance.GetBillOverview(ctx, req.BeginTime, req.EndTime)
	case model.ActionBillDetails:
		return s.finance.GetBillDetails(ctx, req.BeginTime, req.EndTime, req.PayMode)
	case model.ActionCostStatistics:
		return s.finance.GetCostStatistics(ctx, req.BeginTime, req.EndTime)
	case model.ActionAccountBalance:
		return s.finance.GetAccountBalance(ctx)
	case model.ActionConsumptionTrend:
		return s.finance.GetConsumptionTrend(ctx, req.BeginTime, req.EndTime)
	}
	return nil, &model.QueryError{Kind: model.KindInvalidArgument, Action: action}
}

func (s *gatewayService) reject(qe *model.QueryError) error {
	event := s.logger.Warn().
		Str("kind", qe.Kind.String()).
		Str("action", qe.Action.String())
	if qe.Param != "" {
		event = event.Str("param", qe.Param)
	}
	event.Msg("query rejected")
	return qe
}

func (s *gatewayService) logUpstream(action model.Action, err error) {
	event := s.logger.Error().Err(err).Str("action", action.String())

	var sdkErr *tcerr.TencentCloudSDKError
	if errors.As(err, &sdkErr) {
		event = event.Str("code", sdkErr.GetCode()).Str("request_id", sdkErr.GetRequestId())
	}

	event.Msg("upstream finance call failed")
}
