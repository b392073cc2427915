package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/elC0mpa/cloud-finance/config"
	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/service"
	"github.com/rs/zerolog"
)

type gatewayService struct {
	cfg       *config.Config
	finance   service.FinanceService
	analysis  service.AnalysisService
	logger    zerolog.Logger
	localizer *Localizer
	now       func() time.Time
}

// GatewayService validates finance queries and dispatches them upstream
type GatewayService interface {
	// Configured reports whether upstream credentials are available
	Configured() bool
	Query(ctx context.Context, req model.QueryRequest) (json.RawMessage, error)
	Respond(ctx context.Context, req model.QueryRequest, p *Printer) Result
	Analyze(ctx context.Context, req model.AnalysisRequest) (any, error)
	RespondAnalysis(ctx context.Context, req model.AnalysisRequest, p *Printer) Result
	Localizer() *Localizer
	Logger() zerolog.Logger
}

// Option customizes a gateway service
type Option func(*gatewayService)

// WithClock replaces the clock used for envelope timestamps
func WithClock(now func() time.Time) Option {
	return func(s *gatewayService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAnalysis attaches the cost report service
func WithAnalysis(a service.AnalysisService) Option {
	return func(s *gatewayService) {
		s.analysis = a
	}
}
