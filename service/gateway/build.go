package gateway

import (
	"errors"
	"fmt"

	"github.com/elC0mpa/cloud-finance/config"
	"github.com/elC0mpa/cloud-finance/service"
	"github.com/elC0mpa/cloud-finance/service/analysis"
	tencentbilling "github.com/elC0mpa/cloud-finance/service/tencent/billing"
	tencentconfig "github.com/elC0mpa/cloud-finance/service/tencent/config"
	"github.com/rs/zerolog"
)

// billingClient creates the upstream billing API for cfg
var billingClient = func(cfg *config.Config) (tencentbilling.API, error) {
	client, err := tencentconfig.NewService(cfg.Endpoint).GetBillingClient(cfg.Credentials)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Build wires the gateway to a Tencent Cloud billing client created from
// cfg. Without credentials the gateway still starts and rejects every query.
// Credentials the client rejects fail the build.
func Build(cfg *config.Config, logger zerolog.Logger, opts ...Option) (*gatewayService, error) {
	var finance service.FinanceService

	client, err := billingClient(cfg)
	switch {
	case errors.Is(err, tencentconfig.ErrMissingCredentials):
		logger.Warn().Msg("TENCENT_SECRET_ID or TENCENT_SECRET_KEY not set, finance queries will be rejected")
	case err != nil:
		logger.Error().Err(err).Str("region", cfg.Credentials.Region).Msg("failed to create billing client")
		return nil, fmt.Errorf("failed to create billing client: %w", err)
	default:
		logger.Info().
			Str("region", cfg.Credentials.Region).
			Str("endpoint", cfg.Endpoint).
			Msg("billing client ready")
		billing := tencentbilling.NewService(client, cfg.DetailPageSize)
		finance = billing
		opts = append([]Option{WithAnalysis(analysis.NewService(billing))}, opts...)
	}

	return NewService(cfg, finance, logger, opts...), nil
}
