package orchestrator

import (
	"context"
	"io"
	"time"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/service/gateway"
)

type service struct {
	gateway gateway.GatewayService
	out     io.Writer
	status  io.Writer
	now     func() time.Time
}

type OrchestratorService interface {
	// Orchestrate runs the query named by flags and reports whether it succeeded
	Orchestrate(ctx context.Context, flags model.Flags) (bool, error)
}
