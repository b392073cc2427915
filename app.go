package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/elC0mpa/cloud-finance/config"
	"github.com/elC0mpa/cloud-finance/service/flag"
	"github.com/elC0mpa/cloud-finance/service/gateway"
	"github.com/elC0mpa/cloud-finance/service/orchestrator"
	"github.com/spf13/pflag"
)

func main() {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(config.New(), flags.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg, os.Stderr)
	gatewayService, err := gateway.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	orchestratorService := orchestrator.NewService(gatewayService, os.Stdout, os.Stderr)
	ok, err := orchestratorService.Orchestrate(context.Background(), flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}
