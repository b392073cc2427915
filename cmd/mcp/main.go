package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/cloud-finance/cmd/mcp/tools"
	"github.com/elC0mpa/cloud-finance/config"
	"github.com/elC0mpa/cloud-finance/service/gateway"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP protocol
	logger := config.NewLogger(cfg, os.Stderr)

	s := server.NewMCPServer(
		"cloud-finance-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	svc, err := gateway.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup error: %v\n", err)
		os.Exit(1)
	}
	tools.RegisterFinanceTools(s, svc)
	tools.RegisterAnalysisTools(s, svc)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
