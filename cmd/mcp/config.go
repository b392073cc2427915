package main

import (
	"os"

	"github.com/elC0mpa/cloud-finance/config"
)

// LoadConfig reads configuration from environment variables and the optional
// file named by FINANCE_CONFIG
func LoadConfig() (*config.Config, error) {
	return config.Load(config.New(), os.Getenv("FINANCE_CONFIG"))
}
