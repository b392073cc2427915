package flag

import "github.com/elC0mpa/cloud-finance/model"

type service struct {
	name string
}

type FlagService interface {
	GetParsedFlags(args []string) (model.Flags, error)
}
