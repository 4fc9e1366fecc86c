package app

import (
	"alias-profiles/internal/adapters"
	"alias-profiles/internal/ports"
)

type Service struct {
	Project ports.ProjectConfigPort
	Output  ports.OutputPort
}

func NewService() Service {
	return Service{
		Project: adapters.NewDepsFileAdapter(),
		Output:  adapters.NewOutputFileAdapter(),
	}
}
