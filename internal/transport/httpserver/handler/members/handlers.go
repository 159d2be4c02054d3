package members

import (
	memberdomain "church-office-go/internal/domain/member"
	"church-office-go/pkg/logger"
)

type Handlers struct {
	Members *memberdomain.Service
	log     logger.Logger
}

func New(members *memberdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Members: members, log: log}
}
