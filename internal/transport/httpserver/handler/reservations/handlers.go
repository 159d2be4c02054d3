package reservations

import (
	"time"

	reservationdomain "church-office-go/internal/domain/reservation"
	"church-office-go/pkg/logger"
)

type Handlers struct {
	Reservations *reservationdomain.Service
	seeds        []reservationdomain.FacilitySeed
	loc          *time.Location
	log          logger.Logger
}

func New(reservations *reservationdomain.Service, seeds []reservationdomain.FacilitySeed, loc *time.Location, log logger.Logger) *Handlers {
	if loc == nil {
		loc = time.UTC
	}
	return &Handlers{
		Reservations: reservations,
		seeds:        seeds,
		loc:          loc,
		log:          log,
	}
}
