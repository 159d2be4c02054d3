package handler

import (
	"church-office-go/internal/transport/httpserver/handler/cellleaders"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/internal/transport/httpserver/handler/dashboard"
	"church-office-go/internal/transport/httpserver/handler/departments"
	"church-office-go/internal/transport/httpserver/handler/members"
	"church-office-go/internal/transport/httpserver/handler/ministries"
	"church-office-go/internal/transport/httpserver/handler/newcomers"
	"church-office-go/internal/transport/httpserver/handler/reservations"
	"church-office-go/internal/transport/httpserver/handler/servingpeople"
	"church-office-go/internal/transport/httpserver/handler/trainings"
)

type Handlers struct {
	Common        *common.Handlers
	Dashboard     *dashboard.Handlers
	Reservations  *reservations.Handlers
	Newcomers     *newcomers.Handlers
	Members       *members.Handlers
	CellLeaders   *cellleaders.Handlers
	Departments   *departments.Handlers
	Ministries    *ministries.Handlers
	Trainings     *trainings.Handlers
	ServingPeople *servingpeople.Handlers
}
