package httpserver

import (
	"net/http"

	"church-office-go/internal/config"
	"church-office-go/internal/transport/httpserver/handler"
	"church-office-go/internal/transport/httpserver/middleware"
	"church-office-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(middleware.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)
		r.Get("/dashboard", handlers.Dashboard.Stats)

		r.Get("/facilities", handlers.Reservations.ListFacilities)
		r.Post("/facilities/seed", handlers.Reservations.SeedFacilities)

		r.Get("/reservations", handlers.Reservations.ListReservations)
		r.Post("/reservations", handlers.Reservations.CreateReservation)

		r.Get("/newcomers", handlers.Newcomers.ListNewcomers)
		r.Post("/newcomers", handlers.Newcomers.UpsertNewcomer)
		r.Delete("/newcomers/{id}", handlers.Newcomers.DeleteNewcomer)

		r.Get("/members", handlers.Members.ListMembers)
		r.Post("/members", handlers.Members.CreateMember)
		r.Put("/members/{id}", handlers.Members.UpdateMember)
		r.Delete("/members/{id}", handlers.Members.DeleteMember)

		r.Get("/choir/members", handlers.Members.ListChoirMembers)
		r.Get("/choir/candidates", handlers.Members.SearchChoirCandidates)
		r.Put("/choir/members/{id}", handlers.Members.UpdateChoirPart)

		r.Get("/cell-leaders", handlers.CellLeaders.ListCellLeaders)
		r.Post("/cell-leaders", handlers.CellLeaders.CreateCellLeader)
		r.Put("/cell-leaders/{id}", handlers.CellLeaders.UpdateCellLeader)
		r.Delete("/cell-leaders/{id}", handlers.CellLeaders.DeleteCellLeader)

		r.Get("/departments", handlers.Departments.Tree)
		r.Post("/departments", handlers.Departments.CreateDepartment)
		r.Delete("/departments/{id}", handlers.Departments.DeleteDepartment)

		r.Get("/ministries", handlers.Ministries.ListMinistries)
		r.Post("/ministries", handlers.Ministries.CreateMinistry)
		r.Put("/ministries/{id}", handlers.Ministries.UpdateMinistry)
		r.Delete("/ministries/{id}", handlers.Ministries.DeleteMinistry)
		r.Get("/ministry-groups/{category}/{name}", handlers.Ministries.GetGroup)
		r.Put("/ministry-groups/{category}/{name}", handlers.Ministries.SaveGroup)
		r.Get("/ministry-stats/{category}", handlers.Ministries.GetStat)
		r.Put("/ministry-stats/{category}", handlers.Ministries.SaveStat)

		r.Get("/training-programs", handlers.Trainings.ListPrograms)
		r.Post("/training-programs", handlers.Trainings.CreateProgram)
		r.Put("/training-programs/{id}", handlers.Trainings.UpdateProgram)
		r.Delete("/training-programs/{id}", handlers.Trainings.DeleteProgram)

		r.Get("/serving-people", handlers.ServingPeople.ListPeople)
		r.Post("/serving-people", handlers.ServingPeople.CreatePerson)
		r.Post("/serving-people/seed", handlers.ServingPeople.SeedPeople)
		r.Put("/serving-people/{id}", handlers.ServingPeople.UpdatePerson)
		r.Delete("/serving-people/{id}", handlers.ServingPeople.DeletePerson)
	})

	return r
}
