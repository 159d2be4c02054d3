package dashboard

import (
	"net/http"

	dashboarddomain "church-office-go/internal/domain/dashboard"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/pkg/logger"
)

type Handlers struct {
	Dashboard *dashboarddomain.Service
	log       logger.Logger
}

func New(dashboard *dashboarddomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Dashboard: dashboard, log: log}
}

type weekCountResponse struct {
	Name      string `json:"name"`
	WeekStart string `json:"week_start"`
	Count     int    `json:"count"`
}

type recentNewcomerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          *string `json:"phone"`
	RegisteredDate string  `json:"registered_date"`
	Introducer     *string `json:"introducer"`
}

type statsResponse struct {
	TotalMembers    int64                    `json:"total_members"`
	ThisWeekCount   int                      `json:"this_week_newcomers"`
	NewcomerChart   []weekCountResponse      `json:"newcomer_chart"`
	RecentNewcomers []recentNewcomerResponse `json:"recent_newcomers"`
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		h.log.InternalError("dashboard.stats: load failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := statsResponse{
		TotalMembers:    stats.TotalMembers,
		ThisWeekCount:   stats.ThisWeekCount,
		NewcomerChart:   make([]weekCountResponse, 0, len(stats.WeeklyNewcomers)),
		RecentNewcomers: make([]recentNewcomerResponse, 0, len(stats.RecentNewcomers)),
	}
	for _, week := range stats.WeeklyNewcomers {
		response.NewcomerChart = append(response.NewcomerChart, weekCountResponse{
			Name:      week.Label,
			WeekStart: week.WeekStart,
			Count:     week.Count,
		})
	}
	for _, n := range stats.RecentNewcomers {
		response.RecentNewcomers = append(response.RecentNewcomers, recentNewcomerResponse{
			ID:             n.ID,
			Name:           n.Name,
			Phone:          n.Phone,
			RegisteredDate: n.RegisteredDate,
			Introducer:     n.Introducer,
		})
	}
	common.WriteData(w, http.StatusOK, response)
}
