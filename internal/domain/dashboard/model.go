package dashboard

import newcomerdomain "church-office-go/internal/domain/newcomer"

type Stats struct {
	TotalMembers    int64
	ThisWeekCount   int
	WeeklyNewcomers []WeekCount
	RecentNewcomers []newcomerdomain.Newcomer
}

// WeekCount counts newcomers registered in the Sunday-started week beginning
// at WeekStart. Label is the week start as M.d.
type WeekCount struct {
	Label     string
	WeekStart string
	Count     int
}

const (
	recentNewcomerLimit = 5
	weekLabelLayout     = "1.2"
)
