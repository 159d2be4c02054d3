package dashboard

import (
	"context"
	"time"

	newcomerdomain "church-office-go/internal/domain/newcomer"
	"church-office-go/pkg/logger"
)

type Service struct {
	repo Repository
	loc  *time.Location
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location, log logger.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{repo: repo, loc: loc, log: log, now: time.Now}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	total, err := s.repo.CountMembers(ctx)
	if err != nil {
		return Stats{}, err
	}

	today := dateOf(s.now().In(s.loc), s.loc)
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, s.loc)

	newcomers, err := s.repo.ListNewcomersSince(ctx, yearStart.Format(newcomerdomain.DateLayout))
	if err != nil {
		return Stats{}, err
	}

	dates := make([]time.Time, 0, len(newcomers))
	for _, n := range newcomers {
		registered, err := time.ParseInLocation(newcomerdomain.DateLayout, n.RegisteredDate, s.loc)
		if err != nil {
			s.log.Warn("dashboard: skipping newcomer with bad date", "newcomer_id", n.ID, "registered_date", n.RegisteredDate)
			continue
		}
		dates = append(dates, registered)
	}

	thisWeek := weekStart(today)
	stats := Stats{
		TotalMembers:    total,
		ThisWeekCount:   countBetween(dates, thisWeek, thisWeek.AddDate(0, 0, 6)),
		WeeklyNewcomers: make([]WeekCount, 0, 53),
	}

	for start := weekStart(yearStart); !start.After(today); start = start.AddDate(0, 0, 7) {
		stats.WeeklyNewcomers = append(stats.WeeklyNewcomers, WeekCount{
			Label:     start.Format(weekLabelLayout),
			WeekStart: start.Format(newcomerdomain.DateLayout),
			Count:     countBetween(dates, start, start.AddDate(0, 0, 6)),
		})
	}

	recent := newcomers
	if len(recent) > recentNewcomerLimit {
		recent = recent[:recentNewcomerLimit]
	}
	stats.RecentNewcomers = append([]newcomerdomain.Newcomer{}, recent...)

	return stats, nil
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// weekStart returns the Sunday on or before day.
func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func countBetween(dates []time.Time, from, to time.Time) int {
	count := 0
	for _, d := range dates {
		if !d.Before(from) && !d.After(to) {
			count++
		}
	}
	return count
}
