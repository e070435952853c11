// internal/service/stats.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/repository"
)

type StatsService struct {
	repo repository.StatsRepositoryIface
}

func NewStatsService(repo repository.StatsRepositoryIface) *StatsService {
	return &StatsService{repo: repo}
}

// Statistics is the admin reporting payload, grouped the way the admin
// dashboard charts consume it.
type Statistics struct {
	Users *repository.UserStats `json:"users"`
	Cases *repository.CaseStats `json:"cases"`
	Pros  *repository.ProStats  `json:"pros"`
}

// sinceForTimeFrame maps the reporting window names to a start date.
// Unknown values fall back to a month.
func sinceForTimeFrame(timeFrame string) time.Time {
	now := time.Now()
	switch timeFrame {
	case "week":
		return now.AddDate(0, 0, -7)
	case "year":
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

func (s *StatsService) Statistics(ctx context.Context, timeFrame string) (*Statistics, error) {
	since := sinceForTimeFrame(timeFrame)

	users, err := s.repo.UserStats(ctx, since)
	if err != nil {
		return nil, err
	}
	cases, err := s.repo.CaseStats(ctx, since)
	if err != nil {
		return nil, err
	}
	pros, err := s.repo.ProStats(ctx)
	if err != nil {
		return nil, err
	}

	return &Statistics{Users: users, Cases: cases, Pros: pros}, nil
}

func (s *StatsService) DashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}

func (s *StatsService) AssignmentStats(ctx context.Context) (*repository.AssignmentStats, error) {
	return s.repo.AssignmentStats(ctx)
}

func (s *StatsService) Professionals(ctx context.Context) ([]*repository.ProfessionalOverview, error) {
	return s.repo.ProfessionalOverview(ctx)
}

func (s *StatsService) ProfessionalStats(ctx context.Context, professionalID uuid.UUID) (*repository.ProfessionalStats, error) {
	return s.repo.ProfessionalStats(ctx, professionalID)
}

func (s *StatsService) ProDashboard(ctx context.Context, professionalID uuid.UUID) (*repository.ProDashboard, error) {
	return s.repo.ProDashboard(ctx, professionalID)
}
