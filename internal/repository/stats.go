// internal/repository/stats.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"gorm.io/gorm"
)

type StatsRepositoryIface interface {
	AssignmentStats(ctx context.Context) (*AssignmentStats, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	UserStats(ctx context.Context, since time.Time) (*UserStats, error)
	CaseStats(ctx context.Context, since time.Time) (*CaseStats, error)
	ProStats(ctx context.Context) (*ProStats, error)
	ProfessionalOverview(ctx context.Context) ([]*ProfessionalOverview, error)
	ProfessionalStats(ctx context.Context, professionalID uuid.UUID) (*ProfessionalStats, error)
	ProDashboard(ctx context.Context, professionalID uuid.UUID) (*ProDashboard, error)
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type AssignmentStats struct {
	TotalCases            int64 `json:"total_cases"`
	UnassignedCases       int64 `json:"unassigned_cases"`
	ActiveCases           int64 `json:"active_cases"`
	CompletedCases        int64 `json:"completed_cases"`
	AssignedProfessionals int64 `json:"assigned_professionals"`
}

func (r *StatsRepository) AssignmentStats(ctx context.Context) (*AssignmentStats, error) {
	var stats AssignmentStats
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT c.id) AS total_cases,
			COUNT(DISTINCT CASE WHEN c.status = 'new' THEN c.id END) AS unassigned_cases,
			COUNT(DISTINCT CASE WHEN c.status = 'in_progress' THEN c.id END) AS active_cases,
			COUNT(DISTINCT CASE WHEN c.status = 'completed' THEN c.id END) AS completed_cases,
			COUNT(DISTINCT ca.professional_id) AS assigned_professionals
		FROM cases c
		LEFT JOIN case_assignments ca ON c.id = ca.case_id`).Scan(&stats)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to compute assignment stats: %w", result.Error)
	}
	return &stats, nil
}

type DashboardStats struct {
	TotalUsers  int64 `json:"total_users"`
	TotalPros   int64 `json:"total_pros"`
	UrgentCases int64 `json:"urgent_cases"`
	ActiveCases int64 `json:"active_cases"`
	NewUsers    int64 `json:"new_users"`
	PendingPros int64 `json:"pending_pros"`
}

func (r *StatsRepository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	result := r.db.WithContext(ctx).Raw(`
		WITH recent_activity AS (
			SELECT
				COUNT(CASE WHEN created_at >= NOW() - INTERVAL '7 days' THEN 1 END) AS new_users,
				COUNT(CASE WHEN role = 'pro' AND status = 'pending' THEN 1 END) AS pending_pros
			FROM users
		),
		case_stats AS (
			SELECT
				COUNT(CASE WHEN priority = 'high' AND status != 'completed' THEN 1 END) AS urgent_cases,
				COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS active_cases
			FROM cases
		)
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM users WHERE role = 'pro') AS total_pros,
			cs.urgent_cases,
			cs.active_cases,
			ra.new_users,
			ra.pending_pros
		FROM recent_activity ra, case_stats cs`).Scan(&stats)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", result.Error)
	}
	return &stats, nil
}

type UserStats struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Inactive     int64 `json:"inactive"`
	NewThisMonth int64 `json:"new_this_month"`
}

func (r *StatsRepository) UserStats(ctx context.Context, since time.Time) (*UserStats, error) {
	var stats UserStats
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN updated_at > ? THEN 1 END) AS active,
			COUNT(CASE WHEN updated_at <= ? OR updated_at IS NULL THEN 1 END) AS inactive,
			COUNT(CASE WHEN created_at > ? THEN 1 END) AS new_this_month
		FROM users
		WHERE role = 'user'`, since, since, since).Scan(&stats)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to compute user stats: %w", result.Error)
	}
	return &stats, nil
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type TypeCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type CaseStats struct {
	Total       int64          `json:"total"`
	Urgent      int64          `json:"urgent"`
	InProgress  int64          `json:"in_progress"`
	Completed   int64          `json:"completed"`
	MonthlyData []MonthlyCount `json:"monthly_data" gorm:"-"`
	ByType      []TypeCount    `json:"by_type" gorm:"-"`
}

func (r *StatsRepository) CaseStats(ctx context.Context, since time.Time) (*CaseStats, error) {
	var stats CaseStats
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN priority = 'high' THEN 1 END) AS urgent,
			COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed
		FROM cases`).Scan(&stats)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to compute case stats: %w", result.Error)
	}

	monthly := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(date_trunc('month', created_at), 'Mon') AS month,
			COUNT(*) AS count
		FROM cases
		WHERE created_at > ?
		GROUP BY date_trunc('month', created_at)
		ORDER BY date_trunc('month', created_at)`, since).Scan(&stats.MonthlyData)
	if monthly.Error != nil {
		return nil, fmt.Errorf("failed to compute monthly case data: %w", monthly.Error)
	}

	byType := r.db.WithContext(ctx).Raw(`
		SELECT type AS name, COUNT(*) AS count
		FROM cases
		GROUP BY type`).Scan(&stats.ByType)
	if byType.Error != nil {
		return nil, fmt.Errorf("failed to compute case type data: %w", byType.Error)
	}

	return &stats, nil
}

type ProStats struct {
	Total           int64 `json:"total"`
	Active          int64 `json:"active"`
	Pending         int64 `json:"pending"`
	AverageCaseLoad int64 `json:"average_case_load"`
}

func (r *StatsRepository) ProStats(ctx context.Context) (*ProStats, error) {
	var stats ProStats
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'active' THEN 1 END) AS active,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending,
			COALESCE(
				(SELECT ROUND(AVG(case_count))
				FROM (
					SELECT professional_id, COUNT(*) AS case_count
					FROM case_assignments
					WHERE status = 'in_progress'
					GROUP BY professional_id
				) AS case_counts),
				0
			) AS average_case_load
		FROM users
		WHERE role = 'pro'`).Scan(&stats)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to compute professional stats: %w", result.Error)
	}
	return &stats, nil
}

// ProfessionalOverview is one row of the admin professionals listing.
type ProfessionalOverview struct {
	ID           uuid.UUID  `json:"id"`
	LastName     string     `json:"last_name"`
	FirstName    string     `json:"first_name"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	Status       string     `json:"status"`
	Availability string     `json:"availability"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
	TotalCases   int64      `json:"totalCases"`
	ActiveCases  int64      `json:"activeCases"`
}

func (r *StatsRepository) ProfessionalOverview(ctx context.Context) ([]*ProfessionalOverview, error) {
	var rows []*ProfessionalOverview
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.last_name,
			u.first_name,
			u.email,
			u.phone_number,
			u.status,
			u.availability,
			u.notes,
			u.created_at,
			u.last_login,
			COUNT(DISTINCT c.id) AS total_cases,
			COUNT(DISTINCT CASE WHEN c.status = 'in_progress' THEN c.id END) AS active_cases
		FROM users u
		LEFT JOIN case_assignments ca ON u.id = ca.professional_id
		LEFT JOIN cases c ON ca.case_id = c.id
		WHERE u.role = 'pro'
		GROUP BY u.id
		ORDER BY u.created_at DESC`).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", result.Error)
	}
	return rows, nil
}

type ProfessionalStats struct {
	ID           uuid.UUID  `json:"id"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
	Availability string     `json:"availability"`
	TotalCases   int64      `json:"totalCases"`
	ActiveCases  int64      `json:"activeCases"`
}

func (r *StatsRepository) ProfessionalStats(ctx context.Context, professionalID uuid.UUID) (*ProfessionalStats, error) {
	var stats ProfessionalStats
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.created_at,
			u.last_login,
			u.availability,
			COUNT(DISTINCT c.id) AS total_cases,
			COUNT(DISTINCT CASE WHEN c.status = 'in_progress' THEN c.id END) AS active_cases
		FROM users u
		LEFT JOIN case_assignments ca ON u.id = ca.professional_id
		LEFT JOIN cases c ON ca.case_id = c.id
		WHERE u.id = ?
		GROUP BY u.id`, professionalID).Scan(&stats)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to compute professional stats: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrProfessionalNotFound
	}
	return &stats, nil
}

type ProDashboard struct {
	ActiveCases        int64 `json:"activeCases"`
	CompletedCases     int64 `json:"completedCases"`
	PendingEmergencies int64 `json:"pendingEmergencies"`
}

func (r *StatsRepository) ProDashboard(ctx context.Context, professionalID uuid.UUID) (*ProDashboard, error) {
	var dash ProDashboard
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(CASE WHEN c.status = 'in_progress' THEN 1 END) AS active_cases,
			COUNT(CASE WHEN c.status = 'completed' THEN 1 END) AS completed_cases
		FROM cases c
		INNER JOIN case_assignments ca ON c.id = ca.case_id
		WHERE ca.professional_id = ?`, professionalID).Scan(&dash)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to compute case counts: %w", result.Error)
	}

	emergencies := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS pending_emergencies
		FROM emergency_requests er
		WHERE er.professional_id = ?
		AND er.status IN ('pending', 'assigned', 'in_progress')`, professionalID).
		Scan(&dash.PendingEmergencies)
	if emergencies.Error != nil {
		return nil, fmt.Errorf("failed to count emergencies: %w", emergencies.Error)
	}

	return &dash, nil
}
