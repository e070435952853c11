// internal/repository/emergency.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
)

type EmergencyRepositoryIface interface {
	CreateRequest(ctx context.Context, req *model.EmergencyRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.EmergencyRequest, error)
	FindWithLogs(ctx context.Context, id uuid.UUID) (*model.EmergencyRequest, []*model.EmergencyLog, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.EmergencyStatus, details string) (*model.EmergencyRequest, error)
	Pending(ctx context.Context) ([]*EmergencyWithUser, error)
	Details(ctx context.Context, id uuid.UUID) (*EmergencyWithUser, error)
	HistoryForUser(ctx context.Context, userID uuid.UUID) ([]*model.EmergencyRequest, error)
	Recent(ctx context.Context, since time.Time, limit int) ([]*model.EmergencyRequest, error)
}

type EmergencyRepository struct {
	db *gorm.DB
}

func NewEmergencyRepository(db *gorm.DB) *EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// CreateRequest inserts the request, fans a notification out to every
// recently-active professional, and writes the opening log entry. All three
// commit together or not at all.
func (r *EmergencyRepository) CreateRequest(ctx context.Context, req *model.EmergencyRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return fmt.Errorf("creating emergency request: %w", err)
		}

		if err := tx.Exec(`
			INSERT INTO emergency_notifications (emergency_request_id, professional_id, created_at, status)
			SELECT ?, u.id, NOW(), 'pending'
			FROM users u
			WHERE u.role = 'pro'
			AND u.status = 'active'
			AND u.last_active > NOW() - INTERVAL '15 minutes'`, req.ID).Error; err != nil {
			return fmt.Errorf("notifying professionals: %w", err)
		}

		entry := &model.EmergencyLog{
			EmergencyRequestID: req.ID,
			ActionType:         model.EmergencyActionCreated,
			Details:            fmt.Sprintf("Demande d'urgence de type %s créée", req.RequestType),
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("logging emergency creation: %w", err)
		}

		return nil
	})
}

func (r *EmergencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.EmergencyRequest, error) {
	var req model.EmergencyRequest
	result := r.db.WithContext(ctx).First(&req, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, domain.ErrEmergencyNotFound)
	}
	return &req, nil
}

func (r *EmergencyRepository) FindWithLogs(ctx context.Context, id uuid.UUID) (*model.EmergencyRequest, []*model.EmergencyLog, error) {
	req, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var logs []*model.EmergencyLog
	result := r.db.WithContext(ctx).
		Where("emergency_request_id = ?", id).
		Order("created_at DESC").
		Find(&logs)
	if result.Error != nil {
		return nil, nil, fmt.Errorf("failed to find emergency logs: %w", result.Error)
	}

	return req, logs, nil
}

// UpdateStatus sets the status and appends the matching log entry in one
// transaction.
func (r *EmergencyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.EmergencyStatus, details string) (*model.EmergencyRequest, error) {
	var req *model.EmergencyRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.EmergencyRequest{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
		if result.Error != nil {
			return fmt.Errorf("updating emergency status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrEmergencyNotFound
		}

		if details == "" {
			details = fmt.Sprintf("Statut mis à jour: %s", status)
		}
		entry := &model.EmergencyLog{
			EmergencyRequestID: id,
			ActionType:         model.EmergencyActionStatusUpdated,
			Details:            details,
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("logging status update: %w", err)
		}

		var updated model.EmergencyRequest
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return fmt.Errorf("reloading emergency request: %w", err)
		}
		req = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// EmergencyWithUser carries the requester's contact info for the admin views.
type EmergencyWithUser struct {
	ID        uuid.UUID             `json:"id"`
	Type      string                `json:"type"`
	Status    model.EmergencyStatus `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	FullName  string                `json:"-"`
	Phone     string                `json:"-"`
}

const emergencyWithUserSelect = `
	SELECT
		er.id,
		er.request_type AS type,
		er.status,
		er.created_at,
		er.latitude,
		er.longitude,
		u.last_name || ' ' || u.first_name AS full_name,
		u.phone_number AS phone
	FROM emergency_requests er
	JOIN users u ON er.user_id = u.id`

func (r *EmergencyRepository) Pending(ctx context.Context) ([]*EmergencyWithUser, error) {
	var rows []*EmergencyWithUser
	result := r.db.WithContext(ctx).Raw(emergencyWithUserSelect + `
		WHERE er.status = 'pending'
		ORDER BY er.created_at DESC`).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pending emergencies: %w", result.Error)
	}
	return rows, nil
}

func (r *EmergencyRepository) Details(ctx context.Context, id uuid.UUID) (*EmergencyWithUser, error) {
	var row EmergencyWithUser
	result := r.db.WithContext(ctx).Raw(emergencyWithUserSelect+`
		WHERE er.id = ?`, id).Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find emergency details: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrEmergencyNotFound
	}
	return &row, nil
}

func (r *EmergencyRepository) HistoryForUser(ctx context.Context, userID uuid.UUID) ([]*model.EmergencyRequest, error) {
	var reqs []*model.EmergencyRequest
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find emergency history: %w", result.Error)
	}
	return reqs, nil
}

func (r *EmergencyRepository) Recent(ctx context.Context, since time.Time, limit int) ([]*model.EmergencyRequest, error) {
	var reqs []*model.EmergencyRequest
	result := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Limit(limit).
		Find(&reqs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent emergencies: %w", result.Error)
	}
	return reqs, nil
}
