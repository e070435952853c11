// internal/repository/alert.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AlertRepositoryIface interface {
	Create(ctx context.Context, alert *model.Alert) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Alert, error)
	FindAll(ctx context.Context) ([]*model.Alert, error)
	FindActive(ctx context.Context) ([]*model.Alert, error)
	FindActiveForUser(ctx context.Context, userID uuid.UUID) (*model.Alert, error)
	AppendMessage(ctx context.Context, id uuid.UUID, msg model.AlertMessage) (*model.Alert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AlertStatus) error
	MarkViewed(ctx context.Context, id uuid.UUID) error
}

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, alert *model.Alert) error {
	if err := r.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	var alert model.Alert
	if err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrAlertNotFound)
	}
	return &alert, nil
}

func (r *AlertRepository) FindAll(ctx context.Context) ([]*model.Alert, error) {
	var alerts []*model.Alert
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) FindActive(ctx context.Context) ([]*model.Alert, error) {
	var alerts []*model.Alert
	err := r.db.WithContext(ctx).
		Where("status = ?", model.AlertActive).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) FindActiveForUser(ctx context.Context, userID uuid.UUID) (*model.Alert, error) {
	var alert model.Alert
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.AlertActive).
		Order("created_at DESC").
		First(&alert).Error
	if err != nil {
		return nil, notFoundOr(err, domain.ErrAlertNotFound)
	}
	return &alert, nil
}

// AppendMessage adds a chat entry to the alert's message log. The row is
// locked so concurrent senders cannot overwrite each other's entries.
func (r *AlertRepository) AppendMessage(ctx context.Context, id uuid.UUID, msg model.AlertMessage) (*model.Alert, error) {
	var alert model.Alert
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&alert, "id = ?", id).Error; err != nil {
			return notFoundOr(err, domain.ErrAlertNotFound)
		}

		var messages []model.AlertMessage
		if len(alert.Messages) > 0 {
			if err := json.Unmarshal(alert.Messages, &messages); err != nil {
				return fmt.Errorf("failed to decode alert messages: %w", err)
			}
		}
		messages = append(messages, msg)

		encoded, err := json.Marshal(messages)
		if err != nil {
			return fmt.Errorf("failed to encode alert messages: %w", err)
		}
		alert.Messages = encoded
		alert.UpdatedAt = time.Now()

		update := tx.Model(&model.Alert{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"messages":   alert.Messages,
				"updated_at": alert.UpdatedAt,
			})
		if update.Error != nil {
			return fmt.Errorf("failed to store alert message: %w", update.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AlertStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Alert{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepository) MarkViewed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Alert{}).
		Where("id = ?", id).
		Update("viewed_by_admin", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark alert viewed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}
