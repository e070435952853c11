// internal/service/emergency_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/mocks"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmergencyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("files a pending request with the caller's position", func(t *testing.T) {
		repo := mocks.NewMockEmergencyRepositoryIface(ctrl)
		repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *model.EmergencyRequest) error {
				assert.Equal(t, userID, req.UserID)
				assert.Equal(t, model.EmergencyPending, req.Status)
				assert.Equal(t, "mise_en_securite", req.RequestType)
				assert.Equal(t, 48.8566, req.Latitude)
				req.ID = uuid.New()
				return nil
			})

		svc := service.NewEmergencyService(repo)
		req, err := svc.Request(context.Background(), service.EmergencyRequestInput{
			UserID:      userID,
			RequestType: "mise_en_securite",
			Latitude:    48.8566,
			Longitude:   2.3522,
		})

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, req.ID)
	})

	t.Run("requires a request type", func(t *testing.T) {
		repo := mocks.NewMockEmergencyRepositoryIface(ctrl)

		svc := service.NewEmergencyService(repo)
		_, err := svc.Request(context.Background(), service.EmergencyRequestInput{UserID: userID})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.Equal(t, "Le type de demande est requis", err.Error())
	})
}

func TestEmergencyUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	emergencyID := uuid.New()

	t.Run("defaults the log details", func(t *testing.T) {
		repo := mocks.NewMockEmergencyRepositoryIface(ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), emergencyID, model.EmergencyInProgress, "Statut mis à jour: in_progress").
			Return(&model.EmergencyRequest{ID: emergencyID, Status: model.EmergencyInProgress}, nil)

		svc := service.NewEmergencyService(repo)
		req, err := svc.UpdateStatus(context.Background(), service.UpdateEmergencyStatusInput{
			EmergencyID: emergencyID,
			Status:      model.EmergencyInProgress,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.EmergencyInProgress, req.Status)
	})

	t.Run("keeps the provided details", func(t *testing.T) {
		repo := mocks.NewMockEmergencyRepositoryIface(ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), emergencyID, model.EmergencyCompleted, "Intervention terminée").
			Return(&model.EmergencyRequest{ID: emergencyID, Status: model.EmergencyCompleted}, nil)

		svc := service.NewEmergencyService(repo)
		_, err := svc.UpdateStatus(context.Background(), service.UpdateEmergencyStatusInput{
			EmergencyID: emergencyID,
			Status:      model.EmergencyCompleted,
			Details:     "Intervention terminée",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := mocks.NewMockEmergencyRepositoryIface(ctrl)

		svc := service.NewEmergencyService(repo)
		_, err := svc.UpdateStatus(context.Background(), service.UpdateEmergencyStatusInput{
			EmergencyID: emergencyID,
			Status:      "annulee",
		})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("surfaces a missing emergency", func(t *testing.T) {
		repo := mocks.NewMockEmergencyRepositoryIface(ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), emergencyID, model.EmergencyCompleted, gomock.Any()).
			Return(nil, domain.ErrEmergencyNotFound)

		svc := service.NewEmergencyService(repo)
		_, err := svc.UpdateStatus(context.Background(), service.UpdateEmergencyStatusInput{
			EmergencyID: emergencyID,
			Status:      model.EmergencyCompleted,
		})

		assert.ErrorIs(t, err, domain.ErrEmergencyNotFound)
	})
}

func TestEmergencyRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("looks back 24 hours with a default limit", func(t *testing.T) {
		repo := mocks.NewMockEmergencyRepositoryIface(ctrl)
		repo.EXPECT().Recent(gomock.Any(), gomock.Any(), 20).
			DoAndReturn(func(_ context.Context, since time.Time, _ int) ([]*model.EmergencyRequest, error) {
				assert.WithinDuration(t, time.Now().Add(-24*time.Hour), since, 5*time.Second)
				return nil, nil
			})

		svc := service.NewEmergencyService(repo)
		_, err := svc.Recent(context.Background(), 0)
		assert.NoError(t, err)
	})
}
