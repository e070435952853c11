// internal/service/case_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/mocks"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("new cases default to medium priority", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Case) error {
				assert.Equal(t, model.CaseStatusNew, c.Status)
				assert.Equal(t, model.PriorityMedium, c.Priority)
				c.ID = uuid.New()
				return nil
			})

		svc := service.NewCaseService(repo)
		c, err := svc.Create(context.Background(), service.CreateCaseInput{
			Title: "Demande de suivi",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.CaseStatusNew, c.Status)
	})

	t.Run("requires a title", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)

		svc := service.NewCaseService(repo)
		_, err := svc.Create(context.Background(), service.CreateCaseInput{})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.Equal(t, "Le titre du cas est requis", err.Error())
	})
}

func TestUpdateCaseStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()

	t.Run("accepts the known statuses", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), caseID, model.CaseStatusInProgress).
			Return(&model.Case{ID: caseID, Status: model.CaseStatusInProgress}, nil)

		svc := service.NewCaseService(repo)
		c, err := svc.UpdateStatus(context.Background(), service.UpdateCaseStatusInput{
			CaseID: caseID,
			Status: model.CaseStatusInProgress,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.CaseStatusInProgress, c.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)

		svc := service.NewCaseService(repo)
		_, err := svc.UpdateStatus(context.Background(), service.UpdateCaseStatusInput{
			CaseID: caseID,
			Status: "archived",
		})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestUpdateStatusForProfessional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()
	proID := uuid.New()

	t.Run("professionals may only progress or complete", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)

		svc := service.NewCaseService(repo)
		_, err := svc.UpdateStatusForProfessional(context.Background(), service.ProUpdateCaseStatusInput{
			CaseID:         caseID,
			ProfessionalID: proID,
			Status:         model.CaseStatusNew,
		})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("a case of another professional is not found", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)
		repo.EXPECT().UpdateStatusForProfessional(gomock.Any(), caseID, proID, model.CaseStatusCompleted).
			Return(nil, domain.ErrCaseNotFound)

		svc := service.NewCaseService(repo)
		_, err := svc.UpdateStatusForProfessional(context.Background(), service.ProUpdateCaseStatusInput{
			CaseID:         caseID,
			ProfessionalID: proID,
			Status:         model.CaseStatusCompleted,
		})

		assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	})
}

func TestAddNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()
	proID := uuid.New()

	t.Run("appends a note to an assigned case", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)
		repo.EXPECT().HasAssignment(gomock.Any(), caseID, proID).Return(true, nil)
		repo.EXPECT().AddNote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.CaseNote) error {
				assert.Equal(t, caseID, n.CaseID)
				assert.Equal(t, proID, *n.ProfessionalID)
				return nil
			})

		svc := service.NewCaseService(repo)
		note, err := svc.AddNote(context.Background(), service.AddCaseNoteInput{
			CaseID:         caseID,
			ProfessionalID: proID,
			Content:        "Premier entretien réalisé",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Premier entretien réalisé", note.Content)
	})

	t.Run("rejects a case the professional is not assigned to", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)
		repo.EXPECT().HasAssignment(gomock.Any(), caseID, proID).Return(false, nil)

		svc := service.NewCaseService(repo)
		_, err := svc.AddNote(context.Background(), service.AddCaseNoteInput{
			CaseID:         caseID,
			ProfessionalID: proID,
			Content:        "note",
		})

		assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	})

	t.Run("requires content", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)

		svc := service.NewCaseService(repo)
		_, err := svc.AddNote(context.Background(), service.AddCaseNoteInput{
			CaseID:         caseID,
			ProfessionalID: proID,
		})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestRecentForProfessional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proID := uuid.New()

	t.Run("defaults the limit", func(t *testing.T) {
		repo := mocks.NewMockCaseRepositoryIface(ctrl)
		repo.EXPECT().RecentForProfessional(gomock.Any(), proID, 5).Return(nil, nil)

		svc := service.NewCaseService(repo)
		_, err := svc.RecentForProfessional(context.Background(), proID, 0)
		assert.NoError(t, err)
	})
}
