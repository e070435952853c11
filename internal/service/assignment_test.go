// internal/service/assignment_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/mocks"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAssignCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()
	proID := uuid.New()
	adminID := uuid.New()

	newCase := func() *model.Case {
		return &model.Case{
			ID:       caseID,
			Status:   model.CaseStatusNew,
			Title:    "Demande de suivi",
			Type:     "soutien",
			Priority: model.PriorityMedium,
		}
	}
	activePro := func() *model.User {
		return &model.User{
			ID:        proID,
			FirstName: "Marie",
			LastName:  "Dupont",
			Email:     "marie.dupont@example.com",
			Role:      model.RoleProfessional,
			Status:    model.StatusActive,
		}
	}

	t.Run("assigns a new case to an active professional", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		gomock.InOrder(
			tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).Return(newCase(), nil),
			tx.EXPECT().Professional(gomock.Any(), proID).Return(activePro(), nil),
			tx.EXPECT().CreateCaseAssignment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a *model.CaseAssignment) error {
					assert.Equal(t, caseID, a.CaseID)
					assert.Equal(t, proID, a.ProfessionalID)
					assert.Equal(t, model.AssignmentAssigned, a.Status)
					assert.False(t, a.AssignedAt.IsZero())
					return nil
				}),
			tx.EXPECT().SetCaseStatus(gomock.Any(), caseID, model.CaseStatusAssigned).Return(nil),
			tx.EXPECT().CreateCaseNote(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n *model.CaseNote) error {
					assert.Equal(t, caseID, n.CaseID)
					assert.Equal(t, "Cas assigné à Marie Dupont", n.Content)
					return nil
				}),
			tx.EXPECT().Commit().Return(nil),
		)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewAssignmentService(repo, nil)
		out, err := svc.AssignCase(context.Background(), service.AssignCaseInput{
			CaseID:         caseID,
			ProfessionalID: proID,
			AssignedBy:     adminID,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.CaseStatusAssigned, out.Case.Status)
		assert.Equal(t, proID, out.Assignment.ProfessionalID)
	})

	t.Run("rejects a case that is no longer new", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		assigned := newCase()
		assigned.Status = model.CaseStatusAssigned

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).Return(assigned, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignCase(context.Background(), service.AssignCaseInput{
			CaseID:         caseID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, domain.ErrCaseAlreadyAssigned)
		assert.Equal(t, "Ce cas est déjà assigné", err.Error())
	})

	t.Run("checks the case before the professional", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).Return(nil, domain.ErrCaseNotFound)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignCase(context.Background(), service.AssignCaseInput{
			CaseID:         caseID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	})

	t.Run("rejects an inactive professional", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		pending := activePro()
		pending.Status = model.StatusPending

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).Return(newCase(), nil)
		tx.EXPECT().Professional(gomock.Any(), proID).Return(pending, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignCase(context.Background(), service.AssignCaseInput{
			CaseID:         caseID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, domain.ErrProfessionalInactive)
		assert.Equal(t, "Ce professionnel n'est pas actif", err.Error())
	})

	t.Run("surfaces the unique index conflict from a concurrent assignment", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).Return(newCase(), nil)
		tx.EXPECT().Professional(gomock.Any(), proID).Return(activePro(), nil)
		tx.EXPECT().CreateCaseAssignment(gomock.Any(), gomock.Any()).Return(domain.ErrCaseAlreadyAssigned)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignCase(context.Background(), service.AssignCaseInput{
			CaseID:         caseID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, domain.ErrCaseAlreadyAssigned)
	})

	t.Run("rolls back when the status update fails", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		dbErr := errors.New("connection reset")

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).Return(newCase(), nil)
		tx.EXPECT().Professional(gomock.Any(), proID).Return(activePro(), nil)
		tx.EXPECT().CreateCaseAssignment(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().SetCaseStatus(gomock.Any(), caseID, model.CaseStatusAssigned).Return(dbErr)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignCase(context.Background(), service.AssignCaseInput{
			CaseID:         caseID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("rejects missing identifiers before touching the database", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignCase(context.Background(), service.AssignCaseInput{})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.Equal(t, "Identifiants du cas et du professionnel requis", err.Error())
	})

	t.Run("keeps the provided note instead of the default", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().CaseForUpdate(gomock.Any(), caseID).Return(newCase(), nil)
		tx.EXPECT().Professional(gomock.Any(), proID).Return(activePro(), nil)
		tx.EXPECT().CreateCaseAssignment(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().SetCaseStatus(gomock.Any(), caseID, model.CaseStatusAssigned).Return(nil)
		tx.EXPECT().CreateCaseNote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.CaseNote) error {
				assert.Equal(t, "Suivi prioritaire demandé", n.Content)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignCase(context.Background(), service.AssignCaseInput{
			CaseID:         caseID,
			ProfessionalID: proID,
			Note:           "Suivi prioritaire demandé",
		})

		assert.NoError(t, err)
	})
}

func TestAssignEmergency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	emergencyID := uuid.New()
	proID := uuid.New()

	pendingEmergency := func() *model.EmergencyRequest {
		return &model.EmergencyRequest{
			ID:          emergencyID,
			UserID:      uuid.New(),
			RequestType: "mise_en_securite",
			Status:      model.EmergencyPending,
		}
	}
	activePro := func() *model.User {
		return &model.User{
			ID:        proID,
			FirstName: "Paul",
			LastName:  "Martin",
			Email:     "paul.martin@example.com",
			Role:      model.RoleProfessional,
			Status:    model.StatusActive,
		}
	}

	t.Run("assigns a pending emergency", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		gomock.InOrder(
			tx.EXPECT().EmergencyForUpdate(gomock.Any(), emergencyID).Return(pendingEmergency(), nil),
			tx.EXPECT().Professional(gomock.Any(), proID).Return(activePro(), nil),
			tx.EXPECT().AssignEmergency(gomock.Any(), emergencyID, proID, "note de prise en charge", gomock.Any()).Return(nil),
			tx.EXPECT().CreateEmergencyLog(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e *model.EmergencyLog) error {
					assert.Equal(t, emergencyID, e.EmergencyRequestID)
					assert.Equal(t, model.EmergencyActionAssigned, e.ActionType)
					assert.Equal(t, "Urgence assignée à Paul Martin", e.Details)
					return nil
				}),
			tx.EXPECT().Commit().Return(nil),
		)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewAssignmentService(repo, nil)
		out, err := svc.AssignEmergency(context.Background(), service.AssignEmergencyInput{
			EmergencyID:    emergencyID,
			ProfessionalID: proID,
			Note:           "note de prise en charge",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.EmergencyAssigned, out.Emergency.Status)
		assert.NotNil(t, out.Emergency.ProfessionalID)
		assert.Equal(t, proID, *out.Emergency.ProfessionalID)
	})

	t.Run("rejects an emergency that is already assigned", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		taken := pendingEmergency()
		taken.Status = model.EmergencyAssigned

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EmergencyForUpdate(gomock.Any(), emergencyID).Return(taken, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignEmergency(context.Background(), service.AssignEmergencyInput{
			EmergencyID:    emergencyID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, domain.ErrEmergencyAssigned)
		assert.Equal(t, "Cette urgence est déjà assignée", err.Error())
	})

	t.Run("rejects an unknown emergency", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EmergencyForUpdate(gomock.Any(), emergencyID).Return(nil, domain.ErrEmergencyNotFound)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignEmergency(context.Background(), service.AssignEmergencyInput{
			EmergencyID:    emergencyID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, domain.ErrEmergencyNotFound)
	})

	t.Run("rejects an inactive professional without writing", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		inactive := activePro()
		inactive.Status = model.StatusInactive

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EmergencyForUpdate(gomock.Any(), emergencyID).Return(pendingEmergency(), nil)
		tx.EXPECT().Professional(gomock.Any(), proID).Return(inactive, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignEmergency(context.Background(), service.AssignEmergencyInput{
			EmergencyID:    emergencyID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, domain.ErrProfessionalInactive)
	})

	t.Run("rolls back when the log insert fails", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)
		tx := mocks.NewMockAssignmentTx(ctrl)

		dbErr := errors.New("disk full")

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EmergencyForUpdate(gomock.Any(), emergencyID).Return(pendingEmergency(), nil)
		tx.EXPECT().Professional(gomock.Any(), proID).Return(activePro(), nil)
		tx.EXPECT().AssignEmergency(gomock.Any(), emergencyID, proID, "", gomock.Any()).Return(nil)
		tx.EXPECT().CreateEmergencyLog(gomock.Any(), gomock.Any()).Return(dbErr)
		tx.EXPECT().Rollback().Return(nil)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignEmergency(context.Background(), service.AssignEmergencyInput{
			EmergencyID:    emergencyID,
			ProfessionalID: proID,
		})

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		repo := mocks.NewMockAssignmentRepositoryIface(ctrl)

		svc := service.NewAssignmentService(repo, nil)
		_, err := svc.AssignEmergency(context.Background(), service.AssignEmergencyInput{})

		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}
