// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./assignment.go -destination=../mocks/mock_assignment_repository.go -package=mocks AssignmentRepositoryIface
//go:generate mockgen -source=./case.go -destination=../mocks/mock_case_repository.go -package=mocks CaseRepositoryIface
//go:generate mockgen -source=./emergency.go -destination=../mocks/mock_emergency_repository.go -package=mocks EmergencyRepositoryIface
