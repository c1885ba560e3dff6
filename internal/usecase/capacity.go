package usecase

import (
	"context"

	"study-group-service/internal/domain"
)

// AdmissionController проверяет, есть ли в группе место для еще одного активного участника.
// Результат используется для раннего отказа; окончательная проверка повторяется
// репозиторием в той же транзакции, что и запись ACTIVE.
type AdmissionController struct {
	memberRepo domain.MembershipRepository
}

// NewAdmissionController создает новый экземпляр AdmissionController.
func NewAdmissionController(memberRepo domain.MembershipRepository) *AdmissionController {
	return &AdmissionController{memberRepo: memberRepo}
}

// HasCapacity сравнивает число ACTIVE членств с вместимостью группы.
func (a *AdmissionController) HasCapacity(ctx context.Context, group *domain.Group) (bool, error) {
	active, err := a.memberRepo.CountActive(ctx, group.ID)
	if err != nil {
		return false, err
	}
	return active < group.Capacity, nil
}
